package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/zaytech/message-dashboard-api/infrastructure/repository/mocks"
	"github.com/zaytech/message-dashboard-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func categoryID(id string) *string {
	return &id
}

func TestStatsSnapshotSyncService_recomputeStoreDate(t *testing.T) {
	store := &domain.Store{ID: "STR001", Name: "Loja Demonstração", Status: domain.StoreStatusActive}
	date := time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC)

	categories := []*domain.Category{
		{ID: "CAT001", Name: "Família", Priority: 1},
		{ID: "CAT003", Name: "Loja", Priority: 3},
		{ID: "CAT006", Name: "Outros", Priority: 5},
	}

	tests := []struct {
		name     string
		messages []*domain.Message
		validate func(t *testing.T, counters *domain.MessageCounters)
	}{
		{
			name: "Fold do log substitui os contadores do dia",
			messages: []*domain.Message{
				{ID: "MSG01", CategoryID: categoryID("CAT003"), Pending: true},
				{ID: "MSG02", CategoryID: categoryID("CAT003"), Pending: false},
				{ID: "MSG03", CategoryID: categoryID("CAT001"), Pending: true, Urgent: true},
				{ID: "MSG04", Pending: true}, // aguardando classificação
			},
			validate: func(t *testing.T, counters *domain.MessageCounters) {
				assert.Equal(t, "STR001", counters.StoreID)
				assert.Equal(t, "2025-03-05", counters.Date)
				assert.Equal(t, 4, counters.Total)
				assert.Equal(t, 3, counters.Pending)
				assert.Equal(t, 1, counters.Urgent)
				assert.Equal(t, 2, counters.ByCategory["CAT003"])
				assert.Equal(t, 1, counters.ByCategory["CAT001"])
				// Zero-fill: categoria sem mensagem aparece no mapa
				count, ok := counters.ByCategory["CAT006"]
				assert.True(t, ok)
				assert.Equal(t, 0, count)
			},
		},
		{
			name:     "Dia sem mensagens zera os contadores",
			messages: nil,
			validate: func(t *testing.T, counters *domain.MessageCounters) {
				assert.Equal(t, 0, counters.Total)
				assert.Equal(t, 0, counters.Pending)
				assert.Equal(t, 0, counters.Urgent)
				assert.Len(t, counters.ByCategory, 3)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStoreRepo := mocks.NewMockStoreRepository(ctrl)
			mockCategoryRepo := mocks.NewMockCategoryRepository(ctrl)
			mockMessageRepo := mocks.NewMockMessageRepository(ctrl)
			mockStatsRepo := mocks.NewMockMessageStatsRepository(ctrl)

			mockMessageRepo.EXPECT().
				ListByStore("STR001", gomock.Any()).
				DoAndReturn(func(storeID string, filters *domain.MessageFilters) ([]*domain.Message, error) {
					// Janela de um dia fechada em [dayStart, dayEnd)
					assert.Equal(t, date, *filters.Since)
					assert.Equal(t, date.AddDate(0, 0, 1), *filters.Until)
					return tt.messages, nil
				})
			mockCategoryRepo.EXPECT().ListByStore("STR001").Return(categories, nil)

			var saved *domain.MessageCounters
			mockStatsRepo.EXPECT().
				ReplaceCounters(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ any, counters *domain.MessageCounters) error {
					saved = counters
					return nil
				})

			service := &StatsSnapshotSyncService{
				storeRepo:    mockStoreRepo,
				categoryRepo: mockCategoryRepo,
				messageRepo:  mockMessageRepo,
				statsRepo:    mockStatsRepo,
			}

			service.recomputeStoreDate(store, date)

			assert.NotNil(t, saved)
			tt.validate(t, saved)
		})
	}
}

func TestStatsSnapshotSyncService_getDatesToProcess(t *testing.T) {
	service := &StatsSnapshotSyncService{
		config: StatsSnapshotSyncConfig{LookbackDays: 3},
	}

	dates := service.getDatesToProcess()

	assert.Len(t, dates, 3)
	// Hoje entra no conjunto; as demais datas andam para trás
	assert.Equal(t, time.Now().Format(time.DateOnly), dates[0].Format(time.DateOnly))
	assert.Equal(t, time.Now().AddDate(0, 0, -2).Format(time.DateOnly), dates[2].Format(time.DateOnly))
}
