package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	evolutionmocks "github.com/zaytech/message-dashboard-api/infrastructure/integrator/evolution/mocks"
	"github.com/zaytech/message-dashboard-api/infrastructure/repository/mocks"
	"github.com/zaytech/message-dashboard-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func stringPtr(s string) *string {
	return &s
}

func TestPendingReminderService_scanStore(t *testing.T) {
	tests := []struct {
		name     string
		store    *domain.Store
		messages []*domain.Message
		setup    func(gateway *evolutionmocks.MockEvolutionIntegrator)
	}{
		{
			name:  "Pendências antigas geram lembrete",
			store: &domain.Store{ID: "STR001", Phone: stringPtr("5511999990000"), InstanceName: "demo-store"},
			messages: []*domain.Message{
				{ID: "MSG01", Pending: true},
				{ID: "MSG02", Pending: true, Urgent: true},
			},
			setup: func(gateway *evolutionmocks.MockEvolutionIntegrator) {
				gateway.EXPECT().
					SendText("demo-store", "5511999990000", gomock.Any()).
					DoAndReturn(func(_, _, text string) error {
						assert.Contains(t, text, "2 mensagem(ns)")
						assert.Contains(t, text, "1 urgente(s)")
						return nil
					})
			},
		},
		{
			name:     "Sem pendências não envia nada",
			store:    &domain.Store{ID: "STR001", Phone: stringPtr("5511999990000"), InstanceName: "demo-store"},
			messages: nil,
			setup:    func(gateway *evolutionmocks.MockEvolutionIntegrator) {},
		},
		{
			name:  "Loja sem telefone não envia nada",
			store: &domain.Store{ID: "STR001", InstanceName: "demo-store"},
			messages: []*domain.Message{
				{ID: "MSG01", Pending: true},
			},
			setup: func(gateway *evolutionmocks.MockEvolutionIntegrator) {},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStoreRepo := mocks.NewMockStoreRepository(ctrl)
			mockMessageRepo := mocks.NewMockMessageRepository(ctrl)
			mockGateway := evolutionmocks.NewMockEvolutionIntegrator(ctrl)

			mockMessageRepo.EXPECT().
				ListByStore("STR001", gomock.Any()).
				DoAndReturn(func(storeID string, filters *domain.MessageFilters) ([]*domain.Message, error) {
					// A varredura só olha pendências mais antigas que o limite
					assert.True(t, *filters.Pending)
					assert.True(t, filters.Until.Before(time.Now()))
					return tt.messages, nil
				})
			tt.setup(mockGateway)

			service := &PendingReminderService{
				config:           PendingReminderConfig{ThresholdHours: 4},
				storeRepo:        mockStoreRepo,
				messageRepo:      mockMessageRepo,
				evolutionService: mockGateway,
			}

			service.scanStore(tt.store)
		})
	}
}
