package categorizing

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zaytech/message-dashboard-api/infrastructure/repository/mocks"
	"github.com/zaytech/message-dashboard-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestUpsertCategory_Validacao(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCategoryRepo := mocks.NewMockCategoryRepository(ctrl)
	mockStoreRepo := mocks.NewMockStoreRepository(ctrl)
	service := NewService(mockCategoryRepo, mockStoreRepo)

	tests := []struct {
		name        string
		request     *domain.UpsertCategoryRequest
		expectedErr error
		field       string
	}{
		{
			name:        "Nome vazio",
			request:     &domain.UpsertCategoryRequest{Name: "", Color: "#2563eb", Priority: 1},
			expectedErr: ErrEmptyName,
			field:       "name",
		},
		{
			name:        "Nome só com espaços",
			request:     &domain.UpsertCategoryRequest{Name: "   ", Color: "#2563eb", Priority: 1},
			expectedErr: ErrEmptyName,
			field:       "name",
		},
		{
			name:        "Prioridade zero",
			request:     &domain.UpsertCategoryRequest{Name: "Loja", Color: "#2563eb", Priority: 0},
			expectedErr: ErrInvalidPriority,
			field:       "priority",
		},
		{
			name:        "Prioridade negativa",
			request:     &domain.UpsertCategoryRequest{Name: "Loja", Color: "#2563eb", Priority: -3},
			expectedErr: ErrInvalidPriority,
			field:       "priority",
		},
		{
			name:        "Cor sem cerquilha",
			request:     &domain.UpsertCategoryRequest{Name: "Loja", Color: "2563eb", Priority: 1},
			expectedErr: ErrInvalidColor,
			field:       "color",
		},
		{
			name:        "Cor com dígito inválido",
			request:     &domain.UpsertCategoryRequest{Name: "Loja", Color: "#25g3eb", Priority: 1},
			expectedErr: ErrInvalidColor,
			field:       "color",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// A validação falha antes de qualquer acesso ao repositório
			category, err := service.UpsertCategory("STR001", tt.request)

			assert.Nil(t, category)
			assert.ErrorIs(t, err, tt.expectedErr)

			var validationErr *ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tt.field, validationErr.Field)
		})
	}
}

func TestUpsertCategory_NormalizaPalavrasChave(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCategoryRepo := mocks.NewMockCategoryRepository(ctrl)
	mockStoreRepo := mocks.NewMockStoreRepository(ctrl)
	service := NewService(mockCategoryRepo, mockStoreRepo)

	mockCategoryRepo.EXPECT().
		Upsert(gomock.Any()).
		DoAndReturn(func(category *domain.Category) (*domain.Category, error) {
			assert.Equal(t, []string{"produto", "preço"}, category.Keywords)
			assert.Equal(t, "Loja", category.Name)
			assert.Equal(t, "#2563eb", category.Color)
			return category, nil
		})

	category, err := service.UpsertCategory("STR001", &domain.UpsertCategoryRequest{
		Name:     "  Loja ",
		Color:    "#2563EB",
		Priority: 3,
		Keywords: []string{" Produto", "", "PREÇO ", "  "},
	})

	require.NoError(t, err)
	assert.Equal(t, "STR001", category.StoreID)
}

func TestDeleteCategory(t *testing.T) {
	existing := &domain.Category{ID: "CAT003", StoreID: "STR001", Name: "Loja"}
	target := &domain.Category{ID: "CAT006", StoreID: "STR001", Name: "Outros"}

	tests := []struct {
		name        string
		reassignTo  string
		setup       func(repo *mocks.MockCategoryRepository)
		expectedErr error
	}{
		{
			name: "Categoria sem mensagens é removida direto",
			setup: func(repo *mocks.MockCategoryRepository) {
				repo.EXPECT().GetByID("STR001", "CAT003").Return(existing, nil)
				repo.EXPECT().CountMessages("CAT003").Return(0, nil)
				repo.EXPECT().Delete("STR001", "CAT003").Return(nil)
			},
		},
		{
			name: "Categoria com mensagens exige destino de reatribuição",
			setup: func(repo *mocks.MockCategoryRepository) {
				repo.EXPECT().GetByID("STR001", "CAT003").Return(existing, nil)
				repo.EXPECT().CountMessages("CAT003").Return(12, nil)
			},
			expectedErr: ErrCategoryInUse,
		},
		{
			name:       "Destino igual à própria categoria é rejeitado",
			reassignTo: "CAT003",
			setup: func(repo *mocks.MockCategoryRepository) {
				repo.EXPECT().GetByID("STR001", "CAT003").Return(existing, nil)
				repo.EXPECT().CountMessages("CAT003").Return(12, nil)
			},
			expectedErr: ErrCategoryInUse,
		},
		{
			name:       "Destino inexistente é rejeitado",
			reassignTo: "CAT999",
			setup: func(repo *mocks.MockCategoryRepository) {
				repo.EXPECT().GetByID("STR001", "CAT003").Return(existing, nil)
				repo.EXPECT().CountMessages("CAT003").Return(12, nil)
				repo.EXPECT().GetByID("STR001", "CAT999").Return(nil, nil)
			},
			expectedErr: ErrCategoryNotFound,
		},
		{
			name:       "Remoção com reatribuição válida",
			reassignTo: "CAT006",
			setup: func(repo *mocks.MockCategoryRepository) {
				repo.EXPECT().GetByID("STR001", "CAT003").Return(existing, nil)
				repo.EXPECT().CountMessages("CAT003").Return(12, nil)
				repo.EXPECT().GetByID("STR001", "CAT006").Return(target, nil)
				repo.EXPECT().DeleteWithReassign(gomock.Any(), "STR001", "CAT003", "CAT006").Return(nil)
			},
		},
		{
			name: "Categoria inexistente",
			setup: func(repo *mocks.MockCategoryRepository) {
				repo.EXPECT().GetByID("STR001", "CAT003").Return(nil, nil)
			},
			expectedErr: ErrCategoryNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockCategoryRepo := mocks.NewMockCategoryRepository(ctrl)
			mockStoreRepo := mocks.NewMockStoreRepository(ctrl)
			tt.setup(mockCategoryRepo)

			service := NewService(mockCategoryRepo, mockStoreRepo)

			err := service.DeleteCategory(context.Background(), "STR001", "CAT003", tt.reassignTo)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestUpdateSettings(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCategoryRepo := mocks.NewMockCategoryRepository(ctrl)
	mockStoreRepo := mocks.NewMockStoreRepository(ctrl)
	service := NewService(mockCategoryRepo, mockStoreRepo)

	current := &domain.StoreSettings{
		StoreID:          "STR001",
		UrgencyKeywords:  []string{"urgente"},
		UrgencyThreshold: 1,
	}

	mockStoreRepo.EXPECT().GetSettings("STR001").Return(current, nil)
	mockStoreRepo.EXPECT().SaveSettings(gomock.Any()).Return(nil)

	keywords := []string{" Urgente", "SOCORRO", ""}
	threshold := 2

	settings, err := service.UpdateSettings("STR001", &domain.UpdateStoreSettingsRequest{
		UrgencyKeywords:  &keywords,
		UrgencyThreshold: &threshold,
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"urgente", "socorro"}, settings.UrgencyKeywords)
	assert.Equal(t, 2, settings.UrgencyThreshold)
}

func TestUpdateSettings_LimiteInvalido(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCategoryRepo := mocks.NewMockCategoryRepository(ctrl)
	mockStoreRepo := mocks.NewMockStoreRepository(ctrl)
	service := NewService(mockCategoryRepo, mockStoreRepo)

	mockStoreRepo.EXPECT().GetSettings("STR001").Return(&domain.StoreSettings{StoreID: "STR001"}, nil)

	threshold := 0
	settings, err := service.UpdateSettings("STR001", &domain.UpdateStoreSettingsRequest{
		UrgencyThreshold: &threshold,
	})

	assert.Nil(t, settings)
	assert.ErrorIs(t, err, ErrInvalidPriority)
}
