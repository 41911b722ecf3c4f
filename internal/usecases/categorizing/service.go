package categorizing

import (
	"context"
	"regexp"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/zaytech/message-dashboard-api/infrastructure/repository"
	"github.com/zaytech/message-dashboard-api/internal/domain"
	"github.com/zaytech/message-dashboard-api/pkg/utils"
)

// colorToken valida o formato de cor aceito pelo dashboard (#rrggbb)
var colorToken = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// Registry é o registro de categorias por loja: consulta ordenada para o
// classificador, upsert validado e remoção com política de reatribuição
type Registry interface {
	ListCategories(storeID string) ([]*domain.Category, error)
	UpsertCategory(storeID string, req *domain.UpsertCategoryRequest) (*domain.Category, error)
	DeleteCategory(ctx context.Context, storeID, categoryID, reassignTo string) error
	GetSettings(storeID string) (*domain.StoreSettings, error)
	UpdateSettings(storeID string, req *domain.UpdateStoreSettingsRequest) (*domain.StoreSettings, error)
}

type Service struct {
	categoryRepo repository.CategoryRepository
	storeRepo    repository.StoreRepository
}

func NewService(categoryRepo repository.CategoryRepository, storeRepo repository.StoreRepository) Registry {
	return &Service{
		categoryRepo: categoryRepo,
		storeRepo:    storeRepo,
	}
}

func (s *Service) ListCategories(storeID string) ([]*domain.Category, error) {
	return s.categoryRepo.ListByStore(storeID)
}

// UpsertCategory valida a configuração e normaliza as palavras-chave
// antes de persistir. Toda a validação acontece aqui, no momento da
// configuração, para que Classify permaneça uma função total.
func (s *Service) UpsertCategory(storeID string, req *domain.UpsertCategoryRequest) (*domain.Category, error) {
	if err := validateCategory(req); err != nil {
		return nil, err
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, err
	}

	category := &domain.Category{
		ID:       id,
		StoreID:  storeID,
		Name:     strings.TrimSpace(req.Name),
		Color:    strings.ToLower(req.Color),
		Priority: req.Priority,
		Keywords: normalizeKeywords(req.Keywords),
	}

	saved, err := s.categoryRepo.Upsert(category)
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"store_id": storeID,
		"category": saved.Name,
		"priority": saved.Priority,
	}).Info("Categoria salva")

	return saved, nil
}

// DeleteCategory aplica a política de remoção: categorias com mensagens
// classificadas só podem ser removidas com uma categoria de destino para
// reatribuição, preservando a invariante de que toda mensagem
// classificada aponta para uma categoria válida.
func (s *Service) DeleteCategory(ctx context.Context, storeID, categoryID, reassignTo string) error {
	category, err := s.categoryRepo.GetByID(storeID, categoryID)
	if err != nil {
		return err
	}
	if category == nil {
		return ErrCategoryNotFound
	}

	count, err := s.categoryRepo.CountMessages(categoryID)
	if err != nil {
		return err
	}

	if count == 0 {
		return s.categoryRepo.Delete(storeID, categoryID)
	}

	if reassignTo == "" || reassignTo == categoryID {
		return ErrCategoryInUse
	}

	target, err := s.categoryRepo.GetByID(storeID, reassignTo)
	if err != nil {
		return err
	}
	if target == nil {
		return ErrCategoryNotFound
	}

	return s.categoryRepo.DeleteWithReassign(ctx, storeID, categoryID, reassignTo)
}

func (s *Service) GetSettings(storeID string) (*domain.StoreSettings, error) {
	return s.storeRepo.GetSettings(storeID)
}

func (s *Service) UpdateSettings(storeID string, req *domain.UpdateStoreSettingsRequest) (*domain.StoreSettings, error) {
	settings, err := s.storeRepo.GetSettings(storeID)
	if err != nil {
		return nil, err
	}

	if req.UrgencyKeywords != nil {
		settings.UrgencyKeywords = normalizeKeywords(*req.UrgencyKeywords)
	}

	if req.UrgencyThreshold != nil {
		if *req.UrgencyThreshold < 1 {
			return nil, &ValidationError{Field: "urgency_threshold", Err: ErrInvalidPriority}
		}
		settings.UrgencyThreshold = *req.UrgencyThreshold
	}

	if err := s.storeRepo.SaveSettings(settings); err != nil {
		return nil, err
	}

	return settings, nil
}

func validateCategory(req *domain.UpsertCategoryRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return &ValidationError{Field: "name", Err: ErrEmptyName}
	}

	if req.Priority < 1 {
		return &ValidationError{Field: "priority", Err: ErrInvalidPriority}
	}

	if !colorToken.MatchString(req.Color) {
		return &ValidationError{Field: "color", Err: ErrInvalidColor}
	}

	return nil
}

// normalizeKeywords descarta entradas vazias e garante minúsculas, para
// que o match da classificação nunca precise normalizar palavra-chave
func normalizeKeywords(keywords []string) []string {
	normalized := make([]string, 0, len(keywords))
	for _, keyword := range keywords {
		keyword = strings.ToLower(strings.TrimSpace(keyword))
		if keyword == "" {
			continue
		}
		normalized = append(normalized, keyword)
	}
	return normalized
}
