package aggregating

import (
	"time"

	"github.com/sirupsen/logrus"
	"github.com/zaytech/message-dashboard-api/infrastructure/repository"
	"github.com/zaytech/message-dashboard-api/internal/domain"
)

// Aggregator expõe as leituras agregadas consumidas pelo dashboard:
// o snapshot de estatísticas dos cards e as fatias do gráfico de pizza
type Aggregator interface {
	GetStoreStats(storeID string, date time.Time) (*domain.StoreStats, error)
	GetCategoryChart(storeID string, date time.Time) ([]domain.CategorySlice, error)
}

type Service struct {
	categoryRepo repository.CategoryRepository
	statsRepo    repository.MessageStatsRepository
	productRepo  repository.ProductRepository
	supplierRepo repository.SupplierRepository
}

func NewService(
	categoryRepo repository.CategoryRepository,
	statsRepo repository.MessageStatsRepository,
	productRepo repository.ProductRepository,
	supplierRepo repository.SupplierRepository,
) Aggregator {
	return &Service{
		categoryRepo: categoryRepo,
		statsRepo:    statsRepo,
		productRepo:  productRepo,
		supplierRepo: supplierRepo,
	}
}

// GetStoreStats monta o snapshot do dia a partir dos contadores
// incrementais e mescla os contadores externos de estoque e fornecedores
func (s *Service) GetStoreStats(storeID string, date time.Time) (*domain.StoreStats, error) {
	counters, err := s.statsRepo.GetCounters(storeID, date)
	if err != nil {
		return nil, err
	}

	categories, err := s.categoryRepo.ListByStore(storeID)
	if err != nil {
		return nil, err
	}

	stats := &domain.StoreStats{
		TotalMessages:     counters.Total,
		PendingMessages:   counters.Pending,
		UrgentMessages:    counters.Urgent,
		PerCategoryCounts: make(map[string]int, len(categories)),
	}

	for _, category := range categories {
		stats.PerCategoryCounts[category.ID] = counters.ByCategory[category.ID]
	}

	monthStart := time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, date.Location())

	inventory, err := s.productRepo.GetInventorySummary(storeID, monthStart)
	if err != nil {
		logrus.WithError(err).Warn("Erro ao obter resumo de estoque, mantendo contadores zerados")
		inventory = &domain.InventorySummary{}
	}

	totalSuppliers, err := s.supplierRepo.CountByStore(storeID)
	if err != nil {
		logrus.WithError(err).Warn("Erro ao contar fornecedores, mantendo contador zerado")
	}

	MergeExternal(stats, inventory, totalSuppliers)

	return stats, nil
}

func (s *Service) GetCategoryChart(storeID string, date time.Time) ([]domain.CategorySlice, error) {
	stats, err := s.GetStoreStats(storeID, date)
	if err != nil {
		return nil, err
	}

	categories, err := s.categoryRepo.ListByStore(storeID)
	if err != nil {
		return nil, err
	}

	return Chart(categories, stats), nil
}
