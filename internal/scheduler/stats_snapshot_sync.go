package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/zaytech/message-dashboard-api/infrastructure/repository"
	"github.com/zaytech/message-dashboard-api/internal/config"
	"github.com/zaytech/message-dashboard-api/internal/domain"
	"github.com/zaytech/message-dashboard-api/internal/usecases/aggregating"
)

// StatsSnapshotSyncConfig representa a configuração do recomputo noturno
// dos contadores de mensagens
type StatsSnapshotSyncConfig struct {
	CronSchedule string
	LookbackDays int
	SyncEnabled  bool
}

// StatsSnapshotSyncService recalcula os contadores diários de cada loja a
// partir do log de mensagens. Os incrementos atômicos feitos durante a
// classificação são a fonte em tempo real; o recomputo corrige qualquer
// desvio acumulado (falha parcial entre persistir e incrementar, por
// exemplo) substituindo o snapshot pelo fold do log.
type StatsSnapshotSyncService struct {
	scheduler           *gocron.Scheduler
	config              StatsSnapshotSyncConfig
	storeRepo           repository.StoreRepository
	categoryRepo        repository.CategoryRepository
	messageRepo         repository.MessageRepository
	statsRepo           repository.MessageStatsRepository
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

// NewStatsSnapshotSyncService cria uma nova instância do serviço de
// recomputo de contadores
func NewStatsSnapshotSyncService(
	storeRepo repository.StoreRepository,
	categoryRepo repository.CategoryRepository,
	messageRepo repository.MessageRepository,
	statsRepo repository.MessageStatsRepository,
	appConfig *config.Config,
) *StatsSnapshotSyncService {
	syncConfig := StatsSnapshotSyncConfig{
		CronSchedule: appConfig.StatsSync.CronSchedule,
		LookbackDays: appConfig.StatsSync.LookbackDays,
		SyncEnabled:  appConfig.StatsSync.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"lookback_days": syncConfig.LookbackDays,
		"sync_enabled":  syncConfig.SyncEnabled,
	}).Info("Configuração do recomputo de contadores carregada")

	return &StatsSnapshotSyncService{
		scheduler:    scheduler,
		config:       syncConfig,
		storeRepo:    storeRepo,
		categoryRepo: categoryRepo,
		messageRepo:  messageRepo,
		statsRepo:    statsRepo,
		syncRunning:  false,
	}
}

// Start inicia o agendador
func (s *StatsSnapshotSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Recomputo de contadores desabilitado por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de recomputo de contadores")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.recomputeAllStores()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar recomputo de contadores: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de recomputo de contadores")
		s.scheduler.Stop()
	}()

	return nil
}

// recomputeAllStores refaz o fold do log de mensagens de todas as lojas
// ativas para as datas do período de lookback
func (s *StatsSnapshotSyncService) recomputeAllStores() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Recomputo de contadores já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.syncMutex.Unlock()

	startTime := time.Now()
	s.lastSyncStartedAt = startTime

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	logrus.Info("Iniciando recomputo de contadores para todas as lojas ativas")

	stores, err := s.storeRepo.ListStores([]domain.StoreStatus{domain.StoreStatusActive})
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar lista de lojas para recomputo de contadores")
		return
	}

	if len(stores) == 0 {
		logrus.Info("Nenhuma loja ativa encontrada para recomputo de contadores")
		return
	}

	dates := s.getDatesToProcess()
	logrus.WithFields(logrus.Fields{
		"days":       s.config.LookbackDays,
		"start_date": dates[len(dates)-1].Format(time.DateOnly),
		"end_date":   dates[0].Format(time.DateOnly),
	}).Info("Período para recomputo de contadores")

	for _, store := range stores {
		for _, date := range dates {
			s.recomputeStoreDate(store, date)
		}
	}

	duration := time.Since(startTime)
	logrus.WithFields(logrus.Fields{
		"duration": duration.String(),
		"stores":   len(stores),
		"days":     s.config.LookbackDays,
	}).Info("Recomputo de contadores concluído")

	s.lastSyncCompletedAt = time.Now()
}

// getDatesToProcess cria o conjunto de datas a recomputar, de hoje para
// trás. Hoje entra no conjunto porque os incrementos do dia corrente são
// os mais sujeitos a desvio.
func (s *StatsSnapshotSyncService) getDatesToProcess() []time.Time {
	dates := make([]time.Time, s.config.LookbackDays)
	for i := 0; i < s.config.LookbackDays; i++ {
		dates[i] = time.Now().AddDate(0, 0, -i)
	}
	return dates
}

// recomputeStoreDate refaz o fold das mensagens de uma loja em uma data e
// substitui o snapshot persistido
func (s *StatsSnapshotSyncService) recomputeStoreDate(store *domain.Store, date time.Time) {
	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	filters := &domain.MessageFilters{
		Since: &dayStart,
		Until: &dayEnd,
	}

	messages, err := s.messageRepo.ListByStore(store.ID, filters)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"store_id": store.ID,
			"date":     date.Format(time.DateOnly),
			"error":    err.Error(),
		}).Error("Erro ao listar mensagens para recomputo de contadores")
		return
	}

	categories, err := s.categoryRepo.ListByStore(store.ID)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"store_id": store.ID,
			"date":     date.Format(time.DateOnly),
			"error":    err.Error(),
		}).Error("Erro ao listar categorias para recomputo de contadores")
		return
	}

	stats := aggregating.Fold(categories, messages)

	counters := &domain.MessageCounters{
		StoreID:    store.ID,
		Date:       dayStart.Format(time.DateOnly),
		Total:      stats.TotalMessages,
		Pending:    stats.PendingMessages,
		Urgent:     stats.UrgentMessages,
		ByCategory: stats.PerCategoryCounts,
	}

	if err := s.statsRepo.ReplaceCounters(context.Background(), counters); err != nil {
		logrus.WithFields(logrus.Fields{
			"store_id": store.ID,
			"date":     date.Format(time.DateOnly),
			"error":    err.Error(),
		}).Error("Erro ao substituir contadores recomputados")
		return
	}

	logrus.WithFields(logrus.Fields{
		"store_id": store.ID,
		"date":     date.Format(time.DateOnly),
		"total":    counters.Total,
		"pending":  counters.Pending,
		"urgent":   counters.Urgent,
	}).Info("Contadores recomputados com sucesso para loja e data")
}

// TriggerManualSync inicia manualmente um recomputo de contadores
func (s *StatsSnapshotSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Recomputo de contadores já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando recomputo manual de contadores")
	go s.recomputeAllStores()
}

// GetStatus retorna o status atual do agendador
func (s *StatsSnapshotSyncService) GetStatus() map[string]any {
	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_lookback_days":     s.config.LookbackDays,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
