package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/zaytech/message-dashboard-api/infrastructure/integrator/evolution"
	"github.com/zaytech/message-dashboard-api/infrastructure/repository"
	"github.com/zaytech/message-dashboard-api/internal/config"
	"github.com/zaytech/message-dashboard-api/internal/domain"
)

// PendingReminderConfig representa a configuração da varredura de
// mensagens pendentes
type PendingReminderConfig struct {
	CronSchedule   string
	ThresholdHours int
	SyncEnabled    bool
}

// PendingReminderService varre periodicamente as mensagens pendentes de
// cada loja ativa e avisa o lojista pelo próprio WhatsApp quando há
// mensagens esperando resposta há mais tempo que o limite configurado.
type PendingReminderService struct {
	scheduler           *gocron.Scheduler
	config              PendingReminderConfig
	storeRepo           repository.StoreRepository
	messageRepo         repository.MessageRepository
	evolutionService    evolution.EvolutionIntegrator
	syncRunning         bool
	syncMutex           sync.Mutex
	lastScanStartedAt   time.Time
	lastScanCompletedAt time.Time
}

func NewPendingReminderService(
	storeRepo repository.StoreRepository,
	messageRepo repository.MessageRepository,
	evolutionService evolution.EvolutionIntegrator,
	appConfig *config.Config,
) *PendingReminderService {
	reminderConfig := PendingReminderConfig{
		CronSchedule:   appConfig.PendingReminder.CronSchedule,
		ThresholdHours: appConfig.PendingReminder.ThresholdHours,
		SyncEnabled:    appConfig.PendingReminder.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":   reminderConfig.CronSchedule,
		"threshold_hours": reminderConfig.ThresholdHours,
		"sync_enabled":    reminderConfig.SyncEnabled,
	}).Info("Configuração da varredura de pendências carregada")

	return &PendingReminderService{
		scheduler:        scheduler,
		config:           reminderConfig,
		storeRepo:        storeRepo,
		messageRepo:      messageRepo,
		evolutionService: evolutionService,
		syncRunning:      false,
	}
}

// Start inicia o agendador
func (s *PendingReminderService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Varredura de pendências desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador da varredura de pendências")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.scanAllStores()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar varredura de pendências: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador da varredura de pendências")
		s.scheduler.Stop()
	}()

	return nil
}

// scanAllStores varre as mensagens pendentes de todas as lojas ativas
func (s *PendingReminderService) scanAllStores() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Varredura de pendências já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.syncMutex.Unlock()

	startTime := time.Now()
	s.lastScanStartedAt = startTime

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	logrus.Info("Iniciando varredura de pendências para todas as lojas ativas")

	stores, err := s.storeRepo.ListStores([]domain.StoreStatus{domain.StoreStatusActive})
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar lista de lojas para varredura de pendências")
		return
	}

	for _, store := range stores {
		s.scanStore(store)
	}

	duration := time.Since(startTime)
	logrus.WithFields(logrus.Fields{
		"duration": duration.String(),
		"stores":   len(stores),
	}).Info("Varredura de pendências concluída")

	s.lastScanCompletedAt = time.Now()
}

// scanStore conta as mensagens pendentes da loja mais antigas que o
// limite e envia o lembrete para o telefone do lojista
func (s *PendingReminderService) scanStore(store *domain.Store) {
	pending := true
	cutoff := time.Now().Add(-time.Duration(s.config.ThresholdHours) * time.Hour)

	filters := &domain.MessageFilters{
		Pending: &pending,
		Until:   &cutoff,
	}

	messages, err := s.messageRepo.ListByStore(store.ID, filters)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"store_id": store.ID,
			"error":    err.Error(),
		}).Error("Erro ao listar pendências da loja")
		return
	}

	if len(messages) == 0 {
		return
	}

	urgentCount := 0
	for _, message := range messages {
		if message.Urgent {
			urgentCount++
		}
	}

	logrus.WithFields(logrus.Fields{
		"store_id": store.ID,
		"pending":  len(messages),
		"urgent":   urgentCount,
	}).Info("Pendências antigas encontradas para loja")

	if store.Phone == nil || *store.Phone == "" {
		logrus.WithField("store_id", store.ID).Warn("Loja sem telefone cadastrado. Pulando lembrete.")
		return
	}

	text := fmt.Sprintf(
		"Você tem %d mensagem(ns) aguardando resposta há mais de %dh",
		len(messages), s.config.ThresholdHours,
	)
	if urgentCount > 0 {
		text = fmt.Sprintf("%s, sendo %d urgente(s)", text, urgentCount)
	}

	if err := s.evolutionService.SendText(store.InstanceName, *store.Phone, text); err != nil {
		logrus.WithFields(logrus.Fields{
			"store_id": store.ID,
			"error":    err.Error(),
		}).Error("Erro ao enviar lembrete de pendências")
		return
	}

	logrus.WithField("store_id", store.ID).Info("Lembrete de pendências enviado com sucesso")
}

// TriggerManualSync inicia manualmente uma varredura de pendências
func (s *PendingReminderService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Varredura de pendências já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando varredura manual de pendências")
	go s.scanAllStores()
}

// GetStatus retorna o status atual do agendador
func (s *PendingReminderService) GetStatus() map[string]any {
	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"threshold_hours":        s.config.ThresholdHours,
		"last_scan_started_at":   s.lastScanStartedAt,
		"last_scan_completed_at": s.lastScanCompletedAt,
	}
}
