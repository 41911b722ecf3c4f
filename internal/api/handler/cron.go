package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/zaytech/message-dashboard-api/internal/domain"
	"github.com/zaytech/message-dashboard-api/internal/scheduler"
	"github.com/zaytech/message-dashboard-api/pkg/apiErrors"
	"github.com/zaytech/message-dashboard-api/pkg/middleware"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeStats           = "stats"
	CronJobTypePendingReminder = "pending-reminder"
	CronJobTypeAll             = "all"
)

// CronJobServices contém os serviços de cron necessários para executar manualmente
type CronJobServices struct {
	StatsSnapshotSyncService *scheduler.StatsSnapshotSyncService
	PendingReminderService   *scheduler.PendingReminderService
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunCronJob")

		// Apenas administradores podem executar cron jobs
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok || userClaims.UserRoleID != 1 {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Apenas administradores podem executar cron jobs", nil)
			return
		}

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		switch cronType {
		case CronJobTypeStats:
			if services.StatsSnapshotSyncService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de recomputo de contadores não disponível", nil)
				return
			}
			services.StatsSnapshotSyncService.TriggerManualSync()

		case CronJobTypePendingReminder:
			if services.PendingReminderService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de varredura de pendências não disponível", nil)
				return
			}
			services.PendingReminderService.TriggerManualSync()

		case CronJobTypeAll:
			if services.StatsSnapshotSyncService != nil {
				services.StatsSnapshotSyncService.TriggerManualSync()
			}
			if services.PendingReminderService != nil {
				services.PendingReminderService.TriggerManualSync()
			}

		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: stats, pending-reminder, all", nil)
			return
		}

		response := map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		}
		json.NewEncoder(w).Encode(response)
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetCronStatus")

		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok || userClaims.UserRoleID != 1 {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Apenas administradores podem verificar status de cron jobs", nil)
			return
		}

		status := map[string]any{
			"stats":            services.StatsSnapshotSyncService.GetStatus(),
			"pending-reminder": services.PendingReminderService.GetStatus(),
		}

		json.NewEncoder(w).Encode(status)
	}
}
