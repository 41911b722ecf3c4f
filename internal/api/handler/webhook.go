package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	evolutiondomain "github.com/zaytech/message-dashboard-api/infrastructure/integrator/evolution/domain"
	"github.com/zaytech/message-dashboard-api/internal/domain"
	"github.com/zaytech/message-dashboard-api/internal/usecases/categorizing"
	"github.com/zaytech/message-dashboard-api/internal/usecases/messaging"
	"github.com/zaytech/message-dashboard-api/pkg/apiErrors"
	"github.com/zaytech/message-dashboard-api/pkg/utils"
)

// EvolutionWebhook recebe os eventos de mensagem da Evolution API.
// Eventos que não são mensagem de cliente (enviadas pela própria loja,
// sem corpo de texto) são aceitos e ignorados, para o gateway não
// reentregar. Um erro de configuração da loja devolve 503 de propósito:
// a Evolution reenvia o evento e a mensagem é classificada quando o
// lojista corrigir as categorias.
func EvolutionWebhook(service messaging.Messenger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		var event evolutiondomain.WebhookEvent
		if err := json.NewDecoder(r.Body).Decode(&event); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Payload do webhook inválido: "+err.Error(), nil)
			return
		}

		if event.Instance == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Instância não informada no evento", nil)
			return
		}

		// Mensagens enviadas pela própria loja não entram no funil
		if event.Data.Key.FromMe {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		body := event.Data.Message.Body()
		if event.Event != "messages.upsert" || body == "" {
			logrus.WithFields(logrus.Fields{
				"event":    event.Event,
				"instance": event.Instance,
			}).Debugf("Evento do webhook ignorado: %s", utils.PrettyJson(event))
			w.WriteHeader(http.StatusNoContent)
			return
		}

		// Payloads sem timestamp caem no horário de recepção em vez de
		// datar os contadores na época Unix
		var receivedAt time.Time
		if event.Data.MessageTimestamp > 0 {
			receivedAt = time.Unix(event.Data.MessageTimestamp, 0)
		}

		ingestRequest := &domain.IngestMessageRequest{
			InstanceName: event.Instance,
			ExternalID:   event.Data.Key.ID,
			SenderID:     event.Data.Key.RemoteJID,
			Body:         body,
			ReceivedAt:   receivedAt,
		}

		message, err := service.IngestMessage(r.Context(), ingestRequest)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"instance": event.Instance,
				"error":    err.Error(),
			}).Error("Erro ao processar mensagem do webhook")

			switch {
			case categorizing.IsConfigurationError(err):
				apiErrors.WriteError(w, apiErrors.ErrStoreMisconfigured, "Loja sem categorias configuradas, mensagem aguardando nova entrega", nil)

			case errors.Is(err, messaging.ErrStoreNotFound):
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Nenhuma loja vinculada à instância", map[string]interface{}{
					"instance": event.Instance,
				})

			default:
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao processar mensagem", nil)
			}
			return
		}

		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(message); err != nil {
			logrus.WithError(err).Error("Erro ao codificar resposta do webhook")
		}
	})
}
