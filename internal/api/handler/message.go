package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/zaytech/message-dashboard-api/infrastructure/repository"
	"github.com/zaytech/message-dashboard-api/internal/domain"
	"github.com/zaytech/message-dashboard-api/internal/usecases/messaging"
	"github.com/zaytech/message-dashboard-api/pkg/apiErrors"
	"github.com/zaytech/message-dashboard-api/pkg/utils"
)

// parseMessageFilters monta os filtros de listagem a partir da query
// string. Valores ausentes não filtram.
func parseMessageFilters(r *http.Request) (*domain.MessageFilters, error) {
	filters := &domain.MessageFilters{}

	if categoryID := r.URL.Query().Get("category_id"); categoryID != "" {
		filters.CategoryID = &categoryID
	}

	if pendingParam := r.URL.Query().Get("pending"); pendingParam != "" {
		pending, err := strconv.ParseBool(pendingParam)
		if err != nil {
			return nil, errors.New("parâmetro pending inválido: " + pendingParam)
		}
		filters.Pending = &pending
	}

	if urgentParam := r.URL.Query().Get("urgent"); urgentParam != "" {
		urgent, err := strconv.ParseBool(urgentParam)
		if err != nil {
			return nil, errors.New("parâmetro urgent inválido: " + urgentParam)
		}
		filters.Urgent = &urgent
	}

	if sinceParam := r.URL.Query().Get("since"); sinceParam != "" {
		since, err := utils.ParseDate(sinceParam)
		if err != nil {
			return nil, errors.New("parâmetro since inválido, use o formato YYYY-MM-DD")
		}
		filters.Since = since
	}

	if untilParam := r.URL.Query().Get("until"); untilParam != "" {
		until, err := utils.ParseDate(untilParam)
		if err != nil {
			return nil, errors.New("parâmetro until inválido, use o formato YYYY-MM-DD")
		}
		filters.Until = until
	}

	return filters, nil
}

func ListMessages(service messaging.Messenger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		storeID := httprouter.ParamsFromContext(r.Context()).ByName("store_id")
		if storeID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da loja é obrigatório", nil)
			return
		}

		filters, err := parseMessageFilters(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		messages, err := service.ListMessages(storeID, filters)
		if err != nil {
			logrus.Error("Error listing messages:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar mensagens no banco de dados", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")

		if err := json.NewEncoder(w).Encode(messages); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

// ReclassifyMessage troca a categoria de uma mensagem já classificada.
// O corpo carrega a versão lida pelo operador; uma versão defasada
// resulta em conflito para o cliente recarregar a mensagem.
func ReclassifyMessage(service messaging.Messenger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - ReclassifyMessage")

		w.Header().Set("Content-Type", "application/json")

		params := httprouter.ParamsFromContext(r.Context())
		storeID := params.ByName("store_id")
		messageID := params.ByName("message_id")
		if storeID == "" || messageID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "IDs da loja e da mensagem são obrigatórios", nil)
			return
		}

		var reclassifyRequest domain.ReclassifyMessageRequest
		if err := json.NewDecoder(r.Body).Decode(&reclassifyRequest); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
			return
		}

		message, err := service.ReclassifyMessage(r.Context(), storeID, messageID, &reclassifyRequest)
		if err != nil {
			logrus.Error("Error reclassifying message:", err)

			switch {
			case errors.Is(err, messaging.ErrMessageNotFound):
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Mensagem não encontrada", map[string]interface{}{
					"message_id": messageID,
				})

			case errors.Is(err, messaging.ErrUnknownCategory):
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Categoria de destino não existe na loja", nil)

			case errors.Is(err, repository.ErrStaleVersion):
				apiErrors.WriteError(w, apiErrors.ErrVersionConflict, "A mensagem foi alterada por outra operação. Recarregue e tente novamente", nil)

			default:
				apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao reclassificar mensagem", nil)
			}
			return
		}

		if err := json.NewEncoder(w).Encode(message); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

// ReplyMessage envia a resposta do lojista pelo gateway e marca as
// mensagens pendentes do remetente como respondidas
func ReplyMessage(service messaging.Messenger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - ReplyMessage")

		w.Header().Set("Content-Type", "application/json")

		storeID := httprouter.ParamsFromContext(r.Context()).ByName("store_id")
		if storeID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da loja é obrigatório", nil)
			return
		}

		var replyRequest domain.ReplyRequest
		if err := json.NewDecoder(r.Body).Decode(&replyRequest); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
			return
		}

		if replyRequest.SenderID == "" || replyRequest.Text == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Remetente e texto da resposta são obrigatórios", nil)
			return
		}

		replied, err := service.Reply(r.Context(), storeID, &replyRequest)
		if err != nil {
			logrus.Error("Error replying message:", err)

			switch {
			case errors.Is(err, messaging.ErrStoreNotFound):
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Loja não encontrada", nil)

			default:
				apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro ao enviar resposta pelo gateway", nil)
			}
			return
		}

		response := map[string]any{
			"replied": replied,
		}
		if err := json.NewEncoder(w).Encode(response); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}
