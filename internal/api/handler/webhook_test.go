package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zaytech/message-dashboard-api/internal/domain"
	messagingmocks "github.com/zaytech/message-dashboard-api/internal/usecases/messaging/mocks"
	"go.uber.org/mock/gomock"
)

func TestEvolutionWebhook(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := messagingmocks.NewMockMessenger(ctrl)

	payload := `{
		"event": "messages.upsert",
		"instance": "demo-store",
		"data": {
			"key": {"remoteJid": "5511988887777@s.whatsapp.net", "fromMe": false, "id": "3EB0ABC123"},
			"message": {"conversation": "vou comprar um produto novo"},
			"messageTimestamp": 1741184400
		}
	}`

	categoryID := "CAT003"
	service.EXPECT().
		IngestMessage(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, req *domain.IngestMessageRequest) (*domain.Message, error) {
			// A chave da mensagem no gateway acompanha a requisição para a
			// reentrega reaproveitar a linha persistida
			assert.Equal(t, "3EB0ABC123", req.ExternalID)
			assert.Equal(t, "demo-store", req.InstanceName)
			assert.Equal(t, int64(1741184400), req.ReceivedAt.Unix())
			return &domain.Message{
				ID:         "MSG001",
				StoreID:    "STR001",
				CategoryID: &categoryID,
				Pending:    true,
			}, nil
		})

	request := httptest.NewRequest(http.MethodPost, "/v1/webhooks/evolution", strings.NewReader(payload))
	recorder := httptest.NewRecorder()

	EvolutionWebhook(service).ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusCreated, recorder.Code)
}

func TestEvolutionWebhook_SemTimestamp(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := messagingmocks.NewMockMessenger(ctrl)

	payload := `{
		"event": "messages.upsert",
		"instance": "demo-store",
		"data": {
			"key": {"remoteJid": "5511988887777@s.whatsapp.net", "fromMe": false, "id": "3EB0DEF456"},
			"message": {"conversation": "oi, tudo bem?"}
		}
	}`

	service.EXPECT().
		IngestMessage(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, req *domain.IngestMessageRequest) (*domain.Message, error) {
			// Sem timestamp no payload, a data de recepção fica zerada para a
			// ingestão cair no horário corrente em vez da época Unix
			require.True(t, req.ReceivedAt.IsZero())
			return &domain.Message{ID: "MSG002", StoreID: "STR001", Pending: true}, nil
		})

	request := httptest.NewRequest(http.MethodPost, "/v1/webhooks/evolution", strings.NewReader(payload))
	recorder := httptest.NewRecorder()

	EvolutionWebhook(service).ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusCreated, recorder.Code)
}

func TestEvolutionWebhook_MensagemDaPropriaLoja(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := messagingmocks.NewMockMessenger(ctrl)

	payload := `{
		"event": "messages.upsert",
		"instance": "demo-store",
		"data": {
			"key": {"remoteJid": "5511988887777@s.whatsapp.net", "fromMe": true, "id": "3EB0GHI789"},
			"message": {"conversation": "Chego em 10 minutos"}
		}
	}`

	request := httptest.NewRequest(http.MethodPost, "/v1/webhooks/evolution", strings.NewReader(payload))
	recorder := httptest.NewRecorder()

	EvolutionWebhook(service).ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusNoContent, recorder.Code)
}
