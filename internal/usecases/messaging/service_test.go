package messaging

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	evolutionmocks "github.com/zaytech/message-dashboard-api/infrastructure/integrator/evolution/mocks"
	"github.com/zaytech/message-dashboard-api/infrastructure/repository"
	"github.com/zaytech/message-dashboard-api/infrastructure/repository/mocks"
	"github.com/zaytech/message-dashboard-api/internal/domain"
	"github.com/zaytech/message-dashboard-api/internal/usecases/categorizing"
	"go.uber.org/mock/gomock"
)

type serviceMocks struct {
	storeRepo    *mocks.MockStoreRepository
	messageRepo  *mocks.MockMessageRepository
	statsRepo    *mocks.MockMessageStatsRepository
	categoryRepo *mocks.MockCategoryRepository
	gateway      *evolutionmocks.MockEvolutionIntegrator
}

func newServiceWithMocks(ctrl *gomock.Controller) (Messenger, *serviceMocks) {
	m := &serviceMocks{
		storeRepo:    mocks.NewMockStoreRepository(ctrl),
		messageRepo:  mocks.NewMockMessageRepository(ctrl),
		statsRepo:    mocks.NewMockMessageStatsRepository(ctrl),
		categoryRepo: mocks.NewMockCategoryRepository(ctrl),
		gateway:      evolutionmocks.NewMockEvolutionIntegrator(ctrl),
	}

	// O registro real em cima do repositório mockado exercita o mesmo
	// caminho de classificação usado em produção
	registry := categorizing.NewService(m.categoryRepo, m.storeRepo)
	service := NewService(m.storeRepo, m.messageRepo, m.statsRepo, registry, m.gateway)

	return service, m
}

func demoStore() *domain.Store {
	return &domain.Store{
		ID:           "STR001",
		Name:         "Loja Demonstração",
		InstanceName: "demo-store",
		Status:       domain.StoreStatusActive,
	}
}

func demoCategories() []*domain.Category {
	base := time.Date(2025, 1, 10, 9, 0, 0, 0, time.UTC)

	return []*domain.Category{
		{ID: "CAT001", StoreID: "STR001", Name: "Família", Priority: 1, Keywords: []string{"mãe", "pai"}, CreatedAt: base},
		{ID: "CAT003", StoreID: "STR001", Name: "Loja", Priority: 3, Keywords: []string{"produto", "comprar"}, CreatedAt: base.Add(time.Minute)},
		{ID: "CAT006", StoreID: "STR001", Name: "Outros", Priority: 5, Keywords: []string{}, CreatedAt: base.Add(2 * time.Minute)},
	}
}

func TestIngestMessage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newServiceWithMocks(ctrl)

	receivedAt := time.Date(2025, 3, 5, 14, 30, 0, 0, time.UTC)

	m.storeRepo.EXPECT().GetByInstanceName("demo-store").Return(demoStore(), nil)
	m.messageRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(message *domain.Message) (*domain.Message, error) {
			assert.Equal(t, "STR001", message.StoreID)
			assert.Equal(t, "vou comprar um produto novo", message.Body)
			return message, nil
		})
	m.categoryRepo.EXPECT().ListByStore("STR001").Return(demoCategories(), nil)
	m.storeRepo.EXPECT().GetSettings("STR001").Return(&domain.StoreSettings{
		StoreID:          "STR001",
		UrgencyThreshold: 1,
	}, nil)
	m.messageRepo.EXPECT().SetClassification(gomock.Any(), "CAT003", false).Return(nil)
	m.statsRepo.EXPECT().IncrementOnClassify(gomock.Any(), "STR001", "CAT003", receivedAt, false).Return(nil)

	message, err := service.IngestMessage(context.Background(), &domain.IngestMessageRequest{
		InstanceName: "demo-store",
		SenderID:     "5511988887777@s.whatsapp.net",
		Body:         "vou comprar um produto novo",
		ReceivedAt:   receivedAt,
	})

	require.NoError(t, err)
	require.NotNil(t, message.CategoryID)
	assert.Equal(t, "CAT003", *message.CategoryID)
	assert.False(t, message.Urgent)
	assert.True(t, message.Pending)
}

func TestIngestMessage_PalavraDeUrgencia(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newServiceWithMocks(ctrl)

	m.storeRepo.EXPECT().GetByInstanceName("demo-store").Return(demoStore(), nil)
	m.messageRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(message *domain.Message) (*domain.Message, error) {
		return message, nil
	})
	m.categoryRepo.EXPECT().ListByStore("STR001").Return(demoCategories(), nil)
	m.storeRepo.EXPECT().GetSettings("STR001").Return(&domain.StoreSettings{
		StoreID:          "STR001",
		UrgencyKeywords:  []string{"urgente"},
		UrgencyThreshold: 1,
	}, nil)
	// Loja tem prioridade 3, mas a palavra de urgência força o flag
	m.messageRepo.EXPECT().SetClassification(gomock.Any(), "CAT003", true).Return(nil)
	m.statsRepo.EXPECT().IncrementOnClassify(gomock.Any(), "STR001", "CAT003", gomock.Any(), true).Return(nil)

	message, err := service.IngestMessage(context.Background(), &domain.IngestMessageRequest{
		InstanceName: "demo-store",
		SenderID:     "5511988887777@s.whatsapp.net",
		Body:         "urgente: quero comprar hoje",
	})

	require.NoError(t, err)
	assert.True(t, message.Urgent)
}

func TestIngestMessage_LojaSemCategorias(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newServiceWithMocks(ctrl)

	m.storeRepo.EXPECT().GetByInstanceName("demo-store").Return(demoStore(), nil)
	m.messageRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(message *domain.Message) (*domain.Message, error) {
		return message, nil
	})
	m.categoryRepo.EXPECT().ListByStore("STR001").Return(nil, nil)

	message, err := service.IngestMessage(context.Background(), &domain.IngestMessageRequest{
		InstanceName: "demo-store",
		SenderID:     "5511988887777@s.whatsapp.net",
		Body:         "oi, tudo bem?",
	})

	// A mensagem crua fica persistida e o erro de configuração sobe para
	// o webhook devolver um status de retry
	assert.ErrorIs(t, err, categorizing.ErrNoCategories)
	require.NotNil(t, message)
	assert.Nil(t, message.CategoryID)
}

func TestIngestMessage_ReentregaDeMensagemClassificada(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newServiceWithMocks(ctrl)

	categoryID := "CAT003"
	existing := &domain.Message{
		ID:         "MSG001",
		StoreID:    "STR001",
		ExternalID: "3EB0ABC123",
		Body:       "vou comprar um produto novo",
		CategoryID: &categoryID,
		Pending:    true,
		Version:    1,
	}

	m.storeRepo.EXPECT().GetByInstanceName("demo-store").Return(demoStore(), nil)
	// O repositório devolve a linha original no conflito da chave externa;
	// nenhuma classificação ou incremento é refeito
	m.messageRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(message *domain.Message) (*domain.Message, error) {
			assert.Equal(t, "3EB0ABC123", message.ExternalID)
			return existing, nil
		})

	message, err := service.IngestMessage(context.Background(), &domain.IngestMessageRequest{
		InstanceName: "demo-store",
		ExternalID:   "3EB0ABC123",
		SenderID:     "5511988887777@s.whatsapp.net",
		Body:         "vou comprar um produto novo",
	})

	require.NoError(t, err)
	assert.Equal(t, "MSG001", message.ID)
	assert.Equal(t, "CAT003", *message.CategoryID)
}

func TestIngestMessage_ReentregaReclassificaAMesmaLinha(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newServiceWithMocks(ctrl)

	// Primeira entrega ocorreu sem categorias configuradas; a reentrega
	// encontra a mesma linha ainda pendente e a classifica, sem duplicar
	existing := &domain.Message{
		ID:         "MSG001",
		StoreID:    "STR001",
		ExternalID: "3EB0ABC123",
		Body:       "vou comprar um produto novo",
		Pending:    true,
		Version:    1,
		ReceivedAt: time.Date(2025, 3, 5, 14, 30, 0, 0, time.UTC),
	}

	m.storeRepo.EXPECT().GetByInstanceName("demo-store").Return(demoStore(), nil)
	m.messageRepo.EXPECT().Create(gomock.Any()).Return(existing, nil)
	m.categoryRepo.EXPECT().ListByStore("STR001").Return(demoCategories(), nil)
	m.storeRepo.EXPECT().GetSettings("STR001").Return(&domain.StoreSettings{
		StoreID:          "STR001",
		UrgencyThreshold: 1,
	}, nil)
	m.messageRepo.EXPECT().SetClassification("MSG001", "CAT003", false).Return(nil)
	m.statsRepo.EXPECT().IncrementOnClassify(gomock.Any(), "STR001", "CAT003", existing.ReceivedAt, false).Return(nil)

	message, err := service.IngestMessage(context.Background(), &domain.IngestMessageRequest{
		InstanceName: "demo-store",
		ExternalID:   "3EB0ABC123",
		SenderID:     "5511988887777@s.whatsapp.net",
		Body:         "vou comprar um produto novo",
	})

	require.NoError(t, err)
	assert.Equal(t, "MSG001", message.ID)
	assert.Equal(t, "CAT003", *message.CategoryID)
}

func TestIngestMessage_ClassificacaoConcorrenteNaoIncrementa(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newServiceWithMocks(ctrl)

	categoryID := "CAT003"

	m.storeRepo.EXPECT().GetByInstanceName("demo-store").Return(demoStore(), nil)
	m.messageRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(message *domain.Message) (*domain.Message, error) {
		return message, nil
	})
	m.categoryRepo.EXPECT().ListByStore("STR001").Return(demoCategories(), nil)
	m.storeRepo.EXPECT().GetSettings("STR001").Return(&domain.StoreSettings{
		StoreID:          "STR001",
		UrgencyThreshold: 1,
	}, nil)
	// Outra entrega classificou a mesma linha primeiro: a escrita única
	// recusa e os contadores não são incrementados de novo
	m.messageRepo.EXPECT().SetClassification(gomock.Any(), "CAT003", false).Return(repository.ErrAlreadyClassified)
	m.messageRepo.EXPECT().GetByID("STR001", gomock.Any()).Return(&domain.Message{
		ID:         "MSG001",
		StoreID:    "STR001",
		CategoryID: &categoryID,
		Pending:    true,
	}, nil)

	message, err := service.IngestMessage(context.Background(), &domain.IngestMessageRequest{
		InstanceName: "demo-store",
		SenderID:     "5511988887777@s.whatsapp.net",
		Body:         "vou comprar um produto novo",
	})

	require.NoError(t, err)
	assert.Equal(t, "CAT003", *message.CategoryID)
}

func TestIngestMessage_InstanciaDesconhecida(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newServiceWithMocks(ctrl)

	m.storeRepo.EXPECT().GetByInstanceName("instancia-fantasma").Return(nil, nil)

	message, err := service.IngestMessage(context.Background(), &domain.IngestMessageRequest{
		InstanceName: "instancia-fantasma",
		SenderID:     "5511988887777@s.whatsapp.net",
		Body:         "oi",
	})

	assert.Nil(t, message)
	assert.ErrorIs(t, err, ErrStoreNotFound)
}

func TestReclassifyMessage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newServiceWithMocks(ctrl)

	oldCategory := "CAT006"
	receivedAt := time.Date(2025, 3, 5, 14, 30, 0, 0, time.UTC)

	m.messageRepo.EXPECT().GetByID("STR001", "MSG001").Return(&domain.Message{
		ID:         "MSG001",
		StoreID:    "STR001",
		CategoryID: &oldCategory,
		Version:    3,
		ReceivedAt: receivedAt,
	}, nil)
	m.categoryRepo.EXPECT().ListByStore("STR001").Return(demoCategories(), nil)
	m.messageRepo.EXPECT().Reclassify("MSG001", "CAT003", 3).Return(nil)
	m.statsRepo.EXPECT().MoveCategoryCount(gomock.Any(), "STR001", "CAT006", "CAT003", receivedAt).Return(nil)

	message, err := service.ReclassifyMessage(context.Background(), "STR001", "MSG001", &domain.ReclassifyMessageRequest{
		CategoryID: "CAT003",
		Version:    3,
	})

	require.NoError(t, err)
	assert.Equal(t, "CAT003", *message.CategoryID)
	assert.Equal(t, 4, message.Version)
}

func TestReclassifyMessage_VersaoDefasada(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newServiceWithMocks(ctrl)

	oldCategory := "CAT006"
	m.messageRepo.EXPECT().GetByID("STR001", "MSG001").Return(&domain.Message{
		ID:         "MSG001",
		StoreID:    "STR001",
		CategoryID: &oldCategory,
		Version:    5,
	}, nil)
	m.categoryRepo.EXPECT().ListByStore("STR001").Return(demoCategories(), nil)
	m.messageRepo.EXPECT().Reclassify("MSG001", "CAT003", 3).Return(repository.ErrStaleVersion)

	message, err := service.ReclassifyMessage(context.Background(), "STR001", "MSG001", &domain.ReclassifyMessageRequest{
		CategoryID: "CAT003",
		Version:    3,
	})

	assert.Nil(t, message)
	assert.ErrorIs(t, err, repository.ErrStaleVersion)
}

func TestReclassifyMessage_CategoriaDesconhecida(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newServiceWithMocks(ctrl)

	m.messageRepo.EXPECT().GetByID("STR001", "MSG001").Return(&domain.Message{
		ID:      "MSG001",
		StoreID: "STR001",
	}, nil)
	m.categoryRepo.EXPECT().ListByStore("STR001").Return(demoCategories(), nil)

	message, err := service.ReclassifyMessage(context.Background(), "STR001", "MSG001", &domain.ReclassifyMessageRequest{
		CategoryID: "CAT999",
		Version:    1,
	})

	assert.Nil(t, message)
	assert.ErrorIs(t, err, ErrUnknownCategory)
}

func TestReply(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newServiceWithMocks(ctrl)

	today := time.Date(2025, 3, 5, 14, 30, 0, 0, time.UTC)

	m.storeRepo.EXPECT().GetByID("STR001").Return(demoStore(), nil)
	m.gateway.EXPECT().SendText("demo-store", "5511988887777@s.whatsapp.net", "Chego em 10 minutos").Return(nil)
	m.messageRepo.EXPECT().MarkReplied("STR001", "5511988887777@s.whatsapp.net").Return([]*domain.RepliedMessage{
		{ID: "MSG001", ReceivedAt: today},
		{ID: "MSG002", ReceivedAt: today.Add(time.Hour)},
	}, nil)
	m.statsRepo.EXPECT().DecrementPending("STR001", gomock.Any(), 2).Return(nil)

	replied, err := service.Reply(context.Background(), "STR001", &domain.ReplyRequest{
		SenderID: "5511988887777@s.whatsapp.net",
		Text:     "Chego em 10 minutos",
	})

	require.NoError(t, err)
	assert.Equal(t, 2, replied)
}

func TestReply_PendenciasDeDiasAnteriores(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newServiceWithMocks(ctrl)

	today := time.Date(2025, 3, 5, 10, 0, 0, 0, time.UTC)
	yesterday := today.AddDate(0, 0, -1)

	m.storeRepo.EXPECT().GetByID("STR001").Return(demoStore(), nil)
	m.gateway.EXPECT().SendText("demo-store", "5511988887777@s.whatsapp.net", "Desculpe a demora!").Return(nil)
	m.messageRepo.EXPECT().MarkReplied("STR001", "5511988887777@s.whatsapp.net").Return([]*domain.RepliedMessage{
		{ID: "MSG001", ReceivedAt: yesterday},
		{ID: "MSG002", ReceivedAt: yesterday.Add(2 * time.Hour)},
		{ID: "MSG003", ReceivedAt: today},
	}, nil)

	// O decremento atinge a linha de contadores do dia de recepção de cada
	// mensagem, não a linha de hoje
	m.statsRepo.EXPECT().
		DecrementPending("STR001", gomock.Any(), 2).
		DoAndReturn(func(storeID string, date time.Time, n int) error {
			assert.Equal(t, yesterday.Format(time.DateOnly), date.Format(time.DateOnly))
			return nil
		})
	m.statsRepo.EXPECT().
		DecrementPending("STR001", gomock.Any(), 1).
		DoAndReturn(func(storeID string, date time.Time, n int) error {
			assert.Equal(t, today.Format(time.DateOnly), date.Format(time.DateOnly))
			return nil
		})

	replied, err := service.Reply(context.Background(), "STR001", &domain.ReplyRequest{
		SenderID: "5511988887777@s.whatsapp.net",
		Text:     "Desculpe a demora!",
	})

	require.NoError(t, err)
	assert.Equal(t, 3, replied)
}

func TestReply_FalhaNoGatewayNaoMarcaRespondida(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newServiceWithMocks(ctrl)

	m.storeRepo.EXPECT().GetByID("STR001").Return(demoStore(), nil)
	m.gateway.EXPECT().SendText("demo-store", "5511988887777@s.whatsapp.net", "oi").Return(assert.AnError)

	replied, err := service.Reply(context.Background(), "STR001", &domain.ReplyRequest{
		SenderID: "5511988887777@s.whatsapp.net",
		Text:     "oi",
	})

	assert.Error(t, err)
	assert.Zero(t, replied)
}
