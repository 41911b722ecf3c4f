package messaging

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/zaytech/message-dashboard-api/infrastructure/integrator/evolution"
	"github.com/zaytech/message-dashboard-api/infrastructure/repository"
	"github.com/zaytech/message-dashboard-api/internal/domain"
	"github.com/zaytech/message-dashboard-api/internal/usecases/categorizing"
	"github.com/zaytech/message-dashboard-api/pkg/utils"
)

var (
	ErrStoreNotFound   = errors.New("loja não encontrada para a instância")
	ErrMessageNotFound = errors.New("mensagem não encontrada")
	ErrUnknownCategory = errors.New("categoria de destino não existe na loja")
)

// Messenger é o pipeline de ingestão e operação sobre mensagens: webhook
// de entrada, listagem, reclassificação explícita e resposta
type Messenger interface {
	// IngestMessage persiste a mensagem crua, classifica, avalia a
	// triagem e incrementa os contadores do dia. Se a loja estiver sem
	// categorias, a mensagem permanece persistida sem classificação e o
	// erro de configuração é devolvido para o gateway repetir a entrega.
	IngestMessage(ctx context.Context, req *domain.IngestMessageRequest) (*domain.Message, error)
	ListMessages(storeID string, filters *domain.MessageFilters) ([]*domain.Message, error)
	// ReclassifyMessage troca a categoria de uma mensagem já classificada
	// sob verificação otimista de versão e ajusta os contadores
	ReclassifyMessage(ctx context.Context, storeID, messageID string, req *domain.ReclassifyMessageRequest) (*domain.Message, error)
	// Reply envia a resposta pelo gateway, marca as mensagens pendentes do
	// remetente como respondidas e decrementa o contador de pendências
	Reply(ctx context.Context, storeID string, req *domain.ReplyRequest) (int, error)
}

type Service struct {
	storeRepo   repository.StoreRepository
	messageRepo repository.MessageRepository
	statsRepo   repository.MessageStatsRepository
	registry    categorizing.Registry
	gateway     evolution.EvolutionIntegrator
}

func NewService(
	storeRepo repository.StoreRepository,
	messageRepo repository.MessageRepository,
	statsRepo repository.MessageStatsRepository,
	registry categorizing.Registry,
	gateway evolution.EvolutionIntegrator,
) Messenger {
	return &Service{
		storeRepo:   storeRepo,
		messageRepo: messageRepo,
		statsRepo:   statsRepo,
		registry:    registry,
		gateway:     gateway,
	}
}

func (s *Service) IngestMessage(ctx context.Context, req *domain.IngestMessageRequest) (*domain.Message, error) {
	store, err := s.storeRepo.GetByInstanceName(req.InstanceName)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, ErrStoreNotFound
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, err
	}

	receivedAt := req.ReceivedAt
	if receivedAt.IsZero() {
		receivedAt = time.Now()
	}

	message := &domain.Message{
		ID:         id,
		StoreID:    store.ID,
		ExternalID: req.ExternalID,
		Body:       req.Body,
		SenderID:   req.SenderID,
		ReceivedAt: receivedAt,
	}

	// A mensagem crua é persistida antes de qualquer decisão: uma falha
	// de configuração não descarta a entrega. Reentregas da mesma chave
	// externa devolvem a linha original, nunca uma duplicata
	message, err = s.messageRepo.Create(message)
	if err != nil {
		return nil, err
	}

	// Reentrega de uma mensagem já classificada: nada a refazer
	if message.Classified() {
		return message, nil
	}

	categories, err := s.registry.ListCategories(store.ID)
	if err != nil {
		return nil, err
	}

	category, err := categorizing.Classify(message.Body, categories)
	if err != nil {
		if categorizing.IsConfigurationError(err) {
			logrus.WithFields(logrus.Fields{
				"store_id":   store.ID,
				"message_id": message.ID,
			}).Warn("Loja sem categorias, mensagem aguardando reclassificação")
		}
		return message, err
	}

	settings, err := s.registry.GetSettings(store.ID)
	if err != nil {
		return message, err
	}

	triage := categorizing.Evaluate(message, category, settings)

	if err := s.messageRepo.SetClassification(message.ID, category.ID, triage.Urgent); err != nil {
		// Entrega concorrente classificou a mesma linha primeiro; os
		// contadores já foram incrementados por ela
		if errors.Is(err, repository.ErrAlreadyClassified) {
			return s.messageRepo.GetByID(store.ID, message.ID)
		}
		return message, err
	}

	message.CategoryID = &category.ID
	message.Urgent = triage.Urgent
	message.Pending = triage.Pending

	// Um incremento atômico por mensagem: entregas concorrentes do
	// webhook nunca perdem atualização
	if err := s.statsRepo.IncrementOnClassify(ctx, store.ID, category.ID, message.ReceivedAt, triage.Urgent); err != nil {
		logrus.WithError(err).WithField("message_id", message.ID).Error("Erro ao incrementar contadores, recomputo noturno corrigirá")
	}

	return message, nil
}

func (s *Service) ListMessages(storeID string, filters *domain.MessageFilters) ([]*domain.Message, error) {
	return s.messageRepo.ListByStore(storeID, filters)
}

func (s *Service) ReclassifyMessage(ctx context.Context, storeID, messageID string, req *domain.ReclassifyMessageRequest) (*domain.Message, error) {
	message, err := s.messageRepo.GetByID(storeID, messageID)
	if err != nil {
		return nil, err
	}
	if message == nil {
		return nil, ErrMessageNotFound
	}

	categories, err := s.registry.ListCategories(storeID)
	if err != nil {
		return nil, err
	}

	var target *domain.Category
	for _, category := range categories {
		if category.ID == req.CategoryID {
			target = category
			break
		}
	}
	if target == nil {
		return nil, ErrUnknownCategory
	}

	if err := s.messageRepo.Reclassify(messageID, target.ID, req.Version); err != nil {
		return nil, err
	}

	if message.CategoryID != nil && *message.CategoryID != target.ID {
		if err := s.statsRepo.MoveCategoryCount(ctx, storeID, *message.CategoryID, target.ID, message.ReceivedAt); err != nil {
			logrus.WithError(err).WithField("message_id", messageID).Error("Erro ao mover contadores, recomputo noturno corrigirá")
		}
	}

	message.CategoryID = &target.ID
	message.Version = req.Version + 1

	return message, nil
}

func (s *Service) Reply(ctx context.Context, storeID string, req *domain.ReplyRequest) (int, error) {
	store, err := s.storeRepo.GetByID(storeID)
	if err != nil {
		return 0, err
	}
	if store == nil {
		return 0, ErrStoreNotFound
	}

	if err := s.gateway.SendText(store.InstanceName, req.SenderID, req.Text); err != nil {
		return 0, err
	}

	replied, err := s.messageRepo.MarkReplied(storeID, req.SenderID)
	if err != nil {
		return 0, err
	}

	// Cada mensagem respondida decrementa a linha de contadores do dia em
	// que foi recebida; uma resposta pode alcançar pendências de vários dias
	perDay := make(map[string]int)
	dayOf := make(map[string]time.Time)
	for _, message := range replied {
		day := message.ReceivedAt.Format(time.DateOnly)
		perDay[day]++
		dayOf[day] = message.ReceivedAt
	}

	for day, n := range perDay {
		if err := s.statsRepo.DecrementPending(storeID, dayOf[day], n); err != nil {
			logrus.WithError(err).WithField("date", day).Error("Erro ao decrementar pendências, recomputo noturno corrigirá")
		}
	}

	return len(replied), nil
}
