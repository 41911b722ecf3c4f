package evolution

import (
	evolutiondomain "github.com/zaytech/message-dashboard-api/infrastructure/integrator/evolution/domain"
	"github.com/zaytech/message-dashboard-api/infrastructure/integrator/evolution/evolutionclient"
	"github.com/zaytech/message-dashboard-api/internal/config"
)

// EvolutionIntegrator é o gateway de WhatsApp da loja: envia respostas e
// consulta o estado da instância
type EvolutionIntegrator interface {
	SendText(instanceName, number, text string) error
	GetConnectionState(instanceName string) (*evolutiondomain.ConnectionState, error)
}

type EvolutionService struct {
	cfg    *config.Config
	Client evolutionclient.Client
}

func New(cfg *config.Config, client evolutionclient.Client) EvolutionIntegrator {
	return &EvolutionService{
		cfg:    cfg,
		Client: client,
	}
}

func (s *EvolutionService) SendText(instanceName, number, text string) error {
	return s.Client.SendText(evolutionclient.SendTextParams{
		InstanceName: instanceName,
		Number:       number,
		Text:         text,
	})
}

func (s *EvolutionService) GetConnectionState(instanceName string) (*evolutiondomain.ConnectionState, error) {
	return s.Client.GetConnectionState(instanceName)
}
