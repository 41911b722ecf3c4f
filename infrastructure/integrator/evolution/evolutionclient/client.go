package evolutionclient

import (
	"net/http"
	"time"

	evolutiondomain "github.com/zaytech/message-dashboard-api/infrastructure/integrator/evolution/domain"
	"github.com/zaytech/message-dashboard-api/internal/config"
)

type Client interface {
	SendText(params SendTextParams) error
	GetConnectionState(instanceName string) (*evolutiondomain.ConnectionState, error)
}

type EvolutionClient struct {
	httpClient *http.Client
	config     *config.Config
}

func NewClient(cfg *config.Config) Client {
	return &EvolutionClient{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		config: cfg,
	}
}
