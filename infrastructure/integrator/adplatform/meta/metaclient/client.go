package metaclient

import (
	"net/http"
	"time"

	"github.com/vfg2006/campaign-orchestrator-api/infrastructure/integrator/adplatform"
	"github.com/vfg2006/campaign-orchestrator-api/internal/config"
	"github.com/vfg2006/campaign-orchestrator-api/internal/domain"
)

// MetaClient implementa o contrato de plataforma contra a Graph API do Meta
type MetaClient struct {
	Cfg          *config.Config
	TokenManager *TokenManager
	httpClient   *http.Client
}

func NewClient(cfg *config.Config, tokenManager *TokenManager, requestTimeout time.Duration) adplatform.Client {
	return &MetaClient{
		Cfg:          cfg,
		TokenManager: tokenManager,
		httpClient:   &http.Client{Timeout: requestTimeout},
	}
}

func (c *MetaClient) Platform() domain.Platform {
	return domain.PlatformMeta
}
