package tiktokclient

import (
	"bytes"
	"context"
	stdjson "encoding/json"
	"io"
	"net/http"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/vfg2006/campaign-orchestrator-api/infrastructure/integrator/adplatform"
	"github.com/vfg2006/campaign-orchestrator-api/internal/config"
	"github.com/vfg2006/campaign-orchestrator-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// TikTokClient implementa o contrato de plataforma contra a Business API do TikTok
type TikTokClient struct {
	Cfg        *config.Config
	httpClient *http.Client
}

func NewClient(cfg *config.Config, requestTimeout time.Duration) adplatform.Client {
	return &TikTokClient{
		Cfg:        cfg,
		httpClient: &http.Client{Timeout: requestTimeout},
	}
}

func (c *TikTokClient) Platform() domain.Platform {
	return domain.PlatformTikTok
}

// apiResponse é o envelope padrão da Business API: code 0 indica sucesso
type apiResponse struct {
	Code    int                `json:"code"`
	Message string             `json:"message"`
	Data    stdjson.RawMessage `json:"data"`
}

func (c *TikTokClient) post(ctx context.Context, endpoint string, payload interface{}, out interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return errors.Wrap(err, "erro ao serializar payload")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Cfg.TikTok.URL+endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.Wrap(err, "erro ao criar a requisição")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Access-Token", c.Cfg.TikTok.AccessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "erro ao fazer a requisição")
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrap(err, "erro ao ler a resposta")
	}

	var envelope apiResponse
	if err := json.Unmarshal(respBody, &envelope); err != nil {
		return errors.Wrap(err, "erro ao decodificar resposta do TikTok")
	}

	if envelope.Code != 0 {
		return errors.Errorf("erro da Business API (%d): %s", envelope.Code, envelope.Message)
	}

	if out != nil && len(envelope.Data) > 0 {
		if err := json.Unmarshal(envelope.Data, out); err != nil {
			return errors.Wrap(err, "erro ao decodificar dados da resposta do TikTok")
		}
	}

	return nil
}
