package metaclient

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-orchestrator-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type adSetResponse struct {
	ID            string `json:"id"`
	CopiedAdSetID string `json:"copied_adset_id"`
	Success       bool   `json:"success"`
	Error         *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
		Code    int    `json:"code"`
	} `json:"error"`
}

// CreateAdSet cria um ad set na conta configurada e retorna o id da Graph API
func (c *MetaClient) CreateAdSet(ctx context.Context, spec *domain.AdSetSpec) (string, error) {
	if err := c.TokenManager.EnsureValidToken(); err != nil {
		return "", errors.Wrap(err, "erro ao verificar validade do token")
	}

	endpoint := fmt.Sprintf("%s/act_%s/adsets", c.Cfg.Meta.URL, c.Cfg.Meta.AppID)

	params := url.Values{}
	params.Add("name", spec.Name)
	params.Add("status", metaStatus(spec.Status))
	if spec.DailyBudget != "" {
		params.Add("daily_budget", spec.DailyBudget)
	}
	params.Add("access_token", c.Cfg.Meta.AccessToken)

	response, err := c.post(ctx, endpoint, params)
	if err != nil {
		return "", err
	}

	if response.ID == "" {
		return "", errors.New("resposta do Meta sem id de ad set")
	}

	return response.ID, nil
}

// UpdateAdSet aplica o spec a um ad set existente
func (c *MetaClient) UpdateAdSet(ctx context.Context, platformID string, spec *domain.AdSetSpec) error {
	if err := c.TokenManager.EnsureValidToken(); err != nil {
		return errors.Wrap(err, "erro ao verificar validade do token")
	}

	endpoint := fmt.Sprintf("%s/%s", c.Cfg.Meta.URL, platformID)

	params := url.Values{}
	if spec.Name != "" {
		params.Add("name", spec.Name)
	}
	if spec.DailyBudget != "" {
		params.Add("daily_budget", spec.DailyBudget)
	}
	if spec.Status != "" {
		params.Add("status", metaStatus(spec.Status))
	}
	params.Add("access_token", c.Cfg.Meta.AccessToken)

	_, err := c.post(ctx, endpoint, params)
	return err
}

// CloneAdSet usa o endpoint /copies da Graph API e retorna o id da cópia
func (c *MetaClient) CloneAdSet(ctx context.Context, platformID string, overrides *domain.AdSetOverrides) (string, error) {
	if err := c.TokenManager.EnsureValidToken(); err != nil {
		return "", errors.Wrap(err, "erro ao verificar validade do token")
	}

	endpoint := fmt.Sprintf("%s/%s/copies", c.Cfg.Meta.URL, platformID)

	params := url.Values{}
	params.Add("deep_copy", "true")
	params.Add("status_option", "PAUSED")
	if overrides != nil {
		if overrides.Name != nil {
			params.Add("rename_options", fmt.Sprintf(`{"rename_suffix":" %s"}`, *overrides.Name))
		}
	}
	params.Add("access_token", c.Cfg.Meta.AccessToken)

	response, err := c.post(ctx, endpoint, params)
	if err != nil {
		return "", err
	}

	copiedID := response.CopiedAdSetID
	if copiedID == "" {
		copiedID = response.ID
	}
	if copiedID == "" {
		return "", errors.New("resposta do Meta sem id do ad set clonado")
	}

	return copiedID, nil
}

func (c *MetaClient) post(ctx context.Context, endpoint string, params url.Values) (*adSetResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(params.Encode()))
	if err != nil {
		return nil, errors.Wrap(err, "erro ao criar a requisição")
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao fazer a requisição")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao ler a resposta")
	}

	var response adSetResponse
	if err := json.Unmarshal(body, &response); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON da Graph API")
		return nil, errors.Wrap(err, "erro ao decodificar resposta do Meta")
	}

	if response.Error != nil {
		return nil, errors.Errorf("erro da Graph API (%d): %s", response.Error.Code, response.Error.Message)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("status inesperado da Graph API: %d", resp.StatusCode)
	}

	return &response, nil
}

func metaStatus(status domain.AdStatus) string {
	switch status {
	case domain.AdStatusActive:
		return "ACTIVE"
	case domain.AdStatusArchived:
		return "ARCHIVED"
	default:
		return "PAUSED"
	}
}
