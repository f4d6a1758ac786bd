package tiktokclient

import (
	"context"

	"github.com/pkg/errors"
	"github.com/vfg2006/campaign-orchestrator-api/internal/domain"
)

type adGroupData struct {
	AdGroupID string `json:"adgroup_id"`
}

// CreateAdSet cria um ad group (equivalente de ad set) no TikTok
func (c *TikTokClient) CreateAdSet(ctx context.Context, spec *domain.AdSetSpec) (string, error) {
	payload := map[string]interface{}{
		"advertiser_id":    c.Cfg.TikTok.AdvertiserID,
		"adgroup_name":     spec.Name,
		"operation_status": tiktokStatus(spec.Status),
	}
	if spec.DailyBudget != "" {
		payload["budget_mode"] = "BUDGET_MODE_DAY"
		payload["budget"] = spec.DailyBudget
	}

	var data adGroupData
	if err := c.post(ctx, "/adgroup/create/", payload, &data); err != nil {
		return "", err
	}

	if data.AdGroupID == "" {
		return "", errors.New("resposta do TikTok sem id de ad group")
	}

	return data.AdGroupID, nil
}

// UpdateAdSet aplica o spec a um ad group existente
func (c *TikTokClient) UpdateAdSet(ctx context.Context, platformID string, spec *domain.AdSetSpec) error {
	payload := map[string]interface{}{
		"advertiser_id": c.Cfg.TikTok.AdvertiserID,
		"adgroup_id":    platformID,
	}
	if spec.Name != "" {
		payload["adgroup_name"] = spec.Name
	}
	if spec.DailyBudget != "" {
		payload["budget"] = spec.DailyBudget
	}

	return c.post(ctx, "/adgroup/update/", payload, nil)
}

// CloneAdSet copia um ad group existente aplicando os overrides
func (c *TikTokClient) CloneAdSet(ctx context.Context, platformID string, overrides *domain.AdSetOverrides) (string, error) {
	payload := map[string]interface{}{
		"advertiser_id": c.Cfg.TikTok.AdvertiserID,
		"adgroup_id":    platformID,
	}
	if overrides != nil {
		if overrides.Name != nil {
			payload["adgroup_name"] = *overrides.Name
		}
		if overrides.DailyBudget != nil {
			payload["budget"] = *overrides.DailyBudget
		}
	}

	var data adGroupData
	if err := c.post(ctx, "/adgroup/copy/", payload, &data); err != nil {
		return "", err
	}

	if data.AdGroupID == "" {
		return "", errors.New("resposta do TikTok sem id do ad group clonado")
	}

	return data.AdGroupID, nil
}

func tiktokStatus(status domain.AdStatus) string {
	if status == domain.AdStatusActive {
		return "ENABLE"
	}
	return "DISABLE"
}
