package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AdCampaign agrupa a configuração de mídia paga de uma campanha: orçamentos por
// plataforma, flags de split-test e os conjuntos candidatos de cada dimensão de
// segmentação e de criativo.
//
// Quando uma flag splitTest* está desligada, a dimensão correspondente colapsa
// para o primeiro candidato configurado (o valor "default" da campanha).
type AdCampaign struct {
	ID         string `json:"id"`
	CampaignID string `json:"campaign_id"`

	SplitTestDemos          bool `json:"split_test_demos"`
	SplitTestGeoGroups      bool `json:"split_test_geo_groups"`
	SplitTestInterestGroups bool `json:"split_test_interest_groups"`

	MetaDailyBudget      *decimal.Decimal `json:"meta_daily_budget,omitempty"`
	TikTokDailyBudget    *decimal.Decimal `json:"tiktok_daily_budget,omitempty"`
	MetaLifetimeBudget   *decimal.Decimal `json:"meta_lifetime_budget,omitempty"`
	TikTokLifetimeBudget *decimal.Decimal `json:"tiktok_lifetime_budget,omitempty"`
	TotalLifetimeBudget  *decimal.Decimal `json:"total_lifetime_budget,omitempty"`

	Demos          []Demo          `json:"demos"`
	GeoGroups      []GeoGroup      `json:"geo_groups"`
	InterestGroups []InterestGroup `json:"interest_groups"`

	Headlines            []Headline            `json:"headlines"`
	VidRenders           []VidRender           `json:"vid_renders"`
	TrackRenders         []TrackRender         `json:"track_renders"`
	PlaylistCoverRenders []PlaylistCoverRender `json:"playlist_cover_renders"`

	LinkURL   string    `json:"link_url"`
	CreatedAt time.Time `json:"created_at"`
}

// ReconcileResult resume o efeito de uma reconciliação da matriz de testes
type ReconcileResult struct {
	AdCampaignID string   `json:"ad_campaign_id"`
	Desired      int      `json:"desired"`
	CreatedKeys  []string `json:"created_keys"`
	ArchivedKeys []string `json:"archived_keys"`
	Unchanged    int      `json:"unchanged"`
}
