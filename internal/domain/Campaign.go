package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type CampaignType string

const (
	CampaignTypeRelease  CampaignType = "RELEASE"
	CampaignTypeCatalog  CampaignType = "CATALOG"
	CampaignTypePlaylist CampaignType = "PLAYLIST"
)

// Campaign representa uma campanha de marketing de lançamento.
// O estágio atual nunca é gravado na própria campanha: ele é uma projeção
// derivada do último CampaignUpdateRecord do log.
type Campaign struct {
	ID         string       `json:"id"`
	Type       CampaignType `json:"type"`
	CreatedBy  string       `json:"created_by"`
	ArtistID   string       `json:"artist_id"`
	TrackID    string       `json:"track_id"`
	PlaylistID *string      `json:"playlist_id,omitempty"`
	CreatedAt  time.Time    `json:"created_at"`
}

// CampaignUpdateRecord é uma entrada imutável do log append-only de uma campanha.
// ExtendsRecordID aponta para o registro que este estende; a unicidade de
// (campaign_id, extends_record_id) serializa escritores concorrentes.
type CampaignUpdateRecord struct {
	ID              string         `json:"id"`
	CampaignID      string         `json:"campaign_id"`
	ExtendsRecordID *string        `json:"extends_record_id"`
	CreatedAt       time.Time      `json:"created_at"`
	CreatedBy       string         `json:"created_by"`
	Stage           *CampaignStage `json:"stage,omitempty"`

	DailyBudget     *decimal.Decimal `json:"daily_budget,omitempty"`
	TriggerFraction *decimal.Decimal `json:"trigger_fraction,omitempty"`

	ProjectedCostPerMetric           *decimal.Decimal `json:"projected_cost_per_metric,omitempty"`
	ProjectedMonthlyMetric           *int64           `json:"projected_monthly_metric,omitempty"`
	ProjectedMonthlyAdSpend          *decimal.Decimal `json:"projected_monthly_ad_spend,omitempty"`
	ProjectedMonthlyMaintenanceSpend *decimal.Decimal `json:"projected_monthly_maintenance_spend,omitempty"`
	ProjectedMonthlyTotalSpend       *decimal.Decimal `json:"projected_monthly_total_spend,omitempty"`
	ProjectedMonthlyRevenue          *decimal.Decimal `json:"projected_monthly_revenue,omitempty"`
	ProjectedMonthlyNet              *decimal.Decimal `json:"projected_monthly_net,omitempty"`
}

// BudgetSnapshot carrega os campos de orçamento e projeção que uma transição
// pode gravar junto com o novo estágio
type BudgetSnapshot struct {
	DailyBudget                      *decimal.Decimal `json:"daily_budget,omitempty"`
	TriggerFraction                  *decimal.Decimal `json:"trigger_fraction,omitempty"`
	ProjectedCostPerMetric           *decimal.Decimal `json:"projected_cost_per_metric,omitempty"`
	ProjectedMonthlyMetric           *int64           `json:"projected_monthly_metric,omitempty"`
	ProjectedMonthlyMaintenanceSpend *decimal.Decimal `json:"projected_monthly_maintenance_spend,omitempty"`
	ProjectedMonthlyRevenue          *decimal.Decimal `json:"projected_monthly_revenue,omitempty"`
}
