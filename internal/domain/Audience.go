package domain

import "time"

// Audience é a combinação de segmentação de um AdSet: um Demo, um conjunto de
// GeoGroups e grupos de interesse/visualizações incluídos e excluídos.
// Audiences são produzidas pelo gerador da matriz de testes, nunca criadas à mão.
type Audience struct {
	ID           string `json:"id"`
	AdCampaignID string `json:"ad_campaign_id"`

	DemoID      string   `json:"demo_id"`
	GeoGroupIDs []string `json:"geo_group_ids"`

	IncludeInterestGroupIDs []string `json:"include_interest_group_ids"`
	ExcludeInterestGroupIDs []string `json:"exclude_interest_group_ids"`

	IncludeVidViewsGroupIDs []string `json:"include_vid_views_group_ids"`
	ExcludeVidViewsGroupIDs []string `json:"exclude_vid_views_group_ids"`

	CreatedAt time.Time `json:"created_at"`
}
