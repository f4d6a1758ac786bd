package domain

import (
	"strings"
	"time"
)

// AdStatus é o status de um AdSet em uma plataforma específica
type AdStatus string

const (
	AdStatusPending  AdStatus = "PENDING"
	AdStatusActive   AdStatus = "ACTIVE"
	AdStatusPaused   AdStatus = "PAUSED"
	AdStatusError    AdStatus = "ERROR"
	AdStatusArchived AdStatus = "ARCHIVED"
)

// AdSet é uma unidade concreta de segmentação e posicionamento, gerada pela
// matriz de testes e publicada de forma independente em cada plataforma.
// MatrixKey é a chave sintética (ids dos componentes ordenados) usada para
// diffar o conjunto desejado contra o existente.
type AdSet struct {
	ID           string `json:"id"`
	AdCampaignID string `json:"ad_campaign_id"`
	AudienceID   string `json:"audience_id"`
	MatrixKey    string `json:"matrix_key"`

	MetaStatus       AdStatus `json:"meta_status"`
	TikTokStatus     AdStatus `json:"tiktok_status"`
	MetaExternalID   *string  `json:"meta_external_id,omitempty"`
	TikTokExternalID *string  `json:"tiktok_external_id,omitempty"`

	FBFeed     bool `json:"fb_feed"`
	IGFeed     bool `json:"ig_feed"`
	IGStories  bool `json:"ig_stories"`
	TikTokFeed bool `json:"tiktok_feed"`

	// Arquivamento preserva o histórico de stats; AdSets nunca são removidos
	Archived   bool       `json:"archived"`
	ArchivedAt *time.Time `json:"archived_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

// CloneKeyMarker separa a matrix_key da linha original do id do clone nas
// linhas criadas por clonagem. Nunca aparece em chaves geradas pela matriz,
// cujos componentes são unidos por "|".
const CloneKeyMarker = "~"

// IsCloneRow diz se o ad set é uma linha criada por clonagem, que não
// pertence ao conjunto desejado da matriz de testes.
func (a *AdSet) IsCloneRow() bool {
	return strings.Contains(a.MatrixKey, CloneKeyMarker)
}

// Ad liga um AdSet a um criativo. PassedTest é tri-state: nil enquanto não há
// determinação, true para o vencedor do AdSet, false para os perdedores.
type Ad struct {
	ID           string    `json:"id"`
	AdSetID      string    `json:"ad_set_id"`
	AdCreativeID string    `json:"ad_creative_id"`
	PassedTest   *bool     `json:"passed_test"`
	CreatedAt    time.Time `json:"created_at"`
}

// AdCreative combina uma headline com os assets renderizados e o link de destino
type AdCreative struct {
	ID                    string    `json:"id"`
	AdCampaignID          string    `json:"ad_campaign_id"`
	HeadlineID            string    `json:"headline_id"`
	VidRenderID           *string   `json:"vid_render_id,omitempty"`
	TrackRenderID         *string   `json:"track_render_id,omitempty"`
	PlaylistCoverRenderID *string   `json:"playlist_cover_render_id,omitempty"`
	LinkURL               string    `json:"link_url"`
	CreativeKey           string    `json:"creative_key"`
	CreatedAt             time.Time `json:"created_at"`
}
