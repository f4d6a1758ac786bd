package domain

import "time"

// Vocabulário de segmentação e criativo, compartilhado entre campanhas.
// Entradas são de escopo de equipe (TeamID preenchido) ou públicas.

type Demo struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Gender string  `json:"gender"`
	MinAge int     `json:"min_age"`
	MaxAge int     `json:"max_age"`
	TeamID *string `json:"team_id,omitempty"`
	Public bool    `json:"public"`
}

type Country struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

type GeoGroup struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	CountryCodes []string `json:"country_codes"`
	TeamID       *string  `json:"team_id,omitempty"`
	Public       bool     `json:"public"`
}

type Interest struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	ExternalID string `json:"external_id"`
}

type InterestGroup struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Interests []Interest `json:"interests"`
	TeamID    *string    `json:"team_id,omitempty"`
	Public    bool       `json:"public"`
}

// VidViewsGroup segmenta por audiências de retargeting baseadas em visualização de vídeo
type VidViewsGroup struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	MinViewed int    `json:"min_viewed_percent"`
}

type Headline struct {
	ID     string  `json:"id"`
	Text   string  `json:"text"`
	TeamID *string `json:"team_id,omitempty"`
	Public bool    `json:"public"`
}

type RenderStatus string

const (
	RenderStatusPending RenderStatus = "PENDING"
	RenderStatusReady   RenderStatus = "READY"
	RenderStatusFailed  RenderStatus = "FAILED"
)

// VidRender é a saída renderizada de um vídeo de anúncio
type VidRender struct {
	ID        string       `json:"id"`
	URL       string       `json:"url"`
	Status    RenderStatus `json:"status"`
	CreatedAt time.Time    `json:"created_at"`
}

// TrackRender é a saída renderizada de um trecho de faixa para anúncio
type TrackRender struct {
	ID        string       `json:"id"`
	URL       string       `json:"url"`
	Status    RenderStatus `json:"status"`
	CreatedAt time.Time    `json:"created_at"`
}

// PlaylistCoverRender é a capa de playlist renderizada para anúncio
type PlaylistCoverRender struct {
	ID        string       `json:"id"`
	URL       string       `json:"url"`
	Status    RenderStatus `json:"status"`
	CreatedAt time.Time    `json:"created_at"`
}
