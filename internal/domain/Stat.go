package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Stat é uma linha de métrica agregada por dia, produzida pelo pipeline externo
// de ingestão. Cada linha é chaveada por exatamente uma das entidades: ad,
// conta, playlist ou track. Para este subsistema só as linhas chaveadas por ad
// alimentam a seleção de vencedores e o planejamento de orçamento.
type Stat struct {
	ID string `json:"id"`

	AdID       *string `json:"ad_id,omitempty"`
	AccountID  *string `json:"account_id,omitempty"`
	PlaylistID *string `json:"playlist_id,omitempty"`
	TrackID    *string `json:"track_id,omitempty"`

	Date        time.Time       `json:"date"`
	Spend       decimal.Decimal `json:"spend"`
	Impressions int64           `json:"impressions"`
	Clicks      int64           `json:"clicks"`
	Results     int64           `json:"results"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AdPerformance é o agregado de stats de um Ad dentro da janela de teste
type AdPerformance struct {
	AdID        string          `json:"ad_id"`
	Spend       decimal.Decimal `json:"spend"`
	Impressions int64           `json:"impressions"`
	Clicks      int64           `json:"clicks"`
	Results     int64           `json:"results"`
}

// CostPerResult calcula a métrica primária de ranqueamento (menor é melhor).
// Retorna falso quando não há resultados para dividir.
func (p AdPerformance) CostPerResult() (decimal.Decimal, bool) {
	if p.Results == 0 {
		return decimal.Zero, false
	}
	return p.Spend.Div(decimal.NewFromInt(p.Results)), true
}
