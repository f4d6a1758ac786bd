package domain

import "time"

// Platform identifica uma plataforma de anúncios suportada
type Platform string

const (
	PlatformMeta   Platform = "META"
	PlatformTikTok Platform = "TIKTOK"
)

// Platforms é o conjunto fechado de plataformas; adicionar uma terceira
// plataforma significa adicionar uma variante aqui e um client correspondente
var Platforms = []Platform{PlatformMeta, PlatformTikTok}

// SyncOpType é o tipo de operação mutante contra um AdSet
type SyncOpType string

const (
	SyncOpCreate SyncOpType = "CREATE"
	SyncOpClone  SyncOpType = "CLONE"
	SyncOpUpdate SyncOpType = "UPDATE"
)

// SyncRecordStatus é o status terminal (ou pendente) de um registro de sincronização
type SyncRecordStatus string

const (
	SyncStatusPending  SyncRecordStatus = "PENDING"
	SyncStatusComplete SyncRecordStatus = "COMPLETE"
	SyncStatusFailed   SyncRecordStatus = "FAILED"
)

// PlatformCompletion rastreia a conclusão independente por plataforma de uma
// operação lógica. Meta/TikTok dizem se a plataforma é alvo da operação;
// MetaComplete/TikTokComplete são nil enquanto a chamada assíncrona não
// resolveu (nil em plataforma não-alvo permanece nil para sempre).
type PlatformCompletion struct {
	Meta         bool  `json:"meta"`
	MetaComplete *bool `json:"meta_complete"`
	MetaSuccess  *bool `json:"meta_success"`

	TikTok         bool  `json:"tiktok"`
	TikTokComplete *bool `json:"tiktok_complete"`
	TikTokSuccess  *bool `json:"tiktok_success"`
}

// Targets retorna as plataformas alvo desta operação
func (pc PlatformCompletion) Targets() []Platform {
	targets := make([]Platform, 0, 2)
	if pc.Meta {
		targets = append(targets, PlatformMeta)
	}
	if pc.TikTok {
		targets = append(targets, PlatformTikTok)
	}
	return targets
}

// Settled retorna verdadeiro quando toda plataforma alvo tem flag de conclusão
// não-nula. Nenhum status terminal pode ser decidido antes disso.
func (pc PlatformCompletion) Settled() bool {
	if pc.Meta && pc.MetaComplete == nil {
		return false
	}
	if pc.TikTok && pc.TikTokComplete == nil {
		return false
	}
	return pc.Meta || pc.TikTok
}

// Succeeded retorna verdadeiro se todas as plataformas alvo liquidadas tiveram sucesso
func (pc PlatformCompletion) Succeeded() bool {
	if !pc.Settled() {
		return false
	}
	if pc.Meta && (pc.MetaSuccess == nil || !*pc.MetaSuccess) {
		return false
	}
	if pc.TikTok && (pc.TikTokSuccess == nil || !*pc.TikTokSuccess) {
		return false
	}
	return true
}

// AdSetCloneRecord registra uma operação de clonagem de AdSet; uma linha por
// operação, append-only. ClonedAdSetID aponta para a cópia interna criada em
// estado pendente; é anulado se a operação liquida como FAILED.
type AdSetCloneRecord struct {
	ID      string `json:"id"`
	AdSetID string `json:"ad_set_id"`

	PlatformCompletion

	Status        SyncRecordStatus `json:"status"`
	ClonedAdSetID *string          `json:"cloned_ad_set_id"`
	Overrides     *AdSetOverrides  `json:"overrides,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

// AdSetUpdateRecord registra uma operação de criação inicial (rollout) ou de
// atualização de AdSet, com a mesma semântica de liquidação por plataforma do
// registro de clonagem. OpType distingue o rollout inicial de atualizações.
type AdSetUpdateRecord struct {
	ID      string     `json:"id"`
	AdSetID string     `json:"ad_set_id"`
	OpType  SyncOpType `json:"op_type"`

	PlatformCompletion

	Status SyncRecordStatus `json:"status"`
	Spec   *AdSetSpec       `json:"spec,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

// AdSetSpec é o payload neutro de plataforma enviado aos clients de anúncios
type AdSetSpec struct {
	Name        string   `json:"name"`
	DailyBudget string   `json:"daily_budget,omitempty"`
	Status      AdStatus `json:"status,omitempty"`
	AudienceID  string   `json:"audience_id,omitempty"`
	Headline    string   `json:"headline,omitempty"`
	AssetURL    string   `json:"asset_url,omitempty"`
	LinkURL     string   `json:"link_url,omitempty"`
}

// AdSetOverrides são os campos sobrescritos ao clonar um AdSet
type AdSetOverrides struct {
	Name        *string `json:"name,omitempty"`
	DailyBudget *string `json:"daily_budget,omitempty"`
	AudienceID  *string `json:"audience_id,omitempty"`
}
