package adplatform

import (
	"context"

	"github.com/vfg2006/campaign-orchestrator-api/internal/domain"
)

// Client é o contrato estreito que o rastreador de sincronização usa para
// falar com uma plataforma de anúncios. Cada plataforma tem exatamente uma
// implementação; o rastreador nunca depende de formatos de payload
// específicos de plataforma.
type Client interface {
	// Platform identifica a plataforma desta implementação
	Platform() domain.Platform

	// CreateAdSet cria o ad set na plataforma e retorna o id externo
	CreateAdSet(ctx context.Context, spec *domain.AdSetSpec) (string, error)

	// UpdateAdSet aplica o spec ao ad set já existente na plataforma
	UpdateAdSet(ctx context.Context, platformID string, spec *domain.AdSetSpec) error

	// CloneAdSet duplica o ad set na plataforma aplicando os overrides e
	// retorna o id externo da cópia
	CloneAdSet(ctx context.Context, platformID string, overrides *domain.AdSetOverrides) (string, error)
}
