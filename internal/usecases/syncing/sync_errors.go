package syncing

import (
	"errors"
	"fmt"

	"github.com/vfg2006/campaign-orchestrator-api/internal/domain"
)

// Erros específicos para o contexto de sincronização com plataformas
var (
	ErrAdSetNotFound      = errors.New("ad set não encontrado")
	ErrAdCampaignNotFound = errors.New("ad campaign não encontrada")
	ErrRecordNotFound     = errors.New("registro de sincronização não encontrado")

	// ErrNoTargetPlatforms indica que nenhuma plataforma alvo restou para a
	// operação: ou o ad set já está publicado em todas, ou nenhuma das
	// plataformas pedidas tem id externo para operar
	ErrNoTargetPlatforms = errors.New("operação sem plataforma alvo")

	// ErrSyncIncomplete indica que ao menos uma plataforma alvo falhou depois
	// de esgotadas as tentativas; o registro liquida como FAILED
	ErrSyncIncomplete = errors.New("sincronização incompleta em uma ou mais plataformas")
)

// PlatformSyncError carrega a plataforma e a operação de uma falha de despacho
type PlatformSyncError struct {
	Platform domain.Platform
	Op       domain.SyncOpType
	Err      error
}

func (e *PlatformSyncError) Error() string {
	return fmt.Sprintf("%s em %s: %v", e.Op, e.Platform, e.Err)
}

func (e *PlatformSyncError) Unwrap() error {
	return e.Err
}

// IncompleteError agrega as plataformas que falharam em um registro
type IncompleteError struct {
	RecordID string
	Failed   []domain.Platform
}

func (e *IncompleteError) Error() string {
	return fmt.Sprintf("%s: registro %s, plataformas %v", ErrSyncIncomplete.Error(), e.RecordID, e.Failed)
}

func (e *IncompleteError) Unwrap() error {
	return ErrSyncIncomplete
}
