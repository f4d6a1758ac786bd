package lifecycling

import (
	"errors"
	"fmt"

	"github.com/vfg2006/campaign-orchestrator-api/internal/domain"
)

// Erros específicos para o contexto do ciclo de vida de campanhas
var (
	ErrCampaignNotFound = errors.New("campanha não encontrada")

	// ErrInvalidTransition indica que o par (estágio atual, estágio alvo) não
	// está na tabela de adjacência
	ErrInvalidTransition = errors.New("transição de estágio não permitida")

	// ErrStaleTransition indica perda da corrida de compare-and-append: outro
	// escritor estendeu o mesmo registro primeiro. O chamador deve reler o
	// estágio atual e decidir se tenta de novo; não há retry automático aqui.
	ErrStaleTransition = errors.New("transição baseada em registro desatualizado")

	// ErrVerdictOnly protege testingComplete: essa transição só é emitida
	// pelo veredito do seletor de vencedores, nunca por um operador
	ErrVerdictOnly = errors.New("transição para testingComplete é reservada ao seletor de vencedores")
)

// TransitionError carrega o par de estágios de uma transição rejeitada
type TransitionError struct {
	From domain.CampaignStage
	To   domain.CampaignStage
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("%s: %s -> %s", ErrInvalidTransition.Error(), e.From, e.To)
}

func (e *TransitionError) Unwrap() error {
	return ErrInvalidTransition
}
