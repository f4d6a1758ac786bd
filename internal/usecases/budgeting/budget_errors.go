package budgeting

import "errors"

// Erros específicos para o contexto de planejamento de orçamento
var (
	ErrAdCampaignNotFound = errors.New("ad campaign não encontrada")

	// ErrBudgetInvariantViolation indica que totalLifetimeBudget está ausente
	// ou difere da soma dos orçamentos por plataforma; a escrita é bloqueada,
	// nunca corrigida
	ErrBudgetInvariantViolation = errors.New("orçamento total difere da soma dos orçamentos por plataforma")

	// ErrTriggerFractionRange indica triggerFraction fora do intervalo [0, 1]
	ErrTriggerFractionRange = errors.New("trigger fraction fora do intervalo permitido")
)
