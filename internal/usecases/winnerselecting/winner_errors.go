package winnerselecting

import "errors"

// Erros específicos para o contexto de seleção de vencedores
var (
	ErrCampaignNotFound = errors.New("campanha não encontrada")

	// ErrEvaluationInProgress indica que outro processo detém o lease de
	// avaliação da campanha; o chamador deve simplesmente esperar o próximo ciclo
	ErrEvaluationInProgress = errors.New("avaliação da campanha já em andamento")

	// ErrNotInTesting indica que a campanha não está no estágio testing;
	// vereditos só fazem sentido durante o teste
	ErrNotInTesting = errors.New("campanha fora do estágio testing")
)
