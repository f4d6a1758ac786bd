package testmatrix

import (
	"errors"
	"fmt"
)

// Erros específicos para o contexto da matriz de testes
var (
	ErrAdCampaignNotFound = errors.New("ad campaign não encontrada")

	// ErrTooManyCombinations indica que o produto das dimensões habilitadas
	// estourou o teto configurado; nenhuma escrita é feita
	ErrTooManyCombinations = errors.New("matriz de testes excede o teto de combinações")

	// ErrMissingCandidates indica uma dimensão obrigatória sem candidatos configurados
	ErrMissingCandidates = errors.New("dimensão sem candidatos configurados")
)

// FanoutError carrega o tamanho desejado e o teto que foi violado
type FanoutError struct {
	Desired   int
	MaxFanout int
}

func (e *FanoutError) Error() string {
	return fmt.Sprintf("%s: %d combinações desejadas, teto de %d", ErrTooManyCombinations.Error(), e.Desired, e.MaxFanout)
}

func (e *FanoutError) Unwrap() error {
	return ErrTooManyCombinations
}
