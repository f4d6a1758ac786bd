package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-orchestrator-api/internal/usecases/syncing"
	"github.com/vfg2006/campaign-orchestrator-api/internal/usecases/testmatrix"
	"github.com/vfg2006/campaign-orchestrator-api/internal/usecases/winnerselecting"
	"github.com/vfg2006/campaign-orchestrator-api/pkg/apiErrors"
)

// ReconcileAdCampaign rerroda a materialização da matriz de testes de uma ad
// campaign fora do fluxo de entrada em testing, após uma mudança de candidatos
func ReconcileAdCampaign(service testmatrix.Generator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		adCampaignID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if adCampaignID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da ad campaign não fornecido", nil)
			return
		}

		result, err := service.Reconcile(r.Context(), adCampaignID)
		if err != nil {
			handleReconcileError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(result)
	}
}

// RolloutAdCampaign redespacha a publicação dos ad sets ainda pendentes
func RolloutAdCampaign(service syncing.Tracker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		adCampaignID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if adCampaignID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da ad campaign não fornecido", nil)
			return
		}

		if err := service.RolloutAdCampaign(r.Context(), adCampaignID); err != nil {
			switch {
			case errors.Is(err, syncing.ErrAdCampaignNotFound):
				apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Ad campaign não encontrada", nil)

			case errors.Is(err, syncing.ErrSyncIncomplete):
				// Parte das plataformas falhou; o registro fica liquidável pelo
				// ciclo de retentativas
				apiErrors.WriteError(w, apiErrors.ErrExternalService, err.Error(), nil)

			default:
				logrus.WithError(err).Error("Erro ao publicar ad campaign")
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao publicar ad campaign", nil)
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{
			"message": "Publicação despachada com sucesso",
		})
	}
}

// EvaluateCampaign dispara manualmente uma avaliação de vencedores
func EvaluateCampaign(service winnerselecting.Selector) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		campaignID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if campaignID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da campanha não fornecido", nil)
			return
		}

		result, err := service.Evaluate(r.Context(), campaignID)
		if err != nil {
			switch {
			case errors.Is(err, winnerselecting.ErrCampaignNotFound):
				apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Campanha não encontrada", nil)

			case errors.Is(err, winnerselecting.ErrEvaluationInProgress):
				apiErrors.WriteError(w, apiErrors.ErrConflict, err.Error(), nil)

			case errors.Is(err, winnerselecting.ErrNotInTesting):
				apiErrors.WriteError(w, apiErrors.ErrPreconditionFail, err.Error(), nil)

			default:
				logrus.WithError(err).Error("Erro ao avaliar campanha")
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao avaliar campanha", nil)
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(result)
	}
}

func handleReconcileError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, testmatrix.ErrAdCampaignNotFound):
		apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Ad campaign não encontrada", nil)

	case errors.Is(err, testmatrix.ErrTooManyCombinations):
		var fanoutErr *testmatrix.FanoutError
		if errors.As(err, &fanoutErr) {
			apiErrors.WriteError(w, apiErrors.ErrPreconditionFail, err.Error(), map[string]any{
				"desired":    fanoutErr.Desired,
				"max_fanout": fanoutErr.MaxFanout,
			})
			return
		}
		apiErrors.WriteError(w, apiErrors.ErrPreconditionFail, err.Error(), nil)

	case errors.Is(err, testmatrix.ErrMissingCandidates):
		apiErrors.WriteError(w, apiErrors.ErrPreconditionFail, err.Error(), nil)

	default:
		logrus.WithError(err).Error("Erro ao reconciliar matriz de testes")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao reconciliar matriz de testes", nil)
	}
}
