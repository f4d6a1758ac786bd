package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-orchestrator-api/internal/domain"
	"github.com/vfg2006/campaign-orchestrator-api/internal/usecases/budgeting"
	"github.com/vfg2006/campaign-orchestrator-api/internal/usecases/lifecycling"
	"github.com/vfg2006/campaign-orchestrator-api/pkg/apiErrors"
	"github.com/vfg2006/campaign-orchestrator-api/pkg/middleware"
)

type TransitionRequest struct {
	Target   domain.CampaignStage   `json:"target"`
	Snapshot *domain.BudgetSnapshot `json:"snapshot,omitempty"`
}

type StageResponse struct {
	CampaignID string               `json:"campaign_id"`
	Stage      domain.CampaignStage `json:"stage"`
}

type PacingGateResponse struct {
	AdCampaignID string `json:"ad_campaign_id"`
	Open         bool   `json:"open"`
}

// TransitionCampaign aplica uma transição de estágio pedida por um operador.
// O actor gravado no registro vem das claims do token, nunca do corpo.
func TransitionCampaign(service lifecycling.Lifecycler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		campaignID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if campaignID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da campanha não fornecido", nil)
			return
		}

		claims, ok := r.Context().Value(middleware.ContextKeyOperator).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Operador não autenticado", nil)
			return
		}

		var req TransitionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		record, err := service.Transition(r.Context(), campaignID, req.Target, claims.OperatorID, req.Snapshot)
		if err != nil {
			handleTransitionError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(record)
	}
}

// GetCampaignStage retorna a projeção do estágio atual derivada do log
func GetCampaignStage(service lifecycling.Lifecycler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		campaignID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if campaignID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da campanha não fornecido", nil)
			return
		}

		stage, err := service.CurrentStage(r.Context(), campaignID)
		if err != nil {
			if errors.Is(err, lifecycling.ErrCampaignNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Campanha não encontrada", nil)
				return
			}
			logrus.WithError(err).Error("Erro ao projetar estágio da campanha")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao consultar estágio da campanha", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(StageResponse{
			CampaignID: campaignID,
			Stage:      stage,
		})
	}
}

// GetPacingGate responde se o gasto acumulado já cruzou a fração de disparo
// configurada para a ad campaign
func GetPacingGate(service budgeting.Planner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		adCampaignID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if adCampaignID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da ad campaign não fornecido", nil)
			return
		}

		open, err := service.IsPacingGateOpen(r.Context(), adCampaignID)
		if err != nil {
			if errors.Is(err, budgeting.ErrAdCampaignNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Ad campaign não encontrada", nil)
				return
			}
			logrus.WithError(err).Error("Erro ao consultar gate de pacing")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao consultar gate de pacing", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(PacingGateResponse{
			AdCampaignID: adCampaignID,
			Open:         open,
		})
	}
}

// handleTransitionError mapeia os erros da máquina de estados para códigos de API
func handleTransitionError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, lifecycling.ErrCampaignNotFound):
		apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Campanha não encontrada", nil)

	case errors.Is(err, lifecycling.ErrVerdictOnly):
		apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, err.Error(), nil)

	case errors.Is(err, lifecycling.ErrInvalidTransition):
		apiErrors.WriteError(w, apiErrors.ErrPreconditionFail, err.Error(), nil)

	case errors.Is(err, lifecycling.ErrStaleTransition):
		// O cliente relê o estágio projetado e decide se repete a transição
		apiErrors.WriteError(w, apiErrors.ErrConflict, err.Error(), nil)

	case errors.Is(err, budgeting.ErrBudgetInvariantViolation),
		errors.Is(err, budgeting.ErrTriggerFractionRange):
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)

	default:
		logrus.WithError(err).Error("Erro ao aplicar transição de estágio")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao aplicar transição", nil)
	}
}
