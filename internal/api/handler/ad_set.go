package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-orchestrator-api/internal/domain"
	"github.com/vfg2006/campaign-orchestrator-api/internal/usecases/syncing"
	"github.com/vfg2006/campaign-orchestrator-api/pkg/apiErrors"
)

type CloneAdSetRequest struct {
	Overrides *domain.AdSetOverrides `json:"overrides,omitempty"`
	Platforms []domain.Platform      `json:"platforms,omitempty"`
}

type UpdateAdSetRequest struct {
	Spec      *domain.AdSetSpec `json:"spec"`
	Platforms []domain.Platform `json:"platforms,omitempty"`
}

// CloneAdSet duplica um ad set já publicado. Plataformas omitidas no corpo
// significam todas as plataformas onde o ad set de origem existe.
func CloneAdSet(service syncing.Tracker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		adSetID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if adSetID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do ad set não fornecido", nil)
			return
		}

		var req CloneAdSetRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		if !validPlatforms(req.Platforms) {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Plataforma desconhecida", nil)
			return
		}

		record, err := service.CloneAdSet(r.Context(), adSetID, req.Overrides, req.Platforms)
		if err != nil && record == nil {
			handleSyncError(w, err)
			return
		}

		// Falha parcial ainda devolve o registro: o cliente acompanha a
		// liquidação pelo status
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(record)
	}
}

// UpdateAdSet aplica um spec ao ad set nas plataformas pedidas
func UpdateAdSet(service syncing.Tracker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		adSetID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if adSetID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do ad set não fornecido", nil)
			return
		}

		var req UpdateAdSetRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		if req.Spec == nil {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Spec da atualização não fornecido", nil)
			return
		}

		if !validPlatforms(req.Platforms) {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Plataforma desconhecida", nil)
			return
		}

		record, err := service.UpdateAdSet(r.Context(), adSetID, req.Spec, req.Platforms)
		if err != nil && record == nil {
			handleSyncError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(record)
	}
}

func validPlatforms(platforms []domain.Platform) bool {
	for _, platform := range platforms {
		if platform != domain.PlatformMeta && platform != domain.PlatformTikTok {
			return false
		}
	}
	return true
}

func handleSyncError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, syncing.ErrAdSetNotFound):
		apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Ad set não encontrado", nil)

	case errors.Is(err, syncing.ErrNoTargetPlatforms):
		apiErrors.WriteError(w, apiErrors.ErrPreconditionFail, err.Error(), nil)

	case errors.Is(err, syncing.ErrSyncIncomplete):
		apiErrors.WriteError(w, apiErrors.ErrExternalService, err.Error(), nil)

	default:
		logrus.WithError(err).Error("Erro ao despachar operação de ad set")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao despachar operação", nil)
	}
}
