package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-orchestrator-api/internal/scheduler"
	"github.com/vfg2006/campaign-orchestrator-api/pkg/apiErrors"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeEvaluation = "evaluation"
	CronJobTypeRetry      = "retry"
	CronJobTypeAll        = "all"
)

// CronJobServices contém os serviços de cron necessários para executar manualmente
type CronJobServices struct {
	EvaluationSyncService *scheduler.EvaluationSyncService
	RolloutRetryService   *scheduler.RolloutRetryService
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunCronJob")

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		switch cronType {
		case CronJobTypeEvaluation:
			if services.EvaluationSyncService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de avaliação de campanhas não disponível", nil)
				return
			}
			services.EvaluationSyncService.TriggerManualSync()

		case CronJobTypeRetry:
			if services.RolloutRetryService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de retentativas de publicação não disponível", nil)
				return
			}
			services.RolloutRetryService.TriggerManualSync()

		case CronJobTypeAll:
			if services.EvaluationSyncService != nil {
				services.EvaluationSyncService.TriggerManualSync()
			}
			if services.RolloutRetryService != nil {
				services.RolloutRetryService.TriggerManualSync()
			}

		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: evaluation, retry, all", nil)
			return
		}

		response := map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		}
		json.NewEncoder(w).Encode(response)
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetCronStatus")

		status := map[string]any{
			"evaluation": services.EvaluationSyncService.GetStatus(),
			"retry":      services.RolloutRetryService.GetStatus(),
		}

		json.NewEncoder(w).Encode(status)
	}
}
