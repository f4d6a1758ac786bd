package handler

import (
	"net/http"

	"github.com/vfg2006/campaign-orchestrator-api/internal/api/handler/router"
	"github.com/vfg2006/campaign-orchestrator-api/internal/usecases/authenticating"
	"github.com/vfg2006/campaign-orchestrator-api/internal/usecases/budgeting"
	"github.com/vfg2006/campaign-orchestrator-api/internal/usecases/lifecycling"
	"github.com/vfg2006/campaign-orchestrator-api/internal/usecases/syncing"
	"github.com/vfg2006/campaign-orchestrator-api/internal/usecases/testmatrix"
	"github.com/vfg2006/campaign-orchestrator-api/internal/usecases/winnerselecting"
	"github.com/vfg2006/campaign-orchestrator-api/pkg/metrics"
	"github.com/vfg2006/campaign-orchestrator-api/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Metrics(m *metrics.Metrics) []router.Route {
	return []router.Route{
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: m.Handler(),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
	}
}

func Campaigns(lifecycle lifecycling.Lifecycler, planner budgeting.Planner, selector winnerselecting.Selector) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/campaigns/:id/transition",
			Method:      http.MethodPost,
			Handler:     TransitionCampaign(lifecycle),
			Middlewares: []func(http.Handler) http.Handler{middleware.Authenticated()},
		},
		{
			Path:        "/v1/campaigns/:id/stage",
			Method:      http.MethodGet,
			Handler:     GetCampaignStage(lifecycle),
			Middlewares: []func(http.Handler) http.Handler{middleware.Authenticated()},
		},
		{
			Path:        "/v1/campaigns/:id/evaluate",
			Method:      http.MethodPost,
			Handler:     EvaluateCampaign(selector),
			Middlewares: []func(http.Handler) http.Handler{middleware.HumansOnly()},
		},
	}
}

func AdCampaigns(generator testmatrix.Generator, tracker syncing.Tracker, planner budgeting.Planner) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/ad-campaigns/:id/reconcile",
			Method:      http.MethodPost,
			Handler:     ReconcileAdCampaign(generator),
			Middlewares: []func(http.Handler) http.Handler{middleware.HumansOnly()},
		},
		{
			Path:        "/v1/ad-campaigns/:id/rollout",
			Method:      http.MethodPost,
			Handler:     RolloutAdCampaign(tracker),
			Middlewares: []func(http.Handler) http.Handler{middleware.HumansOnly()},
		},
		{
			Path:        "/v1/ad-campaigns/:id/pacing-gate",
			Method:      http.MethodGet,
			Handler:     GetPacingGate(planner),
			Middlewares: []func(http.Handler) http.Handler{middleware.Authenticated()},
		},
	}
}

func AdSets(tracker syncing.Tracker) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/ad-sets/:id/clone",
			Method:      http.MethodPost,
			Handler:     CloneAdSet(tracker),
			Middlewares: []func(http.Handler) http.Handler{middleware.Authenticated()},
		},
		{
			Path:        "/v1/ad-sets/:id",
			Method:      http.MethodPut,
			Handler:     UpdateAdSet(tracker),
			Middlewares: []func(http.Handler) http.Handler{middleware.Authenticated()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.HumansOnly()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.HumansOnly()},
		},
	}
}
