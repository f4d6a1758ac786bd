package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics concentra os contadores expostos em /metrics.
// Um registry próprio evita colisões com os coletores default do client_golang.
type Metrics struct {
	registry *prometheus.Registry

	// Chamadas de sincronização com plataformas, por plataforma/operação/resultado
	PlatformSyncAttempts *prometheus.CounterVec
	PlatformSyncOutcomes *prometheus.CounterVec

	// Registros de sincronização liquidados, por status terminal
	SyncRecordsSettled *prometheus.CounterVec

	// Transições de estágio aplicadas, por estágio alvo
	StageTransitions *prometheus.CounterVec

	// Avaliações do seletor de vencedores
	EvaluationRuns     prometheus.Counter
	WinnersDetermined  prometheus.Counter
	CampaignsCompleted prometheus.Counter
}

func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		registry: registry,
		PlatformSyncAttempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "campaign_orchestrator",
			Name:      "platform_sync_attempts_total",
			Help:      "Tentativas de chamada contra plataformas de anúncios",
		}, []string{"platform", "op"}),
		PlatformSyncOutcomes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "campaign_orchestrator",
			Name:      "platform_sync_outcomes_total",
			Help:      "Resultados finais por plataforma de operações de sincronização",
		}, []string{"platform", "op", "outcome"}),
		SyncRecordsSettled: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "campaign_orchestrator",
			Name:      "sync_records_settled_total",
			Help:      "Registros de sincronização liquidados por status terminal",
		}, []string{"op", "status"}),
		StageTransitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "campaign_orchestrator",
			Name:      "stage_transitions_total",
			Help:      "Transições de estágio de campanha aplicadas",
		}, []string{"to"}),
		EvaluationRuns: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "campaign_orchestrator",
			Name:      "evaluation_runs_total",
			Help:      "Execuções do seletor de vencedores",
		}),
		WinnersDetermined: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "campaign_orchestrator",
			Name:      "winners_determined_total",
			Help:      "Ads com veredito de vencedor gravado",
		}),
		CampaignsCompleted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "campaign_orchestrator",
			Name:      "testing_campaigns_completed_total",
			Help:      "Campanhas movidas para testingComplete pelo veredito",
		}),
	}

	registry.MustRegister(
		m.PlatformSyncAttempts,
		m.PlatformSyncOutcomes,
		m.SyncRecordsSettled,
		m.StageTransitions,
		m.EvaluationRuns,
		m.WinnersDetermined,
		m.CampaignsCompleted,
	)

	return m
}

// Handler expõe o registry no formato do Prometheus
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
