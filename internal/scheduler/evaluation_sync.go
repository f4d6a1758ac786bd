// Package scheduler contém os serviços de agendamento dos ciclos periódicos
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-orchestrator-api/infrastructure/repository"
	"github.com/vfg2006/campaign-orchestrator-api/internal/config"
	"github.com/vfg2006/campaign-orchestrator-api/internal/domain"
	"github.com/vfg2006/campaign-orchestrator-api/internal/usecases/winnerselecting"
)

type EvaluationSyncConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// EvaluationSyncService percorre as campanhas em testing e dispara uma
// avaliação de vencedores para cada uma. Avaliações concorrentes da mesma
// campanha são resolvidas pelo lease do seletor, não aqui.
type EvaluationSyncService struct {
	scheduler           *gocron.Scheduler
	campaignRepo        repository.CampaignRepository
	selector            winnerselecting.Selector
	config              EvaluationSyncConfig
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

func NewEvaluationSyncService(
	campaignRepo repository.CampaignRepository,
	selector winnerselecting.Selector,
	cfg *config.Config,
) *EvaluationSyncService {
	syncConfig := EvaluationSyncConfig{
		CronSchedule: cfg.EvaluationSync.CronSchedule, // Default: a cada 30 minutos
		SyncEnabled:  cfg.EvaluationSync.Enabled,      // Default: desabilitado
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
	}).Info("Configuração do agendador de avaliação de campanhas carregada")

	return &EvaluationSyncService{
		scheduler:    scheduler,
		campaignRepo: campaignRepo,
		selector:     selector,
		config:       syncConfig,
	}
}

func (s *EvaluationSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Cron de avaliação de campanhas desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de avaliação de campanhas")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.EvaluateTestingCampaigns(ctx); err != nil {
			logrus.WithError(err).Error("Erro no ciclo de avaliação de campanhas")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar avaliação de campanhas: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron de avaliação de campanhas")
		s.scheduler.Stop()
	}()

	return nil
}

// EvaluateTestingCampaigns roda um ciclo completo sobre todas as campanhas em
// testing. Falha em uma campanha não interrompe as demais.
func (s *EvaluationSyncService) EvaluateTestingCampaigns(ctx context.Context) error {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	if s.syncRunning {
		logrus.Warn("Ciclo de avaliação de campanhas já está em execução")
		return nil
	}

	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	defer func() {
		s.syncRunning = false
		s.lastSyncCompletedAt = time.Now()
	}()

	campaignIDs, err := s.campaignRepo.ListIDsByStage(ctx, domain.StageTesting)
	if err != nil {
		return errors.Wrap(err, "erro ao listar campanhas em testing")
	}

	if len(campaignIDs) == 0 {
		logrus.Info("Nenhuma campanha em testing para avaliar")
		return nil
	}

	logrus.WithField("campaigns", len(campaignIDs)).Info("Iniciando ciclo de avaliação de campanhas")

	for _, campaignID := range campaignIDs {
		result, err := s.selector.Evaluate(ctx, campaignID)
		if err != nil {
			if errors.Is(err, winnerselecting.ErrEvaluationInProgress) {
				logrus.WithField("campaign_id", campaignID).Info("Avaliação já em andamento, pulando campanha")
				continue
			}
			logrus.WithError(err).WithField("campaign_id", campaignID).Error("Erro ao avaliar campanha")
			continue
		}

		logrus.WithFields(logrus.Fields{
			"campaign_id":         campaignID,
			"winners_determined":  result.WinnersDetermined,
			"insufficient_sample": result.InsufficientSample,
			"testing_completed":   result.TestingCompleted,
		}).Info("Avaliação da campanha concluída")
	}

	logrus.Info("Ciclo de avaliação de campanhas concluído")

	return nil
}

// TriggerManualSync inicia manualmente um ciclo de avaliação. O ciclo roda em
// background com contexto próprio, desacoplado da requisição que o disparou.
func (s *EvaluationSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Ciclo de avaliação já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando ciclo manual de avaliação de campanhas")
	go func() {
		if err := s.EvaluateTestingCampaigns(context.Background()); err != nil {
			logrus.WithError(err).Error("Erro no ciclo manual de avaliação de campanhas")
		}
	}()
}

// GetStatus retorna o status atual do agendador
func (s *EvaluationSyncService) GetStatus() map[string]any {
	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
