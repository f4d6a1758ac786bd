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
	"github.com/vfg2006/campaign-orchestrator-api/internal/usecases/lifecycling"
	"github.com/vfg2006/campaign-orchestrator-api/internal/usecases/syncing"
)

// retryActor identifica o agendador no log das campanhas reenfileiradas
const retryActor = "queue-retry"

type RolloutRetryConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// RolloutRetryService redespacha registros de sincronização não liquidados e
// devolve campanhas em errorInTestingQueue para a fila de teste
type RolloutRetryService struct {
	scheduler           *gocron.Scheduler
	campaignRepo        repository.CampaignRepository
	tracker             syncing.Tracker
	lifecycle           lifecycling.Lifecycler
	config              RolloutRetryConfig
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

func NewRolloutRetryService(
	campaignRepo repository.CampaignRepository,
	tracker syncing.Tracker,
	lifecycle lifecycling.Lifecycler,
	cfg *config.Config,
) *RolloutRetryService {
	retryConfig := RolloutRetryConfig{
		CronSchedule: cfg.QueueRetry.CronSchedule, // Default: a cada 15 minutos
		SyncEnabled:  cfg.QueueRetry.Enabled,      // Default: desabilitado
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": retryConfig.CronSchedule,
	}).Info("Configuração do agendador de retentativas de publicação carregada")

	return &RolloutRetryService{
		scheduler:    scheduler,
		campaignRepo: campaignRepo,
		tracker:      tracker,
		lifecycle:    lifecycle,
		config:       retryConfig,
	}
}

func (s *RolloutRetryService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Cron de retentativas de publicação desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de retentativas de publicação")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.RetryPendingWork(ctx); err != nil {
			logrus.WithError(err).Error("Erro no ciclo de retentativas de publicação")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar retentativas de publicação: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron de retentativas de publicação")
		s.scheduler.Stop()
	}()

	return nil
}

// RetryPendingWork roda um ciclo completo: primeiro redespacha os registros de
// sincronização pendentes, depois reenfileira as campanhas que falharam na
// entrada do teste. O redespacho é idempotente, plataformas já concluídas são
// puladas pelo tracker.
func (s *RolloutRetryService) RetryPendingWork(ctx context.Context) error {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	if s.syncRunning {
		logrus.Warn("Ciclo de retentativas de publicação já está em execução")
		return nil
	}

	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	defer func() {
		s.syncRunning = false
		s.lastSyncCompletedAt = time.Now()
	}()

	logrus.Info("Iniciando ciclo de retentativas de publicação")

	if err := s.tracker.RetryUnsettled(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao redespachar registros de sincronização pendentes")
	}

	if err := s.requeueFailedCampaigns(ctx); err != nil {
		return err
	}

	logrus.Info("Ciclo de retentativas de publicação concluído")

	return nil
}

func (s *RolloutRetryService) requeueFailedCampaigns(ctx context.Context) error {
	campaignIDs, err := s.campaignRepo.ListIDsByStage(ctx, domain.StageErrorInTestingQueue)
	if err != nil {
		return errors.Wrap(err, "erro ao listar campanhas em errorInTestingQueue")
	}

	if len(campaignIDs) == 0 {
		return nil
	}

	logrus.WithField("campaigns", len(campaignIDs)).Info("Reenfileirando campanhas com falha na entrada do teste")

	for _, campaignID := range campaignIDs {
		_, err := s.lifecycle.Transition(ctx, campaignID, domain.StageQueuedForTesting, retryActor, nil)
		if err != nil {
			if errors.Is(err, lifecycling.ErrStaleTransition) {
				logrus.WithField("campaign_id", campaignID).Info("Campanha mudou de estágio durante o reenfileiramento, pulando")
				continue
			}
			logrus.WithError(err).WithField("campaign_id", campaignID).Error("Erro ao reenfileirar campanha")
			continue
		}

		logrus.WithField("campaign_id", campaignID).Info("Campanha devolvida para queuedForTesting")
	}

	return nil
}

// TriggerManualSync inicia manualmente um ciclo de retentativas. O ciclo roda
// em background com contexto próprio, desacoplado da requisição que o disparou.
func (s *RolloutRetryService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Ciclo de retentativas já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando ciclo manual de retentativas de publicação")
	go func() {
		if err := s.RetryPendingWork(context.Background()); err != nil {
			logrus.WithError(err).Error("Erro no ciclo manual de retentativas de publicação")
		}
	}()
}

// GetStatus retorna o status atual do agendador
func (s *RolloutRetryService) GetStatus() map[string]any {
	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
