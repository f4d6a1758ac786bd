package lifecycling

import (
	"context"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-orchestrator-api/infrastructure/repository"
	"github.com/vfg2006/campaign-orchestrator-api/internal/domain"
)

//go:generate mockgen -source=service.go -destination=mocks/service_mock.go -package=mocks

// Lifecycler é a máquina de estados do ciclo de vida de campanhas. É o único
// componente que muda o estágio durável de uma campanha, sempre via append no
// log de CampaignUpdateRecords.
type Lifecycler interface {
	// Transition valida e aplica uma transição pedida por operador ou
	// automação. O snapshot de orçamento, quando presente, é validado,
	// completado com as projeções derivadas e gravado no mesmo registro.
	Transition(ctx context.Context, campaignID string, target domain.CampaignStage, actor string, snapshot *domain.BudgetSnapshot) (*domain.CampaignUpdateRecord, error)

	// CompleteTesting aplica testing -> testingComplete. Só o veredito do
	// seletor de vencedores chama este método.
	CompleteTesting(ctx context.Context, campaignID string, actor string) (*domain.CampaignUpdateRecord, error)

	// CurrentStage retorna a projeção derivada do estágio atual
	CurrentStage(ctx context.Context, campaignID string) (domain.CampaignStage, error)
}

// MatrixReconciler materializa a matriz de ad sets na entrada do estágio testing
type MatrixReconciler interface {
	Reconcile(ctx context.Context, adCampaignID string) (*domain.ReconcileResult, error)
}

// RolloutDispatcher publica os ad sets recém-criados nas plataformas
type RolloutDispatcher interface {
	RolloutAdCampaign(ctx context.Context, adCampaignID string) error
}

// BudgetProjector completa um snapshot com as projeções derivadas e valida as
// identidades de orçamento antes da gravação
type BudgetProjector interface {
	CompleteSnapshot(snapshot *domain.BudgetSnapshot) (*domain.CampaignUpdateRecord, error)
}

type Service struct {
	campaignRepo   repository.CampaignRepository
	adCampaignRepo repository.AdCampaignRepository
	reconciler     MatrixReconciler
	dispatcher     RolloutDispatcher
	projector      BudgetProjector
}

func NewService(
	campaignRepo repository.CampaignRepository,
	adCampaignRepo repository.AdCampaignRepository,
	reconciler MatrixReconciler,
	dispatcher RolloutDispatcher,
	projector BudgetProjector,
) *Service {
	return &Service{
		campaignRepo:   campaignRepo,
		adCampaignRepo: adCampaignRepo,
		reconciler:     reconciler,
		dispatcher:     dispatcher,
		projector:      projector,
	}
}

func (s *Service) Transition(ctx context.Context, campaignID string, target domain.CampaignStage, actor string, snapshot *domain.BudgetSnapshot) (*domain.CampaignUpdateRecord, error) {
	if target == domain.StageTestingComplete {
		return nil, ErrVerdictOnly
	}
	return s.transition(ctx, campaignID, target, actor, snapshot)
}

func (s *Service) CompleteTesting(ctx context.Context, campaignID string, actor string) (*domain.CampaignUpdateRecord, error) {
	return s.transition(ctx, campaignID, domain.StageTestingComplete, actor, nil)
}

func (s *Service) transition(ctx context.Context, campaignID string, target domain.CampaignStage, actor string, snapshot *domain.BudgetSnapshot) (*domain.CampaignUpdateRecord, error) {
	if !target.IsValid() {
		return nil, &TransitionError{To: target}
	}

	campaign, err := s.campaignRepo.GetByID(ctx, campaignID)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar campanha")
	}
	if campaign == nil {
		return nil, ErrCampaignNotFound
	}

	latest, err := s.campaignRepo.LatestUpdateRecord(ctx, campaignID)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao ler o log da campanha")
	}

	current, err := s.stageOf(ctx, campaignID, latest)
	if err != nil {
		return nil, err
	}

	if !current.CanTransitionTo(target) {
		return nil, &TransitionError{From: current, To: target}
	}

	// A entrada em testing materializa a matriz antes de gravar o estágio:
	// uma falha aqui leva a campanha para errorInTestingQueue em vez de
	// deixá-la presa em testing
	if target == domain.StageTesting {
		if reconcileErr := s.enterTesting(ctx, campaignID); reconcileErr != nil {
			if _, appendErr := s.append(ctx, campaignID, latest, domain.StageErrorInTestingQueue, actor, nil); appendErr != nil {
				logrus.WithError(appendErr).WithField("campaign_id", campaignID).
					Error("Erro ao registrar errorInTestingQueue após falha de reconciliação")
			}
			return nil, reconcileErr
		}
	}

	record, err := s.append(ctx, campaignID, latest, target, actor, snapshot)
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"campaign_id": campaignID,
		"from":        current,
		"to":          target,
		"actor":       actor,
		"record_id":   record.ID,
	}).Info("Transição de estágio aplicada")

	// A publicação nas plataformas acontece depois do estágio gravado; falhas
	// por plataforma ficam nos registros de sincronização e são reprocessadas
	// pelo agendador de retry
	if target == domain.StageTesting {
		s.dispatchRollout(ctx, campaignID)
	}

	return record, nil
}

func (s *Service) CurrentStage(ctx context.Context, campaignID string) (domain.CampaignStage, error) {
	campaign, err := s.campaignRepo.GetByID(ctx, campaignID)
	if err != nil {
		return "", errors.Wrap(err, "erro ao buscar campanha")
	}
	if campaign == nil {
		return "", ErrCampaignNotFound
	}

	latest, err := s.campaignRepo.LatestUpdateRecord(ctx, campaignID)
	if err != nil {
		return "", errors.Wrap(err, "erro ao ler o log da campanha")
	}

	return s.stageOf(ctx, campaignID, latest)
}

// stageOf deriva o estágio atual: o estágio do registro mais recente que
// carrega estágio. Registros só de orçamento não mudam a projeção.
func (s *Service) stageOf(ctx context.Context, campaignID string, latest *domain.CampaignUpdateRecord) (domain.CampaignStage, error) {
	if latest == nil {
		return domain.InitialStage, nil
	}
	if latest.Stage != nil {
		return *latest.Stage, nil
	}

	records, err := s.campaignRepo.ListUpdateRecords(ctx, campaignID)
	if err != nil {
		return "", errors.Wrap(err, "erro ao ler o log da campanha")
	}

	for i := len(records) - 1; i >= 0; i-- {
		if records[i].Stage != nil {
			return *records[i].Stage, nil
		}
	}

	return domain.InitialStage, nil
}

func (s *Service) append(ctx context.Context, campaignID string, latest *domain.CampaignUpdateRecord, stage domain.CampaignStage, actor string, snapshot *domain.BudgetSnapshot) (*domain.CampaignUpdateRecord, error) {
	record := &domain.CampaignUpdateRecord{
		CampaignID: campaignID,
		CreatedBy:  actor,
		Stage:      &stage,
	}
	if latest != nil {
		record.ExtendsRecordID = &latest.ID
	}

	if snapshot != nil {
		projected, err := s.projector.CompleteSnapshot(snapshot)
		if err != nil {
			return nil, err
		}
		record.DailyBudget = projected.DailyBudget
		record.TriggerFraction = projected.TriggerFraction
		record.ProjectedCostPerMetric = projected.ProjectedCostPerMetric
		record.ProjectedMonthlyMetric = projected.ProjectedMonthlyMetric
		record.ProjectedMonthlyAdSpend = projected.ProjectedMonthlyAdSpend
		record.ProjectedMonthlyMaintenanceSpend = projected.ProjectedMonthlyMaintenanceSpend
		record.ProjectedMonthlyTotalSpend = projected.ProjectedMonthlyTotalSpend
		record.ProjectedMonthlyRevenue = projected.ProjectedMonthlyRevenue
		record.ProjectedMonthlyNet = projected.ProjectedMonthlyNet
	}

	appended, err := s.campaignRepo.AppendUpdateRecord(ctx, record)
	if err != nil {
		if errors.Is(err, repository.ErrConcurrentAppend) {
			return nil, ErrStaleTransition
		}
		return nil, errors.Wrap(err, "erro ao gravar registro de transição")
	}

	return appended, nil
}

func (s *Service) enterTesting(ctx context.Context, campaignID string) error {
	adCampaign, err := s.adCampaignRepo.GetByCampaignID(ctx, campaignID)
	if err != nil {
		return errors.Wrap(err, "erro ao buscar ad campaign")
	}
	if adCampaign == nil {
		return errors.New("campanha não possui ad campaign configurada")
	}

	result, err := s.reconciler.Reconcile(ctx, adCampaign.ID)
	if err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"campaign_id":    campaignID,
		"ad_campaign_id": adCampaign.ID,
		"desired":        result.Desired,
		"created":        len(result.CreatedKeys),
		"archived":       len(result.ArchivedKeys),
	}).Info("Matriz de testes materializada na entrada do estágio testing")

	return nil
}

func (s *Service) dispatchRollout(ctx context.Context, campaignID string) {
	adCampaign, err := s.adCampaignRepo.GetByCampaignID(ctx, campaignID)
	if err != nil || adCampaign == nil {
		logrus.WithError(err).WithField("campaign_id", campaignID).
			Error("Erro ao buscar ad campaign para rollout")
		return
	}

	if err := s.dispatcher.RolloutAdCampaign(ctx, adCampaign.ID); err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"campaign_id":    campaignID,
			"ad_campaign_id": adCampaign.ID,
		}).Error("Erro ao publicar ad sets nas plataformas")
	}
}
