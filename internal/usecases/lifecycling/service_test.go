package lifecycling

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/campaign-orchestrator-api/infrastructure/repository"
	"github.com/vfg2006/campaign-orchestrator-api/infrastructure/repository/mocks"
	"github.com/vfg2006/campaign-orchestrator-api/internal/domain"
	lifecyclemocks "github.com/vfg2006/campaign-orchestrator-api/internal/usecases/lifecycling/mocks"
	"go.uber.org/mock/gomock"
)

type testDeps struct {
	campaignRepo   *mocks.MockCampaignRepository
	adCampaignRepo *mocks.MockAdCampaignRepository
	reconciler     *lifecyclemocks.MockMatrixReconciler
	dispatcher     *lifecyclemocks.MockRolloutDispatcher
	projector      *lifecyclemocks.MockBudgetProjector
}

func newTestService(ctrl *gomock.Controller) (*Service, *testDeps) {
	deps := &testDeps{
		campaignRepo:   mocks.NewMockCampaignRepository(ctrl),
		adCampaignRepo: mocks.NewMockAdCampaignRepository(ctrl),
		reconciler:     lifecyclemocks.NewMockMatrixReconciler(ctrl),
		dispatcher:     lifecyclemocks.NewMockRolloutDispatcher(ctrl),
		projector:      lifecyclemocks.NewMockBudgetProjector(ctrl),
	}
	service := NewService(deps.campaignRepo, deps.adCampaignRepo, deps.reconciler, deps.dispatcher, deps.projector)
	return service, deps
}

func stagePtr(stage domain.CampaignStage) *domain.CampaignStage {
	return &stage
}

func recordAt(id, campaignID string, stage *domain.CampaignStage) *domain.CampaignUpdateRecord {
	return &domain.CampaignUpdateRecord{
		ID:         id,
		CampaignID: campaignID,
		Stage:      stage,
		CreatedAt:  time.Now().UTC(),
	}
}

func TestTransition_TabelaDeAdjacencia(t *testing.T) {
	tests := []struct {
		name    string
		current *domain.CampaignUpdateRecord
		target  domain.CampaignStage
		allowed bool
	}{
		{
			name:    "screening para approvedForCampaign é permitido",
			current: nil, // log vazio: estágio inicial
			target:  domain.StageApprovedForCampaign,
			allowed: true,
		},
		{
			name:    "screening para rejectedForCampaign é permitido",
			current: nil,
			target:  domain.StageRejectedForCampaign,
			allowed: true,
		},
		{
			name:    "screening direto para running é rejeitado",
			current: nil,
			target:  domain.StageRunning,
			allowed: false,
		},
		{
			name:    "approvedForCampaign para queuedForTesting é permitido",
			current: recordAt("R1", "CP0001", stagePtr(domain.StageApprovedForCampaign)),
			target:  domain.StageQueuedForTesting,
			allowed: true,
		},
		{
			name:    "rejectedForCampaign é terminal",
			current: recordAt("R1", "CP0001", stagePtr(domain.StageRejectedForCampaign)),
			target:  domain.StageScreening,
			allowed: false,
		},
		{
			name:    "complete é terminal",
			current: recordAt("R1", "CP0001", stagePtr(domain.StageComplete)),
			target:  domain.StageRunning,
			allowed: false,
		},
		{
			name:    "paused volta para running",
			current: recordAt("R1", "CP0001", stagePtr(domain.StagePaused)),
			target:  domain.StageRunning,
			allowed: true,
		},
		{
			name:    "errorInTestingQueue volta para queuedForTesting",
			current: recordAt("R1", "CP0001", stagePtr(domain.StageErrorInTestingQueue)),
			target:  domain.StageQueuedForTesting,
			allowed: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service, deps := newTestService(ctrl)
			ctx := context.Background()

			deps.campaignRepo.EXPECT().GetByID(ctx, "CP0001").Return(&domain.Campaign{ID: "CP0001"}, nil)
			deps.campaignRepo.EXPECT().LatestUpdateRecord(ctx, "CP0001").Return(tt.current, nil)

			if tt.allowed {
				deps.campaignRepo.EXPECT().
					AppendUpdateRecord(ctx, gomock.Any()).
					DoAndReturn(func(_ context.Context, record *domain.CampaignUpdateRecord) (*domain.CampaignUpdateRecord, error) {
						assert.Equal(t, tt.target, *record.Stage)
						if tt.current != nil {
							assert.Equal(t, tt.current.ID, *record.ExtendsRecordID)
						} else {
							assert.Nil(t, record.ExtendsRecordID)
						}
						record.ID = "R2"
						return record, nil
					})
			}

			record, err := service.Transition(ctx, "CP0001", tt.target, "operator@label.com", nil)

			if tt.allowed {
				assert.NoError(t, err)
				assert.Equal(t, tt.target, *record.Stage)
			} else {
				assert.Nil(t, record)
				assert.ErrorIs(t, err, ErrInvalidTransition)

				var transitionErr *TransitionError
				assert.ErrorAs(t, err, &transitionErr)
				assert.Equal(t, tt.target, transitionErr.To)
			}
		})
	}
}

func TestTransition_TestingCompleteReservadoAoVeredito(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, _ := newTestService(ctrl)

	record, err := service.Transition(context.Background(), "CP0001", domain.StageTestingComplete, "operator@label.com", nil)

	assert.Nil(t, record)
	assert.ErrorIs(t, err, ErrVerdictOnly)
}

func TestCompleteTesting_AplicaTransicaoReservada(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, deps := newTestService(ctrl)
	ctx := context.Background()

	latest := recordAt("R5", "CP0001", stagePtr(domain.StageTesting))

	deps.campaignRepo.EXPECT().GetByID(ctx, "CP0001").Return(&domain.Campaign{ID: "CP0001"}, nil)
	deps.campaignRepo.EXPECT().LatestUpdateRecord(ctx, "CP0001").Return(latest, nil)
	deps.campaignRepo.EXPECT().
		AppendUpdateRecord(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, record *domain.CampaignUpdateRecord) (*domain.CampaignUpdateRecord, error) {
			record.ID = "R6"
			return record, nil
		})

	record, err := service.CompleteTesting(ctx, "CP0001", "winner-selector")

	assert.NoError(t, err)
	assert.Equal(t, domain.StageTestingComplete, *record.Stage)
	assert.Equal(t, "winner-selector", record.CreatedBy)
}

func TestTransition_AppendConcorrentePerdeACorrida(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, deps := newTestService(ctrl)
	ctx := context.Background()

	latest := recordAt("R1", "CP0001", stagePtr(domain.StageRunning))

	deps.campaignRepo.EXPECT().GetByID(ctx, "CP0001").Return(&domain.Campaign{ID: "CP0001"}, nil)
	deps.campaignRepo.EXPECT().LatestUpdateRecord(ctx, "CP0001").Return(latest, nil)
	deps.campaignRepo.EXPECT().
		AppendUpdateRecord(ctx, gomock.Any()).
		Return(nil, repository.ErrConcurrentAppend)

	record, err := service.Transition(ctx, "CP0001", domain.StagePaused, "operator@label.com", nil)

	assert.Nil(t, record)
	assert.ErrorIs(t, err, ErrStaleTransition)
}

func TestTransition_EntradaEmTestingMaterializaMatrizEDispara(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, deps := newTestService(ctrl)
	ctx := context.Background()

	latest := recordAt("R3", "CP0001", stagePtr(domain.StageQueuedForTesting))
	adCampaign := &domain.AdCampaign{ID: "AC0001", CampaignID: "CP0001"}

	deps.campaignRepo.EXPECT().GetByID(ctx, "CP0001").Return(&domain.Campaign{ID: "CP0001"}, nil)
	deps.campaignRepo.EXPECT().LatestUpdateRecord(ctx, "CP0001").Return(latest, nil)

	// Reconciliação acontece antes do append do estágio
	deps.adCampaignRepo.EXPECT().GetByCampaignID(ctx, "CP0001").Return(adCampaign, nil).Times(2)
	deps.reconciler.EXPECT().
		Reconcile(ctx, "AC0001").
		Return(&domain.ReconcileResult{AdCampaignID: "AC0001", Desired: 6}, nil)

	deps.campaignRepo.EXPECT().
		AppendUpdateRecord(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, record *domain.CampaignUpdateRecord) (*domain.CampaignUpdateRecord, error) {
			assert.Equal(t, domain.StageTesting, *record.Stage)
			record.ID = "R4"
			return record, nil
		})

	// Rollout nas plataformas só depois do estágio gravado
	deps.dispatcher.EXPECT().RolloutAdCampaign(ctx, "AC0001").Return(nil)

	record, err := service.Transition(ctx, "CP0001", domain.StageTesting, "operator@label.com", nil)

	assert.NoError(t, err)
	assert.Equal(t, domain.StageTesting, *record.Stage)
}

func TestTransition_FalhaNaReconciliacaoLevaParaErrorInTestingQueue(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, deps := newTestService(ctrl)
	ctx := context.Background()

	latest := recordAt("R3", "CP0001", stagePtr(domain.StageQueuedForTesting))
	adCampaign := &domain.AdCampaign{ID: "AC0001", CampaignID: "CP0001"}

	deps.campaignRepo.EXPECT().GetByID(ctx, "CP0001").Return(&domain.Campaign{ID: "CP0001"}, nil)
	deps.campaignRepo.EXPECT().LatestUpdateRecord(ctx, "CP0001").Return(latest, nil)
	deps.adCampaignRepo.EXPECT().GetByCampaignID(ctx, "CP0001").Return(adCampaign, nil)

	reconcileErr := assert.AnError
	deps.reconciler.EXPECT().Reconcile(ctx, "AC0001").Return(nil, reconcileErr)

	// A falha é registrada no log como errorInTestingQueue
	deps.campaignRepo.EXPECT().
		AppendUpdateRecord(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, record *domain.CampaignUpdateRecord) (*domain.CampaignUpdateRecord, error) {
			assert.Equal(t, domain.StageErrorInTestingQueue, *record.Stage)
			record.ID = "R4"
			return record, nil
		})

	record, err := service.Transition(ctx, "CP0001", domain.StageTesting, "operator@label.com", nil)

	assert.Nil(t, record)
	assert.ErrorIs(t, err, reconcileErr)
}

func TestTransition_SnapshotDeOrcamentoEhCompletadoPeloProjetor(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, deps := newTestService(ctrl)
	ctx := context.Background()

	latest := recordAt("R1", "CP0001", stagePtr(domain.StageScreening))
	snapshot := &domain.BudgetSnapshot{}

	deps.campaignRepo.EXPECT().GetByID(ctx, "CP0001").Return(&domain.Campaign{ID: "CP0001"}, nil)
	deps.campaignRepo.EXPECT().LatestUpdateRecord(ctx, "CP0001").Return(latest, nil)
	deps.projector.EXPECT().
		CompleteSnapshot(snapshot).
		Return(&domain.CampaignUpdateRecord{}, nil)
	deps.campaignRepo.EXPECT().
		AppendUpdateRecord(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, record *domain.CampaignUpdateRecord) (*domain.CampaignUpdateRecord, error) {
			record.ID = "R2"
			return record, nil
		})

	record, err := service.Transition(ctx, "CP0001", domain.StageApprovedForCampaign, "operator@label.com", snapshot)

	assert.NoError(t, err)
	assert.NotNil(t, record)
}

func TestCurrentStage_ProjecaoDoLog(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, deps := newTestService(ctrl)
	ctx := context.Background()

	t.Run("log vazio retorna o estágio inicial", func(t *testing.T) {
		deps.campaignRepo.EXPECT().GetByID(ctx, "CP0001").Return(&domain.Campaign{ID: "CP0001"}, nil)
		deps.campaignRepo.EXPECT().LatestUpdateRecord(ctx, "CP0001").Return(nil, nil)

		stage, err := service.CurrentStage(ctx, "CP0001")

		assert.NoError(t, err)
		assert.Equal(t, domain.StageScreening, stage)
	})

	t.Run("registro só de orçamento não muda a projeção", func(t *testing.T) {
		budgetOnly := recordAt("R3", "CP0001", nil)

		deps.campaignRepo.EXPECT().GetByID(ctx, "CP0001").Return(&domain.Campaign{ID: "CP0001"}, nil)
		deps.campaignRepo.EXPECT().LatestUpdateRecord(ctx, "CP0001").Return(budgetOnly, nil)
		deps.campaignRepo.EXPECT().ListUpdateRecords(ctx, "CP0001").Return([]*domain.CampaignUpdateRecord{
			recordAt("R1", "CP0001", stagePtr(domain.StageScreening)),
			recordAt("R2", "CP0001", stagePtr(domain.StageApprovedForCampaign)),
			budgetOnly,
		}, nil)

		stage, err := service.CurrentStage(ctx, "CP0001")

		assert.NoError(t, err)
		assert.Equal(t, domain.StageApprovedForCampaign, stage)
	})

	t.Run("campanha inexistente", func(t *testing.T) {
		deps.campaignRepo.EXPECT().GetByID(ctx, "CP9999").Return(nil, nil)

		stage, err := service.CurrentStage(ctx, "CP9999")

		assert.Empty(t, stage)
		assert.ErrorIs(t, err, ErrCampaignNotFound)
	})
}
