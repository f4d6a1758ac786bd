package scheduler

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/campaign-orchestrator-api/infrastructure/repository/mocks"
	"github.com/vfg2006/campaign-orchestrator-api/internal/config"
	"github.com/vfg2006/campaign-orchestrator-api/internal/domain"
	"github.com/vfg2006/campaign-orchestrator-api/internal/usecases/lifecycling"
	lifecyclemocks "github.com/vfg2006/campaign-orchestrator-api/internal/usecases/lifecycling/mocks"
	syncmocks "github.com/vfg2006/campaign-orchestrator-api/internal/usecases/syncing/mocks"
	"go.uber.org/mock/gomock"
)

func newRolloutRetryService(ctrl *gomock.Controller) (*RolloutRetryService, *mocks.MockCampaignRepository, *syncmocks.MockTracker, *lifecyclemocks.MockLifecycler) {
	campaignRepo := mocks.NewMockCampaignRepository(ctrl)
	tracker := syncmocks.NewMockTracker(ctrl)
	lifecycle := lifecyclemocks.NewMockLifecycler(ctrl)

	cfg := &config.Config{
		QueueRetry: config.QueueRetry{
			CronSchedule: "*/15 * * * *",
			Enabled:      true,
		},
	}

	return NewRolloutRetryService(campaignRepo, tracker, lifecycle, cfg), campaignRepo, tracker, lifecycle
}

func TestRetryPendingWork_RedespachaEReenfileira(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, campaignRepo, tracker, lifecycle := newRolloutRetryService(ctrl)
	ctx := context.Background()

	tracker.EXPECT().RetryUnsettled(ctx).Return(nil)
	campaignRepo.EXPECT().ListIDsByStage(ctx, domain.StageErrorInTestingQueue).Return([]string{"CP0001"}, nil)
	lifecycle.EXPECT().
		Transition(ctx, "CP0001", domain.StageQueuedForTesting, "queue-retry", gomock.Nil()).
		Return(&domain.CampaignUpdateRecord{}, nil)

	err := service.RetryPendingWork(ctx)

	assert.NoError(t, err)
}

func TestRetryPendingWork_FalhaNoRedespachoNaoImpedeOReenfileiramento(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, campaignRepo, tracker, lifecycle := newRolloutRetryService(ctrl)
	ctx := context.Background()

	tracker.EXPECT().RetryUnsettled(ctx).Return(errors.New("plataforma indisponível"))
	campaignRepo.EXPECT().ListIDsByStage(ctx, domain.StageErrorInTestingQueue).Return([]string{"CP0001"}, nil)
	lifecycle.EXPECT().
		Transition(ctx, "CP0001", domain.StageQueuedForTesting, "queue-retry", gomock.Nil()).
		Return(&domain.CampaignUpdateRecord{}, nil)

	err := service.RetryPendingWork(ctx)

	assert.NoError(t, err)
}

func TestRetryPendingWork_TransicaoObsoletaEhTolerada(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, campaignRepo, tracker, lifecycle := newRolloutRetryService(ctrl)
	ctx := context.Background()

	tracker.EXPECT().RetryUnsettled(ctx).Return(nil)
	campaignRepo.EXPECT().ListIDsByStage(ctx, domain.StageErrorInTestingQueue).Return([]string{"CP0001", "CP0002"}, nil)
	lifecycle.EXPECT().
		Transition(ctx, "CP0001", domain.StageQueuedForTesting, "queue-retry", gomock.Nil()).
		Return(nil, lifecycling.ErrStaleTransition)
	lifecycle.EXPECT().
		Transition(ctx, "CP0002", domain.StageQueuedForTesting, "queue-retry", gomock.Nil()).
		Return(&domain.CampaignUpdateRecord{}, nil)

	err := service.RetryPendingWork(ctx)

	assert.NoError(t, err)
}

func TestRetryPendingWork_SemCampanhasComFalha(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, campaignRepo, tracker, _ := newRolloutRetryService(ctrl)
	ctx := context.Background()

	tracker.EXPECT().RetryUnsettled(ctx).Return(nil)
	campaignRepo.EXPECT().ListIDsByStage(ctx, domain.StageErrorInTestingQueue).Return([]string{}, nil)

	err := service.RetryPendingWork(ctx)

	assert.NoError(t, err)
}
