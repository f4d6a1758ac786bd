package scheduler

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/campaign-orchestrator-api/infrastructure/repository/mocks"
	"github.com/vfg2006/campaign-orchestrator-api/internal/config"
	"github.com/vfg2006/campaign-orchestrator-api/internal/domain"
	"github.com/vfg2006/campaign-orchestrator-api/internal/usecases/winnerselecting"
	selectormocks "github.com/vfg2006/campaign-orchestrator-api/internal/usecases/winnerselecting/mocks"
	"go.uber.org/mock/gomock"
)

func newEvaluationSyncService(ctrl *gomock.Controller) (*EvaluationSyncService, *mocks.MockCampaignRepository, *selectormocks.MockSelector) {
	campaignRepo := mocks.NewMockCampaignRepository(ctrl)
	selector := selectormocks.NewMockSelector(ctrl)

	cfg := &config.Config{
		EvaluationSync: config.EvaluationSync{
			CronSchedule: "*/30 * * * *",
			Enabled:      true,
		},
	}

	return NewEvaluationSyncService(campaignRepo, selector, cfg), campaignRepo, selector
}

func TestEvaluateTestingCampaigns_AvaliaCadaCampanhaEmTeste(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, campaignRepo, selector := newEvaluationSyncService(ctrl)
	ctx := context.Background()

	campaignRepo.EXPECT().ListIDsByStage(ctx, domain.StageTesting).Return([]string{"CP0001", "CP0002"}, nil)
	selector.EXPECT().Evaluate(ctx, "CP0001").Return(&winnerselecting.EvaluationResult{CampaignID: "CP0001"}, nil)
	selector.EXPECT().Evaluate(ctx, "CP0002").Return(&winnerselecting.EvaluationResult{CampaignID: "CP0002", TestingCompleted: true}, nil)

	err := service.EvaluateTestingCampaigns(ctx)

	assert.NoError(t, err)
}

func TestEvaluateTestingCampaigns_LeaseOcupadoNaoInterrompeOCiclo(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, campaignRepo, selector := newEvaluationSyncService(ctrl)
	ctx := context.Background()

	campaignRepo.EXPECT().ListIDsByStage(ctx, domain.StageTesting).Return([]string{"CP0001", "CP0002"}, nil)
	selector.EXPECT().Evaluate(ctx, "CP0001").Return(nil, winnerselecting.ErrEvaluationInProgress)
	selector.EXPECT().Evaluate(ctx, "CP0002").Return(&winnerselecting.EvaluationResult{CampaignID: "CP0002"}, nil)

	err := service.EvaluateTestingCampaigns(ctx)

	assert.NoError(t, err)
}

func TestEvaluateTestingCampaigns_FalhaEmUmaCampanhaNaoDerrubaAsDemais(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, campaignRepo, selector := newEvaluationSyncService(ctrl)
	ctx := context.Background()

	campaignRepo.EXPECT().ListIDsByStage(ctx, domain.StageTesting).Return([]string{"CP0001", "CP0002"}, nil)
	selector.EXPECT().Evaluate(ctx, "CP0001").Return(nil, errors.New("erro transitório"))
	selector.EXPECT().Evaluate(ctx, "CP0002").Return(&winnerselecting.EvaluationResult{CampaignID: "CP0002"}, nil)

	err := service.EvaluateTestingCampaigns(ctx)

	assert.NoError(t, err)
}

func TestEvaluateTestingCampaigns_SemCampanhasEmTeste(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, campaignRepo, _ := newEvaluationSyncService(ctrl)
	ctx := context.Background()

	campaignRepo.EXPECT().ListIDsByStage(ctx, domain.StageTesting).Return([]string{}, nil)

	err := service.EvaluateTestingCampaigns(ctx)

	assert.NoError(t, err)
}

func TestEvaluateTestingCampaigns_ErroAoListarCampanhas(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, campaignRepo, _ := newEvaluationSyncService(ctrl)
	ctx := context.Background()

	campaignRepo.EXPECT().ListIDsByStage(ctx, domain.StageTesting).Return(nil, errors.New("conexão recusada"))

	err := service.EvaluateTestingCampaigns(ctx)

	assert.Error(t, err)
}
