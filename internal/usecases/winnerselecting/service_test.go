package winnerselecting_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/campaign-orchestrator-api/infrastructure/repository/mocks"
	"github.com/vfg2006/campaign-orchestrator-api/internal/config"
	"github.com/vfg2006/campaign-orchestrator-api/internal/domain"
	"github.com/vfg2006/campaign-orchestrator-api/internal/usecases/winnerselecting"
	lifecyclemocks "github.com/vfg2006/campaign-orchestrator-api/internal/usecases/winnerselecting/mocks"
	lockmocks "github.com/vfg2006/campaign-orchestrator-api/pkg/lock/mocks"
	"github.com/vfg2006/campaign-orchestrator-api/pkg/metrics"
	"go.uber.org/mock/gomock"
)

type testDeps struct {
	adCampaignRepo *mocks.MockAdCampaignRepository
	adSetRepo      *mocks.MockAdSetRepository
	adRepo         *mocks.MockAdRepository
	statRepo       *mocks.MockStatRepository
	lifecycle      *lifecyclemocks.MockLifecycleDriver
	locker         *lockmocks.MockLocker
}

func newTestService(t *testing.T, ctrl *gomock.Controller) (*winnerselecting.Service, *testDeps) {
	deps := &testDeps{
		adCampaignRepo: mocks.NewMockAdCampaignRepository(ctrl),
		adSetRepo:      mocks.NewMockAdSetRepository(ctrl),
		adRepo:         mocks.NewMockAdRepository(ctrl),
		statRepo:       mocks.NewMockStatRepository(ctrl),
		lifecycle:      lifecyclemocks.NewMockLifecycleDriver(ctrl),
		locker:         lockmocks.NewMockLocker(ctrl),
	}

	cfg := &config.Config{
		Redis: config.Redis{LeaseTTLSeconds: 120},
		EvaluationSync: config.EvaluationSync{
			TestWindowDays:       7,
			MinSampleSpend:       "20.00",
			MinSampleImpressions: 1000,
		},
	}

	service, err := winnerselecting.NewService(
		deps.adCampaignRepo,
		deps.adSetRepo,
		deps.adRepo,
		deps.statRepo,
		deps.lifecycle,
		deps.locker,
		metrics.NewMetrics(),
		cfg,
	)
	assert.NoError(t, err)

	return service, deps
}

func boolPtr(b bool) *bool {
	return &b
}

func perf(adID, spend string, impressions, results int64) *domain.AdPerformance {
	return &domain.AdPerformance{
		AdID:        adID,
		Spend:       decimal.RequireFromString(spend),
		Impressions: impressions,
		Results:     results,
	}
}

func expectLease(deps *testDeps, campaignID string) {
	deps.locker.EXPECT().Acquire(gomock.Any(), "evaluation:"+campaignID, gomock.Any()).Return(true, nil)
	deps.locker.EXPECT().Release(gomock.Any(), "evaluation:"+campaignID).Return(nil)
}

func TestEvaluate_VencedorDeMenorCustoPorResultado(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, deps := newTestService(t, ctrl)
	ctx := context.Background()

	expectLease(deps, "CP0001")
	deps.lifecycle.EXPECT().CurrentStage(ctx, "CP0001").Return(domain.StageTesting, nil)
	deps.adCampaignRepo.EXPECT().GetByCampaignID(ctx, "CP0001").Return(&domain.AdCampaign{ID: "AC0001", CampaignID: "CP0001"}, nil)
	deps.adSetRepo.EXPECT().ListByAdCampaignID(ctx, "AC0001").Return([]*domain.AdSet{
		{ID: "AS0001", AdCampaignID: "AC0001", CreatedAt: time.Now().UTC()},
	}, nil)
	deps.adRepo.EXPECT().ListByAdSetID(ctx, "AS0001").Return([]*domain.Ad{
		{ID: "AD0001", AdSetID: "AS0001"},
		{ID: "AD0002", AdSetID: "AS0001"},
	}, nil)

	// AD0002 vence: 40/100 = 0.40 contra 50/100 = 0.50
	deps.statRepo.EXPECT().
		AggregateByAdIDs(ctx, []string{"AD0001", "AD0002"}, gomock.Any(), gomock.Any()).
		Return(map[string]*domain.AdPerformance{
			"AD0001": perf("AD0001", "50.00", 5000, 100),
			"AD0002": perf("AD0002", "40.00", 5000, 100),
		}, nil)

	deps.adRepo.EXPECT().SetPassedTest(ctx, "AD0002", gomock.Eq(boolPtr(true))).Return(nil)
	deps.adRepo.EXPECT().SetPassedTest(ctx, "AD0001", gomock.Eq(boolPtr(false))).Return(nil)

	// Único ad set determinado: a campanha conclui o teste
	deps.lifecycle.EXPECT().CompleteTesting(ctx, "CP0001", "winner-selector").Return(&domain.CampaignUpdateRecord{}, nil)

	result, err := service.Evaluate(ctx, "CP0001")

	assert.NoError(t, err)
	assert.Equal(t, 1, result.AdSetsEvaluated)
	assert.Equal(t, 1, result.WinnersDetermined)
	assert.Equal(t, 0, result.InsufficientSample)
	assert.True(t, result.TestingCompleted)
}

func TestEvaluate_AmostraInsuficienteNaoGeraVeredito(t *testing.T) {
	tests := []struct {
		name string
		perf *domain.AdPerformance
	}{
		{
			name: "gasto abaixo do mínimo",
			perf: perf("AD0001", "10.00", 5000, 100),
		},
		{
			name: "impressões abaixo do mínimo",
			perf: perf("AD0001", "50.00", 500, 100),
		},
		{
			name: "sem resultados para dividir",
			perf: perf("AD0001", "50.00", 5000, 0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service, deps := newTestService(t, ctrl)
			ctx := context.Background()

			expectLease(deps, "CP0001")
			deps.lifecycle.EXPECT().CurrentStage(ctx, "CP0001").Return(domain.StageTesting, nil)
			deps.adCampaignRepo.EXPECT().GetByCampaignID(ctx, "CP0001").Return(&domain.AdCampaign{ID: "AC0001", CampaignID: "CP0001"}, nil)
			deps.adSetRepo.EXPECT().ListByAdCampaignID(ctx, "AC0001").Return([]*domain.AdSet{
				{ID: "AS0001", AdCampaignID: "AC0001", CreatedAt: time.Now().UTC()},
			}, nil)
			deps.adRepo.EXPECT().ListByAdSetID(ctx, "AS0001").Return([]*domain.Ad{
				{ID: "AD0001", AdSetID: "AS0001"},
			}, nil)
			deps.statRepo.EXPECT().
				AggregateByAdIDs(ctx, []string{"AD0001"}, gomock.Any(), gomock.Any()).
				Return(map[string]*domain.AdPerformance{"AD0001": tt.perf}, nil)

			// Nenhum veredito, nenhuma conclusão: desfecho válido
			result, err := service.Evaluate(ctx, "CP0001")

			assert.NoError(t, err)
			assert.Equal(t, 1, result.InsufficientSample)
			assert.Equal(t, 0, result.WinnersDetermined)
			assert.False(t, result.TestingCompleted)
		})
	}
}

func TestEvaluate_AdSemAmostraNaoBloqueiaOVeredito(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, deps := newTestService(t, ctrl)
	ctx := context.Background()

	expectLease(deps, "CP0001")
	deps.lifecycle.EXPECT().CurrentStage(ctx, "CP0001").Return(domain.StageTesting, nil)
	deps.adCampaignRepo.EXPECT().GetByCampaignID(ctx, "CP0001").Return(&domain.AdCampaign{ID: "AC0001", CampaignID: "CP0001"}, nil)
	deps.adSetRepo.EXPECT().ListByAdCampaignID(ctx, "AC0001").Return([]*domain.AdSet{
		{ID: "AS0001", AdCampaignID: "AC0001", CreatedAt: time.Now().UTC()},
	}, nil)
	deps.adRepo.EXPECT().ListByAdSetID(ctx, "AS0001").Return([]*domain.Ad{
		{ID: "AD0001", AdSetID: "AS0001"},
		{ID: "AD0002", AdSetID: "AS0001"},
	}, nil)

	// AD0002 nunca recebeu tráfego: fica fora do ranking com veredito nulo
	// enquanto AD0001 vence sozinho
	deps.statRepo.EXPECT().
		AggregateByAdIDs(ctx, []string{"AD0001", "AD0002"}, gomock.Any(), gomock.Any()).
		Return(map[string]*domain.AdPerformance{
			"AD0001": perf("AD0001", "500.00", 50000, 100),
		}, nil)

	deps.adRepo.EXPECT().SetPassedTest(ctx, "AD0001", gomock.Eq(boolPtr(true))).Return(nil)

	deps.lifecycle.EXPECT().CompleteTesting(ctx, "CP0001", "winner-selector").Return(&domain.CampaignUpdateRecord{}, nil)

	result, err := service.Evaluate(ctx, "CP0001")

	assert.NoError(t, err)
	assert.Equal(t, 1, result.WinnersDetermined)
	assert.Equal(t, 0, result.InsufficientSample)
	assert.True(t, result.TestingCompleted)
}

func TestEvaluate_JanelaEsgotadaConcluiSemVeredito(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, deps := newTestService(t, ctrl)
	ctx := context.Background()

	expectLease(deps, "CP0001")
	deps.lifecycle.EXPECT().CurrentStage(ctx, "CP0001").Return(domain.StageTesting, nil)
	deps.adCampaignRepo.EXPECT().GetByCampaignID(ctx, "CP0001").Return(&domain.AdCampaign{ID: "AC0001", CampaignID: "CP0001"}, nil)

	// Ad set criado há 60 dias, bem além da janela de 7
	deps.adSetRepo.EXPECT().ListByAdCampaignID(ctx, "AC0001").Return([]*domain.AdSet{
		{ID: "AS0001", AdCampaignID: "AC0001", CreatedAt: time.Now().UTC().Add(-60 * 24 * time.Hour)},
	}, nil)
	deps.adRepo.EXPECT().ListByAdSetID(ctx, "AS0001").Return([]*domain.Ad{
		{ID: "AD0001", AdSetID: "AS0001"},
		{ID: "AD0002", AdSetID: "AS0001"},
	}, nil)

	// Nenhum ad atinge a amostra mínima dentro da janela
	deps.statRepo.EXPECT().
		AggregateByAdIDs(ctx, []string{"AD0001", "AD0002"}, gomock.Any(), gomock.Any()).
		Return(map[string]*domain.AdPerformance{
			"AD0001": perf("AD0001", "5.00", 120, 1),
		}, nil)

	// Janela esgotada conta como desfecho: a campanha conclui o teste sem
	// nenhum SetPassedTest
	deps.lifecycle.EXPECT().CompleteTesting(ctx, "CP0001", "winner-selector").Return(&domain.CampaignUpdateRecord{}, nil)

	result, err := service.Evaluate(ctx, "CP0001")

	assert.NoError(t, err)
	assert.Equal(t, 0, result.WinnersDetermined)
	assert.Equal(t, 1, result.WindowExhausted)
	assert.Equal(t, 0, result.InsufficientSample)
	assert.True(t, result.TestingCompleted)
}

func TestEvaluate_EmpateResolvePeloMaisAntigo(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, deps := newTestService(t, ctrl)
	ctx := context.Background()

	older := time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)
	newer := time.Date(2026, 1, 12, 0, 0, 0, 0, time.UTC)

	expectLease(deps, "CP0001")
	deps.lifecycle.EXPECT().CurrentStage(ctx, "CP0001").Return(domain.StageTesting, nil)
	deps.adCampaignRepo.EXPECT().GetByCampaignID(ctx, "CP0001").Return(&domain.AdCampaign{ID: "AC0001", CampaignID: "CP0001"}, nil)
	deps.adSetRepo.EXPECT().ListByAdCampaignID(ctx, "AC0001").Return([]*domain.AdSet{
		{ID: "AS0001", AdCampaignID: "AC0001", CreatedAt: time.Now().UTC()},
	}, nil)
	deps.adRepo.EXPECT().ListByAdSetID(ctx, "AS0001").Return([]*domain.Ad{
		{ID: "AD0002", AdSetID: "AS0001", CreatedAt: newer},
		{ID: "AD0001", AdSetID: "AS0001", CreatedAt: older},
	}, nil)

	// Mesmo custo por resultado nos dois ads
	deps.statRepo.EXPECT().
		AggregateByAdIDs(ctx, gomock.Any(), gomock.Any(), gomock.Any()).
		Return(map[string]*domain.AdPerformance{
			"AD0001": perf("AD0001", "50.00", 5000, 100),
			"AD0002": perf("AD0002", "50.00", 5000, 100),
		}, nil)

	deps.adRepo.EXPECT().SetPassedTest(ctx, "AD0001", gomock.Eq(boolPtr(true))).Return(nil)
	deps.adRepo.EXPECT().SetPassedTest(ctx, "AD0002", gomock.Eq(boolPtr(false))).Return(nil)
	deps.lifecycle.EXPECT().CompleteTesting(ctx, "CP0001", "winner-selector").Return(&domain.CampaignUpdateRecord{}, nil)

	result, err := service.Evaluate(ctx, "CP0001")

	assert.NoError(t, err)
	assert.Equal(t, 1, result.WinnersDetermined)
}

func TestEvaluate_AdSetsJaDeterminadosConcluemSemNovoVeredito(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, deps := newTestService(t, ctrl)
	ctx := context.Background()

	expectLease(deps, "CP0001")
	deps.lifecycle.EXPECT().CurrentStage(ctx, "CP0001").Return(domain.StageTesting, nil)
	deps.adCampaignRepo.EXPECT().GetByCampaignID(ctx, "CP0001").Return(&domain.AdCampaign{ID: "AC0001", CampaignID: "CP0001"}, nil)
	deps.adSetRepo.EXPECT().ListByAdCampaignID(ctx, "AC0001").Return([]*domain.AdSet{
		{ID: "AS0001", AdCampaignID: "AC0001", CreatedAt: time.Now().UTC()},
	}, nil)
	deps.adRepo.EXPECT().ListByAdSetID(ctx, "AS0001").Return([]*domain.Ad{
		{ID: "AD0001", AdSetID: "AS0001", PassedTest: boolPtr(true)},
	}, nil)
	deps.statRepo.EXPECT().
		AggregateByAdIDs(ctx, gomock.Any(), gomock.Any(), gomock.Any()).
		Return(map[string]*domain.AdPerformance{}, nil)

	deps.lifecycle.EXPECT().CompleteTesting(ctx, "CP0001", "winner-selector").Return(&domain.CampaignUpdateRecord{}, nil)

	result, err := service.Evaluate(ctx, "CP0001")

	assert.NoError(t, err)
	assert.Equal(t, 0, result.WinnersDetermined)
	assert.True(t, result.TestingCompleted)
}

func TestEvaluate_LeaseOcupadoAbortaSemAvaliar(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, deps := newTestService(t, ctrl)
	ctx := context.Background()

	deps.locker.EXPECT().Acquire(gomock.Any(), "evaluation:CP0001", gomock.Any()).Return(false, nil)

	result, err := service.Evaluate(ctx, "CP0001")

	assert.Nil(t, result)
	assert.ErrorIs(t, err, winnerselecting.ErrEvaluationInProgress)
}

func TestEvaluate_CampanhaForaDeTesting(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, deps := newTestService(t, ctrl)
	ctx := context.Background()

	expectLease(deps, "CP0001")
	deps.lifecycle.EXPECT().CurrentStage(ctx, "CP0001").Return(domain.StageRunning, nil)

	result, err := service.Evaluate(ctx, "CP0001")

	assert.Nil(t, result)
	assert.ErrorIs(t, err, winnerselecting.ErrNotInTesting)
}
