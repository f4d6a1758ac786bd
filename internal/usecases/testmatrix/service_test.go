package testmatrix

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/campaign-orchestrator-api/infrastructure/repository/mocks"
	"github.com/vfg2006/campaign-orchestrator-api/internal/config"
	"github.com/vfg2006/campaign-orchestrator-api/internal/domain"
	"github.com/vfg2006/campaign-orchestrator-api/internal/usecases/budgeting"
	tmmocks "github.com/vfg2006/campaign-orchestrator-api/internal/usecases/testmatrix/mocks"
	"go.uber.org/mock/gomock"
)

func newTestService(ctrl *gomock.Controller, maxFanout int) (*Service, *mocks.MockAdCampaignRepository, *mocks.MockAdSetRepository, *mocks.MockAdRepository, *tmmocks.MockBudgetValidator) {
	adCampaignRepo := mocks.NewMockAdCampaignRepository(ctrl)
	adSetRepo := mocks.NewMockAdSetRepository(ctrl)
	adRepo := mocks.NewMockAdRepository(ctrl)
	budgets := tmmocks.NewMockBudgetValidator(ctrl)

	service := NewService(adCampaignRepo, adSetRepo, adRepo, budgets, &config.Config{
		TestMatrix: config.TestMatrix{MaxFanout: maxFanout},
	})

	return service, adCampaignRepo, adSetRepo, adRepo, budgets
}

func stringPtr(s string) *string {
	return &s
}

func splitTestAdCampaign() *domain.AdCampaign {
	return &domain.AdCampaign{
		ID:                      "AC0001",
		CampaignID:              "CP0001",
		SplitTestDemos:          true,
		SplitTestGeoGroups:      true,
		SplitTestInterestGroups: false,
		Demos: []domain.Demo{
			{ID: "d1", Name: "18-24 todos"},
			{ID: "d2", Name: "25-34 todos"},
			{ID: "d3", Name: "35-44 todos"},
		},
		GeoGroups: []domain.GeoGroup{
			{ID: "g1", Name: "Tier 1"},
			{ID: "g2", Name: "LATAM"},
		},
		Headlines:  []domain.Headline{{ID: "h1", Text: "Ouça agora"}},
		VidRenders: []domain.VidRender{{ID: "v1", Status: domain.RenderStatusReady}},
		LinkURL:    "https://example.com/track",
		CreatedAt:  time.Now().UTC(),
	}
}

func TestReconcile_MatrizDeSplitTestGeraProdutoDasDimensoes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, adCampaignRepo, adSetRepo, adRepo, budgets := newTestService(ctrl, 50)
	ctx := context.Background()

	adCampaign := splitTestAdCampaign()

	adCampaignRepo.EXPECT().GetByID(ctx, "AC0001").Return(adCampaign, nil)
	budgets.EXPECT().ValidateLifetimeBudgets(adCampaign).Return(nil)
	adSetRepo.EXPECT().ListByAdCampaignID(ctx, "AC0001").Return([]*domain.AdSet{}, nil)
	adRepo.EXPECT().ListCreativesByAdCampaignID(ctx, "AC0001").Return([]*domain.AdCreative{}, nil)

	// 3 demos x 2 geo groups x 1 ramo de interesse x 1 criativo = 6 ad sets
	createdKeys := make(map[string]int)
	adSetRepo.EXPECT().
		CreateWithAudience(ctx, gomock.Any(), gomock.Any()).
		Do(func(_ context.Context, adSet *domain.AdSet, audience *domain.Audience) {
			createdKeys[adSet.MatrixKey]++
			assert.Equal(t, "AC0001", adSet.AdCampaignID)
			assert.Equal(t, adSet.AudienceID, audience.ID)
			assert.Equal(t, domain.AdStatusPending, adSet.MetaStatus)
			assert.Equal(t, domain.AdStatusPending, adSet.TikTokStatus)
		}).
		Return(nil).
		Times(6)

	// O par headline x render é único, então um só criativo é criado e reusado
	adRepo.EXPECT().
		CreateCreative(ctx, gomock.Any()).
		Do(func(_ context.Context, creative *domain.AdCreative) {
			assert.Equal(t, "h1", creative.HeadlineID)
			assert.NotNil(t, creative.VidRenderID)
			assert.Equal(t, "v1", *creative.VidRenderID)
		}).
		Return(nil).
		Times(1)

	adRepo.EXPECT().Create(ctx, gomock.Any()).Return(nil).Times(6)
	adSetRepo.EXPECT().ArchiveByIDs(ctx, gomock.Len(0)).Return(nil)

	result, err := service.Reconcile(ctx, "AC0001")

	assert.NoError(t, err)
	assert.Equal(t, 6, result.Desired)
	assert.Len(t, result.CreatedKeys, 6)
	assert.Empty(t, result.ArchivedKeys)
	assert.Equal(t, 0, result.Unchanged)

	// Cada combinação produz uma chave distinta
	assert.Len(t, createdKeys, 6)
	for key, count := range createdKeys {
		assert.Equal(t, 1, count, "chave duplicada: %s", key)
	}
}

func TestReconcile_SegundaChamadaSemMudancaNaoEscreve(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, adCampaignRepo, adSetRepo, adRepo, budgets := newTestService(ctrl, 50)
	ctx := context.Background()

	// Sem split-test: todas as dimensões colapsam para um único ramo
	adCampaign := &domain.AdCampaign{
		ID:         "AC0002",
		CampaignID: "CP0002",
		Demos:      []domain.Demo{{ID: "d1"}},
		GeoGroups:  []domain.GeoGroup{{ID: "g1"}},
		Headlines:  []domain.Headline{{ID: "h1"}},
		VidRenders: []domain.VidRender{{ID: "v1", Status: domain.RenderStatusReady}},
	}

	existing := []*domain.AdSet{
		{ID: "AS0001", AdCampaignID: "AC0002", MatrixKey: "d1|g1|h1|v1"},
	}
	creatives := []*domain.AdCreative{
		{ID: "CR0001", AdCampaignID: "AC0002", HeadlineID: "h1", CreativeKey: "h1|v1"},
	}

	adCampaignRepo.EXPECT().GetByID(ctx, "AC0002").Return(adCampaign, nil)
	budgets.EXPECT().ValidateLifetimeBudgets(adCampaign).Return(nil)
	adSetRepo.EXPECT().ListByAdCampaignID(ctx, "AC0002").Return(existing, nil)
	adRepo.EXPECT().ListCreativesByAdCampaignID(ctx, "AC0002").Return(creatives, nil)
	adSetRepo.EXPECT().ArchiveByIDs(ctx, gomock.Len(0)).Return(nil)

	result, err := service.Reconcile(ctx, "AC0002")

	assert.NoError(t, err)
	assert.Equal(t, 1, result.Desired)
	assert.Empty(t, result.CreatedKeys)
	assert.Empty(t, result.ArchivedKeys)
	assert.Equal(t, 1, result.Unchanged)
}

func TestReconcile_ChaveObsoletaEhArquivadaNuncaRemovida(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, adCampaignRepo, adSetRepo, adRepo, budgets := newTestService(ctrl, 50)
	ctx := context.Background()

	adCampaign := &domain.AdCampaign{
		ID:         "AC0003",
		CampaignID: "CP0003",
		Demos:      []domain.Demo{{ID: "d1"}},
		GeoGroups:  []domain.GeoGroup{{ID: "g1"}},
		Headlines:  []domain.Headline{{ID: "h1"}},
		VidRenders: []domain.VidRender{{ID: "v1", Status: domain.RenderStatusReady}},
	}

	existing := []*domain.AdSet{
		{ID: "AS0001", AdCampaignID: "AC0003", MatrixKey: "d1|g1|h1|v1"},
		// Sobrou de uma configuração anterior com outro demo
		{ID: "AS0002", AdCampaignID: "AC0003", MatrixKey: "d9|g1|h1|v1"},
		// Já arquivado: fica fora do diff
		{ID: "AS0003", AdCampaignID: "AC0003", MatrixKey: "d8|g1|h1|v1", Archived: true},
	}
	creatives := []*domain.AdCreative{
		{ID: "CR0001", AdCampaignID: "AC0003", HeadlineID: "h1", CreativeKey: "h1|v1"},
	}

	adCampaignRepo.EXPECT().GetByID(ctx, "AC0003").Return(adCampaign, nil)
	budgets.EXPECT().ValidateLifetimeBudgets(adCampaign).Return(nil)
	adSetRepo.EXPECT().ListByAdCampaignID(ctx, "AC0003").Return(existing, nil)
	adRepo.EXPECT().ListCreativesByAdCampaignID(ctx, "AC0003").Return(creatives, nil)
	adSetRepo.EXPECT().ArchiveByIDs(ctx, []string{"AS0002"}).Return(nil)

	result, err := service.Reconcile(ctx, "AC0003")

	assert.NoError(t, err)
	assert.Equal(t, []string{"d9|g1|h1|v1"}, result.ArchivedKeys)
	assert.Equal(t, 1, result.Unchanged)
}

func TestReconcile_LinhaDeCloneFicaForaDoDiff(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, adCampaignRepo, adSetRepo, adRepo, budgets := newTestService(ctrl, 50)
	ctx := context.Background()

	adCampaign := &domain.AdCampaign{
		ID:         "AC0005",
		CampaignID: "CP0005",
		Demos:      []domain.Demo{{ID: "d1"}},
		GeoGroups:  []domain.GeoGroup{{ID: "g1"}},
		Headlines:  []domain.Headline{{ID: "h1"}},
		VidRenders: []domain.VidRender{{ID: "v1", Status: domain.RenderStatusReady}},
	}

	// A matriz já está materializada e uma cópia do vencedor vive ao lado,
	// com a chave marcada pela clonagem
	existing := []*domain.AdSet{
		{ID: "AS0001", AdCampaignID: "AC0005", MatrixKey: "d1|g1|h1|v1"},
		{ID: "AS0002", AdCampaignID: "AC0005", MatrixKey: "d1|g1|h1|v1~AS0002", MetaExternalID: stringPtr("meta-999")},
	}
	creatives := []*domain.AdCreative{
		{ID: "CR0001", AdCampaignID: "AC0005", HeadlineID: "h1", CreativeKey: "h1|v1"},
	}

	adCampaignRepo.EXPECT().GetByID(ctx, "AC0005").Return(adCampaign, nil)
	budgets.EXPECT().ValidateLifetimeBudgets(adCampaign).Return(nil)
	adSetRepo.EXPECT().ListByAdCampaignID(ctx, "AC0005").Return(existing, nil)
	adRepo.EXPECT().ListCreativesByAdCampaignID(ctx, "AC0005").Return(creatives, nil)

	// A cópia publicada não é arquivada e a passada segue sem escrita
	adSetRepo.EXPECT().ArchiveByIDs(ctx, gomock.Len(0)).Return(nil)

	result, err := service.Reconcile(ctx, "AC0005")

	assert.NoError(t, err)
	assert.Empty(t, result.CreatedKeys)
	assert.Empty(t, result.ArchivedKeys)
	assert.Equal(t, 1, result.Unchanged)
}

func TestReconcile_OrcamentoInconsistenteBarraAReconciliacao(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, adCampaignRepo, _, _, budgets := newTestService(ctrl, 50)
	ctx := context.Background()

	adCampaign := splitTestAdCampaign()

	adCampaignRepo.EXPECT().GetByID(ctx, "AC0001").Return(adCampaign, nil)
	budgets.EXPECT().ValidateLifetimeBudgets(adCampaign).Return(budgeting.ErrBudgetInvariantViolation)

	result, err := service.Reconcile(ctx, "AC0001")

	assert.Nil(t, result)
	assert.ErrorIs(t, err, budgeting.ErrBudgetInvariantViolation)
}

func TestReconcile_EstouroDoTetoNaoFazNenhumaEscrita(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, adCampaignRepo, _, _, budgets := newTestService(ctrl, 5)
	ctx := context.Background()

	// 6 combinações desejadas contra teto de 5
	adCampaignRepo.EXPECT().GetByID(ctx, "AC0001").Return(splitTestAdCampaign(), nil)
	budgets.EXPECT().ValidateLifetimeBudgets(gomock.Any()).Return(nil)

	result, err := service.Reconcile(ctx, "AC0001")

	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrTooManyCombinations)

	var fanoutErr *FanoutError
	assert.ErrorAs(t, err, &fanoutErr)
	assert.Equal(t, 6, fanoutErr.Desired)
	assert.Equal(t, 5, fanoutErr.MaxFanout)
}

func TestReconcile_DimensaoObrigatoriaSemCandidatos(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name       string
		adCampaign *domain.AdCampaign
	}{
		{
			name: "sem demos configurados",
			adCampaign: &domain.AdCampaign{
				ID:        "AC0004",
				Headlines: []domain.Headline{{ID: "h1"}},
				VidRenders: []domain.VidRender{
					{ID: "v1", Status: domain.RenderStatusReady},
				},
			},
		},
		{
			name: "sem headlines configuradas",
			adCampaign: &domain.AdCampaign{
				ID:    "AC0004",
				Demos: []domain.Demo{{ID: "d1"}},
				VidRenders: []domain.VidRender{
					{ID: "v1", Status: domain.RenderStatusReady},
				},
			},
		},
		{
			name: "sem nenhum render pronto",
			adCampaign: &domain.AdCampaign{
				ID:        "AC0004",
				Demos:     []domain.Demo{{ID: "d1"}},
				Headlines: []domain.Headline{{ID: "h1"}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, adCampaignRepo, _, _, budgets := newTestService(ctrl, 50)
			ctx := context.Background()

			adCampaignRepo.EXPECT().GetByID(ctx, "AC0004").Return(tt.adCampaign, nil)
			budgets.EXPECT().ValidateLifetimeBudgets(tt.adCampaign).Return(nil)

			result, err := service.Reconcile(ctx, "AC0004")

			assert.Nil(t, result)
			assert.ErrorIs(t, err, ErrMissingCandidates)
		})
	}
}

func TestReconcile_AdCampaignInexistente(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, adCampaignRepo, _, _, _ := newTestService(ctrl, 50)
	ctx := context.Background()

	adCampaignRepo.EXPECT().GetByID(ctx, "AC9999").Return(nil, nil)

	result, err := service.Reconcile(ctx, "AC9999")

	assert.Nil(t, result)
	assert.True(t, errors.Is(err, ErrAdCampaignNotFound))
}

func TestMatrixKey_Deterministica(t *testing.T) {
	targeting := targetingBranch{
		demoID:           "d2",
		geoGroupIDs:      []string{"g9", "g1"},
		interestGroupIDs: []string{"i3"},
	}
	creative := creativeBranch{
		headlineID: "h1",
		render:     renderRef{kind: renderKindVid, id: "v5"},
	}

	// Os ids são ordenados antes da concatenação
	assert.Equal(t, "d2|g1|g9|h1|i3|v5", matrixKey(targeting, creative))
	assert.Equal(t, matrixKey(targeting, creative), matrixKey(targeting, creative))
}
