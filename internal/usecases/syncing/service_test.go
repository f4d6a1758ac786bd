package syncing

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/campaign-orchestrator-api/infrastructure/integrator/adplatform"
	adplatformmocks "github.com/vfg2006/campaign-orchestrator-api/infrastructure/integrator/adplatform/mocks"
	"github.com/vfg2006/campaign-orchestrator-api/infrastructure/repository/mocks"
	"github.com/vfg2006/campaign-orchestrator-api/internal/config"
	"github.com/vfg2006/campaign-orchestrator-api/internal/domain"
	"github.com/vfg2006/campaign-orchestrator-api/internal/usecases/budgeting"
	syncmocks "github.com/vfg2006/campaign-orchestrator-api/internal/usecases/syncing/mocks"
	"github.com/vfg2006/campaign-orchestrator-api/pkg/metrics"
	"go.uber.org/mock/gomock"
)

type testDeps struct {
	adSetRepo      *mocks.MockAdSetRepository
	adCampaignRepo *mocks.MockAdCampaignRepository
	syncRepo       *mocks.MockSyncRecordRepository
	budgets        *syncmocks.MockBudgetValidator
	metaClient     *adplatformmocks.MockClient
	tiktokClient   *adplatformmocks.MockClient
}

func newTestService(ctrl *gomock.Controller) (*Service, *testDeps) {
	deps := &testDeps{
		adSetRepo:      mocks.NewMockAdSetRepository(ctrl),
		adCampaignRepo: mocks.NewMockAdCampaignRepository(ctrl),
		syncRepo:       mocks.NewMockSyncRecordRepository(ctrl),
		budgets:        syncmocks.NewMockBudgetValidator(ctrl),
		metaClient:     adplatformmocks.NewMockClient(ctrl),
		tiktokClient:   adplatformmocks.NewMockClient(ctrl),
	}

	deps.metaClient.EXPECT().Platform().Return(domain.PlatformMeta).AnyTimes()
	deps.tiktokClient.EXPECT().Platform().Return(domain.PlatformTikTok).AnyTimes()

	cfg := &config.Config{
		PlatformSync: config.PlatformSync{
			MaxConcurrentDispatches: 2,
			MaxAttempts:             2,
			BaseBackoffMillis:       1,
			RequestTimeoutSeconds:   1,
		},
	}

	service := NewService(
		deps.adSetRepo,
		deps.adCampaignRepo,
		deps.syncRepo,
		deps.budgets,
		[]adplatform.Client{deps.metaClient, deps.tiktokClient},
		metrics.NewMetrics(),
		cfg,
	)

	return service, deps
}

func boolPtr(b bool) *bool {
	return &b
}

func stringPtr(s string) *string {
	return &s
}

func pendingAdSet() *domain.AdSet {
	return &domain.AdSet{
		ID:           "AS0001",
		AdCampaignID: "AC0001",
		AudienceID:   "AU0001",
		MatrixKey:    "d1|g1|h1|v1",
		MetaStatus:   domain.AdStatusPending,
		TikTokStatus: domain.AdStatusPending,
		FBFeed:       true,
		IGFeed:       true,
		IGStories:    true,
		TikTokFeed:   true,
		CreatedAt:    time.Now().UTC(),
	}
}

func TestRolloutAdCampaign_PublicaNasDuasPlataformas(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, deps := newTestService(ctrl)
	ctx := context.Background()

	adCampaign := &domain.AdCampaign{ID: "AC0001", CampaignID: "CP0001", LinkURL: "https://example.com"}
	adSet := pendingAdSet()

	deps.adCampaignRepo.EXPECT().GetByID(ctx, "AC0001").Return(adCampaign, nil).Times(2)
	deps.budgets.EXPECT().ValidateLifetimeBudgets(adCampaign).Return(nil)
	deps.adSetRepo.EXPECT().ListByAdCampaignID(ctx, "AC0001").Return([]*domain.AdSet{adSet}, nil)

	var recordID string
	deps.syncRepo.EXPECT().
		CreateUpdateRecord(ctx, gomock.Any()).
		Do(func(_ context.Context, record *domain.AdSetUpdateRecord) {
			recordID = record.ID
			assert.Equal(t, domain.SyncOpCreate, record.OpType)
			assert.True(t, record.Meta)
			assert.True(t, record.TikTok)
			assert.Equal(t, domain.SyncStatusPending, record.Status)
		}).
		Return(nil)

	deps.adSetRepo.EXPECT().GetByID(ctx, "AS0001").Return(adSet, nil)

	deps.metaClient.EXPECT().
		CreateAdSet(gomock.Any(), gomock.Any()).
		Return("meta-123", nil)
	deps.tiktokClient.EXPECT().
		CreateAdSet(gomock.Any(), gomock.Any()).
		Return("tt-456", nil)

	deps.adSetRepo.EXPECT().SetPlatformExternalID(gomock.Any(), "AS0001", domain.PlatformMeta, "meta-123").Return(nil)
	deps.adSetRepo.EXPECT().SetPlatformExternalID(gomock.Any(), "AS0001", domain.PlatformTikTok, "tt-456").Return(nil)
	deps.adSetRepo.EXPECT().SetPlatformStatus(gomock.Any(), "AS0001", domain.PlatformMeta, domain.AdStatusActive).Return(nil)
	deps.adSetRepo.EXPECT().SetPlatformStatus(gomock.Any(), "AS0001", domain.PlatformTikTok, domain.AdStatusActive).Return(nil)
	deps.syncRepo.EXPECT().MarkUpdatePlatformOutcome(gomock.Any(), gomock.Any(), domain.PlatformMeta, true).Return(nil)
	deps.syncRepo.EXPECT().MarkUpdatePlatformOutcome(gomock.Any(), gomock.Any(), domain.PlatformTikTok, true).Return(nil)

	deps.syncRepo.EXPECT().
		GetUpdateRecord(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, id string) (*domain.AdSetUpdateRecord, error) {
			assert.Equal(t, recordID, id)
			return &domain.AdSetUpdateRecord{
				ID:      id,
				AdSetID: "AS0001",
				OpType:  domain.SyncOpCreate,
				Status:  domain.SyncStatusPending,
				PlatformCompletion: domain.PlatformCompletion{
					Meta: true, MetaComplete: boolPtr(true), MetaSuccess: boolPtr(true),
					TikTok: true, TikTokComplete: boolPtr(true), TikTokSuccess: boolPtr(true),
				},
			}, nil
		})
	deps.syncRepo.EXPECT().SettleUpdateRecord(ctx, gomock.Any(), domain.SyncStatusComplete).Return(nil)

	err := service.RolloutAdCampaign(ctx, "AC0001")

	assert.NoError(t, err)
}

func TestRolloutAdCampaign_FalhaParcialLiquidaComoFailed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, deps := newTestService(ctrl)
	ctx := context.Background()

	adCampaign := &domain.AdCampaign{ID: "AC0001", CampaignID: "CP0001"}
	adSet := pendingAdSet()

	deps.adCampaignRepo.EXPECT().GetByID(ctx, "AC0001").Return(adCampaign, nil).Times(2)
	deps.budgets.EXPECT().ValidateLifetimeBudgets(adCampaign).Return(nil)
	deps.adSetRepo.EXPECT().ListByAdCampaignID(ctx, "AC0001").Return([]*domain.AdSet{adSet}, nil)
	deps.syncRepo.EXPECT().CreateUpdateRecord(ctx, gomock.Any()).Return(nil)
	deps.adSetRepo.EXPECT().GetByID(ctx, "AS0001").Return(adSet, nil)

	// Meta publica; TikTok falha nas duas tentativas
	deps.metaClient.EXPECT().CreateAdSet(gomock.Any(), gomock.Any()).Return("meta-123", nil)
	deps.tiktokClient.EXPECT().CreateAdSet(gomock.Any(), gomock.Any()).Return("", assert.AnError).Times(2)

	deps.adSetRepo.EXPECT().SetPlatformExternalID(gomock.Any(), "AS0001", domain.PlatformMeta, "meta-123").Return(nil)
	deps.adSetRepo.EXPECT().SetPlatformStatus(gomock.Any(), "AS0001", domain.PlatformMeta, domain.AdStatusActive).Return(nil)
	deps.adSetRepo.EXPECT().SetPlatformStatus(gomock.Any(), "AS0001", domain.PlatformTikTok, domain.AdStatusError).Return(nil)
	deps.syncRepo.EXPECT().MarkUpdatePlatformOutcome(gomock.Any(), gomock.Any(), domain.PlatformMeta, true).Return(nil)
	deps.syncRepo.EXPECT().MarkUpdatePlatformOutcome(gomock.Any(), gomock.Any(), domain.PlatformTikTok, false).Return(nil)

	// As duas plataformas resolveram a flag, então o registro liquida
	deps.syncRepo.EXPECT().
		GetUpdateRecord(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, id string) (*domain.AdSetUpdateRecord, error) {
			return &domain.AdSetUpdateRecord{
				ID:      id,
				AdSetID: "AS0001",
				OpType:  domain.SyncOpCreate,
				Status:  domain.SyncStatusPending,
				PlatformCompletion: domain.PlatformCompletion{
					Meta: true, MetaComplete: boolPtr(true), MetaSuccess: boolPtr(true),
					TikTok: true, TikTokComplete: boolPtr(true), TikTokSuccess: boolPtr(false),
				},
			}, nil
		})
	deps.syncRepo.EXPECT().SettleUpdateRecord(ctx, gomock.Any(), domain.SyncStatusFailed).Return(nil)

	err := service.RolloutAdCampaign(ctx, "AC0001")

	assert.ErrorIs(t, err, ErrSyncIncomplete)

	var incomplete *IncompleteError
	assert.ErrorAs(t, err, &incomplete)
	assert.Equal(t, []domain.Platform{domain.PlatformTikTok}, incomplete.Failed)
}

func TestRolloutAdCampaign_OrcamentoInconsistenteBarraORollout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, deps := newTestService(ctrl)
	ctx := context.Background()

	adCampaign := &domain.AdCampaign{ID: "AC0001", CampaignID: "CP0001"}

	// Orçamentos inconsistentes barram o rollout antes de qualquer registro
	// de sincronização ou chamada de plataforma
	deps.adCampaignRepo.EXPECT().GetByID(ctx, "AC0001").Return(adCampaign, nil)
	deps.budgets.EXPECT().ValidateLifetimeBudgets(adCampaign).Return(budgeting.ErrBudgetInvariantViolation)

	err := service.RolloutAdCampaign(ctx, "AC0001")

	assert.ErrorIs(t, err, budgeting.ErrBudgetInvariantViolation)
}

func TestSettleUpdateRecord_NaoLiquidaComPlataformaPendente(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, deps := newTestService(ctrl)
	ctx := context.Background()

	// TikTok é alvo mas ainda não resolveu: nenhum status terminal é gravado
	deps.syncRepo.EXPECT().
		GetUpdateRecord(ctx, "SR0001").
		Return(&domain.AdSetUpdateRecord{
			ID:      "SR0001",
			AdSetID: "AS0001",
			OpType:  domain.SyncOpCreate,
			Status:  domain.SyncStatusPending,
			PlatformCompletion: domain.PlatformCompletion{
				Meta: true, MetaComplete: boolPtr(true), MetaSuccess: boolPtr(true),
				TikTok: true,
			},
		}, nil)

	err := service.settleUpdateRecord(ctx, "SR0001")

	assert.NoError(t, err)
}

func TestRetryUnsettled_PulaPlataformaJaConcluida(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, deps := newTestService(ctrl)
	ctx := context.Background()

	adCampaign := &domain.AdCampaign{ID: "AC0001", CampaignID: "CP0001"}
	adSet := pendingAdSet()

	// Meta já concluiu em uma execução anterior; só o TikTok é redespachado
	record := &domain.AdSetUpdateRecord{
		ID:      "SR0001",
		AdSetID: "AS0001",
		OpType:  domain.SyncOpCreate,
		Status:  domain.SyncStatusPending,
		PlatformCompletion: domain.PlatformCompletion{
			Meta: true, MetaComplete: boolPtr(true), MetaSuccess: boolPtr(true),
			TikTok: true,
		},
	}

	deps.syncRepo.EXPECT().ListUnsettledUpdateRecords(ctx).Return([]*domain.AdSetUpdateRecord{record}, nil)
	deps.syncRepo.EXPECT().ListUnsettledCloneRecords(ctx).Return([]*domain.AdSetCloneRecord{}, nil)

	deps.adSetRepo.EXPECT().GetByID(ctx, "AS0001").Return(adSet, nil)
	deps.adCampaignRepo.EXPECT().GetByID(ctx, "AC0001").Return(adCampaign, nil)

	deps.tiktokClient.EXPECT().CreateAdSet(gomock.Any(), gomock.Any()).Return("tt-456", nil)
	deps.adSetRepo.EXPECT().SetPlatformExternalID(gomock.Any(), "AS0001", domain.PlatformTikTok, "tt-456").Return(nil)
	deps.adSetRepo.EXPECT().SetPlatformStatus(gomock.Any(), "AS0001", domain.PlatformTikTok, domain.AdStatusActive).Return(nil)
	deps.syncRepo.EXPECT().MarkUpdatePlatformOutcome(gomock.Any(), "SR0001", domain.PlatformTikTok, true).Return(nil)

	deps.syncRepo.EXPECT().
		GetUpdateRecord(ctx, "SR0001").
		Return(&domain.AdSetUpdateRecord{
			ID:      "SR0001",
			AdSetID: "AS0001",
			OpType:  domain.SyncOpCreate,
			Status:  domain.SyncStatusPending,
			PlatformCompletion: domain.PlatformCompletion{
				Meta: true, MetaComplete: boolPtr(true), MetaSuccess: boolPtr(true),
				TikTok: true, TikTokComplete: boolPtr(true), TikTokSuccess: boolPtr(true),
			},
		}, nil)
	deps.syncRepo.EXPECT().SettleUpdateRecord(ctx, "SR0001", domain.SyncStatusComplete).Return(nil)

	err := service.RetryUnsettled(ctx)

	assert.NoError(t, err)
}

func TestUpdateAdSet_SemIdExternoEmNenhumaPlataforma(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, deps := newTestService(ctrl)
	ctx := context.Background()

	adSet := pendingAdSet() // sem ids externos: nunca publicado

	deps.adSetRepo.EXPECT().GetByID(ctx, "AS0001").Return(adSet, nil)

	record, err := service.UpdateAdSet(ctx, "AS0001", &domain.AdSetSpec{Name: "novo nome"}, domain.Platforms)

	assert.Nil(t, record)
	assert.ErrorIs(t, err, ErrNoTargetPlatforms)
}

func TestCloneAdSet_CopiaLiquidaComSucesso(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, deps := newTestService(ctrl)
	ctx := context.Background()

	source := pendingAdSet()
	source.MetaExternalID = stringPtr("meta-123")
	source.MetaStatus = domain.AdStatusActive

	overrides := &domain.AdSetOverrides{Name: stringPtr("vencedor - running")}

	deps.adSetRepo.EXPECT().GetByID(ctx, "AS0001").Return(source, nil).Times(2)

	var cloneRowID string
	deps.adSetRepo.EXPECT().
		CloneRow(ctx, "AS0001", gomock.Any()).
		Do(func(_ context.Context, _, cloneID string) {
			cloneRowID = cloneID
		}).
		Return(nil)

	var recordID string
	deps.syncRepo.EXPECT().
		CreateCloneRecord(ctx, gomock.Any()).
		Do(func(_ context.Context, record *domain.AdSetCloneRecord) {
			recordID = record.ID
			assert.True(t, record.Meta)
			assert.False(t, record.TikTok)
			assert.NotNil(t, record.ClonedAdSetID)
		}).
		Return(nil)

	deps.metaClient.EXPECT().
		CloneAdSet(gomock.Any(), "meta-123", overrides).
		Return("meta-999", nil)

	deps.adSetRepo.EXPECT().
		SetPlatformExternalID(gomock.Any(), gomock.Any(), domain.PlatformMeta, "meta-999").
		Do(func(_ context.Context, id string, _ domain.Platform, _ string) {
			assert.Equal(t, cloneRowID, id)
		}).
		Return(nil)
	deps.adSetRepo.EXPECT().
		SetPlatformStatus(gomock.Any(), gomock.Any(), domain.PlatformMeta, domain.AdStatusActive).
		Return(nil)
	deps.syncRepo.EXPECT().MarkClonePlatformOutcome(gomock.Any(), gomock.Any(), domain.PlatformMeta, true).Return(nil)

	settled := func(_ context.Context, id string) (*domain.AdSetCloneRecord, error) {
		return &domain.AdSetCloneRecord{
			ID:            id,
			AdSetID:       "AS0001",
			Status:        domain.SyncStatusPending,
			ClonedAdSetID: &cloneRowID,
			PlatformCompletion: domain.PlatformCompletion{
				Meta: true, MetaComplete: boolPtr(true), MetaSuccess: boolPtr(true),
			},
		}, nil
	}
	deps.syncRepo.EXPECT().GetCloneRecord(ctx, gomock.Any()).DoAndReturn(settled).Times(2)
	deps.syncRepo.EXPECT().
		SettleCloneRecord(ctx, gomock.Any(), domain.SyncStatusComplete, gomock.Any()).
		Do(func(_ context.Context, id string, _ domain.SyncRecordStatus, clonedID *string) {
			assert.Equal(t, recordID, id)
			assert.Equal(t, cloneRowID, *clonedID)
		}).
		Return(nil)

	record, err := service.CloneAdSet(ctx, "AS0001", overrides, []domain.Platform{domain.PlatformMeta})

	assert.NoError(t, err)
	assert.NotNil(t, record)
	assert.Equal(t, cloneRowID, *record.ClonedAdSetID)
}

func TestCloneAdSet_FalhaArquivaCopiaOrfa(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, deps := newTestService(ctrl)
	ctx := context.Background()

	source := pendingAdSet()
	source.MetaExternalID = stringPtr("meta-123")

	deps.adSetRepo.EXPECT().GetByID(ctx, "AS0001").Return(source, nil).Times(2)
	deps.adSetRepo.EXPECT().CloneRow(ctx, "AS0001", gomock.Any()).Return(nil)
	deps.syncRepo.EXPECT().CreateCloneRecord(ctx, gomock.Any()).Return(nil)

	deps.metaClient.EXPECT().
		CloneAdSet(gomock.Any(), "meta-123", gomock.Any()).
		Return("", assert.AnError).
		Times(2)
	deps.syncRepo.EXPECT().MarkClonePlatformOutcome(gomock.Any(), gomock.Any(), domain.PlatformMeta, false).Return(nil)

	cloneRowID := "CL0001"
	deps.syncRepo.EXPECT().
		GetCloneRecord(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, id string) (*domain.AdSetCloneRecord, error) {
			return &domain.AdSetCloneRecord{
				ID:            id,
				AdSetID:       "AS0001",
				Status:        domain.SyncStatusPending,
				ClonedAdSetID: &cloneRowID,
				PlatformCompletion: domain.PlatformCompletion{
					Meta: true, MetaComplete: boolPtr(true), MetaSuccess: boolPtr(false),
				},
			}, nil
		})

	deps.adSetRepo.EXPECT().ArchiveByIDs(ctx, []string{"CL0001"}).Return(nil)
	deps.syncRepo.EXPECT().SettleCloneRecord(ctx, gomock.Any(), domain.SyncStatusFailed, gomock.Nil()).Return(nil)

	record, err := service.CloneAdSet(ctx, "AS0001", nil, []domain.Platform{domain.PlatformMeta})

	assert.NotNil(t, record)
	assert.ErrorIs(t, err, ErrSyncIncomplete)
}
