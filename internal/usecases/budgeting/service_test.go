package budgeting

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/campaign-orchestrator-api/infrastructure/repository/mocks"
	"github.com/vfg2006/campaign-orchestrator-api/internal/domain"
	"go.uber.org/mock/gomock"
)

type testDeps struct {
	campaignRepo   *mocks.MockCampaignRepository
	adCampaignRepo *mocks.MockAdCampaignRepository
	adSetRepo      *mocks.MockAdSetRepository
	adRepo         *mocks.MockAdRepository
	statRepo       *mocks.MockStatRepository
}

func newTestService(ctrl *gomock.Controller) (*Service, *testDeps) {
	deps := &testDeps{
		campaignRepo:   mocks.NewMockCampaignRepository(ctrl),
		adCampaignRepo: mocks.NewMockAdCampaignRepository(ctrl),
		adSetRepo:      mocks.NewMockAdSetRepository(ctrl),
		adRepo:         mocks.NewMockAdRepository(ctrl),
		statRepo:       mocks.NewMockStatRepository(ctrl),
	}
	service := NewService(deps.campaignRepo, deps.adCampaignRepo, deps.adSetRepo, deps.adRepo, deps.statRepo)
	return service, deps
}

func decimalPtr(value string) *decimal.Decimal {
	d := decimal.RequireFromString(value)
	return &d
}

func int64Ptr(v int64) *int64 {
	return &v
}

func TestValidateLifetimeBudgets(t *testing.T) {
	service := &Service{}

	tests := []struct {
		name       string
		adCampaign *domain.AdCampaign
		wantErr    error
	}{
		{
			name: "identidade satisfeita",
			adCampaign: &domain.AdCampaign{
				MetaLifetimeBudget:   decimalPtr("600.00"),
				TikTokLifetimeBudget: decimalPtr("400.00"),
				TotalLifetimeBudget:  decimalPtr("1000.00"),
			},
		},
		{
			name: "total difere da soma",
			adCampaign: &domain.AdCampaign{
				MetaLifetimeBudget:   decimalPtr("600.00"),
				TikTokLifetimeBudget: decimalPtr("400.00"),
				TotalLifetimeBudget:  decimalPtr("900.00"),
			},
			wantErr: ErrBudgetInvariantViolation,
		},
		{
			name: "plataforma nula não dispara a checagem",
			adCampaign: &domain.AdCampaign{
				MetaLifetimeBudget:  decimalPtr("600.00"),
				TotalLifetimeBudget: decimalPtr("900.00"),
			},
		},
		{
			name: "total ausente com as duas plataformas definidas",
			adCampaign: &domain.AdCampaign{
				MetaLifetimeBudget:   decimalPtr("600.00"),
				TikTokLifetimeBudget: decimalPtr("400.00"),
			},
			wantErr: ErrBudgetInvariantViolation,
		},
		{
			name: "escala diferente mas valor igual",
			adCampaign: &domain.AdCampaign{
				MetaLifetimeBudget:   decimalPtr("600"),
				TikTokLifetimeBudget: decimalPtr("400"),
				TotalLifetimeBudget:  decimalPtr("1000.00"),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := service.ValidateLifetimeBudgets(tt.adCampaign)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCompleteSnapshot_DerivaProjecoes(t *testing.T) {
	service := &Service{}

	record, err := service.CompleteSnapshot(&domain.BudgetSnapshot{
		DailyBudget:                      decimalPtr("50.00"),
		TriggerFraction:                  decimalPtr("0.8"),
		ProjectedCostPerMetric:           decimalPtr("0.05"),
		ProjectedMonthlyMetric:           int64Ptr(100000),
		ProjectedMonthlyMaintenanceSpend: decimalPtr("200.00"),
		ProjectedMonthlyRevenue:          decimalPtr("6000.00"),
	})

	assert.NoError(t, err)

	// adSpend = 0.05 x 100000 = 5000
	assert.True(t, record.ProjectedMonthlyAdSpend.Equal(decimal.RequireFromString("5000")))
	// total = 5000 + 200 = 5200
	assert.True(t, record.ProjectedMonthlyTotalSpend.Equal(decimal.RequireFromString("5200")))
	// net = 6000 - 5200 = 800, identidade exata
	assert.True(t, record.ProjectedMonthlyNet.Equal(decimal.RequireFromString("800")))
}

func TestCompleteSnapshot_CamposNulosNaoDerivam(t *testing.T) {
	service := &Service{}

	record, err := service.CompleteSnapshot(&domain.BudgetSnapshot{
		DailyBudget: decimalPtr("50.00"),
	})

	assert.NoError(t, err)
	assert.Nil(t, record.ProjectedMonthlyAdSpend)
	assert.Nil(t, record.ProjectedMonthlyTotalSpend)
	assert.Nil(t, record.ProjectedMonthlyNet)
}

func TestCompleteSnapshot_TriggerFractionForaDoIntervalo(t *testing.T) {
	service := &Service{}

	tests := []string{"-0.1", "1.5"}
	for _, value := range tests {
		record, err := service.CompleteSnapshot(&domain.BudgetSnapshot{
			TriggerFraction: decimalPtr(value),
		})
		assert.Nil(t, record)
		assert.ErrorIs(t, err, ErrTriggerFractionRange)
	}
}

func TestIsPacingGateOpen(t *testing.T) {
	tests := []struct {
		name     string
		spend    string
		fraction *decimal.Decimal
		want     bool
	}{
		{
			name:     "gasto abaixo do limiar mantém o gate fechado",
			spend:    "700.00",
			fraction: decimalPtr("0.8"), // limiar = 800
			want:     false,
		},
		{
			name:     "gasto no limiar abre o gate",
			spend:    "800.00",
			fraction: decimalPtr("0.8"),
			want:     true,
		},
		{
			name:     "sem trigger fraction configurado o gate fica aberto",
			spend:    "0",
			fraction: nil,
			want:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service, deps := newTestService(ctrl)
			ctx := context.Background()

			adCampaign := &domain.AdCampaign{
				ID:                  "AC0001",
				CampaignID:          "CP0001",
				TotalLifetimeBudget: decimalPtr("1000.00"),
			}

			deps.adCampaignRepo.EXPECT().GetByID(ctx, "AC0001").Return(adCampaign, nil)

			var records []*domain.CampaignUpdateRecord
			if tt.fraction != nil {
				records = []*domain.CampaignUpdateRecord{
					{ID: "R1", CampaignID: "CP0001", TriggerFraction: tt.fraction},
				}
			}
			deps.campaignRepo.EXPECT().ListUpdateRecords(ctx, "CP0001").Return(records, nil)

			if tt.fraction != nil {
				deps.adSetRepo.EXPECT().ListByAdCampaignID(ctx, "AC0001").Return([]*domain.AdSet{
					{ID: "AS0001", AdCampaignID: "AC0001"},
				}, nil)
				deps.adRepo.EXPECT().ListByAdSetID(ctx, "AS0001").Return([]*domain.Ad{
					{ID: "AD0001", AdSetID: "AS0001"},
				}, nil)
				deps.statRepo.EXPECT().
					SpendByAdIDs(ctx, []string{"AD0001"}, gomock.Any(), gomock.Any()).
					Return(decimal.RequireFromString(tt.spend), nil)
			}

			open, err := service.IsPacingGateOpen(ctx, "AC0001")

			assert.NoError(t, err)
			assert.Equal(t, tt.want, open)
		})
	}
}

func TestIsPacingGateOpen_AdCampaignInexistente(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, deps := newTestService(ctrl)
	ctx := context.Background()

	deps.adCampaignRepo.EXPECT().GetByID(ctx, "AC9999").Return(nil, nil)

	open, err := service.IsPacingGateOpen(ctx, "AC9999")

	assert.False(t, open)
	assert.ErrorIs(t, err, ErrAdCampaignNotFound)
}
