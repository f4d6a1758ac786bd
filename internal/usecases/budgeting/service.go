package budgeting

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-orchestrator-api/infrastructure/repository"
	"github.com/vfg2006/campaign-orchestrator-api/internal/domain"
)

//go:generate mockgen -source=service.go -destination=mocks/service_mock.go -package=mocks

// Planner calcula as identidades de orçamento e projeção de uma campanha.
// Projeções nunca são recalculadas no lugar: elas só persistem como parte de
// um CampaignUpdateRecord explícito.
type Planner interface {
	// ValidateLifetimeBudgets verifica a identidade entre o orçamento total e
	// a soma dos orçamentos por plataforma; a reconciliação e o rollout
	// barram a campanha quando a identidade falha
	ValidateLifetimeBudgets(adCampaign *domain.AdCampaign) error

	// IsPacingGateOpen retorna verdadeiro quando o gasto observado já consumiu
	// a fração do orçamento exigida pelo triggerFraction vigente
	IsPacingGateOpen(ctx context.Context, adCampaignID string) (bool, error)

	// CompleteSnapshot deriva as projeções do snapshot e retorna um registro
	// pronto para ser gravado pelo ciclo de vida
	CompleteSnapshot(snapshot *domain.BudgetSnapshot) (*domain.CampaignUpdateRecord, error)
}

type Service struct {
	campaignRepo   repository.CampaignRepository
	adCampaignRepo repository.AdCampaignRepository
	adSetRepo      repository.AdSetRepository
	adRepo         repository.AdRepository
	statRepo       repository.StatRepository
}

func NewService(
	campaignRepo repository.CampaignRepository,
	adCampaignRepo repository.AdCampaignRepository,
	adSetRepo repository.AdSetRepository,
	adRepo repository.AdRepository,
	statRepo repository.StatRepository,
) *Service {
	return &Service{
		campaignRepo:   campaignRepo,
		adCampaignRepo: adCampaignRepo,
		adSetRepo:      adSetRepo,
		adRepo:         adRepo,
		statRepo:       statRepo,
	}
}

func (s *Service) ValidateLifetimeBudgets(adCampaign *domain.AdCampaign) error {
	if adCampaign.MetaLifetimeBudget == nil || adCampaign.TikTokLifetimeBudget == nil {
		return nil
	}

	sum := adCampaign.MetaLifetimeBudget.Add(*adCampaign.TikTokLifetimeBudget)
	if adCampaign.TotalLifetimeBudget == nil {
		return errors.Wrapf(ErrBudgetInvariantViolation, "total ausente com as duas plataformas definidas, soma %s", sum.String())
	}
	if !adCampaign.TotalLifetimeBudget.Equal(sum) {
		return errors.Wrapf(ErrBudgetInvariantViolation, "total %s, soma %s",
			adCampaign.TotalLifetimeBudget.String(), sum.String())
	}

	return nil
}

// IsPacingGateOpen compara o gasto acumulado dos ads da campanha com
// triggerFraction x orçamento vigente. Sem triggerFraction configurado não há
// restrição de pacing e o gate fica aberto.
func (s *Service) IsPacingGateOpen(ctx context.Context, adCampaignID string) (bool, error) {
	adCampaign, err := s.adCampaignRepo.GetByID(ctx, adCampaignID)
	if err != nil {
		return false, errors.Wrap(err, "erro ao buscar ad campaign")
	}
	if adCampaign == nil {
		return false, ErrAdCampaignNotFound
	}

	fraction, err := s.currentTriggerFraction(ctx, adCampaign.CampaignID)
	if err != nil {
		return false, err
	}
	if fraction == nil {
		return true, nil
	}

	budget := currentBudget(adCampaign)
	if budget == nil || budget.IsZero() {
		return true, nil
	}

	adIDs, err := s.campaignAdIDs(ctx, adCampaignID)
	if err != nil {
		return false, err
	}

	spend, err := s.statRepo.SpendByAdIDs(ctx, adIDs, adCampaign.CreatedAt, time.Now().UTC())
	if err != nil {
		return false, errors.Wrap(err, "erro ao somar gasto observado")
	}

	threshold := budget.Mul(*fraction)
	open := spend.GreaterThanOrEqual(threshold)

	logrus.WithFields(logrus.Fields{
		"ad_campaign_id": adCampaignID,
		"spend":          spend.String(),
		"threshold":      threshold.String(),
		"open":           open,
	}).Debug("Pacing gate avaliado")

	return open, nil
}

func (s *Service) CompleteSnapshot(snapshot *domain.BudgetSnapshot) (*domain.CampaignUpdateRecord, error) {
	if snapshot.TriggerFraction != nil {
		fraction := *snapshot.TriggerFraction
		if fraction.IsNegative() || fraction.GreaterThan(decimal.NewFromInt(1)) {
			return nil, errors.Wrapf(ErrTriggerFractionRange, "valor %s", fraction.String())
		}
	}

	record := &domain.CampaignUpdateRecord{
		DailyBudget:                      snapshot.DailyBudget,
		TriggerFraction:                  snapshot.TriggerFraction,
		ProjectedCostPerMetric:           snapshot.ProjectedCostPerMetric,
		ProjectedMonthlyMetric:           snapshot.ProjectedMonthlyMetric,
		ProjectedMonthlyMaintenanceSpend: snapshot.ProjectedMonthlyMaintenanceSpend,
		ProjectedMonthlyRevenue:          snapshot.ProjectedMonthlyRevenue,
	}

	// projectedMonthlyAdSpend = custo por métrica x métrica mensal projetada
	if snapshot.ProjectedCostPerMetric != nil && snapshot.ProjectedMonthlyMetric != nil {
		adSpend := snapshot.ProjectedCostPerMetric.Mul(decimal.NewFromInt(*snapshot.ProjectedMonthlyMetric))
		record.ProjectedMonthlyAdSpend = &adSpend
	}

	// projectedMonthlyTotalSpend = ad spend + manutenção
	if record.ProjectedMonthlyAdSpend != nil {
		total := *record.ProjectedMonthlyAdSpend
		if snapshot.ProjectedMonthlyMaintenanceSpend != nil {
			total = total.Add(*snapshot.ProjectedMonthlyMaintenanceSpend)
		}
		record.ProjectedMonthlyTotalSpend = &total
	}

	// projectedMonthlyNet = receita - gasto total, identidade exata
	if snapshot.ProjectedMonthlyRevenue != nil && record.ProjectedMonthlyTotalSpend != nil {
		net := snapshot.ProjectedMonthlyRevenue.Sub(*record.ProjectedMonthlyTotalSpend)
		record.ProjectedMonthlyNet = &net
	}

	return record, nil
}

// currentTriggerFraction deriva o triggerFraction vigente: o valor do registro
// mais recente do log que carrega o campo
func (s *Service) currentTriggerFraction(ctx context.Context, campaignID string) (*decimal.Decimal, error) {
	records, err := s.campaignRepo.ListUpdateRecords(ctx, campaignID)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao ler o log da campanha")
	}

	for i := len(records) - 1; i >= 0; i-- {
		if records[i].TriggerFraction != nil {
			return records[i].TriggerFraction, nil
		}
	}

	return nil, nil
}

func (s *Service) campaignAdIDs(ctx context.Context, adCampaignID string) ([]string, error) {
	adSets, err := s.adSetRepo.ListByAdCampaignID(ctx, adCampaignID)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao listar ad sets")
	}

	adIDs := make([]string, 0)
	for _, adSet := range adSets {
		ads, err := s.adRepo.ListByAdSetID(ctx, adSet.ID)
		if err != nil {
			return nil, errors.Wrap(err, "erro ao listar ads")
		}
		for _, ad := range ads {
			adIDs = append(adIDs, ad.ID)
		}
	}

	return adIDs, nil
}

// currentBudget escolhe a base de comparação do pacing: o orçamento de vida
// inteira quando configurado, senão a soma dos orçamentos diários
func currentBudget(adCampaign *domain.AdCampaign) *decimal.Decimal {
	if adCampaign.TotalLifetimeBudget != nil {
		return adCampaign.TotalLifetimeBudget
	}

	if adCampaign.MetaLifetimeBudget != nil && adCampaign.TikTokLifetimeBudget != nil {
		sum := adCampaign.MetaLifetimeBudget.Add(*adCampaign.TikTokLifetimeBudget)
		return &sum
	}

	var daily decimal.Decimal
	set := false
	if adCampaign.MetaDailyBudget != nil {
		daily = daily.Add(*adCampaign.MetaDailyBudget)
		set = true
	}
	if adCampaign.TikTokDailyBudget != nil {
		daily = daily.Add(*adCampaign.TikTokDailyBudget)
		set = true
	}
	if !set {
		return nil
	}
	return &daily
}
