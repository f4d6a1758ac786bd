package winnerselecting

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-orchestrator-api/infrastructure/repository"
	"github.com/vfg2006/campaign-orchestrator-api/internal/config"
	"github.com/vfg2006/campaign-orchestrator-api/internal/domain"
	"github.com/vfg2006/campaign-orchestrator-api/pkg/lock"
	"github.com/vfg2006/campaign-orchestrator-api/pkg/metrics"
)

//go:generate mockgen -source=service.go -destination=mocks/service_mock.go -package=mocks

// verdictActor identifica o seletor no log da campanha
const verdictActor = "winner-selector"

// Selector avalia a performance dos ads de uma campanha em teste e grava o
// veredito tri-state por ad. Quando todo ad set tem vencedor determinado ou
// esgotou a janela de teste, o seletor emite a transição
// testing -> testingComplete.
type Selector interface {
	Evaluate(ctx context.Context, campaignID string) (*EvaluationResult, error)
}

// LifecycleDriver é o recorte do ciclo de vida que o seletor consome
type LifecycleDriver interface {
	CurrentStage(ctx context.Context, campaignID string) (domain.CampaignStage, error)
	CompleteTesting(ctx context.Context, campaignID string, actor string) (*domain.CampaignUpdateRecord, error)
}

// EvaluationResult resume o efeito de uma avaliação
type EvaluationResult struct {
	CampaignID         string `json:"campaign_id"`
	AdSetsEvaluated    int    `json:"ad_sets_evaluated"`
	WinnersDetermined  int    `json:"winners_determined"`
	InsufficientSample int    `json:"insufficient_sample"`
	WindowExhausted    int    `json:"window_exhausted"`
	TestingCompleted   bool   `json:"testing_completed"`
}

type Service struct {
	adCampaignRepo repository.AdCampaignRepository
	adSetRepo      repository.AdSetRepository
	adRepo         repository.AdRepository
	statRepo       repository.StatRepository
	lifecycle      LifecycleDriver
	locker         lock.Locker
	metrics        *metrics.Metrics

	testWindow           time.Duration
	minSampleSpend       decimal.Decimal
	minSampleImpressions int64
	leaseTTL             time.Duration
}

func NewService(
	adCampaignRepo repository.AdCampaignRepository,
	adSetRepo repository.AdSetRepository,
	adRepo repository.AdRepository,
	statRepo repository.StatRepository,
	lifecycle LifecycleDriver,
	locker lock.Locker,
	m *metrics.Metrics,
	cfg *config.Config,
) (*Service, error) {
	minSpend, err := decimal.NewFromString(cfg.EvaluationSync.MinSampleSpend)
	if err != nil {
		return nil, errors.Wrap(err, "valor inválido para o gasto mínimo de amostra")
	}

	return &Service{
		adCampaignRepo:       adCampaignRepo,
		adSetRepo:            adSetRepo,
		adRepo:               adRepo,
		statRepo:             statRepo,
		lifecycle:            lifecycle,
		locker:               locker,
		metrics:              m,
		testWindow:           time.Duration(cfg.EvaluationSync.TestWindowDays) * 24 * time.Hour,
		minSampleSpend:       minSpend,
		minSampleImpressions: cfg.EvaluationSync.MinSampleImpressions,
		leaseTTL:             time.Duration(cfg.Redis.LeaseTTLSeconds) * time.Second,
	}, nil
}

// Evaluate roda uma avaliação completa da campanha sob lease exclusivo.
// Amostra insuficiente é um desfecho válido: o ad fica sem veredito e a
// campanha segue em testing até o próximo ciclo, a menos que o ad set já
// tenha esgotado a janela de teste.
func (s *Service) Evaluate(ctx context.Context, campaignID string) (*EvaluationResult, error) {
	leaseKey := "evaluation:" + campaignID
	acquired, err := s.locker.Acquire(ctx, leaseKey, s.leaseTTL)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao adquirir lease de avaliação")
	}
	if !acquired {
		return nil, ErrEvaluationInProgress
	}
	defer func() {
		if err := s.locker.Release(ctx, leaseKey); err != nil {
			logrus.WithError(err).WithField("campaign_id", campaignID).Warn("Erro ao liberar lease de avaliação")
		}
	}()

	stage, err := s.lifecycle.CurrentStage(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	if stage != domain.StageTesting {
		return nil, errors.Wrapf(ErrNotInTesting, "estágio atual %s", stage)
	}

	adCampaign, err := s.adCampaignRepo.GetByCampaignID(ctx, campaignID)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar ad campaign")
	}
	if adCampaign == nil {
		return nil, ErrCampaignNotFound
	}

	s.metrics.EvaluationRuns.Inc()

	adSets, err := s.adSetRepo.ListByAdCampaignID(ctx, adCampaign.ID)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao listar ad sets")
	}

	adsBySet := make(map[string][]*domain.Ad)
	allAdIDs := make([]string, 0)
	for _, adSet := range adSets {
		if adSet.Archived {
			continue
		}
		ads, err := s.adRepo.ListByAdSetID(ctx, adSet.ID)
		if err != nil {
			return nil, errors.Wrap(err, "erro ao listar ads")
		}
		adsBySet[adSet.ID] = ads
		for _, ad := range ads {
			allAdIDs = append(allAdIDs, ad.ID)
		}
	}

	now := time.Now().UTC()
	performance, err := s.statRepo.AggregateByAdIDs(ctx, allAdIDs, now.Add(-s.testWindow), now)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao agregar stats da janela de teste")
	}

	result := &EvaluationResult{CampaignID: campaignID}
	allDetermined := true

	for _, adSet := range adSets {
		if adSet.Archived {
			continue
		}
		ads := adsBySet[adSet.ID]
		if len(ads) == 0 {
			continue
		}
		result.AdSetsEvaluated++

		if isDetermined(ads) {
			continue
		}

		winner, ranked := s.pickWinner(ads, performance)
		if winner == nil {
			// Sem nenhum ad ranqueável o conjunto espera o próximo ciclo,
			// a menos que a janela de teste já tenha se esgotado
			if s.windowExhausted(adSet, now) {
				result.WindowExhausted++

				logrus.WithFields(logrus.Fields{
					"campaign_id": campaignID,
					"ad_set_id":   adSet.ID,
				}).Info("Ad set esgotou a janela de teste sem amostra suficiente")
				continue
			}
			result.InsufficientSample++
			allDetermined = false
			continue
		}

		if err := s.recordVerdict(ctx, ranked, winner); err != nil {
			return nil, err
		}
		result.WinnersDetermined++
		s.metrics.WinnersDetermined.Inc()

		logrus.WithFields(logrus.Fields{
			"campaign_id": campaignID,
			"ad_set_id":   adSet.ID,
			"winner_ad":   winner.ID,
		}).Info("Vencedor do ad set determinado")
	}

	if result.AdSetsEvaluated == 0 {
		allDetermined = false
	}

	if allDetermined {
		if _, err := s.lifecycle.CompleteTesting(ctx, campaignID, verdictActor); err != nil {
			return nil, errors.Wrap(err, "erro ao concluir o estágio de teste")
		}
		result.TestingCompleted = true
		s.metrics.CampaignsCompleted.Inc()

		logrus.WithField("campaign_id", campaignID).Info("Campanha movida para testingComplete pelo veredito")
	}

	return result, nil
}

// isDetermined diz se o ad set já tem veredito gravado
func isDetermined(ads []*domain.Ad) bool {
	for _, ad := range ads {
		if ad.PassedTest != nil {
			return true
		}
	}
	return false
}

// pickWinner ranqueia os ads com amostra suficiente e escolhe o de menor
// custo por resultado. Ads sem amostra ficam fora do ranking com veredito
// nulo e não impedem os demais de competir. Empate resolve pelo ad mais
// antigo e, por fim, pelo menor id.
func (s *Service) pickWinner(ads []*domain.Ad, performance map[string]*domain.AdPerformance) (*domain.Ad, []*domain.Ad) {
	var winner *domain.Ad
	var winnerCost decimal.Decimal
	ranked := make([]*domain.Ad, 0, len(ads))

	for _, ad := range ads {
		perf, ok := performance[ad.ID]
		if !ok || !s.sufficientSample(perf) {
			continue
		}

		cost, ok := perf.CostPerResult()
		if !ok {
			continue
		}
		ranked = append(ranked, ad)

		if winner == nil || cost.LessThan(winnerCost) {
			winner, winnerCost = ad, cost
			continue
		}
		if cost.Equal(winnerCost) && olderThan(ad, winner) {
			winner, winnerCost = ad, cost
		}
	}

	return winner, ranked
}

// windowExhausted diz se o ad set já viveu a janela de teste inteira sem
// produzir amostra ranqueável; nesse caso ele deixa de segurar a campanha
// em testing
func (s *Service) windowExhausted(adSet *domain.AdSet, now time.Time) bool {
	return !adSet.CreatedAt.IsZero() && now.Sub(adSet.CreatedAt) > s.testWindow
}

func (s *Service) sufficientSample(perf *domain.AdPerformance) bool {
	return perf.Spend.GreaterThanOrEqual(s.minSampleSpend) &&
		perf.Impressions >= s.minSampleImpressions
}

func olderThan(a, b *domain.Ad) bool {
	if a.CreatedAt.Before(b.CreatedAt) {
		return true
	}
	if a.CreatedAt.Equal(b.CreatedAt) {
		return a.ID < b.ID
	}
	return false
}

// recordVerdict grava true para o vencedor e false para os demais ads
// ranqueados; ads fora do ranking permanecem com veredito nulo
func (s *Service) recordVerdict(ctx context.Context, ranked []*domain.Ad, winner *domain.Ad) error {
	passed := true
	failed := false

	for _, ad := range ranked {
		verdict := &failed
		if ad.ID == winner.ID {
			verdict = &passed
		}
		if err := s.adRepo.SetPassedTest(ctx, ad.ID, verdict); err != nil {
			return errors.Wrap(err, "erro ao gravar veredito do ad")
		}
	}

	return nil
}
