package testmatrix

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-orchestrator-api/infrastructure/repository"
	"github.com/vfg2006/campaign-orchestrator-api/internal/config"
	"github.com/vfg2006/campaign-orchestrator-api/internal/domain"
	"github.com/vfg2006/campaign-orchestrator-api/pkg/utils"
)

//go:generate mockgen -source=service.go -destination=mocks/service_mock.go -package=mocks

// Generator expande as dimensões de segmentação e criativo de uma AdCampaign
// no conjunto desejado de AdSets e reconcilia o banco contra ele
type Generator interface {
	Reconcile(ctx context.Context, adCampaignID string) (*domain.ReconcileResult, error)
}

// BudgetValidator é o recorte do planner que a reconciliação consome para
// barrar campanhas com orçamentos inconsistentes antes de qualquer escrita
type BudgetValidator interface {
	ValidateLifetimeBudgets(adCampaign *domain.AdCampaign) error
}

type Service struct {
	adCampaignRepo repository.AdCampaignRepository
	adSetRepo      repository.AdSetRepository
	adRepo         repository.AdRepository
	budgets        BudgetValidator
	maxFanout      int
}

func NewService(
	adCampaignRepo repository.AdCampaignRepository,
	adSetRepo repository.AdSetRepository,
	adRepo repository.AdRepository,
	budgets BudgetValidator,
	cfg *config.Config,
) *Service {
	return &Service{
		adCampaignRepo: adCampaignRepo,
		adSetRepo:      adSetRepo,
		adRepo:         adRepo,
		budgets:        budgets,
		maxFanout:      cfg.TestMatrix.MaxFanout,
	}
}

// renderKind distingue o tipo de asset renderizado dentro da dimensão de criativo
type renderKind string

const (
	renderKindVid           renderKind = "vid"
	renderKindTrack         renderKind = "track"
	renderKindPlaylistCover renderKind = "playlist_cover"
)

type renderRef struct {
	kind renderKind
	id   string
}

// targetingBranch é um ramo do produto cartesiano das dimensões de segmentação
type targetingBranch struct {
	demoID           string
	geoGroupIDs      []string
	interestGroupIDs []string
}

// creativeBranch é um ramo do produto Headline × render
type creativeBranch struct {
	headlineID string
	render     renderRef
}

// combination é um AdSet desejado: um ramo de segmentação pareado com um de criativo
type combination struct {
	targeting targetingBranch
	creative  creativeBranch
	key       string
}

// Reconcile computa o conjunto de chaves desejado, cria AdSets (com Audience e
// AdCreative) para as chaves ausentes e arquiva os AdSets cuja chave deixou de
// ser desejada. Nunca apaga: o histórico de stats precisa sobreviver.
// Uma segunda chamada com configuração inalterada não faz nenhuma escrita.
func (s *Service) Reconcile(ctx context.Context, adCampaignID string) (*domain.ReconcileResult, error) {
	adCampaign, err := s.adCampaignRepo.GetByID(ctx, adCampaignID)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar ad campaign")
	}
	if adCampaign == nil {
		return nil, ErrAdCampaignNotFound
	}

	if err := s.budgets.ValidateLifetimeBudgets(adCampaign); err != nil {
		return nil, err
	}

	combinations, err := s.desiredCombinations(adCampaign)
	if err != nil {
		return nil, err
	}

	if len(combinations) > s.maxFanout {
		return nil, &FanoutError{Desired: len(combinations), MaxFanout: s.maxFanout}
	}

	existing, err := s.adSetRepo.ListByAdCampaignID(ctx, adCampaignID)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao listar ad sets existentes")
	}

	existingByKey := make(map[string]*domain.AdSet)
	for _, adSet := range existing {
		if adSet.Archived {
			continue
		}
		// Linhas criadas por clonagem não pertencem à matriz e ficam fora
		// do diff: arquivá-las aqui quebraria a idempotência
		if adSet.IsCloneRow() {
			continue
		}
		existingByKey[adSet.MatrixKey] = adSet
	}

	desiredKeys := make(map[string]struct{}, len(combinations))
	result := &domain.ReconcileResult{
		AdCampaignID: adCampaignID,
		Desired:      len(combinations),
	}

	creativesByKey, err := s.loadCreatives(ctx, adCampaignID)
	if err != nil {
		return nil, err
	}

	for _, combo := range combinations {
		desiredKeys[combo.key] = struct{}{}

		if _, ok := existingByKey[combo.key]; ok {
			result.Unchanged++
			continue
		}

		if err := s.materialize(ctx, adCampaign, combo, creativesByKey); err != nil {
			return nil, err
		}
		result.CreatedKeys = append(result.CreatedKeys, combo.key)
	}

	staleIDs := make([]string, 0)
	for key, adSet := range existingByKey {
		if _, ok := desiredKeys[key]; !ok {
			staleIDs = append(staleIDs, adSet.ID)
			result.ArchivedKeys = append(result.ArchivedKeys, key)
		}
	}

	if err := s.adSetRepo.ArchiveByIDs(ctx, staleIDs); err != nil {
		return nil, errors.Wrap(err, "erro ao arquivar ad sets obsoletos")
	}

	logrus.WithFields(logrus.Fields{
		"ad_campaign_id": adCampaignID,
		"desired":        result.Desired,
		"created":        len(result.CreatedKeys),
		"archived":       len(result.ArchivedKeys),
		"unchanged":      result.Unchanged,
	}).Info("Reconciliação da matriz de testes concluída")

	return result, nil
}

// desiredCombinations expande o produto cartesiano das dimensões habilitadas.
// Dimensão com flag de split-test desligada colapsa para exatamente um valor
// default: o primeiro demo, o conjunto completo de geo groups e o conjunto
// completo de interest groups.
func (s *Service) desiredCombinations(adCampaign *domain.AdCampaign) ([]combination, error) {
	demoBranches, err := demoBranches(adCampaign)
	if err != nil {
		return nil, err
	}
	geoBranches := geoBranches(adCampaign)
	interestBranches := interestBranches(adCampaign)

	creativeBranches, err := creativeBranches(adCampaign)
	if err != nil {
		return nil, err
	}

	combinations := make([]combination, 0, len(demoBranches)*len(geoBranches)*len(interestBranches)*len(creativeBranches))
	for _, demoID := range demoBranches {
		for _, geoIDs := range geoBranches {
			for _, interestIDs := range interestBranches {
				for _, creative := range creativeBranches {
					targeting := targetingBranch{
						demoID:           demoID,
						geoGroupIDs:      geoIDs,
						interestGroupIDs: interestIDs,
					}
					combinations = append(combinations, combination{
						targeting: targeting,
						creative:  creative,
						key:       matrixKey(targeting, creative),
					})
				}
			}
		}
	}

	return combinations, nil
}

func demoBranches(adCampaign *domain.AdCampaign) ([]string, error) {
	if len(adCampaign.Demos) == 0 {
		return nil, errors.Wrap(ErrMissingCandidates, "demos")
	}

	if !adCampaign.SplitTestDemos {
		return []string{adCampaign.Demos[0].ID}, nil
	}

	ids := make([]string, 0, len(adCampaign.Demos))
	for _, demo := range adCampaign.Demos {
		ids = append(ids, demo.ID)
	}
	return ids, nil
}

func geoBranches(adCampaign *domain.AdCampaign) [][]string {
	if !adCampaign.SplitTestGeoGroups {
		all := make([]string, 0, len(adCampaign.GeoGroups))
		for _, geoGroup := range adCampaign.GeoGroups {
			all = append(all, geoGroup.ID)
		}
		return [][]string{all}
	}

	branches := make([][]string, 0, len(adCampaign.GeoGroups))
	for _, geoGroup := range adCampaign.GeoGroups {
		branches = append(branches, []string{geoGroup.ID})
	}
	if len(branches) == 0 {
		branches = append(branches, []string{})
	}
	return branches
}

func interestBranches(adCampaign *domain.AdCampaign) [][]string {
	if !adCampaign.SplitTestInterestGroups {
		all := make([]string, 0, len(adCampaign.InterestGroups))
		for _, interestGroup := range adCampaign.InterestGroups {
			all = append(all, interestGroup.ID)
		}
		return [][]string{all}
	}

	branches := make([][]string, 0, len(adCampaign.InterestGroups))
	for _, interestGroup := range adCampaign.InterestGroups {
		branches = append(branches, []string{interestGroup.ID})
	}
	if len(branches) == 0 {
		branches = append(branches, []string{})
	}
	return branches
}

func creativeBranches(adCampaign *domain.AdCampaign) ([]creativeBranch, error) {
	if len(adCampaign.Headlines) == 0 {
		return nil, errors.Wrap(ErrMissingCandidates, "headlines")
	}

	renders := make([]renderRef, 0)
	for _, render := range adCampaign.VidRenders {
		renders = append(renders, renderRef{kind: renderKindVid, id: render.ID})
	}
	for _, render := range adCampaign.TrackRenders {
		renders = append(renders, renderRef{kind: renderKindTrack, id: render.ID})
	}
	for _, render := range adCampaign.PlaylistCoverRenders {
		renders = append(renders, renderRef{kind: renderKindPlaylistCover, id: render.ID})
	}
	if len(renders) == 0 {
		return nil, errors.Wrap(ErrMissingCandidates, "renders")
	}

	branches := make([]creativeBranch, 0, len(adCampaign.Headlines)*len(renders))
	for _, headline := range adCampaign.Headlines {
		for _, render := range renders {
			branches = append(branches, creativeBranch{headlineID: headline.ID, render: render})
		}
	}

	return branches, nil
}

// matrixKey mapeia uma combinação para sua chave sintética determinística:
// os ids dos componentes ordenados e concatenados
func matrixKey(targeting targetingBranch, creative creativeBranch) string {
	parts := make([]string, 0, 4+len(targeting.geoGroupIDs)+len(targeting.interestGroupIDs))
	parts = append(parts, targeting.demoID)
	parts = append(parts, targeting.geoGroupIDs...)
	parts = append(parts, targeting.interestGroupIDs...)
	parts = append(parts, creative.headlineID, creative.render.id)
	sort.Strings(parts)
	return strings.Join(parts, "|")
}

func creativeKey(creative creativeBranch) string {
	parts := []string{creative.headlineID, creative.render.id}
	sort.Strings(parts)
	return strings.Join(parts, "|")
}

func (s *Service) loadCreatives(ctx context.Context, adCampaignID string) (map[string]*domain.AdCreative, error) {
	creatives, err := s.adRepo.ListCreativesByAdCampaignID(ctx, adCampaignID)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao listar ad creatives")
	}

	byKey := make(map[string]*domain.AdCreative, len(creatives))
	for _, creative := range creatives {
		byKey[creative.CreativeKey] = creative
	}
	return byKey, nil
}

// materialize cria as linhas de Audience, AdSet, AdCreative (reusando quando o
// par headline×render já existe) e o Ad que liga o conjunto ao criativo
func (s *Service) materialize(ctx context.Context, adCampaign *domain.AdCampaign, combo combination, creativesByKey map[string]*domain.AdCreative) error {
	now := time.Now().UTC()

	creative, err := s.ensureCreative(ctx, adCampaign, combo.creative, creativesByKey, now)
	if err != nil {
		return err
	}

	audienceID, err := utils.GenerateID()
	if err != nil {
		return errors.Wrap(err, "erro ao gerar id de audience")
	}
	adSetID, err := utils.GenerateID()
	if err != nil {
		return errors.Wrap(err, "erro ao gerar id de ad set")
	}

	audience := &domain.Audience{
		ID:                      audienceID,
		AdCampaignID:            adCampaign.ID,
		DemoID:                  combo.targeting.demoID,
		GeoGroupIDs:             combo.targeting.geoGroupIDs,
		IncludeInterestGroupIDs: combo.targeting.interestGroupIDs,
		ExcludeInterestGroupIDs: []string{},
		IncludeVidViewsGroupIDs: []string{},
		ExcludeVidViewsGroupIDs: []string{},
		CreatedAt:               now,
	}

	adSet := &domain.AdSet{
		ID:           adSetID,
		AdCampaignID: adCampaign.ID,
		AudienceID:   audienceID,
		MatrixKey:    combo.key,
		MetaStatus:   domain.AdStatusPending,
		TikTokStatus: domain.AdStatusPending,
		FBFeed:       true,
		IGFeed:       true,
		IGStories:    true,
		TikTokFeed:   true,
		CreatedAt:    now,
	}

	if err := s.adSetRepo.CreateWithAudience(ctx, adSet, audience); err != nil {
		return errors.Wrap(err, "erro ao criar ad set")
	}

	adID, err := utils.GenerateID()
	if err != nil {
		return errors.Wrap(err, "erro ao gerar id de ad")
	}

	ad := &domain.Ad{
		ID:           adID,
		AdSetID:      adSetID,
		AdCreativeID: creative.ID,
		CreatedAt:    now,
	}

	if err := s.adRepo.Create(ctx, ad); err != nil {
		return errors.Wrap(err, "erro ao criar ad")
	}

	return nil
}

func (s *Service) ensureCreative(ctx context.Context, adCampaign *domain.AdCampaign, branch creativeBranch, creativesByKey map[string]*domain.AdCreative, now time.Time) (*domain.AdCreative, error) {
	key := creativeKey(branch)
	if creative, ok := creativesByKey[key]; ok {
		return creative, nil
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao gerar id de ad creative")
	}

	creative := &domain.AdCreative{
		ID:           id,
		AdCampaignID: adCampaign.ID,
		HeadlineID:   branch.headlineID,
		LinkURL:      adCampaign.LinkURL,
		CreativeKey:  key,
		CreatedAt:    now,
	}

	switch branch.render.kind {
	case renderKindVid:
		creative.VidRenderID = &branch.render.id
	case renderKindTrack:
		creative.TrackRenderID = &branch.render.id
	case renderKindPlaylistCover:
		creative.PlaylistCoverRenderID = &branch.render.id
	}

	if err := s.adRepo.CreateCreative(ctx, creative); err != nil {
		return nil, errors.Wrap(err, "erro ao criar ad creative")
	}

	creativesByKey[key] = creative
	return creative, nil
}
