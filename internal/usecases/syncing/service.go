package syncing

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-orchestrator-api/infrastructure/integrator/adplatform"
	"github.com/vfg2006/campaign-orchestrator-api/infrastructure/repository"
	"github.com/vfg2006/campaign-orchestrator-api/internal/config"
	"github.com/vfg2006/campaign-orchestrator-api/internal/domain"
	"github.com/vfg2006/campaign-orchestrator-api/pkg/metrics"
	"github.com/vfg2006/campaign-orchestrator-api/pkg/utils"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
)

//go:generate mockgen -source=service.go -destination=mocks/service_mock.go -package=mocks

// Tracker despacha operações mutantes de AdSet para as plataformas e rastreia
// a conclusão independente de cada uma. Cada operação vira um registro de
// sincronização que só recebe status terminal quando toda plataforma alvo
// resolveu sua flag de conclusão.
type Tracker interface {
	// RolloutAdCampaign publica os ad sets pendentes da ad campaign em todas
	// as plataformas alvo
	RolloutAdCampaign(ctx context.Context, adCampaignID string) error

	// CloneAdSet duplica um ad set já publicado nas plataformas pedidas,
	// aplicando os overrides na cópia
	CloneAdSet(ctx context.Context, adSetID string, overrides *domain.AdSetOverrides, platforms []domain.Platform) (*domain.AdSetCloneRecord, error)

	// UpdateAdSet aplica o spec ao ad set nas plataformas pedidas
	UpdateAdSet(ctx context.Context, adSetID string, spec *domain.AdSetSpec, platforms []domain.Platform) (*domain.AdSetUpdateRecord, error)

	// RetryUnsettled redespacha as plataformas ainda pendentes de todos os
	// registros não liquidados
	RetryUnsettled(ctx context.Context) error
}

// BudgetValidator é o recorte do planner consumido antes do rollout para
// barrar campanhas com orçamentos inconsistentes
type BudgetValidator interface {
	ValidateLifetimeBudgets(adCampaign *domain.AdCampaign) error
}

type Service struct {
	adSetRepo      repository.AdSetRepository
	adCampaignRepo repository.AdCampaignRepository
	syncRepo       repository.SyncRecordRepository
	budgets        BudgetValidator
	clients        map[domain.Platform]adplatform.Client
	metrics        *metrics.Metrics
	sem            *semaphore.Weighted

	maxAttempts    int
	baseBackoff    time.Duration
	requestTimeout time.Duration
}

func NewService(
	adSetRepo repository.AdSetRepository,
	adCampaignRepo repository.AdCampaignRepository,
	syncRepo repository.SyncRecordRepository,
	budgets BudgetValidator,
	clients []adplatform.Client,
	m *metrics.Metrics,
	cfg *config.Config,
) *Service {
	byPlatform := make(map[domain.Platform]adplatform.Client, len(clients))
	for _, client := range clients {
		byPlatform[client.Platform()] = client
	}

	return &Service{
		adSetRepo:      adSetRepo,
		adCampaignRepo: adCampaignRepo,
		syncRepo:       syncRepo,
		budgets:        budgets,
		clients:        byPlatform,
		metrics:        m,
		sem:            semaphore.NewWeighted(int64(cfg.PlatformSync.MaxConcurrentDispatches)),
		maxAttempts:    cfg.PlatformSync.MaxAttempts,
		baseBackoff:    time.Duration(cfg.PlatformSync.BaseBackoffMillis) * time.Millisecond,
		requestTimeout: time.Duration(cfg.PlatformSync.RequestTimeoutSeconds) * time.Second,
	}
}

func (s *Service) RolloutAdCampaign(ctx context.Context, adCampaignID string) error {
	adCampaign, err := s.adCampaignRepo.GetByID(ctx, adCampaignID)
	if err != nil {
		return errors.Wrap(err, "erro ao buscar ad campaign")
	}
	if adCampaign == nil {
		return ErrAdCampaignNotFound
	}

	if err := s.budgets.ValidateLifetimeBudgets(adCampaign); err != nil {
		return err
	}

	adSets, err := s.adSetRepo.ListByAdCampaignID(ctx, adCampaignID)
	if err != nil {
		return errors.Wrap(err, "erro ao listar ad sets")
	}

	var failures []error
	for _, adSet := range adSets {
		if adSet.Archived {
			continue
		}

		completion := rolloutTargets(adSet)
		if len(completion.Targets()) == 0 {
			continue
		}

		record, err := s.createRolloutRecord(ctx, adCampaign, adSet, completion)
		if err != nil {
			return err
		}

		if err := s.dispatchUpdateRecord(ctx, record); err != nil {
			failures = append(failures, err)
		}
	}

	if len(failures) > 0 {
		logrus.WithField("ad_campaign_id", adCampaignID).
			Warnf("Rollout concluído com %d ad sets incompletos", len(failures))
		return failures[0]
	}

	return nil
}

func (s *Service) CloneAdSet(ctx context.Context, adSetID string, overrides *domain.AdSetOverrides, platforms []domain.Platform) (*domain.AdSetCloneRecord, error) {
	source, err := s.adSetRepo.GetByID(ctx, adSetID)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar ad set")
	}
	if source == nil {
		return nil, ErrAdSetNotFound
	}

	// Só plataformas onde a origem existe podem receber a cópia
	completion := domain.PlatformCompletion{}
	for _, platform := range platforms {
		switch platform {
		case domain.PlatformMeta:
			completion.Meta = source.MetaExternalID != nil
		case domain.PlatformTikTok:
			completion.TikTok = source.TikTokExternalID != nil
		}
	}
	if len(completion.Targets()) == 0 {
		return nil, ErrNoTargetPlatforms
	}

	cloneID, err := utils.GenerateID()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao gerar id da cópia")
	}
	if err := s.adSetRepo.CloneRow(ctx, source.ID, cloneID); err != nil {
		return nil, errors.Wrap(err, "erro ao criar a cópia pendente")
	}

	recordID, err := utils.GenerateID()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao gerar id do registro")
	}

	record := &domain.AdSetCloneRecord{
		ID:                 recordID,
		AdSetID:            source.ID,
		PlatformCompletion: completion,
		Status:             domain.SyncStatusPending,
		ClonedAdSetID:      &cloneID,
		Overrides:          overrides,
		CreatedAt:          time.Now().UTC(),
	}

	if err := s.syncRepo.CreateCloneRecord(ctx, record); err != nil {
		return nil, errors.Wrap(err, "erro ao gravar registro de clonagem")
	}

	if err := s.dispatchCloneRecord(ctx, record); err != nil {
		return record, err
	}

	return s.syncRepo.GetCloneRecord(ctx, record.ID)
}

func (s *Service) UpdateAdSet(ctx context.Context, adSetID string, spec *domain.AdSetSpec, platforms []domain.Platform) (*domain.AdSetUpdateRecord, error) {
	adSet, err := s.adSetRepo.GetByID(ctx, adSetID)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar ad set")
	}
	if adSet == nil {
		return nil, ErrAdSetNotFound
	}

	completion := domain.PlatformCompletion{}
	for _, platform := range platforms {
		switch platform {
		case domain.PlatformMeta:
			completion.Meta = adSet.MetaExternalID != nil
		case domain.PlatformTikTok:
			completion.TikTok = adSet.TikTokExternalID != nil
		}
	}
	if len(completion.Targets()) == 0 {
		return nil, ErrNoTargetPlatforms
	}

	recordID, err := utils.GenerateID()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao gerar id do registro")
	}

	record := &domain.AdSetUpdateRecord{
		ID:                 recordID,
		AdSetID:            adSetID,
		OpType:             domain.SyncOpUpdate,
		PlatformCompletion: completion,
		Status:             domain.SyncStatusPending,
		Spec:               spec,
		CreatedAt:          time.Now().UTC(),
	}

	if err := s.syncRepo.CreateUpdateRecord(ctx, record); err != nil {
		return nil, errors.Wrap(err, "erro ao gravar registro de atualização")
	}

	if err := s.dispatchUpdateRecord(ctx, record); err != nil {
		return record, err
	}

	return s.syncRepo.GetUpdateRecord(ctx, record.ID)
}

// RetryUnsettled redespacha todo registro sem status terminal. Plataformas já
// concluídas são puladas, então reprocessar é sempre seguro.
func (s *Service) RetryUnsettled(ctx context.Context) error {
	updateRecords, err := s.syncRepo.ListUnsettledUpdateRecords(ctx)
	if err != nil {
		return errors.Wrap(err, "erro ao listar registros de atualização pendentes")
	}
	cloneRecords, err := s.syncRepo.ListUnsettledCloneRecords(ctx)
	if err != nil {
		return errors.Wrap(err, "erro ao listar registros de clonagem pendentes")
	}

	retried := 0
	for _, record := range updateRecords {
		if err := s.dispatchUpdateRecord(ctx, record); err != nil {
			logrus.WithError(err).WithField("record_id", record.ID).
				Warn("Registro de atualização seguiu incompleto após retry")
		}
		retried++
	}
	for _, record := range cloneRecords {
		if err := s.dispatchCloneRecord(ctx, record); err != nil {
			logrus.WithError(err).WithField("record_id", record.ID).
				Warn("Registro de clonagem seguiu incompleto após retry")
		}
		retried++
	}

	if retried > 0 {
		logrus.WithField("records", retried).Info("Registros de sincronização pendentes reprocessados")
	}

	return nil
}

func rolloutTargets(adSet *domain.AdSet) domain.PlatformCompletion {
	return domain.PlatformCompletion{
		Meta:   adSet.MetaExternalID == nil && (adSet.FBFeed || adSet.IGFeed || adSet.IGStories),
		TikTok: adSet.TikTokExternalID == nil && adSet.TikTokFeed,
	}
}

func (s *Service) createRolloutRecord(ctx context.Context, adCampaign *domain.AdCampaign, adSet *domain.AdSet, completion domain.PlatformCompletion) (*domain.AdSetUpdateRecord, error) {
	recordID, err := utils.GenerateID()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao gerar id do registro")
	}

	record := &domain.AdSetUpdateRecord{
		ID:                 recordID,
		AdSetID:            adSet.ID,
		OpType:             domain.SyncOpCreate,
		PlatformCompletion: completion,
		Status:             domain.SyncStatusPending,
		Spec: &domain.AdSetSpec{
			Name:       fmt.Sprintf("%s / %s", adCampaign.CampaignID, adSet.MatrixKey),
			Status:     domain.AdStatusActive,
			AudienceID: adSet.AudienceID,
			LinkURL:    adCampaign.LinkURL,
		},
		CreatedAt: time.Now().UTC(),
	}

	if err := s.syncRepo.CreateUpdateRecord(ctx, record); err != nil {
		return nil, errors.Wrap(err, "erro ao gravar registro de rollout")
	}

	return record, nil
}

// dispatchUpdateRecord executa as chamadas por plataforma de um registro de
// criação ou atualização e tenta liquidá-lo ao final. Plataformas com flag de
// conclusão já resolvida são puladas.
func (s *Service) dispatchUpdateRecord(ctx context.Context, record *domain.AdSetUpdateRecord) error {
	adSet, err := s.adSetRepo.GetByID(ctx, record.AdSetID)
	if err != nil {
		return errors.Wrap(err, "erro ao buscar ad set")
	}
	if adSet == nil {
		return ErrAdSetNotFound
	}

	adCampaign, err := s.adCampaignRepo.GetByID(ctx, adSet.AdCampaignID)
	if err != nil {
		return errors.Wrap(err, "erro ao buscar ad campaign")
	}
	if adCampaign == nil {
		return ErrAdCampaignNotFound
	}

	var mu sync.Mutex
	failed := make([]domain.Platform, 0)

	g, gctx := errgroup.WithContext(ctx)
	for _, platform := range pendingTargets(record.PlatformCompletion) {
		platform := platform
		g.Go(func() error {
			if err := s.sem.Acquire(gctx, 1); err != nil {
				return err
			}
			defer s.sem.Release(1)

			if err := s.performUpdateOp(gctx, record, adSet, adCampaign, platform); err != nil {
				logrus.WithError(err).WithFields(logrus.Fields{
					"record_id": record.ID,
					"ad_set_id": adSet.ID,
					"platform":  platform,
					"op":        record.OpType,
				}).Error("Falha definitiva de sincronização com a plataforma")

				mu.Lock()
				failed = append(failed, platform)
				mu.Unlock()
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return errors.Wrap(err, "despacho interrompido")
	}

	if err := s.settleUpdateRecord(ctx, record.ID); err != nil {
		return err
	}

	if len(failed) > 0 {
		return &IncompleteError{RecordID: record.ID, Failed: failed}
	}
	return nil
}

func (s *Service) performUpdateOp(ctx context.Context, record *domain.AdSetUpdateRecord, adSet *domain.AdSet, adCampaign *domain.AdCampaign, platform domain.Platform) error {
	client, ok := s.clients[platform]
	if !ok {
		return s.markUpdateFailure(ctx, record, adSet, platform, errors.Errorf("plataforma %s sem client configurado", platform))
	}

	spec := platformSpec(record.Spec, adCampaign, platform)

	var opErr error
	switch record.OpType {
	case domain.SyncOpCreate:
		var externalID string
		opErr = s.withRetry(ctx, platform, record.OpType, func(callCtx context.Context) error {
			id, err := client.CreateAdSet(callCtx, spec)
			if err != nil {
				return err
			}
			externalID = id
			return nil
		})
		if opErr == nil {
			if err := s.adSetRepo.SetPlatformExternalID(ctx, adSet.ID, platform, externalID); err != nil {
				opErr = errors.Wrap(err, "erro ao gravar id externo")
			}
		}
	case domain.SyncOpUpdate:
		externalID := platformExternalID(adSet, platform)
		if externalID == nil {
			opErr = errors.Errorf("ad set sem id externo em %s", platform)
			break
		}
		opErr = s.withRetry(ctx, platform, record.OpType, func(callCtx context.Context) error {
			return client.UpdateAdSet(callCtx, *externalID, spec)
		})
	default:
		opErr = errors.Errorf("tipo de operação desconhecido: %s", record.OpType)
	}

	if opErr != nil {
		return s.markUpdateFailure(ctx, record, adSet, platform, opErr)
	}

	if err := s.adSetRepo.SetPlatformStatus(ctx, adSet.ID, platform, domain.AdStatusActive); err != nil {
		return s.markUpdateFailure(ctx, record, adSet, platform, errors.Wrap(err, "erro ao atualizar status"))
	}
	if err := s.syncRepo.MarkUpdatePlatformOutcome(ctx, record.ID, platform, true); err != nil {
		return errors.Wrap(err, "erro ao marcar conclusão da plataforma")
	}

	s.metrics.PlatformSyncOutcomes.WithLabelValues(string(platform), string(record.OpType), "success").Inc()
	return nil
}

func (s *Service) markUpdateFailure(ctx context.Context, record *domain.AdSetUpdateRecord, adSet *domain.AdSet, platform domain.Platform, cause error) error {
	if err := s.adSetRepo.SetPlatformStatus(ctx, adSet.ID, platform, domain.AdStatusError); err != nil {
		logrus.WithError(err).WithField("ad_set_id", adSet.ID).Error("Erro ao marcar status ERROR")
	}
	if err := s.syncRepo.MarkUpdatePlatformOutcome(ctx, record.ID, platform, false); err != nil {
		logrus.WithError(err).WithField("record_id", record.ID).Error("Erro ao marcar falha da plataforma")
	}

	s.metrics.PlatformSyncOutcomes.WithLabelValues(string(platform), string(record.OpType), "failure").Inc()
	return &PlatformSyncError{Platform: platform, Op: record.OpType, Err: cause}
}

func (s *Service) settleUpdateRecord(ctx context.Context, recordID string) error {
	record, err := s.syncRepo.GetUpdateRecord(ctx, recordID)
	if err != nil {
		return errors.Wrap(err, "erro ao reler registro de atualização")
	}
	if record == nil {
		return ErrRecordNotFound
	}
	if !record.Settled() || record.Status != domain.SyncStatusPending {
		return nil
	}

	status := domain.SyncStatusFailed
	if record.Succeeded() {
		status = domain.SyncStatusComplete
	}

	if err := s.syncRepo.SettleUpdateRecord(ctx, record.ID, status); err != nil {
		return errors.Wrap(err, "erro ao liquidar registro de atualização")
	}

	s.metrics.SyncRecordsSettled.WithLabelValues(string(record.OpType), string(status)).Inc()
	return nil
}

func (s *Service) dispatchCloneRecord(ctx context.Context, record *domain.AdSetCloneRecord) error {
	if record.ClonedAdSetID == nil {
		return errors.New("registro de clonagem sem cópia pendente associada")
	}

	source, err := s.adSetRepo.GetByID(ctx, record.AdSetID)
	if err != nil {
		return errors.Wrap(err, "erro ao buscar ad set de origem")
	}
	if source == nil {
		return ErrAdSetNotFound
	}

	cloneRowID := *record.ClonedAdSetID

	var mu sync.Mutex
	failed := make([]domain.Platform, 0)

	g, gctx := errgroup.WithContext(ctx)
	for _, platform := range pendingTargets(record.PlatformCompletion) {
		platform := platform
		g.Go(func() error {
			if err := s.sem.Acquire(gctx, 1); err != nil {
				return err
			}
			defer s.sem.Release(1)

			if err := s.performCloneOp(gctx, record, source, cloneRowID, platform); err != nil {
				logrus.WithError(err).WithFields(logrus.Fields{
					"record_id": record.ID,
					"ad_set_id": source.ID,
					"platform":  platform,
				}).Error("Falha definitiva de clonagem na plataforma")

				mu.Lock()
				failed = append(failed, platform)
				mu.Unlock()
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return errors.Wrap(err, "despacho interrompido")
	}

	if err := s.settleCloneRecord(ctx, record.ID); err != nil {
		return err
	}

	if len(failed) > 0 {
		return &IncompleteError{RecordID: record.ID, Failed: failed}
	}
	return nil
}

func (s *Service) performCloneOp(ctx context.Context, record *domain.AdSetCloneRecord, source *domain.AdSet, cloneRowID string, platform domain.Platform) error {
	markFailure := func(cause error) error {
		if err := s.syncRepo.MarkClonePlatformOutcome(ctx, record.ID, platform, false); err != nil {
			logrus.WithError(err).WithField("record_id", record.ID).Error("Erro ao marcar falha da plataforma")
		}
		s.metrics.PlatformSyncOutcomes.WithLabelValues(string(platform), string(domain.SyncOpClone), "failure").Inc()
		return &PlatformSyncError{Platform: platform, Op: domain.SyncOpClone, Err: cause}
	}

	client, ok := s.clients[platform]
	if !ok {
		return markFailure(errors.Errorf("plataforma %s sem client configurado", platform))
	}

	sourceExternalID := platformExternalID(source, platform)
	if sourceExternalID == nil {
		return markFailure(errors.Errorf("ad set de origem sem id externo em %s", platform))
	}

	var clonedExternalID string
	opErr := s.withRetry(ctx, platform, domain.SyncOpClone, func(callCtx context.Context) error {
		id, err := client.CloneAdSet(callCtx, *sourceExternalID, record.Overrides)
		if err != nil {
			return err
		}
		clonedExternalID = id
		return nil
	})
	if opErr != nil {
		return markFailure(opErr)
	}

	if err := s.adSetRepo.SetPlatformExternalID(ctx, cloneRowID, platform, clonedExternalID); err != nil {
		return markFailure(errors.Wrap(err, "erro ao gravar id externo da cópia"))
	}
	if err := s.adSetRepo.SetPlatformStatus(ctx, cloneRowID, platform, domain.AdStatusActive); err != nil {
		return markFailure(errors.Wrap(err, "erro ao atualizar status da cópia"))
	}
	if err := s.syncRepo.MarkClonePlatformOutcome(ctx, record.ID, platform, true); err != nil {
		return errors.Wrap(err, "erro ao marcar conclusão da plataforma")
	}

	s.metrics.PlatformSyncOutcomes.WithLabelValues(string(platform), string(domain.SyncOpClone), "success").Inc()
	return nil
}

func (s *Service) settleCloneRecord(ctx context.Context, recordID string) error {
	record, err := s.syncRepo.GetCloneRecord(ctx, recordID)
	if err != nil {
		return errors.Wrap(err, "erro ao reler registro de clonagem")
	}
	if record == nil {
		return ErrRecordNotFound
	}
	if !record.Settled() || record.Status != domain.SyncStatusPending {
		return nil
	}

	if record.Succeeded() {
		if err := s.syncRepo.SettleCloneRecord(ctx, record.ID, domain.SyncStatusComplete, record.ClonedAdSetID); err != nil {
			return errors.Wrap(err, "erro ao liquidar registro de clonagem")
		}
		s.metrics.SyncRecordsSettled.WithLabelValues(string(domain.SyncOpClone), string(domain.SyncStatusComplete)).Inc()
		return nil
	}

	// Falha: a cópia pendente é arquivada e o ponteiro anulado
	if record.ClonedAdSetID != nil {
		if err := s.adSetRepo.ArchiveByIDs(ctx, []string{*record.ClonedAdSetID}); err != nil {
			logrus.WithError(err).WithField("record_id", record.ID).Error("Erro ao arquivar cópia órfã")
		}
	}
	if err := s.syncRepo.SettleCloneRecord(ctx, record.ID, domain.SyncStatusFailed, nil); err != nil {
		return errors.Wrap(err, "erro ao liquidar registro de clonagem")
	}
	s.metrics.SyncRecordsSettled.WithLabelValues(string(domain.SyncOpClone), string(domain.SyncStatusFailed)).Inc()
	return nil
}

// withRetry executa a chamada com backoff exponencial até o teto de tentativas.
// Cada tentativa tem seu próprio timeout de request.
func (s *Service) withRetry(ctx context.Context, platform domain.Platform, op domain.SyncOpType, call func(ctx context.Context) error) error {
	backoff := s.baseBackoff

	var lastErr error
	for attempt := 1; attempt <= s.maxAttempts; attempt++ {
		s.metrics.PlatformSyncAttempts.WithLabelValues(string(platform), string(op)).Inc()

		callCtx, cancel := context.WithTimeout(ctx, s.requestTimeout)
		lastErr = call(callCtx)
		cancel()

		if lastErr == nil {
			return nil
		}

		if attempt < s.maxAttempts {
			logrus.WithError(lastErr).WithFields(logrus.Fields{
				"platform": platform,
				"op":       op,
				"attempt":  attempt,
			}).Warn("Chamada à plataforma falhou, aguardando backoff")

			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(backoff):
			}
			backoff *= 2
		}
	}

	return lastErr
}

// pendingTargets retorna as plataformas alvo que ainda não resolveram a flag
// de conclusão; redespachar um registro nunca repete plataforma concluída
func pendingTargets(pc domain.PlatformCompletion) []domain.Platform {
	targets := make([]domain.Platform, 0, 2)
	if pc.Meta && pc.MetaComplete == nil {
		targets = append(targets, domain.PlatformMeta)
	}
	if pc.TikTok && pc.TikTokComplete == nil {
		targets = append(targets, domain.PlatformTikTok)
	}
	return targets
}

func platformExternalID(adSet *domain.AdSet, platform domain.Platform) *string {
	if platform == domain.PlatformTikTok {
		return adSet.TikTokExternalID
	}
	return adSet.MetaExternalID
}

// platformSpec especializa o spec neutro com o orçamento diário da plataforma
func platformSpec(base *domain.AdSetSpec, adCampaign *domain.AdCampaign, platform domain.Platform) *domain.AdSetSpec {
	spec := domain.AdSetSpec{}
	if base != nil {
		spec = *base
	}

	if spec.DailyBudget == "" {
		switch platform {
		case domain.PlatformMeta:
			if adCampaign.MetaDailyBudget != nil {
				spec.DailyBudget = adCampaign.MetaDailyBudget.String()
			}
		case domain.PlatformTikTok:
			if adCampaign.TikTokDailyBudget != nil {
				spec.DailyBudget = adCampaign.TikTokDailyBudget.String()
			}
		}
	}

	return &spec
}
