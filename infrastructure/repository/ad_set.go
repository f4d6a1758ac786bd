package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/campaign-orchestrator-api/infrastructure/database/postgres"
	"github.com/vfg2006/campaign-orchestrator-api/internal/domain"
)

const (
	adSetsTable = "ad_sets s"
)

type AdSetRepository interface {
	GetByID(ctx context.Context, id string) (*domain.AdSet, error)
	// ListByAdCampaignID retorna todos os AdSets, inclusive os arquivados,
	// para que o diff da matriz enxergue o conjunto completo
	ListByAdCampaignID(ctx context.Context, adCampaignID string) ([]*domain.AdSet, error)
	// CreateWithAudience insere a audience e o ad set na mesma transação
	CreateWithAudience(ctx context.Context, adSet *domain.AdSet, audience *domain.Audience) error
	// CloneRow insere uma cópia pendente do ad set de origem, reusando a mesma
	// audience; os ids externos da cópia chegam depois, plataforma a plataforma
	CloneRow(ctx context.Context, sourceID, cloneID string) error
	ArchiveByIDs(ctx context.Context, ids []string) error
	SetPlatformStatus(ctx context.Context, id string, platform domain.Platform, status domain.AdStatus) error
	SetPlatformExternalID(ctx context.Context, id string, platform domain.Platform, externalID string) error
}

type adSetRepository struct {
	conn postgres.Conn
}

func NewAdSetRepository(conn postgres.Conn) AdSetRepository {
	return &adSetRepository{conn: conn}
}

const adSetColumns = `s.id, s.ad_campaign_id, s.audience_id, s.matrix_key, s.meta_status, s.tiktok_status,
		s.meta_external_id, s.tiktok_external_id, s.fb_feed, s.ig_feed, s.ig_stories, s.tiktok_feed,
		s.archived, s.archived_at, s.created_at`

func (r *adSetRepository) GetByID(ctx context.Context, id string) (*domain.AdSet, error) {
	query, args, err := squirrel.
		Select(adSetColumns).
		From(adSetsTable).
		Where(squirrel.Eq{"s.id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	adSet, err := scanAdSet(r.conn.QueryRow(ctx, query, args...))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear ad set: %w", err)
	}

	return adSet, nil
}

func (r *adSetRepository) ListByAdCampaignID(ctx context.Context, adCampaignID string) ([]*domain.AdSet, error) {
	query, args, err := squirrel.
		Select(adSetColumns).
		From(adSetsTable).
		Where(squirrel.Eq{"s.ad_campaign_id": adCampaignID}).
		OrderBy("s.created_at ASC", "s.id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	adSets := make([]*domain.AdSet, 0)
	for rows.Next() {
		adSet, err := scanAdSet(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear ad set: %w", err)
		}
		adSets = append(adSets, adSet)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return adSets, nil
}

func (r *adSetRepository) CreateWithAudience(ctx context.Context, adSet *domain.AdSet, audience *domain.Audience) error {
	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		audienceQuery, audienceArgs, err := squirrel.StatementBuilder.
			Insert("audiences").
			Columns(
				"id", "ad_campaign_id", "demo_id", "geo_group_ids",
				"include_interest_group_ids", "exclude_interest_group_ids",
				"include_vid_views_group_ids", "exclude_vid_views_group_ids", "created_at",
			).
			Values(
				audience.ID,
				audience.AdCampaignID,
				audience.DemoID,
				pq.Array(audience.GeoGroupIDs),
				pq.Array(audience.IncludeInterestGroupIDs),
				pq.Array(audience.ExcludeInterestGroupIDs),
				pq.Array(audience.IncludeVidViewsGroupIDs),
				pq.Array(audience.ExcludeVidViewsGroupIDs),
				audience.CreatedAt,
			).
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return fmt.Errorf("erro ao construir a query de audience: %w", err)
		}

		if _, err := tx.ExecContext(ctx, audienceQuery, audienceArgs...); err != nil {
			return fmt.Errorf("erro ao inserir audience: %w", err)
		}

		adSetQuery, adSetArgs, err := squirrel.StatementBuilder.
			Insert("ad_sets").
			Columns(
				"id", "ad_campaign_id", "audience_id", "matrix_key",
				"meta_status", "tiktok_status", "fb_feed", "ig_feed", "ig_stories",
				"tiktok_feed", "archived", "created_at",
			).
			Values(
				adSet.ID,
				adSet.AdCampaignID,
				adSet.AudienceID,
				adSet.MatrixKey,
				adSet.MetaStatus,
				adSet.TikTokStatus,
				adSet.FBFeed,
				adSet.IGFeed,
				adSet.IGStories,
				adSet.TikTokFeed,
				adSet.Archived,
				adSet.CreatedAt,
			).
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return fmt.Errorf("erro ao construir a query de ad set: %w", err)
		}

		if _, err := tx.ExecContext(ctx, adSetQuery, adSetArgs...); err != nil {
			return fmt.Errorf("erro ao inserir ad set: %w", err)
		}

		return nil
	})
}

func (r *adSetRepository) CloneRow(ctx context.Context, sourceID, cloneID string) error {
	query := `
		INSERT INTO ad_sets (id, ad_campaign_id, audience_id, matrix_key, meta_status, tiktok_status,
			fb_feed, ig_feed, ig_stories, tiktok_feed, archived, created_at)
		SELECT $1, ad_campaign_id, audience_id, matrix_key || '~' || $1, $2, $2,
			fb_feed, ig_feed, ig_stories, tiktok_feed, FALSE, NOW()
		FROM ad_sets WHERE id = $3`

	result, err := r.conn.Exec(ctx, query, cloneID, domain.AdStatusPending, sourceID)
	if err != nil {
		return fmt.Errorf("erro ao clonar linha de ad set: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("erro ao verificar linhas afetadas: %w", err)
	}
	if affected == 0 {
		return sql.ErrNoRows
	}

	return nil
}

func (r *adSetRepository) ArchiveByIDs(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}

	query, args, err := squirrel.StatementBuilder.
		Update("ad_sets").
		Set("archived", true).
		Set("archived_at", time.Now().UTC()).
		Set("meta_status", domain.AdStatusArchived).
		Set("tiktok_status", domain.AdStatusArchived).
		Where(squirrel.Eq{"id": ids}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao arquivar ad sets: %w", err)
	}

	return nil
}

func (r *adSetRepository) SetPlatformStatus(ctx context.Context, id string, platform domain.Platform, status domain.AdStatus) error {
	column := "meta_status"
	if platform == domain.PlatformTikTok {
		column = "tiktok_status"
	}

	query, args, err := squirrel.StatementBuilder.
		Update("ad_sets").
		Set(column, status).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao atualizar status do ad set: %w", err)
	}

	return nil
}

func (r *adSetRepository) SetPlatformExternalID(ctx context.Context, id string, platform domain.Platform, externalID string) error {
	column := "meta_external_id"
	if platform == domain.PlatformTikTok {
		column = "tiktok_external_id"
	}

	query, args, err := squirrel.StatementBuilder.
		Update("ad_sets").
		Set(column, externalID).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao atualizar external id do ad set: %w", err)
	}

	return nil
}

func scanAdSet(row rowScanner) (*domain.AdSet, error) {
	adSet := &domain.AdSet{}
	err := row.Scan(
		&adSet.ID,
		&adSet.AdCampaignID,
		&adSet.AudienceID,
		&adSet.MatrixKey,
		&adSet.MetaStatus,
		&adSet.TikTokStatus,
		&adSet.MetaExternalID,
		&adSet.TikTokExternalID,
		&adSet.FBFeed,
		&adSet.IGFeed,
		&adSet.IGStories,
		&adSet.TikTokFeed,
		&adSet.Archived,
		&adSet.ArchivedAt,
		&adSet.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return adSet, nil
}
