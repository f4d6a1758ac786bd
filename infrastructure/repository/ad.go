package repository

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/campaign-orchestrator-api/infrastructure/database/postgres"
	"github.com/vfg2006/campaign-orchestrator-api/internal/domain"
)

const (
	adsTable       = "ads a"
	creativesTable = "ad_creatives cr"
)

type AdRepository interface {
	ListByAdSetID(ctx context.Context, adSetID string) ([]*domain.Ad, error)
	Create(ctx context.Context, ad *domain.Ad) error
	// SetPassedTest grava a determinação tri-state do vencedor; passed nil
	// limpa uma determinação anterior
	SetPassedTest(ctx context.Context, adID string, passed *bool) error

	CreateCreative(ctx context.Context, creative *domain.AdCreative) error
	ListCreativesByAdCampaignID(ctx context.Context, adCampaignID string) ([]*domain.AdCreative, error)
}

type adRepository struct {
	conn postgres.Queryer
}

func NewAdRepository(conn postgres.Queryer) AdRepository {
	return &adRepository{conn: conn}
}

func (r *adRepository) ListByAdSetID(ctx context.Context, adSetID string) ([]*domain.Ad, error) {
	query, args, err := squirrel.
		Select("a.id, a.ad_set_id, a.ad_creative_id, a.passed_test, a.created_at").
		From(adsTable).
		Where(squirrel.Eq{"a.ad_set_id": adSetID}).
		OrderBy("a.created_at ASC", "a.id ASC").
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

	ads := make([]*domain.Ad, 0)
	for rows.Next() {
		ad := &domain.Ad{}
		if err := rows.Scan(&ad.ID, &ad.AdSetID, &ad.AdCreativeID, &ad.PassedTest, &ad.CreatedAt); err != nil {
			return nil, fmt.Errorf("erro ao escanear ad: %w", err)
		}
		ads = append(ads, ad)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return ads, nil
}

func (r *adRepository) Create(ctx context.Context, ad *domain.Ad) error {
	query, args, err := squirrel.StatementBuilder.
		Insert("ads").
		Columns("id", "ad_set_id", "ad_creative_id", "passed_test", "created_at").
		Values(ad.ID, ad.AdSetID, ad.AdCreativeID, ad.PassedTest, ad.CreatedAt).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao inserir ad: %w", err)
	}

	return nil
}

func (r *adRepository) SetPassedTest(ctx context.Context, adID string, passed *bool) error {
	query, args, err := squirrel.StatementBuilder.
		Update("ads").
		Set("passed_test", passed).
		Where(squirrel.Eq{"id": adID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao atualizar passed_test: %w", err)
	}

	return nil
}

func (r *adRepository) CreateCreative(ctx context.Context, creative *domain.AdCreative) error {
	query, args, err := squirrel.StatementBuilder.
		Insert("ad_creatives").
		Columns(
			"id", "ad_campaign_id", "headline_id", "vid_render_id",
			"track_render_id", "playlist_cover_render_id", "link_url",
			"creative_key", "created_at",
		).
		Values(
			creative.ID,
			creative.AdCampaignID,
			creative.HeadlineID,
			creative.VidRenderID,
			creative.TrackRenderID,
			creative.PlaylistCoverRenderID,
			creative.LinkURL,
			creative.CreativeKey,
			creative.CreatedAt,
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao inserir ad creative: %w", err)
	}

	return nil
}

func (r *adRepository) ListCreativesByAdCampaignID(ctx context.Context, adCampaignID string) ([]*domain.AdCreative, error) {
	query, args, err := squirrel.
		Select(`cr.id, cr.ad_campaign_id, cr.headline_id, cr.vid_render_id,
			cr.track_render_id, cr.playlist_cover_render_id, cr.link_url, cr.creative_key, cr.created_at`).
		From(creativesTable).
		Where(squirrel.Eq{"cr.ad_campaign_id": adCampaignID}).
		OrderBy("cr.created_at ASC", "cr.id ASC").
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

	creatives := make([]*domain.AdCreative, 0)
	for rows.Next() {
		creative := &domain.AdCreative{}
		err := rows.Scan(
			&creative.ID,
			&creative.AdCampaignID,
			&creative.HeadlineID,
			&creative.VidRenderID,
			&creative.TrackRenderID,
			&creative.PlaylistCoverRenderID,
			&creative.LinkURL,
			&creative.CreativeKey,
			&creative.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear ad creative: %w", err)
		}
		creatives = append(creatives, creative)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return creatives, nil
}
