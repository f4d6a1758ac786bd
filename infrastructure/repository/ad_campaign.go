package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/campaign-orchestrator-api/infrastructure/database/postgres"
	"github.com/vfg2006/campaign-orchestrator-api/internal/domain"
)

const (
	adCampaignsTable = "ad_campaigns ac"
)

type AdCampaignRepository interface {
	// GetByID retorna a AdCampaign com os conjuntos candidatos de segmentação
	// e criativo hidratados
	GetByID(ctx context.Context, id string) (*domain.AdCampaign, error)
	GetByCampaignID(ctx context.Context, campaignID string) (*domain.AdCampaign, error)
}

type adCampaignRepository struct {
	conn postgres.Queryer
}

func NewAdCampaignRepository(conn postgres.Queryer) AdCampaignRepository {
	return &adCampaignRepository{conn: conn}
}

func (r *adCampaignRepository) GetByID(ctx context.Context, id string) (*domain.AdCampaign, error) {
	return r.getByWhere(ctx, squirrel.Eq{"ac.id": id})
}

func (r *adCampaignRepository) GetByCampaignID(ctx context.Context, campaignID string) (*domain.AdCampaign, error) {
	return r.getByWhere(ctx, squirrel.Eq{"ac.campaign_id": campaignID})
}

func (r *adCampaignRepository) getByWhere(ctx context.Context, where squirrel.Eq) (*domain.AdCampaign, error) {
	query, args, err := squirrel.
		Select(`ac.id, ac.campaign_id, ac.split_test_demos, ac.split_test_geo_groups,
			ac.split_test_interest_groups, ac.meta_daily_budget, ac.tiktok_daily_budget,
			ac.meta_lifetime_budget, ac.tiktok_lifetime_budget, ac.total_lifetime_budget,
			ac.link_url, ac.created_at`).
		From(adCampaignsTable).
		Where(where).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	adCampaign := &domain.AdCampaign{}
	var metaDaily, tiktokDaily, metaLifetime, tiktokLifetime, totalLifetime sql.NullString

	err = r.conn.QueryRow(ctx, query, args...).Scan(
		&adCampaign.ID,
		&adCampaign.CampaignID,
		&adCampaign.SplitTestDemos,
		&adCampaign.SplitTestGeoGroups,
		&adCampaign.SplitTestInterestGroups,
		&metaDaily,
		&tiktokDaily,
		&metaLifetime,
		&tiktokLifetime,
		&totalLifetime,
		&adCampaign.LinkURL,
		&adCampaign.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear ad campaign: %w", err)
	}

	if adCampaign.MetaDailyBudget, err = parseDecimal(metaDaily); err != nil {
		return nil, fmt.Errorf("erro ao converter orçamento: %w", err)
	}
	if adCampaign.TikTokDailyBudget, err = parseDecimal(tiktokDaily); err != nil {
		return nil, fmt.Errorf("erro ao converter orçamento: %w", err)
	}
	if adCampaign.MetaLifetimeBudget, err = parseDecimal(metaLifetime); err != nil {
		return nil, fmt.Errorf("erro ao converter orçamento: %w", err)
	}
	if adCampaign.TikTokLifetimeBudget, err = parseDecimal(tiktokLifetime); err != nil {
		return nil, fmt.Errorf("erro ao converter orçamento: %w", err)
	}
	if adCampaign.TotalLifetimeBudget, err = parseDecimal(totalLifetime); err != nil {
		return nil, fmt.Errorf("erro ao converter orçamento: %w", err)
	}

	if err := r.hydrateCandidates(ctx, adCampaign); err != nil {
		return nil, err
	}

	return adCampaign, nil
}

// hydrateCandidates carrega os conjuntos candidatos de cada dimensão através
// das tabelas de ligação da ad campaign
func (r *adCampaignRepository) hydrateCandidates(ctx context.Context, ac *domain.AdCampaign) error {
	if err := r.loadDemos(ctx, ac); err != nil {
		return err
	}
	if err := r.loadGeoGroups(ctx, ac); err != nil {
		return err
	}
	if err := r.loadInterestGroups(ctx, ac); err != nil {
		return err
	}
	if err := r.loadHeadlines(ctx, ac); err != nil {
		return err
	}
	return r.loadRenders(ctx, ac)
}

func (r *adCampaignRepository) loadDemos(ctx context.Context, ac *domain.AdCampaign) error {
	query, args, err := squirrel.
		Select("d.id, d.name, d.gender, d.min_age, d.max_age, d.team_id, d.public").
		From("demos d").
		Join("ad_campaign_demos acd ON acd.demo_id = d.id").
		Where(squirrel.Eq{"acd.ad_campaign_id": ac.ID}).
		OrderBy("acd.position ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("erro ao buscar demos: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var d domain.Demo
		if err := rows.Scan(&d.ID, &d.Name, &d.Gender, &d.MinAge, &d.MaxAge, &d.TeamID, &d.Public); err != nil {
			return fmt.Errorf("erro ao escanear demo: %w", err)
		}
		ac.Demos = append(ac.Demos, d)
	}
	return rows.Err()
}

func (r *adCampaignRepository) loadGeoGroups(ctx context.Context, ac *domain.AdCampaign) error {
	query, args, err := squirrel.
		Select("g.id, g.name, g.country_codes, g.team_id, g.public").
		From("geo_groups g").
		Join("ad_campaign_geo_groups acg ON acg.geo_group_id = g.id").
		Where(squirrel.Eq{"acg.ad_campaign_id": ac.ID}).
		OrderBy("acg.position ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("erro ao buscar geo groups: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var g domain.GeoGroup
		if err := rows.Scan(&g.ID, &g.Name, pq.Array(&g.CountryCodes), &g.TeamID, &g.Public); err != nil {
			return fmt.Errorf("erro ao escanear geo group: %w", err)
		}
		ac.GeoGroups = append(ac.GeoGroups, g)
	}
	return rows.Err()
}

func (r *adCampaignRepository) loadInterestGroups(ctx context.Context, ac *domain.AdCampaign) error {
	query, args, err := squirrel.
		Select("ig.id, ig.name, ig.team_id, ig.public").
		From("interest_groups ig").
		Join("ad_campaign_interest_groups acig ON acig.interest_group_id = ig.id").
		Where(squirrel.Eq{"acig.ad_campaign_id": ac.ID}).
		OrderBy("acig.position ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("erro ao buscar interest groups: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var ig domain.InterestGroup
		if err := rows.Scan(&ig.ID, &ig.Name, &ig.TeamID, &ig.Public); err != nil {
			return fmt.Errorf("erro ao escanear interest group: %w", err)
		}
		ac.InterestGroups = append(ac.InterestGroups, ig)
	}
	return rows.Err()
}

func (r *adCampaignRepository) loadHeadlines(ctx context.Context, ac *domain.AdCampaign) error {
	query, args, err := squirrel.
		Select("h.id, h.text, h.team_id, h.public").
		From("headlines h").
		Join("ad_campaign_headlines ach ON ach.headline_id = h.id").
		Where(squirrel.Eq{"ach.ad_campaign_id": ac.ID}).
		OrderBy("ach.position ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("erro ao buscar headlines: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var h domain.Headline
		if err := rows.Scan(&h.ID, &h.Text, &h.TeamID, &h.Public); err != nil {
			return fmt.Errorf("erro ao escanear headline: %w", err)
		}
		ac.Headlines = append(ac.Headlines, h)
	}
	return rows.Err()
}

func (r *adCampaignRepository) loadRenders(ctx context.Context, ac *domain.AdCampaign) error {
	query, args, err := squirrel.
		Select("vr.id, vr.url, vr.status, vr.created_at").
		From("vid_renders vr").
		Where(squirrel.Eq{"vr.ad_campaign_id": ac.ID, "vr.status": domain.RenderStatusReady}).
		OrderBy("vr.created_at ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("erro ao buscar vid renders: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var vr domain.VidRender
		if err := rows.Scan(&vr.ID, &vr.URL, &vr.Status, &vr.CreatedAt); err != nil {
			return fmt.Errorf("erro ao escanear vid render: %w", err)
		}
		ac.VidRenders = append(ac.VidRenders, vr)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	query, args, err = squirrel.
		Select("tr.id, tr.url, tr.status, tr.created_at").
		From("track_renders tr").
		Where(squirrel.Eq{"tr.ad_campaign_id": ac.ID, "tr.status": domain.RenderStatusReady}).
		OrderBy("tr.created_at ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	trackRows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("erro ao buscar track renders: %w", err)
	}
	defer trackRows.Close()

	for trackRows.Next() {
		var tr domain.TrackRender
		if err := trackRows.Scan(&tr.ID, &tr.URL, &tr.Status, &tr.CreatedAt); err != nil {
			return fmt.Errorf("erro ao escanear track render: %w", err)
		}
		ac.TrackRenders = append(ac.TrackRenders, tr)
	}
	if err := trackRows.Err(); err != nil {
		return err
	}

	query, args, err = squirrel.
		Select("pcr.id, pcr.url, pcr.status, pcr.created_at").
		From("playlist_cover_renders pcr").
		Where(squirrel.Eq{"pcr.ad_campaign_id": ac.ID, "pcr.status": domain.RenderStatusReady}).
		OrderBy("pcr.created_at ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	coverRows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("erro ao buscar playlist cover renders: %w", err)
	}
	defer coverRows.Close()

	for coverRows.Next() {
		var pcr domain.PlaylistCoverRender
		if err := coverRows.Scan(&pcr.ID, &pcr.URL, &pcr.Status, &pcr.CreatedAt); err != nil {
			return fmt.Errorf("erro ao escanear playlist cover render: %w", err)
		}
		ac.PlaylistCoverRenders = append(ac.PlaylistCoverRenders, pcr)
	}
	return coverRows.Err()
}
