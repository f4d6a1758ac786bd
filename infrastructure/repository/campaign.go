package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/vfg2006/campaign-orchestrator-api/infrastructure/database/postgres"
	"github.com/vfg2006/campaign-orchestrator-api/internal/domain"
	"github.com/vfg2006/campaign-orchestrator-api/pkg/utils"
)

const (
	campaignsTable       = "campaigns c"
	campaignUpdatesTable = "campaign_update_records cur"

	pqUniqueViolation = "23505"
)

// ErrConcurrentAppend indica que outro escritor estendeu o mesmo registro
// primeiro; o chamador deve reler o log e tentar de novo
var ErrConcurrentAppend = errors.New("registro do log já foi estendido por outro escritor")

type CampaignRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Campaign, error)
	// LatestUpdateRecord retorna o registro mais recente do log da campanha,
	// ou nil quando o log está vazio
	LatestUpdateRecord(ctx context.Context, campaignID string) (*domain.CampaignUpdateRecord, error)
	// AppendUpdateRecord insere um registro que estende extends_record_id.
	// Retorna ErrConcurrentAppend quando o registro estendido já tem sucessor.
	AppendUpdateRecord(ctx context.Context, record *domain.CampaignUpdateRecord) (*domain.CampaignUpdateRecord, error)
	ListUpdateRecords(ctx context.Context, campaignID string) ([]*domain.CampaignUpdateRecord, error)
	// ListIDsByStage retorna as campanhas cujo último registro está no estágio dado
	ListIDsByStage(ctx context.Context, stage domain.CampaignStage) ([]string, error)
}

type campaignRepository struct {
	conn postgres.Queryer
}

func NewCampaignRepository(conn postgres.Queryer) CampaignRepository {
	return &campaignRepository{conn: conn}
}

func (r *campaignRepository) GetByID(ctx context.Context, id string) (*domain.Campaign, error) {
	query, args, err := squirrel.
		Select("c.id, c.type, c.created_by, c.artist_id, c.track_id, c.playlist_id, c.created_at").
		From(campaignsTable).
		Where(squirrel.Eq{"c.id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	campaign := &domain.Campaign{}
	err = r.conn.QueryRow(ctx, query, args...).Scan(
		&campaign.ID,
		&campaign.Type,
		&campaign.CreatedBy,
		&campaign.ArtistID,
		&campaign.TrackID,
		&campaign.PlaylistID,
		&campaign.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear campanha: %w", err)
	}

	return campaign, nil
}

const updateRecordColumns = `cur.id, cur.campaign_id, cur.extends_record_id, cur.created_at, cur.created_by,
		cur.stage, cur.daily_budget, cur.trigger_fraction, cur.projected_cost_per_metric,
		cur.projected_monthly_metric, cur.projected_monthly_ad_spend, cur.projected_monthly_maintenance_spend,
		cur.projected_monthly_total_spend, cur.projected_monthly_revenue, cur.projected_monthly_net`

func (r *campaignRepository) LatestUpdateRecord(ctx context.Context, campaignID string) (*domain.CampaignUpdateRecord, error) {
	query, args, err := squirrel.
		Select(updateRecordColumns).
		From(campaignUpdatesTable).
		Where(squirrel.Eq{"cur.campaign_id": campaignID}).
		OrderBy("cur.created_at DESC", "cur.id DESC").
		Limit(1).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	record, err := r.scanUpdateRecord(r.conn.QueryRow(ctx, query, args...))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear registro de atualização: %w", err)
	}

	return record, nil
}

func (r *campaignRepository) AppendUpdateRecord(ctx context.Context, record *domain.CampaignUpdateRecord) (*domain.CampaignUpdateRecord, error) {
	if record.ID == "" {
		id, err := utils.GenerateID()
		if err != nil {
			return nil, fmt.Errorf("erro ao gerar id do registro: %w", err)
		}
		record.ID = id
	}
	record.CreatedAt = time.Now().UTC()

	query, args, err := squirrel.StatementBuilder.
		Insert("campaign_update_records").
		Columns(
			"id", "campaign_id", "extends_record_id", "created_at", "created_by",
			"stage", "daily_budget", "trigger_fraction", "projected_cost_per_metric",
			"projected_monthly_metric", "projected_monthly_ad_spend",
			"projected_monthly_maintenance_spend", "projected_monthly_total_spend",
			"projected_monthly_revenue", "projected_monthly_net",
		).
		Values(
			record.ID,
			record.CampaignID,
			record.ExtendsRecordID,
			record.CreatedAt,
			record.CreatedBy,
			record.Stage,
			decimalOrNil(record.DailyBudget),
			decimalOrNil(record.TriggerFraction),
			decimalOrNil(record.ProjectedCostPerMetric),
			record.ProjectedMonthlyMetric,
			decimalOrNil(record.ProjectedMonthlyAdSpend),
			decimalOrNil(record.ProjectedMonthlyMaintenanceSpend),
			decimalOrNil(record.ProjectedMonthlyTotalSpend),
			decimalOrNil(record.ProjectedMonthlyRevenue),
			decimalOrNil(record.ProjectedMonthlyNet),
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(ctx, query, args...)
	if err != nil {
		// O índice único (campaign_id, extends_record_id) transforma a perda
		// da corrida de compare-and-append em violação de unicidade
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == pqUniqueViolation {
			return nil, ErrConcurrentAppend
		}
		return nil, fmt.Errorf("erro ao inserir registro de atualização: %w", err)
	}

	return record, nil
}

func (r *campaignRepository) ListUpdateRecords(ctx context.Context, campaignID string) ([]*domain.CampaignUpdateRecord, error) {
	query, args, err := squirrel.
		Select(updateRecordColumns).
		From(campaignUpdatesTable).
		Where(squirrel.Eq{"cur.campaign_id": campaignID}).
		OrderBy("cur.created_at ASC", "cur.id ASC").
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

	records := make([]*domain.CampaignUpdateRecord, 0)
	for rows.Next() {
		record, err := r.scanUpdateRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear registro de atualização: %w", err)
		}
		records = append(records, record)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return records, nil
}

func (r *campaignRepository) ListIDsByStage(ctx context.Context, stage domain.CampaignStage) ([]string, error) {
	// DISTINCT ON pega o registro mais recente de cada campanha; o filtro de
	// estágio é aplicado sobre essa projeção
	query := `
		SELECT latest.campaign_id
		FROM (
			SELECT DISTINCT ON (campaign_id) campaign_id, stage
			FROM campaign_update_records
			ORDER BY campaign_id, created_at DESC, id DESC
		) latest
		WHERE latest.stage = $1`

	rows, err := r.conn.Query(ctx, query, string(stage))
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	ids := make([]string, 0)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("erro ao escanear id de campanha: %w", err)
		}
		ids = append(ids, id)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return ids, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *campaignRepository) scanUpdateRecord(row rowScanner) (*domain.CampaignUpdateRecord, error) {
	record := &domain.CampaignUpdateRecord{}
	var stage *string
	var dailyBudget, triggerFraction, costPerMetric sql.NullString
	var adSpend, maintenanceSpend, totalSpend, revenue, net sql.NullString

	err := row.Scan(
		&record.ID,
		&record.CampaignID,
		&record.ExtendsRecordID,
		&record.CreatedAt,
		&record.CreatedBy,
		&stage,
		&dailyBudget,
		&triggerFraction,
		&costPerMetric,
		&record.ProjectedMonthlyMetric,
		&adSpend,
		&maintenanceSpend,
		&totalSpend,
		&revenue,
		&net,
	)
	if err != nil {
		return nil, err
	}

	if stage != nil {
		s := domain.CampaignStage(*stage)
		record.Stage = &s
	}

	record.DailyBudget, err = parseDecimal(dailyBudget)
	if err == nil {
		record.TriggerFraction, err = parseDecimal(triggerFraction)
	}
	if err == nil {
		record.ProjectedCostPerMetric, err = parseDecimal(costPerMetric)
	}
	if err == nil {
		record.ProjectedMonthlyAdSpend, err = parseDecimal(adSpend)
	}
	if err == nil {
		record.ProjectedMonthlyMaintenanceSpend, err = parseDecimal(maintenanceSpend)
	}
	if err == nil {
		record.ProjectedMonthlyTotalSpend, err = parseDecimal(totalSpend)
	}
	if err == nil {
		record.ProjectedMonthlyRevenue, err = parseDecimal(revenue)
	}
	if err == nil {
		record.ProjectedMonthlyNet, err = parseDecimal(net)
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao converter valor decimal: %w", err)
	}

	return record, nil
}

func parseDecimal(v sql.NullString) (*decimal.Decimal, error) {
	if !v.Valid {
		return nil, nil
	}
	d, err := decimal.NewFromString(v.String)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func decimalOrNil(d *decimal.Decimal) interface{} {
	if d == nil {
		return nil
	}
	return d.String()
}
