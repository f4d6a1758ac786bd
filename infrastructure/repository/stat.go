package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/vfg2006/campaign-orchestrator-api/infrastructure/database/postgres"
	"github.com/vfg2006/campaign-orchestrator-api/internal/domain"
)

const (
	statsTable = "stats st"
)

type StatRepository interface {
	// AggregateByAdIDs agrega as linhas de stats chaveadas por ad dentro da
	// janela [startDate, endDate]
	AggregateByAdIDs(ctx context.Context, adIDs []string, startDate, endDate time.Time) (map[string]*domain.AdPerformance, error)
	// SpendByAdIDs soma o gasto observado das linhas chaveadas pelos ads informados
	SpendByAdIDs(ctx context.Context, adIDs []string, startDate, endDate time.Time) (decimal.Decimal, error)
	// SaveOrUpdate faz o upsert de uma linha vinda do pipeline de ingestão
	SaveOrUpdate(ctx context.Context, stat *domain.Stat) error
}

type statRepository struct {
	conn postgres.Queryer
}

func NewStatRepository(conn postgres.Queryer) StatRepository {
	return &statRepository{conn: conn}
}

func (r *statRepository) AggregateByAdIDs(ctx context.Context, adIDs []string, startDate, endDate time.Time) (map[string]*domain.AdPerformance, error) {
	if len(adIDs) == 0 {
		return map[string]*domain.AdPerformance{}, nil
	}

	query, args, err := squirrel.
		Select(`st.ad_id, COALESCE(SUM(st.spend), 0), COALESCE(SUM(st.impressions), 0),
			COALESCE(SUM(st.clicks), 0), COALESCE(SUM(st.results), 0)`).
		From(statsTable).
		Where(squirrel.Eq{"st.ad_id": adIDs}).
		Where(squirrel.GtOrEq{"st.date": startDate.Format("2006-01-02")}).
		Where(squirrel.LtOrEq{"st.date": endDate.Format("2006-01-02")}).
		GroupBy("st.ad_id").
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

	performances := make(map[string]*domain.AdPerformance)
	for rows.Next() {
		perf := &domain.AdPerformance{}
		var spend string
		if err := rows.Scan(&perf.AdID, &spend, &perf.Impressions, &perf.Clicks, &perf.Results); err != nil {
			return nil, fmt.Errorf("erro ao escanear agregado de stats: %w", err)
		}
		perf.Spend, err = decimal.NewFromString(spend)
		if err != nil {
			return nil, fmt.Errorf("erro ao converter gasto agregado: %w", err)
		}
		performances[perf.AdID] = perf
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return performances, nil
}

func (r *statRepository) SpendByAdIDs(ctx context.Context, adIDs []string, startDate, endDate time.Time) (decimal.Decimal, error) {
	if len(adIDs) == 0 {
		return decimal.Zero, nil
	}

	query, args, err := squirrel.
		Select("COALESCE(SUM(st.spend), 0)").
		From(statsTable).
		Where(squirrel.Eq{"st.ad_id": adIDs}).
		Where(squirrel.GtOrEq{"st.date": startDate.Format("2006-01-02")}).
		Where(squirrel.LtOrEq{"st.date": endDate.Format("2006-01-02")}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return decimal.Zero, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var spend string
	if err := r.conn.QueryRow(ctx, query, args...).Scan(&spend); err != nil {
		if err == sql.ErrNoRows {
			return decimal.Zero, nil
		}
		return decimal.Zero, fmt.Errorf("erro ao escanear gasto: %w", err)
	}

	total, err := decimal.NewFromString(spend)
	if err != nil {
		return decimal.Zero, fmt.Errorf("erro ao converter gasto: %w", err)
	}

	return total, nil
}

func (r *statRepository) SaveOrUpdate(ctx context.Context, stat *domain.Stat) error {
	if stat.ID == "" {
		stat.ID = uuid.New().String()
	}

	query := squirrel.StatementBuilder.
		Insert("stats").
		Columns("id", "ad_id", "account_id", "playlist_id", "track_id", "date", "spend", "impressions", "clicks", "results").
		Values(
			stat.ID,
			stat.AdID,
			stat.AccountID,
			stat.PlaylistID,
			stat.TrackID,
			stat.Date.Format("2006-01-02"),
			stat.Spend.String(),
			stat.Impressions,
			stat.Clicks,
			stat.Results,
		).
		Suffix(`
			ON CONFLICT (ad_id, date) WHERE ad_id IS NOT NULL DO UPDATE SET
				spend = EXCLUDED.spend,
				impressions = EXCLUDED.impressions,
				clicks = EXCLUDED.clicks,
				results = EXCLUDED.results,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(ctx, sqlQuery, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}
