package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/campaign-orchestrator-api/infrastructure/database/postgres"
	"github.com/vfg2006/campaign-orchestrator-api/internal/domain"
)

const (
	cloneRecordsTable  = "ad_set_clone_records scr"
	updateRecordsTable = "ad_set_update_records sur"
)

// SyncRecordRepository é a superfície insert-only dos registros de
// sincronização por plataforma. Não há API de update genérico nem delete: as
// únicas mutações permitidas são a resolução das flags de conclusão por
// plataforma e a liquidação do status, que fazem parte da própria operação.
type SyncRecordRepository interface {
	CreateCloneRecord(ctx context.Context, record *domain.AdSetCloneRecord) error
	CreateUpdateRecord(ctx context.Context, record *domain.AdSetUpdateRecord) error

	GetCloneRecord(ctx context.Context, id string) (*domain.AdSetCloneRecord, error)
	GetUpdateRecord(ctx context.Context, id string) (*domain.AdSetUpdateRecord, error)

	// MarkClonePlatformOutcome resolve a flag de conclusão de uma plataforma
	// alvo do registro de clonagem
	MarkClonePlatformOutcome(ctx context.Context, id string, platform domain.Platform, succeeded bool) error
	MarkUpdatePlatformOutcome(ctx context.Context, id string, platform domain.Platform, succeeded bool) error

	// SettleCloneRecord grava o status terminal; só pode ser chamado depois
	// que toda plataforma alvo resolveu sua flag de conclusão
	SettleCloneRecord(ctx context.Context, id string, status domain.SyncRecordStatus, clonedAdSetID *string) error
	SettleUpdateRecord(ctx context.Context, id string, status domain.SyncRecordStatus) error

	ListUnsettledCloneRecords(ctx context.Context) ([]*domain.AdSetCloneRecord, error)
	ListUnsettledUpdateRecords(ctx context.Context) ([]*domain.AdSetUpdateRecord, error)
}

type syncRecordRepository struct {
	conn postgres.Queryer
}

func NewSyncRecordRepository(conn postgres.Queryer) SyncRecordRepository {
	return &syncRecordRepository{conn: conn}
}

func (r *syncRecordRepository) CreateCloneRecord(ctx context.Context, record *domain.AdSetCloneRecord) error {
	var overridesJSON []byte
	var err error
	if record.Overrides != nil {
		overridesJSON, err = json.Marshal(record.Overrides)
		if err != nil {
			return fmt.Errorf("erro ao serializar overrides para JSON: %w", err)
		}
	}

	query, args, err := squirrel.StatementBuilder.
		Insert("ad_set_clone_records").
		Columns(
			"id", "ad_set_id", "meta", "meta_complete", "meta_success",
			"tiktok", "tiktok_complete", "tiktok_success",
			"status", "cloned_ad_set_id", "overrides", "created_at",
		).
		Values(
			record.ID,
			record.AdSetID,
			record.Meta,
			record.MetaComplete,
			record.MetaSuccess,
			record.TikTok,
			record.TikTokComplete,
			record.TikTokSuccess,
			record.Status,
			record.ClonedAdSetID,
			overridesJSON,
			record.CreatedAt,
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao inserir registro de clonagem: %w", err)
	}

	return nil
}

func (r *syncRecordRepository) CreateUpdateRecord(ctx context.Context, record *domain.AdSetUpdateRecord) error {
	var specJSON []byte
	var err error
	if record.Spec != nil {
		specJSON, err = json.Marshal(record.Spec)
		if err != nil {
			return fmt.Errorf("erro ao serializar spec para JSON: %w", err)
		}
	}

	query, args, err := squirrel.StatementBuilder.
		Insert("ad_set_update_records").
		Columns(
			"id", "ad_set_id", "op_type", "meta", "meta_complete", "meta_success",
			"tiktok", "tiktok_complete", "tiktok_success", "status", "spec", "created_at",
		).
		Values(
			record.ID,
			record.AdSetID,
			record.OpType,
			record.Meta,
			record.MetaComplete,
			record.MetaSuccess,
			record.TikTok,
			record.TikTokComplete,
			record.TikTokSuccess,
			record.Status,
			specJSON,
			record.CreatedAt,
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao inserir registro de atualização: %w", err)
	}

	return nil
}

const cloneRecordColumns = `scr.id, scr.ad_set_id, scr.meta, scr.meta_complete, scr.meta_success,
		scr.tiktok, scr.tiktok_complete, scr.tiktok_success, scr.status, scr.cloned_ad_set_id,
		scr.overrides, scr.created_at`

func (r *syncRecordRepository) GetCloneRecord(ctx context.Context, id string) (*domain.AdSetCloneRecord, error) {
	query, args, err := squirrel.
		Select(cloneRecordColumns).
		From(cloneRecordsTable).
		Where(squirrel.Eq{"scr.id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	record, err := scanCloneRecord(r.conn.QueryRow(ctx, query, args...))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear registro de clonagem: %w", err)
	}

	return record, nil
}

const updateRecordTableColumns = `sur.id, sur.ad_set_id, sur.op_type, sur.meta, sur.meta_complete,
		sur.meta_success, sur.tiktok, sur.tiktok_complete, sur.tiktok_success, sur.status,
		sur.spec, sur.created_at`

func (r *syncRecordRepository) GetUpdateRecord(ctx context.Context, id string) (*domain.AdSetUpdateRecord, error) {
	query, args, err := squirrel.
		Select(updateRecordTableColumns).
		From(updateRecordsTable).
		Where(squirrel.Eq{"sur.id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	record, err := scanUpdateRecord(r.conn.QueryRow(ctx, query, args...))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear registro de atualização: %w", err)
	}

	return record, nil
}

func (r *syncRecordRepository) MarkClonePlatformOutcome(ctx context.Context, id string, platform domain.Platform, succeeded bool) error {
	return r.markOutcome(ctx, "ad_set_clone_records", id, platform, succeeded)
}

func (r *syncRecordRepository) MarkUpdatePlatformOutcome(ctx context.Context, id string, platform domain.Platform, succeeded bool) error {
	return r.markOutcome(ctx, "ad_set_update_records", id, platform, succeeded)
}

func (r *syncRecordRepository) markOutcome(ctx context.Context, table, id string, platform domain.Platform, succeeded bool) error {
	completeColumn, successColumn := "meta_complete", "meta_success"
	if platform == domain.PlatformTikTok {
		completeColumn, successColumn = "tiktok_complete", "tiktok_success"
	}

	query, args, err := squirrel.StatementBuilder.
		Update(table).
		Set(completeColumn, true).
		Set(successColumn, succeeded).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao resolver plataforma do registro: %w", err)
	}

	return nil
}

func (r *syncRecordRepository) SettleCloneRecord(ctx context.Context, id string, status domain.SyncRecordStatus, clonedAdSetID *string) error {
	// A cláusula de guarda garante no banco que nenhum status terminal é
	// gravado enquanto alguma plataforma alvo ainda não resolveu
	query := `
		UPDATE ad_set_clone_records
		SET status = $1, cloned_ad_set_id = $2
		WHERE id = $3
		  AND (NOT meta OR meta_complete IS NOT NULL)
		  AND (NOT tiktok OR tiktok_complete IS NOT NULL)`

	result, err := r.conn.Exec(ctx, query, string(status), clonedAdSetID, id)
	if err != nil {
		return fmt.Errorf("erro ao liquidar registro de clonagem: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("registro de clonagem %s não pode ser liquidado antes de todas as plataformas resolverem", id)
	}

	return nil
}

func (r *syncRecordRepository) SettleUpdateRecord(ctx context.Context, id string, status domain.SyncRecordStatus) error {
	query := `
		UPDATE ad_set_update_records
		SET status = $1
		WHERE id = $2
		  AND (NOT meta OR meta_complete IS NOT NULL)
		  AND (NOT tiktok OR tiktok_complete IS NOT NULL)`

	result, err := r.conn.Exec(ctx, query, string(status), id)
	if err != nil {
		return fmt.Errorf("erro ao liquidar registro de atualização: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("registro de atualização %s não pode ser liquidado antes de todas as plataformas resolverem", id)
	}

	return nil
}

func (r *syncRecordRepository) ListUnsettledCloneRecords(ctx context.Context) ([]*domain.AdSetCloneRecord, error) {
	query, args, err := squirrel.
		Select(cloneRecordColumns).
		From(cloneRecordsTable).
		Where(squirrel.Eq{"scr.status": domain.SyncStatusPending}).
		OrderBy("scr.created_at ASC").
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

	records := make([]*domain.AdSetCloneRecord, 0)
	for rows.Next() {
		record, err := scanCloneRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear registro de clonagem: %w", err)
		}
		records = append(records, record)
	}

	return records, rows.Err()
}

func (r *syncRecordRepository) ListUnsettledUpdateRecords(ctx context.Context) ([]*domain.AdSetUpdateRecord, error) {
	query, args, err := squirrel.
		Select(updateRecordTableColumns).
		From(updateRecordsTable).
		Where(squirrel.Eq{"sur.status": domain.SyncStatusPending}).
		OrderBy("sur.created_at ASC").
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

	records := make([]*domain.AdSetUpdateRecord, 0)
	for rows.Next() {
		record, err := scanUpdateRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear registro de atualização: %w", err)
		}
		records = append(records, record)
	}

	return records, rows.Err()
}

func scanCloneRecord(row rowScanner) (*domain.AdSetCloneRecord, error) {
	record := &domain.AdSetCloneRecord{}
	var overridesJSON []byte

	err := row.Scan(
		&record.ID,
		&record.AdSetID,
		&record.Meta,
		&record.MetaComplete,
		&record.MetaSuccess,
		&record.TikTok,
		&record.TikTokComplete,
		&record.TikTokSuccess,
		&record.Status,
		&record.ClonedAdSetID,
		&overridesJSON,
		&record.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if len(overridesJSON) > 0 {
		overrides := &domain.AdSetOverrides{}
		if err := json.Unmarshal(overridesJSON, overrides); err != nil {
			return nil, fmt.Errorf("erro ao deserializar JSON de overrides: %w", err)
		}
		record.Overrides = overrides
	}

	return record, nil
}

func scanUpdateRecord(row rowScanner) (*domain.AdSetUpdateRecord, error) {
	record := &domain.AdSetUpdateRecord{}
	var specJSON []byte

	err := row.Scan(
		&record.ID,
		&record.AdSetID,
		&record.OpType,
		&record.Meta,
		&record.MetaComplete,
		&record.MetaSuccess,
		&record.TikTok,
		&record.TikTokComplete,
		&record.TikTokSuccess,
		&record.Status,
		&specJSON,
		&record.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if len(specJSON) > 0 {
		spec := &domain.AdSetSpec{}
		if err := json.Unmarshal(specJSON, spec); err != nil {
			return nil, fmt.Errorf("erro ao deserializar JSON de spec: %w", err)
		}
		record.Spec = spec
	}

	return record, nil
}
