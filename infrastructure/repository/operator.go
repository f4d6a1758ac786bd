package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/campaign-orchestrator-api/infrastructure/database/postgres"
	"github.com/vfg2006/campaign-orchestrator-api/internal/domain"
)

const (
	operatorsTable = "operators o"
)

type OperatorRepository interface {
	GetByEmail(ctx context.Context, email string) (*domain.Operator, error)
	GetByID(ctx context.Context, id string) (*domain.Operator, error)
}

type operatorRepository struct {
	conn postgres.Queryer
}

func NewOperatorRepository(conn postgres.Queryer) OperatorRepository {
	return &operatorRepository{conn: conn}
}

func (r *operatorRepository) GetByEmail(ctx context.Context, email string) (*domain.Operator, error) {
	return r.getByWhere(ctx, squirrel.Eq{"o.email": email})
}

func (r *operatorRepository) GetByID(ctx context.Context, id string) (*domain.Operator, error) {
	return r.getByWhere(ctx, squirrel.Eq{"o.id": id})
}

func (r *operatorRepository) getByWhere(ctx context.Context, where squirrel.Eq) (*domain.Operator, error) {
	query, args, err := squirrel.
		Select("o.id, o.name, o.email, o.password_hash, o.active, o.automation, o.team_id, o.created_at, o.updated_at").
		From(operatorsTable).
		Where(where).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	operator := &domain.Operator{}
	err = r.conn.QueryRow(ctx, query, args...).Scan(
		&operator.ID,
		&operator.Name,
		&operator.Email,
		&operator.PasswordHash,
		&operator.Active,
		&operator.Automation,
		&operator.TeamID,
		&operator.CreatedAt,
		&operator.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear operador: %w", err)
	}

	return operator, nil
}
