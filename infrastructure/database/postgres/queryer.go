package postgres

import (
	"context"
	"database/sql"
)

// Queryer é a superfície mínima que os repositórios de leitura consomem
type Queryer interface {
	Exec(ctx context.Context, sql string, args ...interface{}) (sql.Result, error)
	Query(ctx context.Context, sql string, args ...interface{}) (*sql.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) *sql.Row
}

// Conn estende Queryer com transações; exigido pelos repositórios que gravam
// mais de uma tabela atomicamente
type Conn interface {
	Queryer
	Begin(context.Context) (*sql.Tx, error)
	Close() error
	Ping(context.Context) error
	RunInTransaction(context.Context, func(*sql.Tx) error) error
}
