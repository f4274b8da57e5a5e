package postgres

import (
	"context"
	"database/sql"
)

// Queryer é o subconjunto de operações de leitura/escrita usado pelos repositórios
type Queryer interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}
