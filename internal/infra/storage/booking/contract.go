package booking

import (
	"context"
	"database/sql"
)

// DB подмножество *sql.DB, нужное репозиторию
type DB interface {
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	BeginTx(ctx context.Context, opts *sql.TxOptions) (*sql.Tx, error)
}
