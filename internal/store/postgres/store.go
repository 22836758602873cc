package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gracemobile/backend/internal/store"
)

// PGStore persists chat sessions and messages in PostgreSQL.
type PGStore struct {
	db *pgxpool.Pool
}

// New wraps an existing connection pool.
func New(db *pgxpool.Pool) *PGStore {
	return &PGStore{db: db}
}

// querier is satisfied by both the pool and a transaction, so the same
// statements serve single appends and the transactional exchange.
type querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

var (
	_ store.Store         = (*PGStore)(nil)
	_ store.ExchangeStore = (*PGStore)(nil)
)
