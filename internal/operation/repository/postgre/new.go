package postgre

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"secure-intent-router/internal/operation/repository"
	"secure-intent-router/pkg/log"
)

// DB is the subset of *pgxpool.Pool used by the repository.
type DB interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

type implRepository struct {
	db DB
	l  log.Logger
}

// New creates a PostgreSQL-backed Repository for the operation registry.
func New(db DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("operation/repository/postgre: db is required")
	}
	return &implRepository{db: db, l: l}
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("operation/repository/postgre.%s", method)
}
