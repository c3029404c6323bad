package postgre

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"secure-intent-router/internal/chat/repository"
	"secure-intent-router/pkg/log"
)

// DB is the subset of *pgxpool.Pool used by the settings repository.
type DB interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type implRepository struct {
	db DB
	l  log.Logger
}

// New creates a PostgreSQL-backed SettingsRepository.
func New(db DB, l log.Logger) repository.SettingsRepository {
	if db == nil {
		panic("chat/repository/postgre: db is required")
	}
	return &implRepository{db: db, l: l}
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("chat/repository/postgre.%s", method)
}
