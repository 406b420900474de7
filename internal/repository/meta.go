package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/rs/zerolog"
)

// MetaRepository stores the key-value rows stamped at the end of a
// setup run; the read path checks them before serving queries.
type MetaRepository struct {
	db     *sql.DB
	logger zerolog.Logger
}

func NewMetaRepository(sqlDB *sql.DB, logger zerolog.Logger) *MetaRepository {
	return &MetaRepository{db: sqlDB, logger: logger}
}

func (r *MetaRepository) Set(ctx context.Context, name, value string) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO meta (name, value) VALUES (?, ?)`, name, value)
	if err != nil {
		return fmt.Errorf("failed to set meta %s: %w", name, err)
	}

	r.logger.Debug().Str("name", name).Str("value", value).Msg("meta set")
	return nil
}
