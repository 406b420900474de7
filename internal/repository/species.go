package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/norune/dunspars-sub000/internal/domain"
	"github.com/rs/zerolog"
)

type SpeciesRepository struct {
	db     *sql.DB
	logger zerolog.Logger
}

func NewSpeciesRepository(sqlDB *sql.DB, logger zerolog.Logger) *SpeciesRepository {
	return &SpeciesRepository{db: sqlDB, logger: logger}
}

func (r *SpeciesRepository) GetByID(ctx context.Context, id int) (*SpeciesRow, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, name, is_baby, is_legendary, is_mythical, evolution_id
		 FROM species WHERE id = ?`, id)

	var species SpeciesRow
	err := row.Scan(
		&species.ID, &species.Name, &species.IsBaby,
		&species.IsLegendary, &species.IsMythical, &species.EvolutionID,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("species %d: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}

	return &species, nil
}

func (r *SpeciesRepository) EvolutionByID(ctx context.Context, id int) (*domain.EvolutionStep, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT evolution FROM evolutions WHERE id = ?`, id)

	var raw string
	err := row.Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("evolution %d: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}

	var step domain.EvolutionStep
	if err := json.Unmarshal([]byte(raw), &step); err != nil {
		return nil, fmt.Errorf("failed to decode evolution %d: %w", id, err)
	}
	return &step, nil
}

// InsertEvolutions runs before InsertBatch; species rows reference
// evolution rows and foreign keys are enforced.
func (r *SpeciesRepository) InsertEvolutions(ctx context.Context, evolutions []EvolutionRow) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, evolution := range evolutions {
		raw, err := json.Marshal(evolution.Tree)
		if err != nil {
			return fmt.Errorf("failed to encode evolution %d: %w", evolution.ID, err)
		}
		_, err = tx.ExecContext(ctx,
			`INSERT INTO evolutions (id, evolution) VALUES (?, ?)`,
			evolution.ID, string(raw))
		if err != nil {
			return fmt.Errorf("failed to insert evolution %d: %w", evolution.ID, err)
		}
	}

	r.logger.Debug().Int("count", len(evolutions)).Msg("evolutions inserted")
	return tx.Commit()
}

func (r *SpeciesRepository) InsertBatch(ctx context.Context, species []SpeciesRow) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, row := range species {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO species (id, name, is_baby, is_legendary, is_mythical, evolution_id)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			row.ID, row.Name, row.IsBaby, row.IsLegendary, row.IsMythical, row.EvolutionID)
		if err != nil {
			return fmt.Errorf("failed to insert species %s: %w", row.Name, err)
		}
	}

	r.logger.Debug().Int("count", len(species)).Msg("species inserted")
	return tx.Commit()
}
