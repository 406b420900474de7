package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/norune/dunspars-sub000/internal/domain"
	"github.com/rs/zerolog"
)

type AbilityRepository struct {
	db     *sql.DB
	logger zerolog.Logger
}

func NewAbilityRepository(sqlDB *sql.DB, logger zerolog.Logger) *AbilityRepository {
	return &AbilityRepository{db: sqlDB, logger: logger}
}

func (r *AbilityRepository) GetByName(ctx context.Context, name string) (*AbilityRow, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, name, effect, generation FROM abilities WHERE name = ?`, name)

	var ability AbilityRow
	err := row.Scan(&ability.ID, &ability.Name, &ability.Effect, &ability.Generation)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("ability %q: %w", name, domain.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}

	return &ability, nil
}

func (r *AbilityRepository) ChangesSince(ctx context.Context, abilityID, generation int) ([]domain.AbilityChange, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT effect, generation FROM ability_changes
		 WHERE ability_id = ? AND generation >= ?
		 ORDER BY generation ASC`, abilityID, generation)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var changes []domain.AbilityChange
	for rows.Next() {
		var change domain.AbilityChange
		if err := rows.Scan(&change.Effect, &change.Generation); err != nil {
			return nil, err
		}
		changes = append(changes, change)
	}

	return changes, rows.Err()
}

func (r *AbilityRepository) Names(ctx context.Context) ([]string, error) {
	return selectAllNames(ctx, r.db, "abilities")
}

func (r *AbilityRepository) InsertBatch(ctx context.Context, abilities []AbilityRow, changes []AbilityChangeRow) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, ability := range abilities {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO abilities (id, name, effect, generation) VALUES (?, ?, ?, ?)`,
			ability.ID, ability.Name, ability.Effect, ability.Generation)
		if err != nil {
			return fmt.Errorf("failed to insert ability %s: %w", ability.Name, err)
		}
	}

	for _, change := range changes {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO ability_changes (effect, generation, ability_id) VALUES (?, ?, ?)`,
			change.Effect, change.Generation, change.AbilityID)
		if err != nil {
			return fmt.Errorf("failed to insert ability change for ability %d: %w", change.AbilityID, err)
		}
	}

	r.logger.Debug().
		Int("abilities", len(abilities)).
		Int("changes", len(changes)).
		Msg("abilities inserted")
	return tx.Commit()
}
