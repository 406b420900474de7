package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/norune/dunspars-sub000/internal/domain"
	"github.com/rs/zerolog"
)

type MoveRepository struct {
	db     *sql.DB
	logger zerolog.Logger
}

func NewMoveRepository(sqlDB *sql.DB, logger zerolog.Logger) *MoveRepository {
	return &MoveRepository{db: sqlDB, logger: logger}
}

func (r *MoveRepository) GetByName(ctx context.Context, name string) (*MoveRow, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, name, power, accuracy, pp, effect_chance, effect, type, damage_class, generation
		 FROM moves WHERE name = ?`, name)

	var move MoveRow
	err := row.Scan(
		&move.ID, &move.Name, &move.Power, &move.Accuracy, &move.PP,
		&move.EffectChance, &move.Effect, &move.Type, &move.DamageClass,
		&move.Generation,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("move %q: %w", name, domain.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}

	return &move, nil
}

// ChangesSince returns every change record that could override the move
// at or after the target generation, oldest first. The caller feeds the
// list to the override matcher.
func (r *MoveRepository) ChangesSince(ctx context.Context, moveID, generation int) ([]domain.MoveChange, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT power, accuracy, pp, effect_chance, type, effect, generation
		 FROM move_changes WHERE move_id = ? AND generation >= ?
		 ORDER BY generation ASC`, moveID, generation)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var changes []domain.MoveChange
	for rows.Next() {
		var change domain.MoveChange
		err := rows.Scan(
			&change.Power, &change.Accuracy, &change.PP,
			&change.EffectChance, &change.Type, &change.Effect,
			&change.Generation,
		)
		if err != nil {
			return nil, err
		}
		changes = append(changes, change)
	}

	return changes, rows.Err()
}

func (r *MoveRepository) Names(ctx context.Context) ([]string, error) {
	return selectAllNames(ctx, r.db, "moves")
}

func (r *MoveRepository) InsertBatch(ctx context.Context, moves []MoveRow, changes []MoveChangeRow) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, move := range moves {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO moves (id, name, power, accuracy, pp, effect_chance, effect, type, damage_class, generation)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			move.ID, move.Name, move.Power, move.Accuracy, move.PP,
			move.EffectChance, move.Effect, move.Type, move.DamageClass,
			move.Generation)
		if err != nil {
			return fmt.Errorf("failed to insert move %s: %w", move.Name, err)
		}
	}

	for _, change := range changes {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO move_changes (power, accuracy, pp, effect_chance, type, effect, generation, move_id)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			change.Power, change.Accuracy, change.PP, change.EffectChance,
			change.Type, change.Effect, change.Generation, change.MoveID)
		if err != nil {
			return fmt.Errorf("failed to insert move change for move %d: %w", change.MoveID, err)
		}
	}

	r.logger.Debug().
		Int("moves", len(moves)).
		Int("changes", len(changes)).
		Msg("moves inserted")
	return tx.Commit()
}
