package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/norune/dunspars-sub000/internal/domain"
	"github.com/rs/zerolog"
)

type TypeRepository struct {
	db     *sql.DB
	logger zerolog.Logger
}

func NewTypeRepository(sqlDB *sql.DB, logger zerolog.Logger) *TypeRepository {
	return &TypeRepository{db: sqlDB, logger: logger}
}

func (r *TypeRepository) GetByName(ctx context.Context, name string) (*TypeRow, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, name, no_damage_to, half_damage_to, double_damage_to,
		        no_damage_from, half_damage_from, double_damage_from, generation
		 FROM types WHERE name = ?`, name)

	typeRow, err := scanTypeRow(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("type %q: %w", name, domain.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}

	return typeRow, nil
}

func (r *TypeRepository) ChangesSince(ctx context.Context, typeID, generation int) ([]domain.TypeChange, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT no_damage_to, half_damage_to, double_damage_to,
		        no_damage_from, half_damage_from, double_damage_from, generation
		 FROM type_changes WHERE type_id = ? AND generation >= ?
		 ORDER BY generation ASC`, typeID, generation)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var changes []domain.TypeChange
	for rows.Next() {
		var noTo, halfTo, doubleTo, noFrom, halfFrom, doubleFrom string
		var change domain.TypeChange
		err := rows.Scan(&noTo, &halfTo, &doubleTo, &noFrom, &halfFrom, &doubleFrom, &change.Generation)
		if err != nil {
			return nil, err
		}
		change.Relations = domain.TypeRelations{
			NoDamageTo:       splitNames(noTo),
			HalfDamageTo:     splitNames(halfTo),
			DoubleDamageTo:   splitNames(doubleTo),
			NoDamageFrom:     splitNames(noFrom),
			HalfDamageFrom:   splitNames(halfFrom),
			DoubleDamageFrom: splitNames(doubleFrom),
		}
		changes = append(changes, change)
	}

	return changes, rows.Err()
}

func (r *TypeRepository) Names(ctx context.Context) ([]string, error) {
	return selectAllNames(ctx, r.db, "types")
}

func (r *TypeRepository) InsertBatch(ctx context.Context, types []TypeRow, changes []TypeChangeRow) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, typeRow := range types {
		relations := typeRow.Relations
		_, err := tx.ExecContext(ctx,
			`INSERT INTO types (id, name, no_damage_to, half_damage_to, double_damage_to,
			                    no_damage_from, half_damage_from, double_damage_from, generation)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			typeRow.ID, typeRow.Name,
			joinNames(relations.NoDamageTo), joinNames(relations.HalfDamageTo),
			joinNames(relations.DoubleDamageTo), joinNames(relations.NoDamageFrom),
			joinNames(relations.HalfDamageFrom), joinNames(relations.DoubleDamageFrom),
			typeRow.Generation)
		if err != nil {
			return fmt.Errorf("failed to insert type %s: %w", typeRow.Name, err)
		}
	}

	for _, change := range changes {
		relations := change.Relations
		_, err := tx.ExecContext(ctx,
			`INSERT INTO type_changes (no_damage_to, half_damage_to, double_damage_to,
			                           no_damage_from, half_damage_from, double_damage_from,
			                           generation, type_id)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			joinNames(relations.NoDamageTo), joinNames(relations.HalfDamageTo),
			joinNames(relations.DoubleDamageTo), joinNames(relations.NoDamageFrom),
			joinNames(relations.HalfDamageFrom), joinNames(relations.DoubleDamageFrom),
			change.Generation, change.TypeID)
		if err != nil {
			return fmt.Errorf("failed to insert type change for type %d: %w", change.TypeID, err)
		}
	}

	r.logger.Debug().
		Int("types", len(types)).
		Int("changes", len(changes)).
		Msg("types inserted")
	return tx.Commit()
}

func scanTypeRow(row *sql.Row) (*TypeRow, error) {
	var typeRow TypeRow
	var noTo, halfTo, doubleTo, noFrom, halfFrom, doubleFrom string

	err := row.Scan(
		&typeRow.ID, &typeRow.Name,
		&noTo, &halfTo, &doubleTo, &noFrom, &halfFrom, &doubleFrom,
		&typeRow.Generation,
	)
	if err != nil {
		return nil, err
	}

	typeRow.Relations = domain.TypeRelations{
		NoDamageTo:       splitNames(noTo),
		HalfDamageTo:     splitNames(halfTo),
		DoubleDamageTo:   splitNames(doubleTo),
		NoDamageFrom:     splitNames(noFrom),
		HalfDamageFrom:   splitNames(halfFrom),
		DoubleDamageFrom: splitNames(doubleFrom),
	}
	return &typeRow, nil
}
