package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/norune/dunspars-sub000/internal/domain"
	"github.com/rs/zerolog"
)

type PokemonRepository struct {
	db     *sql.DB
	logger zerolog.Logger
}

func NewPokemonRepository(sqlDB *sql.DB, logger zerolog.Logger) *PokemonRepository {
	return &PokemonRepository{db: sqlDB, logger: logger}
}

func (r *PokemonRepository) GetByName(ctx context.Context, name string) (*PokemonRow, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, name, primary_type, secondary_type, hp, attack, defense,
		        special_attack, special_defense, speed, species_id
		 FROM pokemon WHERE name = ?`, name)

	var pokemon PokemonRow
	err := row.Scan(
		&pokemon.ID, &pokemon.Name, &pokemon.PrimaryType, &pokemon.SecondaryType,
		&pokemon.HP, &pokemon.Attack, &pokemon.Defense, &pokemon.SpecialAttack,
		&pokemon.SpecialDefense, &pokemon.Speed, &pokemon.SpeciesID,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("pokemon %q: %w", name, domain.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}

	return &pokemon, nil
}

// LearnMoves returns every learnset row recorded at or below the target
// generation, oldest first. One move can appear once per generation it
// is learnable in; the resolver keeps the newest row per name.
func (r *PokemonRepository) LearnMoves(ctx context.Context, pokemonID, generation int) ([]domain.LearnMove, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT m.name, pm.learn_method, pm.learn_level
		 FROM pokemon_moves pm
		 JOIN moves m ON m.id = pm.move_id
		 WHERE pm.pokemon_id = ? AND pm.generation <= ?
		 ORDER BY pm.generation ASC, pm.id ASC`, pokemonID, generation)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var moves []domain.LearnMove
	for rows.Next() {
		var move domain.LearnMove
		if err := rows.Scan(&move.Name, &move.Method, &move.Level); err != nil {
			return nil, err
		}
		moves = append(moves, move)
	}

	return moves, rows.Err()
}

func (r *PokemonRepository) Abilities(ctx context.Context, pokemonID int) ([]domain.AbilitySlot, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT a.name, pa.is_hidden
		 FROM pokemon_abilities pa
		 JOIN abilities a ON a.id = pa.ability_id
		 WHERE pa.pokemon_id = ?
		 ORDER BY pa.slot ASC`, pokemonID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var abilities []domain.AbilitySlot
	for rows.Next() {
		var slot domain.AbilitySlot
		if err := rows.Scan(&slot.Name, &slot.Hidden); err != nil {
			return nil, err
		}
		abilities = append(abilities, slot)
	}

	return abilities, rows.Err()
}

func (r *PokemonRepository) TypeChangesSince(ctx context.Context, pokemonID, generation int) ([]domain.PokemonTypeChange, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT primary_type, secondary_type, generation
		 FROM pokemon_type_changes WHERE pokemon_id = ? AND generation >= ?
		 ORDER BY generation ASC`, pokemonID, generation)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var changes []domain.PokemonTypeChange
	for rows.Next() {
		var change domain.PokemonTypeChange
		err := rows.Scan(&change.Types.Primary, &change.Types.Secondary, &change.Generation)
		if err != nil {
			return nil, err
		}
		changes = append(changes, change)
	}

	return changes, rows.Err()
}

func (r *PokemonRepository) Names(ctx context.Context) ([]string, error) {
	return selectAllNames(ctx, r.db, "pokemon")
}

// InsertBatch writes one fetched family in a single transaction. The
// pokemon rows go in first so the child rows can reference them.
func (r *PokemonRepository) InsertBatch(
	ctx context.Context,
	pokemon []PokemonRow,
	moves []PokemonMoveRow,
	abilities []PokemonAbilityRow,
	typeChanges []PokemonTypeChangeRow,
) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, row := range pokemon {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO pokemon (id, name, primary_type, secondary_type, hp, attack, defense,
			                      special_attack, special_defense, speed, species_id)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			row.ID, row.Name, row.PrimaryType, row.SecondaryType,
			row.HP, row.Attack, row.Defense, row.SpecialAttack,
			row.SpecialDefense, row.Speed, row.SpeciesID)
		if err != nil {
			return fmt.Errorf("failed to insert pokemon %s: %w", row.Name, err)
		}
	}

	for _, row := range moves {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO pokemon_moves (move_id, learn_method, learn_level, generation, pokemon_id)
			 VALUES (?, ?, ?, ?, ?)`,
			row.MoveID, row.LearnMethod, row.LearnLevel, row.Generation, row.PokemonID)
		if err != nil {
			return fmt.Errorf("failed to insert learn move for pokemon %d: %w", row.PokemonID, err)
		}
	}

	for _, row := range abilities {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO pokemon_abilities (ability_id, is_hidden, slot, pokemon_id)
			 VALUES (?, ?, ?, ?)`,
			row.AbilityID, row.IsHidden, row.Slot, row.PokemonID)
		if err != nil {
			return fmt.Errorf("failed to insert ability slot for pokemon %d: %w", row.PokemonID, err)
		}
	}

	for _, row := range typeChanges {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO pokemon_type_changes (primary_type, secondary_type, generation, pokemon_id)
			 VALUES (?, ?, ?, ?)`,
			row.Types.Primary, row.Types.Secondary, row.Generation, row.PokemonID)
		if err != nil {
			return fmt.Errorf("failed to insert type change for pokemon %d: %w", row.PokemonID, err)
		}
	}

	r.logger.Debug().
		Int("pokemon", len(pokemon)).
		Int("moves", len(moves)).
		Int("abilities", len(abilities)).
		Int("type_changes", len(typeChanges)).
		Msg("pokemon inserted")
	return tx.Commit()
}
