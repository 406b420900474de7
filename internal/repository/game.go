package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/norune/dunspars-sub000/internal/domain"
	"github.com/rs/zerolog"
)

type GameRepository struct {
	db     *sql.DB
	logger zerolog.Logger
}

func NewGameRepository(sqlDB *sql.DB, logger zerolog.Logger) *GameRepository {
	return &GameRepository{db: sqlDB, logger: logger}
}

func (r *GameRepository) GetByName(ctx context.Context, name string) (*domain.Game, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, name, "order", generation FROM games WHERE name = ?`, name)

	var game domain.Game
	err := row.Scan(&game.ID, &game.Name, &game.Order, &game.Generation)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("game %q: %w", name, domain.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}

	return &game, nil
}

// Latest returns the most recently released game, the fallback when
// neither the --game flag nor the config file names one.
func (r *GameRepository) Latest(ctx context.Context) (*domain.Game, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, name, "order", generation FROM games ORDER BY id DESC LIMIT 1`)

	var game domain.Game
	err := row.Scan(&game.ID, &game.Name, &game.Order, &game.Generation)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("latest game: %w", domain.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}

	return &game, nil
}

func (r *GameRepository) Names(ctx context.Context) ([]string, error) {
	return selectAllNames(ctx, r.db, "games")
}

func (r *GameRepository) InsertBatch(ctx context.Context, games []domain.Game) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, game := range games {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO games (id, name, "order", generation) VALUES (?, ?, ?, ?)`,
			game.ID, game.Name, game.Order, game.Generation)
		if err != nil {
			return fmt.Errorf("failed to insert game %s: %w", game.Name, err)
		}
	}

	r.logger.Debug().Int("count", len(games)).Msg("games inserted")
	return tx.Commit()
}

// selectAllNames backs the fuzzy validator and the resource command;
// every primary table lists names in id order.
func selectAllNames(ctx context.Context, db *sql.DB, table string) ([]string, error) {
	query := fmt.Sprintf("SELECT name FROM %s ORDER BY id", table)
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}

	return names, rows.Err()
}
