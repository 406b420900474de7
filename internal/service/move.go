package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/norune/dunspars-sub000/internal/constants"
	"github.com/norune/dunspars-sub000/internal/domain"
	"github.com/norune/dunspars-sub000/internal/repository"
)

type MoveService struct {
	repo   *repository.MoveRepository
	logger zerolog.Logger
}

func NewMoveService(repo *repository.MoveRepository, logger zerolog.Logger) *MoveService {
	return &MoveService{repo: repo, logger: logger}
}

// Resolve returns the move as it behaved in the target generation. The
// base record carries current values; the closest qualifying change
// record, if any, overrides them field by field.
func (s *MoveService) Resolve(ctx context.Context, name string, generation int) (*domain.Move, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	row, err := s.repo.GetByName(ctx, name)
	if err != nil {
		s.logger.Error().Err(err).Str("move", name).Msg("failed to load move")
		return nil, err
	}
	if generation < row.Generation {
		return nil, fmt.Errorf("move %s in generation %d: %w", name, generation, domain.ErrNotPresentInGeneration)
	}

	move := row.Move()
	move.Generation = generation

	changes, err := s.repo.ChangesSince(ctx, row.ID, generation)
	if err != nil {
		return nil, err
	}
	if past := domain.MatchPast[domain.MoveChange](generation, changes); past != nil {
		applyMoveChange(&move, past)
		s.logger.Debug().Str("move", name).Int("generation", generation).Msg("applied historical move values")
	}

	return &move, nil
}

func (s *MoveService) Names(ctx context.Context) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	return s.repo.Names(ctx)
}

func applyMoveChange(move *domain.Move, change *domain.MoveChange) {
	if change.Power != nil {
		move.Power = change.Power
	}
	if change.Accuracy != nil {
		move.Accuracy = change.Accuracy
	}
	if change.PP != nil {
		move.PP = change.PP
	}
	if change.EffectChance != nil {
		move.EffectChance = change.EffectChance
	}
	if change.Type != nil {
		move.Type = *change.Type
	}
	if change.Effect != nil {
		move.Effect = *change.Effect
	}
}
