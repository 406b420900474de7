package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/norune/dunspars-sub000/internal/constants"
	"github.com/norune/dunspars-sub000/internal/domain"
	"github.com/norune/dunspars-sub000/internal/repository"
)

type AbilityService struct {
	repo   *repository.AbilityRepository
	logger zerolog.Logger
}

func NewAbilityService(repo *repository.AbilityRepository, logger zerolog.Logger) *AbilityService {
	return &AbilityService{repo: repo, logger: logger}
}

// Resolve returns the ability with its effect text as of the target
// generation.
func (s *AbilityService) Resolve(ctx context.Context, name string, generation int) (*domain.Ability, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	row, err := s.repo.GetByName(ctx, name)
	if err != nil {
		s.logger.Error().Err(err).Str("ability", name).Msg("failed to load ability")
		return nil, err
	}
	if generation < row.Generation {
		return nil, fmt.Errorf("ability %s in generation %d: %w", name, generation, domain.ErrNotPresentInGeneration)
	}

	effect := row.Effect
	changes, err := s.repo.ChangesSince(ctx, row.ID, generation)
	if err != nil {
		return nil, err
	}
	if past := domain.MatchPast[string](generation, changes); past != nil {
		effect = *past
		s.logger.Debug().Str("ability", name).Int("generation", generation).Msg("applied historical effect text")
	}

	return &domain.Ability{
		Name:       row.Name,
		Effect:     effect,
		Generation: generation,
	}, nil
}

func (s *AbilityService) Names(ctx context.Context) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	return s.repo.Names(ctx)
}
