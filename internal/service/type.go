package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/norune/dunspars-sub000/internal/constants"
	"github.com/norune/dunspars-sub000/internal/domain"
	"github.com/norune/dunspars-sub000/internal/repository"
)

type TypeService struct {
	repo   *repository.TypeRepository
	logger zerolog.Logger
}

func NewTypeService(repo *repository.TypeRepository, logger zerolog.Logger) *TypeService {
	return &TypeService{repo: repo, logger: logger}
}

// Resolve returns the type with its damage relations as of the target
// generation, plus the offense and defense charts derived from them.
// Historical changes replace the whole relation set.
func (s *TypeService) Resolve(ctx context.Context, name string, generation int) (*domain.Type, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	row, err := s.repo.GetByName(ctx, name)
	if err != nil {
		s.logger.Error().Err(err).Str("type", name).Msg("failed to load type")
		return nil, err
	}
	if generation < row.Generation {
		return nil, fmt.Errorf("type %s in generation %d: %w", name, generation, domain.ErrNotPresentInGeneration)
	}

	relations := row.Relations
	changes, err := s.repo.ChangesSince(ctx, row.ID, generation)
	if err != nil {
		return nil, err
	}
	if past := domain.MatchPast[domain.TypeRelations](generation, changes); past != nil {
		relations = *past
		s.logger.Debug().Str("type", name).Int("generation", generation).Msg("applied historical damage relations")
	}

	return &domain.Type{
		Name:         row.Name,
		Relations:    relations,
		OffenseChart: domain.NewOffenseChart(row.Name, relations),
		DefenseChart: domain.NewDefenseChart(row.Name, relations),
		Generation:   generation,
	}, nil
}

// DefenseChart builds the defense chart for a typing, combining the
// halves of a dual type into one chart.
func (s *TypeService) DefenseChart(ctx context.Context, pair domain.TypePair, generation int) (*domain.TypeChart, error) {
	primary, err := s.Resolve(ctx, pair.Primary, generation)
	if err != nil {
		return nil, err
	}
	if pair.Secondary == nil {
		return primary.DefenseChart, nil
	}

	secondary, err := s.Resolve(ctx, *pair.Secondary, generation)
	if err != nil {
		return nil, err
	}
	return domain.Combine(primary.DefenseChart, secondary.DefenseChart), nil
}

func (s *TypeService) Names(ctx context.Context) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	return s.repo.Names(ctx)
}
