package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/norune/dunspars-sub000/internal/constants"
	"github.com/norune/dunspars-sub000/internal/custom"
	"github.com/norune/dunspars-sub000/internal/domain"
)

type CoverageService struct {
	pokemon  *PokemonService
	types    *TypeService
	trainers *custom.TrainerFile
	logger   zerolog.Logger
}

func NewCoverageService(
	pokemon *PokemonService,
	types *TypeService,
	trainers *custom.TrainerFile,
	logger zerolog.Logger,
) *CoverageService {
	return &CoverageService{pokemon: pokemon, types: types, trainers: trainers, logger: logger}
}

// Analyze profiles the named roster and reports its offensive reach
// and defensive soft spots against the full type roster.
func (s *CoverageService) Analyze(ctx context.Context, names []string, game *domain.Game) (*domain.CoverageReport, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.RequestTimeout)
	defer cancel()

	s.logger.Info().Strs("roster", names).Str("game", game.Name).Msg("analyzing coverage")

	roster := make([]*domain.PokemonProfile, 0, len(names))
	for _, name := range names {
		profile, err := s.pokemon.Profile(ctx, name, game)
		if err != nil {
			return nil, err
		}
		roster = append(roster, profile)
	}

	return s.analyze(ctx, roster)
}

// AnalyzeTrainer runs coverage over a saved trainer's team.
func (s *CoverageService) AnalyzeTrainer(ctx context.Context, trainerName string, game *domain.Game) (*domain.CoverageReport, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.RequestTimeout)
	defer cancel()

	collection, err := s.trainers.Read()
	if err != nil {
		return nil, err
	}
	trainer := collection.Find(trainerName)
	if trainer == nil {
		return nil, fmt.Errorf("trainer %q: %w", trainerName, domain.ErrNotFound)
	}
	if len(trainer.Pokemon) == 0 {
		return nil, fmt.Errorf("trainer %q has no pokemon", trainerName)
	}

	s.logger.Info().Str("trainer", trainer.Name).Int("team", len(trainer.Pokemon)).Msg("analyzing trainer coverage")

	roster := make([]*domain.PokemonProfile, 0, len(trainer.Pokemon))
	for i := range trainer.Pokemon {
		profile, err := s.pokemon.CustomProfile(ctx, &trainer.Pokemon[i], game)
		if err != nil {
			return nil, err
		}
		roster = append(roster, profile)
	}

	return s.analyze(ctx, roster)
}

// analyze collects an offense chart per type appearing in the roster's
// typings, resolved at each member's own generation, then folds the
// roster into the report.
func (s *CoverageService) analyze(ctx context.Context, roster []*domain.PokemonProfile) (*domain.CoverageReport, error) {
	offense := make(map[string]*domain.TypeChart)
	for _, profile := range roster {
		pair := profile.Data.Types
		typeNames := []string{pair.Primary}
		if pair.Secondary != nil {
			typeNames = append(typeNames, *pair.Secondary)
		}

		for _, typeName := range typeNames {
			if _, ok := offense[typeName]; ok {
				continue
			}
			resolved, err := s.types.Resolve(ctx, typeName, profile.Data.Generation)
			if err != nil {
				return nil, err
			}
			offense[typeName] = resolved.OffenseChart
		}
	}

	return domain.BuildCoverage(roster, offense)
}
