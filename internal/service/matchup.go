package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/norune/dunspars-sub000/internal/constants"
	"github.com/norune/dunspars-sub000/internal/domain"
)

type MatchupService struct {
	pokemon *PokemonService
	logger  zerolog.Logger
}

func NewMatchupService(pokemon *PokemonService, logger zerolog.Logger) *MatchupService {
	return &MatchupService{pokemon: pokemon, logger: logger}
}

// Analyze pits the attacker against every defender in turn. Both
// directions are grouped so each pairing reads as a full exchange.
func (s *MatchupService) Analyze(
	ctx context.Context,
	defenderNames []string,
	attackerName string,
	game *domain.Game,
	verbose, stabOnly bool,
) ([]domain.Matchup, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.RequestTimeout)
	defer cancel()

	s.logger.Info().
		Strs("defenders", defenderNames).
		Str("attacker", attackerName).
		Str("game", game.Name).
		Msg("analyzing matchups")

	attacker, err := s.pokemon.Profile(ctx, attackerName, game)
	if err != nil {
		return nil, err
	}

	matchups := make([]domain.Matchup, 0, len(defenderNames))
	for _, name := range defenderNames {
		defender, err := s.pokemon.Profile(ctx, name, game)
		if err != nil {
			return nil, err
		}
		matchups = append(matchups, domain.NewMatchup(defender, attacker, verbose, stabOnly))
	}

	return matchups, nil
}
