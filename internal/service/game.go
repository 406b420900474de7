package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/norune/dunspars-sub000/internal/constants"
	"github.com/norune/dunspars-sub000/internal/domain"
	"github.com/norune/dunspars-sub000/internal/repository"
)

type GameService struct {
	repo   *repository.GameRepository
	logger zerolog.Logger
}

func NewGameService(repo *repository.GameRepository, logger zerolog.Logger) *GameService {
	return &GameService{repo: repo, logger: logger}
}

// ActiveGame picks the game a command runs against: the override when
// set, otherwise the latest release.
func (s *GameService) ActiveGame(ctx context.Context, override string) (*domain.Game, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	if override == "" {
		game, err := s.repo.Latest(ctx)
		if err != nil {
			s.logger.Error().Err(err).Msg("failed to load latest game")
			return nil, err
		}
		s.logger.Debug().Str("game", game.Name).Int("generation", game.Generation).Msg("defaulting to latest game")
		return game, nil
	}

	game, err := s.repo.GetByName(ctx, override)
	if err != nil {
		s.logger.Error().Err(err).Str("game", override).Msg("failed to load game")
		return nil, err
	}
	return game, nil
}

func (s *GameService) Names(ctx context.Context) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	return s.repo.Names(ctx)
}
