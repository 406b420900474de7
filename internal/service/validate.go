package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/rs/zerolog"

	"github.com/norune/dunspars-sub000/internal/constants"
	"github.com/norune/dunspars-sub000/internal/custom"
	"github.com/norune/dunspars-sub000/internal/repository"
)

// ValidateService checks user-supplied names against the known rosters
// before any resolver runs, so typos come back with suggestions instead
// of a bare miss.
type ValidateService struct {
	games     *repository.GameRepository
	moves     *repository.MoveRepository
	types     *repository.TypeRepository
	abilities *repository.AbilityRepository
	pokemon   *repository.PokemonRepository
	customs   *custom.File
	logger    zerolog.Logger
}

func NewValidateService(
	games *repository.GameRepository,
	moves *repository.MoveRepository,
	types *repository.TypeRepository,
	abilities *repository.AbilityRepository,
	pokemon *repository.PokemonRepository,
	customs *custom.File,
	logger zerolog.Logger,
) *ValidateService {
	return &ValidateService{
		games:     games,
		moves:     moves,
		types:     types,
		abilities: abilities,
		pokemon:   pokemon,
		customs:   customs,
		logger:    logger,
	}
}

func (s *ValidateService) Game(ctx context.Context, value string) (string, error) {
	return s.validate(ctx, "Game", value, s.games.Names)
}

func (s *ValidateService) Move(ctx context.Context, value string) (string, error) {
	return s.validate(ctx, "Move", value, s.moves.Names)
}

func (s *ValidateService) Type(ctx context.Context, value string) (string, error) {
	return s.validate(ctx, "Type", value, s.types.Names)
}

func (s *ValidateService) Ability(ctx context.Context, value string) (string, error) {
	return s.validate(ctx, "Ability", value, s.abilities.Names)
}

// Pokemon accepts custom nicknames alongside the species roster.
func (s *ValidateService) Pokemon(ctx context.Context, value string) (string, error) {
	return s.validate(ctx, "Pokémon", value, func(ctx context.Context) ([]string, error) {
		names, err := s.pokemon.Names(ctx)
		if err != nil {
			return nil, err
		}

		collection, err := s.customs.Read()
		if err != nil {
			return nil, err
		}
		for _, nickname := range collection.Nicknames() {
			names = append(names, strings.ToLower(nickname))
		}
		return names, nil
	})
}

func (s *ValidateService) validate(
	ctx context.Context,
	label, value string,
	source func(context.Context) ([]string, error),
) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	names, err := source(ctx)
	if err != nil {
		s.logger.Error().Err(err).Str("label", label).Msg("failed to load names for validation")
		return "", err
	}

	return matchName(label, value, names)
}

// matchName validates value against the roster, collecting likely
// candidates along the way. The value passes only on an exact match;
// otherwise the candidates become suggestions in the error.
func matchName(label, value string, names []string) (string, error) {
	value = strings.ToLower(value)

	var matches []string
	for _, name := range names {
		if strings.Contains(name, value) || closeEnough(name, value) {
			matches = append(matches, name)
		}
	}

	for _, match := range matches {
		if match == value {
			return value, nil
		}
	}

	message := fmt.Sprintf("%s '%s' not found.", label, value)
	switch {
	case len(matches) > constants.SuggestionLimit:
		message += " Potential matches found; too many to display."
	case len(matches) > 0:
		message += fmt.Sprintf(" Potential matches: %s.", strings.Join(matches, " "))
	}
	return "", errors.New(message)
}

// closeEnough pairs names that share a first letter and sit within a
// small edit distance, catching typos like "pikchu".
func closeEnough(name, value string) bool {
	if name == "" || value == "" {
		return false
	}
	if name[0] != value[0] {
		return false
	}
	return levenshtein.ComputeDistance(name, value) < 4
}
