package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/norune/dunspars-sub000/internal/constants"
	"github.com/norune/dunspars-sub000/internal/custom"
	"github.com/norune/dunspars-sub000/internal/domain"
	"github.com/norune/dunspars-sub000/internal/repository"
)

type PokemonService struct {
	repo    *repository.PokemonRepository
	species *repository.SpeciesRepository
	moves   *MoveService
	types   *TypeService
	customs *custom.File
	logger  zerolog.Logger
}

func NewPokemonService(
	repo *repository.PokemonRepository,
	species *repository.SpeciesRepository,
	moves *MoveService,
	types *TypeService,
	customs *custom.File,
	logger zerolog.Logger,
) *PokemonService {
	return &PokemonService{
		repo:    repo,
		species: species,
		moves:   moves,
		types:   types,
		customs: customs,
		logger:  logger,
	}
}

// Resolve returns the Pokémon as it existed in the game's generation.
// Custom nicknames shadow the species roster: a hit in the collection
// resolves the base species at the record's pinned generation with the
// record's overrides applied.
func (s *PokemonService) Resolve(ctx context.Context, name string, game *domain.Game) (*domain.Pokemon, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	collection, err := s.customs.Read()
	if err != nil {
		return nil, err
	}
	if record := collection.Find(name); record != nil {
		s.logger.Debug().Str("nickname", record.Nickname).Str("base", record.Base).Msg("resolving custom pokemon")
		return s.resolveCustom(ctx, record, game)
	}

	return s.resolve(ctx, name, game.Name, game.Generation)
}

func (s *PokemonService) resolve(ctx context.Context, name, gameName string, generation int) (*domain.Pokemon, error) {
	row, err := s.repo.GetByName(ctx, name)
	if err != nil {
		s.logger.Error().Err(err).Str("pokemon", name).Msg("failed to load pokemon")
		return nil, err
	}

	types := row.TypePair()
	typeChanges, err := s.repo.TypeChangesSince(ctx, row.ID, generation)
	if err != nil {
		return nil, err
	}
	if past := domain.MatchPast[domain.TypePair](generation, typeChanges); past != nil {
		types = *past
		s.logger.Debug().Str("pokemon", name).Int("generation", generation).Msg("applied historical typing")
	}

	learnRows, err := s.repo.LearnMoves(ctx, row.ID, generation)
	if err != nil {
		return nil, err
	}
	learnMoves := dedupeLearnMoves(learnRows)
	if len(learnMoves) == 0 {
		return nil, fmt.Errorf("pokemon %s in generation %d: %w", name, generation, domain.ErrNotPresentInGeneration)
	}

	abilities, err := s.repo.Abilities(ctx, row.ID)
	if err != nil {
		return nil, err
	}

	species, err := s.species.GetByID(ctx, row.SpeciesID)
	if err != nil {
		return nil, err
	}

	return &domain.Pokemon{
		Name:       row.Name,
		Types:      types,
		Stats:      row.BaseStats(),
		Group:      species.Group(),
		Species:    species.Name,
		Game:       gameName,
		Generation: generation,
		LearnMoves: learnMoves,
		Abilities:  abilities,
	}, nil
}

func (s *PokemonService) resolveCustom(ctx context.Context, record *custom.Pokemon, game *domain.Game) (*domain.Pokemon, error) {
	generation := record.Generation
	if generation == 0 {
		generation = game.Generation
	}

	base, err := s.resolve(ctx, record.Base, game.Name, generation)
	if err != nil {
		return nil, err
	}

	base.Name = record.Nickname
	if record.Types != nil {
		base.Types = domain.TypePair{Primary: record.Types.Primary, Secondary: record.Types.Secondary}
	}
	if len(record.Moves) > 0 {
		moves := make([]domain.LearnMove, 0, len(record.Moves))
		for _, name := range record.Moves {
			moves = append(moves, pickLearnMove(base.LearnMoves, name))
		}
		base.LearnMoves = moves
	}

	return base, nil
}

// Profile resolves the Pokémon and derives everything the analysis
// commands need: the combined defense chart and the full move list.
func (s *PokemonService) Profile(ctx context.Context, name string, game *domain.Game) (*domain.PokemonProfile, error) {
	data, err := s.Resolve(ctx, name, game)
	if err != nil {
		return nil, err
	}
	return s.profile(ctx, data)
}

// CustomProfile builds a profile for a record outside the saved
// collection, e.g. a trainer's team member.
func (s *PokemonService) CustomProfile(ctx context.Context, record *custom.Pokemon, game *domain.Game) (*domain.PokemonProfile, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	data, err := s.resolveCustom(ctx, record, game)
	if err != nil {
		return nil, err
	}
	return s.profile(ctx, data)
}

func (s *PokemonService) profile(ctx context.Context, data *domain.Pokemon) (*domain.PokemonProfile, error) {
	defense, err := s.types.DefenseChart(ctx, data.Types, data.Generation)
	if err != nil {
		return nil, err
	}

	moves := make([]domain.Move, 0, len(data.LearnMoves))
	for _, learned := range data.LearnMoves {
		move, err := s.moves.Resolve(ctx, learned.Name, data.Generation)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve move %s: %w", learned.Name, err)
		}
		moves = append(moves, *move)
	}

	return &domain.PokemonProfile{Data: *data, DefenseChart: defense, Moves: moves}, nil
}

// Evolution returns the species' evolution tree, or nil when the
// species has none recorded.
func (s *PokemonService) Evolution(ctx context.Context, name string) (*domain.EvolutionStep, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	collection, err := s.customs.Read()
	if err != nil {
		return nil, err
	}
	if record := collection.Find(name); record != nil {
		name = record.Base
	}

	row, err := s.repo.GetByName(ctx, name)
	if err != nil {
		s.logger.Error().Err(err).Str("pokemon", name).Msg("failed to load pokemon")
		return nil, err
	}

	species, err := s.species.GetByID(ctx, row.SpeciesID)
	if err != nil {
		return nil, err
	}
	if species.EvolutionID == nil {
		return nil, nil
	}

	return s.species.EvolutionByID(ctx, *species.EvolutionID)
}

func (s *PokemonService) Names(ctx context.Context) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	return s.repo.Names(ctx)
}

// dedupeLearnMoves keeps the newest row per move name. Rows arrive
// ordered oldest generation first, so a later row is the closer one.
func dedupeLearnMoves(rows []domain.LearnMove) []domain.LearnMove {
	latest := make(map[string]domain.LearnMove, len(rows))
	order := make([]string, 0, len(rows))
	for _, row := range rows {
		if _, seen := latest[row.Name]; !seen {
			order = append(order, row.Name)
		}
		latest[row.Name] = row
	}

	moves := make([]domain.LearnMove, 0, len(order))
	for _, name := range order {
		moves = append(moves, latest[name])
	}
	return moves
}

// pickLearnMove carries the learnset row over into a custom moveset
// when the base knows the move, and marks the row custom when it does
// not.
func pickLearnMove(learnset []domain.LearnMove, name string) domain.LearnMove {
	for _, learned := range learnset {
		if learned.Name == name {
			return learned
		}
	}
	return domain.LearnMove{Name: name, Method: "custom"}
}
