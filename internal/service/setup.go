package service

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/norune/dunspars-sub000/internal/api"
	"github.com/norune/dunspars-sub000/internal/config"
	"github.com/norune/dunspars-sub000/internal/constants"
	"github.com/norune/dunspars-sub000/internal/database"
	"github.com/norune/dunspars-sub000/internal/repository"
)

// SetupService rebuilds the local database from the remote API. The
// pipeline always starts from a fresh file; an existing database is
// torn down first.
type SetupService struct {
	client *api.PokeAPIClient
	cfg    *config.Config
	logger zerolog.Logger
}

func NewSetupService(client *api.PokeAPIClient, cfg *config.Config, logger zerolog.Logger) *SetupService {
	return &SetupService{client: client, cfg: cfg, logger: logger}
}

// Run executes the pipeline in dependency order: games first so every
// later step can translate version groups to generations, then moves,
// types and abilities, then species with their evolution trees, and
// finally the pokemon whose child rows reference all of the above.
func (s *SetupService) Run(ctx context.Context, out io.Writer) error {
	ctx, cancel := context.WithTimeout(ctx, constants.SetupTimeout)
	defer cancel()

	logger := s.logger.With().Str("run_id", uuid.NewString()).Logger()
	ctx = logger.WithContext(ctx)
	start := time.Now()

	db, err := database.NewWrite(s.cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to prepare database: %w", err)
	}
	defer db.Close()

	games := repository.NewGameRepository(db, logger)
	moves := repository.NewMoveRepository(db, logger)
	types := repository.NewTypeRepository(db, logger)
	abilities := repository.NewAbilityRepository(db, logger)
	species := repository.NewSpeciesRepository(db, logger)
	pokemon := repository.NewPokemonRepository(db, logger)
	meta := repository.NewMetaRepository(db, logger)

	vgGens, err := s.setupGames(ctx, out, games)
	if err != nil {
		logger.Error().Err(err).Msg("failed to set up games")
		return err
	}

	moveIDs, err := s.setupMoves(ctx, out, moves, vgGens)
	if err != nil {
		logger.Error().Err(err).Msg("failed to set up moves")
		return err
	}

	if err := s.setupTypes(ctx, out, types); err != nil {
		logger.Error().Err(err).Msg("failed to set up types")
		return err
	}

	abilityIDs, err := s.setupAbilities(ctx, out, abilities, vgGens)
	if err != nil {
		logger.Error().Err(err).Msg("failed to set up abilities")
		return err
	}

	if err := s.setupSpecies(ctx, out, species); err != nil {
		logger.Error().Err(err).Msg("failed to set up species")
		return err
	}

	if err := s.setupPokemon(ctx, out, pokemon, moveIDs, abilityIDs, vgGens); err != nil {
		logger.Error().Err(err).Msg("failed to set up pokemon")
		return err
	}

	if err := meta.Set(ctx, "version", constants.Version); err != nil {
		return err
	}
	if err := meta.Set(ctx, "updated", time.Now().UTC().Format(time.RFC3339)); err != nil {
		return err
	}

	elapsed := time.Since(start)
	fmt.Fprintf(out, "setup time: %ds\n", int(elapsed.Seconds()))
	logger.Info().Dur("elapsed", elapsed).Msg("setup complete")
	return nil
}

func (s *SetupService) setupGames(ctx context.Context, out io.Writer, repo *repository.GameRepository) (map[string]int, error) {
	fmt.Fprintln(out, "retrieving games")

	names, err := s.client.ListVersionGroups(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list version groups: %w", err)
	}

	groups, err := fetchAll(ctx, names, s.client.GetVersionGroup)
	if err != nil {
		return nil, err
	}

	rows, vgGens, err := gameRows(groups)
	if err != nil {
		return nil, err
	}
	if err := repo.InsertBatch(ctx, rows); err != nil {
		return nil, err
	}

	zerolog.Ctx(ctx).Info().Int("count", len(rows)).Msg("games stored")
	return vgGens, nil
}

func (s *SetupService) setupMoves(ctx context.Context, out io.Writer, repo *repository.MoveRepository, vgGens map[string]int) (map[string]int, error) {
	fmt.Fprintln(out, "retrieving moves")

	names, err := s.client.ListMoves(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list moves: %w", err)
	}

	moves, err := fetchAll(ctx, names, s.client.GetMove)
	if err != nil {
		return nil, err
	}

	rows, changes, err := moveRows(moves, vgGens)
	if err != nil {
		return nil, err
	}
	if err := repo.InsertBatch(ctx, rows, changes); err != nil {
		return nil, err
	}

	moveIDs := make(map[string]int, len(rows))
	for _, row := range rows {
		moveIDs[row.Name] = row.ID
	}

	zerolog.Ctx(ctx).Info().Int("count", len(rows)).Int("changes", len(changes)).Msg("moves stored")
	return moveIDs, nil
}

func (s *SetupService) setupTypes(ctx context.Context, out io.Writer, repo *repository.TypeRepository) error {
	fmt.Fprintln(out, "retrieving types")

	names, err := s.client.ListTypes(ctx)
	if err != nil {
		return fmt.Errorf("failed to list types: %w", err)
	}
	names = knownTypes(names)

	types, err := fetchAll(ctx, names, s.client.GetType)
	if err != nil {
		return err
	}

	rows, changes, err := typeRows(types)
	if err != nil {
		return err
	}
	if err := repo.InsertBatch(ctx, rows, changes); err != nil {
		return err
	}

	zerolog.Ctx(ctx).Info().Int("count", len(rows)).Int("changes", len(changes)).Msg("types stored")
	return nil
}

func (s *SetupService) setupAbilities(ctx context.Context, out io.Writer, repo *repository.AbilityRepository, vgGens map[string]int) (map[string]int, error) {
	fmt.Fprintln(out, "retrieving abilities")

	names, err := s.client.ListAbilities(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list abilities: %w", err)
	}

	abilities, err := fetchAll(ctx, names, s.client.GetAbility)
	if err != nil {
		return nil, err
	}

	rows, changes, err := abilityRows(abilities, vgGens)
	if err != nil {
		return nil, err
	}
	if err := repo.InsertBatch(ctx, rows, changes); err != nil {
		return nil, err
	}

	abilityIDs := make(map[string]int, len(rows))
	for _, row := range rows {
		abilityIDs[row.Name] = row.ID
	}

	zerolog.Ctx(ctx).Info().Int("count", len(rows)).Int("changes", len(changes)).Msg("abilities stored")
	return abilityIDs, nil
}

func (s *SetupService) setupSpecies(ctx context.Context, out io.Writer, repo *repository.SpeciesRepository) error {
	fmt.Fprintln(out, "retrieving species")

	names, err := s.client.ListPokemonSpecies(ctx)
	if err != nil {
		return fmt.Errorf("failed to list species: %w", err)
	}

	entries, err := fetchAll(ctx, names, s.client.GetPokemonSpecies)
	if err != nil {
		return err
	}

	rows, chainIDs, err := speciesRows(entries)
	if err != nil {
		return err
	}

	// Chain ids come from the species entries; the chain index endpoint
	// upstream is broken.
	fmt.Fprintln(out, "retrieving evolutions")

	chains, err := fetchAll(ctx, chainIDs, s.client.GetEvolutionChain)
	if err != nil {
		return err
	}

	// Evolutions first; the species rows reference them.
	if err := repo.InsertEvolutions(ctx, evolutionRows(chains)); err != nil {
		return err
	}
	if err := repo.InsertBatch(ctx, rows); err != nil {
		return err
	}

	zerolog.Ctx(ctx).Info().Int("count", len(rows)).Int("evolutions", len(chainIDs)).Msg("species stored")
	return nil
}

func (s *SetupService) setupPokemon(
	ctx context.Context,
	out io.Writer,
	repo *repository.PokemonRepository,
	moveIDs, abilityIDs map[string]int,
	vgGens map[string]int,
) error {
	fmt.Fprintln(out, "retrieving pokemon")

	names, err := s.client.ListPokemon(ctx)
	if err != nil {
		return fmt.Errorf("failed to list pokemon: %w", err)
	}

	// The learnset rows dwarf everything else, so each fetched batch
	// commits on its own instead of accumulating.
	stored := 0
	for start := 0; start < len(names); start += constants.FetchChunkSize {
		chunk := names[start:min(start+constants.FetchChunkSize, len(names))]
		fetched, err := fetchChunk(ctx, chunk, s.client.GetPokemon)
		if err != nil {
			return err
		}

		rows, learnRows, slotRows, changeRows, err := pokemonRows(fetched, moveIDs, abilityIDs, vgGens)
		if err != nil {
			return err
		}
		if err := repo.InsertBatch(ctx, rows, learnRows, slotRows, changeRows); err != nil {
			return err
		}
		stored += len(rows)
	}

	zerolog.Ctx(ctx).Info().Int("count", stored).Msg("pokemon stored")
	return nil
}

// fetchChunk fetches one batch concurrently, keeping input order.
func fetchChunk[K comparable, T any](ctx context.Context, keys []K, fetch func(context.Context, K) (*T, error)) ([]*T, error) {
	g, gctx := errgroup.WithContext(ctx)
	results := make([]*T, len(keys))
	for i, key := range keys {
		i, key := i, key
		g.Go(func() error {
			callCtx, cancel := context.WithTimeout(gctx, constants.ExternalAPITimeout)
			defer cancel()

			resource, err := fetch(callCtx, key)
			if err != nil {
				return fmt.Errorf("failed to fetch %v: %w", key, err)
			}
			results[i] = resource
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func fetchAll[K comparable, T any](ctx context.Context, keys []K, fetch func(context.Context, K) (*T, error)) ([]*T, error) {
	results := make([]*T, 0, len(keys))
	for start := 0; start < len(keys); start += constants.FetchChunkSize {
		chunk, err := fetchChunk(ctx, keys[start:min(start+constants.FetchChunkSize, len(keys))], fetch)
		if err != nil {
			return nil, err
		}
		results = append(results, chunk...)
	}
	return results, nil
}
