package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/norune/dunspars-sub000/internal/config"
	"github.com/norune/dunspars-sub000/internal/display"
	"github.com/norune/dunspars-sub000/internal/domain"
	"github.com/norune/dunspars-sub000/internal/service"
)

func init() {
	cmd := &cobra.Command{
		Use:   "pokemon <name>",
		Short: "Show a Pokémon's data and defense chart",
		Args:  cobra.ExactArgs(1),
		RunE:  runPokemon,
	}

	cmd.Flags().BoolP("moves", "m", false, "Include the learnset")
	cmd.Flags().BoolP("evolution", "e", false, "Include the evolution line")

	RootCmd.AddCommand(cmd)
}

func runPokemon(cmd *cobra.Command, args []string) error {
	withMoves, _ := cmd.Flags().GetBool("moves")
	withEvolution, _ := cmd.Flags().GetBool("evolution")

	var (
		file      *config.File
		validator *service.ValidateService
		games     *service.GameService
		pokemon   *service.PokemonService
		types     *service.TypeService
	)
	if err := populate(&file, &validator, &games, &pokemon, &types); err != nil {
		return err
	}

	ctx := cmd.Context()
	game, err := activeGame(ctx, file, games, validator)
	if err != nil {
		return err
	}

	name, err := validator.Pokemon(ctx, args[0])
	if err != nil {
		return err
	}

	// The learnset path resolves every move, so only walk it when
	// asked; the snapshot and chart fall out of either path.
	var (
		snapshot *domain.Pokemon
		chart    *domain.TypeChart
		profile  *domain.PokemonProfile
	)
	if withMoves {
		profile, err = pokemon.Profile(ctx, name, game)
		if err != nil {
			return err
		}
		snapshot = &profile.Data
		chart = profile.DefenseChart
	} else {
		snapshot, err = pokemon.Resolve(ctx, name, game)
		if err != nil {
			return err
		}
		chart, err = types.DefenseChart(ctx, snapshot.Types, game.Generation)
		if err != nil {
			return err
		}
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "\n%s\n\n%s\n", display.Pokemon(snapshot), display.TypeChart(chart))

	if withEvolution {
		step, err := pokemon.Evolution(ctx, name)
		if err != nil {
			return err
		}
		if step != nil {
			fmt.Fprintf(out, "\n\n%s\n", display.Evolution(step))
		}
	}

	if withMoves {
		fmt.Fprintf(out, "\n\n%s\n", display.MoveList(profile))
	}
	return nil
}
