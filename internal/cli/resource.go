package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/norune/dunspars-sub000/internal/service"
)

func init() {
	cmd := &cobra.Command{
		Use:   "resource <pokemon|moves|abilities|types|games>",
		Short: "List every known name in a resource",
		Long: "Dumps a resource's full name list, one per line by default.\n" +
			"Useful for shell completion and piping into other tools.",
		ValidArgs: []string{"pokemon", "moves", "abilities", "types", "games"},
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE:      runResource,
	}

	cmd.Flags().StringP("delimiter", "d", "\n", "Separator between names")

	RootCmd.AddCommand(cmd)
}

func runResource(cmd *cobra.Command, args []string) error {
	delimiter, _ := cmd.Flags().GetString("delimiter")

	var (
		pokemon   *service.PokemonService
		moves     *service.MoveService
		types     *service.TypeService
		abilities *service.AbilityService
		games     *service.GameService
	)
	if err := populate(&pokemon, &moves, &types, &abilities, &games); err != nil {
		return err
	}

	ctx := cmd.Context()

	var (
		names []string
		err   error
	)
	switch args[0] {
	case "pokemon":
		names, err = pokemon.Names(ctx)
	case "moves":
		names, err = moves.Names(ctx)
	case "abilities":
		names, err = abilities.Names(ctx)
	case "types":
		names, err = types.Names(ctx)
	case "games":
		names, err = games.Names(ctx)
	default:
		return fmt.Errorf("unknown resource %q; valid resources are pokemon, moves, abilities, types, games", args[0])
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "\n%s\n", strings.Join(names, delimiter))
	return nil
}
