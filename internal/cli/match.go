package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/norune/dunspars-sub000/internal/config"
	"github.com/norune/dunspars-sub000/internal/display"
	"github.com/norune/dunspars-sub000/internal/service"
)

func init() {
	cmd := &cobra.Command{
		Use:   "match <defender>... <attacker>",
		Short: "Grade both sides' moves in a head-to-head",
		Long: "Pits the last named Pokémon against each of the others in turn and\n" +
			"groups every damaging move by the multiplier it lands at.",
		Args: cobra.RangeArgs(2, 7),
		RunE: runMatch,
	}

	cmd.Flags().BoolP("verbose", "v", false, "Show neutral and resisted moves too")
	cmd.Flags().BoolP("stab-only", "s", false, "Only consider each side's own-type moves")

	RootCmd.AddCommand(cmd)
}

func runMatch(cmd *cobra.Command, args []string) error {
	verbose, _ := cmd.Flags().GetBool("verbose")
	stabOnly, _ := cmd.Flags().GetBool("stab-only")

	var (
		file      *config.File
		validator *service.ValidateService
		games     *service.GameService
		matchups  *service.MatchupService
	)
	if err := populate(&file, &validator, &games, &matchups); err != nil {
		return err
	}

	ctx := cmd.Context()
	game, err := activeGame(ctx, file, games, validator)
	if err != nil {
		return err
	}

	defenders := make([]string, 0, len(args)-1)
	for _, arg := range args[:len(args)-1] {
		name, err := validator.Pokemon(ctx, arg)
		if err != nil {
			return err
		}
		defenders = append(defenders, name)
	}
	attacker, err := validator.Pokemon(ctx, args[len(args)-1])
	if err != nil {
		return err
	}

	pairings, err := matchups.Analyze(ctx, defenders, attacker, game, verbose, stabOnly)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for i := range pairings {
		fmt.Fprintf(out, "\n%s\n\n\n", display.Matchup(&pairings[i]))
	}
	return nil
}
