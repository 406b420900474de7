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
		Use:   "type <primary> [secondary]",
		Short: "Show a type's offense and defense charts",
		Args:  cobra.RangeArgs(1, 2),
		RunE:  runType,
	}

	RootCmd.AddCommand(cmd)
}

func runType(cmd *cobra.Command, args []string) error {
	var (
		file      *config.File
		validator *service.ValidateService
		games     *service.GameService
		types     *service.TypeService
	)
	if err := populate(&file, &validator, &games, &types); err != nil {
		return err
	}

	ctx := cmd.Context()
	game, err := activeGame(ctx, file, games, validator)
	if err != nil {
		return err
	}

	primaryName, err := validator.Type(ctx, args[0])
	if err != nil {
		return err
	}
	primary, err := types.Resolve(ctx, primaryName, game.Generation)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "\n%s\n\n", display.TypeChart(primary.OffenseChart))

	if len(args) == 1 {
		fmt.Fprintf(out, "%s\n", display.TypeChart(primary.DefenseChart))
		return nil
	}

	secondaryName, err := validator.Type(ctx, args[1])
	if err != nil {
		return err
	}
	secondary, err := types.Resolve(ctx, secondaryName, game.Generation)
	if err != nil {
		return err
	}

	combined := domain.Combine(primary.DefenseChart, secondary.DefenseChart)
	fmt.Fprintf(out, "%s\n\n%s\n", display.TypeChart(secondary.OffenseChart), display.TypeChart(combined))
	return nil
}
