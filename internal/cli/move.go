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
		Use:   "move <name>",
		Short: "Show a move's data",
		Args:  cobra.ExactArgs(1),
		RunE:  runMove,
	}

	RootCmd.AddCommand(cmd)
}

func runMove(cmd *cobra.Command, args []string) error {
	var (
		file      *config.File
		validator *service.ValidateService
		games     *service.GameService
		moves     *service.MoveService
	)
	if err := populate(&file, &validator, &games, &moves); err != nil {
		return err
	}

	ctx := cmd.Context()
	game, err := activeGame(ctx, file, games, validator)
	if err != nil {
		return err
	}

	name, err := validator.Move(ctx, args[0])
	if err != nil {
		return err
	}
	move, err := moves.Resolve(ctx, name, game.Generation)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "\n%s\n", display.Move(move))
	return nil
}
