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
		Use:   "ability <name>",
		Short: "Show an ability's effect",
		Args:  cobra.ExactArgs(1),
		RunE:  runAbility,
	}

	RootCmd.AddCommand(cmd)
}

func runAbility(cmd *cobra.Command, args []string) error {
	var (
		file      *config.File
		validator *service.ValidateService
		games     *service.GameService
		abilities *service.AbilityService
	)
	if err := populate(&file, &validator, &games, &abilities); err != nil {
		return err
	}

	ctx := cmd.Context()
	game, err := activeGame(ctx, file, games, validator)
	if err != nil {
		return err
	}

	name, err := validator.Ability(ctx, args[0])
	if err != nil {
		return err
	}
	ability, err := abilities.Resolve(ctx, name, game.Generation)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "\n%s\n", display.Ability(ability))
	return nil
}
