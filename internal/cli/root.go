// Package cli implements the dunspars CLI commands.
package cli

import (
	"context"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/fx"

	"github.com/norune/dunspars-sub000/internal/config"
	"github.com/norune/dunspars-sub000/internal/domain"
	fxmodules "github.com/norune/dunspars-sub000/internal/fx"
	"github.com/norune/dunspars-sub000/internal/service"
)

var (
	gameFlag    string
	colorFlag   bool
	noColorFlag bool
	dbFlag      string
)

// RootCmd is the top-level command.
var RootCmd = &cobra.Command{
	Use:   "dunspars",
	Short: "Pokémon reference on the command line",
	Long: "A command-line reference for Pokémon data: species, types, moves,\n" +
		"abilities and evolutions, resolved against any mainline game's ruleset.\n" +
		"Run `dunspars setup` once to build the local database.",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// The flag must land in the environment before the first
		// service graph is built.
		if dbFlag != "" {
			os.Setenv("DUNSPARS_DB", dbFlag)
		}
		return applyColorPreference()
	},
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&gameFlag, "game", "g", "", "Game to resolve data against (default: the configured game, or the latest)")
	RootCmd.PersistentFlags().BoolVar(&colorFlag, "color", false, "Force colored output")
	RootCmd.PersistentFlags().BoolVar(&noColorFlag, "no-color", false, "Disable colored output")
	RootCmd.PersistentFlags().StringVar(&dbFlag, "db", "", "Database path (default: $DUNSPARS_DB or the user cache dir)")
}

// populate builds the service graph and extracts the requested
// components. Construction is lazy, so a command only pays for the
// dependencies it asks for; setup in particular never opens the
// read-side database.
func populate(targets ...any) error {
	app := fx.New(fxmodules.Module, fx.NopLogger, fx.Populate(targets...))
	return app.Err()
}

// applyColorPreference settles the global color switch: explicit flags
// win, then the configured preference, then fatih/color's own terminal
// detection.
func applyColorPreference() error {
	if colorFlag {
		color.NoColor = false
		return nil
	}
	if noColorFlag {
		color.NoColor = true
		return nil
	}

	var file *config.File
	if err := populate(&file); err != nil {
		return err
	}
	collection, err := file.Read()
	if err != nil {
		return err
	}

	switch value, _ := collection.Get("color"); value {
	case "true":
		color.NoColor = false
	case "false":
		color.NoColor = true
	}
	return nil
}

// activeGame resolves the generation context for a command: the --game
// flag wins, then the configured default, then the newest release.
// Overrides pass through validation so a typo comes back with
// suggestions.
func activeGame(ctx context.Context, file *config.File, games *service.GameService, validator *service.ValidateService) (*domain.Game, error) {
	override := gameFlag
	if override == "" {
		collection, err := file.Read()
		if err != nil {
			return nil, err
		}
		override, _ = collection.Get("game")
	}

	if override != "" {
		validated, err := validator.Game(ctx, override)
		if err != nil {
			return nil, err
		}
		override = validated
	}

	return games.ActiveGame(ctx, override)
}
