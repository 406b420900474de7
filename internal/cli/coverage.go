package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/norune/dunspars-sub000/internal/config"
	"github.com/norune/dunspars-sub000/internal/display"
	"github.com/norune/dunspars-sub000/internal/domain"
	"github.com/norune/dunspars-sub000/internal/service"
)

func init() {
	cmd := &cobra.Command{
		Use:   "coverage [pokemon]...",
		Short: "Analyze a team's type coverage",
		Long: "Reports which types a roster threatens super-effectively and which\n" +
			"it resists, type by type. Takes up to six Pokémon, or a saved\n" +
			"trainer's team via --trainer.",
		Args: cobra.MaximumNArgs(6),
		RunE: runCoverage,
	}

	cmd.Flags().StringP("trainer", "t", "", "Analyze a saved trainer's team")

	RootCmd.AddCommand(cmd)
}

func runCoverage(cmd *cobra.Command, args []string) error {
	trainer, _ := cmd.Flags().GetString("trainer")
	if trainer == "" && len(args) == 0 {
		return errors.New("provide up to six pokemon, or a trainer via --trainer")
	}
	if trainer != "" && len(args) > 0 {
		return errors.New("--trainer replaces the positional roster")
	}

	var (
		file      *config.File
		validator *service.ValidateService
		games     *service.GameService
		coverage  *service.CoverageService
	)
	if err := populate(&file, &validator, &games, &coverage); err != nil {
		return err
	}

	ctx := cmd.Context()
	game, err := activeGame(ctx, file, games, validator)
	if err != nil {
		return err
	}

	var report *domain.CoverageReport
	if trainer != "" {
		report, err = coverage.AnalyzeTrainer(ctx, trainer, game)
	} else {
		roster := make([]string, 0, len(args))
		for _, arg := range args {
			name, err := validator.Pokemon(ctx, arg)
			if err != nil {
				return err
			}
			roster = append(roster, name)
		}
		report, err = coverage.Analyze(ctx, roster, game)
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "\n%s\n", display.Coverage(report))
	return nil
}
