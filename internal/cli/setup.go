package cli

import (
	"github.com/spf13/cobra"

	"github.com/norune/dunspars-sub000/internal/service"
)

func init() {
	cmd := &cobra.Command{
		Use:   "setup",
		Short: "Build the local database from PokeAPI",
		Long: "Fetches every game, move, type, ability and Pokémon from PokeAPI and\n" +
			"writes them to the local database. Runs for a while; everything else\n" +
			"works offline afterwards.",
		Args: cobra.NoArgs,
		RunE: runSetup,
	}

	RootCmd.AddCommand(cmd)
}

func runSetup(cmd *cobra.Command, args []string) error {
	var setup *service.SetupService
	if err := populate(&setup); err != nil {
		return err
	}
	return setup.Run(cmd.Context(), cmd.OutOrStdout())
}
