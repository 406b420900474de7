package cli

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/norune/dunspars-sub000/internal/config"
)

// configKeys are the settings the config command accepts. game picks
// the default release to resolve against; color forces output color
// on or off.
var configKeys = []string{"color", "game"}

func init() {
	cmd := &cobra.Command{
		Use:   "config [key] [value]",
		Short: "Read or change saved settings",
		Long: "Without arguments, lists every saved setting. With a key, prints its\n" +
			"value; with a key and value, saves it. Valid keys: " + strings.Join(configKeys, ", ") + ".",
		Args: cobra.MaximumNArgs(2),
		RunE: runConfig,
	}

	cmd.Flags().BoolP("unset", "u", false, "Remove the key")

	RootCmd.AddCommand(cmd)
}

func runConfig(cmd *cobra.Command, args []string) error {
	unset, _ := cmd.Flags().GetBool("unset")

	var file *config.File
	if err := populate(&file); err != nil {
		return err
	}
	collection, err := file.Read()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	if len(args) == 0 {
		if unset {
			return errors.New("--unset needs a key")
		}
		for _, key := range collection.Keys() {
			value, _ := collection.Get(key)
			fmt.Fprintf(out, "%s: %s\n", key, value)
		}
		return nil
	}

	key := args[0]
	if !slices.Contains(configKeys, key) {
		return fmt.Errorf("unknown config key %q; valid keys are %s", key, strings.Join(configKeys, ", "))
	}

	if unset {
		if len(args) > 1 {
			return errors.New("--unset takes only a key")
		}
		collection.Unset(key)
		return file.Save(collection)
	}

	if len(args) == 1 {
		if value, ok := collection.Get(key); ok {
			fmt.Fprintln(out, value)
		}
		return nil
	}

	collection.Set(key, args[1])
	return file.Save(collection)
}
