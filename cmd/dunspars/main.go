package main

import (
	"os"

	"github.com/norune/dunspars-sub000/internal/cli"
)

func main() {
	if err := cli.RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
