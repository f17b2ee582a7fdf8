package main

import (
	"os"

	"github.com/thenoetrevino/chores/cmd"
	"github.com/thenoetrevino/chores/internal/cli"
)

func main() {
	if err := cmd.Run(os.Args[1:]); err != nil {
		os.Exit(cli.ExitCodeFor(err))
	}
}
