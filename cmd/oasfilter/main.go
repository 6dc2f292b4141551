package main

import (
	"context"
	"fmt"
	"os"

	"github.com/erraggy/oasfilter"
	"github.com/erraggy/oasfilter/cmd/oasfilter/commands"
	"github.com/erraggy/oasfilter/internal/mcpserver"
)

func main() {
	args := os.Args[1:]

	if len(args) > 0 {
		switch args[0] {
		case "version", "-v", "--version":
			fmt.Printf("oasfilter v%s\n", oasfilter.Version())
			return
		case "help", "-h", "--help":
			commands.PrintUsage(os.Stdout)
			return
		case "mcp":
			if err := mcpserver.Run(context.Background()); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
			return
		}
	}

	// Bare invocation from a terminal gets help instead of blocking on
	// a stdin read.
	if len(args) == 0 && !commands.StdinIsPiped() {
		commands.PrintUsage(os.Stderr)
		os.Exit(1)
	}

	if err := commands.HandleFilter(args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
