// main is the entry point for the calldeck CLI.
package main

import (
	"os"

	"github.com/fatih/color"

	"github.com/calldeck/calldeck/cmd"
)

func main() {
	err := cmd.Execute()

	if closeErr := cmd.CloseStores(); closeErr != nil {
		color.New(color.FgYellow).Fprintf(os.Stderr, "⚠️  Failed to close stores: %v\n", closeErr)
	}

	if err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "❌ %v\n", err)
		os.Exit(1)
	}
}
