package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/magtools/commitcheck/internal/hooks/conventional"
)

// runCmd is the hidden target of the installed hook shims.
var runCmd = &cobra.Command{
	Use:    "run <hook-name> [args...]",
	Short:  "Execute hook logic (called by installed git hooks)",
	Hidden: true,
	Args:   cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		switch args[0] {
		case "commit-msg":
			return conventional.Run(os.Stderr, args[1:])
		default:
			// Unknown hook, succeed so a stale shim never blocks git
			return nil
		}
	},
}
