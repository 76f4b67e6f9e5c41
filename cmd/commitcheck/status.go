package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/magtools/commitcheck/internal/githooks"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the commit-msg hook status",
	RunE: func(cmd *cobra.Command, args []string) error {
		status, err := githooks.Check(".")
		if err != nil {
			return err
		}

		switch {
		case status.Installed:
			printStatus("✓", fmt.Sprintf("commit-msg hook installed (%s)", status.Path), color.FgGreen)
		case status.Foreign:
			printStatus("⚠", fmt.Sprintf("A foreign commit-msg hook is present (%s)", status.Path), color.FgYellow)
		default:
			printStatus("✗", "commit-msg hook not installed, run 'commitcheck install'", color.FgRed)
		}

		return nil
	},
}
