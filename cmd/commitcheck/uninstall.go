package main

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/magtools/commitcheck/internal/githooks"
)

var uninstallCmd = &cobra.Command{
	Use:   "uninstall",
	Short: "Remove the commit-msg hook",
	Long:  `Remove the commitcheck commit-msg hook and restore a backed up hook if present.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		restored, err := githooks.Uninstall(".")
		if err != nil {
			return err
		}

		printStatus("✓", "commit-msg hook removed", color.FgGreen)

		if restored {
			printStatus("✓", "Previous hook restored from commit-msg"+githooks.BackupSuffix, color.FgGreen)
		}

		return nil
	},
}
