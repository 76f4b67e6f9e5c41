package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/magtools/commitcheck/internal/githooks"
)

var installForce bool

var installCmd = &cobra.Command{
	Use:   "install",
	Short: "Install the commit-msg hook",
	Long: `Install the commit-msg hook into the hooks directory of the current
repository.

The hook is a thin shim that runs 'commitcheck run commit-msg', so upgrading
commitcheck upgrades the hook behavior with it. An existing foreign hook is
moved to commit-msg.backup unless --force is given.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		execPath, err := os.Executable()
		if err != nil {
			return fmt.Errorf("failed to locate the commitcheck binary: %w", err)
		}

		result, err := githooks.Install(".", execPath, installForce)
		if err != nil {
			return err
		}

		if result.BackedUp {
			printStatus("⚠", "Existing commit-msg hook moved to commit-msg"+githooks.BackupSuffix, color.FgYellow)
		}

		printStatus("✓", fmt.Sprintf("commit-msg hook installed at %s", result.Path), color.FgGreen)

		return nil
	},
}

func init() {
	installCmd.Flags().BoolVar(&installForce, "force", false, "Overwrite an existing hook without keeping a backup")
}
