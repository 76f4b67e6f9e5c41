package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "commitcheck",
	Short: "Conventional commit message enforcement for git repositories",
	Long: `Commitcheck validates commit message headers against the Conventional
Commits format and manages the commit-msg hook that enforces it.

Accepted headers have the form:

  <type>(<optional scope>): <description>

Run 'commitcheck install' inside a repository to enable enforcement. Merge
commits are exempt, their messages are generated by git.`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(installCmd)
	rootCmd.AddCommand(uninstallCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(versionCmd)
}

// printStatus prints a status line with color
func printStatus(symbol, message string, colorAttr color.Attribute) {
	c := color.New(colorAttr)
	fmt.Printf("%s %s\n", c.Sprint(symbol), message)
}
