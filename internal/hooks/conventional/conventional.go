// Package conventional validates the header of a commit message against the
// Conventional Commits format. It backs the commit-msg hook.
package conventional

import (
	"errors"
	"fmt"
	"io"
)

// ErrInvalidMessage is returned by Run when the commit message was rejected.
var ErrInvalidMessage = errors.New("commit message does not follow the conventional commits format")

// Run validates the commit message file git passes to the commit-msg hook as
// the single element of args. The help block for a rejected message is
// written to stderr and ErrInvalidMessage is returned.
//
// While a merge is in progress the message is accepted without validation,
// unless the configuration disables the exemption.
func Run(stderr io.Writer, args []string) error {
	return run(stderr, args, NewRepoState("."))
}

// run validates the commit message with an injectable repository state.
func run(stderr io.Writer, args []string, state RepoState) error {
	path, err := parseArgs(args)
	if err != nil {
		return err
	}

	// Load configuration from .commit-msg-check.yml
	config, err := LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Merge commit messages are generated by git, let them through before
	// touching the message file
	if config.SkipMerge() && state.MergeInProgress() {
		return nil
	}

	header, err := ReadHeader(path)
	if err != nil {
		return err
	}

	if !ValidHeader(config, header) {
		WriteRejection(stderr, config, header, nil)

		return ErrInvalidMessage
	}

	violations := EvaluateRules(config.Rules, header)
	if len(violations) > 0 {
		WriteRejection(stderr, config, header, violations)

		return ErrInvalidMessage
	}

	return nil
}

// parseArgs extracts the commit message file path git passes to the hook.
func parseArgs(args []string) (string, error) {
	if len(args) != 1 {
		return "", errors.New("expected exactly one argument: path to the commit message file")
	}

	return args[0], nil
}
