package conventional

import "io"

// Test helpers - exported for testing only

// RunForTesting exposes run with an injectable repository state.
func RunForTesting(stderr io.Writer, args []string, state RepoState) error {
	return run(stderr, args, state)
}

// HeaderOfForTesting exposes headerOf for testing.
func HeaderOfForTesting(message string) string {
	return headerOf(message)
}
