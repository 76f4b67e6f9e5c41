package conventional

import (
	"fmt"
	"os"
	"strings"
)

// ReadHeader returns the header (first line) of the commit message file at
// path. A CRLF file yields a header without the trailing carriage return.
func ReadHeader(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read commit message file: %w", err)
	}

	return headerOf(string(data)), nil
}

// headerOf extracts the header from a complete commit message.
func headerOf(message string) string {
	// Normalize line endings
	message = strings.ReplaceAll(message, "\r\n", "\n")

	header, _, _ := strings.Cut(message, "\n")

	return header
}
