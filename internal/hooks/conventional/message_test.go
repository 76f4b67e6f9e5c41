package conventional_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/magtools/commitcheck/internal/hooks/conventional"
)

func TestHeaderOf(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    string
	}{
		{
			name:    "header only",
			message: "feat: add login",
			want:    "feat: add login",
		},
		{
			name:    "header with trailing newline",
			message: "feat: add login\n",
			want:    "feat: add login",
		},
		{
			name:    "header and body",
			message: "feat: add login\n\nThis adds the login endpoint.\n",
			want:    "feat: add login",
		},
		{
			name:    "Windows line endings (CRLF)",
			message: "feat: add login\r\n\r\nThis is body.",
			want:    "feat: add login",
		},
		{
			name:    "header with spaces (should be preserved)",
			message: "  feat: padded header  \nBody",
			want:    "  feat: padded header  ",
		},
		{
			name:    "empty message",
			message: "",
			want:    "",
		},
		{
			name:    "leading empty line",
			message: "\nfeat: add login",
			want:    "",
		},
		{
			name:    "only empty lines",
			message: "\n\n\n",
			want:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := conventional.HeaderOfForTesting(tt.message)
			if got != tt.want {
				t.Errorf("header = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestReadHeader(t *testing.T) {
	tmpDir := t.TempDir()

	path := filepath.Join(tmpDir, "COMMIT_EDITMSG")

	err := os.WriteFile(path, []byte("fix(lang): handle empty input\r\n\r\nLonger explanation.\n"), 0o644)
	if err != nil {
		t.Fatalf("failed to write commit message file: %v", err)
	}

	header, err := conventional.ReadHeader(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if header != "fix(lang): handle empty input" {
		t.Errorf("ReadHeader() = %q, want %q", header, "fix(lang): handle empty input")
	}
}

func TestReadHeader_MissingFile(t *testing.T) {
	tmpDir := t.TempDir()

	_, err := conventional.ReadHeader(filepath.Join(tmpDir, "COMMIT_EDITMSG"))
	if err == nil {
		t.Error("expected error for missing commit message file, got nil")
	}

	if !contains(err.Error(), "failed to read commit message file") {
		t.Errorf("expected 'failed to read commit message file' error, got: %v", err)
	}
}
