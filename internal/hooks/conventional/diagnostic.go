package conventional

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// conventionalCommitsURL documents the enforced message format.
const conventionalCommitsURL = "https://www.conventionalcommits.org/en/v1.0.0/"

// rejectionExamples are shown with every rejection.
var rejectionExamples = []string{
	"feat: allow provided config object to extend other configs",
	"refactor!: drop support for python 3.7",
	"docs: correct spelling of CHANGELOG",
	"feat(lang): add polish language",
}

// WriteRejection writes the help block shown when a commit message header is
// rejected, including any extra rule violations. Color is dropped
// automatically when w is not a terminal.
func WriteRejection(w io.Writer, config *Config, header string, violations []RuleViolation) {
	fail := color.New(color.FgRed, color.Bold)
	label := color.New(color.FgYellow, color.Bold)

	fail.Fprintln(w, "✗ Commit message does not follow Conventional Commits.")
	fmt.Fprintf(w, "  See %s\n", conventionalCommitsURL)
	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s %q\n", label.Sprint("Commit message:"), header)
	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s  <type>(<optional scope>): <description>\n", label.Sprint("Format:"))
	fmt.Fprintf(w, "%s   %s\n", label.Sprint("Types:"), strings.Join(config.EffectiveTypes(), ", "))
	fmt.Fprintln(w, "A ! after the type or scope marks a breaking change.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, label.Sprint("Examples:"))

	for _, example := range rejectionExamples {
		fmt.Fprintf(w, "  %s\n", example)
	}

	if len(violations) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, label.Sprint("Rule violations:"))

		for i, v := range violations {
			fmt.Fprintf(w, "  %d. [%s] %s\n", i+1, v.Rule.Name, violationMessage(v))
		}
	}
}

// violationMessage returns a custom message or generates a default based on rule type.
func violationMessage(v RuleViolation) string {
	if v.Rule.Message != "" {
		return v.Rule.Message
	}

	// Default message based on rule type
	if v.Rule.Type == RuleTypeDeny {
		return fmt.Sprintf("pattern %q must not match the header", v.Rule.Pattern)
	}

	return fmt.Sprintf("pattern %q must match the header", v.Rule.Pattern)
}
