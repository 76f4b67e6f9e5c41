package conventional

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// DefaultTypes is the commit type set enforced when the configuration does
// not override it.
var DefaultTypes = []string{
	"build", "chore", "ci", "docs", "feat", "fix", "perf", "refactor", "revert", "style", "test",
}

var defaultHeaderRegex = regexp.MustCompile(headerPattern(&Config{}))

// headerPattern assembles the header grammar for the configured type and
// scope sets:
//
//	<type>(<optional scope>)!: <description>
//
// The pattern is anchored at the start of the header only, so anything may
// follow the first description character.
func headerPattern(config *Config) string {
	var sb strings.Builder

	sb.WriteString("^(?:")
	sb.WriteString(strings.Join(config.EffectiveTypes(), "|"))
	sb.WriteString(")")

	scope := "[A-Za-z]+"
	if len(config.Scopes) > 0 {
		scope = strings.Join(config.Scopes, "|")
	}

	if config.RequireScope {
		sb.WriteString(`\((?:` + scope + `)\)`)
	} else {
		sb.WriteString(`(?:\((?:` + scope + `)\))?`)
	}

	sb.WriteString("!?: [A-Za-z]")

	return sb.String()
}

// ValidHeader reports whether header matches the configured Conventional
// Commits grammar.
func ValidHeader(config *Config, header string) bool {
	if config.MaxHeaderLength > 0 && utf8.RuneCountInString(header) > config.MaxHeaderLength {
		return false
	}

	// Configs built by hand carry no cached grammar
	re := config.headerRegex
	if re == nil {
		re = regexp.MustCompile(headerPattern(config))
	}

	return re.MatchString(header)
}
