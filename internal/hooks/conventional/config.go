package conventional

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the name of the optional configuration file.
const DefaultConfigFile = ".commit-msg-check.yml"

// RuleType defines the type of rule enforcement.
type RuleType string

const (
	// RuleTypeDeny fails if the pattern matches.
	RuleTypeDeny RuleType = "deny"
	// RuleTypeRequire fails if the pattern does NOT match.
	RuleTypeRequire RuleType = "require"
)

// Config represents the complete configuration for commit message checking.
// The zero value enforces the plain Conventional Commits grammar. DefaultConfig
// and LoadConfig return configurations with the header grammar precompiled.
type Config struct {
	// Types replaces the default commit type set when non-empty.
	Types []string `yaml:"types,omitempty"`
	// ExtraTypes extends the commit type set without replacing it.
	ExtraTypes []string `yaml:"extra_types,omitempty"`
	// Scopes restricts the scope to the listed values when non-empty.
	Scopes []string `yaml:"scopes,omitempty"`
	// RequireScope makes the scope mandatory.
	RequireScope bool `yaml:"require_scope,omitempty"`
	// MaxHeaderLength limits the header length when greater than zero.
	MaxHeaderLength int `yaml:"max_header_length,omitempty"`
	// SkipMergeCommits exempts merge commits from validation. Unset means true.
	SkipMergeCommits *bool `yaml:"skip_merge_commits,omitempty"`
	// Rules are additional checks applied to the header line.
	Rules []Rule `yaml:"rules,omitempty"`

	// headerRegex is the compiled header grammar (cached, not in YAML)
	headerRegex *regexp.Regexp
}

// Rule represents a single additional check against the header line.
type Rule struct {
	Name    string   `yaml:"name"`
	Type    RuleType `yaml:"type"`
	Pattern string   `yaml:"pattern"`
	Message string   `yaml:"message,omitempty"`

	// regex is the compiled regular expression (cached, not in YAML)
	regex *regexp.Regexp
}

// SkipMerge reports whether merge commits bypass validation.
func (c *Config) SkipMerge() bool {
	if c.SkipMergeCommits == nil {
		return true
	}

	return *c.SkipMergeCommits
}

// EffectiveTypes returns the commit type set the header grammar accepts.
func (c *Config) EffectiveTypes() []string {
	types := c.Types
	if len(types) == 0 {
		types = DefaultTypes
	}

	return append(append(make([]string, 0, len(types)+len(c.ExtraTypes)), types...), c.ExtraTypes...)
}

// DefaultConfig returns the configuration used when no config file exists.
func DefaultConfig() *Config {
	return &Config{headerRegex: defaultHeaderRegex}
}

// LoadConfig loads and validates configuration from the specified directory.
// A missing config file yields the default configuration.
func LoadConfig(repoPath string) (*Config, error) {
	configPath := filepath.Join(repoPath, DefaultConfigFile)

	// An absent config file is not an error, the defaults apply
	_, statErr := os.Stat(configPath)
	if os.IsNotExist(statErr) {
		return DefaultConfig(), nil
	}

	// Read config file
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Parse YAML
	var config Config
	err = yaml.Unmarshal(data, &config)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	// Validate and compile patterns
	err = validateConfig(&config)
	if err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

func validateConfig(config *Config) error {
	for i, typ := range config.Types {
		if !isTypeToken(typ) {
			return fmt.Errorf("types[%d]: must be lowercase letters, got %q", i, typ)
		}
	}

	for i, typ := range config.ExtraTypes {
		if !isTypeToken(typ) {
			return fmt.Errorf("extra_types[%d]: must be lowercase letters, got %q", i, typ)
		}
	}

	for i, scope := range config.Scopes {
		if !isScopeToken(scope) {
			return fmt.Errorf("scopes[%d]: must be letters only, got %q", i, scope)
		}
	}

	if config.MaxHeaderLength < 0 {
		return fmt.Errorf("max_header_length must not be negative, got %d", config.MaxHeaderLength)
	}

	for i := range config.Rules {
		rule := &config.Rules[i]

		// Validate rule name
		if rule.Name == "" {
			return fmt.Errorf("rule %d: name is required", i)
		}

		// Validate rule type
		if rule.Type != RuleTypeDeny && rule.Type != RuleTypeRequire {
			return fmt.Errorf("rule %q: type must be 'deny' or 'require', got %q", rule.Name, rule.Type)
		}

		// Validate pattern (compile regex)
		if rule.Pattern == "" {
			return fmt.Errorf("rule %q: pattern is required", rule.Name)
		}

		re, err := regexp.Compile(rule.Pattern)
		if err != nil {
			return fmt.Errorf("rule %q: invalid regex pattern: %w", rule.Name, err)
		}

		// Cache the compiled regex
		rule.regex = re
	}

	// The type and scope tokens validated above contain only letters, so the
	// assembled grammar is always a valid pattern.
	config.headerRegex = regexp.MustCompile(headerPattern(config))

	return nil
}

// isTypeToken reports whether s is usable as a commit type.
func isTypeToken(s string) bool {
	if s == "" {
		return false
	}

	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}

	return true
}

// isScopeToken reports whether s is usable as a commit scope.
func isScopeToken(s string) bool {
	if s == "" {
		return false
	}

	for _, r := range s {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') {
			return false
		}
	}

	return true
}
