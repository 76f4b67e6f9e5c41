package conventional

// RuleViolation represents a failed rule check.
type RuleViolation struct {
	Rule    Rule
	Matched bool // For deny rules: true means pattern matched (violation)
	// For require rules: false means pattern didn't match (violation)
}

// EvaluateRules evaluates all rules against the header line.
// Returns a slice of violations (empty if all rules pass).
func EvaluateRules(rules []Rule, header string) []RuleViolation {
	var violations []RuleViolation

	for _, rule := range rules {
		// Use cached regex
		matched := rule.regex.MatchString(header)

		// Check if rule is violated
		violated := false
		if rule.Type == RuleTypeDeny && matched {
			violated = true
		}

		if rule.Type == RuleTypeRequire && !matched {
			violated = true
		}

		if violated {
			violations = append(violations, RuleViolation{
				Rule:    rule,
				Matched: matched,
			})
		}
	}

	return violations
}
