package validation

import (
	"fmt"
	"strings"
)

// FieldError is a single rule violation: the failing field plus a
// human-readable message.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Rule requires a field to be non-empty after trimming whitespace.
type Rule struct {
	Field string
}

func Required(field string) Rule {
	return Rule{Field: field}
}

// Rules is the ordered rule set a route attaches to its request body.
type Rules []Rule

// PostRules guards create and update: both require the full set of
// content fields, partial updates are not supported.
var PostRules = Rules{
	Required("title"),
	Required("author"),
	Required("body"),
}

// Validate checks the declared body fields against the rule set and
// returns every violation. An empty result means the request is valid.
func (rs Rules) Validate(fields map[string]string) []FieldError {
	var violations []FieldError
	for _, rule := range rs {
		if strings.TrimSpace(fields[rule.Field]) == "" {
			violations = append(violations, FieldError{
				Field:   rule.Field,
				Message: fmt.Sprintf("%s must not be empty", rule.Field),
			})
		}
	}
	return violations
}
