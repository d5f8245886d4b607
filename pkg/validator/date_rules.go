package validator

import (
	"github.com/dmitrymomot/formrules/pkg/datepattern"
)

// IsDate reports whether value matches layout and names a real calendar date.
// The error is non-nil when layout itself cannot be interpreted.
func IsDate(value, layout string, strict bool) (bool, error) {
	return datepattern.Validate(layout, value, strict)
}

// Date validates value against a date layout such as "MM/dd/yyyy". In strict
// mode day and month must be two digits. A malformed layout fails the rule.
func Date(field, value, layout string, strict bool) Rule {
	return Rule{
		Check: func() bool {
			ok, err := IsDate(value, layout, strict)
			return err == nil && ok
		},
		Error: newError(field, "must be a valid date", "validation.date",
			map[string]any{"pattern": layout},
		),
	}
}
