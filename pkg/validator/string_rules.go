package validator

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// IsBlank reports whether value is empty after trimming whitespace.
func IsBlank(value string) bool {
	return strings.TrimSpace(value) == ""
}

// LineEndAdjustment normalizes line endings to a declared length. Every "\n"
// counts as endLength characters and the raw "\r" and "\n" characters are
// discounted, so with endLength 2 a "\r\n" pair adjusts by 0 and a bare "\n"
// adjusts by +1.
func LineEndAdjustment(value string, endLength int) int {
	var cr, lf int
	for i := 0; i < len(value); i++ {
		switch value[i] {
		case '\r':
			cr++
		case '\n':
			lf++
		}
	}
	return lf*endLength - (cr + lf)
}

// AdjustedLength is the character count of value plus adjustment.
func AdjustedLength(value string, adjustment int) int {
	return utf8.RuneCountInString(value) + adjustment
}

// IsWithinMaxLength reports whether the adjusted length of value is at most max.
func IsWithinMaxLength(value string, max, adjustment int) bool {
	return AdjustedLength(value, adjustment) <= max
}

// HasMinLength reports whether the adjusted length of value is at least min.
// Blank values always pass; pair it with Required when they must be rejected.
func HasMinLength(value string, min, adjustment int) bool {
	if IsBlank(value) {
		return true
	}
	return AdjustedLength(value, adjustment) >= min
}

// Required validates that value is not empty after trimming whitespace.
func Required(field, value string) Rule {
	return Rule{
		Check: func() bool { return !IsBlank(value) },
		Error: newError(field, "field is required", "validation.required", nil),
	}
}

// MaxLength validates the adjusted length of value against max.
// Use LineEndAdjustment to compute adjustment, or pass 0.
func MaxLength(field, value string, max, adjustment int) Rule {
	return Rule{
		Check: func() bool { return IsWithinMaxLength(value, max, adjustment) },
		Error: newError(field,
			fmt.Sprintf("must be at most %d characters long", max),
			"validation.max_length",
			map[string]any{"max": max},
		),
	}
}

func MinLength(field, value string, min, adjustment int) Rule {
	return Rule{
		Check: func() bool { return HasMinLength(value, min, adjustment) },
		Error: newError(field,
			fmt.Sprintf("must be at least %d characters long", min),
			"validation.min_length",
			map[string]any{"min": min},
		),
	}
}
