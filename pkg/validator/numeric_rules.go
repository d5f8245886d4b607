package validator

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ParseInteger parses value in the base selected by its prefix, using the same
// classification as IsAllDigits: "0x" is hexadecimal, a leading "0" is octal and
// everything else, including negative numbers, is decimal.
func ParseInteger(value string) (int64, error) {
	if !IsAllDigits(value) {
		return 0, fmt.Errorf("parse integer %q: %w", value, strconv.ErrSyntax)
	}

	switch {
	case strings.HasPrefix(value, "0x"), strings.HasPrefix(value, "0X"):
		return strconv.ParseInt(value[2:], 16, 64)
	case strings.HasPrefix(value, "0"):
		return strconv.ParseInt(value, 8, 64)
	default:
		return strconv.ParseInt(value, 10, 64)
	}
}

func integerWithin(value string, lo, hi int64) bool {
	n, err := ParseInteger(value)
	if err != nil {
		return false
	}
	return n >= lo && n <= hi
}

// IsByte reports whether value is an integer in [-128, 127].
func IsByte(value string) bool {
	return integerWithin(value, math.MinInt8, math.MaxInt8)
}

// IsShort reports whether value is an integer in [-32768, 32767].
func IsShort(value string) bool {
	return integerWithin(value, math.MinInt16, math.MaxInt16)
}

// IsInteger reports whether value is an integer in [-2147483648, 2147483647].
func IsInteger(value string) bool {
	return integerWithin(value, math.MinInt32, math.MaxInt32)
}

// IsFloat reports whether value is a plain decimal number such as "0.5",
// "-007.10" or "42". At most one decimal point is allowed. The digits are
// checked with IsAllDigits after removing the point and any leading zeros, so
// exponents, hexadecimal and special values like "NaN" are rejected.
func IsFloat(value string) bool {
	if strings.Count(value, ".") > 1 {
		return false
	}

	digits := strings.TrimLeft(strings.ReplaceAll(value, ".", ""), "0")
	if !IsAllDigits(digits) {
		return false
	}

	_, err := strconv.ParseFloat(value, 64)
	return err == nil
}

// InIntRange reports whether value lies in [min, max]. All three operands are
// parsed as base-10 integers; any parse failure fails the check.
func InIntRange(value, min, max string) bool {
	lo, err := strconv.ParseInt(strings.TrimSpace(min), 10, 64)
	if err != nil {
		return false
	}
	hi, err := strconv.ParseInt(strings.TrimSpace(max), 10, 64)
	if err != nil {
		return false
	}
	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return false
	}
	return n >= lo && n <= hi
}

// InFloatRange reports whether value lies in [min, max] as floating-point
// numbers. NaN never satisfies the range.
func InFloatRange(value, min, max string) bool {
	lo, err := strconv.ParseFloat(strings.TrimSpace(min), 64)
	if err != nil {
		return false
	}
	hi, err := strconv.ParseFloat(strings.TrimSpace(max), 64)
	if err != nil {
		return false
	}
	n, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return false
	}
	return n >= lo && n <= hi
}

func Byte(field, value string) Rule {
	return Rule{
		Check: func() bool { return IsByte(value) },
		Error: newError(field, "must be a byte", "validation.byte", nil),
	}
}

func Short(field, value string) Rule {
	return Rule{
		Check: func() bool { return IsShort(value) },
		Error: newError(field, "must be a short", "validation.short", nil),
	}
}

func Integer(field, value string) Rule {
	return Rule{
		Check: func() bool { return IsInteger(value) },
		Error: newError(field, "must be an integer", "validation.integer", nil),
	}
}

func Float(field, value string) Rule {
	return Rule{
		Check: func() bool { return IsFloat(value) },
		Error: newError(field, "must be a number", "validation.float", nil),
	}
}

// IntRange validates that value is an integer between min and max inclusive.
// Bounds are strings because they usually come straight from rule parameters.
func IntRange(field, value, min, max string) Rule {
	return Rule{
		Check: func() bool { return InIntRange(value, min, max) },
		Error: newError(field,
			fmt.Sprintf("must be between %s and %s", min, max),
			"validation.int_range",
			map[string]any{"min": min, "max": max},
		),
	}
}

func FloatRange(field, value, min, max string) Rule {
	return Rule{
		Check: func() bool { return InFloatRange(value, min, max) },
		Error: newError(field,
			fmt.Sprintf("must be between %s and %s", min, max),
			"validation.float_range",
			map[string]any{"min": min, "max": max},
		),
	}
}
