package validator

import "strings"

const (
	decimalDigits = "0123456789"
	octalDigits   = "01234567"
	hexDigits     = "0123456789abcdefABCDEF"
)

// IsAllDigits classifies value by its numeric prefix and checks that the rest
// uses only the digits of that base:
//
//   - "0x" or "0X" selects hexadecimal digits from offset 2
//   - a leading "0" selects octal digits from offset 1
//   - a leading "-" is skipped and decimal digits are checked from offset 1
//   - anything else is checked as decimal from offset 0
//
// A value whose remainder is empty after the prefix ("0", "0x", "-") passes.
func IsAllDigits(value string) bool {
	alphabet := decimalDigits
	start := 0

	switch {
	case strings.HasPrefix(value, "0x"), strings.HasPrefix(value, "0X"):
		alphabet = hexDigits
		start = 2
	case strings.HasPrefix(value, "0"):
		alphabet = octalDigits
		start = 1
	case strings.HasPrefix(value, "-"):
		start = 1
	}

	return onlyFrom(value[start:], alphabet)
}

// IsDecimalDigits checks for an optional leading "-" followed by at least one
// base-10 digit. There is no octal or hexadecimal handling.
func IsDecimalDigits(value string) bool {
	digits := strings.TrimPrefix(value, "-")
	return digits != "" && onlyFrom(digits, decimalDigits)
}

func onlyFrom(s, alphabet string) bool {
	for i := 0; i < len(s); i++ {
		if strings.IndexByte(alphabet, s[i]) < 0 {
			return false
		}
	}
	return true
}
