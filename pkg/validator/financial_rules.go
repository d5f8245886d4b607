package validator

// IsLuhn reports whether value is a non-empty string of decimal digits with a
// valid Luhn checksum. Starting from the rightmost digit every second digit is
// doubled and reduced by 9 when it exceeds 9. The sum must be non-zero and
// divisible by 10, so all-zero numbers are rejected.
func IsLuhn(value string) bool {
	if value == "" || !onlyFrom(value, decimalDigits) {
		return false
	}

	sum := 0
	double := false
	for i := len(value) - 1; i >= 0; i-- {
		digit := int(value[i] - '0')
		if double {
			digit *= 2
			if digit > 9 {
				digit -= 9
			}
		}
		sum += digit
		double = !double
	}

	return sum != 0 && sum%10 == 0
}

// CreditCard validates a card number with the Luhn checksum. Separators such
// as spaces or dashes are not stripped.
func CreditCard(field, value string) Rule {
	return Rule{
		Check: func() bool { return IsLuhn(value) },
		Error: newError(field, "invalid credit card number", "validation.credit_card", nil),
	}
}
