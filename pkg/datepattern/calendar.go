package datepattern

// IsLeapYear reports whether year is a leap year in the Gregorian calendar.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// IsValidDate reports whether day/month/year name an existing Gregorian date.
// The year itself is not range checked.
func IsValidDate(day, month, year int) bool {
	if month < 1 || month > 12 {
		return false
	}
	if day < 1 || day > 31 {
		return false
	}

	switch month {
	case 4, 6, 9, 11:
		return day != 31
	case 2:
		if day > 29 {
			return false
		}
		return day < 29 || IsLeapYear(year)
	}

	return true
}
