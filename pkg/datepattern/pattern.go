package datepattern

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

const (
	monthToken = "MM"
	dayToken   = "dd"
	yearToken  = "yyyy"
)

// Order is the relative position of the month, day and year tokens in a layout.
type Order int

const (
	OrderUnknown Order = iota
	// OrderMonthDayYear matches layouts such as MM/dd/yyyy.
	OrderMonthDayYear
	// OrderDayMonthYear matches layouts such as dd.MM.yyyy.
	OrderDayMonthYear
	// OrderYearMonthDay matches layouts such as yyyy-MM-dd.
	OrderYearMonthDay
)

func (o Order) String() string {
	switch o {
	case OrderMonthDayYear:
		return "month-day-year"
	case OrderDayMonthYear:
		return "day-month-year"
	case OrderYearMonthDay:
		return "year-month-day"
	default:
		return "unknown"
	}
}

type component int

const (
	componentMonth component = iota
	componentDay
	componentYear
)

// token is one of MM, dd or yyyy located inside a layout.
type token struct {
	component component
	start     int
	width     int
}

func (t token) end() int { return t.start + t.width }

// Date holds the numeric components extracted from a value.
type Date struct {
	Year  int
	Month int
	Day   int
}

// Valid reports whether the date exists in the Gregorian calendar.
func (d Date) Valid() bool {
	return IsValidDate(d.Day, d.Month, d.Year)
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// Pattern is a compiled date layout. It is immutable and safe for concurrent use.
type Pattern struct {
	layout string
	order  Order
	strict bool
	tokens [3]token
	re     *regexp.Regexp
}

// Compile interprets layout and builds a matcher for it.
//
// The layout must contain MM, dd and yyyy exactly as written. Whatever text sits
// between two adjacent tokens is a literal separator; adjacent tokens have none.
// In strict mode day and month must be exactly two digits, otherwise one or two
// digits are accepted. The year is always four digits. Text before the first
// token or after the last one is not part of the matcher.
func Compile(layout string, strict bool) (*Pattern, error) {
	if layout == "" {
		return nil, ErrEmptyPattern
	}

	month := token{component: componentMonth, start: strings.Index(layout, monthToken), width: len(monthToken)}
	day := token{component: componentDay, start: strings.Index(layout, dayToken), width: len(dayToken)}
	year := token{component: componentYear, start: strings.Index(layout, yearToken), width: len(yearToken)}
	if month.start < 0 || day.start < 0 || year.start < 0 {
		return nil, fmt.Errorf("%w: %q", ErrMissingToken, layout)
	}

	p := &Pattern{layout: layout, strict: strict}
	switch {
	case month.start < day.start && day.start < year.start:
		p.order = OrderMonthDayYear
		p.tokens = [3]token{month, day, year}
	case day.start < month.start && month.start < year.start:
		p.order = OrderDayMonthYear
		p.tokens = [3]token{day, month, year}
	case year.start < month.start && month.start < day.start:
		p.order = OrderYearMonthDay
		p.tokens = [3]token{year, month, day}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedOrder, layout)
	}

	first, second, third := p.tokens[0], p.tokens[1], p.tokens[2]

	var b strings.Builder
	b.WriteString("^")
	b.WriteString(p.group(first))
	b.WriteString(regexp.QuoteMeta(layout[first.end():second.start]))
	b.WriteString(p.group(second))
	b.WriteString(regexp.QuoteMeta(layout[second.end():third.start]))
	b.WriteString(p.group(third))
	b.WriteString("$")

	re, err := regexp.Compile(b.String())
	if err != nil {
		return nil, fmt.Errorf("compile date pattern %q: %w", layout, err)
	}
	p.re = re

	return p, nil
}

// MustCompile is like Compile but panics if the layout cannot be interpreted.
func MustCompile(layout string, strict bool) *Pattern {
	p, err := Compile(layout, strict)
	if err != nil {
		panic(err)
	}
	return p
}

func (p *Pattern) group(t token) string {
	switch {
	case t.component == componentYear:
		return `(\d{4})`
	case p.strict:
		return `(\d{2})`
	default:
		return `(\d{1,2})`
	}
}

// Layout returns the layout the pattern was compiled from.
func (p *Pattern) Layout() string { return p.layout }

// Order returns the token order of the layout.
func (p *Pattern) Order() Order { return p.order }

// Strict reports whether day and month must be zero padded.
func (p *Pattern) Strict() bool { return p.strict }

// Expr returns the synthesized regular expression.
func (p *Pattern) Expr() string { return p.re.String() }

// Extract matches value against the pattern and returns its components in
// layout order. It does not check calendar correctness.
func (p *Pattern) Extract(value string) (Date, bool) {
	m := p.re.FindStringSubmatch(value)
	if m == nil {
		return Date{}, false
	}

	var d Date
	for i, t := range p.tokens {
		n, err := strconv.Atoi(m[i+1])
		if err != nil {
			return Date{}, false
		}
		switch t.component {
		case componentMonth:
			d.Month = n
		case componentDay:
			d.Day = n
		case componentYear:
			d.Year = n
		}
	}

	return d, true
}

// Match reports whether value satisfies the pattern and names a real date.
func (p *Pattern) Match(value string) bool {
	d, ok := p.Extract(value)
	return ok && d.Valid()
}

// Validate compiles layout and matches value against it in one step.
// A malformed layout is returned as an error so callers can tell it apart from
// a value that simply does not match.
func Validate(layout, value string, strict bool) (bool, error) {
	p, err := Compile(layout, strict)
	if err != nil {
		return false, err
	}
	return p.Match(value), nil
}
