package validator

import (
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/dlclark/regexp2"
)

// DefaultMaskTimeout bounds a single mask match. Backtracking expressions can
// otherwise run for an unbounded time on crafted input.
const DefaultMaskTimeout = 100 * time.Millisecond

// Mask is a compiled mask expression. Masks use ECMAScript regular expression
// syntax, the dialect they are usually written in for browser forms, so
// lookarounds and backreferences are available.
type Mask struct {
	pattern string
	re      *regexp2.Regexp
}

// CompileMask compiles pattern for full-string matching.
func CompileMask(pattern string) (*Mask, error) {
	re, err := regexp2.Compile("^(?:"+pattern+")$", regexp2.ECMAScript)
	if err != nil {
		return nil, errors.Join(ErrInvalidMask, fmt.Errorf("compile %q: %w", pattern, err))
	}
	re.MatchTimeout = DefaultMaskTimeout
	return &Mask{pattern: pattern, re: re}, nil
}

func (m *Mask) Pattern() string { return m.pattern }

// Match reports whether the whole of value matches the mask.
func (m *Mask) Match(value string) (bool, error) {
	match, err := m.re.FindStringMatch(value)
	if err != nil {
		return false, errors.Join(ErrMaskTimeout, err)
	}
	if match == nil {
		return false, nil
	}
	// "$" may match before a trailing newline, so require the match to span
	// the whole input.
	return match.Index == 0 && match.Length == utf8.RuneCountInString(value), nil
}

// MatchesMask compiles pattern and matches value against it.
func MatchesMask(value, pattern string) (bool, error) {
	m, err := CompileMask(pattern)
	if err != nil {
		return false, err
	}
	return m.Match(value)
}

// MaskRule validates value against a mask pattern. An invalid pattern fails
// the rule.
func MaskRule(field, value, pattern string) Rule {
	return Rule{
		Check: func() bool {
			ok, err := MatchesMask(value, pattern)
			return err == nil && ok
		},
		Error: newError(field, "has an invalid format", "validation.mask",
			map[string]any{"mask": pattern},
		),
	}
}
