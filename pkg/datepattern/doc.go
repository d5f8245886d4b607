// Package datepattern interprets date layouts written with the MM, dd and yyyy
// tokens (for example "MM/dd/yyyy", "dd.MM.yyyy" or "yyyyMMdd") and checks
// values against them.
//
// Compile locates the three tokens, decides which of the supported orders is in
// effect, and synthesizes an anchored matcher whose separators are taken from
// the layout. Extract returns the day, month and year captured by that matcher
// and Match additionally checks calendar correctness, including the Gregorian
// leap-year rule.
//
//	p, err := datepattern.Compile("dd/MM/yyyy", true)
//	if err != nil {
//		// ErrMissingToken or ErrUnsupportedOrder
//	}
//	p.Match("29/02/2024") // true
//	p.Match("29/02/2023") // false
package datepattern
