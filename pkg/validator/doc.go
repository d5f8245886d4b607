// Package validator is the predicate library behind form rule evaluation.
//
// Every check exists in two shapes. The predicate form (IsAllDigits, IsByte,
// IsFloat, InIntRange, IsWithinMaxLength, HasMinLength, IsLuhn, IsDate, MatchesMask)
// is a pure function over a field's textual value and is what the rules engine
// calls. The Rule form (Byte, IntRange, MaxLength, CreditCard, Date, ...)
// wraps the same predicate together with translation-friendly error metadata,
// for callers that validate values directly in Go code:
//
//	err := validator.Apply(
//	    validator.Required("zip", zip),
//	    validator.MaskRule("zip", zip, `\d{5}`),
//	    validator.Date("dob", dob, "MM/dd/yyyy", true),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    first, _ := verrs.First()
//	    // first.Field should receive focus
//	}
//
// # Numbers
//
// Integer rules (byte, short, integer) first classify the value with
// IsAllDigits, which picks the digit alphabet from the prefix: "0x" for
// hexadecimal, a leading "0" for octal, otherwise decimal with an optional
// "-". ParseInteger then parses in that same base and the result is checked
// against the bounds of the type. IsFloat accepts at most one decimal point.
//
// # Lengths
//
// Length rules count characters (runes) and can normalize line endings with
// LineEndAdjustment so that a textarea measured by the browser and by the
// server agree. HasMinLength never fails a blank value.
//
// # Masks
//
// Masks are ECMAScript regular expressions matched against the whole value,
// with a per-match timeout (DefaultMaskTimeout).
//
// All functions are stateless and safe for concurrent use.
package validator
