package rules

import (
	"slices"

	"github.com/dmitrymomot/formrules/pkg/form"
	"github.com/dmitrymomot/formrules/pkg/validator"
)

// Kind names a rule.
type Kind string

const (
	KindRequired   Kind = "required"
	KindMaxLength  Kind = "maxlength"
	KindMinLength  Kind = "minlength"
	KindByte       Kind = "byte"
	KindShort      Kind = "short"
	KindInteger    Kind = "integer"
	KindFloat      Kind = "float"
	KindIntRange   Kind = "intRange"
	KindFloatRange Kind = "floatRange"
	KindMask       Kind = "mask"
	KindDate       Kind = "date"
	KindCreditCard Kind = "creditCard"
)

// Outcome is the result of checking one value.
type Outcome int

const (
	Pass Outcome = iota
	Fail
	// Skip means the rule has nothing to check, usually because an optional
	// parameter is absent.
	Skip
)

func (o Outcome) String() string {
	switch o {
	case Pass:
		return "pass"
	case Fail:
		return "fail"
	case Skip:
		return "skip"
	default:
		return "unknown"
	}
}

// Checker evaluates a field value against a rule. A non-nil error reports a
// configuration problem (for example an invalid mask); it is logged and the
// returned Outcome still decides the entry.
type Checker func(value string, params ParamLookup) (Outcome, error)

// Applicability declares which fields a rule kind evaluates.
type Applicability struct {
	// Kinds lists the field kinds the rule applies to.
	Kinds []form.Kind
	// HonorsDisabled skips disabled fields.
	HonorsDisabled bool
	// SkipEmpty skips fields whose current value is empty.
	SkipEmpty bool
}

// AppliesTo reports whether the rule evaluates f, and why not otherwise.
func (a Applicability) AppliesTo(f *form.Field) (bool, string) {
	if !slices.Contains(a.Kinds, f.EffectiveKind()) {
		return false, "field kind not applicable"
	}
	if a.HonorsDisabled && f.Disabled {
		return false, "field disabled"
	}
	return true, ""
}

// Definition is everything the engine needs to evaluate a rule kind.
type Definition struct {
	Applicability
	Check Checker
	// Message is used when an entry has no message of its own. "%s" is
	// replaced with the field name.
	Message string
}

var (
	textual  = []form.Kind{form.KindHidden, form.KindText, form.KindTextarea}
	lengthy  = []form.Kind{form.KindHidden, form.KindText, form.KindPassword, form.KindTextarea}
	numeric  = []form.Kind{form.KindHidden, form.KindText, form.KindTextarea, form.KindSelectOne, form.KindRadio}
	required = []form.Kind{form.KindText, form.KindTextarea, form.KindFile, form.KindSelectOne, form.KindRadio, form.KindPassword}
	masked   = []form.Kind{form.KindHidden, form.KindText, form.KindTextarea, form.KindFile}
	card     = []form.Kind{form.KindText, form.KindTextarea}
)

// Builtins returns the definitions of the built-in rule kinds. The map is
// freshly allocated on every call.
func Builtins() map[Kind]Definition {
	number := Applicability{Kinds: numeric, HonorsDisabled: true, SkipEmpty: true}
	return map[Kind]Definition{
		KindRequired: {
			Applicability: Applicability{Kinds: required},
			Check:         checkRequired,
			Message:       "%s is required.",
		},
		KindMaxLength: {
			Applicability: Applicability{Kinds: lengthy, HonorsDisabled: true},
			Check:         checkMaxLength,
			Message:       "%s is too long.",
		},
		KindMinLength: {
			Applicability: Applicability{Kinds: lengthy, HonorsDisabled: true},
			Check:         checkMinLength,
			Message:       "%s is too short.",
		},
		KindByte: {
			Applicability: number,
			Check:         predicate(validator.IsByte),
			Message:       "%s must be a byte.",
		},
		KindShort: {
			Applicability: number,
			Check:         predicate(validator.IsShort),
			Message:       "%s must be a short.",
		},
		KindInteger: {
			Applicability: number,
			Check:         predicate(validator.IsInteger),
			Message:       "%s must be an integer.",
		},
		KindFloat: {
			Applicability: number,
			Check:         predicate(validator.IsFloat),
			Message:       "%s must be a number.",
		},
		KindIntRange: {
			Applicability: Applicability{Kinds: textual, HonorsDisabled: true, SkipEmpty: true},
			Check:         checkIntRange,
			Message:       "%s is out of range.",
		},
		KindFloatRange: {
			Applicability: Applicability{Kinds: textual, HonorsDisabled: true, SkipEmpty: true},
			Check:         checkFloatRange,
			Message:       "%s is out of range.",
		},
		KindMask: {
			Applicability: Applicability{Kinds: masked, HonorsDisabled: true, SkipEmpty: true},
			Check:         checkMask,
			Message:       "%s is invalid.",
		},
		KindDate: {
			Applicability: Applicability{Kinds: textual, HonorsDisabled: true, SkipEmpty: true},
			Check:         checkDate,
			Message:       "%s is not a date.",
		},
		KindCreditCard: {
			Applicability: Applicability{Kinds: card, HonorsDisabled: true, SkipEmpty: true},
			Check:         predicate(validator.IsLuhn),
			Message:       "%s is an invalid credit card number.",
		},
	}
}
