package ruleset

import "github.com/dmitrymomot/formrules/pkg/rules"

var defaultMessages = map[rules.Kind]string{
	rules.KindRequired:   "{0} is required.",
	rules.KindMaxLength:  "{0} can not be greater than ${var:maxlength} characters.",
	rules.KindMinLength:  "{0} can not be less than ${var:minlength} characters.",
	rules.KindByte:       "{0} must be a byte.",
	rules.KindShort:      "{0} must be a short.",
	rules.KindInteger:    "{0} must be an integer.",
	rules.KindFloat:      "{0} must be a float.",
	rules.KindIntRange:   "{0} is not in the range ${var:min} through ${var:max}.",
	rules.KindFloatRange: "{0} is not in the range ${var:min} through ${var:max}.",
	rules.KindMask:       "{0} is invalid.",
	rules.KindDate:       "{0} is not a date.",
	rules.KindCreditCard: "{0} is an invalid credit card number.",
}

const fallbackMessage = "{0} is invalid."

// template picks the message template for kind: the field override first,
// then the document default, then the built-in one.
func template(kind rules.Kind, field FieldDocument, doc map[string]string) string {
	if m, ok := field.Msgs[string(kind)]; ok {
		return m
	}
	if m, ok := doc[string(kind)]; ok {
		return m
	}
	if m, ok := defaultMessages[kind]; ok {
		return m
	}
	return fallbackMessage
}
