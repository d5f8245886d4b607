package rules

import "github.com/dmitrymomot/formrules/pkg/form"

// Reporter is notified once after a pass that produced failures. It receives
// the messages in rule set order and the field that should take focus.
// Reporters observe the result; they cannot change it.
type Reporter interface {
	Report(messages []string, focus *form.Field)
}

// ReporterFunc adapts a function to Reporter.
type ReporterFunc func(messages []string, focus *form.Field)

func (f ReporterFunc) Report(messages []string, focus *form.Field) {
	f(messages, focus)
}
