package rules

import (
	"github.com/dmitrymomot/formrules/pkg/form"
	"github.com/dmitrymomot/formrules/pkg/validator"
)

// Failure is one failed entry.
type Failure struct {
	Kind    Kind
	Message string
	Field   *form.Field
}

// Result is the outcome of one validation pass. Valid is true exactly when
// Failures is empty, and Focus is the field of the first failure.
type Result struct {
	Valid    bool
	Failures []Failure
	Focus    *form.Field
}

// Messages returns the failure messages in rule set order.
func (r Result) Messages() []string {
	if len(r.Failures) == 0 {
		return nil
	}
	out := make([]string, len(r.Failures))
	for i, f := range r.Failures {
		out[i] = f.Message
	}
	return out
}

// Err converts the failures to validator.ValidationErrors, or returns nil for a
// valid result.
func (r Result) Err() error {
	if r.Valid {
		return nil
	}
	errs := make(validator.ValidationErrors, 0, len(r.Failures))
	for _, f := range r.Failures {
		errs.Add(validator.ValidationError{
			Field:             f.Field.Name,
			Message:           f.Message,
			TranslationKey:    "validation." + string(f.Kind),
			TranslationValues: map[string]any{"field": f.Field.Name},
		})
	}
	return errs
}

func (r *Result) add(kind Kind, message string, field *form.Field) {
	r.Failures = append(r.Failures, Failure{Kind: kind, Message: message, Field: field})
	if r.Focus == nil {
		r.Focus = field
	}
}
