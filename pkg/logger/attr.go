package logger

import (
	"log/slog"
	"strconv"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Errors groups multiple non-nil errors under the key "errors".
// If all errors are nil, it returns an empty Attr.
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

// Error records err under the key "error". A nil error yields an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Form records the form (rule set) name under the key "form".
func Form(name string) slog.Attr {
	return slog.String("form", name)
}

// Field records the field name under the key "field".
func Field(name string) slog.Attr {
	return slog.String("field", name)
}

// RuleKind records the rule kind under the key "rule".
func RuleKind(kind string) slog.Attr {
	return slog.String("rule", kind)
}

// RuleIndex records the position of a rule in its rule set.
func RuleIndex(i int) slog.Attr {
	return slog.Int("rule_index", i)
}

// Reason records why a rule was skipped.
func Reason(reason string) slog.Attr {
	return slog.String("reason", reason)
}

// RunID records the identifier of a command invocation.
func RunID(id string) slog.Attr {
	return slog.String("run_id", id)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}
