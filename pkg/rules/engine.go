package rules

import (
	"log/slog"
	"maps"
	"slices"
	"strings"

	"github.com/dmitrymomot/formrules/pkg/form"
	"github.com/dmitrymomot/formrules/pkg/logger"
)

// Engine evaluates rule sets against forms. It is immutable once built and
// safe for concurrent use as long as the configured Reporter is.
type Engine struct {
	defs     map[Kind]Definition
	reporter Reporter
	log      *slog.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithReporter sets the reporter notified after a failed pass.
func WithReporter(r Reporter) Option {
	return func(e *Engine) {
		e.reporter = r
	}
}

// WithLogger sets the logger. Engines log nothing by default.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.log = l
		}
	}
}

// WithRule registers a rule kind, replacing a built-in one of the same name.
func WithRule(kind Kind, def Definition) Option {
	return func(e *Engine) {
		e.defs[kind] = def
	}
}

// New creates an Engine with the built-in rule kinds.
func New(opts ...Option) *Engine {
	e := &Engine{
		defs: Builtins(),
		log:  logger.Discard(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Kinds returns the registered rule kinds in sorted order.
func (e *Engine) Kinds() []Kind {
	return slices.Sorted(maps.Keys(e.defs))
}

// Definition returns the definition registered for kind.
func (e *Engine) Definition(kind Kind) (Definition, bool) {
	def, ok := e.defs[kind]
	return def, ok
}

// Validate runs every entry of set against f. Entries whose field is missing
// or not applicable are skipped. Evaluation never stops at a failure; the
// reporter is called once at the end when at least one entry failed.
func (e *Engine) Validate(f form.Form, set RuleSet) Result {
	log := e.log.With(logger.Form(set.Name))

	var res Result
	for i, entry := range set.Entries {
		e.evaluate(log.With(logger.RuleIndex(i), logger.RuleKind(string(entry.Kind)), logger.Field(entry.Field)), f, entry, &res)
	}
	res.Valid = len(res.Failures) == 0

	log.Debug("validation pass finished",
		slog.Int("rules", set.Len()),
		slog.Int("failures", len(res.Failures)),
		slog.Bool("valid", res.Valid),
	)

	if !res.Valid && e.reporter != nil {
		e.reporter.Report(res.Messages(), res.Focus)
	}
	return res
}

func (e *Engine) evaluate(log *slog.Logger, f form.Form, entry Entry, res *Result) {
	def, ok := e.defs[entry.Kind]
	if !ok || def.Check == nil {
		log.Warn("rule skipped", logger.Error(ErrUnknownKind))
		return
	}

	field, ok := form.Resolve(f, entry.Field)
	if !ok {
		log.Debug("rule skipped", logger.Reason("field not found"))
		return
	}
	if applies, reason := def.AppliesTo(field); !applies {
		log.Debug("rule skipped", logger.Reason(reason))
		return
	}

	value := field.CurrentValue()
	if def.SkipEmpty && value == "" {
		log.Debug("rule skipped", logger.Reason("empty value"))
		return
	}

	out, err := def.Check(value, entry.params())
	if err != nil {
		log.Warn("rule misconfigured", logger.Error(err), slog.String("outcome", out.String()))
	}

	switch out {
	case Fail:
		log.Debug("rule failed")
		res.add(entry.Kind, message(entry, def), field)
	case Skip:
		log.Debug("rule skipped", logger.Reason("no constraint"))
	}
}

func message(entry Entry, def Definition) string {
	if entry.Message != "" {
		return entry.Message
	}
	return strings.ReplaceAll(def.Message, "%s", entry.Field)
}

// Validate runs set against f with a default engine reporting to r, which may
// be nil.
func Validate(f form.Form, set RuleSet, r Reporter) Result {
	return New(WithReporter(r)).Validate(f, set)
}
