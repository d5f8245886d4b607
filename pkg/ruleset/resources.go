package ruleset

import (
	"errors"
	"fmt"
	"maps"
	"os"
	"slices"

	"golang.org/x/text/language"

	"github.com/dmitrymomot/formrules/pkg/rules"
)

// Factory builds the rule set of a form.
type Factory interface {
	RuleSet(form string) (rules.RuleSet, error)
}

var _ Factory = (*Resources)(nil)

// Resources holds the rule sets built from a Document, indexed by locale and
// form name. It is immutable and safe for concurrent use; every lookup returns
// a copy the caller may modify.
type Resources struct {
	defaults map[string]rules.RuleSet
	locales  map[language.Tag]map[string]rules.RuleSet
	// tags lists the locales offered to the matcher; tags[0] is language.Und
	// and stands for the default formset.
	tags    []language.Tag
	matcher language.Matcher
}

// New builds resources from doc. Constants, vars and message arguments are
// resolved once, here.
func New(doc *Document) (*Resources, error) {
	if doc == nil {
		return nil, fmt.Errorf("%w: nil document", ErrInvalidDocument)
	}

	r := &Resources{
		defaults: make(map[string]rules.RuleSet),
		locales:  make(map[language.Tag]map[string]rules.RuleSet),
		tags:     []language.Tag{language.Und},
	}

	for i, fs := range doc.FormSets {
		tag := language.Und
		if fs.Locale != "" {
			t, err := language.Parse(fs.Locale)
			if err != nil {
				return nil, errors.Join(ErrInvalidDocument, fmt.Errorf("formset #%d: locale %q: %w", i, fs.Locale, err))
			}
			tag = t
		}

		sets := r.defaults
		if tag != language.Und {
			if sets = r.locales[tag]; sets == nil {
				sets = make(map[string]rules.RuleSet)
				r.locales[tag] = sets
				r.tags = append(r.tags, tag)
			}
		}

		consts := constants{global: doc.Constants, local: fs.Constants}
		for _, fd := range fs.Forms {
			if fd.Name == "" {
				return nil, fmt.Errorf("%w: formset #%d: form without name", ErrInvalidDocument, i)
			}
			if _, exists := sets[fd.Name]; exists {
				return nil, fmt.Errorf("%w: %q (locale %q)", ErrDuplicateForm, fd.Name, fs.Locale)
			}
			set, err := buildRuleSet(fd, consts, doc.Messages)
			if err != nil {
				return nil, err
			}
			sets[fd.Name] = set
		}
	}

	r.matcher = language.NewMatcher(r.tags)
	return r, nil
}

// Load reads and builds the rule document at path. The format follows the
// file extension.
func Load(path string) (*Resources, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read rule document: %w", err)
	}
	doc, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return New(doc)
}

func buildRuleSet(fd FormDocument, consts constants, messages map[string]string) (rules.RuleSet, error) {
	set := rules.RuleSet{Name: fd.Name}
	for i, field := range fd.Fields {
		property := consts.expand(field.Property)
		if property == "" {
			return rules.RuleSet{}, fmt.Errorf("%w: form %q field #%d", ErrMissingProperty, fd.Name, i)
		}

		vars := make(rules.Params, len(field.Vars))
		for k, v := range field.Vars {
			vars[k] = consts.expand(v)
		}

		args := make([]string, 0, maxArgs)
		for _, a := range field.Args {
			args = append(args, expandVars(consts.expand(a), vars))
		}
		if len(args) == 0 {
			args = append(args, property)
		} else if args[0] == "" {
			args[0] = property
		}

		for _, dep := range field.Depends {
			kind := rules.Kind(dep)
			msg := expandVars(consts.expand(template(kind, field, messages)), vars)
			set.Entries = append(set.Entries, rules.Entry{
				Kind:    kind,
				Field:   property,
				Message: formatArgs(msg, args),
				Params:  vars,
			})
		}
	}
	return set, nil
}

// RuleSet returns the rule set of the named form from the default formset.
func (r *Resources) RuleSet(form string) (rules.RuleSet, error) {
	return r.RuleSetFor(form, language.Und)
}

// RuleSetFor returns the rule set of the named form for tag. The best matching
// locale is tried first, then its parents ("fr-CA", then "fr"), then the
// default formset.
func (r *Resources) RuleSetFor(form string, tag language.Tag) (rules.RuleSet, error) {
	if tag != language.Und && len(r.tags) > 1 {
		if _, idx, conf := r.matcher.Match(tag); conf != language.No && idx > 0 {
			for t := r.tags[idx]; t != language.Und; t = t.Parent() {
				if set, ok := r.locales[t][form]; ok {
					return clone(set), nil
				}
			}
		}
	}
	if set, ok := r.defaults[form]; ok {
		return clone(set), nil
	}
	return rules.RuleSet{}, fmt.Errorf("%w: %q", ErrFormNotFound, form)
}

// Forms returns the names of every declared form in sorted order.
func (r *Resources) Forms() []string {
	names := make(map[string]struct{}, len(r.defaults))
	for name := range r.defaults {
		names[name] = struct{}{}
	}
	for _, sets := range r.locales {
		for name := range sets {
			names[name] = struct{}{}
		}
	}
	return slices.Sorted(maps.Keys(names))
}

// Locales returns the locales that have their own formset, in declaration order.
func (r *Resources) Locales() []language.Tag {
	return slices.Clone(r.tags[1:])
}

func clone(set rules.RuleSet) rules.RuleSet {
	out := rules.RuleSet{Name: set.Name, Entries: slices.Clone(set.Entries)}
	for i, e := range out.Entries {
		if p, ok := e.Params.(rules.Params); ok {
			out.Entries[i].Params = maps.Clone(p)
		}
	}
	return out
}
