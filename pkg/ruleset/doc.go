// Package ruleset builds rule sets from declarative rule documents.
//
// A document declares constants, default messages per rule kind and one or
// more formsets. Each formset optionally names a locale and lists forms; each
// form lists fields with the rule kinds they depend on, rule parameters (vars),
// message arguments and per-kind message overrides. Documents can be written
// in YAML, JSON or TOML:
//
//	res, err := ruleset.Load("rules.yaml")
//	if err != nil {
//		return err
//	}
//	set, err := res.RuleSetFor("signup", language.French)
//	if errors.Is(err, ruleset.ErrFormNotFound) {
//		// no formset defines the form
//	}
//
// Within strings, ${name} refers to a constant (formset constants shadow
// global ones), ${var:name} to a var of the same field and {0}..{3} to the
// field's args. The first arg defaults to the field property.
//
// Entries are produced in field order and, within a field, in depends order.
package ruleset
