// Package rules evaluates ordered rule sets against form fields.
//
// A RuleSet is a list of entries, each binding a rule kind to a field name, a
// message and a parameter lookup. The Engine walks the entries in order,
// resolves each field, checks whether the rule applies to the field's kind and
// state, and runs the rule's checker against the field's current value.
// Failures are collected in entry order and the first failing field becomes the
// focus target:
//
//	set := rules.NewRuleSet("signup",
//		rules.Entry{Kind: rules.KindRequired, Field: "email", Message: "Email is required."},
//		rules.Entry{Kind: rules.KindMaxLength, Field: "bio", Params: rules.Params{"maxlength": "140"}},
//	)
//	res := rules.New(rules.WithReporter(rep)).Validate(snapshot, set)
//	if !res.Valid {
//		// res.Focus is the first failing field
//	}
//
// Missing fields, inapplicable fields and absent optional parameters skip the
// entry. Configuration problems such as an invalid mask fail the entry and are
// logged at warn level; they never abort the pass.
//
// Custom kinds are registered with WithRule.
package rules
