package rules

// Entry binds one rule kind to a field.
type Entry struct {
	Kind    Kind
	Field   string
	Message string
	Params  ParamLookup
}

func (e Entry) params() ParamLookup {
	if e.Params == nil {
		return noParams{}
	}
	return e.Params
}

// RuleSet is an ordered list of entries for one form. Entry order decides
// message order and which field receives focus.
type RuleSet struct {
	Name    string
	Entries []Entry
}

// NewRuleSet builds a rule set from entries in the given order.
func NewRuleSet(name string, entries ...Entry) RuleSet {
	return RuleSet{Name: name, Entries: entries}
}

// Len returns the number of entries.
func (s RuleSet) Len() int { return len(s.Entries) }
