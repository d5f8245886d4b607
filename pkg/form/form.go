package form

// Form gives access to fields by name.
type Form interface {
	Lookup(name string) (*Field, bool)
}

// Resolve returns the named field of f. A nil form or an unknown name
// resolves to nothing; callers skip the rule instead of failing the pass.
func Resolve(f Form, name string) (*Field, bool) {
	if f == nil || name == "" {
		return nil, false
	}
	field, ok := f.Lookup(name)
	if !ok || field == nil {
		return nil, false
	}
	return field, true
}

// Snapshot is an in-memory Form with fields kept in declaration order.
type Snapshot struct {
	name   string
	fields []*Field
	index  map[string]*Field
}

// NewSnapshot builds a form from fields. When two fields share a name the
// first one wins, the way a named lookup on an HTML form returns the first
// matching control. Nil fields are ignored.
func NewSnapshot(name string, fields ...*Field) *Snapshot {
	s := &Snapshot{
		name:   name,
		fields: make([]*Field, 0, len(fields)),
		index:  make(map[string]*Field, len(fields)),
	}
	for _, f := range fields {
		if f == nil {
			continue
		}
		s.fields = append(s.fields, f)
		if _, exists := s.index[f.Name]; !exists {
			s.index[f.Name] = f
		}
	}
	return s
}

// Name returns the form name.
func (s *Snapshot) Name() string { return s.name }

// Fields returns the fields in declaration order.
func (s *Snapshot) Fields() []*Field {
	out := make([]*Field, len(s.fields))
	copy(out, s.fields)
	return out
}

func (s *Snapshot) Lookup(name string) (*Field, bool) {
	f, ok := s.index[name]
	return f, ok
}

// Values returns the current value of every field keyed by name.
func (s *Snapshot) Values() map[string]string {
	out := make(map[string]string, len(s.index))
	for name, f := range s.index {
		out[name] = f.CurrentValue()
	}
	return out
}
