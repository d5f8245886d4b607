package form

import "fmt"

// Kind is the input type of a field.
type Kind string

const (
	KindText      Kind = "text"
	KindTextarea  Kind = "textarea"
	KindPassword  Kind = "password"
	KindHidden    Kind = "hidden"
	KindSelectOne Kind = "select-one"
	KindRadio     Kind = "radio"
	KindFile      Kind = "file"
	KindCheckbox  Kind = "checkbox"
)

var kinds = map[Kind]struct{}{
	KindText:      {},
	KindTextarea:  {},
	KindPassword:  {},
	KindHidden:    {},
	KindSelectOne: {},
	KindRadio:     {},
	KindFile:      {},
	KindCheckbox:  {},
}

// Valid reports whether k is a known field kind.
func (k Kind) Valid() bool {
	_, ok := kinds[k]
	return ok
}

// ParseKind converts s into a Kind.
func ParseKind(s string) (Kind, error) {
	k := Kind(s)
	if !k.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
	return k, nil
}

// Option is one entry of a select-one field.
type Option struct {
	Label string `json:"label,omitempty" yaml:"label,omitempty"`
	Value string `json:"value" yaml:"value"`
}

// NoSelection is the SelectedIndex of a select-one field with nothing selected.
const NoSelection = -1

// Field is a snapshot of one form control.
//
// Value holds the raw scalar value for every kind except select-one, whose
// value is read from Options[SelectedIndex]. For a radio group Value is the
// value of the checked button, or empty when none is checked.
type Field struct {
	Name          string
	Kind          Kind
	Value         string
	Options       []Option
	SelectedIndex int
	Disabled      bool
	// Hidden marks a control that is not visible even though its kind is not
	// KindHidden.
	Hidden bool
}

// CurrentValue returns the field's value as text. A select-one field yields
// the selected option's value, or "" when nothing is selected.
func (f *Field) CurrentValue() string {
	if f.Kind != KindSelectOne {
		return f.Value
	}
	if f.SelectedIndex < 0 || f.SelectedIndex >= len(f.Options) {
		return ""
	}
	return f.Options[f.SelectedIndex].Value
}

// EffectiveKind is the kind used for rule applicability. A field hidden from
// view is treated as a hidden input.
func (f *Field) EffectiveKind() Kind {
	if f.Hidden {
		return KindHidden
	}
	return f.Kind
}

// Disable marks the field disabled and returns it.
func (f *Field) Disable() *Field {
	f.Disabled = true
	return f
}

// Hide marks the field as not visible and returns it.
func (f *Field) Hide() *Field {
	f.Hidden = true
	return f
}

func (f *Field) String() string {
	return fmt.Sprintf("%s(%s)", f.Name, f.Kind)
}

func newField(kind Kind, name, value string) *Field {
	return &Field{Name: name, Kind: kind, Value: value}
}

func Text(name, value string) *Field     { return newField(KindText, name, value) }
func Textarea(name, value string) *Field { return newField(KindTextarea, name, value) }
func Password(name, value string) *Field { return newField(KindPassword, name, value) }
func Hidden(name, value string) *Field   { return newField(KindHidden, name, value) }
func File(name, value string) *Field     { return newField(KindFile, name, value) }
func Radio(name, value string) *Field    { return newField(KindRadio, name, value) }
func Checkbox(name, value string) *Field { return newField(KindCheckbox, name, value) }

// Select builds a select-one field. Pass NoSelection when no option is chosen.
func Select(name string, selected int, options ...Option) *Field {
	return &Field{
		Name:          name,
		Kind:          KindSelectOne,
		Options:       options,
		SelectedIndex: selected,
	}
}
