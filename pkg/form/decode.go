package form

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format is the encoding of a snapshot document.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// FormatFromPath picks a format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(filepath.Ext(path), ".")) {
	case "yaml", "yml":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, path)
	}
}

type snapshotDocument struct {
	Name   string          `json:"name" yaml:"name"`
	Fields []fieldDocument `json:"fields" yaml:"fields"`
}

type fieldDocument struct {
	Name     string   `json:"name" yaml:"name"`
	Kind     string   `json:"kind" yaml:"kind"`
	Value    string   `json:"value" yaml:"value"`
	Options  []Option `json:"options" yaml:"options"`
	Selected *int     `json:"selected" yaml:"selected"`
	Disabled bool     `json:"disabled" yaml:"disabled"`
	Hidden   bool     `json:"hidden" yaml:"hidden"`
}

// Decode reads a snapshot document:
//
//	name: signup
//	fields:
//	  - name: age
//	    kind: text
//	    value: "42"
//	  - name: country
//	    kind: select-one
//	    selected: 1
//	    options: [{value: ""}, {value: "US", label: United States}]
//
// Kind defaults to text. A select-one field without "selected" has nothing
// selected.
func Decode(r io.Reader, format Format) (*Snapshot, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Join(ErrInvalidSnapshot, err)
	}

	var doc snapshotDocument
	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(data, &doc)
	case FormatJSON:
		err = json.Unmarshal(data, &doc)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	if err != nil {
		return nil, errors.Join(ErrInvalidSnapshot, err)
	}

	fields := make([]*Field, 0, len(doc.Fields))
	for i, fd := range doc.Fields {
		f, err := fd.field()
		if err != nil {
			return nil, errors.Join(ErrInvalidSnapshot, fmt.Errorf("field #%d: %w", i, err))
		}
		fields = append(fields, f)
	}

	return NewSnapshot(doc.Name, fields...), nil
}

// Load decodes the snapshot stored at path.
func Load(path string) (*Snapshot, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open snapshot: %w", err)
	}
	defer f.Close()

	return Decode(f, format)
}

func (fd fieldDocument) field() (*Field, error) {
	if fd.Name == "" {
		return nil, errors.New("name is required")
	}

	kind := KindText
	if fd.Kind != "" {
		k, err := ParseKind(fd.Kind)
		if err != nil {
			return nil, err
		}
		kind = k
	}

	f := &Field{
		Name:          fd.Name,
		Kind:          kind,
		Value:         fd.Value,
		Options:       fd.Options,
		SelectedIndex: NoSelection,
		Disabled:      fd.Disabled,
		Hidden:        fd.Hidden,
	}
	if fd.Selected != nil {
		f.SelectedIndex = *fd.Selected
	}
	if kind == KindSelectOne && f.SelectedIndex >= len(f.Options) {
		return nil, fmt.Errorf("field %q: selected index %d out of range", fd.Name, f.SelectedIndex)
	}

	return f, nil
}
