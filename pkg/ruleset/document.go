package ruleset

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Format is the encoding of a rule document.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
)

// FormatFromPath picks a format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(filepath.Ext(path), ".")) {
	case "yaml", "yml":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	case "toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, path)
	}
}

// Document is a decoded rule document.
//
//	constants:
//	  zip: '^\d{5}$'
//	messages:
//	  required: "{0} is mandatory."
//	formsets:
//	  - forms:
//	      - name: signup
//	        fields:
//	          - property: zip
//	            depends: required, mask
//	            vars: {mask: "${zip}"}
//	            args: [Zip code]
//	  - locale: fr
//	    forms: [...]
type Document struct {
	Constants map[string]string `json:"constants" yaml:"constants" toml:"constants"`
	// Messages holds default message templates keyed by rule kind.
	Messages map[string]string `json:"messages" yaml:"messages" toml:"messages"`
	FormSets []FormSetDocument `json:"formsets" yaml:"formsets" toml:"formsets"`
}

// FormSetDocument groups forms for one locale. An empty locale marks the
// default formset.
type FormSetDocument struct {
	Locale    string            `json:"locale" yaml:"locale" toml:"locale"`
	Constants map[string]string `json:"constants" yaml:"constants" toml:"constants"`
	Forms     []FormDocument    `json:"forms" yaml:"forms" toml:"forms"`
}

type FormDocument struct {
	Name   string          `json:"name" yaml:"name" toml:"name"`
	Fields []FieldDocument `json:"fields" yaml:"fields" toml:"fields"`
}

// FieldDocument declares the rules of one field. Depends lists rule kinds in
// evaluation order, Vars holds rule parameters, Args fills the {0}..{3}
// message placeholders and Msgs overrides the message of a rule kind.
type FieldDocument struct {
	Property string            `json:"property" yaml:"property" toml:"property"`
	Depends  List              `json:"depends" yaml:"depends" toml:"depends"`
	Vars     Vars              `json:"vars" yaml:"vars" toml:"vars"`
	Args     []string          `json:"args" yaml:"args" toml:"args"`
	Msgs     map[string]string `json:"msgs" yaml:"msgs" toml:"msgs"`
}

// List is a list of names written either as a sequence or as a
// comma-separated string.
type List []string

func splitList(s string) List {
	var out List
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func (l *List) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		*l = splitList(node.Value)
		return nil
	case yaml.SequenceNode:
		var items []string
		if err := node.Decode(&items); err != nil {
			return err
		}
		*l = trimList(items)
		return nil
	default:
		return fmt.Errorf("line %d: expected string or list", node.Line)
	}
}

func (l *List) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*l = splitList(s)
		return nil
	}
	var items []string
	if err := json.Unmarshal(data, &items); err != nil {
		return errors.New("expected string or list of strings")
	}
	*l = trimList(items)
	return nil
}

func (l *List) UnmarshalTOML(v any) error {
	switch v := v.(type) {
	case string:
		*l = splitList(v)
		return nil
	case []any:
		items := make([]string, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return fmt.Errorf("expected string list item, got %T", item)
			}
			items = append(items, s)
		}
		*l = trimList(items)
		return nil
	default:
		return fmt.Errorf("expected string or list, got %T", v)
	}
}

func trimList(items []string) List {
	out := make(List, 0, len(items))
	for _, item := range items {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

// Vars holds rule parameters. Scalar values of any type are kept as text so
// that "maxlength: 10" and "maxlength: '10'" are equivalent.
type Vars map[string]string

func (v *Vars) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw map[string]any
	if err := dec.Decode(&raw); err != nil {
		return err
	}
	return v.fromMap(raw)
}

func (v *Vars) UnmarshalTOML(data any) error {
	raw, ok := data.(map[string]any)
	if !ok {
		return fmt.Errorf("expected table, got %T", data)
	}
	return v.fromMap(raw)
}

func (v *Vars) fromMap(raw map[string]any) error {
	out := make(Vars, len(raw))
	for key, val := range raw {
		s, err := scalar(val)
		if err != nil {
			return fmt.Errorf("var %q: %w", key, err)
		}
		out[key] = s
	}
	*v = out
	return nil
}

func scalar(v any) (string, error) {
	switch v := v.(type) {
	case string:
		return v, nil
	case json.Number:
		return v.String(), nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	case bool:
		return strconv.FormatBool(v), nil
	default:
		return "", fmt.Errorf("expected scalar, got %T", v)
	}
}

// Parse decodes a rule document.
func Parse(data []byte, format Format) (*Document, error) {
	var (
		doc Document
		err error
	)
	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(data, &doc)
	case FormatJSON:
		err = json.Unmarshal(data, &doc)
	case FormatTOML:
		err = toml.Unmarshal(data, &doc)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	if err != nil {
		return nil, errors.Join(ErrInvalidDocument, err)
	}
	return &doc, nil
}
