package surface

import (
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-studioedit/pkg/coerce"
)

// Descriptor is the discovered editing surface of one block instance.
type Descriptor struct {
	Block  string      `json:"block,omitempty" yaml:"block,omitempty"`
	Fields []FieldSpec `json:"fields" yaml:"fields"`
}

// FieldSpec is one settable field as marked on the surface.
type FieldSpec struct {
	Name  string `json:"name" yaml:"name"`
	Label string `json:"label,omitempty" yaml:"label,omitempty"`
	Help  string `json:"help,omitempty" yaml:"help,omitempty"`
	// Cast is the host cast name (boolean, integer, float, generic, list, set,
	// html, datepicker, multiselect or string).
	Cast    string `json:"cast,omitempty" yaml:"cast,omitempty"`
	Default Attr   `json:"default" yaml:"default"`
	// Value is the widget's initial value. Nil means the widget shows Default.
	Value *Attr `json:"value,omitempty" yaml:"value,omitempty"`
	// Set marks a field the block already overrides.
	Set     bool         `json:"set,omitempty" yaml:"set,omitempty"`
	Options []OptionSpec `json:"options,omitempty" yaml:"options,omitempty"`
}

// OptionSpec is one checkbox of a multiselect field. Value is a JSON literal.
type OptionSpec struct {
	Value Attr   `json:"value" yaml:"value"`
	Label string `json:"label,omitempty" yaml:"label,omitempty"`
}

// Initial returns the widget's starting text.
func (f FieldSpec) Initial() string {
	if f.Value != nil {
		return string(*f.Value)
	}
	return string(f.Default)
}

// Type resolves the cast name. Fields with options are multiselect regardless
// of cast.
func (f FieldSpec) Type() (coerce.Type, coerce.Hint, error) {
	if len(f.Options) > 0 {
		return coerce.TypeMultiselect, coerce.HintNone, nil
	}
	return coerce.ParseType(f.Cast)
}

// DisplayLabel falls back to the settings key.
func (f FieldSpec) DisplayLabel() string {
	if label := strings.TrimSpace(f.Label); label != "" {
		return label
	}
	return f.Name
}

// Validate checks names are present and unique and every cast resolves.
func (d Descriptor) Validate() error {
	seen := make(map[string]struct{}, len(d.Fields))
	for idx, spec := range d.Fields {
		name := strings.TrimSpace(spec.Name)
		if name == "" {
			return fmt.Errorf("surface: field %d has no name", idx)
		}
		if _, exists := seen[name]; exists {
			return fmt.Errorf("%w: %q", ErrDuplicateField, name)
		}
		seen[name] = struct{}{}
		if _, _, err := spec.Type(); err != nil {
			return fmt.Errorf("surface: field %q: %w", name, err)
		}
	}
	return nil
}

// Field returns the spec named name.
func (d Descriptor) Field(name string) (FieldSpec, bool) {
	for _, spec := range d.Fields {
		if spec.Name == name {
			return spec, true
		}
	}
	return FieldSpec{}, false
}

// Attr is an attribute value kept as the text the surface would render. JSON
// and YAML strings are taken verbatim; other scalars and collections are
// stored as their JSON encoding, so `default: [1, 3]` becomes "[1,3]".
type Attr string

func (a *Attr) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*a = Attr(s)
		return nil
	}
	if strings.TrimSpace(string(data)) == "null" {
		*a = ""
		return nil
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	encoded, err := json.Marshal(v)
	if err != nil {
		return err
	}
	*a = Attr(encoded)
	return nil
}

func (a *Attr) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		if node.Tag == "!!null" {
			*a = ""
			return nil
		}
		*a = Attr(node.Value)
		return nil
	}
	var v any
	if err := node.Decode(&v); err != nil {
		return err
	}
	text, err := attrText(v)
	if err != nil {
		return err
	}
	*a = Attr(text)
	return nil
}

func attrText(v any) (string, error) {
	switch typed := v.(type) {
	case nil:
		return "", nil
	case string:
		return typed, nil
	default:
		encoded, err := json.Marshal(normaliseYAML(typed))
		if err != nil {
			return "", err
		}
		return string(encoded), nil
	}
}

// normaliseYAML converts map[any]any nodes (possible in nested YAML) to
// map[string]any so they encode as JSON objects.
func normaliseYAML(v any) any {
	switch typed := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(typed))
		for k, val := range typed {
			out[k] = normaliseYAML(val)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(typed))
		for k, val := range typed {
			out[fmt.Sprint(k)] = normaliseYAML(val)
		}
		return out
	case []any:
		out := make([]any, len(typed))
		for i, val := range typed {
			out[i] = normaliseYAML(val)
		}
		return out
	default:
		return typed
	}
}
