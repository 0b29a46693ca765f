package studio

import (
	"github.com/goliatone/go-studioedit/pkg/field"
	"github.com/goliatone/go-studioedit/pkg/registry"
)

// Payload is the body of a submit_studio_edits request. Values and Defaults
// partition the registry: every field appears in exactly one of them.
type Payload struct {
	Values   map[string]any `json:"values"`
	Defaults []string       `json:"defaults"`
}

// Diff builds the payload for reg without touching editors. Overridden fields
// that fail coercion are collected into *ValidationErrors and left out of
// Values.
func Diff(reg *registry.Registry) (Payload, error) {
	return collect(reg, false)
}

func collect(reg *registry.Registry, detach bool) (Payload, error) {
	payload := Payload{
		Values:   make(map[string]any),
		Defaults: make([]string, 0),
	}
	var invalid []FieldError

	reg.Each(func(f field.Field) bool {
		if f.IsOverridden() {
			value, err := f.CurrentValue()
			if err != nil {
				invalid = append(invalid, FieldError{Name: f.Name(), Err: err})
			} else {
				payload.Values[f.Name()] = value
			}
		} else {
			payload.Defaults = append(payload.Defaults, f.Name())
		}
		if detach && f.HasDetachableEditor() {
			f.DetachEditor()
		}
		return true
	})

	if len(invalid) > 0 {
		return payload, &ValidationErrors{Fields: invalid}
	}
	return payload, nil
}
