package field

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strings"

	"github.com/goliatone/go-studioedit/pkg/coerce"
)

// CheckboxSet is a multiselect field rendered as one checkbox per option.
type CheckboxSet struct {
	base
	options []Checkbox
}

var _ Field = (*CheckboxSet)(nil)

// NewCheckboxSet wraps options in document order. spec.Default is the JSON
// list of default option values.
func NewCheckboxSet(spec Spec, options []Checkbox, indicator Indicator) (*CheckboxSet, error) {
	if strings.TrimSpace(spec.Name) == "" {
		return nil, ErrNameRequired
	}
	spec.Type = coerce.TypeMultiselect
	return &CheckboxSet{
		base:    newBase(spec, indicator),
		options: append([]Checkbox(nil), options...),
	}, nil
}

// CurrentValue returns the parsed values of checked options in document
// order. The result is never nil so it encodes as [] when nothing is checked.
func (c *CheckboxSet) CurrentValue() (any, error) {
	values := make([]any, 0, len(c.options))
	for _, option := range c.options {
		if !option.Checked() {
			continue
		}
		parsed, err := coerce.Option(option.Value())
		if err != nil {
			return nil, err
		}
		values = append(values, parsed)
	}
	return values, nil
}

func (c *CheckboxSet) HasDetachableEditor() bool { return false }

func (c *CheckboxSet) DetachEditor() {}

// Options returns the wrapped checkboxes in document order.
func (c *CheckboxSet) Options() []Checkbox {
	return append([]Checkbox(nil), c.options...)
}

// Set checks exactly the options whose values appear in the JSON list raw.
// A raw value that is not a JSON list leaves every option untouched.
func (c *CheckboxSet) Set(raw string) error {
	members, err := parseMembers(raw)
	if err != nil {
		return &coerce.ValidationError{Type: coerce.TypeMultiselect, Raw: raw, Err: coerce.ErrMalformedValue}
	}
	if err := c.apply(members); err != nil {
		return err
	}
	c.HandleEvent(EventChange)
	return nil
}

// Reset recomputes every option from membership in the default set. Position
// plays no part.
func (c *CheckboxSet) Reset() error {
	members, err := parseMembers(c.spec.Default)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedDefault, err)
	}
	return c.Tracker.Reset(func() error {
		return c.apply(members)
	})
}

func (c *CheckboxSet) apply(members []any) error {
	for _, option := range c.options {
		value, err := coerce.Option(option.Value())
		if err != nil {
			return err
		}
		option.SetChecked(containsValue(members, value))
	}
	return nil
}

func parseMembers(raw string) ([]any, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, nil
	}
	var members []any
	if err := json.Unmarshal([]byte(trimmed), &members); err != nil {
		return nil, err
	}
	return members, nil
}

func containsValue(set []any, value any) bool {
	for _, member := range set {
		if reflect.DeepEqual(member, value) {
			return true
		}
	}
	return false
}
