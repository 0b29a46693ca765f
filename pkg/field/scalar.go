package field

import (
	"strings"

	"github.com/goliatone/go-studioedit/pkg/coerce"
)

// Scalar is a field backed by one text-valued widget.
type Scalar struct {
	base
	widget Widget
}

var _ Field = (*Scalar)(nil)

// NewScalar wraps widget. The widget must already hold the surface's initial
// value.
func NewScalar(spec Spec, widget Widget, indicator Indicator) (*Scalar, error) {
	if strings.TrimSpace(spec.Name) == "" {
		return nil, ErrNameRequired
	}
	if widget == nil {
		return nil, ErrNoWidget
	}
	if spec.Type == "" {
		spec.Type = coerce.TypeString
	}
	return &Scalar{base: newBase(spec, indicator), widget: widget}, nil
}

func (s *Scalar) CurrentValue() (any, error) {
	return coerce.Coerce(s.widget.Value(), s.spec.Type)
}

func (s *Scalar) HasDetachableEditor() bool { return false }

func (s *Scalar) DetachEditor() {}

func (s *Scalar) Set(raw string) error {
	s.widget.SetValue(raw)
	s.HandleEvent(EventChange)
	return nil
}

// Reset writes the default attribute back as text. The attribute is never
// reinterpreted, so "1" stays "1" on a boolean select.
func (s *Scalar) Reset() error {
	return s.Tracker.Reset(func() error {
		s.widget.SetValue(s.spec.Default)
		return nil
	})
}
