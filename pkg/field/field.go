package field

import "github.com/goliatone/go-studioedit/pkg/coerce"

// Field is the unified contract every widget variant satisfies. The set of
// implementations is closed; see Scalar, RichText and CheckboxSet.
type Field interface {
	// Name is the settings key understood by the host.
	Name() string
	// Type is the declared semantic type; fixed at discovery.
	Type() coerce.Type
	// Default is the default attribute captured at discovery.
	Default() string
	State() State
	IsOverridden() bool
	// CurrentValue reads the live widget and coerces it. It is not cached.
	CurrentValue() (any, error)
	HasDetachableEditor() bool
	// DetachEditor releases any rich-text editor. Safe to call repeatedly.
	DetachEditor()
	// HandleEvent feeds a widget mutation into the change tracker.
	HandleEvent(Event)
	// Set writes a raw value into the widget and fires a change event, the way
	// a user edit would.
	Set(raw string) error
	// Reset restores the widget from Default and clears the override.
	Reset() error

	sealed()
}

// Spec describes a field at discovery time.
type Spec struct {
	Name       string
	Type       coerce.Type
	Default    string
	Overridden bool
}

type base struct {
	*Tracker
	spec Spec
}

func newBase(spec Spec, indicator Indicator) base {
	return base{Tracker: NewTracker(spec.Overridden, indicator), spec: spec}
}

func (b base) Name() string      { return b.spec.Name }
func (b base) Type() coerce.Type { return b.spec.Type }
func (b base) Default() string   { return b.spec.Default }
func (base) sealed()             {}
