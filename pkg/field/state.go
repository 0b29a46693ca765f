package field

// State is the override state of one field.
type State int

const (
	StateDefault State = iota
	StateOverridden
)

func (s State) String() string {
	switch s {
	case StateDefault:
		return "default"
	case StateOverridden:
		return "overridden"
	default:
		return "unknown"
	}
}

// Tracker is the per-field state machine. Any mutation event moves it to
// StateOverridden and it stays there until Reset.
type Tracker struct {
	state     State
	indicator Indicator
}

// NewTracker seeds the state machine and syncs the indicator to it. Fields the
// surface marked as already set start overridden.
func NewTracker(overridden bool, indicator Indicator) *Tracker {
	if indicator == nil {
		indicator = nopIndicator{}
	}
	t := &Tracker{indicator: indicator}
	initial := StateDefault
	if overridden {
		initial = StateOverridden
	}
	t.transition(initial)
	return t
}

// State reports the current state.
func (t *Tracker) State() State {
	return t.state
}

// IsOverridden reports whether the field carries an explicit override.
func (t *Tracker) IsOverridden() bool {
	return t.state == StateOverridden
}

// HandleEvent records a widget mutation.
func (t *Tracker) HandleEvent(Event) {
	t.transition(StateOverridden)
}

// Reset runs restore and moves the tracker back to StateDefault. restore is
// expected to put the widget back on its default value.
func (t *Tracker) Reset(restore func() error) error {
	if restore != nil {
		if err := restore(); err != nil {
			return err
		}
	}
	t.transition(StateDefault)
	return nil
}

// transition is the only writer of state and indicator.
func (t *Tracker) transition(to State) {
	t.state = to
	t.indicator.SetActive(to == StateOverridden)
}
