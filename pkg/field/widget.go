package field

// Widget is the live input control behind a scalar field. The field reads it
// but never owns its value; only Reset and Set write to it.
type Widget interface {
	Value() string
	SetValue(string)
}

// Indicator is the reset control shown next to a field. Active means the field
// currently carries an override that reset would clear.
type Indicator interface {
	SetActive(bool)
}

// Editor is a rich-text editor attached to a widget. Remove releases the
// editor's hold on the widget; it is called at most once by the field.
type Editor interface {
	Content() string
	SetContent(string)
	Remove()
}

// Checkbox is one option of a checkbox set. Value is the option's JSON
// literal as rendered on the surface.
type Checkbox interface {
	Value() string
	Checked() bool
	SetChecked(bool)
}

// Event is a widget mutation notification.
type Event string

const (
	EventChange       Event = "change"
	EventInput        Event = "input"
	EventPaste        Event = "paste"
	EventEditorChange Event = "editor-change"
)

type nopIndicator struct{}

func (nopIndicator) SetActive(bool) {}
