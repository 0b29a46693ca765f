// Package memwidget provides in-memory widgets for editing surfaces that are
// not backed by a browser: the terminal editor and tests.
package memwidget

import (
	"sync"

	"github.com/goliatone/go-studioedit/pkg/field"
)

// Text is a text-valued widget.
type Text struct {
	mu    sync.Mutex
	value string
}

var _ field.Widget = (*Text)(nil)

// NewText returns a widget holding value.
func NewText(value string) *Text {
	return &Text{value: value}
}

func (t *Text) Value() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.value
}

func (t *Text) SetValue(value string) {
	t.mu.Lock()
	t.value = value
	t.mu.Unlock()
}

// Indicator records the reset control state.
type Indicator struct {
	mu     sync.Mutex
	active bool
}

var _ field.Indicator = (*Indicator)(nil)

func (i *Indicator) SetActive(active bool) {
	i.mu.Lock()
	i.active = active
	i.mu.Unlock()
}

// Active reports whether the reset control is enabled.
func (i *Indicator) Active() bool {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.active
}

// Editor is a rich-text editor attached to a Text widget.
type Editor struct {
	mu       sync.Mutex
	content  string
	removed  int
	onChange func()
}

var _ field.Editor = (*Editor)(nil)

// NewEditor returns an editor seeded with content.
func NewEditor(content string) *Editor {
	return &Editor{content: content}
}

func (e *Editor) Content() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.content
}

func (e *Editor) SetContent(content string) {
	e.mu.Lock()
	e.content = content
	e.mu.Unlock()
}

// OnChange registers the editor's change notification.
func (e *Editor) OnChange(fn func()) {
	e.mu.Lock()
	e.onChange = fn
	e.mu.Unlock()
}

// Type replaces the content as a user edit and fires the change notification.
func (e *Editor) Type(content string) {
	e.mu.Lock()
	e.content = content
	fn := e.onChange
	e.mu.Unlock()
	if fn != nil {
		fn()
	}
}

func (e *Editor) Remove() {
	e.mu.Lock()
	e.removed++
	e.mu.Unlock()
}

// Removed reports how many times Remove was called.
func (e *Editor) Removed() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.removed
}

// Checkbox is one checkable option.
type Checkbox struct {
	mu      sync.Mutex
	value   string
	label   string
	checked bool
}

var _ field.Checkbox = (*Checkbox)(nil)

// NewCheckbox returns an option carrying the JSON literal value.
func NewCheckbox(value, label string, checked bool) *Checkbox {
	return &Checkbox{value: value, label: label, checked: checked}
}

func (c *Checkbox) Value() string { return c.value }

// Label is the option's display text.
func (c *Checkbox) Label() string { return c.label }

func (c *Checkbox) Checked() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.checked
}

func (c *Checkbox) SetChecked(checked bool) {
	c.mu.Lock()
	c.checked = checked
	c.mu.Unlock()
}

// Factory builds in-memory widgets for discovered fields.
type Factory struct{}

// Widget returns a text widget seeded with the surface value.
func (Factory) Widget(initial string) field.Widget {
	return NewText(initial)
}

// Indicator returns a fresh reset indicator.
func (Factory) Indicator() field.Indicator {
	return &Indicator{}
}

// Editor attaches a rich-text editor seeded from the widget.
func (Factory) Editor(widget field.Widget) field.Editor {
	return NewEditor(widget.Value())
}

// Checkbox returns one option.
func (Factory) Checkbox(value, label string, checked bool) field.Checkbox {
	return NewCheckbox(value, label, checked)
}
