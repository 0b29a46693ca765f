package field

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-studioedit/pkg/coerce"
)

// Sanitizer cleans rich-text markup before it leaves the field.
type Sanitizer func(string) string

// RichTextOption configures a RichText field.
type RichTextOption func(*RichText)

// WithSanitizer filters the editor markup returned by CurrentValue.
func WithSanitizer(fn Sanitizer) RichTextOption {
	return func(r *RichText) {
		r.sanitize = fn
	}
}

// RichText is a string field whose widget is driven by a rich-text editor
// while the editor is attached.
type RichText struct {
	base
	widget   Widget
	editor   Editor
	sanitize Sanitizer
}

var _ Field = (*RichText)(nil)

// NewRichText wraps widget and its attached editor. A nil editor yields a
// field that behaves like a Scalar string (the editor was unavailable on the
// surface).
func NewRichText(spec Spec, widget Widget, editor Editor, indicator Indicator, opts ...RichTextOption) (*RichText, error) {
	if strings.TrimSpace(spec.Name) == "" {
		return nil, ErrNameRequired
	}
	if widget == nil {
		return nil, ErrNoWidget
	}
	spec.Type = coerce.TypeString
	r := &RichText{base: newBase(spec, indicator), widget: widget, editor: editor}
	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}
	return r, nil
}

func (r *RichText) CurrentValue() (any, error) {
	content := r.widget.Value()
	if r.editor != nil {
		content = r.editor.Content()
	}
	if r.sanitize != nil {
		content = r.sanitize(content)
	}
	return content, nil
}

func (r *RichText) HasDetachableEditor() bool {
	return r.editor != nil
}

// DetachEditor flushes the editor content into the widget and removes the
// editor. Later calls are no-ops.
func (r *RichText) DetachEditor() {
	if r.editor == nil {
		return
	}
	r.widget.SetValue(r.editor.Content())
	r.editor.Remove()
	r.editor = nil
}

func (r *RichText) Set(raw string) error {
	r.write(raw)
	r.HandleEvent(EventEditorChange)
	return nil
}

// Reset casts the stored default to text content; it is not passed through the
// structured coercer.
func (r *RichText) Reset() error {
	return r.Tracker.Reset(func() error {
		r.write(r.spec.Default)
		return nil
	})
}

func (r *RichText) write(content string) {
	r.widget.SetValue(content)
	if r.editor != nil {
		r.editor.SetContent(content)
	}
}

var (
	ugcPolicyOnce sync.Once
	ugcPolicy     *bluemonday.Policy
)

// UGCSanitizer returns a Sanitizer backed by bluemonday's user generated
// content policy.
func UGCSanitizer() Sanitizer {
	ugcPolicyOnce.Do(func() {
		policy := bluemonday.UGCPolicy()
		policy.AllowElements("code")
		ugcPolicy = policy
	})
	return ugcPolicy.Sanitize
}
