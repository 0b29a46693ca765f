// Package registry holds the ordered set of fields discovered on one editing
// surface. Discovery is an explicit pass over a surface.Descriptor; the result
// is returned to the caller rather than captured in closures.
package registry

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/goliatone/go-studioedit/pkg/coerce"
	"github.com/goliatone/go-studioedit/pkg/field"
	"github.com/goliatone/go-studioedit/pkg/surface"
)

// ErrDuplicateField is returned when two fields share a settings key.
var ErrDuplicateField = errors.New("registry: duplicate field")

// WidgetFactory creates the widgets a discovered field is bound to.
type WidgetFactory interface {
	Widget(initial string) field.Widget
	Indicator() field.Indicator
	// Editor attaches a rich-text editor to widget. Returning nil means no
	// editor is available and the field degrades to a plain string input.
	Editor(widget field.Widget) field.Editor
	Checkbox(value, label string, checked bool) field.Checkbox
}

// ChangeNotifier is implemented by editors that report their own edits.
type ChangeNotifier interface {
	OnChange(func())
}

// Option configures discovery.
type Option func(*discoverConfig)

type discoverConfig struct {
	richText  bool
	sanitizer field.Sanitizer
}

// WithRichTextEditors toggles editor attachment for html fields.
func WithRichTextEditors(enabled bool) Option {
	return func(cfg *discoverConfig) {
		cfg.richText = enabled
	}
}

// WithRichTextSanitizer filters rich-text values before they are submitted.
func WithRichTextSanitizer(fn field.Sanitizer) Option {
	return func(cfg *discoverConfig) {
		cfg.sanitizer = fn
	}
}

// Registry is an ordered, name-indexed collection of fields.
type Registry struct {
	fields []field.Field
	index  map[string]int
}

// New builds a registry from fields in the given order.
func New(fields ...field.Field) (*Registry, error) {
	r := &Registry{index: make(map[string]int, len(fields))}
	for _, f := range fields {
		if f == nil {
			continue
		}
		if _, exists := r.index[f.Name()]; exists {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateField, f.Name())
		}
		r.index[f.Name()] = len(r.fields)
		r.fields = append(r.fields, f)
	}
	return r, nil
}

// Discover builds one field per descriptor entry, choosing the variant once:
// options → CheckboxSet, html cast → RichText, everything else → Scalar.
func Discover(desc surface.Descriptor, factory WidgetFactory, opts ...Option) (*Registry, error) {
	if factory == nil {
		return nil, errors.New("registry: widget factory is required")
	}
	if err := desc.Validate(); err != nil {
		return nil, err
	}
	cfg := discoverConfig{richText: true}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	fields := make([]field.Field, 0, len(desc.Fields))
	for _, spec := range desc.Fields {
		f, err := discoverField(spec, factory, cfg)
		if err != nil {
			return nil, fmt.Errorf("registry: field %q: %w", spec.Name, err)
		}
		fields = append(fields, f)
	}
	return New(fields...)
}

func discoverField(spec surface.FieldSpec, factory WidgetFactory, cfg discoverConfig) (field.Field, error) {
	typ, hint, err := spec.Type()
	if err != nil {
		return nil, err
	}
	fs := field.Spec{
		Name:       strings.TrimSpace(spec.Name),
		Type:       typ,
		Default:    string(spec.Default),
		Overridden: spec.Set,
	}

	if typ == coerce.TypeMultiselect && len(spec.Options) > 0 {
		checked, err := coerce.Structured(spec.Initial())
		if err != nil {
			return nil, err
		}
		members, _ := checked.([]any)
		boxes := make([]field.Checkbox, 0, len(spec.Options))
		for _, option := range spec.Options {
			value, err := coerce.Option(string(option.Value))
			if err != nil {
				return nil, err
			}
			boxes = append(boxes, factory.Checkbox(string(option.Value), option.Label, contains(members, value)))
		}
		return field.NewCheckboxSet(fs, boxes, factory.Indicator())
	}

	widget := factory.Widget(spec.Initial())
	if hint == coerce.HintRichText {
		var editor field.Editor
		if cfg.richText {
			editor = factory.Editor(widget)
		}
		var richOpts []field.RichTextOption
		if cfg.sanitizer != nil {
			richOpts = append(richOpts, field.WithSanitizer(cfg.sanitizer))
		}
		rt, err := field.NewRichText(fs, widget, editor, factory.Indicator(), richOpts...)
		if err != nil {
			return nil, err
		}
		if notifier, ok := editor.(ChangeNotifier); ok {
			notifier.OnChange(func() { rt.HandleEvent(field.EventEditorChange) })
		}
		return rt, nil
	}
	return field.NewScalar(fs, widget, factory.Indicator())
}

// Fields returns the fields in registry order.
func (r *Registry) Fields() []field.Field {
	if r == nil {
		return nil
	}
	return append([]field.Field(nil), r.fields...)
}

// Len reports the number of fields.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.fields)
}

// Names returns settings keys in registry order.
func (r *Registry) Names() []string {
	if r == nil {
		return nil
	}
	names := make([]string, 0, len(r.fields))
	for _, f := range r.fields {
		names = append(names, f.Name())
	}
	return names
}

// Lookup returns the field registered under name.
func (r *Registry) Lookup(name string) (field.Field, bool) {
	if r == nil {
		return nil, false
	}
	idx, ok := r.index[name]
	if !ok {
		return nil, false
	}
	return r.fields[idx], true
}

// Each visits fields in order until fn returns false.
func (r *Registry) Each(fn func(field.Field) bool) {
	if r == nil || fn == nil {
		return
	}
	for _, f := range r.fields {
		if !fn(f) {
			return
		}
	}
}

// DetachEditors releases every detachable editor. Call before the surface is
// torn down.
func (r *Registry) DetachEditors() {
	r.Each(func(f field.Field) bool {
		if f.HasDetachableEditor() {
			f.DetachEditor()
		}
		return true
	})
}

func contains(set []any, value any) bool {
	for _, member := range set {
		if reflect.DeepEqual(member, value) {
			return true
		}
	}
	return false
}
