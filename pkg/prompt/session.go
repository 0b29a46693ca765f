package prompt

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/goliatone/go-studioedit/pkg/coerce"
	"github.com/goliatone/go-studioedit/pkg/field"
	"github.com/goliatone/go-studioedit/pkg/registry"
	"github.com/goliatone/go-studioedit/pkg/surface"
)

// Decision is the author's final choice after editing.
type Decision int

const (
	DecisionSave Decision = iota
	DecisionCancel
)

func (d Decision) String() string {
	if d == DecisionCancel {
		return "cancel"
	}
	return "save"
}

// Per-field actions offered by Edit.
const (
	ActionKeep  = "Keep"
	ActionEdit  = "Edit"
	ActionReset = "Reset to default"
)

var fieldActions = []string{ActionKeep, ActionEdit, ActionReset}

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithDescriptor supplies labels and help text for the prompts.
func WithDescriptor(desc surface.Descriptor) SessionOption {
	return func(s *Session) {
		s.desc = &desc
	}
}

// Session walks a registry in the terminal, editing or resetting each field
// through the same widget events a browser surface would fire.
type Session struct {
	driver Driver
	desc   *surface.Descriptor
}

// NewSession builds a session on driver.
func NewSession(driver Driver, opts ...SessionOption) (*Session, error) {
	if driver == nil {
		return nil, ErrDriverRequired
	}
	s := &Session{driver: driver}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s, nil
}

// Edit prompts once per field in registry order.
func (s *Session) Edit(ctx context.Context, reg *registry.Registry) error {
	for _, f := range reg.Fields() {
		if err := s.editField(ctx, f); err != nil {
			return fmt.Errorf("prompt: field %s: %w", f.Name(), err)
		}
	}
	return nil
}

// Decide asks whether to save or cancel.
func (s *Session) Decide(ctx context.Context) (Decision, error) {
	idx, err := s.driver.Select(ctx, SelectConfig{
		Message: "Apply changes?",
		Options: []string{"Save", "Cancel"},
	})
	if err != nil {
		return DecisionCancel, err
	}
	if idx == 1 {
		return DecisionCancel, nil
	}
	return DecisionSave, nil
}

func (s *Session) editField(ctx context.Context, f field.Field) error {
	label, help := s.describe(f)
	idx, err := s.driver.Select(ctx, SelectConfig{
		Message: fmt.Sprintf("%s [%s] %s", label, f.State(), preview(f)),
		Options: fieldActions,
		Help:    help,
	})
	if err != nil {
		return err
	}

	switch indexAction(idx) {
	case ActionReset:
		if err := f.Reset(); err != nil {
			return err
		}
		return s.driver.Info(ctx, fmt.Sprintf("%s reset to default", label))
	case ActionEdit:
		raw, err := s.ask(ctx, f, label, help)
		if err != nil {
			return err
		}
		return f.Set(raw)
	default:
		return nil
	}
}

func (s *Session) ask(ctx context.Context, f field.Field, label, help string) (string, error) {
	if set, ok := f.(*field.CheckboxSet); ok {
		return s.askMembers(ctx, set, label, help)
	}

	current := display(f)
	switch {
	case f.Type() == coerce.TypeBoolean:
		yes, err := s.driver.Confirm(ctx, ConfirmConfig{Message: label, Help: help, Default: current == "true"})
		if err != nil {
			return "", err
		}
		if yes {
			return "true", nil
		}
		return "false", nil
	case f.Type() == coerce.TypeStructured:
		return s.driver.TextArea(ctx, TextAreaConfig{Message: label, Help: help, Default: current})
	case isRichText(f):
		return s.driver.TextArea(ctx, TextAreaConfig{Message: label, Help: help, Default: current})
	default:
		return s.driver.Input(ctx, InputConfig{
			Message: label,
			Help:    help,
			Default: current,
			Type:    f.Type(),
		})
	}
}

func (s *Session) askMembers(ctx context.Context, set *field.CheckboxSet, label, help string) (string, error) {
	options := set.Options()
	labels := make([]string, 0, len(options))
	var checked []int
	for i, option := range options {
		labels = append(labels, optionLabel(option))
		if option.Checked() {
			checked = append(checked, i)
		}
	}
	picked, err := s.driver.MultiSelect(ctx, SelectConfig{
		Message:  label,
		Help:     help,
		Options:  labels,
		Defaults: checked,
	})
	if err != nil {
		return "", err
	}
	values := make([]string, 0, len(picked))
	for _, idx := range picked {
		if idx >= 0 && idx < len(options) {
			values = append(values, options[idx].Value())
		}
	}
	return "[" + strings.Join(values, ",") + "]", nil
}

func (s *Session) describe(f field.Field) (string, string) {
	if s.desc != nil {
		if spec, ok := s.desc.Field(f.Name()); ok {
			return spec.DisplayLabel(), spec.Help
		}
	}
	return f.Name(), ""
}

func indexAction(idx int) string {
	if idx < 0 || idx >= len(fieldActions) {
		return ActionKeep
	}
	return fieldActions[idx]
}

func isRichText(f field.Field) bool {
	_, ok := f.(*field.RichText)
	return ok
}

func optionLabel(option field.Checkbox) string {
	if labeled, ok := option.(interface{ Label() string }); ok {
		if label := strings.TrimSpace(labeled.Label()); label != "" {
			return label
		}
	}
	return option.Value()
}

// display renders the current value the way the widget would show it.
func display(f field.Field) string {
	value, err := f.CurrentValue()
	if err != nil {
		var verr *coerce.ValidationError
		if errors.As(err, &verr) {
			return verr.Raw
		}
		return ""
	}
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		if v {
			return "true"
		}
		return "false"
	default:
		encoded, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprint(v)
		}
		return string(encoded)
	}
}

func preview(f field.Field) string {
	const limit = 40
	text := strings.Join(strings.Fields(display(f)), " ")
	if runes := []rune(text); len(runes) > limit {
		text = string(runes[:limit]) + "…"
	}
	if text == "" {
		return "(empty)"
	}
	return "= " + text
}
