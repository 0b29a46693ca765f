package field_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-studioedit/internal/memwidget"
	"github.com/goliatone/go-studioedit/pkg/coerce"
	"github.com/goliatone/go-studioedit/pkg/field"
)

func TestTracker_StickyOverrideAndIndicator(t *testing.T) {
	indicator := &memwidget.Indicator{}
	tracker := field.NewTracker(false, indicator)

	if tracker.State() != field.StateDefault || indicator.Active() {
		t.Fatalf("fresh tracker should be default with inactive indicator")
	}

	for _, ev := range []field.Event{field.EventInput, field.EventChange, field.EventPaste, field.EventEditorChange} {
		tracker.HandleEvent(ev)
		if !tracker.IsOverridden() || !indicator.Active() {
			t.Fatalf("after %s: want overridden with active indicator", ev)
		}
	}

	if err := tracker.Reset(nil); err != nil {
		t.Fatalf("reset: %v", err)
	}
	if tracker.IsOverridden() || indicator.Active() {
		t.Fatalf("reset should return to default and deactivate the indicator")
	}
}

func TestTracker_InitiallyOverridden(t *testing.T) {
	indicator := &memwidget.Indicator{}
	tracker := field.NewTracker(true, indicator)
	if tracker.State() != field.StateOverridden || !indicator.Active() {
		t.Fatalf("surface-set field should start overridden with active indicator")
	}
	if got := tracker.State().String(); got != "overridden" {
		t.Fatalf("state string: got %q", got)
	}
}

func TestTracker_FailedRestoreKeepsState(t *testing.T) {
	tracker := field.NewTracker(true, nil)
	boom := errors.New("boom")
	if err := tracker.Reset(func() error { return boom }); !errors.Is(err, boom) {
		t.Fatalf("expected restore error, got %v", err)
	}
	if !tracker.IsOverridden() {
		t.Fatalf("failed restore must not transition")
	}
}

func TestScalar_ResetRestoresDefault(t *testing.T) {
	widget := memwidget.NewText("Foo")
	f, err := field.NewScalar(field.Spec{Name: "title", Type: coerce.TypeString, Default: "Foo"}, widget, nil)
	if err != nil {
		t.Fatalf("new scalar: %v", err)
	}

	widget.SetValue("Bar")
	f.HandleEvent(field.EventInput)
	widget.SetValue("Baz")
	f.HandleEvent(field.EventInput)
	if !f.IsOverridden() {
		t.Fatalf("repeated edits should keep the field overridden")
	}
	got, _ := f.CurrentValue()
	if got != "Baz" {
		t.Fatalf("current value: got %v", got)
	}

	if err := f.Reset(); err != nil {
		t.Fatalf("reset: %v", err)
	}
	if f.IsOverridden() {
		t.Fatalf("reset should clear override")
	}
	got, _ = f.CurrentValue()
	if got != "Foo" {
		t.Fatalf("reset value: want Foo, got %v", got)
	}
}

func TestScalar_CurrentValueIsNotCached(t *testing.T) {
	widget := memwidget.NewText("1")
	f, _ := field.NewScalar(field.Spec{Name: "count", Type: coerce.TypeInteger, Default: "1"}, widget, nil)

	first, _ := f.CurrentValue()
	widget.SetValue("7")
	second, _ := f.CurrentValue()
	if first != int64(1) || second != int64(7) {
		t.Fatalf("want 1 then 7, got %v then %v", first, second)
	}

	widget.SetValue("seven")
	if _, err := f.CurrentValue(); !errors.Is(err, coerce.ErrInvalidNumber) {
		t.Fatalf("expected ErrInvalidNumber, got %v", err)
	}
}

func TestScalar_SetFiresChange(t *testing.T) {
	widget := memwidget.NewText("")
	f, _ := field.NewScalar(field.Spec{Name: "video_url"}, widget, nil)
	if err := f.Set("https://example.com/a.ism"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if !f.IsOverridden() || widget.Value() != "https://example.com/a.ism" {
		t.Fatalf("set should write the widget and override the field")
	}
	if f.Type() != coerce.TypeString {
		t.Fatalf("missing type should default to string, got %s", f.Type())
	}
}

func TestNewScalar_Validation(t *testing.T) {
	if _, err := field.NewScalar(field.Spec{}, memwidget.NewText(""), nil); !errors.Is(err, field.ErrNameRequired) {
		t.Fatalf("expected ErrNameRequired, got %v", err)
	}
	if _, err := field.NewScalar(field.Spec{Name: "a"}, nil, nil); !errors.Is(err, field.ErrNoWidget) {
		t.Fatalf("expected ErrNoWidget, got %v", err)
	}
}

func TestRichText_EditorLifecycle(t *testing.T) {
	widget := memwidget.NewText("<p>default</p>")
	editor := memwidget.NewEditor("<p>default</p>")
	f, err := field.NewRichText(field.Spec{Name: "body", Default: "<p>default</p>"}, widget, editor, nil)
	if err != nil {
		t.Fatalf("new rich text: %v", err)
	}
	if !f.HasDetachableEditor() {
		t.Fatalf("editor should be detachable")
	}

	editor.Type("<p>typed</p>")
	f.HandleEvent(field.EventEditorChange)
	got, _ := f.CurrentValue()
	if got != "<p>typed</p>" {
		t.Fatalf("value should come from the editor, got %v", got)
	}

	f.DetachEditor()
	f.DetachEditor()
	if editor.Removed() != 1 {
		t.Fatalf("editor removed %d times, want 1", editor.Removed())
	}
	if f.HasDetachableEditor() {
		t.Fatalf("editor should be gone after detach")
	}
	if widget.Value() != "<p>typed</p>" {
		t.Fatalf("detach should flush editor content into the widget, got %q", widget.Value())
	}

	if err := f.Reset(); err != nil {
		t.Fatalf("reset: %v", err)
	}
	got, _ = f.CurrentValue()
	if got != "<p>default</p>" || f.IsOverridden() {
		t.Fatalf("reset should restore the default text, got %v", got)
	}
}

func TestRichText_ResetKeepsDefaultVerbatim(t *testing.T) {
	widget := memwidget.NewText("")
	editor := memwidget.NewEditor("")
	f, _ := field.NewRichText(field.Spec{Name: "body", Default: "[1, 2]"}, widget, editor, nil)
	_ = f.Set("changed")
	if err := f.Reset(); err != nil {
		t.Fatalf("reset: %v", err)
	}
	if editor.Content() != "[1, 2]" || widget.Value() != "[1, 2]" {
		t.Fatalf("default should be cast as text, got editor=%q widget=%q", editor.Content(), widget.Value())
	}
}

func TestRichText_Sanitizer(t *testing.T) {
	widget := memwidget.NewText(`<p onclick="x()">hi</p><script>alert(1)</script>`)
	f, _ := field.NewRichText(field.Spec{Name: "body"}, widget, nil, nil, field.WithSanitizer(field.UGCSanitizer()))
	got, _ := f.CurrentValue()
	text, _ := got.(string)
	if strings.Contains(text, "script") || strings.Contains(text, "onclick") {
		t.Fatalf("sanitizer should strip scripts and handlers, got %q", text)
	}
	if !strings.Contains(text, "<p>hi</p>") {
		t.Fatalf("sanitizer should keep safe markup, got %q", text)
	}
}

func newLevels(t *testing.T) (*field.CheckboxSet, []*memwidget.Checkbox) {
	t.Helper()
	boxes := []*memwidget.Checkbox{
		memwidget.NewCheckbox("1", "one", true),
		memwidget.NewCheckbox("2", "two", false),
		memwidget.NewCheckbox("3", "three", true),
	}
	options := make([]field.Checkbox, len(boxes))
	for i, box := range boxes {
		options[i] = box
	}
	f, err := field.NewCheckboxSet(field.Spec{Name: "levels", Default: "[1,3]"}, options, nil)
	if err != nil {
		t.Fatalf("new checkbox set: %v", err)
	}
	return f, boxes
}

func TestCheckboxSet_ValueInDocumentOrder(t *testing.T) {
	f, boxes := newLevels(t)

	boxes[1].SetChecked(true)
	f.HandleEvent(field.EventChange)

	got, err := f.CurrentValue()
	if err != nil {
		t.Fatalf("current value: %v", err)
	}
	if diff := cmp.Diff([]any{float64(1), float64(2), float64(3)}, got); diff != "" {
		t.Fatalf("value mismatch (-want +got):\n%s", diff)
	}
	if !f.IsOverridden() {
		t.Fatalf("checking an option should override the field")
	}
	if f.Type() != coerce.TypeMultiselect {
		t.Fatalf("checkbox set type: got %s", f.Type())
	}
}

func TestCheckboxSet_ResetByMembership(t *testing.T) {
	f, boxes := newLevels(t)
	boxes[0].SetChecked(false)
	boxes[1].SetChecked(true)
	f.HandleEvent(field.EventChange)

	if err := f.Reset(); err != nil {
		t.Fatalf("reset: %v", err)
	}
	got := []bool{boxes[0].Checked(), boxes[1].Checked(), boxes[2].Checked()}
	if diff := cmp.Diff([]bool{true, false, true}, got); diff != "" {
		t.Fatalf("checked state mismatch (-want +got):\n%s", diff)
	}
	if f.IsOverridden() {
		t.Fatalf("reset should clear override")
	}
}

func TestCheckboxSet_EmptySelectionIsEmptyList(t *testing.T) {
	f, boxes := newLevels(t)
	for _, box := range boxes {
		box.SetChecked(false)
	}
	got, _ := f.CurrentValue()
	if diff := cmp.Diff([]any{}, got); diff != "" {
		t.Fatalf("want empty list (-want +got):\n%s", diff)
	}
}

func TestCheckboxSet_SetAndMalformedDefault(t *testing.T) {
	f, boxes := newLevels(t)
	if err := f.Set("[2]"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if boxes[0].Checked() || !boxes[1].Checked() || boxes[2].Checked() {
		t.Fatalf("set should check exactly option 2")
	}

	for _, raw := range []string{"{", "2", `{"a":1}`} {
		err := f.Set(raw)
		if !errors.Is(err, coerce.ErrMalformedValue) {
			t.Fatalf("Set(%q): expected ErrMalformedValue, got %v", raw, err)
		}
		if errors.Is(err, field.ErrMalformedDefault) {
			t.Fatalf("Set(%q): user input must not report a malformed default", raw)
		}
		var verr *coerce.ValidationError
		if !errors.As(err, &verr) || verr.Raw != raw {
			t.Fatalf("Set(%q): expected *coerce.ValidationError carrying the input, got %v", raw, err)
		}
	}
	if boxes[0].Checked() || !boxes[1].Checked() || boxes[2].Checked() {
		t.Fatalf("malformed set must leave options untouched")
	}

	bad, _ := field.NewCheckboxSet(field.Spec{Name: "bad", Default: "{"}, nil, nil)
	_ = bad.Set("[]")
	if err := bad.Reset(); !errors.Is(err, field.ErrMalformedDefault) {
		t.Fatalf("expected ErrMalformedDefault, got %v", err)
	}
	if !bad.IsOverridden() {
		t.Fatalf("failed reset must keep the override")
	}
}
