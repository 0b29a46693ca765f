package prompt

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-studioedit/internal/memwidget"
	"github.com/goliatone/go-studioedit/pkg/coerce"
	"github.com/goliatone/go-studioedit/pkg/registry"
	"github.com/goliatone/go-studioedit/pkg/surface"
)

type stubDriver struct {
	inputs       []string
	selectIdx    []int
	multiIdx     [][]int
	confirm      []bool
	textAreas    []string
	infoMessages []string
	inputPos     int
	selectPos    int
	multiPos     int
	confirmPos   int
	textPos      int

	selectConfigs []SelectConfig
	inputConfigs  []InputConfig
}

func (s *stubDriver) Input(_ context.Context, cfg InputConfig) (string, error) {
	s.inputConfigs = append(s.inputConfigs, cfg)
	if s.inputPos >= len(s.inputs) {
		return "", errors.New("no input scripted")
	}
	val := s.inputs[s.inputPos]
	s.inputPos++
	return val, nil
}

func (s *stubDriver) Confirm(_ context.Context, _ ConfirmConfig) (bool, error) {
	if s.confirmPos >= len(s.confirm) {
		return false, errors.New("no confirm scripted")
	}
	val := s.confirm[s.confirmPos]
	s.confirmPos++
	return val, nil
}

func (s *stubDriver) Select(_ context.Context, cfg SelectConfig) (int, error) {
	s.selectConfigs = append(s.selectConfigs, cfg)
	if s.selectPos >= len(s.selectIdx) {
		return -1, errors.New("no select scripted")
	}
	val := s.selectIdx[s.selectPos]
	s.selectPos++
	return val, nil
}

func (s *stubDriver) MultiSelect(_ context.Context, _ SelectConfig) ([]int, error) {
	if s.multiPos >= len(s.multiIdx) {
		return nil, errors.New("no multiselect scripted")
	}
	val := s.multiIdx[s.multiPos]
	s.multiPos++
	return val, nil
}

func (s *stubDriver) TextArea(_ context.Context, _ TextAreaConfig) (string, error) {
	if s.textPos >= len(s.textAreas) {
		return "", errors.New("no textarea scripted")
	}
	val := s.textAreas[s.textPos]
	s.textPos++
	return val, nil
}

func (s *stubDriver) Info(_ context.Context, msg string) error {
	s.infoMessages = append(s.infoMessages, msg)
	return nil
}

func demoSurface() surface.Descriptor {
	return surface.Descriptor{
		Fields: []surface.FieldSpec{
			{Name: "title", Label: "Title", Help: "Shown to learners.", Cast: "string", Default: "Foo"},
			{Name: "is_public", Cast: "boolean", Default: "false"},
			{Name: "count", Cast: "integer", Default: "1", Set: true},
			{Name: "meta", Cast: "generic", Default: "{}"},
			{
				Name:    "levels",
				Default: "[1]",
				Options: []surface.OptionSpec{{Value: "1", Label: "One"}, {Value: "2", Label: "Two"}},
			},
		},
	}
}

func TestSession_EditAppliesEveryAction(t *testing.T) {
	desc := demoSurface()
	reg, err := registry.Discover(desc, memwidget.Factory{})
	if err != nil {
		t.Fatalf("discover: %v", err)
	}
	driver := &stubDriver{
		// title edit, is_public edit, count reset, meta edit, levels edit
		selectIdx: []int{1, 1, 2, 1, 1},
		inputs:    []string{"Bar"},
		confirm:   []bool{true},
		textAreas: []string{`{"a":1}`},
		multiIdx:  [][]int{{0, 1}},
	}
	session, err := NewSession(driver, WithDescriptor(desc))
	if err != nil {
		t.Fatalf("new session: %v", err)
	}

	if err := session.Edit(context.Background(), reg); err != nil {
		t.Fatalf("edit: %v", err)
	}

	got := map[string]any{}
	overridden := map[string]bool{}
	for _, f := range reg.Fields() {
		value, err := f.CurrentValue()
		if err != nil {
			t.Fatalf("%s value: %v", f.Name(), err)
		}
		got[f.Name()] = value
		overridden[f.Name()] = f.IsOverridden()
	}
	want := map[string]any{
		"title":     "Bar",
		"is_public": true,
		"count":     int64(1),
		"meta":      map[string]any{"a": float64(1)},
		"levels":    []any{float64(1), float64(2)},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("values mismatch (-want +got):\n%s", diff)
	}
	wantOverridden := map[string]bool{"title": true, "is_public": true, "count": false, "meta": true, "levels": true}
	if diff := cmp.Diff(wantOverridden, overridden); diff != "" {
		t.Fatalf("override state mismatch (-want +got):\n%s", diff)
	}

	if driver.selectConfigs[0].Message != "Title [default] = Foo" || driver.selectConfigs[0].Help != "Shown to learners." {
		t.Fatalf("unexpected first prompt %+v", driver.selectConfigs[0])
	}
	if diff := cmp.Diff([]string{"count reset to default"}, driver.infoMessages); diff != "" {
		t.Fatalf("info mismatch (-want +got):\n%s", diff)
	}
}

func TestSession_InputCarriesFieldType(t *testing.T) {
	reg, err := registry.Discover(surface.Descriptor{
		Fields: []surface.FieldSpec{{Name: "count", Cast: "integer", Default: "1"}},
	}, memwidget.Factory{})
	if err != nil {
		t.Fatalf("discover: %v", err)
	}
	driver := &stubDriver{selectIdx: []int{1}, inputs: []string{"7"}}
	session, _ := NewSession(driver)
	if err := session.Edit(context.Background(), reg); err != nil {
		t.Fatalf("edit: %v", err)
	}

	if got := driver.inputConfigs[0].Type; got != coerce.TypeInteger {
		t.Fatalf("input type = %q, want %q", got, coerce.TypeInteger)
	}
	if driver.inputConfigs[0].Default != "1" || driver.selectConfigs[0].Message != "count [default] = 1" {
		t.Fatalf("unexpected prompts %+v %+v", driver.inputConfigs[0], driver.selectConfigs[0])
	}
}

func TestSession_KeepLeavesFieldsUntouched(t *testing.T) {
	reg, err := registry.Discover(demoSurface(), memwidget.Factory{})
	if err != nil {
		t.Fatalf("discover: %v", err)
	}
	driver := &stubDriver{selectIdx: []int{0, 0, 0, 0, 0}}
	session, _ := NewSession(driver)
	if err := session.Edit(context.Background(), reg); err != nil {
		t.Fatalf("edit: %v", err)
	}
	for _, f := range reg.Fields() {
		if f.Name() == "count" {
			if !f.IsOverridden() {
				t.Fatalf("count was overridden on the surface and should stay so")
			}
			continue
		}
		if f.IsOverridden() {
			t.Fatalf("%s should still be at default", f.Name())
		}
	}
}

func TestSession_DriverErrorsAreWrapped(t *testing.T) {
	reg, err := registry.Discover(demoSurface(), memwidget.Factory{})
	if err != nil {
		t.Fatalf("discover: %v", err)
	}
	session, _ := NewSession(&stubDriver{})
	if err := session.Edit(context.Background(), reg); err == nil {
		t.Fatalf("expected error when the driver has nothing scripted")
	}
}

func TestSession_Decide(t *testing.T) {
	driver := &stubDriver{selectIdx: []int{0, 1}}
	session, _ := NewSession(driver)
	first, err := session.Decide(context.Background())
	if err != nil || first != DecisionSave {
		t.Fatalf("first decision %v, %v", first, err)
	}
	second, err := session.Decide(context.Background())
	if err != nil || second != DecisionCancel {
		t.Fatalf("second decision %v, %v", second, err)
	}
}

func TestNewSession_RequiresDriver(t *testing.T) {
	if _, err := NewSession(nil); !errors.Is(err, ErrDriverRequired) {
		t.Fatalf("expected ErrDriverRequired, got %v", err)
	}
}

func TestIndicesOf(t *testing.T) {
	got := indicesOf([]string{"a", "b", "c"}, []string{"c", "a"})
	if diff := cmp.Diff([]int{0, 2}, got); diff != "" {
		t.Fatalf("indices mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"b"}, pick([]string{"a", "b"}, []int{1, 5})); diff != "" {
		t.Fatalf("pick mismatch (-want +got):\n%s", diff)
	}
}
