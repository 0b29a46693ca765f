package host_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-studioedit/pkg/host"
)

func TestHandlerRuntime_HandlerURL(t *testing.T) {
	rt, err := host.NewHandlerRuntime("https://studio.example.com/base", "block-v1:Org+Run+type@video+block@abc")
	if err != nil {
		t.Fatalf("new runtime: %v", err)
	}
	got, err := rt.HandlerURL(host.HandlerSubmitStudioEdits)
	if err != nil {
		t.Fatalf("handler url: %v", err)
	}
	want := "https://studio.example.com/base/xblock/block-v1:Org+Run+type@video+block@abc/handler/submit_studio_edits"
	if got != want {
		t.Fatalf("want %q, got %q", want, got)
	}

	if _, err := rt.HandlerURL("publish_event"); !errors.Is(err, host.ErrUnknownHandler) {
		t.Fatalf("expected ErrUnknownHandler, got %v", err)
	}
}

func TestHandlerRuntime_Validation(t *testing.T) {
	if _, err := host.NewHandlerRuntime("/relative", "id"); err == nil {
		t.Fatalf("expected error for relative base url")
	}
	if _, err := host.NewHandlerRuntime("https://example.com", " "); err == nil {
		t.Fatalf("expected error for missing usage id")
	}
}

func TestHandlerRuntime_ForwardsToRecorder(t *testing.T) {
	rec := host.NewRecorder(nil)
	rt, err := host.NewHandlerRuntime("https://example.com", "u1", host.WithNotifier(rec), host.WithHandlers("custom"))
	if err != nil {
		t.Fatalf("new runtime: %v", err)
	}
	if _, err := rt.HandlerURL("custom"); err != nil {
		t.Fatalf("custom handler: %v", err)
	}
	if _, err := rt.HandlerURL(host.HandlerGetCaptions); err == nil {
		t.Fatalf("WithHandlers should replace the default handler set")
	}

	ctx := context.Background()
	rt.Notify(ctx, host.SignalSave, host.SaveNotice{State: host.SaveStateStart, Message: "Saving"})
	rt.Notify(ctx, host.SignalError, host.ErrorNotice{Title: "t", Message: "m"})
	rt.Notify(ctx, host.SignalCancel, host.CancelNotice{})

	if diff := cmp.Diff([]string{"save:start", "error", "cancel"}, rec.Signals()); diff != "" {
		t.Fatalf("signals mismatch (-want +got):\n%s", diff)
	}
	rec.Reset()
	if len(rec.Notifications()) != 0 {
		t.Fatalf("reset should clear notifications")
	}
}
