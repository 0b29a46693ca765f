package host

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"sync"
)

// Handler names the block instance exposes.
const (
	HandlerSubmitStudioEdits = "submit_studio_edits"
	HandlerGetCaptions       = "get_captions"
)

// Signal is a host-facing lifecycle notification name.
type Signal string

const (
	SignalSave   Signal = "save"
	SignalError  Signal = "error"
	SignalCancel Signal = "cancel"
)

// Save states carried by SignalSave.
const (
	SaveStateStart = "start"
	SaveStateEnd   = "end"
)

// SaveNotice is the payload of SignalSave.
type SaveNotice struct {
	State   string `json:"state"`
	Message string `json:"message,omitempty"`
}

// ErrorNotice is the payload of SignalError.
type ErrorNotice struct {
	Title   string `json:"title"`
	Message string `json:"message"`
}

// CancelNotice is the empty payload of SignalCancel.
type CancelNotice struct{}

// ErrUnknownHandler is returned for handler names the runtime cannot resolve.
var ErrUnknownHandler = errors.New("host: unknown handler")

// Notifier receives signals. Implementations must not block for long; they
// run on the caller's goroutine or the editor's scheduler.
type Notifier interface {
	Notify(ctx context.Context, signal Signal, payload any)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(ctx context.Context, signal Signal, payload any)

// Notify implements Notifier.
func (f NotifierFunc) Notify(ctx context.Context, signal Signal, payload any) {
	if f != nil {
		f(ctx, signal, payload)
	}
}

// Runtime is the host contract the editor depends on.
type Runtime interface {
	Notifier
	HandlerURL(handler string) (string, error)
}

// RuntimeOption configures a HandlerRuntime.
type RuntimeOption func(*HandlerRuntime)

// WithNotifier forwards signals to n.
func WithNotifier(n Notifier) RuntimeOption {
	return func(r *HandlerRuntime) {
		if n != nil {
			r.notifier = n
		}
	}
}

// WithHandlers restricts resolution to the listed handler names.
func WithHandlers(names ...string) RuntimeOption {
	return func(r *HandlerRuntime) {
		r.handlers = make(map[string]struct{}, len(names))
		for _, name := range names {
			if trimmed := strings.TrimSpace(name); trimmed != "" {
				r.handlers[trimmed] = struct{}{}
			}
		}
	}
}

// HandlerRuntime resolves handlers as <base>/xblock/<usage id>/handler/<name>.
type HandlerRuntime struct {
	base     *url.URL
	usageID  string
	notifier Notifier
	handlers map[string]struct{}
}

var _ Runtime = (*HandlerRuntime)(nil)

// NewHandlerRuntime validates baseURL and usageID. Without WithHandlers the
// submit and captions handlers are resolvable.
func NewHandlerRuntime(baseURL, usageID string, opts ...RuntimeOption) (*HandlerRuntime, error) {
	base, err := url.Parse(strings.TrimSpace(baseURL))
	if err != nil {
		return nil, fmt.Errorf("host: base url: %w", err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("host: base url %q must be absolute", baseURL)
	}
	usageID = strings.TrimSpace(usageID)
	if usageID == "" {
		return nil, errors.New("host: usage id is required")
	}

	r := &HandlerRuntime{
		base:     base,
		usageID:  usageID,
		notifier: NotifierFunc(nil),
	}
	WithHandlers(HandlerSubmitStudioEdits, HandlerGetCaptions)(r)
	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}
	return r, nil
}

// HandlerURL resolves a named server operation for this block instance.
func (r *HandlerRuntime) HandlerURL(handler string) (string, error) {
	if _, ok := r.handlers[handler]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownHandler, handler)
	}
	resolved := r.base.JoinPath("xblock", r.usageID, "handler", handler)
	return resolved.String(), nil
}

// Notify forwards to the configured notifier.
func (r *HandlerRuntime) Notify(ctx context.Context, signal Signal, payload any) {
	r.notifier.Notify(ctx, signal, payload)
}

// Notification is one recorded signal.
type Notification struct {
	Signal  Signal
	Payload any
}

// Recorder keeps every signal it receives. Safe for concurrent use.
type Recorder struct {
	mu     sync.Mutex
	events []Notification
	next   Notifier
}

var _ Notifier = (*Recorder)(nil)

// NewRecorder returns a recorder that also forwards to next when non-nil.
func NewRecorder(next Notifier) *Recorder {
	return &Recorder{next: next}
}

// Notify implements Notifier.
func (r *Recorder) Notify(ctx context.Context, signal Signal, payload any) {
	r.mu.Lock()
	r.events = append(r.events, Notification{Signal: signal, Payload: payload})
	next := r.next
	r.mu.Unlock()
	if next != nil {
		next.Notify(ctx, signal, payload)
	}
}

// Notifications returns a copy of the recorded signals in arrival order.
func (r *Recorder) Notifications() []Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Notification(nil), r.events...)
}

// Signals returns "save:start", "error", "cancel" style labels in order.
func (r *Recorder) Signals() []string {
	events := r.Notifications()
	out := make([]string, 0, len(events))
	for _, event := range events {
		label := string(event.Signal)
		if notice, ok := event.Payload.(SaveNotice); ok {
			label += ":" + notice.State
		}
		out = append(out, label)
	}
	return out
}

// Reset drops recorded signals.
func (r *Recorder) Reset() {
	r.mu.Lock()
	r.events = nil
	r.mu.Unlock()
}
