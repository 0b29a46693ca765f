package studio

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/goliatone/go-studioedit/pkg/captions"
	"github.com/goliatone/go-studioedit/pkg/host"
	"github.com/goliatone/go-studioedit/pkg/normalize"
	"github.com/goliatone/go-studioedit/pkg/registry"
	"github.com/goliatone/go-studioedit/pkg/surface"
)

// Editor runs the save/cancel protocol for one editing surface.
type Editor struct {
	registry   *registry.Registry
	runtime    host.Runtime
	http       *http.Client
	logger     Logger
	translator Translator
	locale     string
	normalizer *normalize.Normalizer
	scheduler  Scheduler
	captions   *captions.Client

	allowOverlap  bool
	inFlight      atomic.Bool
	link          Link
	captionsField string
}

// New builds an editor over reg that reports to runtime.
func New(reg *registry.Registry, runtime host.Runtime, opts ...Option) (*Editor, error) {
	if reg == nil {
		return nil, ErrRegistryRequired
	}
	if runtime == nil {
		return nil, ErrRuntimeRequired
	}

	e := &Editor{
		registry:      reg,
		runtime:       runtime,
		http:          http.DefaultClient,
		logger:        noopLogger{},
		scheduler:     inlineScheduler{},
		link:          StreamLink,
		captionsField: surface.FieldCaptions,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(e)
		}
	}

	if e.normalizer == nil {
		e.normalizer = normalize.New(normalize.WithGenericMessage(e.message(MessageConnectivity)))
	}
	if e.captions == nil {
		client, err := captions.NewClient(runtime,
			captions.WithHTTPClient(e.http),
			captions.WithEmptyMessage(e.message(MessageNoCaptions)),
		)
		if err != nil {
			return nil, err
		}
		e.captions = client
	}
	return e, nil
}

// Registry returns the fields this editor saves.
func (e *Editor) Registry() *registry.Registry {
	return e.registry
}

// Busy reports whether a guarded save is pending.
func (e *Editor) Busy() bool {
	return e.inFlight.Load()
}

// Save starts a save attempt and returns without waiting for the host.
//
// save/start is emitted before the payload is built. If an overridden field
// fails coercion no request is sent and error is emitted immediately.
// Otherwise the payload is posted in the background and save/end or error
// follows on the scheduler. Rich-text editors are detached either way.
func (e *Editor) Save(ctx context.Context) (*Submission, error) {
	if !e.allowOverlap && !e.inFlight.CompareAndSwap(false, true) {
		return nil, ErrSaveInFlight
	}

	e.runtime.Notify(ctx, host.SignalSave, host.SaveNotice{
		State:   host.SaveStateStart,
		Message: e.message(MessageSaving),
	})

	payload, err := collect(e.registry, true)
	sub := newSubmission(uuid.NewString(), payload)
	event := SaveLogEvent{
		AttemptID:  sub.ID,
		Overridden: sub.Overridden,
		Reset:      sub.Reset,
	}

	var invalid *ValidationErrors
	if errors.As(err, &invalid) {
		e.fail(ctx, sub, event, OutcomeInvalid, invalid, invalidMessage(invalid))
		return sub, nil
	}

	endpoint, err := e.runtime.HandlerURL(host.HandlerSubmitStudioEdits)
	if err != nil {
		terr := &TransportError{Err: err}
		e.fail(ctx, sub, event, OutcomeFailed, terr, e.normalizer.Message(nil))
		return sub, nil
	}
	event.Endpoint = endpoint

	body, err := json.Marshal(payload)
	if err != nil {
		encErr := fmt.Errorf("studio: encode payload: %w", err)
		e.fail(ctx, sub, event, OutcomeFailed, encErr, e.normalizer.Message(nil))
		return sub, nil
	}

	go e.submit(ctx, sub, event, body)
	return sub, nil
}

func (e *Editor) submit(ctx context.Context, sub *Submission, event SaveLogEvent, body []byte) {
	started := time.Now()
	status, respBody, err := e.post(ctx, event.Endpoint, sub.ID, body)
	event.Status = status
	event.Duration = time.Since(started)

	if err != nil {
		e.scheduler.Schedule(func() {
			e.fail(ctx, sub, event, OutcomeFailed, err, e.normalizer.Message(respBody))
		})
		return
	}

	e.scheduler.Schedule(func() {
		e.runtime.Notify(ctx, host.SignalSave, host.SaveNotice{State: host.SaveStateEnd})
		event.Outcome = OutcomeSaved
		e.logger.LogSave(event)
		e.settle(sub, OutcomeSaved, nil)
	})
}

func (e *Editor) post(ctx context.Context, endpoint, requestID string, body []byte) (int, []byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return 0, nil, &TransportError{Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)

	resp, err := e.http.Do(req)
	if err != nil {
		return 0, nil, &TransportError{Err: err}
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, &TransportError{Status: resp.StatusCode, Err: err}
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return resp.StatusCode, respBody, &TransportError{Status: resp.StatusCode, Body: respBody}
	}
	return resp.StatusCode, respBody, nil
}

func (e *Editor) fail(ctx context.Context, sub *Submission, event SaveLogEvent, outcome Outcome, err error, message string) {
	e.runtime.Notify(ctx, host.SignalError, host.ErrorNotice{
		Title:   e.message(MessageSaveFailedTitle),
		Message: message,
	})
	event.Outcome = outcome
	event.Err = err
	e.logger.LogSave(event)
	e.settle(sub, outcome, err)
}

func (e *Editor) settle(sub *Submission, outcome Outcome, err error) {
	if !e.allowOverlap {
		e.inFlight.Store(false)
	}
	sub.settle(outcome, err)
}

// Cancel detaches rich-text editors and emits cancel. It never fails and
// makes no network call.
func (e *Editor) Cancel(ctx context.Context) {
	e.registry.DetachEditors()
	e.runtime.Notify(ctx, host.SignalCancel, host.CancelNotice{})
}

func invalidMessage(err *ValidationErrors) string {
	parts := make([]string, 0, len(err.Fields))
	for _, fe := range err.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", fe.Name, describeFieldError(fe.Err)))
	}
	return strings.Join(parts, ", ")
}

func describeFieldError(err error) string {
	msg := err.Error()
	if idx := strings.Index(msg, " (type="); idx > 0 {
		msg = msg[:idx]
	}
	return strings.TrimPrefix(msg, "coerce: ")
}
