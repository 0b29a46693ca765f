package studio

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/goliatone/go-studioedit/pkg/captions"
	"github.com/goliatone/go-studioedit/pkg/host"
	"github.com/goliatone/go-studioedit/pkg/surface"
)

// Link couples two fields: selecting an option of Source writes that option's
// value into Target and overrides Target.
type Link struct {
	Source string
	Target string
}

// StreamLink is the video player rule: selecting stream_video option X sets
// video_url to X and overrides video_url.
var StreamLink = Link{Source: "stream_video", Target: surface.FieldVideoURL}

// StreamOption is one selectable streaming source.
type StreamOption struct {
	URL     string
	AssetID string
}

// CaptionsRequest is a pending captions fetch started by SelectStream.
type CaptionsRequest struct {
	AssetID string

	done   chan struct{}
	once   sync.Once
	result captions.Result
	err    error
}

func newCaptionsRequest(assetID string) *CaptionsRequest {
	return &CaptionsRequest{AssetID: assetID, done: make(chan struct{})}
}

// Done is closed once the fetch settles.
func (r *CaptionsRequest) Done() <-chan struct{} {
	return r.done
}

// Wait blocks until the fetch settles or ctx ends.
func (r *CaptionsRequest) Wait(ctx context.Context) (captions.Result, error) {
	select {
	case <-r.done:
		return r.result, r.err
	case <-ctx.Done():
		return captions.Result{}, ctx.Err()
	}
}

func (r *CaptionsRequest) settle(result captions.Result, err error) {
	r.once.Do(func() {
		r.result = result
		r.err = err
		close(r.done)
	})
}

// Link returns the active stream linkage.
func (e *Editor) Link() Link {
	return e.link
}

// SelectStream applies the stream linkage for opt. The target field is set
// and overridden before SelectStream returns; the captions fetch for
// opt.AssetID runs in the background. Without an asset id no fetch is made
// and the request settles with captions.ErrAssetRequired.
//
// A failed fetch is reported through the error signal.
func (e *Editor) SelectStream(ctx context.Context, opt StreamOption) (*CaptionsRequest, error) {
	target, ok := e.registry.Lookup(e.link.Target)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownField, e.link.Target)
	}
	if err := target.Set(opt.URL); err != nil {
		return nil, fmt.Errorf("studio: set %s: %w", e.link.Target, err)
	}

	req := newCaptionsRequest(strings.TrimSpace(opt.AssetID))
	if req.AssetID == "" {
		req.settle(captions.Result{}, captions.ErrAssetRequired)
		return req, nil
	}

	go func() {
		result, err := e.captions.Fetch(ctx, req.AssetID)
		e.scheduler.Schedule(func() {
			if err != nil {
				var body []byte
				var terr *captions.TransportError
				if errors.As(err, &terr) {
					body = terr.Body
				}
				e.runtime.Notify(ctx, host.SignalError, host.ErrorNotice{
					Title:   e.message(MessageSaveFailedTitle),
					Message: e.normalizer.Message(body),
				})
			}
			req.settle(result, err)
		})
	}()
	return req, nil
}

// ApplyCaptions writes the checked choices into the captions field as
// [{kind, src, srclang, label}, ...] and overrides it.
func (e *Editor) ApplyCaptions(choices []captions.Choice) error {
	target, ok := e.registry.Lookup(e.captionsField)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownField, e.captionsField)
	}
	value, err := captions.FieldValue(choices)
	if err != nil {
		return fmt.Errorf("studio: encode captions: %w", err)
	}
	return target.Set(value)
}
