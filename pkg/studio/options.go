package studio

import (
	"net/http"
	"strings"

	"github.com/goliatone/go-studioedit/pkg/captions"
	"github.com/goliatone/go-studioedit/pkg/normalize"
)

// Option configures an Editor.
type Option func(*Editor)

// WithHTTPClient sets the client used for submit and captions requests.
func WithHTTPClient(client *http.Client) Option {
	return func(e *Editor) {
		if client != nil {
			e.http = client
		}
	}
}

// WithLogger records every settled save attempt.
func WithLogger(logger Logger) Option {
	return func(e *Editor) {
		if logger == nil {
			e.logger = noopLogger{}
			return
		}
		e.logger = logger
	}
}

// WithTranslator resolves user-facing strings for locale.
func WithTranslator(t Translator, locale string) Option {
	return func(e *Editor) {
		e.translator = t
		e.locale = strings.TrimSpace(locale)
	}
}

// WithScheduler runs success and failure continuations through s.
func WithScheduler(s Scheduler) Option {
	return func(e *Editor) {
		if s != nil {
			e.scheduler = s
		}
	}
}

// WithAllowOverlappingSaves lets Save start while another save is pending.
// Each save then emits its own start/end pair; the UI must keep the save
// control disabled itself.
func WithAllowOverlappingSaves(allow bool) Option {
	return func(e *Editor) {
		e.allowOverlap = allow
	}
}

// WithNormalizer replaces the error normalizer.
func WithNormalizer(n *normalize.Normalizer) Option {
	return func(e *Editor) {
		if n != nil {
			e.normalizer = n
		}
	}
}

// WithCaptionsClient replaces the captions client built from the runtime.
func WithCaptionsClient(c *captions.Client) Option {
	return func(e *Editor) {
		if c != nil {
			e.captions = c
		}
	}
}

// WithStreamLink overrides which field a stream selection writes to.
func WithStreamLink(link Link) Option {
	return func(e *Editor) {
		if strings.TrimSpace(link.Target) != "" {
			e.link = link
		}
	}
}

// WithCaptionsField names the structured field caption choices are written to.
func WithCaptionsField(name string) Option {
	return func(e *Editor) {
		if trimmed := strings.TrimSpace(name); trimmed != "" {
			e.captionsField = trimmed
		}
	}
}
