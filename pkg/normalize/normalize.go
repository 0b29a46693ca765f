// Package normalize turns arbitrary failure bodies from the host into one
// display string.
//
// A Normalizer runs an ordered list of strategies over the raw body; the first
// strategy that produces a message wins. The final fallback always succeeds,
// so Message never fails and never returns an empty string.
package normalize

import (
	"strings"
	"unicode/utf8"

	"github.com/tidwall/gjson"
)

// DefaultGenericMessage is shown when the host sent no body at all.
const DefaultGenericMessage = "This may be happening because of an error with our server or your internet " +
	"connection. Try refreshing the page or making sure you are online."

// DefaultRawLimit caps the raw body fallback, in characters.
const DefaultRawLimit = 300

// Strategy extracts a message from body. ok=false passes to the next strategy.
type Strategy func(body []byte) (message string, ok bool)

// Option configures a Normalizer.
type Option func(*Normalizer)

// WithGenericMessage replaces the message used for absent bodies.
func WithGenericMessage(message string) Option {
	return func(n *Normalizer) {
		if strings.TrimSpace(message) != "" {
			n.generic = message
		}
	}
}

// WithRawLimit changes how many characters of an unparseable body are shown.
func WithRawLimit(limit int) Option {
	return func(n *Normalizer) {
		if limit > 0 {
			n.rawLimit = limit
		}
	}
}

// WithStrategies replaces the structured strategies run between the absent
// body check and the raw fallback.
func WithStrategies(strategies ...Strategy) Option {
	return func(n *Normalizer) {
		n.strategies = append([]Strategy(nil), strategies...)
	}
}

// Normalizer holds the strategy chain.
type Normalizer struct {
	generic    string
	rawLimit   int
	strategies []Strategy
}

// New builds a Normalizer with the default chain: error string, then joined
// error.messages texts.
func New(opts ...Option) *Normalizer {
	n := &Normalizer{
		generic:    DefaultGenericMessage,
		rawLimit:   DefaultRawLimit,
		strategies: []Strategy{ErrorString, ErrorMessages},
	}
	for _, opt := range opts {
		if opt != nil {
			opt(n)
		}
	}
	return n
}

// Message normalises body. A nil or blank body yields the generic message.
func (n *Normalizer) Message(body []byte) string {
	if n == nil {
		n = New()
	}
	if len(strings.TrimSpace(string(body))) == 0 {
		return n.generic
	}
	for _, strategy := range n.strategies {
		if strategy == nil {
			continue
		}
		if message, ok := strategy(body); ok {
			return message
		}
	}
	return truncate(string(body), n.rawLimit)
}

// Message normalises body with the default chain.
func Message(body []byte) string {
	return New().Message(body)
}

// ErrorString matches {"error": "text"}.
func ErrorString(body []byte) (string, bool) {
	if !gjson.ValidBytes(body) {
		return "", false
	}
	value := gjson.GetBytes(body, "error")
	if value.Type != gjson.String || value.Str == "" {
		return "", false
	}
	return value.Str, true
}

// ErrorMessages matches {"error": {"messages": [{"text": "a"}, ...]}} and
// joins the texts with ", ".
func ErrorMessages(body []byte) (string, bool) {
	if !gjson.ValidBytes(body) {
		return "", false
	}
	messages := gjson.GetBytes(body, "error.messages")
	if !messages.IsArray() {
		return "", false
	}
	var texts []string
	messages.ForEach(func(_, entry gjson.Result) bool {
		if text := entry.Get("text"); text.Exists() {
			texts = append(texts, text.String())
		}
		return true
	})
	joined := strings.Join(texts, ", ")
	if strings.TrimSpace(joined) == "" {
		return "", false
	}
	return joined, true
}

func truncate(raw string, limit int) string {
	if utf8.RuneCountInString(raw) <= limit {
		return raw
	}
	runes := []rune(raw)
	return string(runes[:limit])
}
