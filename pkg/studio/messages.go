package studio

import "strings"

// Message keys resolved through the Translator.
const (
	MessageSaving          = "studio.save.saving"
	MessageSaveFailedTitle = "studio.save.failed_title"
	MessageConnectivity    = "studio.save.connectivity"
	MessageNoCaptions      = "studio.captions.none"
)

var defaultMessages = map[string]string{
	MessageSaving:          "Saving",
	MessageSaveFailedTitle: "Unable to update settings",
	MessageConnectivity: "This may be happening because of an error with our server or your internet " +
		"connection. Try refreshing the page or making sure you are online.",
	MessageNoCaptions: "No captions/transcripts available for selected video.",
}

// Translator resolves user-facing strings for a locale.
type Translator interface {
	Translate(locale, key string, args ...any) (string, error)
}

// TranslatorFunc adapts a function to Translator.
type TranslatorFunc func(locale, key string, args ...any) (string, error)

// Translate implements Translator.
func (f TranslatorFunc) Translate(locale, key string, args ...any) (string, error) {
	return f(locale, key, args...)
}

// message translates key, falling back to the built-in English text when no
// translator is configured or it has nothing for key.
func (e *Editor) message(key string) string {
	fallback := defaultMessages[key]
	if e.translator == nil {
		return fallback
	}
	msg, err := e.translator.Translate(e.locale, key)
	if err != nil || strings.TrimSpace(msg) == "" {
		return fallback
	}
	return msg
}
