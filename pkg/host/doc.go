// Package host models the embedding editor runtime: it resolves named handler
// endpoints for one block instance and receives one-way lifecycle signals.
//
// Three signals exist: save (with a start or end state), error (title and
// message), and cancel (empty payload). HandlerRuntime resolves handlers under
// a base URL and forwards signals to a Notifier; Recorder is a Notifier that
// keeps every signal for inspection.
package host
