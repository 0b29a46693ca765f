package studio

import "time"

// SaveLogEvent describes one save attempt once it has settled.
type SaveLogEvent struct {
	AttemptID  string
	Endpoint   string
	Overridden int
	Reset      int
	Status     int
	Duration   time.Duration
	Outcome    Outcome
	Err        error
}

// Logger records save attempts.
type Logger interface {
	LogSave(SaveLogEvent)
}

// LoggerFunc adapts a function to Logger.
type LoggerFunc func(SaveLogEvent)

// LogSave implements Logger.
func (f LoggerFunc) LogSave(event SaveLogEvent) {
	if f != nil {
		f(event)
	}
}

type noopLogger struct{}

func (noopLogger) LogSave(SaveLogEvent) {}
