package studio

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrSaveInFlight is returned by Save while a previous save is pending and
	// overlapping saves are not allowed.
	ErrSaveInFlight = errors.New("studio: save already in flight")
	// ErrRegistryRequired is returned by New without a registry.
	ErrRegistryRequired = errors.New("studio: registry is required")
	// ErrRuntimeRequired is returned by New without a host runtime.
	ErrRuntimeRequired = errors.New("studio: runtime is required")
	// ErrUnknownField is returned when a linked field is not on the surface.
	ErrUnknownField = errors.New("studio: unknown field")
)

// FieldError is one field that could not be coerced.
type FieldError struct {
	Name string
	Err  error
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %v", e.Name, e.Err)
}

func (e FieldError) Unwrap() error {
	return e.Err
}

// ValidationErrors blocks a save: at least one overridden field held a value
// its type rejects. Fields are listed in registry order.
type ValidationErrors struct {
	Fields []FieldError
}

func (e *ValidationErrors) Error() string {
	if e == nil || len(e.Fields) == 0 {
		return "studio: validation failed"
	}
	parts := make([]string, 0, len(e.Fields))
	for _, fe := range e.Fields {
		parts = append(parts, fe.Error())
	}
	return "studio: validation failed: " + strings.Join(parts, "; ")
}

// Unwrap exposes the per-field errors to errors.Is/As.
func (e *ValidationErrors) Unwrap() []error {
	if e == nil {
		return nil
	}
	out := make([]error, 0, len(e.Fields))
	for _, fe := range e.Fields {
		out = append(out, fe)
	}
	return out
}

// Names lists the failing fields.
func (e *ValidationErrors) Names() []string {
	if e == nil {
		return nil
	}
	names := make([]string, 0, len(e.Fields))
	for _, fe := range e.Fields {
		names = append(names, fe.Name)
	}
	return names
}

// TransportError is a network failure or a non-2xx reply from the host.
type TransportError struct {
	Status int
	Body   []byte
	Err    error
}

func (e *TransportError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return fmt.Sprintf("studio: transport: %v", e.Err)
	}
	return fmt.Sprintf("studio: unexpected status %d", e.Status)
}

func (e *TransportError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
