package coerce

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidNumber reports a non-numeric value in an integer or float field.
	ErrInvalidNumber = errors.New("coerce: invalid number")
	// ErrMalformedValue reports structured text that is not valid JSON.
	ErrMalformedValue = errors.New("coerce: malformed value")
	// ErrUnknownType is returned by ParseType for unrecognised cast names.
	ErrUnknownType = errors.New("coerce: unknown type")
)

// ValidationError captures the raw input and type that failed to coerce.
type ValidationError struct {
	Type Type
	Raw  string
	Err  error
}

func (e *ValidationError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%v (type=%s raw=%s)", e.Err, e.Type, describeRaw(e.Raw))
}

func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

func describeRaw(raw string) string {
	const limit = 40
	if raw == "" {
		return "<empty>"
	}
	runes := []rune(raw)
	if len(runes) > limit {
		return fmt.Sprintf("%q…", string(runes[:limit]))
	}
	return fmt.Sprintf("%q", raw)
}
