package captions

import (
	"errors"
	"fmt"
)

var (
	// ErrAssetRequired is returned when Fetch is called without an asset id.
	ErrAssetRequired = errors.New("captions: asset id is required")
	// ErrMalformedResponse reports a success body that is neither an error
	// envelope nor a list of assets.
	ErrMalformedResponse = errors.New("captions: malformed response")
)

// TransportError is a network failure, a non-2xx reply, or an unreadable
// success body. Body holds the raw response for the error normalizer.
type TransportError struct {
	Status int
	Body   []byte
	Err    error
}

func (e *TransportError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil && e.Status != 0 {
		return fmt.Sprintf("%v (status %d)", e.Err, e.Status)
	}
	if e.Err != nil {
		return fmt.Sprintf("captions: transport: %v", e.Err)
	}
	return fmt.Sprintf("captions: unexpected status %d", e.Status)
}

func (e *TransportError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
