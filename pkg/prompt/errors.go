package prompt

import "errors"

var (
	// ErrAborted signals the user aborted input (e.g., Ctrl+C).
	ErrAborted = errors.New("prompt: aborted")
	// ErrDriverRequired is returned by NewSession without a driver.
	ErrDriverRequired = errors.New("prompt: driver is required")
)
