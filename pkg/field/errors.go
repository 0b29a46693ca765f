package field

import "errors"

var (
	// ErrNoWidget is returned when a variant is constructed without its widget.
	ErrNoWidget = errors.New("field: widget is required")
	// ErrNameRequired is returned for fields without a settings key.
	ErrNameRequired = errors.New("field: name is required")
	// ErrMalformedDefault reports a checkbox set whose default attribute is not
	// a JSON list.
	ErrMalformedDefault = errors.New("field: malformed default set")
)
