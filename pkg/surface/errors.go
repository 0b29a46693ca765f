package surface

import "errors"

var (
	// ErrEmptyDocument is returned for blank descriptor files.
	ErrEmptyDocument = errors.New("surface: document is empty")
	// ErrSchemaNotFound is returned when an OpenAPI document lacks the requested
	// component schema.
	ErrSchemaNotFound = errors.New("surface: schema not found")
	// ErrDuplicateField reports two fields sharing a settings key.
	ErrDuplicateField = errors.New("surface: duplicate field")
)

var (
	// ErrSourceRequired is returned for an empty source location.
	ErrSourceRequired = errors.New("surface: source is required")
	// ErrHTTPDisabled is returned for URL sources when the fetcher has no
	// HTTP client.
	ErrHTTPDisabled = errors.New("surface: http sources are disabled")
)
