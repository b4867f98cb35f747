package catalog

import "errors"

var (
	ErrNotFound = errors.New("product not found")

	// ErrCatalogUnavailable wraps failures of the external lookups that run
	// after a local row was found. The row existing means the ids are trusted,
	// so any failure here is an upstream problem rather than a 404.
	ErrCatalogUnavailable = errors.New("catalog unavailable")
)
