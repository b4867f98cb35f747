package billing

import "errors"

var (
	ErrNotFound = errors.New("billing: object not found")
)
