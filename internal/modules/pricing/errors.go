package pricing

import "fmt"

// InvalidError carries the outstanding field errors of a blocked submission.
type InvalidError struct {
	Fields FieldErrors
}

func (e *InvalidError) Error() string {
	return fmt.Sprintf("price form invalid: %d field error(s)", len(e.Fields))
}
