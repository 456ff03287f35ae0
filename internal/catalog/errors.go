package catalog

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotFound is returned when an operation references a record id
	// that is not in the catalog.
	ErrNotFound = errors.New("record not found")

	// ErrSourceUnavailable is returned by Load when there is no
	// persisted snapshot and hydration from the remote source failed.
	ErrSourceUnavailable = errors.New("catalog source unavailable")
)

// ValidationError reports the fields that were missing or malformed in
// a create or update request. No state is mutated when it is returned.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid fields: %s", strings.Join(e.Fields, ", "))
}
