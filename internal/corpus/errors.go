// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package corpus

import (
	"errors"
	"fmt"
)

// ErrNotFound marks a reference to a paper or hypothesis id that does
// not exist. Callers test with errors.Is.
var ErrNotFound = errors.New("not found")

// ErrStorageBusy marks transient storage contention that persisted
// through the bounded retry loop.
var ErrStorageBusy = errors.New("storage busy")

// ValidationError reports malformed input rejected before any storage
// write was attempted. Never retried.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
