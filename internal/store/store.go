// Package store provides typed persistence operations for back-office
// entities. Every write validates before touching the database; reads
// re-query instead of caching, and concurrent writes are last-write-wins.
package store

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when the requested row does not exist.
var ErrNotFound = errors.New("store: not found")

// ErrValidation wraps all pre-write validation failures so callers can
// map them to a 4xx response instead of a 5xx.
var ErrValidation = errors.New("store: validation")

func validationError(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

// oneOf reports whether v is a member of set.
func oneOf(v string, set []string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}
