// Package errors holds the sentinel errors shared by the collection and
// multimap packages, plus a small accumulator for reporting several
// failures at once.
package errors

import "errors"

var (
	// ErrNoSuchElement is returned by an iterator's Next when nothing is left to yield.
	ErrNoSuchElement = errors.New("no such element")

	// ErrIllegalState is returned by an iterator's Remove when there is no
	// yielded value to remove: Next was never called, or Remove was already
	// called for the last yielded value.
	ErrIllegalState = errors.New("illegal iterator state")

	// ErrMalformedEntry is returned when a serialized entry can't be decoded
	// into a key and its values.
	ErrMalformedEntry = errors.New("malformed entry")
)

// Collection is a thread-unsafe utility for accumulating multiple errors.
// Decoders use it to keep going past a bad entry and report every bad
// entry in one error.
type Collection struct {
	errors []error
}

// Add appends an error to the collection. Nil errors are ignored.
func (c *Collection) Add(err error) {
	if err != nil {
		c.errors = append(c.errors, err)
	}
}

// Clear removes all errors from the collection.
func (c *Collection) Clear() {
	c.errors = nil
}

// HasError returns true if the collection contains at least one error.
func (c *Collection) HasError() bool {
	return len(c.errors) > 0
}

// Len returns how many errors have been collected.
func (c *Collection) Len() int {
	return len(c.errors)
}

// GetError returns nil for an empty collection, the error itself when
// exactly one was added, and an errors.Join of all of them otherwise.
func (c *Collection) GetError() error {
	switch len(c.errors) {
	case 0:
		return nil
	case 1:
		return c.errors[0]
	default:
		return errors.Join(c.errors...)
	}
}
