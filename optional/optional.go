// Package optional provides Value, a container holding zero or one value.
// The multimap package returns it wherever an operation yields either the
// affected value or an explicit "nothing happened" marker.
package optional

import (
	"fmt"
	"iter"
)

// Value represents a value that may or may not be present.
// Use Some(value) to create a Value with a value, or None() for an empty Value.
// The zero Value is None.
type Value[T any] struct {
	value T
	isSet bool
}

// Some creates a Value containing the given value.
func Some[T any](value T) Value[T] {
	return Value[T]{value: value, isSet: true}
}

// None creates an empty Value.
func None[T any]() Value[T] {
	return Value[T]{}
}

// When returns Some(value) if ok is true and None otherwise. It adapts the
// (value, ok) idiom to a Value.
func When[T any](value T, ok bool) Value[T] {
	if !ok {
		return None[T]()
	}

	return Some(value)
}

// All yields the value if present and nothing otherwise, so a Value can be ranged over.
func (o Value[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		if o.isSet {
			yield(o.value)
		}
	}
}

// NonEmpty returns true if the Value contains a value.
func (o Value[T]) NonEmpty() bool {
	return o.isSet
}

// Empty returns true if the Value does not contain a value.
func (o Value[T]) Empty() bool {
	return !o.isSet
}

// Get returns the value and whether it is present.
func (o Value[T]) Get() (T, bool) {
	return o.value, o.isSet
}

// GetOrPanic returns the value if present, or panics if empty.
func (o Value[T]) GetOrPanic() T {
	if !o.isSet {
		panic("called GetOrPanic on None")
	}

	return o.value
}

// GetOrElse returns the value if present, or defaultValue if empty.
func (o Value[T]) GetOrElse(defaultValue T) T {
	if o.isSet {
		return o.value
	}

	return defaultValue
}

// Equals reports whether both Values are empty, or both hold values that eq considers equal.
func (o Value[T]) Equals(other Value[T], eq func(T, T) bool) bool {
	if o.isSet != other.isSet {
		return false
	}

	if !o.isSet {
		return true
	}

	return eq(o.value, other.value)
}

// String returns "Some(value)" if present, or "None" if empty.
func (o Value[T]) String() string {
	if o.isSet {
		return fmt.Sprintf("Some(%v)", o.value)
	}

	return "None"
}
