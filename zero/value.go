// Package zero provides the zero value of a type parameter.
package zero

// Value returns the zero value for type T. Collections use it as the
// value half of a (value, error) or (value, ok) return when nothing was found.
//
//	v := zero.Value[string]() // ""
func Value[T any]() T {
	var zeroVal T

	return zeroVal
}
