// Package collection defines the per-key value container used by the
// multimap package, along with the two containers it ships: List, an
// insertion-ordered sequence that allows duplicates, and OrderedSet, an
// insertion-ordered sequence that rejects them.
//
// Collections are handed out by reference. A Collection obtained from a
// multimap is that map's backing store for the key, so mutating it
// mutates the map.
//
// Thread-safety: none of the implementations are thread-safe.
package collection

import (
	"iter"

	errors2 "github.com/amp-labs/amp-multimap/errors"
	"github.com/amp-labs/amp-multimap/zero"
)

// Collection is an ordered, growable group of values.
type Collection[V comparable] interface {
	// Add appends value. Returns true if the collection changed.
	Add(value V) bool

	// AddAll appends every value in order. Returns true if the collection changed.
	AddAll(values ...V) bool

	// Remove deletes the first occurrence of value. Returns true if a value was removed.
	Remove(value V) bool

	// Contains reports whether an equal value is present.
	Contains(value V) bool

	// Size returns the number of values held.
	Size() int

	// IsEmpty returns true if Size is zero.
	IsEmpty() bool

	// Clear removes every value.
	Clear()

	// Seq ranges over the values in order.
	Seq() iter.Seq[V]

	// Slice returns a copy of the values in order.
	Slice() []V

	// Iterator returns a cursor that supports removal of the last yielded value.
	Iterator() Iterator[V]
}

// Iterator walks a sequence of values one at a time.
//
//	for it.HasNext() {
//	    v, _ := it.Next()
//	    if drop(v) {
//	        _ = it.Remove()
//	    }
//	}
type Iterator[V any] interface {
	// HasNext reports whether Next will yield a value.
	HasNext() bool

	// Next yields the next value, or ErrNoSuchElement if there is none.
	Next() (V, error)

	// Remove deletes the value most recently returned by Next from the
	// underlying collection. Returns ErrIllegalState if Next has not been
	// called, or if Remove was already called since the last Next.
	Remove() error
}

// Factory creates the collection for a key. A nil src asks for a new,
// empty collection; otherwise the result must be an independent copy of
// src holding the same values in the same order.
type Factory[V comparable] func(src Collection[V]) Collection[V]

// ListFactory returns a Factory producing Lists. It is the default for multimaps.
func ListFactory[V comparable]() Factory[V] {
	return func(src Collection[V]) Collection[V] {
		if src == nil {
			return NewList[V]()
		}

		return NewList(src.Slice()...)
	}
}

// OrderedSetFactory returns a Factory producing OrderedSets.
func OrderedSetFactory[V comparable]() Factory[V] {
	return func(src Collection[V]) Collection[V] {
		if src == nil {
			return NewOrderedSet[V]()
		}

		return NewOrderedSet(src.Slice()...)
	}
}

// EmptyIterator returns an Iterator that never yields anything.
func EmptyIterator[V any]() Iterator[V] {
	return emptyIterator[V]{}
}

type emptyIterator[V any] struct{}

func (emptyIterator[V]) HasNext() bool { return false }

func (emptyIterator[V]) Next() (V, error) { return zero.Value[V](), errors2.ErrNoSuchElement }

func (emptyIterator[V]) Remove() error { return errors2.ErrIllegalState }
