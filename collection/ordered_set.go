package collection

import (
	"iter"

	errors2 "github.com/amp-labs/amp-multimap/errors"
	"github.com/amp-labs/amp-multimap/zero"
	"github.com/emirpasic/gods/sets/linkedhashset"
)

// OrderedSet is a Collection that keeps insertion order but holds each
// value at most once. Adding a value that is already present is a no-op
// and reports no change.
//
// The zero value is an empty set ready to use.
type OrderedSet[V comparable] struct {
	set *linkedhashset.Set
}

var _ Collection[int] = (*OrderedSet[int])(nil)

// NewOrderedSet creates an OrderedSet from values, dropping repeats after
// their first occurrence.
func NewOrderedSet[V comparable](values ...V) *OrderedSet[V] {
	s := &OrderedSet[V]{set: linkedhashset.New()}
	s.AddAll(values...)

	return s
}

func (s *OrderedSet[V]) backing() *linkedhashset.Set {
	if s.set == nil {
		s.set = linkedhashset.New()
	}

	return s.set
}

func (s *OrderedSet[V]) Add(value V) bool {
	if s.backing().Contains(value) {
		return false
	}

	s.backing().Add(value)

	return true
}

func (s *OrderedSet[V]) AddAll(values ...V) bool {
	changed := false

	for _, v := range values {
		if s.Add(v) {
			changed = true
		}
	}

	return changed
}

func (s *OrderedSet[V]) Remove(value V) bool {
	if !s.backing().Contains(value) {
		return false
	}

	s.backing().Remove(value)

	return true
}

func (s *OrderedSet[V]) Contains(value V) bool {
	return s.backing().Contains(value)
}

func (s *OrderedSet[V]) Size() int {
	return s.backing().Size()
}

func (s *OrderedSet[V]) IsEmpty() bool {
	return s.backing().Empty()
}

func (s *OrderedSet[V]) Clear() {
	s.backing().Clear()
}

func (s *OrderedSet[V]) Seq() iter.Seq[V] {
	return func(yield func(V) bool) {
		it := s.backing().Iterator()
		for it.Next() {
			v, _ := it.Value().(V)
			if !yield(v) {
				return
			}
		}
	}
}

func (s *OrderedSet[V]) Slice() []V {
	out := make([]V, 0, s.backing().Size())

	for v := range s.Seq() {
		out = append(out, v)
	}

	return out
}

// Iterator walks a snapshot of the set taken when it is created. Remove
// deletes from the live set.
func (s *OrderedSet[V]) Iterator() Iterator[V] {
	return &orderedSetIterator[V]{owner: s, values: s.Slice()}
}

type orderedSetIterator[V comparable] struct {
	owner   *OrderedSet[V]
	values  []V
	cursor  int
	removed bool
}

func (it *orderedSetIterator[V]) HasNext() bool {
	return it.cursor < len(it.values)
}

func (it *orderedSetIterator[V]) Next() (V, error) {
	if !it.HasNext() {
		return zero.Value[V](), errors2.ErrNoSuchElement
	}

	v := it.values[it.cursor]
	it.cursor++
	it.removed = false

	return v, nil
}

func (it *orderedSetIterator[V]) Remove() error {
	if it.cursor == 0 || it.removed {
		return errors2.ErrIllegalState
	}

	it.owner.Remove(it.values[it.cursor-1])
	it.removed = true

	return nil
}
