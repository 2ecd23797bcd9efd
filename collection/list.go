package collection

import (
	"iter"
	"slices"

	errors2 "github.com/amp-labs/amp-multimap/errors"
	"github.com/amp-labs/amp-multimap/zero"
)

// List is a slice-backed Collection. Values keep insertion order and
// duplicates are allowed, so Add always reports a change.
type List[V comparable] struct {
	items []V
}

var _ Collection[int] = (*List[int])(nil)

// NewList creates a List holding a copy of values.
func NewList[V comparable](values ...V) *List[V] {
	return &List[V]{items: slices.Clone(values)}
}

func (l *List[V]) Add(value V) bool {
	l.items = append(l.items, value)

	return true
}

func (l *List[V]) AddAll(values ...V) bool {
	if len(values) == 0 {
		return false
	}

	l.items = append(l.items, values...)

	return true
}

func (l *List[V]) Remove(value V) bool {
	idx := slices.Index(l.items, value)
	if idx < 0 {
		return false
	}

	l.removeAt(idx)

	return true
}

func (l *List[V]) Contains(value V) bool {
	return slices.Contains(l.items, value)
}

func (l *List[V]) Size() int {
	return len(l.items)
}

func (l *List[V]) IsEmpty() bool {
	return len(l.items) == 0
}

// Clear empties the list and releases its backing array.
func (l *List[V]) Clear() {
	clear(l.items)
	l.items = nil
}

func (l *List[V]) Seq() iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, v := range l.items {
			if !yield(v) {
				return
			}
		}
	}
}

func (l *List[V]) Slice() []V {
	return slices.Clone(l.items)
}

// Get returns the value at index i, or false if i is out of range.
func (l *List[V]) Get(i int) (V, bool) {
	if i < 0 || i >= len(l.items) {
		return zero.Value[V](), false
	}

	return l.items[i], true
}

func (l *List[V]) Iterator() Iterator[V] {
	return &listIterator[V]{list: l, last: -1}
}

func (l *List[V]) removeAt(i int) {
	l.items = slices.Delete(l.items, i, i+1)
}

// listIterator keeps a cursor into the list. last is the index of the
// value returned by the most recent Next, or -1 when there is nothing to remove.
type listIterator[V comparable] struct {
	list   *List[V]
	cursor int
	last   int
}

func (it *listIterator[V]) HasNext() bool {
	return it.cursor < len(it.list.items)
}

func (it *listIterator[V]) Next() (V, error) {
	if !it.HasNext() {
		return zero.Value[V](), errors2.ErrNoSuchElement
	}

	v := it.list.items[it.cursor]
	it.last = it.cursor
	it.cursor++

	return v, nil
}

func (it *listIterator[V]) Remove() error {
	if it.last < 0 || it.last >= len(it.list.items) {
		return errors2.ErrIllegalState
	}

	it.list.removeAt(it.last)
	it.cursor = it.last
	it.last = -1

	return nil
}
