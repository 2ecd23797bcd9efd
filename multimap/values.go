package multimap

import (
	"iter"

	"github.com/amp-labs/amp-multimap/collection"
	errors2 "github.com/amp-labs/amp-multimap/errors"
	"github.com/amp-labs/amp-multimap/zero"
)

// Values is a live view of every value in a MultiMap, flattened into one
// sequence in key enumeration order. It keeps no state of its own: every
// call reads the map as it is at that moment.
//
// Obtain it with MultiMap.Values. A zero Values is an empty view.
type Values[K comparable, V comparable] struct {
	owner *MultiMap[K, V]
}

// Iterator returns a new iterator over the flattened values. Iterators are
// independent of one another. Removing through an iterator deletes the
// value from its key's collection but leaves the key in place, even when
// the collection becomes empty.
//
// An iterator walks the keys present when it was created. Keys the map
// drops in the meantime are skipped without disturbing the others, and
// keys added in the meantime are not visited. Changing a collection other
// than through the iterator while the iterator is inside it is undefined.
func (v *Values[K, V]) Iterator() collection.Iterator[V] {
	if v == nil || v.owner == nil {
		return collection.EmptyIterator[V]()
	}

	return &valueIterator[K, V]{owner: v.owner, keys: v.owner.keys}
}

// Seq ranges over the flattened values.
func (v *Values[K, V]) Seq() iter.Seq[V] {
	return func(yield func(V) bool) {
		it := v.Iterator()
		for it.HasNext() {
			value, err := it.Next()
			if err != nil || !yield(value) {
				return
			}
		}
	}
}

// Size counts the values by walking the whole view.
func (v *Values[K, V]) Size() int {
	count := 0

	for it := v.Iterator(); it.HasNext(); count++ {
		if _, err := it.Next(); err != nil {
			break
		}
	}

	return count
}

// IsEmpty returns true if the view yields nothing.
func (v *Values[K, V]) IsEmpty() bool {
	return !v.Iterator().HasNext()
}

// Contains reports whether any key holds value.
func (v *Values[K, V]) Contains(value V) bool {
	for candidate := range v.Seq() {
		if candidate == value {
			return true
		}
	}

	return false
}

// Slice copies the flattened values into a new slice.
func (v *Values[K, V]) Slice() []V {
	var out []V

	for value := range v.Seq() {
		out = append(out, value)
	}

	return out
}

// Clear clears the owning map.
func (v *Values[K, V]) Clear() {
	if v == nil || v.owner == nil {
		return
	}

	v.owner.Clear()
}

// valueIterator walks the map's key order as of its creation and, within
// each key, that key's collection iterator. keys shares the map's slice,
// which the map never edits in place. current is the inner iterator the cursor is on;
// last is the inner iterator that produced the most recent value, which is
// where Remove must go even after HasNext has moved current along.
type valueIterator[K comparable, V comparable] struct {
	owner   *MultiMap[K, V]
	keys    []K
	next    int
	current collection.Iterator[V]
	last    collection.Iterator[V]
}

// advance moves current to the first inner iterator with a value left.
// Returns false once every key has been exhausted.
func (it *valueIterator[K, V]) advance() bool {
	for it.current == nil || !it.current.HasNext() {
		if it.next >= len(it.keys) {
			return false
		}

		key := it.keys[it.next]
		it.next++

		if coll, ok := it.owner.entries[key]; ok {
			it.current = coll.Iterator()
		}
	}

	return true
}

func (it *valueIterator[K, V]) HasNext() bool {
	return it.advance()
}

func (it *valueIterator[K, V]) Next() (V, error) {
	if !it.advance() {
		return zero.Value[V](), errors2.ErrNoSuchElement
	}

	value, err := it.current.Next()
	if err != nil {
		return zero.Value[V](), err
	}

	it.last = it.current

	return value, nil
}

func (it *valueIterator[K, V]) Remove() error {
	if it.last == nil {
		return errors2.ErrIllegalState
	}

	if err := it.last.Remove(); err != nil {
		return err
	}

	it.last = nil

	return nil
}
