// Package multimap provides MultiMap, a map from a key to an ordered,
// growable collection of values. Putting a value under a key that is
// already present appends to that key's collection instead of replacing it.
//
// Example:
//
//	m := multimap.New[string, string]()
//	m.Put("a", "X")
//	m.Put("a", "Y")
//	m.Put("b", "Z")
//
//	coll, _ := m.Get("a") // [X Y], the live backing collection
//	m.TotalSize()         // 3
//
// A key is present only while its collection is non-empty: RemoveValue
// drops the key together with its last value. Collections returned by Get,
// Seq and RemoveKey, and the view returned by Values, are live handles into
// the map rather than copies.
//
// Thread-safety: a MultiMap is meant for a single owner. Concurrent
// mutation without external synchronization is undefined.
package multimap

import (
	"fmt"
	"iter"
	"log/slog"
	"slices"
	"strings"

	"github.com/amp-labs/amp-multimap/collection"
	"github.com/amp-labs/amp-multimap/optional"
)

// MultiMap associates each key with a collection of values. Keys are
// enumerated in the order they were first inserted.
//
// The zero value is an empty map using List collections and slog.Default()
// for logging.
type MultiMap[K comparable, V comparable] struct {
	entries map[K]collection.Collection[V]
	keys    []K
	factory collection.Factory[V]
	logger  *slog.Logger
	values  *Values[K, V]
}

// New creates an empty MultiMap that stores each key's values in a collection.List.
func New[K comparable, V comparable](opts ...Option) *MultiMap[K, V] {
	return NewWithFactory[K, V](nil, opts...)
}

// NewWithFactory creates an empty MultiMap whose per-key collections are
// produced by factory. A nil factory means collection.ListFactory.
//
//	m := multimap.NewWithFactory[string, int](collection.OrderedSetFactory[int]())
//	m.Put("k", 1) // Some(1)
//	m.Put("k", 1) // None, the set already holds 1
func NewWithFactory[K comparable, V comparable](factory collection.Factory[V], opts ...Option) *MultiMap[K, V] {
	o := buildOptions(opts)

	return &MultiMap[K, V]{
		entries: make(map[K]collection.Collection[V], o.capacity),
		keys:    make([]K, 0, o.capacity),
		factory: factory,
		logger:  o.logger,
	}
}

func (m *MultiMap[K, V]) init() {
	if m.entries == nil {
		m.entries = make(map[K]collection.Collection[V])
	}
}

func (m *MultiMap[K, V]) newCollection(src collection.Collection[V]) collection.Collection[V] {
	if m.factory == nil {
		m.factory = collection.ListFactory[V]()
	}

	return m.factory(src)
}

func (m *MultiMap[K, V]) log() *slog.Logger {
	if m.logger == nil {
		return slog.Default()
	}

	return m.logger
}

// store records a non-empty collection under a key that is not yet present.
func (m *MultiMap[K, V]) store(key K, coll collection.Collection[V]) {
	m.init()
	m.entries[key] = coll
	m.keys = append(m.keys, key)
}

// prune drops key. keys is replaced rather than edited in place because
// live value iterators hold the previous slice.
func (m *MultiMap[K, V]) prune(key K) {
	delete(m.entries, key)

	if idx := slices.Index(m.keys, key); idx >= 0 {
		m.keys = slices.Concat(m.keys[:idx], m.keys[idx+1:])
	}
}

// Put adds value to the collection for key, creating the collection if the
// key is absent. It never replaces existing values.
//
// Returns Some(value) if the map changed. Returns None if the collection
// declined the value, which only happens with duplicate-suppressing
// collections such as collection.OrderedSet.
func (m *MultiMap[K, V]) Put(key K, value V) optional.Value[V] {
	coll, ok := m.entries[key]
	if !ok {
		coll = m.newCollection(nil)
		m.store(key, coll)
	}

	added := coll.Add(value)

	if !ok && coll.IsEmpty() {
		m.prune(key)
	}

	return optional.When(value, added)
}

// PutAll appends every value to the collection for key.
// Returns false without touching the map if values is empty. Otherwise
// returns true if a collection was created or extended.
func (m *MultiMap[K, V]) PutAll(key K, values ...V) bool {
	if len(values) == 0 {
		return false
	}

	coll, ok := m.entries[key]
	if ok {
		return coll.AddAll(values...)
	}

	coll = m.newCollection(nil)
	coll.AddAll(values...)

	if coll.IsEmpty() {
		return false
	}

	m.store(key, coll)

	return true
}

// Get returns the collection stored for key, and false if the key is absent.
//
// The collection is the map's backing store, not a copy. Changes made
// through it show up in later lookups. Emptying it this way does not
// remove the key; use RemoveValue for that.
func (m *MultiMap[K, V]) Get(key K) (collection.Collection[V], bool) {
	coll, ok := m.entries[key]

	return coll, ok
}

// Iterator returns an iterator over the values for key. An absent key
// yields an empty iterator.
func (m *MultiMap[K, V]) Iterator(key K) collection.Iterator[V] {
	coll, ok := m.entries[key]
	if !ok {
		return collection.EmptyIterator[V]()
	}

	return coll.Iterator()
}

// Size returns the number of values stored for key, 0 if it is absent.
func (m *MultiMap[K, V]) Size(key K) int {
	coll, ok := m.entries[key]
	if !ok {
		return 0
	}

	return coll.Size()
}

// TotalSize returns the number of values across all keys. It is
// recomputed on every call.
func (m *MultiMap[K, V]) TotalSize() int {
	total := 0

	for _, coll := range m.entries {
		total += coll.Size()
	}

	return total
}

// Len returns the number of keys.
func (m *MultiMap[K, V]) Len() int {
	return len(m.entries)
}

// IsEmpty returns true if the map holds no keys.
func (m *MultiMap[K, V]) IsEmpty() bool {
	return len(m.entries) == 0
}

// ContainsKey reports whether key has an entry.
func (m *MultiMap[K, V]) ContainsKey(key K) bool {
	_, ok := m.entries[key]

	return ok
}

// ContainsValue reports whether any key's collection contains value.
// It scans every collection.
func (m *MultiMap[K, V]) ContainsValue(value V) bool {
	for _, coll := range m.entries {
		if coll.Contains(value) {
			return true
		}
	}

	return false
}

// ContainsKeyValue reports whether key is present and its collection contains value.
func (m *MultiMap[K, V]) ContainsKeyValue(key K, value V) bool {
	coll, ok := m.entries[key]
	if !ok {
		return false
	}

	return coll.Contains(value)
}

// RemoveValue removes one occurrence of value from the collection for key.
// If that leaves the collection empty, the key is removed as well.
//
// Returns Some(value) if a value was removed, None if the key is absent or
// does not hold value.
func (m *MultiMap[K, V]) RemoveValue(key K, value V) optional.Value[V] {
	coll, ok := m.entries[key]
	if !ok {
		return optional.None[V]()
	}

	removed := coll.Remove(value)

	if coll.IsEmpty() {
		m.prune(key)
	}

	return optional.When(value, removed)
}

// RemoveKey detaches and returns the whole collection for key.
func (m *MultiMap[K, V]) RemoveKey(key K) (collection.Collection[V], bool) {
	coll, ok := m.entries[key]
	if ok {
		m.prune(key)
	}

	return coll, ok
}

// Clear empties every collection and then drops all keys. Collection
// handles obtained earlier through Get are left empty.
func (m *MultiMap[K, V]) Clear() {
	for _, coll := range m.entries {
		coll.Clear()
	}

	clear(m.entries)
	m.keys = nil
}

// Keys returns the keys in enumeration order. The slice is a copy.
func (m *MultiMap[K, V]) Keys() []K {
	return slices.Clone(m.keys)
}

// Seq ranges over keys and their live collections in enumeration order.
func (m *MultiMap[K, V]) Seq() iter.Seq2[K, collection.Collection[V]] {
	return func(yield func(K, collection.Collection[V]) bool) {
		for _, key := range m.keys {
			coll, ok := m.entries[key]
			if !ok {
				continue
			}

			if !yield(key, coll) {
				return
			}
		}
	}
}

// Values returns the aggregate view over every value of every key. The
// view is created on first use and the same instance is returned afterwards.
func (m *MultiMap[K, V]) Values() *Values[K, V] {
	if m.values == nil {
		m.values = &Values[K, V]{owner: m}
	}

	return m.values
}

// Clone returns a copy of the map with the same keys in the same order.
// Each collection is copied through the map's factory, so the clone and
// the original never share a collection. The values themselves are not copied.
func (m *MultiMap[K, V]) Clone() *MultiMap[K, V] {
	if m == nil {
		return nil
	}

	out := &MultiMap[K, V]{
		entries: make(map[K]collection.Collection[V], len(m.entries)),
		keys:    make([]K, 0, len(m.keys)),
		factory: m.factory,
		logger:  m.logger,
	}

	for key, coll := range m.Seq() {
		out.store(key, out.newCollection(coll))
	}

	return out
}

// Equal reports whether both maps hold the same keys, each with the same
// values in the same order. Key enumeration order is ignored.
func (m *MultiMap[K, V]) Equal(other *MultiMap[K, V]) bool {
	if m == nil || other == nil {
		return m == other
	}

	if len(m.entries) != len(other.entries) {
		return false
	}

	for key, coll := range m.entries {
		otherColl, ok := other.entries[key]
		if !ok || !slices.Equal(coll.Slice(), otherColl.Slice()) {
			return false
		}
	}

	return true
}

// String renders the map as {key:[v1 v2] ...} in enumeration order.
func (m *MultiMap[K, V]) String() string {
	var sb strings.Builder

	sb.WriteByte('{')

	first := true

	for key, coll := range m.Seq() {
		if !first {
			sb.WriteByte(' ')
		}

		first = false

		_, _ = fmt.Fprintf(&sb, "%v:%v", key, coll.Slice())
	}

	sb.WriteByte('}')

	return sb.String()
}
