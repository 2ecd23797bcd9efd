package multimap

// Source is something a MultiMap can be built from: either another
// MultiMap (FromMultiMap) or a plain single-valued Go map (FromMap).
type Source[K comparable, V comparable] interface {
	// isSource names K and V so NewFrom can infer them from its argument.
	isSource(K, V)
}

type multiSource[K comparable, V comparable] struct {
	src *MultiMap[K, V]
}

func (multiSource[K, V]) isSource(K, V) {}

type mapSource[K comparable, V comparable] struct {
	src map[K]V
}

func (mapSource[K, V]) isSource(K, V) {}

// FromMultiMap uses an existing MultiMap as a Source.
func FromMultiMap[K comparable, V comparable](src *MultiMap[K, V]) Source[K, V] {
	return multiSource[K, V]{src: src}
}

// FromMap uses a single-valued Go map as a Source.
func FromMap[K comparable, V comparable](src map[K]V) Source[K, V] {
	return mapSource[K, V]{src: src}
}

// NewFrom creates a MultiMap populated from src.
//
// A MultiMap source is copied collection by collection through the source's
// factory, keeping its key order, so the two maps never share a collection.
// A plain map source is promoted with one Put per entry.
//
//	base := multimap.New[string, string]()
//	base.Put("a", "x")
//
//	cp := multimap.NewFrom(multimap.FromMultiMap(base))
//	cp.Put("a", "y") // base still holds only [x]
func NewFrom[K comparable, V comparable](src Source[K, V], opts ...Option) *MultiMap[K, V] {
	switch s := src.(type) {
	case multiSource[K, V]:
		if s.src == nil {
			return New[K, V](opts...)
		}

		m := NewWithFactory[K, V](s.src.factory, append([]Option{WithCapacity(s.src.Len())}, opts...)...)

		for key, coll := range s.src.Seq() {
			m.store(key, m.newCollection(coll))
		}

		return m
	case mapSource[K, V]:
		m := New[K, V](append([]Option{WithCapacity(len(s.src))}, opts...)...)

		for key, value := range s.src {
			m.Put(key, value)
		}

		return m
	default:
		return New[K, V](opts...)
	}
}
