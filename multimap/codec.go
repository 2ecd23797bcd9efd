package multimap

import (
	"bytes"
	"encoding/json"
	"fmt"
	"hash"

	errors2 "github.com/amp-labs/amp-multimap/errors"
	"github.com/amp-labs/amp-multimap/hashing"
	"gopkg.in/yaml.v3"
)

// A MultiMap serializes as an object (JSON) or mapping (YAML) from each key
// to the array of its values. Keys must be usable as JSON object keys:
// strings, integers, or encoding.TextMarshaler implementations.
//
// Decoding replaces the map's content and always leaves it with no empty
// collections. It also accepts, and repairs, a few shapes older writers
// produced:
//   - a null or empty array is dropped along with its key,
//   - an array of arrays (a redundant wrapping level) is flattened once,
//   - a bare value is treated as a one-element array.
//
// A key that appears more than once has all of its values appended in
// document order. Each repair is logged at debug level.
var (
	_ json.Marshaler   = MultiMap[string, string]{}
	_ json.Unmarshaler = (*MultiMap[string, string])(nil)
	_ yaml.Marshaler   = MultiMap[string, string]{}
	_ yaml.Unmarshaler = (*MultiMap[string, string])(nil)
	_ hashing.Hashable = (*MultiMap[string, string])(nil)
)

var jsonNull = []byte("null")

// MarshalJSON implements json.Marshaler. Keys come out sorted, as
// encoding/json does for every map; values keep their per-key order.
// A MultiMap held by value encodes the same as a pointer to it.
func (m MultiMap[K, V]) MarshalJSON() ([]byte, error) {
	out := make(map[K][]V, len(m.entries))

	for key, coll := range m.Seq() {
		if coll.IsEmpty() {
			continue
		}

		out[key] = coll.Slice()
	}

	return json.Marshal(out)
}

// UnmarshalJSON implements json.Unmarshaler. Keys are added in document order.
func (m *MultiMap[K, V]) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, jsonNull) {
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}

	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("%w: expected a JSON object, got %v", errors2.ErrMalformedEntry, tok)
	}

	m.Clear()

	var errs errors2.Collection

	for dec.More() {
		tok, err = dec.Token()
		if err != nil {
			return err
		}

		name, _ := tok.(string)

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return err
		}

		key, err := decodeJSONKey[K](name)
		if err != nil {
			errs.Add(fmt.Errorf("%w: key %q: %w", errors2.ErrMalformedEntry, name, err))

			continue
		}

		values, err := m.decodeJSONValues(key, raw)
		if err != nil {
			errs.Add(fmt.Errorf("%w: key %q: %w", errors2.ErrMalformedEntry, name, err))

			continue
		}

		m.putDecoded(key, values)
	}

	if _, err := dec.Token(); err != nil {
		return err
	}

	return errs.GetError()
}

// decodeJSONKey converts an object member name into K using the same rules
// encoding/json applies to map keys.
func decodeJSONKey[K comparable](name string) (K, error) {
	var key K
	if p, ok := any(&key).(*string); ok {
		*p = name

		return key, nil
	}

	quoted, err := json.Marshal(name)
	if err != nil {
		return key, err
	}

	probe := make(map[K]struct{}, 1)

	doc := make([]byte, 0, len(quoted)+8)
	doc = append(doc, '{')
	doc = append(doc, quoted...)
	doc = append(doc, ":{}}"...)

	if err := json.Unmarshal(doc, &probe); err != nil {
		return key, err
	}

	for decoded := range probe {
		key = decoded
	}

	return key, nil
}

func (m *MultiMap[K, V]) decodeJSONValues(key K, raw json.RawMessage) ([]V, error) {
	raw = bytes.TrimSpace(raw)

	if len(raw) == 0 || bytes.Equal(raw, jsonNull) {
		return nil, nil
	}

	if raw[0] != '[' {
		var single V
		if err := json.Unmarshal(raw, &single); err != nil {
			return nil, err
		}

		m.log().Debug("promoted bare value to a collection while decoding", "key", key)

		return []V{single}, nil
	}

	var values []V

	err := json.Unmarshal(raw, &values)
	if err == nil {
		return values, nil
	}

	var nested [][]V
	if json.Unmarshal(raw, &nested) != nil {
		return nil, err
	}

	m.log().Debug("flattened legacy collection wrapping while decoding", "key", key, "groups", len(nested))

	return flatten(nested), nil
}

// MarshalYAML implements yaml.Marshaler. Keys are written in enumeration order.
func (m MultiMap[K, V]) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}

	for key, coll := range m.Seq() {
		if coll.IsEmpty() {
			continue
		}

		keyNode := &yaml.Node{}
		if err := keyNode.Encode(key); err != nil {
			return nil, err
		}

		valueNode := &yaml.Node{}
		if err := valueNode.Encode(coll.Slice()); err != nil {
			return nil, err
		}

		node.Content = append(node.Content, keyNode, valueNode)
	}

	return node, nil
}

// UnmarshalYAML implements yaml.Unmarshaler. Keys are added in document order.
func (m *MultiMap[K, V]) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.DocumentNode && len(value.Content) == 1 {
		value = value.Content[0]
	}

	if isYAMLNull(value) {
		return nil
	}

	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("%w: expected a YAML mapping at line %d", errors2.ErrMalformedEntry, value.Line)
	}

	m.Clear()

	var errs errors2.Collection

	for i := 0; i+1 < len(value.Content); i += 2 {
		keyNode, valuesNode := value.Content[i], value.Content[i+1]

		var key K
		if err := keyNode.Decode(&key); err != nil {
			errs.Add(fmt.Errorf("%w: key at line %d: %w", errors2.ErrMalformedEntry, keyNode.Line, err))

			continue
		}

		values, err := m.decodeYAMLValues(key, valuesNode)
		if err != nil {
			errs.Add(fmt.Errorf("%w: key %v at line %d: %w", errors2.ErrMalformedEntry, key, keyNode.Line, err))

			continue
		}

		m.putDecoded(key, values)
	}

	return errs.GetError()
}

func (m *MultiMap[K, V]) decodeYAMLValues(key K, node *yaml.Node) ([]V, error) {
	if isYAMLNull(node) {
		return nil, nil
	}

	if node.Kind != yaml.SequenceNode {
		var single V
		if err := node.Decode(&single); err != nil {
			return nil, err
		}

		m.log().Debug("promoted bare value to a collection while decoding", "key", key)

		return []V{single}, nil
	}

	var values []V

	err := node.Decode(&values)
	if err == nil {
		return values, nil
	}

	var nested [][]V
	if node.Decode(&nested) != nil {
		return nil, err
	}

	m.log().Debug("flattened legacy collection wrapping while decoding", "key", key, "groups", len(nested))

	return flatten(nested), nil
}

func isYAMLNull(node *yaml.Node) bool {
	return node == nil || (node.Kind == yaml.ScalarNode && node.ShortTag() == "!!null")
}

func (m *MultiMap[K, V]) putDecoded(key K, values []V) {
	if len(values) == 0 {
		m.log().Debug("dropped empty collection while decoding", "key", key)

		return
	}

	m.PutAll(key, values...)
}

func flatten[V any](nested [][]V) []V {
	var out []V

	for _, group := range nested {
		out = append(out, group...)
	}

	return out
}

// UpdateHash implements hashing.Hashable by writing the map's JSON
// encoding, so equal maps hash equally regardless of key insertion order.
func (m *MultiMap[K, V]) UpdateHash(h hash.Hash) error {
	data, err := m.MarshalJSON()
	if err != nil {
		return err
	}

	_, err = h.Write(data)

	return err
}

// Digest fingerprints the map's content with hash, e.g. hashing.Xxh3.
// Two maps with the same keys and the same per-key value order produce
// the same digest.
func (m *MultiMap[K, V]) Digest(hashFunc hashing.HashFunc) (string, error) {
	return hashFunc(m)
}
