package multimap_test

import (
	"slices"
	"testing"

	"github.com/amp-labs/amp-multimap/multimap"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

// checkAgainstModel asserts that m holds exactly what model holds, and that
// no key maps to an empty collection.
func checkAgainstModel(t *rapid.T, m *multimap.MultiMap[string, int], model map[string][]int) {
	total := 0

	for key, want := range model {
		total += len(want)

		coll, ok := m.Get(key)
		require.True(t, ok, "missing key %q", key)
		require.Equal(t, want, coll.Slice(), "values of %q", key)
	}

	require.Equal(t, len(model), m.Len())
	require.Equal(t, total, m.TotalSize())
	require.Equal(t, total, m.Values().Size())

	for key, coll := range m.Seq() {
		require.False(t, coll.IsEmpty(), "key %q kept an empty collection", key)
	}
}

func TestMultiMap_Properties(t *testing.T) {
	t.Parallel()

	keys := rapid.SampledFrom([]string{"a", "b", "c", "d"})
	values := rapid.IntRange(0, 4)

	rapid.Check(t, func(t *rapid.T) {
		m := multimap.New[string, int]()
		model := make(map[string][]int)

		steps := rapid.IntRange(1, 50).Draw(t, "steps")
		for range steps {
			key := keys.Draw(t, "key")

			switch rapid.IntRange(0, 3).Draw(t, "op") {
			case 0:
				value := values.Draw(t, "value")
				require.True(t, m.Put(key, value).NonEmpty())

				model[key] = append(model[key], value)
			case 1:
				batch := rapid.SliceOfN(values, 0, 3).Draw(t, "batch")
				require.Equal(t, len(batch) > 0, m.PutAll(key, batch...))

				if len(batch) > 0 {
					model[key] = append(model[key], batch...)
				}
			case 2:
				value := values.Draw(t, "value")
				idx := slices.Index(model[key], value)
				require.Equal(t, idx >= 0, m.RemoveValue(key, value).NonEmpty())

				if idx >= 0 {
					model[key] = slices.Delete(model[key], idx, idx+1)
					if len(model[key]) == 0 {
						delete(model, key)
					}
				}
			case 3:
				_, ok := m.RemoveKey(key)
				_, want := model[key]
				require.Equal(t, want, ok)

				delete(model, key)
			}

			checkAgainstModel(t, m, model)
		}
	})
}

func TestClone_Properties(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(t *rapid.T) {
		src := multimap.New[string, int]()

		for _, key := range rapid.SliceOfN(rapid.SampledFrom([]string{"a", "b", "c"}), 1, 10).Draw(t, "keys") {
			src.Put(key, rapid.IntRange(0, 9).Draw(t, "value"))
		}

		before := src.String()
		clone := src.Clone()

		require.True(t, src.Equal(clone))
		require.Equal(t, src.Keys(), clone.Keys())

		for _, key := range clone.Keys() {
			coll, _ := clone.Get(key)
			coll.Clear()
			clone.Put(key, -1)
		}

		require.Equal(t, before, src.String(), "mutating the clone changed the source")
	})
}
