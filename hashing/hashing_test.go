package hashing

import (
	"errors"
	"hash"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSha256(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    Hashable
		expected string
	}{
		{
			name:     "empty string",
			input:    HashableString(""),
			expected: "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855",
		},
		{
			name:     "simple string",
			input:    HashableString("hello"),
			expected: "2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824",
		},
		{
			name:     "empty bytes",
			input:    HashableBytes([]byte{}),
			expected: "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855",
		},
		{
			name:     "simple bytes",
			input:    HashableBytes([]byte("hello")),
			expected: "2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result, err := Sha256(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestXxh3(t *testing.T) {
	t.Parallel()

	t.Run("empty input", func(t *testing.T) {
		t.Parallel()

		result, err := Xxh3(HashableString(""))
		require.NoError(t, err)
		assert.Equal(t, "2d06800538d394c2", result)
	})

	t.Run("string and bytes agree", func(t *testing.T) {
		t.Parallel()

		a, err := Xxh3(HashableString("hello"))
		require.NoError(t, err)

		b, err := Xxh3(HashableBytes("hello"))
		require.NoError(t, err)

		assert.Equal(t, a, b)
		assert.Len(t, a, 16)
	})

	t.Run("different input differs", func(t *testing.T) {
		t.Parallel()

		a, err := Xxh3(HashableString("hello"))
		require.NoError(t, err)

		b, err := Xxh3(HashableString("world"))
		require.NoError(t, err)

		assert.NotEqual(t, a, b)
	})
}

func TestXxHash64(t *testing.T) {
	t.Parallel()

	t.Run("empty input", func(t *testing.T) {
		t.Parallel()

		result, err := XxHash64(HashableString(""))
		require.NoError(t, err)
		assert.Equal(t, "ef46db3751d8e999", result)
	})

	t.Run("stable across calls", func(t *testing.T) {
		t.Parallel()

		a, err := XxHash64(HashableString("hello"))
		require.NoError(t, err)

		b, err := XxHash64(HashableString("hello"))
		require.NoError(t, err)

		assert.Equal(t, a, b)
		assert.Len(t, a, 16)
	})
}

func TestFormatSum64(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "0000000000000001", formatSum64(1))
	assert.Equal(t, "ffffffffffffffff", formatSum64(^uint64(0)))
}

// mockHashable is a test implementation of Hashable that can return errors.
type mockHashable struct {
	err error
}

func (m mockHashable) UpdateHash(h hash.Hash) error {
	if m.err != nil {
		return m.err
	}

	_, err := h.Write([]byte("test"))

	return err
}

var errHashTest = errors.New("hash error")

func TestHashFunctions_Error(t *testing.T) {
	t.Parallel()

	mock := mockHashable{err: errHashTest}

	for name, fn := range map[string]HashFunc{
		"Sha256":   Sha256,
		"Xxh3":     Xxh3,
		"XxHash64": XxHash64,
	} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			result, err := fn(mock)
			require.ErrorIs(t, err, errHashTest)
			assert.Empty(t, result)
		})
	}
}

func TestHashable_Equals(t *testing.T) {
	t.Parallel()

	assert.True(t, HashableString("a").Equals("a"))
	assert.False(t, HashableString("a").Equals("b"))
	assert.True(t, HashableBytes("a").Equals(HashableBytes("a")))
	assert.False(t, HashableBytes("a").Equals(HashableBytes("")))
	assert.Equal(t, "a", HashableString("a").String())
}
