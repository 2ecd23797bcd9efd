package hashing

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"hash"

	"github.com/OneOfOne/xxhash"
	"github.com/zeebo/xxh3"
)

// HashFunc is a function that takes a Hashable object
// and returns a string representation of its hash.
// Sha256, Xxh3 and XxHash64 are all HashFuncs.
type HashFunc func(hashable Hashable) (string, error)

// Hashable is an interface that allows an object to update
// a hash.Hash with its contents.
type Hashable interface {
	UpdateHash(h hash.Hash) error
}

// Sha256 returns the SHA256 hash of the given Hashable
// as a hex-encoded string.
func Sha256(hashable Hashable) (string, error) {
	h := sha256.New()

	if err := hashable.UpdateHash(h); err != nil {
		return "", err
	}

	return hex.EncodeToString(h.Sum(nil)), nil
}

// Xxh3 returns the 64-bit XXH3 hash of the given Hashable as a
// zero-padded, 16 character hex string. It is much cheaper than Sha256
// and suited to change detection, not to anything adversarial.
func Xxh3(hashable Hashable) (string, error) {
	h := xxh3.New()

	if err := hashable.UpdateHash(h); err != nil {
		return "", err
	}

	return formatSum64(h.Sum64()), nil
}

// XxHash64 returns the 64-bit XXH64 hash of the given Hashable as a
// zero-padded, 16 character hex string.
func XxHash64(hashable Hashable) (string, error) {
	h := xxhash.New64()

	if err := hashable.UpdateHash(h); err != nil {
		return "", err
	}

	return formatSum64(h.Sum64()), nil
}

func formatSum64(sum uint64) string {
	return fmt.Sprintf("%016x", sum)
}

type HashableString string

func (s HashableString) String() string {
	return string(s)
}

func (s HashableString) UpdateHash(h hash.Hash) error {
	_, err := h.Write([]byte(s))

	return err
}

func (s HashableString) Equals(other HashableString) bool {
	return s == other
}

type HashableBytes []byte

func (b HashableBytes) UpdateHash(h hash.Hash) error {
	_, err := h.Write(b)

	return err
}

func (b HashableBytes) Equals(other HashableBytes) bool {
	return bytes.Equal(b, other)
}
