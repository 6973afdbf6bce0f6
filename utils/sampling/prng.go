// Package sampling provides the entropy sources backing the ring samplers.
package sampling

import (
	"crypto/rand"
	"io"

	"golang.org/x/crypto/blake2b"
)

// PRNG is an interface for the generation of random bytes.
type PRNG interface {
	io.Reader
}

// ThreadSafePRNG is a PRNG backed by the system entropy source. It is safe
// for concurrent use and never produces a deterministic stream.
type ThreadSafePRNG struct {
}

// NewPRNG returns a new thread-safe PRNG reading from crypto/rand.
func NewPRNG() (*ThreadSafePRNG, error) {
	return &ThreadSafePRNG{}, nil
}

// Read fills sum with fresh random bytes.
func (prng *ThreadSafePRNG) Read(sum []byte) (n int, err error) {
	return rand.Read(sum)
}

// KeyedPRNG deterministically expands a key into an unbounded stream of
// pseudo-random bytes using the blake2b XOF. Two KeyedPRNG instances seeded
// with the same key produce the same stream, which is what the public-matrix
// seed expansion relies on.
// WARNING: a KeyedPRNG must not be shared across goroutines, otherwise the
// produced sequence is no longer deterministic for a given key.
type KeyedPRNG struct {
	key []byte
	xof blake2b.XOF
}

// NewKeyedPRNG creates a new KeyedPRNG from the given key.
// A nil key is treated as an empty key and yields a fixed stream.
func NewKeyedPRNG(key []byte) (*KeyedPRNG, error) {
	prng := &KeyedPRNG{key: append([]byte(nil), key...)}
	var err error
	prng.xof, err = blake2b.NewXOF(blake2b.OutputLengthUnknown, key)
	return prng, err
}

// Key returns a copy of the key used to seed the PRNG. Seeding a new
// KeyedPRNG with this value reproduces the stream from its start.
func (prng *KeyedPRNG) Key() (key []byte) {
	return append([]byte(nil), prng.key...)
}

// Read fills sum with the next bytes of the stream.
func (prng *KeyedPRNG) Read(sum []byte) (n int, err error) {
	return prng.xof.Read(sum)
}
