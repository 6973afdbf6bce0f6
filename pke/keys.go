package pke

import (
	"babykyber/ring"
)

// SeedSize is the byte length of the seed expanded into the public matrix.
const SeedSize = 32

// PublicKey is the encryption key (A, t) with t = A*s + e. The matrix A is
// kept alongside the seed it was expanded from; both identify the same
// matrix and the seed alone would suffice to rebuild it. A PublicKey is
// immutable once generated and can be freely shared.
type PublicKey struct {
	Seed []byte
	A    ring.PolyMatrix
	T    ring.PolyVector
}

// SecretKey is the decryption key s, a vector of small-noise ring elements.
// It is generated once per key pair, is immutable thereafter, and never
// appears in any ciphertext.
type SecretKey struct {
	S ring.PolyVector
}

// CopyNew returns a deep copy of the public key.
func (pk *PublicKey) CopyNew() *PublicKey {
	return &PublicKey{
		Seed: append([]byte(nil), pk.Seed...),
		A:    pk.A.CopyNew(),
		T:    pk.T.CopyNew(),
	}
}

// CopyNew returns a deep copy of the secret key.
func (sk *SecretKey) CopyNew() *SecretKey {
	return &SecretKey{S: sk.S.CopyNew()}
}
