// Package pke implements a teaching-scale module-LWE public-key encryption
// scheme over Z_q[X]/(X^n + 1), a miniature analog of the Kyber CPA-secure
// PKE. Key generation, encryption and decryption are total operations; the
// only errors surfaced at the API boundary report operands of the wrong
// dimensions. Decryption is unauthenticated and probabilistic: it always
// returns a definite bit block, correct with high probability as long as
// the accumulated sampling noise stays below the q/4 decision margin.
package pke

import (
	"errors"
	"fmt"

	"github.com/google/go-cmp/cmp"

	"babykyber/ring"
)

// ErrShapeMismatch is returned, wrapped, whenever a bit block, vector or
// matrix of the wrong dimensions crosses the API boundary.
var ErrShapeMismatch = errors.New("shape mismatch")

// BabyKyberParams is the default parameter set of the scheme: degree-4
// polynomials modulo 97, rank-2 module, noise parameter 1.
var BabyKyberParams = ParametersLiteral{Q: 97, N: 4, K: 2, Eta: 1}

// BabyKyberN16Params is a slightly larger parameter set with degree-16
// blocks, exercising message padding for byte streams whose bit length is
// not a multiple of the block size.
var BabyKyberN16Params = ParametersLiteral{Q: 3329, N: 16, K: 2, Eta: 2}

// ParametersLiteral is a literal representation of the scheme parameters:
// the coefficient modulus Q, the polynomial degree N (also the number of
// plaintext bits per block), the module rank K and the centered binomial
// noise parameter Eta. It has public fields and is used to express
// unchecked parameters literally; NewParametersFromLiteral produces the
// checked, immutable Parameters used by the scheme.
type ParametersLiteral struct {
	Q   uint64
	N   int
	K   int
	Eta int
}

// Parameters is a checked, immutable parameter set. All key material and
// ciphertexts are bound to the Parameters they were produced under.
type Parameters struct {
	q     uint64
	n     int
	k     int
	eta   int
	ringQ *ring.Ring
}

// NewParametersFromLiteral instantiates a checked Parameters from a literal
// specification. It returns an error if the literal cannot define a working
// scheme.
func NewParametersFromLiteral(pl ParametersLiteral) (params Parameters, err error) {

	if pl.K < 1 {
		return Parameters{}, fmt.Errorf("pke: invalid parameters: rank K=%d must be at least 1", pl.K)
	}

	if pl.Eta < 1 {
		return Parameters{}, fmt.Errorf("pke: invalid parameters: noise parameter Eta=%d must be at least 1", pl.Eta)
	}

	if pl.Q < 4 {
		return Parameters{}, fmt.Errorf("pke: invalid parameters: modulus Q=%d leaves no decoding margin", pl.Q)
	}

	// The decoder separates 0 from floor(Q/2) by a margin of about Q/4; a
	// single CBD sample of magnitude eta must at least fit inside it.
	if 4*uint64(pl.Eta) >= pl.Q {
		return Parameters{}, fmt.Errorf("pke: invalid parameters: noise parameter Eta=%d exceeds the decoding margin of Q=%d", pl.Eta, pl.Q)
	}

	ringQ, err := ring.NewRing(pl.N, pl.Q)
	if err != nil {
		return Parameters{}, fmt.Errorf("pke: invalid parameters: %w", err)
	}

	return Parameters{
		q:     pl.Q,
		n:     pl.N,
		k:     pl.K,
		eta:   pl.Eta,
		ringQ: ringQ,
	}, nil
}

// Q returns the coefficient modulus.
func (p Parameters) Q() uint64 {
	return p.q
}

// N returns the polynomial degree, which is also the number of message bits
// carried by one ciphertext block.
func (p Parameters) N() int {
	return p.n
}

// K returns the module rank.
func (p Parameters) K() int {
	return p.k
}

// Eta returns the centered binomial noise parameter.
func (p Parameters) Eta() int {
	return p.eta
}

// RingQ returns the underlying polynomial ring.
func (p Parameters) RingQ() *ring.Ring {
	return p.ringQ
}

// HalfQ returns floor(Q/2), the encoding of a 1 bit.
func (p Parameters) HalfQ() uint64 {
	return p.q >> 1
}

// Literal returns the literal representation of the parameters.
func (p Parameters) Literal() ParametersLiteral {
	return ParametersLiteral{Q: p.q, N: p.n, K: p.k, Eta: p.eta}
}

// Equal reports whether p and other define the same scheme.
func (p Parameters) Equal(other Parameters) bool {
	return cmp.Equal(p.Literal(), other.Literal())
}
