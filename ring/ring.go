// Package ring implements arithmetic in the polynomial ring Z_q[X]/(X^n + 1)
// for a single small prime modulus q. Elements are held with canonical
// coefficients in [0, q) at all times; every operation writes a canonical
// result and is total for well-formed operands.
package ring

import (
	"fmt"
	"math/bits"
)

// MaxModulus is the largest supported coefficient modulus. The bound keeps
// the schoolbook multiplication free of uint64 overflow.
const MaxModulus = 1 << 31

// Ring holds the degree and modulus defining Z_q[X]/(X^n + 1) and implements
// the ring operations on [Poly] operands. A Ring is immutable once created
// and can be shared by concurrent callers.
type Ring struct {
	n       int
	modulus uint64

	// mask is the smallest 2^b - 1 >= modulus - 1, used by the
	// rejection-sampling loop of the uniform sampler.
	mask uint64
}

// NewRing creates a Ring of degree n with coefficient modulus q.
// It returns an error if the dimensions cannot define a valid ring.
func NewRing(n int, q uint64) (*Ring, error) {
	switch {
	case n < 1:
		return nil, fmt.Errorf("ring: invalid degree n=%d: must be at least 1", n)
	case q < 2:
		return nil, fmt.Errorf("ring: invalid modulus q=%d: must be at least 2", q)
	case q > MaxModulus:
		return nil, fmt.Errorf("ring: invalid modulus q=%d: must be at most 2^31", q)
	}

	return &Ring{
		n:       n,
		modulus: q,
		mask:    (1 << uint64(bits.Len64(q-1))) - 1,
	}, nil
}

// N returns the ring degree.
func (r *Ring) N() int {
	return r.n
}

// Modulus returns the coefficient modulus.
func (r *Ring) Modulus() uint64 {
	return r.modulus
}

// Mask returns the rejection-sampling mask of the modulus.
func (r *Ring) Mask() uint64 {
	return r.mask
}

// NewPoly allocates the zero element of the ring.
func (r *Ring) NewPoly() Poly {
	return make(Poly, r.n)
}

// Add writes p1 + p2 on p3.
func (r *Ring) Add(p1, p2, p3 Poly) {
	q := r.modulus
	for i := range p3 {
		p3[i] = CRed(p1[i]+p2[i], q)
	}
}

// AddNew returns p1 + p2 in a new Poly.
func (r *Ring) AddNew(p1, p2 Poly) (p3 Poly) {
	p3 = r.NewPoly()
	r.Add(p1, p2, p3)
	return
}

// Sub writes p1 - p2 on p3.
func (r *Ring) Sub(p1, p2, p3 Poly) {
	q := r.modulus
	for i := range p3 {
		p3[i] = CRed(p1[i]+q-p2[i], q)
	}
}

// SubNew returns p1 - p2 in a new Poly.
func (r *Ring) SubNew(p1, p2 Poly) (p3 Poly) {
	p3 = r.NewPoly()
	r.Sub(p1, p2, p3)
	return
}

// Neg writes -p1 on p2.
func (r *Ring) Neg(p1, p2 Poly) {
	q := r.modulus
	for i := range p2 {
		if p1[i] == 0 {
			p2[i] = 0
		} else {
			p2[i] = q - p1[i]
		}
	}
}

// MulScalar writes p1 * scalar on p2.
func (r *Ring) MulScalar(p1 Poly, scalar uint64, p2 Poly) {
	q := r.modulus
	scalar %= q
	for i := range p2 {
		p2[i] = p1[i] * scalar % q
	}
}

// Mul writes p1 * p2 on p3, reducing modulo X^n + 1 and q. A product term of
// degree n+i is folded back with a sign flip onto degree i (X^n = -1); the
// fold must stay exact, as any deviation silently corrupts decryption.
// p3 may alias p1 or p2.
func (r *Ring) Mul(p1, p2, p3 Poly) {
	n, q := r.n, r.modulus

	acc := make(Poly, n)
	mulNegacyclicThenAdd(p1, p2, acc, n, q)
	copy(p3, acc)
}

// MulNew returns p1 * p2 in a new Poly.
func (r *Ring) MulNew(p1, p2 Poly) (p3 Poly) {
	p3 = r.NewPoly()
	mulNegacyclicThenAdd(p1, p2, p3, r.n, r.modulus)
	return
}

// MulThenAdd writes p3 + p1 * p2 on p3. p3 must not overlap p1 or p2.
func (r *Ring) MulThenAdd(p1, p2, p3 Poly) {
	mulNegacyclicThenAdd(p1, p2, p3, r.n, r.modulus)
}

func mulNegacyclicThenAdd(p1, p2, p3 Poly, n int, q uint64) {
	for i := 0; i < n; i++ {
		c1 := p1[i]
		if c1 == 0 {
			continue
		}
		for j := 0; j < n; j++ {
			prod := c1 * p2[j] % q
			if t := i + j; t < n {
				p3[t] = CRed(p3[t]+prod, q)
			} else {
				p3[t-n] = CRed(p3[t-n]+q-prod, q)
			}
		}
	}
}

// CRed reduces a in [0, 2q) to [0, q).
func CRed(a, q uint64) uint64 {
	if a >= q {
		return a - q
	}
	return a
}
