package ring

import (
	"babykyber/utils"
)

// Poly is a ring element: a slice of exactly N canonical coefficients in
// [0, q). The zero value of each coefficient is the zero element, so a
// freshly allocated Poly is the additive identity.
type Poly []uint64

// NewPoly allocates a zero polynomial of degree n.
func NewPoly(n int) Poly {
	return make(Poly, n)
}

// N returns the number of coefficients of the polynomial.
func (pol Poly) N() int {
	return len(pol)
}

// CopyNew returns a deep copy of the polynomial.
func (pol Poly) CopyNew() Poly {
	return append(Poly(nil), pol...)
}

// Copy copies the coefficients of other on the receiver.
func (pol Poly) Copy(other Poly) {
	copy(pol, other)
}

// Equal performs a coefficient-wise comparison.
func (pol Poly) Equal(other Poly) bool {
	return utils.EqualSlice(pol, other)
}

// Zero sets all coefficients to zero.
func (pol Poly) Zero() {
	for i := range pol {
		pol[i] = 0
	}
}
