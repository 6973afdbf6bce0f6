package ring

// PolyVector is an ordered slice of ring elements. Each vector exclusively
// owns its elements; copies are always deep.
type PolyVector []Poly

// NewPolyVector allocates a vector of size zero polynomials of degree n.
func NewPolyVector(n, size int) PolyVector {
	v := make(PolyVector, size)
	for i := range v {
		v[i] = NewPoly(n)
	}
	return v
}

// NewPolyVector allocates a vector of size zero elements of the ring.
func (r *Ring) NewPolyVector(size int) PolyVector {
	return NewPolyVector(r.n, size)
}

// CopyNew returns a deep copy of the vector.
func (pv PolyVector) CopyNew() PolyVector {
	v := make(PolyVector, len(pv))
	for i := range v {
		v[i] = pv[i].CopyNew()
	}
	return v
}

// Equal performs an element-wise comparison.
func (pv PolyVector) Equal(other PolyVector) bool {
	if len(pv) != len(other) {
		return false
	}
	for i := range pv {
		if !pv[i].Equal(other[i]) {
			return false
		}
	}
	return true
}

// DotProduct writes the inner product <a, b> = sum_i a[i] * b[i] on pOut.
// pOut must not overlap the operands.
func (r *Ring) DotProduct(a, b PolyVector, pOut Poly) {
	pOut.Zero()
	for i := range a {
		r.MulThenAdd(a[i], b[i], pOut)
	}
}
