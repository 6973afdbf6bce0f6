package ring

// PolyMatrix is a row-major grid of ring elements.
type PolyMatrix []PolyVector

// NewPolyMatrix allocates a rows x cols matrix of zero polynomials of
// degree n.
func NewPolyMatrix(n, rows, cols int) PolyMatrix {
	m := make(PolyMatrix, rows)
	for i := range m {
		m[i] = NewPolyVector(n, cols)
	}
	return m
}

// NewPolyMatrix allocates a rows x cols matrix of zero elements of the ring.
func (r *Ring) NewPolyMatrix(rows, cols int) PolyMatrix {
	return NewPolyMatrix(r.n, rows, cols)
}

// CopyNew returns a deep copy of the matrix.
func (pm PolyMatrix) CopyNew() PolyMatrix {
	m := make(PolyMatrix, len(pm))
	for i := range m {
		m[i] = pm[i].CopyNew()
	}
	return m
}

// Equal performs an element-wise comparison.
func (pm PolyMatrix) Equal(other PolyMatrix) bool {
	if len(pm) != len(other) {
		return false
	}
	for i := range pm {
		if !pm[i].Equal(other[i]) {
			return false
		}
	}
	return true
}

// MulVec writes the matrix-vector product m * v on vOut:
// vOut[i] = sum_j m[i][j] * v[j]. vOut must not overlap the operands.
func (r *Ring) MulVec(m PolyMatrix, v PolyVector, vOut PolyVector) {
	for i := range m {
		r.DotProduct(m[i], v, vOut[i])
	}
}

// MulVecTransposed writes the product m^T * v on vOut:
// vOut[i] = sum_j m[j][i] * v[j]. vOut must not overlap the operands.
func (r *Ring) MulVecTransposed(m PolyMatrix, v PolyVector, vOut PolyVector) {
	for i := range vOut {
		vOut[i].Zero()
		for j := range m {
			r.MulThenAdd(m[j][i], v[j], vOut[i])
		}
	}
}
