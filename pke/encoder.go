package pke

import (
	"fmt"

	"babykyber/ring"
)

// Encoder maps bit blocks to and from ring elements. A 0 bit is encoded as
// the coefficient 0 and a 1 bit as floor(q/2), placing the two values at
// maximal cyclic distance so that decoding tolerates noise of magnitude up
// to about q/4.
type Encoder struct {
	params Parameters
}

// NewEncoder creates a new Encoder for the given parameters.
func NewEncoder(params Parameters) *Encoder {
	return &Encoder{params: params}
}

// EncodeBlock writes the encoding of an N-bit block on pol. Any non-zero
// entry of bits is treated as a 1 bit.
func (ecd *Encoder) EncodeBlock(bits []uint8, pol ring.Poly) error {

	n := ecd.params.N()
	if len(bits) != n {
		return fmt.Errorf("pke: %w: message block has %d bits, want %d", ErrShapeMismatch, len(bits), n)
	}
	if pol.N() != n {
		return fmt.Errorf("pke: %w: output polynomial has %d coefficients, want %d", ErrShapeMismatch, pol.N(), n)
	}

	halfQ := ecd.params.HalfQ()
	for i := range pol {
		if bits[i] != 0 {
			pol[i] = halfQ
		} else {
			pol[i] = 0
		}
	}

	return nil
}

// EncodeBlockNew returns the encoding of an N-bit block in a new Poly.
func (ecd *Encoder) EncodeBlockNew(bits []uint8) (ring.Poly, error) {
	pol := ecd.params.RingQ().NewPoly()
	if err := ecd.EncodeBlock(bits, pol); err != nil {
		return nil, err
	}
	return pol, nil
}

// DecodeBlock collapses a noisy ring element back to an N-bit block: a
// coefficient decodes to 1 exactly when its canonical value lies in
// (q/4, 3q/4], i.e. when it is closer to floor(q/2) than to 0 under the
// cyclic distance on Z_q. Decoding is total and never reports ambiguity; a
// value sitting on the decision boundary still yields a definite bit.
func (ecd *Encoder) DecodeBlock(pol ring.Poly) []uint8 {

	q := ecd.params.Q()

	bits := make([]uint8, len(pol))
	for i, c := range pol {
		// 4c > q && 4c <= 3q, kept in integers to avoid rounding the bounds.
		if 4*c > q && 4*c <= 3*q {
			bits[i] = 1
		}
	}

	return bits
}

// BitsFromBytes unpacks data into its bits, most significant bit of each
// byte first.
func BitsFromBytes(data []byte) []uint8 {
	bits := make([]uint8, 0, 8*len(data))
	for _, b := range data {
		for i := 7; i >= 0; i-- {
			bits = append(bits, (b>>uint(i))&1)
		}
	}
	return bits
}

// BytesFromBits packs bits into bytes, most significant bit first. A final
// partial byte is padded with zero bits.
func BytesFromBits(bits []uint8) []byte {
	data := make([]byte, (len(bits)+7)/8)
	for i, bit := range bits {
		if bit != 0 {
			data[i/8] |= 1 << uint(7-i%8)
		}
	}
	return data
}
