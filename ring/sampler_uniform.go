package ring

import (
	"encoding/binary"

	"babykyber/utils/sampling"
)

// UniformSampler samples polynomials with coefficients uniformly distributed
// in [0, q). It is used exclusively for the public matrix.
type UniformSampler struct {
	*baseSampler
	*randomBuffer
}

// NewUniformSampler creates a new UniformSampler from a PRNG and a ring
// definition.
func NewUniformSampler(prng sampling.PRNG, baseRing *Ring) (u *UniformSampler) {
	return &UniformSampler{
		baseSampler:  &baseSampler{prng: prng, baseRing: baseRing},
		randomBuffer: newRandomBuffer(),
	}
}

// Read populates pol with uniform coefficients in [0, q), by rejection
// sampling of masked 64-bit words from the PRNG stream.
func (u *UniformSampler) Read(pol Poly) {

	q := u.baseRing.Modulus()
	mask := u.baseRing.Mask()

	buffer := u.randomBufferN
	byteArrayLength := len(buffer)

	ptr := u.ptr
	if ptr == 0 || ptr+8 > byteArrayLength {
		if _, err := u.prng.Read(buffer); err != nil {
			// Sanity check, this error should not happen.
			panic(err)
		}
		ptr = 0
	}

	for i := range pol {
		for {
			if ptr+8 > byteArrayLength {
				if _, err := u.prng.Read(buffer); err != nil {
					// Sanity check, this error should not happen.
					panic(err)
				}
				ptr = 0
			}

			randomUint := binary.BigEndian.Uint64(buffer[ptr:ptr+8]) & mask
			ptr += 8

			if randomUint < q {
				pol[i] = randomUint
				break
			}
		}
	}

	u.ptr = ptr
}

// ReadNew samples a new uniform polynomial.
func (u *UniformSampler) ReadNew() (pol Poly) {
	pol = u.baseRing.NewPoly()
	u.Read(pol)
	return
}
