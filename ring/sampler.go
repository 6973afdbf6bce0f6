package ring

import (
	"babykyber/utils/sampling"
)

// Sampler is an interface for random polynomial samplers. Read populates the
// given polynomial with canonical coefficients drawn from the sampler's
// distribution; every call consumes fresh bytes from the underlying PRNG.
//
// A Sampler is not safe for concurrent use: concurrent callers must either
// hold their own Sampler instance or synchronize externally.
type Sampler interface {
	Read(pol Poly)
	ReadNew() (pol Poly)
}

type baseSampler struct {
	prng     sampling.PRNG
	baseRing *Ring
}

// randomBuffer amortizes PRNG reads over many sampled coefficients.
type randomBuffer struct {
	randomBufferN []byte
	ptr           int
}

func newRandomBuffer() *randomBuffer {
	return &randomBuffer{
		randomBufferN: make([]byte, 1024),
	}
}

// nextByte returns one byte of the PRNG stream, refilling the buffer when it
// runs empty.
func (b *randomBuffer) nextByte(prng sampling.PRNG) byte {
	if b.ptr == 0 || b.ptr == len(b.randomBufferN) {
		if _, err := prng.Read(b.randomBufferN); err != nil {
			// Sanity check, this error should not happen.
			panic(err)
		}
		b.ptr = 0
	}
	c := b.randomBufferN[b.ptr]
	b.ptr++
	return c
}
