package ring

import (
	"babykyber/utils/sampling"
)

// CBDSampler samples polynomials with coefficients following the centered
// binomial distribution of parameter eta: each coefficient is the sum of eta
// independent fair-coin differences, an integer in [-eta, eta] concentrated
// around 0, stored canonically (a negative value v becomes q + v). These
// small elements serve as secrets, errors and per-encryption noise; their
// magnitude staying well below q/4 is what keeps decryption correct.
type CBDSampler struct {
	*baseSampler
	*randomBuffer
	eta int
}

// NewCBDSampler creates a new CBDSampler with parameter eta from a PRNG and
// a ring definition.
func NewCBDSampler(prng sampling.PRNG, baseRing *Ring, eta int) (s *CBDSampler) {
	if eta < 1 {
		panic("cannot NewCBDSampler: eta must be at least 1")
	}
	return &CBDSampler{
		baseSampler:  &baseSampler{prng: prng, baseRing: baseRing},
		randomBuffer: newRandomBuffer(),
		eta:          eta,
	}
}

// Eta returns the distribution parameter.
func (s *CBDSampler) Eta() int {
	return s.eta
}

// Read populates pol with CBD coefficients, consuming 2*eta fresh bits of
// the PRNG stream per coefficient.
func (s *CBDSampler) Read(pol Poly) {

	q := s.baseRing.Modulus()

	var w byte
	var avail int

	for i := range pol {

		var diff int
		for t := 0; t < s.eta; t++ {
			if avail < 2 {
				w = s.nextByte(s.prng)
				avail = 8
			}
			diff += int(w&1) - int((w>>1)&1)
			w >>= 2
			avail -= 2
		}

		if diff < 0 {
			pol[i] = q - uint64(-diff)
		} else {
			pol[i] = uint64(diff)
		}
	}
}

// ReadNew samples a new CBD polynomial.
func (s *CBDSampler) ReadNew() (pol Poly) {
	pol = s.baseRing.NewPoly()
	s.Read(pol)
	return
}
