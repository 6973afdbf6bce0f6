package games

import (
	"fmt"

	"babykyber/pke"
	"babykyber/utils/sampling"
)

// batchSize is the number of trials aggregated into one batch rate.
const batchSize = 1000

// challenger holds the state shared by both games: the parameter set, the
// two candidate messages and the challenge coin source.
type challenger struct {
	params pke.Parameters
	m0, m1 []uint8
	coins  sampling.PRNG
}

func newChallenger(params pke.Parameters, m0, m1 []uint8) (*challenger, error) {

	n := params.N()
	if len(m0) != n || len(m1) != n {
		return nil, fmt.Errorf("games: %w: candidate messages have %d and %d bits, want %d", pke.ErrShapeMismatch, len(m0), len(m1), n)
	}

	coins, err := sampling.NewPRNG()
	if err != nil {
		// Sanity check, this error should not happen.
		panic(err)
	}

	return &challenger{
		params: params,
		m0:     append([]uint8(nil), m0...),
		m1:     append([]uint8(nil), m1...),
		coins:  coins,
	}, nil
}

// flip draws an unbiased challenge bit.
func (c *challenger) flip() int {
	var b [1]byte
	if _, err := c.coins.Read(b[:]); err != nil {
		// Sanity check, this error should not happen.
		panic(err)
	}
	return int(b[0] & 1)
}

// message returns the candidate message selected by the challenge bit.
func (c *challenger) message(b int) []uint8 {
	if b == 0 {
		return c.m0
	}
	return c.m1
}

// hammingDistance counts the positions at which two bit blocks differ.
func hammingDistance(a, b []uint8) (d int) {
	for i := range a {
		if a[i] != b[i] {
			d++
		}
	}
	return
}
