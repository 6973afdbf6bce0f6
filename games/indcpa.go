package games

import (
	"go.uber.org/zap"

	"babykyber/pke"
)

// CPAGame is the chosen-plaintext indistinguishability experiment. Each
// round, the challenger encrypts one of the two candidate messages selected
// by an unbiased coin hidden from the adversary; the adversary sees only
// ciphertexts and guesses the coin. Since every encryption draws fresh
// noise, no strategy restricted to ciphertext inspection should do better
// than random guessing, and the expected success rate is 0.5.
//
// The adversary strategy is a simple adaptive one: it requests reference
// encryptions of both candidates each round, condenses every ciphertext
// into a scalar score, and guesses the candidate whose reference score is
// closest to the challenge score.
type CPAGame struct {
	*challenger
	logger *zap.Logger
}

// NewCPAGame creates a chosen-plaintext experiment distinguishing the two
// candidate N-bit messages.
func NewCPAGame(params pke.Parameters, m0, m1 []uint8) (*CPAGame, error) {
	c, err := newChallenger(params, m0, m1)
	if err != nil {
		return nil, err
	}
	return &CPAGame{challenger: c, logger: zap.NewNop()}, nil
}

// WithLogger returns a copy of the game logging batch progress to logger.
func (g *CPAGame) WithLogger(logger *zap.Logger) *CPAGame {
	return &CPAGame{challenger: g.challenger, logger: logger}
}

// Run plays the game for the given number of rounds under a fresh key pair
// and returns the aggregated report.
func (g *CPAGame) Run(trials int) (*Report, error) {

	kgen := pke.NewKeyGenerator(g.params)
	_, pk := kgen.GenKeyPair()
	enc := pke.NewEncryptor(g.params, pk)

	report := &Report{Attack: "IND-CPA", Trials: trials}
	batchSuccesses := 0

	for t := 1; t <= trials; t++ {

		c0, err := enc.EncryptBlock(g.m0)
		if err != nil {
			return nil, err
		}
		c1, err := enc.EncryptBlock(g.m1)
		if err != nil {
			return nil, err
		}

		b := g.flip()
		cStar, err := enc.EncryptBlock(g.message(b))
		if err != nil {
			return nil, err
		}

		if g.guess(cStar, c0, c1) == b {
			report.Successes++
			batchSuccesses++
		}

		if t%batchSize == 0 {
			rate := float64(batchSuccesses) / float64(batchSize)
			report.BatchRates = append(report.BatchRates, rate)
			batchSuccesses = 0
			g.logger.Debug("ind-cpa batch done",
				zap.Int("trial", t),
				zap.Float64("batchRate", rate),
			)
		}
	}

	return report, nil
}

// score condenses a ciphertext into the scalar (u[0][0] + v[0]) mod q.
func (g *CPAGame) score(ct *pke.Ciphertext) uint64 {
	return (ct.U[0][0] + ct.V[0]) % g.params.Q()
}

// guess compares the challenge score against the two reference scores and
// picks the closer one.
func (g *CPAGame) guess(cStar, c0, c1 *pke.Ciphertext) int {

	sStar, s0, s1 := g.score(cStar), g.score(c0), g.score(c1)

	if absDiff(sStar, s0) < absDiff(sStar, s1) {
		return 0
	}
	return 1
}

func absDiff(a, b uint64) uint64 {
	if a > b {
		return a - b
	}
	return b - a
}
