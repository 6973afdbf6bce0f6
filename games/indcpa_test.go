package games

import (
	"testing"

	"github.com/stretchr/testify/require"

	"babykyber/pke"
)

func testParameters(t *testing.T) pke.Parameters {
	params, err := pke.NewParametersFromLiteral(pke.BabyKyberParams)
	require.NoError(t, err)
	return params
}

func TestCPAGame(t *testing.T) {

	params := testParameters(t)

	t.Run("CandidateValidation", func(t *testing.T) {
		_, err := NewCPAGame(params, []uint8{1, 0}, []uint8{0, 1, 0, 1})
		require.ErrorIs(t, err, pke.ErrShapeMismatch)
	})

	t.Run("AdvantageIsNegligible", func(t *testing.T) {

		game, err := NewCPAGame(params, []uint8{1, 0, 1, 0}, []uint8{0, 1, 0, 1})
		require.NoError(t, err)

		const trials = 10000
		report, err := game.Run(trials)
		require.NoError(t, err)

		require.Equal(t, trials, report.Trials)
		require.Len(t, report.BatchRates, trials/batchSize)

		// Under the null "success probability = 0.5" the rate deviates from
		// 0.5 by more than 0.04 (8 standard deviations) with probability
		// below 1e-15, so this bound does not flake.
		require.InDelta(t, 0.5, report.Rate(), 0.04)

		lo, hi := report.WilsonInterval()
		require.Less(t, lo, 0.5+0.04)
		require.Greater(t, hi, 0.5-0.04)
	})
}
