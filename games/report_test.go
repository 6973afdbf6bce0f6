package games

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReport(t *testing.T) {

	t.Run("RateAndAdvantage", func(t *testing.T) {
		r := &Report{Attack: "IND-CPA", Trials: 10000, Successes: 4976}
		require.InDelta(t, 0.4976, r.Rate(), 1e-12)
		require.InDelta(t, 0.0024, r.Advantage(), 1e-12)
	})

	t.Run("NormalInterval", func(t *testing.T) {
		r := &Report{Trials: 10000, Successes: 4976}
		lo, hi := r.NormalInterval()
		// 1.96*sqrt(0.4976*0.5024/10000) ~ 0.0098
		require.InDelta(t, 0.4976-0.0098, lo, 1e-3)
		require.InDelta(t, 0.4976+0.0098, hi, 1e-3)
	})

	t.Run("WilsonInterval", func(t *testing.T) {
		r := &Report{Trials: 10000, Successes: 10000}
		lo, hi := r.WilsonInterval()

		// Stays within [0, 1] even at the degenerate rate 1.0 and remains
		// tightly pinned near 1.
		require.Greater(t, lo, 0.999)
		require.LessOrEqual(t, hi, 1.0)

		r = &Report{Trials: 10000, Successes: 5000}
		lo, hi = r.WilsonInterval()
		require.Less(t, lo, 0.5)
		require.Greater(t, hi, 0.5)
	})

	t.Run("BatchSummary", func(t *testing.T) {
		r := &Report{Trials: 2000, Successes: 1000, BatchRates: []float64{0.4, 0.6}}
		mean, stdDev := r.BatchSummary()
		require.InDelta(t, 0.5, mean, 1e-12)
		require.InDelta(t, 0.1, stdDev, 1e-12)
	})

	t.Run("String", func(t *testing.T) {
		r := &Report{Attack: "IND-CPA", Trials: 10000, Successes: 5017}
		s := r.String()
		require.True(t, strings.Contains(s, "IND-CPA experiment"))
		require.True(t, strings.Contains(s, "Adversary success rate: 5017/10000"))
		require.True(t, strings.Contains(s, "p-value (binomial test)"))
		require.True(t, strings.Contains(s, "95% confidence interval"))
	})
}
