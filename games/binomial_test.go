package games

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBinomialTwoSidedPValue(t *testing.T) {

	t.Run("CenteredOutcome", func(t *testing.T) {
		require.Equal(t, 1.0, BinomialTwoSidedPValue(5, 10))
		require.Equal(t, 1.0, BinomialTwoSidedPValue(5000, 10000))
	})

	t.Run("ExtremeOutcome", func(t *testing.T) {
		// P(X=0) + P(X=10) = 2/1024 for 10 fair flips.
		require.InDelta(t, 2.0/1024.0, BinomialTwoSidedPValue(0, 10), 1e-12)
		require.InDelta(t, 2.0/1024.0, BinomialTwoSidedPValue(10, 10), 1e-12)
	})

	t.Run("Symmetry", func(t *testing.T) {
		require.Equal(t, BinomialTwoSidedPValue(3, 10), BinomialTwoSidedPValue(7, 10))
		require.Equal(t, BinomialTwoSidedPValue(4900, 10000), BinomialTwoSidedPValue(5100, 10000))
	})

	t.Run("Monotonicity", func(t *testing.T) {
		// Outcomes farther from the center are less likely under the null.
		require.Less(t, BinomialTwoSidedPValue(4800, 10000), BinomialTwoSidedPValue(4900, 10000))
		require.Less(t, BinomialTwoSidedPValue(4900, 10000), BinomialTwoSidedPValue(4990, 10000))
	})

	t.Run("FarBelowFloat64", func(t *testing.T) {
		// 9900/10000 is a ~80 sigma outcome; the p-value must come out as
		// an extremely small number, not as a NaN or a garbage value.
		p := BinomialTwoSidedPValue(9900, 10000)
		require.GreaterOrEqual(t, p, 0.0)
		require.Less(t, p, 1e-100)
	})

	t.Run("DegenerateInput", func(t *testing.T) {
		require.Equal(t, 1.0, BinomialTwoSidedPValue(0, 0))
	})
}
