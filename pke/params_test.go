package pke

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParameters(t *testing.T) {

	t.Run("FromLiteral", func(t *testing.T) {
		params, err := NewParametersFromLiteral(BabyKyberParams)
		require.NoError(t, err)
		require.Equal(t, uint64(97), params.Q())
		require.Equal(t, 4, params.N())
		require.Equal(t, 2, params.K())
		require.Equal(t, 1, params.Eta())
		require.Equal(t, uint64(48), params.HalfQ())
		require.Equal(t, BabyKyberParams, params.Literal())
	})

	t.Run("InvalidLiterals", func(t *testing.T) {
		for _, pl := range []ParametersLiteral{
			{Q: 97, N: 4, K: 0, Eta: 1},
			{Q: 97, N: 4, K: 2, Eta: 0},
			{Q: 97, N: 0, K: 2, Eta: 1},
			{Q: 2, N: 4, K: 2, Eta: 1},
			{Q: 7, N: 4, K: 2, Eta: 2}, // noise exceeds the q/4 margin
		} {
			_, err := NewParametersFromLiteral(pl)
			require.Error(t, err, "literal %+v", pl)
		}
	})

	t.Run("Equal", func(t *testing.T) {
		p1, err := NewParametersFromLiteral(BabyKyberParams)
		require.NoError(t, err)
		p2, err := NewParametersFromLiteral(BabyKyberParams)
		require.NoError(t, err)
		p3, err := NewParametersFromLiteral(BabyKyberN16Params)
		require.NoError(t, err)

		require.True(t, p1.Equal(p2))
		require.False(t, p1.Equal(p3))
	})
}
