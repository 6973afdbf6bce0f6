package pke

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncoder(t *testing.T) {

	params, err := NewParametersFromLiteral(BabyKyberParams)
	require.NoError(t, err)
	ecd := NewEncoder(params)

	t.Run("RoundTripAllBlocks", func(t *testing.T) {
		n := params.N()
		for m := 0; m < 1<<n; m++ {
			bits := make([]uint8, n)
			for i := range bits {
				bits[i] = uint8(m>>i) & 1
			}

			pol, err := ecd.EncodeBlockNew(bits)
			require.NoError(t, err)
			require.Equal(t, bits, ecd.DecodeBlock(pol))
		}
	})

	// q=97: (q/4, 3q/4] is the set {25, ..., 72}.
	t.Run("DecisionBoundary", func(t *testing.T) {
		pol := params.RingQ().NewPoly()
		pol[0], pol[1], pol[2], pol[3] = 24, 25, 72, 73
		require.Equal(t, []uint8{0, 1, 1, 0}, ecd.DecodeBlock(pol))
	})

	t.Run("ShapeMismatch", func(t *testing.T) {
		_, err := ecd.EncodeBlockNew(make([]uint8, params.N()+1))
		require.ErrorIs(t, err, ErrShapeMismatch)

		err = ecd.EncodeBlock(make([]uint8, params.N()), make([]uint64, params.N()-1))
		require.ErrorIs(t, err, ErrShapeMismatch)
	})
}

func TestBitPacking(t *testing.T) {

	data := []byte{0xA5, 0x00, 0xFF, 0x13}

	bits := BitsFromBytes(data)
	require.Len(t, bits, 8*len(data))
	require.Equal(t, []uint8{1, 0, 1, 0, 0, 1, 0, 1}, bits[:8])
	require.Equal(t, data, BytesFromBits(bits))

	// A partial final byte is padded with zero bits.
	require.Equal(t, []byte{0x80}, BytesFromBits([]uint8{1}))
	require.Empty(t, BytesFromBits(nil))
}
