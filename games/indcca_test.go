package games

import (
	"testing"

	"github.com/stretchr/testify/require"

	"babykyber/pke"
)

func TestDecryptionOracle(t *testing.T) {

	params := testParameters(t)

	kgen := pke.NewKeyGenerator(params)
	sk, pk := kgen.GenKeyPair()
	enc := pke.NewEncryptor(params, pk)
	dec := pke.NewDecryptor(params, sk)

	challenge, err := enc.EncryptBlock([]uint8{1, 0, 1, 0})
	require.NoError(t, err)

	oracle := newDecryptionOracle(dec, challenge.Digest())

	// The literal challenge is refused.
	_, err = oracle(challenge)
	require.ErrorIs(t, err, ErrChallengeQuery)

	// Any other ciphertext, including a perturbation of the challenge by a
	// single coefficient, is decrypted without complaint.
	perturbed := challenge.CopyNew()
	perturbed.V[0] = (perturbed.V[0] + 1) % params.Q()

	bits, err := oracle(perturbed)
	require.NoError(t, err)
	require.Len(t, bits, params.N())
}

func TestCCAGame(t *testing.T) {

	params := testParameters(t)

	t.Run("CandidateValidation", func(t *testing.T) {
		_, err := NewCCAGame(params, []uint8{1, 0, 1}, []uint8{0, 1, 0, 1})
		require.ErrorIs(t, err, pke.ErrShapeMismatch)
	})

	t.Run("AttackRecoversTheBit", func(t *testing.T) {

		game, err := NewCCAGame(params, []uint8{1, 0, 1, 0}, []uint8{0, 1, 0, 1})
		require.NoError(t, err)

		const trials = 10000
		report, err := game.Run(trials)
		require.NoError(t, err)

		require.Equal(t, trials, report.Trials)
		require.Len(t, report.BatchRates, trials/batchSize)

		// With the baby parameters the perturbed challenge still decodes to
		// the challenge message in essentially every round.
		require.GreaterOrEqual(t, report.Rate(), 0.999)
		require.GreaterOrEqual(t, report.Advantage(), 0.499)
		require.Less(t, report.PValue(), 1e-6)

		lo, hi := report.WilsonInterval()
		require.Greater(t, lo, 0.99)
		require.LessOrEqual(t, hi, 1.0)
	})
}
