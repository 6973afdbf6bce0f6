package pke

import (
	"babykyber/ring"
	"babykyber/utils/sampling"
)

// KeyGenerator generates key pairs for the scheme. It holds its own entropy
// source and samplers; a KeyGenerator must not be used concurrently.
type KeyGenerator struct {
	params     Parameters
	prng       sampling.PRNG
	cbdSampler *ring.CBDSampler
}

// NewKeyGenerator creates a new KeyGenerator for the given parameters.
func NewKeyGenerator(params Parameters) *KeyGenerator {

	prng, err := sampling.NewPRNG()
	if err != nil {
		// Sanity check, this error should not happen.
		panic(err)
	}

	return &KeyGenerator{
		params:     params,
		prng:       prng,
		cbdSampler: ring.NewCBDSampler(prng, params.RingQ(), params.Eta()),
	}
}

// GenKeyPair generates a fresh secret key and the matching public key.
// It always succeeds.
func (kgen *KeyGenerator) GenKeyPair() (sk *SecretKey, pk *PublicKey) {
	sk = kgen.GenSecretKey()
	return sk, kgen.GenPublicKey(sk)
}

// GenSecretKey samples a new secret vector s from the CBD distribution.
func (kgen *KeyGenerator) GenSecretKey() (sk *SecretKey) {

	s := kgen.params.RingQ().NewPolyVector(kgen.params.K())
	for i := range s {
		kgen.cbdSampler.Read(s[i])
	}

	return &SecretKey{S: s}
}

// GenPublicKey derives the public key (A, t = A*s + e) for the given secret
// key. The matrix A is expanded from a fresh random seed, so it is never
// reused across key pairs.
func (kgen *KeyGenerator) GenPublicKey(sk *SecretKey) (pk *PublicKey) {

	params := kgen.params
	ringQ := params.RingQ()
	k := params.K()

	seed := make([]byte, SeedSize)
	if _, err := kgen.prng.Read(seed); err != nil {
		// Sanity check, this error should not happen.
		panic(err)
	}

	A := ExpandMatrix(params, seed)

	t := ringQ.NewPolyVector(k)
	ringQ.MulVec(A, sk.S, t)

	e := ringQ.NewPoly()
	for i := range t {
		kgen.cbdSampler.Read(e)
		ringQ.Add(t[i], e, t[i])
	}

	return &PublicKey{Seed: seed, A: A, T: t}
}

// ExpandMatrix deterministically expands a seed into the K x K public matrix
// of uniform ring elements, row-major. The same seed always yields the same
// matrix under the same parameters.
func ExpandMatrix(params Parameters, seed []byte) ring.PolyMatrix {

	prng, err := sampling.NewKeyedPRNG(seed)
	if err != nil {
		// Sanity check, this error should not happen.
		panic(err)
	}

	ringQ := params.RingQ()
	uniformSampler := ring.NewUniformSampler(prng, ringQ)

	k := params.K()
	A := ringQ.NewPolyMatrix(k, k)
	for i := range A {
		for j := range A[i] {
			uniformSampler.Read(A[i][j])
		}
	}

	return A
}
