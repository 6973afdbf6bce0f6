package pke

import (
	"fmt"

	"babykyber/ring"
	"babykyber/utils"
	"babykyber/utils/sampling"
)

// Encryptor encrypts bit blocks under a fixed public key. It holds its own
// entropy source, sampler and scratch buffers; an Encryptor must not be
// used concurrently. ShallowCopy returns an independent instance for use in
// another goroutine.
type Encryptor struct {
	params     Parameters
	pk         *PublicKey
	encoder    *Encoder
	cbdSampler *ring.CBDSampler

	buffR  ring.PolyVector
	buffE  ring.Poly
	buffMu ring.Poly
}

// NewEncryptor creates a new Encryptor from the given public key.
func NewEncryptor(params Parameters, pk *PublicKey) *Encryptor {

	if len(pk.T) != params.K() || len(pk.A) != params.K() {
		panic("cannot NewEncryptor: public key is invalid for the provided parameters")
	}

	prng, err := sampling.NewPRNG()
	if err != nil {
		// Sanity check, this error should not happen.
		panic(err)
	}

	ringQ := params.RingQ()

	return &Encryptor{
		params:     params,
		pk:         pk,
		encoder:    NewEncoder(params),
		cbdSampler: ring.NewCBDSampler(prng, ringQ, params.Eta()),
		buffR:      ringQ.NewPolyVector(params.K()),
		buffE:      ringQ.NewPoly(),
		buffMu:     ringQ.NewPoly(),
	}
}

// EncryptBlock encrypts one N-bit block: u = A^T*r + e1, v = <t, r> + e2 +
// encode(bits), with r, e1, e2 freshly sampled from the CBD distribution on
// every call. Encrypting the same block twice therefore yields different
// ciphertexts with overwhelming probability.
func (enc *Encryptor) EncryptBlock(bits []uint8) (ct *Ciphertext, err error) {

	if err = enc.encoder.EncodeBlock(bits, enc.buffMu); err != nil {
		return nil, err
	}

	ringQ := enc.params.RingQ()
	ct = NewCiphertext(enc.params)

	r := enc.buffR
	for i := range r {
		enc.cbdSampler.Read(r[i])
	}

	ringQ.MulVecTransposed(enc.pk.A, r, ct.U)
	for i := range ct.U {
		enc.cbdSampler.Read(enc.buffE)
		ringQ.Add(ct.U[i], enc.buffE, ct.U[i])
	}

	ringQ.DotProduct(enc.pk.T, r, ct.V)
	enc.cbdSampler.Read(enc.buffE)
	ringQ.Add(ct.V, enc.buffE, ct.V)
	ringQ.Add(ct.V, enc.buffMu, ct.V)

	return ct, nil
}

// EncryptBytes encrypts an arbitrary byte message as a sequence of N-bit
// blocks, zero-padding the final block. The message byte length is not part
// of the ciphertext and must be carried alongside it (see
// [Decryptor.DecryptBytes]); this channel is deliberately unprotected, as
// the scheme offers no integrity.
func (enc *Encryptor) EncryptBytes(msg []byte) (cts []*Ciphertext, err error) {

	n := enc.params.N()
	bits := BitsFromBytes(msg)

	cts = make([]*Ciphertext, 0, (len(bits)+n-1)/n)
	block := make([]uint8, n)

	for i := 0; i < len(bits); i += n {
		chunk := bits[i:utils.Min(i+n, len(bits))]
		copy(block, chunk)
		for j := len(chunk); j < n; j++ {
			block[j] = 0
		}

		ct, err := enc.EncryptBlock(block)
		if err != nil {
			return nil, fmt.Errorf("pke: encrypt block %d: %w", len(cts), err)
		}
		cts = append(cts, ct)
	}

	return cts, nil
}

// ShallowCopy creates a copy of the Encryptor sharing the public key and
// parameters but holding fresh buffers and sampler state. The receiver and
// the returned Encryptor can be used concurrently.
func (enc *Encryptor) ShallowCopy() *Encryptor {
	return NewEncryptor(enc.params, enc.pk)
}
