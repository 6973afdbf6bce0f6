package pke

import (
	"fmt"

	"babykyber/ring"
)

// Decryptor decrypts ciphertext blocks with a fixed secret key. Decryption
// is total: any well-shaped ciphertext, including a perturbed or otherwise
// adversarial one, decodes to some definite bit block. A Decryptor holds
// scratch buffers and must not be used concurrently; ShallowCopy returns an
// independent instance.
type Decryptor struct {
	params  Parameters
	sk      *SecretKey
	encoder *Encoder
	buffD   ring.Poly
}

// NewDecryptor creates a new Decryptor from the given secret key.
func NewDecryptor(params Parameters, sk *SecretKey) *Decryptor {

	if len(sk.S) != params.K() {
		panic("cannot NewDecryptor: secret key is invalid for the provided parameters")
	}

	return &Decryptor{
		params:  params,
		sk:      sk,
		encoder: NewEncoder(params),
		buffD:   params.RingQ().NewPoly(),
	}
}

// DecryptBlock decrypts one ciphertext block: d = v - <s, u>, decoded
// coefficient-wise. The result equals the encrypted block whenever the
// accumulated noise stays below the q/4 margin, which holds with high
// probability for honestly generated ciphertexts; there is no error signal
// for an unlucky noise draw.
func (dec *Decryptor) DecryptBlock(ct *Ciphertext) (bits []uint8, err error) {

	params := dec.params
	if len(ct.U) != params.K() {
		return nil, fmt.Errorf("pke: %w: ciphertext u has %d elements, want %d", ErrShapeMismatch, len(ct.U), params.K())
	}
	if ct.V.N() != params.N() {
		return nil, fmt.Errorf("pke: %w: ciphertext v has %d coefficients, want %d", ErrShapeMismatch, ct.V.N(), params.N())
	}

	ringQ := params.RingQ()
	ringQ.DotProduct(dec.sk.S, ct.U, dec.buffD)
	ringQ.Sub(ct.V, dec.buffD, dec.buffD)

	return dec.encoder.DecodeBlock(dec.buffD), nil
}

// DecryptBytes decrypts a sequence of ciphertext blocks back into a message
// of numBytes bytes, the length carried alongside the ciphertext by the
// caller. Trailing padding bits beyond numBytes are discarded.
func (dec *Decryptor) DecryptBytes(cts []*Ciphertext, numBytes int) (msg []byte, err error) {

	n := dec.params.N()

	if numBytes < 0 || numBytes*8 > len(cts)*n {
		return nil, fmt.Errorf("pke: %w: %d ciphertext blocks of %d bits cannot carry %d bytes", ErrShapeMismatch, len(cts), n, numBytes)
	}

	bits := make([]uint8, 0, len(cts)*n)
	for i, ct := range cts {
		blockBits, err := dec.DecryptBlock(ct)
		if err != nil {
			return nil, fmt.Errorf("pke: decrypt block %d: %w", i, err)
		}
		bits = append(bits, blockBits...)
	}

	return BytesFromBits(bits)[:numBytes], nil
}

// ShallowCopy creates a copy of the Decryptor sharing the secret key and
// parameters but holding fresh buffers. The receiver and the returned
// Decryptor can be used concurrently.
func (dec *Decryptor) ShallowCopy() *Decryptor {
	return NewDecryptor(dec.params, dec.sk)
}

// WithKey creates a copy of the Decryptor with a new decryption key.
func (dec *Decryptor) WithKey(sk *SecretKey) *Decryptor {
	return NewDecryptor(dec.params, sk)
}
