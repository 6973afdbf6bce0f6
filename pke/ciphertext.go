package pke

import (
	"encoding/binary"

	"github.com/zeebo/blake3"

	"babykyber/ring"
)

// DigestSize is the byte length of a ciphertext digest.
const DigestSize = 32

// Ciphertext is one encrypted N-bit block (u, v). It carries no integrity
// protection: any well-shaped pair of ring elements decrypts to some bit
// block, including adversarially modified ones.
type Ciphertext struct {
	U ring.PolyVector
	V ring.Poly
}

// NewCiphertext allocates a zero ciphertext of the correct dimensions.
func NewCiphertext(params Parameters) *Ciphertext {
	return &Ciphertext{
		U: params.RingQ().NewPolyVector(params.K()),
		V: params.RingQ().NewPoly(),
	}
}

// CopyNew returns a deep copy of the ciphertext.
func (ct *Ciphertext) CopyNew() *Ciphertext {
	return &Ciphertext{U: ct.U.CopyNew(), V: ct.V.CopyNew()}
}

// Equal performs a coefficient-wise comparison.
func (ct *Ciphertext) Equal(other *Ciphertext) bool {
	return ct.U.Equal(other.U) && ct.V.Equal(other.V)
}

// Digest hashes a canonical encoding of the ciphertext with blake3. Two
// ciphertexts have the same digest exactly when they are coefficient-wise
// equal (up to hash collisions), which gives experiment harnesses a compact
// identity for their bookkeeping.
func (ct *Ciphertext) Digest() (digest [DigestSize]byte) {

	buf := make([]byte, 0, 8*(len(ct.U)+1)*(ct.V.N()+1))

	buf = binary.LittleEndian.AppendUint64(buf, uint64(len(ct.U)))
	for i := range ct.U {
		buf = binary.LittleEndian.AppendUint64(buf, uint64(ct.U[i].N()))
		for _, c := range ct.U[i] {
			buf = binary.LittleEndian.AppendUint64(buf, c)
		}
	}
	buf = binary.LittleEndian.AppendUint64(buf, uint64(ct.V.N()))
	for _, c := range ct.V {
		buf = binary.LittleEndian.AppendUint64(buf, c)
	}

	hasher := blake3.New()
	hasher.Write(buf)
	copy(digest[:], hasher.Sum(nil))
	return
}
