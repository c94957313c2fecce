// Package transcript implements the Fiat–Shamir transcript: a duplex
// sponge over Keccak-f[1600] with a 136-byte rate and 512-bit capacity.
// Absorption XORs bytes into the rate window at a running cursor and
// permutes whenever the window fills; squeezing forces a permutation (the
// domain separation between absorb and squeeze) and reads field elements
// off the state, reduced generically modulo p.
//
// A Transcript is mutated in place and must not be shared between
// concurrent logical sessions. Identical absorbed byte sequences always
// squeeze identical output.
package transcript

import (
	"qfold/bigint"
	"qfold/folding"
	"qfold/fp"
	"qfold/fp2"
)

// Rate is the sponge rate in bytes (1088 bits).
const Rate = 136

// Transcript is the duplex sponge state plus the absorption cursor.
type Transcript struct {
	state [25]uint64
	pt    int
}

// New returns an empty transcript.
func New() *Transcript {
	return &Transcript{}
}

func (t *Transcript) permute() {
	keccakF1600(&t.state)
	t.pt = 0
}

// AbsorbBytes XORs data into the rate window byte by byte, permuting each
// time the window fills.
func (t *Transcript) AbsorbBytes(data []byte) {
	for _, b := range data {
		t.state[t.pt/8] ^= uint64(b) << (8 * (t.pt % 8))
		t.pt++
		if t.pt == Rate {
			t.permute()
		}
	}
}

// AbsorbUint64 absorbs v in little-endian order.
func (t *Transcript) AbsorbUint64(v uint64) {
	var buf [8]byte
	for i := 0; i < 8; i++ {
		buf[i] = byte(v >> (8 * i))
	}
	t.AbsorbBytes(buf[:])
}

// AbsorbElement absorbs an extension element: c0 limbs little-endian,
// then c1.
func (t *Transcript) AbsorbElement(e fp2.Element) {
	b0 := e.C0.Bytes()
	t.AbsorbBytes(b0[:])
	b1 := e.C1.Bytes()
	t.AbsorbBytes(b1[:])
}

// AbsorbWitness absorbs a relaxed witness in the fixed field order
// JStart, JEnd, U.
func (t *Transcript) AbsorbWitness(w folding.Witness) {
	t.AbsorbElement(w.JStart)
	t.AbsorbElement(w.JEnd)
	t.AbsorbElement(w.U)
}

// Squeeze derives a challenge: one forced permutation, then two field
// elements' worth of state bytes, each reduced into the field through the
// generic wide reduction. The transcript can keep absorbing afterwards;
// the forced permutation separates the squeezed output from whatever
// follows.
func (t *Transcript) Squeeze() fp2.Element {
	t.permute()

	var out fp2.Element
	out.C0 = t.readElement(0)
	out.C1 = t.readElement(bigint.Size)
	return out
}

func (t *Transcript) readElement(offset int) fp.Element {
	var buf [bigint.Size]byte
	for i := 0; i < bigint.Size; i++ {
		pos := offset + i
		buf[i] = byte(t.state[pos/8] >> (8 * (pos % 8)))
	}
	var wide bigint.Int
	wide.SetBytes(buf[:])
	var e fp.Element
	e.FromWide(&wide)
	return e
}
