package accumulator

import (
	"encoding/binary"
	"fmt"

	"qfold/bigint"
	"qfold/fp2"
)

// Wire layout: u32 commitment byte length, commitment bytes, u_acc as two
// field elements, instance as two field elements, depth, fs_state. All
// integers little-endian, limb 0 first.

// MarshalBinary serializes p using the scheme's commitment encoding.
func MarshalBinary(s Scheme, p Proof) []byte {
	cb := s.Bytes(p.C)
	out := make([]byte, 0, 4+len(cb)+4*bigint.Size+16)

	var l [4]byte
	binary.LittleEndian.PutUint32(l[:], uint32(len(cb)))
	out = append(out, l[:]...)
	out = append(out, cb...)
	out = appendElement(out, p.UAcc)
	out = appendElement(out, p.Instance)

	var u [8]byte
	binary.LittleEndian.PutUint64(u[:], p.Depth)
	out = append(out, u[:]...)
	binary.LittleEndian.PutUint64(u[:], p.FSState)
	out = append(out, u[:]...)
	return out
}

// UnmarshalBinary decodes a proof serialized by MarshalBinary.
func UnmarshalBinary(s Scheme, data []byte) (Proof, error) {
	var p Proof
	if len(data) < 4 {
		return p, fmt.Errorf("accumulator: proof truncated: %d bytes", len(data))
	}
	clen := int(binary.LittleEndian.Uint32(data))
	data = data[4:]
	want := clen + 4*bigint.Size + 16
	if len(data) != want {
		return p, fmt.Errorf("accumulator: proof length %d, want %d", len(data), want)
	}

	c, err := s.SetBytes(data[:clen])
	if err != nil {
		return p, fmt.Errorf("accumulator: commitment: %w", err)
	}
	data = data[clen:]

	p.C = c
	p.UAcc, data = readElement(data)
	p.Instance, data = readElement(data)
	p.Depth = binary.LittleEndian.Uint64(data)
	p.FSState = binary.LittleEndian.Uint64(data[8:])
	return p, nil
}

func appendElement(out []byte, e fp2.Element) []byte {
	b0 := e.C0.Bytes()
	out = append(out, b0[:]...)
	b1 := e.C1.Bytes()
	return append(out, b1[:]...)
}

func readElement(data []byte) (fp2.Element, []byte) {
	var e fp2.Element
	e.C0.SetBytes(data[:bigint.Size])
	e.C1.SetBytes(data[bigint.Size : 2*bigint.Size])
	return e, data[2*bigint.Size:]
}
