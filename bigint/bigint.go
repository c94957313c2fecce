// Package bigint implements the fixed-width unsigned integer underlying the
// p434 prime field: seven 64-bit limbs, little-endian, copied by value.
// Nothing here reduces modulo anything; callers that need field semantics
// keep their values below the modulus themselves.
package bigint

import (
	"fmt"
	"math/bits"
)

// Limbs is the number of 64-bit words in an Int.
const Limbs = 7

// Size is the byte width of a serialized Int.
const Size = Limbs * 8

// Int is a 448-bit unsigned integer stored as little-endian 64-bit limbs.
type Int [Limbs]uint64

// FromUint64 returns the Int whose low limb is v.
func FromUint64(v uint64) Int {
	var z Int
	z[0] = v
	return z
}

// Add sets z = x + y mod 2^448 and returns the outgoing carry (0 or 1).
// z may alias x or y.
func (z *Int) Add(x, y *Int) uint64 {
	var c uint64
	for i := 0; i < Limbs; i++ {
		z[i], c = bits.Add64(x[i], y[i], c)
	}
	return c
}

// Sub sets z = x - y mod 2^448 and returns the outgoing borrow (0 or 1).
// z may alias x or y.
func (z *Int) Sub(x, y *Int) uint64 {
	var b uint64
	for i := 0; i < Limbs; i++ {
		z[i], b = bits.Sub64(x[i], y[i], b)
	}
	return b
}

// Cmp compares x and y as integers: -1 if x < y, 0 if equal, 1 if x > y.
func (x *Int) Cmp(y *Int) int {
	for i := Limbs - 1; i >= 0; i-- {
		if x[i] > y[i] {
			return 1
		}
		if x[i] < y[i] {
			return -1
		}
	}
	return 0
}

// IsZero reports whether every limb is zero.
func (x *Int) IsZero() bool {
	var acc uint64
	for i := 0; i < Limbs; i++ {
		acc |= x[i]
	}
	return acc == 0
}

// Bit returns bit i of x; bits at or beyond 448 read as false.
func (x *Int) Bit(i int) bool {
	if i < 0 || i >= Limbs*64 {
		return false
	}
	return (x[i/64]>>(i%64))&1 == 1
}

// Rsh sets z = x >> k for 0 <= k < 64. z may alias x.
func (z *Int) Rsh(x *Int, k uint) {
	if k == 0 {
		*z = *x
		return
	}
	for i := 0; i < Limbs-1; i++ {
		z[i] = x[i]>>k | x[i+1]<<(64-k)
	}
	z[Limbs-1] = x[Limbs-1] >> k
}

// Bytes returns the little-endian byte encoding, limb 0 first.
func (x *Int) Bytes() [Size]byte {
	var out [Size]byte
	for i := 0; i < Limbs; i++ {
		for j := 0; j < 8; j++ {
			out[i*8+j] = byte(x[i] >> (8 * j))
		}
	}
	return out
}

// SetBytes fills z from a little-endian encoding of at most Size bytes.
func (z *Int) SetBytes(b []byte) *Int {
	*z = Int{}
	n := len(b)
	if n > Size {
		n = Size
	}
	for i := 0; i < n; i++ {
		z[i/8] |= uint64(b[i]) << (8 * (i % 8))
	}
	return z
}

// String formats x as 0x-prefixed big-endian hex.
func (x Int) String() string {
	s := "0x"
	for i := Limbs - 1; i >= 0; i-- {
		s += fmt.Sprintf("%016x", x[i])
	}
	return s
}
