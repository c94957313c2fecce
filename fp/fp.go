// Package fp implements the prime field F_p for the 434-bit prime
// p = 2^216 * 3^137 - 1 in Montgomery representation. Elements are plain
// values with no shared state; every operation returns a result reduced
// below p provided its inputs are reduced. Feeding an unreduced element
// into an operation yields a deterministic but unspecified value, so
// callers construct elements only through SetUint64, ToMontgomery or
// FromWide.
package fp

import (
	"math/bits"

	"qfold/bigint"
)

// Element is a field element in Montgomery form: the limbs store x*R mod p
// with R = 2^448.
type Element bigint.Int

// Set copies x into z.
func (z *Element) Set(x *Element) *Element {
	*z = *x
	return z
}

// SetZero sets z to the additive identity.
func (z *Element) SetZero() *Element {
	*z = Element{}
	return z
}

// SetOne sets z to 1 in Montgomery form.
func (z *Element) SetOne() *Element {
	*z = Element(montOne)
	return z
}

// SetUint64 sets z to the Montgomery form of v.
func (z *Element) SetUint64(v uint64) *Element {
	raw := Element(bigint.FromUint64(v))
	return z.ToMontgomery(&raw)
}

// Int returns the raw limbs of z as stored (Montgomery domain).
func (z *Element) Int() bigint.Int {
	return bigint.Int(*z)
}

// Bytes returns the little-endian encoding of the stored limbs.
func (z *Element) Bytes() [bigint.Size]byte {
	v := bigint.Int(*z)
	return v.Bytes()
}

// SetBytes restores an element from the encoding produced by Bytes. The
// bytes are taken verbatim; feeding an encoding of a value >= p breaks the
// reduction invariant.
func (z *Element) SetBytes(b []byte) *Element {
	var v bigint.Int
	v.SetBytes(b)
	*z = Element(v)
	return z
}

// IsZero reports whether z is the additive identity.
func (z *Element) IsZero() bool {
	v := bigint.Int(*z)
	return v.IsZero()
}

// Equal reports limb-wise equality, which is value equality for reduced
// elements in a fixed domain.
func (z *Element) Equal(x *Element) bool {
	zv, xv := bigint.Int(*z), bigint.Int(*x)
	return zv.Cmp(&xv) == 0
}

// Add sets z = x + y mod p.
func (z *Element) Add(x, y *Element) *Element {
	xv, yv := bigint.Int(*x), bigint.Int(*y)
	var r bigint.Int
	carry := r.Add(&xv, &yv)
	if carry != 0 || r.Cmp(&modulus) >= 0 {
		r.Sub(&r, &modulus)
	}
	*z = Element(r)
	return z
}

// Sub sets z = x - y mod p.
func (z *Element) Sub(x, y *Element) *Element {
	xv, yv := bigint.Int(*x), bigint.Int(*y)
	var r bigint.Int
	if borrow := r.Sub(&xv, &yv); borrow != 0 {
		r.Add(&r, &modulus)
	}
	*z = Element(r)
	return z
}

// Neg sets z = -x mod p.
func (z *Element) Neg(x *Element) *Element {
	var zero Element
	return z.Sub(&zero, x)
}

// Mul sets z = x * y * R^-1 mod p (Montgomery multiplication). The full
// 14-limb product is computed first, then reduced limb by limb: each pass
// adds m*p with m = t[i]*mu, clearing the lowest live limb. One trailing
// conditional subtraction restores the < p invariant. The result is below
// p for any y < p and any x < R, which also covers FromWide inputs.
func (z *Element) Mul(x, y *Element) *Element {
	var t [2 * bigint.Limbs]uint64

	for i := 0; i < bigint.Limbs; i++ {
		var carry uint64
		for j := 0; j < bigint.Limbs; j++ {
			hi, lo := bits.Mul64(x[i], y[j])
			var c uint64
			lo, c = bits.Add64(lo, t[i+j], 0)
			hi += c
			lo, c = bits.Add64(lo, carry, 0)
			hi += c
			t[i+j] = lo
			carry = hi
		}
		t[i+bigint.Limbs] = carry
	}

	for i := 0; i < bigint.Limbs; i++ {
		m := t[i] * mu
		var carry uint64
		for j := 0; j < bigint.Limbs; j++ {
			hi, lo := bits.Mul64(m, modulus[j])
			var c uint64
			lo, c = bits.Add64(lo, t[i+j], 0)
			hi += c
			lo, c = bits.Add64(lo, carry, 0)
			hi += c
			t[i+j] = lo
			carry = hi
		}
		var c uint64
		t[i+bigint.Limbs], c = bits.Add64(t[i+bigint.Limbs], carry, 0)
		for k := i + bigint.Limbs + 1; c != 0 && k < len(t); k++ {
			t[k], c = bits.Add64(t[k], 0, c)
		}
	}

	var r bigint.Int
	copy(r[:], t[bigint.Limbs:])
	if r.Cmp(&modulus) >= 0 {
		r.Sub(&r, &modulus)
	}
	*z = Element(r)
	return z
}

// Square sets z = x^2 mod p.
func (z *Element) Square(x *Element) *Element {
	return z.Mul(x, x)
}

// Exp sets z = x^e mod p by fixed-length binary exponentiation over all
// 448 exponent bits.
func (z *Element) Exp(x *Element, e *bigint.Int) *Element {
	var res Element
	res.SetOne()
	b := *x
	for i := 0; i < bigint.Limbs*64; i++ {
		if e.Bit(i) {
			res.Mul(&res, &b)
		}
		b.Square(&b)
	}
	*z = res
	return z
}

// Inverse sets z = x^(p-2) mod p. The result for x = 0 is 0, which no
// caller may rely on: inversion of zero is outside the contract.
func (z *Element) Inverse(x *Element) *Element {
	return z.Exp(x, &pMinus2)
}

// Sqrt sets z = x^((p+1)/4) mod p, a square root of x whenever one exists.
// The primitive does not detect non-residues; callers square the result
// and compare against x before trusting it.
func (z *Element) Sqrt(x *Element) *Element {
	return z.Exp(x, &sqrtExp)
}

// ToMontgomery sets z to x*R mod p, interpreting x's limbs as a plain
// integer below p.
func (z *Element) ToMontgomery(x *Element) *Element {
	r2 := Element(rSquared)
	return z.Mul(x, &r2)
}

// FromMontgomery sets z to the plain integer represented by the Montgomery
// element x.
func (z *Element) FromMontgomery(x *Element) *Element {
	one := Element(bigint.FromUint64(1))
	return z.Mul(x, &one)
}

// FromWide sets z to the Montgomery form of v mod p for an arbitrary
// 448-bit v, reduced exactly through a single Montgomery multiplication by
// R^2. This is the generic byte-to-field path used by transcript squeezes.
func (z *Element) FromWide(v *bigint.Int) *Element {
	x := Element(*v)
	r2 := Element(rSquared)
	return z.Mul(&x, &r2)
}
