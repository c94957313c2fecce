// Package fp2 implements the quadratic extension F_p² = F_p(i) with
// i² = -1, built entirely from fp primitives. Elements are value types;
// no operation mutates its operands.
package fp2

import "qfold/fp"

// Element is c0 + c1*i with both components reduced fp elements.
type Element struct {
	C0, C1 fp.Element
}

// Zero returns the additive identity.
func Zero() Element {
	return Element{}
}

// One returns the multiplicative identity (Montgomery domain).
func One() Element {
	var e Element
	e.C0.SetOne()
	return e
}

// FromUint64 returns the extension element a + b*i in Montgomery form.
func FromUint64(a, b uint64) Element {
	var e Element
	e.C0.SetUint64(a)
	e.C1.SetUint64(b)
	return e
}

// IsZero reports whether both components are zero.
func (z *Element) IsZero() bool {
	return z.C0.IsZero() && z.C1.IsZero()
}

// Equal reports component-wise equality.
func (z *Element) Equal(x *Element) bool {
	return z.C0.Equal(&x.C0) && z.C1.Equal(&x.C1)
}

// Set copies x into z.
func (z *Element) Set(x *Element) *Element {
	*z = *x
	return z
}

// Add sets z = x + y.
func (z *Element) Add(x, y *Element) *Element {
	z.C0.Add(&x.C0, &y.C0)
	z.C1.Add(&x.C1, &y.C1)
	return z
}

// Sub sets z = x - y.
func (z *Element) Sub(x, y *Element) *Element {
	z.C0.Sub(&x.C0, &y.C0)
	z.C1.Sub(&x.C1, &y.C1)
	return z
}

// Neg sets z = -x.
func (z *Element) Neg(x *Element) *Element {
	z.C0.Neg(&x.C0)
	z.C1.Neg(&x.C1)
	return z
}

// Mul sets z = x * y using the three-multiplication complex product:
// t0 = a0*b0, t1 = a1*b1, t2 = (a0+a1)(b0+b1); real = t0 - t1,
// imag = t2 - t0 - t1.
func (z *Element) Mul(x, y *Element) *Element {
	var t0, t1, sa, sb, t2, re, im fp.Element
	t0.Mul(&x.C0, &y.C0)
	t1.Mul(&x.C1, &y.C1)
	sa.Add(&x.C0, &x.C1)
	sb.Add(&y.C0, &y.C1)
	t2.Mul(&sa, &sb)

	re.Sub(&t0, &t1)
	im.Sub(&t2, &t0)
	im.Sub(&im, &t1)

	z.C0 = re
	z.C1 = im
	return z
}

// Square sets z = x² via the two-multiplication specialization:
// real = (a0+a1)(a0-a1), imag = 2*a0*a1.
func (z *Element) Square(x *Element) *Element {
	var s, d, re, t, im fp.Element
	s.Add(&x.C0, &x.C1)
	d.Sub(&x.C0, &x.C1)
	re.Mul(&s, &d)
	t.Mul(&x.C0, &x.C1)
	im.Add(&t, &t)

	z.C0 = re
	z.C1 = im
	return z
}

// Inverse sets z = x^-1 = conj(x) / (a0² + a1²). Inverting zero yields
// zero, which is outside the contract exactly as in fp.
func (z *Element) Inverse(x *Element) *Element {
	var n0, n1, norm, invNorm, re, negC1, im fp.Element
	n0.Square(&x.C0)
	n1.Square(&x.C1)
	norm.Add(&n0, &n1)
	invNorm.Inverse(&norm)

	re.Mul(&x.C0, &invNorm)
	negC1.Neg(&x.C1)
	im.Mul(&negC1, &invNorm)

	z.C0 = re
	z.C1 = im
	return z
}

// MulScalar sets z = x * s for a base-field scalar s.
func (z *Element) MulScalar(x *Element, s *fp.Element) *Element {
	z.C0.Mul(&x.C0, s)
	z.C1.Mul(&x.C1, s)
	return z
}

// Sqrt sets z to a square root of x and reports whether one exists. When
// it returns false, z is unchanged.
//
// For a real input (c1 = 0) the root is either real or purely imaginary,
// decided by squaring back each candidate. Otherwise the two-stage norm
// construction applies: gamma = sqrt(c0²+c1²), delta = (c0±gamma)/2 with
// the + branch tried first, real part sqrt(delta), imaginary part
// c1 / (2*real).
func (z *Element) Sqrt(x *Element) bool {
	if x.C1.IsZero() {
		var r, r2 fp.Element
		r.Sqrt(&x.C0)
		r2.Square(&r)
		if r2.Equal(&x.C0) {
			z.C0 = r
			z.C1.SetZero()
			return true
		}
		var neg fp.Element
		neg.Neg(&x.C0)
		r.Sqrt(&neg)
		r2.Square(&r)
		if r2.Equal(&neg) {
			z.C0.SetZero()
			z.C1 = r
			return true
		}
		return false
	}

	var t0, t1, alpha, gamma, g2 fp.Element
	t0.Square(&x.C0)
	t1.Square(&x.C1)
	alpha.Add(&t0, &t1)
	gamma.Sqrt(&alpha)
	g2.Square(&gamma)
	if !g2.Equal(&alpha) {
		return false
	}

	var two, inv2, delta, re, reSq fp.Element
	two.SetUint64(2)
	inv2.Inverse(&two)
	delta.Add(&x.C0, &gamma)
	delta.Mul(&delta, &inv2)
	re.Sqrt(&delta)
	reSq.Square(&re)
	if !reSq.Equal(&delta) {
		delta.Sub(&x.C0, &gamma)
		delta.Mul(&delta, &inv2)
		re.Sqrt(&delta)
		reSq.Square(&re)
		if !reSq.Equal(&delta) {
			return false
		}
	}

	var twoRe, im fp.Element
	twoRe.Add(&re, &re)
	im.Inverse(&twoRe)
	im.Mul(&im, &x.C1)

	cand := Element{C0: re, C1: im}
	var check Element
	check.Square(&cand)
	if !check.Equal(x) {
		return false
	}
	*z = cand
	return true
}
