// Package modpoly provides the bivariate polynomial relation oracle
// consumed by the folding layer: Φ(X, Y) = Σ_i P_i(X) · Y^i with
// coefficients in F_p². The isogeny-degree-specific coefficient tables
// live with whoever supplies them; this package only evaluates.
package modpoly

import (
	"qfold/fp"
	"qfold/fp2"
)

// Poly is a dense univariate polynomial over F_p², lowest coefficient
// first.
type Poly struct {
	Coeffs []fp2.Element
}

// Eval evaluates p at x by Horner's rule.
func (p Poly) Eval(x fp2.Element) fp2.Element {
	if len(p.Coeffs) == 0 {
		return fp2.Zero()
	}
	acc := p.Coeffs[len(p.Coeffs)-1]
	for i := len(p.Coeffs) - 2; i >= 0; i-- {
		acc.Mul(&acc, &x)
		acc.Add(&acc, &p.Coeffs[i])
	}
	return acc
}

// Bivariate is Φ(X, Y) = Σ Rows[i](X) · Y^i.
type Bivariate struct {
	Rows []Poly
}

// Evaluate computes Φ(x, y). It satisfies the folding.Oracle contract:
// pure, no side effects, exact field arithmetic.
func (b Bivariate) Evaluate(x, y fp2.Element) fp2.Element {
	res := fp2.Zero()
	yPow := fp2.One()
	for _, row := range b.Rows {
		rx := row.Eval(x)
		var term fp2.Element
		term.Mul(&rx, &yPow)
		res.Add(&res, &term)
		yPow.Mul(&yPow, &y)
	}
	return res
}

// symmetricShift is the s parameter of the test relation below.
const symmetricShift = 7

// Symmetric2 returns the degree-2 symmetric relation
//
//	Φ(X, Y) = (X - Y)(X + Y - s) = X² - sX - Y² + sY,  s = 7,
//
// whose root pairs are exactly {x = y} and {x + y = s}. It stands in for
// a modular polynomial in tests and demos: nonlinear in each variable,
// symmetric, with root pairs that are cheap to enumerate.
func Symmetric2() Bivariate {
	var s, negS fp.Element
	s.SetUint64(symmetricShift)
	negS.Neg(&s)

	one := fp2.One()
	var negOne fp2.Element
	negOne.Neg(&one)

	row0 := Poly{Coeffs: []fp2.Element{
		fp2.Zero(),
		{C0: negS},
		one,
	}}
	row1 := Poly{Coeffs: []fp2.Element{{C0: s}}}
	row2 := Poly{Coeffs: []fp2.Element{negOne}}

	return Bivariate{Rows: []Poly{row0, row1, row2}}
}

// DiagonalPair returns the root pair (t, t) of the Symmetric2 relation.
func DiagonalPair(t fp2.Element) (x, y fp2.Element) {
	return t, t
}

// MirrorPair returns the root pair (t, s - t) of the Symmetric2 relation.
func MirrorPair(t fp2.Element) (x, y fp2.Element) {
	shift := fp2.FromUint64(symmetricShift, 0)
	var m fp2.Element
	m.Sub(&shift, &t)
	return t, m
}
