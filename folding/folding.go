// Package folding implements the relaxed-witness folding operator: two
// claims about a fixed bivariate relation are combined into one claim
// whose slack term exactly absorbs the nonlinearity introduced by the
// linear combination.
package folding

import "qfold/fp2"

// Oracle evaluates the fixed bivariate relation Φ over the extension
// field. Implementations must be pure: identical inputs always yield the
// identical output, with no side effects.
type Oracle interface {
	Evaluate(x, y fp2.Element) fp2.Element
}

// Witness is a relaxed claim: Φ(JStart, JEnd) = U. A fresh, honest claim
// carries U = 0; folding produces witnesses with nonzero slack. Witnesses
// are immutable value types; only Fold creates new ones.
type Witness struct {
	JStart fp2.Element
	JEnd   fp2.Element
	U      fp2.Element
}

// NewWitness returns the exact (slack-zero) claim for the pair (jStart, jEnd).
func NewWitness(jStart, jEnd fp2.Element) Witness {
	return Witness{JStart: jStart, JEnd: jEnd}
}

// Verify checks the relaxed relation by exact field equality.
func Verify(o Oracle, w Witness) bool {
	val := o.Evaluate(w.JStart, w.JEnd)
	return val.Equal(&w.U)
}

// Fold combines w1 and w2 under the challenge r:
//
//	jStart3 = jStart1 + r*jStart2
//	jEnd3   = jEnd1   + r*jEnd2
//	u3      = u1 + r*u2 + (Φ(j3) - Φ(w1) - r*Φ(w2))
//
// The cross term is computed, not assumed, so the folded witness satisfies
// Φ(jStart3, jEnd3) = u3 for any relation shape whenever w1 and w2 satisfy
// their own claims. r = 0 degenerates to w1's claim. Inputs are never
// mutated.
func Fold(o Oracle, w1, w2 Witness, r fp2.Element) Witness {
	var jStart3, jEnd3, t fp2.Element
	t.Mul(&r, &w2.JStart)
	jStart3.Add(&w1.JStart, &t)
	t.Mul(&r, &w2.JEnd)
	jEnd3.Add(&w1.JEnd, &t)

	phiNew := o.Evaluate(jStart3, jEnd3)
	phi1 := o.Evaluate(w1.JStart, w1.JEnd)
	phi2 := o.Evaluate(w2.JStart, w2.JEnd)

	var rPhi2, rhs, cross fp2.Element
	rPhi2.Mul(&r, &phi2)
	rhs.Add(&phi1, &rPhi2)
	cross.Sub(&phiNew, &rhs)

	var u3 fp2.Element
	t.Mul(&r, &w2.U)
	u3.Add(&w1.U, &t)
	u3.Add(&u3, &cross)

	return Witness{JStart: jStart3, JEnd: jEnd3, U: u3}
}
