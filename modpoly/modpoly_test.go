package modpoly

import (
	"testing"

	"qfold/fp2"
)

func TestSymmetric2Roots(t *testing.T) {
	phi := Symmetric2()

	for _, v := range []uint64{0, 1, 2, 12345, 1 << 40} {
		p := fp2.FromUint64(v, v+3)

		x, y := DiagonalPair(p)
		if got := phi.Evaluate(x, y); !got.IsZero() {
			t.Fatalf("phi(t, t) != 0 for t = %d+%di", v, v+3)
		}

		x, y = MirrorPair(p)
		if got := phi.Evaluate(x, y); !got.IsZero() {
			t.Fatalf("phi(t, s-t) != 0 for t = %d+%di", v, v+3)
		}
	}
}

func TestSymmetric2NonRoot(t *testing.T) {
	phi := Symmetric2()
	x := fp2.FromUint64(3, 0)
	y := fp2.FromUint64(5, 0)
	// 3 != 5 and 3 + 5 != 7, so (3, 5) is not a root.
	if got := phi.Evaluate(x, y); got.IsZero() {
		t.Fatal("phi(3, 5) should be nonzero")
	}
}

func TestPolyEvalMatchesDirectExpansion(t *testing.T) {
	// p(x) = 2 + 3x + x², checked at x = 10: 2 + 30 + 100 = 132.
	p := Poly{Coeffs: []fp2.Element{
		fp2.FromUint64(2, 0),
		fp2.FromUint64(3, 0),
		fp2.FromUint64(1, 0),
	}}
	got := p.Eval(fp2.FromUint64(10, 0))
	want := fp2.FromUint64(132, 0)
	if !got.Equal(&want) {
		t.Fatalf("p(10) mismatch")
	}
}

func TestEmptyPoly(t *testing.T) {
	var p Poly
	if got := p.Eval(fp2.FromUint64(9, 9)); !got.IsZero() {
		t.Fatal("empty polynomial must evaluate to zero")
	}
}
