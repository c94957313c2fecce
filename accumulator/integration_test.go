package accumulator_test

import (
	"testing"

	"qfold/accumulator"
	"qfold/fp2"
	"qfold/pedersen"
)

func TestThreeProofComposition(t *testing.T) {
	s := pedersen.New()

	p1 := accumulator.Prove(s, fp2.FromUint64(11, 1), 101, fp2.FromUint64(1, 0))
	p2 := accumulator.Prove(s, fp2.FromUint64(22, 2), 102, fp2.FromUint64(2, 0))
	p3 := accumulator.Prove(s, fp2.FromUint64(33, 3), 103, fp2.FromUint64(3, 0))

	if !accumulator.Verify(s, p1) {
		t.Fatal("p1 must verify")
	}

	p12 := accumulator.Compose(s, p1, p2)
	if !accumulator.Verify(s, p12) {
		t.Fatal("compose(p1, p2) must verify")
	}

	p123 := accumulator.Compose(s, p12, p3)
	if p123.Depth != 3 {
		t.Fatalf("depth = %d, want 3", p123.Depth)
	}
	if !accumulator.Verify(s, p123) {
		t.Fatal("depth-3 proof must verify")
	}
}

func TestIVCWithRealScheme(t *testing.T) {
	s := pedersen.New()
	acc := accumulator.Identity(s)
	for i := uint64(0); i < 5; i++ {
		acc = accumulator.Extend(s, acc, fp2.FromUint64(i+10, i), 200+i, fp2.FromUint64(i+1, 0))
	}
	if acc.Depth != 5 {
		t.Fatalf("depth = %d, want 5", acc.Depth)
	}
	if !accumulator.Verify(s, acc) {
		t.Fatal("five-step accumulator must verify")
	}

	data := accumulator.MarshalBinary(s, acc)
	back, err := accumulator.UnmarshalBinary(s, data)
	if err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !accumulator.Verify(s, back) {
		t.Fatal("deserialized accumulator must verify")
	}
}

func TestBatchWithRealScheme(t *testing.T) {
	s := pedersen.New()
	var proofs []accumulator.Proof
	for i := uint64(0); i < 6; i++ {
		proofs = append(proofs, accumulator.Prove(s, fp2.FromUint64(i+1, 0), 300+i, fp2.FromUint64(i, 0)))
	}
	if !accumulator.VerifyBatch(s, proofs) {
		t.Fatal("valid batch must verify")
	}
	proofs[4].C = s.Identity()
	if accumulator.VerifyBatch(s, proofs) {
		t.Fatal("tampered batch must fail")
	}
}
