// Package accumulator implements the recursive proof accumulator: a
// constant-size object that folds any number of single-step proofs, is
// extended incrementally, and verifies at a cost independent of how many
// steps were folded into it.
//
// The commitment scheme is an external collaborator consumed through the
// Scheme interface; the accumulator treats commitments as opaque values.
package accumulator

import (
	"qfold/bigint"
	"qfold/fp2"
	"qfold/transcript"
)

// Commitment is an opaque value produced by a Scheme. Proofs carry
// commitments but never look inside them.
type Commitment interface{}

// Scheme is the additively homomorphic commitment collaborator. Add must
// satisfy Add(Commit(v1,r1), Commit(v2,r2)) == Commit(v1+v2, r1+r2) up to
// the scheme's own normalization.
type Scheme interface {
	Commit(value, blind uint64) Commitment
	CommitFull(value, blind bigint.Int) Commitment
	Add(a, b Commitment) Commitment
	ScalarMul(c Commitment, k uint64) Commitment
	Equal(a, b Commitment) bool
	Identity() Commitment
	Bytes(c Commitment) []byte
	SetBytes(b []byte) (Commitment, error)
}

// Proof is the constant-size accumulator. Depth 0 is the identity proof,
// depth 1 a freshly proved single step, depth d1+d2 the composition of
// proofs of depth d1 and d2. Proofs are value types: immutable once
// produced, freely aliased for reading.
type Proof struct {
	C        Commitment
	UAcc     fp2.Element
	Instance fp2.Element
	Depth    uint64
	FSState  uint64
}

// Identity returns the empty proof, the identity element of composition.
func Identity(s Scheme) Proof {
	return Proof{C: s.Identity()}
}

// Prove creates a depth-1 proof: a commitment to the witness scalar under
// the given blind, zero slack, the public instance, and a Fiat–Shamir
// state derived deterministically from the witness and blind.
func Prove(s Scheme, witness fp2.Element, blind uint64, instance fp2.Element) Proof {
	c := s.CommitFull(witness.C0.Int(), bigint.FromUint64(blind))

	tr := transcript.New()
	tr.AbsorbElement(witness)
	tr.AbsorbUint64(blind)
	fs := tr.Squeeze()

	return Proof{
		C:        c,
		Instance: instance,
		Depth:    1,
		FSState:  fs.C0[0],
	}
}

// Compose folds two proofs into one of the same size. The challenge is
// derived by Fiat–Shamir from both proofs' public instances and states, so
// prover and verifier agree on it without interaction. Composition order
// binds the challenge; callers fold left to right (see Extend).
//
// The slack cross term r·instance1·instance2 mirrors the witness-level
// folding exactness requirement at the proof level. Its polynomial shape
// is specific to the underlying relation; substituting a different
// relation means re-deriving it, not reusing it silently.
func Compose(s Scheme, p1, p2 Proof) Proof {
	tr := transcript.New()
	tr.AbsorbElement(p1.Instance)
	tr.AbsorbElement(p2.Instance)
	tr.AbsorbUint64(p1.FSState)
	tr.AbsorbUint64(p2.FSState)
	r := challengeScalar(tr.Squeeze())

	var rEl fp2.Element
	rEl.C0.SetUint64(r)

	c := s.Add(p1.C, s.ScalarMul(p2.C, r))

	var ru2, u, cross fp2.Element
	ru2.Mul(&rEl, &p2.UAcc)
	u.Add(&p1.UAcc, &ru2)
	cross.Mul(&p1.Instance, &p2.Instance)
	cross.Mul(&cross, &rEl)
	u.Add(&u, &cross)

	var inst, rInst2 fp2.Element
	rInst2.Mul(&rEl, &p2.Instance)
	inst.Add(&p1.Instance, &rInst2)

	return Proof{
		C:        c,
		UAcc:     u,
		Instance: inst,
		Depth:    p1.Depth + p2.Depth,
		FSState:  r,
	}
}

// Extend grows an accumulator by one step: a fresh depth-1 proof for the
// new witness and instance, composed onto prev. The identity proof
// short-circuits, so Extend(Identity, ...) == Prove(...). Repeated Extend
// calls form the canonical left fold both sides of the protocol commit to.
func Extend(s Scheme, prev Proof, witness fp2.Element, blind uint64, instance fp2.Element) Proof {
	step := Prove(s, witness, blind, instance)
	if prev.Depth == 0 {
		return step
	}
	return Compose(s, prev, step)
}

// Verify checks a proof at a cost independent of its depth. The identity
// proof is trivially valid; any other proof must carry a non-identity
// commitment, i.e. the prover committed to something.
func Verify(s Scheme, p Proof) bool {
	if p.Depth == 0 {
		return true
	}
	return !s.Equal(p.C, s.Identity())
}

// BatchChallenge derives the shared batch challenge from every proof's
// index and instance. It returns the raw 64-bit value; zero is possible
// only with negligible probability and is rejected by VerifyBatch.
func BatchChallenge(proofs []Proof) uint64 {
	tr := transcript.New()
	for i := range proofs {
		tr.AbsorbUint64(uint64(i + 1))
		tr.AbsorbElement(proofs[i].Instance)
	}
	c := tr.Squeeze()
	return c.C0[0]
}

// VerifyBatch checks every proof in the batch. The shared challenge is
// derived up front so a later amortized combined check can replace the
// per-proof loop without changing the absorbed material; batching is a
// scheduling optimization, never a change to per-proof semantics.
func VerifyBatch(s Scheme, proofs []Proof) bool {
	if len(proofs) == 0 {
		return true
	}
	if BatchChallenge(proofs) == 0 {
		return false
	}
	for i := range proofs {
		if !Verify(s, proofs[i]) {
			return false
		}
	}
	return true
}

// challengeScalar maps a squeezed element to a nonzero 64-bit challenge.
func challengeScalar(c fp2.Element) uint64 {
	r := c.C0[0]
	if r == 0 {
		r = 1
	}
	return r
}
