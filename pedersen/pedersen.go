// Package pedersen implements the commitment collaborator consumed by the
// accumulator: C = [value]·G + [blind]·H over the bn254 twisted Edwards
// curve, with generators derived from fixed SHAKE-256 domain tags. Curve
// selection and point formulas are delegated entirely to the curve
// library; this package only combines them.
package pedersen

import (
	"fmt"
	"math/big"

	"qfold/accumulator"
	"qfold/bigint"

	"github.com/consensys/gnark-crypto/ecc/bn254/twistededwards"
	"golang.org/x/crypto/sha3"
)

const (
	tagG = "qfold/pedersen/generator-G"
	tagH = "qfold/pedersen/generator-H"
)

// Scheme holds the two generators and the group order. It is safe for
// concurrent use: all fields are immutable after New.
type Scheme struct {
	g, h  twistededwards.PointAffine
	order *big.Int
}

var _ accumulator.Scheme = (*Scheme)(nil)

// New derives the generators from their domain tags and returns a ready
// scheme.
func New() *Scheme {
	params := twistededwards.GetEdwardsCurve()
	order := new(big.Int).Set(&params.Order)
	return &Scheme{
		g:     deriveGenerator(&params.Base, order, tagG),
		h:     deriveGenerator(&params.Base, order, tagH),
		order: order,
	}
}

// deriveGenerator hashes the tag to a scalar and multiplies the curve base
// point, so neither generator has a known discrete log relative to a
// chosen value.
func deriveGenerator(base *twistededwards.PointAffine, order *big.Int, tag string) twistededwards.PointAffine {
	h := sha3.NewShake256()
	h.Write([]byte(tag))
	buf := make([]byte, 64)
	h.Read(buf)

	k := new(big.Int).SetBytes(buf)
	k.Mod(k, order)
	if k.Sign() == 0 {
		k.SetInt64(1)
	}
	var p twistededwards.PointAffine
	p.ScalarMultiplication(base, k)
	return p
}

// Commit returns [value]·G + [blind]·H for 64-bit scalars.
func (s *Scheme) Commit(value, blind uint64) accumulator.Commitment {
	return s.commit(new(big.Int).SetUint64(value), new(big.Int).SetUint64(blind))
}

// CommitFull is the full-width variant: both scalars are 448-bit integers
// reduced modulo the group order.
func (s *Scheme) CommitFull(value, blind bigint.Int) accumulator.Commitment {
	return s.commit(s.toScalar(value), s.toScalar(blind))
}

func (s *Scheme) commit(v, b *big.Int) accumulator.Commitment {
	vg := s.scalarPoint(&s.g, v)
	bh := s.scalarPoint(&s.h, b)
	var c twistededwards.PointAffine
	c.Add(&vg, &bh)
	return c
}

// Add is the homomorphic combination of two commitments.
func (s *Scheme) Add(a, b accumulator.Commitment) accumulator.Commitment {
	pa, pb := point(a), point(b)
	var c twistededwards.PointAffine
	c.Add(&pa, &pb)
	return c
}

// ScalarMul returns [k]·c.
func (s *Scheme) ScalarMul(c accumulator.Commitment, k uint64) accumulator.Commitment {
	p := point(c)
	return s.scalarPoint(&p, new(big.Int).SetUint64(k))
}

// Equal compares two commitments.
func (s *Scheme) Equal(a, b accumulator.Commitment) bool {
	pa, pb := point(a), point(b)
	return pa.Equal(&pb)
}

// Identity returns the identity commitment (the curve's neutral point).
func (s *Scheme) Identity() accumulator.Commitment {
	return identityPoint()
}

// Bytes returns the compressed point encoding of c.
func (s *Scheme) Bytes(c accumulator.Commitment) []byte {
	p := point(c)
	b := p.Bytes()
	return b[:]
}

// SetBytes decodes a commitment produced by Bytes.
func (s *Scheme) SetBytes(b []byte) (accumulator.Commitment, error) {
	var p twistededwards.PointAffine
	if _, err := p.SetBytes(b); err != nil {
		return nil, fmt.Errorf("pedersen: decode commitment: %w", err)
	}
	return p, nil
}

func (s *Scheme) scalarPoint(base *twistededwards.PointAffine, k *big.Int) twistededwards.PointAffine {
	k = new(big.Int).Mod(k, s.order)
	if k.Sign() == 0 {
		return identityPoint()
	}
	var p twistededwards.PointAffine
	p.ScalarMultiplication(base, k)
	return p
}

func (s *Scheme) toScalar(v bigint.Int) *big.Int {
	le := v.Bytes()
	var be [bigint.Size]byte
	for i := 0; i < bigint.Size; i++ {
		be[i] = le[bigint.Size-1-i]
	}
	return new(big.Int).SetBytes(be[:])
}

func point(c accumulator.Commitment) twistededwards.PointAffine {
	p, ok := c.(twistededwards.PointAffine)
	if !ok {
		panic("pedersen: commitment produced by a different scheme")
	}
	return p
}

func identityPoint() twistededwards.PointAffine {
	var p twistededwards.PointAffine
	p.X.SetZero()
	p.Y.SetOne()
	return p
}
