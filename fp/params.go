package fp

import "qfold/bigint"

// The field characteristic is the SIKEp434 prime p = 2^216 * 3^137 - 1,
// 434 bits wide, stored in seven little-endian limbs.
var modulus = bigint.Int{
	0xFFFFFFFFFFFFFFFF,
	0xFFFFFFFFFFFFFFFF,
	0xFFFFFFFFFFFFFFFF,
	0xFDC1767AE2FFFFFF,
	0x783158AEA3FDC176,
	0x5FD681C520567BC6,
	0x0002341F27177344,
}

// mu = -p^-1 mod 2^64. The low limb of p is 2^64 - 1, so mu = 1.
const mu uint64 = 1

var (
	// rSquared = R^2 mod p with R = 2^448, obtained by 896 modular doublings
	// of 1. Used to enter the Montgomery domain.
	rSquared = computeRSquared()

	// montOne is 1 in Montgomery form, i.e. R mod p.
	montOne = computeMontOne()

	// pMinus2 is the Fermat inversion exponent.
	pMinus2 = computePMinus2()

	// sqrtExp is (p+1)/4, valid because p = 3 (mod 4).
	sqrtExp = computeSqrtExp()
)

func computeRSquared() bigint.Int {
	r := bigint.FromUint64(1)
	for i := 0; i < 2*bigint.Limbs*64; i++ {
		carry := r.Add(&r, &r)
		if carry != 0 || r.Cmp(&modulus) >= 0 {
			r.Sub(&r, &modulus)
		}
	}
	return r
}

func computeMontOne() bigint.Int {
	one := Element(bigint.FromUint64(1))
	r2 := Element(rSquared)
	var z Element
	z.Mul(&one, &r2)
	return bigint.Int(z)
}

func computePMinus2() bigint.Int {
	two := bigint.FromUint64(2)
	var e bigint.Int
	e.Sub(&modulus, &two)
	return e
}

func computeSqrtExp() bigint.Int {
	one := bigint.FromUint64(1)
	var e bigint.Int
	e.Add(&modulus, &one)
	e.Rsh(&e, 2)
	return e
}
