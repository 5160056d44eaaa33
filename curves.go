// Copyright (c) 2024 The goecdsa developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ecdsa

import "math/big"

// curveSpec holds the FIPS 186-4 domain parameters for one named curve. a
// is always p-3 for these curves, so only b, the prime p, the generator,
// and the generator order n are tabulated.
type curveSpec struct {
	name   string
	p, n   *big.Int
	b      *big.Int
	gx, gy *big.Int
}

func mustDec(s string) *big.Int {
	n, ok := new(big.Int).SetString(s, 10)
	if !ok {
		panic("ecdsa: invalid decimal constant: " + s)
	}
	return n
}

func mustHex(s string) *big.Int {
	n, ok := new(big.Int).SetString(s, 16)
	if !ok {
		panic("ecdsa: invalid hex constant: " + s)
	}
	return n
}

var p192Spec = curveSpec{
	name: "P-192",
	p:    mustDec("6277101735386680763835789423207666416083908700390324961279"),
	n:    mustDec("6277101735386680763835789423176059013767194773182842284081"),
	b:    mustHex("64210519e59c80e70fa7e9ab72243049feb8deecc146b9b1"),
	gx:   mustHex("188da80eb03090f67cbf20eb43a18800f4ff0afd82ff1012"),
	gy:   mustHex("07192b95ffc8da78631011ed6b24cdd573f977a11e794811"),
}

var p224Spec = curveSpec{
	name: "P-224",
	p:    mustDec("26959946667150639794667015087019630673557916260026308143510066298881"),
	n:    mustDec("26959946667150639794667015087019625940457807714424391721682722368061"),
	b:    mustHex("b4050a850c04b3abf54132565044b0b7d7bfd8ba270b39432355ffb4"),
	gx:   mustHex("b70e0cbd6bb4bf7f321390b94a03c1d356c21122343280d6115c1d21"),
	gy:   mustHex("bd376388b5f723fb4c22dfe6cd4375a05a07476444d5819985007e34"),
}

var p256Spec = curveSpec{
	name: "P-256",
	p:    mustDec("115792089210356248762697446949407573530086143415290314195533631308867097853951"),
	n:    mustDec("115792089210356248762697446949407573529996955224135760342422259061068512044369"),
	b:    mustHex("5ac635d8aa3a93e7b3ebbd55769886bc651d06b0cc53b0f63bce3c3e27d2604b"),
	gx:   mustHex("6b17d1f2e12c4247f8bce6e563a440f277037d812deb33a0f4a13945d898c296"),
	gy:   mustHex("4fe342e2fe1a7f9b8ee7eb4a7c0f9e162bce33576b315ececbb6406837bf51f5"),
}

var p384Spec = curveSpec{
	name: "P-384",
	p:    mustDec("39402006196394479212279040100143613805079739270465446667948293404245721771496870329047266088258938001861606973112319"),
	n:    mustDec("39402006196394479212279040100143613805079739270465446667946905279627659399113263569398956308152294913554433653942643"),
	b:    mustHex("b3312fa7e23ee7e4988e056be3f82d19181d9c6efe8141120314088f5013875ac656398d8a2ed19d2a85c8edd3ec2aef"),
	gx:   mustHex("aa87ca22be8b05378eb1c71ef320ad746e1d3b628ba79b9859f741e082542a385502f25dbf55296c3a545e3872760ab7"),
	gy:   mustHex("3617de4a96262c6f5d9e98bf9292dc29f8f41dbd289a147ce9da3113b5f0b8c00a60b1ce1d7e819d7a431d7c90ea0e5f"),
}

var p521Spec = curveSpec{
	name: "P-521",
	p:    mustDec("6864797660130609714981900799081393217269435300143305409394463459185543183397656052122559640661454554977296311391480858037121987999716643812574028291115057151"),
	n:    mustDec("6864797660130609714981900799081393217269435300143305409394463459185543183397655394245057746333217197532963996371363321113864768612440380340372808892707005449"),
	b:    mustHex("051953eb9618e1c9a1f929a21a0b68540eea2da725b99b315f3b8b489918ef109e156193951ec7e937b1652c0bd3bb1bf073573df883d2c34f1ef451fd46b503f00"),
	gx:   mustHex("c6858e06b70404e9cd9e3ecb662395b4429c648139053fb521f828af606b4d3dbaa14b5e77efe75928fe1dc127a2ffa8de3348b3c1856a429bf97e7e31c2e5bd66"),
	gy:   mustHex("11839296a789a3bc0045c8a5fb42c7d1bd998f54449579b446817afbd17273e662c97ee72995ef42640c550b9013fad0761353c7086a272c24088be94769fd16650"),
}

// buildParams constructs a's = p-3 (as required by every FIPS 186-4 prime
// curve) and assembles the curve and ECDSAParams for spec.
func buildParams(spec curveSpec, opts ...Option) (*ECDSAParams, error) {
	a := new(big.Int).Sub(spec.p, big.NewInt(3))

	curve, err := NewCurve(a, spec.b, spec.p)
	if err != nil {
		return nil, err
	}

	g, err := curve.Point(spec.gx, spec.gy)
	if err != nil {
		return nil, err
	}

	return NewECDSAParams(curve, g, spec.n, opts...)
}

// P192 returns ECDSAParams for the FIPS 186-4 P-192 curve, with SHA-256 as
// the default hash unless overridden via WithHash.
func P192(opts ...Option) (*ECDSAParams, error) { return buildParams(p192Spec, opts...) }

// P224 returns ECDSAParams for the FIPS 186-4 P-224 curve, with SHA-256 as
// the default hash unless overridden via WithHash.
func P224(opts ...Option) (*ECDSAParams, error) { return buildParams(p224Spec, opts...) }

// P256 returns ECDSAParams for the FIPS 186-4 P-256 curve, with SHA-256 as
// the default hash unless overridden via WithHash.
func P256(opts ...Option) (*ECDSAParams, error) { return buildParams(p256Spec, opts...) }

// P384 returns ECDSAParams for the FIPS 186-4 P-384 curve, with SHA-256 as
// the default hash unless overridden via WithHash.
func P384(opts ...Option) (*ECDSAParams, error) { return buildParams(p384Spec, opts...) }

// P521 returns ECDSAParams for the FIPS 186-4 P-521 curve, with SHA-256 as
// the default hash unless overridden via WithHash.
func P521(opts ...Option) (*ECDSAParams, error) { return buildParams(p521Spec, opts...) }
