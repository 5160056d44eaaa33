// Copyright (c) 2024 The goecdsa developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ecdsa

import (
	"fmt"
	"math/big"
)

// Curve is an immutable short-Weierstrass curve y^2 = x^3 + ax + b over the
// prime field Fp. Two curves compare equal iff all three parameters match.
type Curve struct {
	a, b, p *big.Int
}

// NewCurve constructs a Curve from (a, b, p), reducing a and b modulo p.
// It fails with CurveSingular if the curve's discriminant is zero mod p.
func NewCurve(a, b, p *big.Int) (*Curve, error) {
	c := &Curve{
		a: new(big.Int).Mod(a, p),
		b: new(big.Int).Mod(b, p),
		p: new(big.Int).Set(p),
	}
	if c.isSingular() {
		return nil, makeError(CurveSingular, fmt.Sprintf("curve %s is singular", c))
	}
	return c, nil
}

// discriminant returns -16*(4a^3 + 27b^2) mod p.
func (c *Curve) discriminant() *big.Int {
	a3 := new(big.Int).Exp(c.a, big.NewInt(3), nil)
	a3.Mul(a3, big.NewInt(4))

	b2 := new(big.Int).Mul(c.b, c.b)
	b2.Mul(b2, big.NewInt(27))

	sum := new(big.Int).Add(a3, b2)
	sum.Mul(sum, big.NewInt(-16))
	return sum.Mod(sum, c.p)
}

func (c *Curve) isSingular() bool {
	return c.discriminant().Sign() == 0
}

// Equal reports whether two curves share the same (a, b, p).
func (c *Curve) Equal(other *Curve) bool {
	if c == other {
		return true
	}
	if c == nil || other == nil {
		return false
	}
	return c.a.Cmp(other.a) == 0 && c.b.Cmp(other.b) == 0 && c.p.Cmp(other.p) == 0
}

// Point constructs the affine point (x, y) on c. Coordinates are reduced
// modulo p before the curve equation is checked. It fails with
// PointNotOnCurve if y^2 != x^3 + ax + b (mod p).
func (c *Curve) Point(x, y *big.Int) (*Point, error) {
	p := &Point{
		curve: c,
		x:     new(big.Int).Mod(x, c.p),
		y:     new(big.Int).Mod(y, c.p),
	}
	if !p.IsOnCurve() {
		return nil, makeError(PointNotOnCurve, fmt.Sprintf("point %s is not on the curve", p))
	}
	return p, nil
}

// Infinity returns the point at infinity on c.
func (c *Curve) Infinity() *Point {
	return &Point{curve: c, infinity: true}
}

// String renders the curve in the conventional Y^2 = X^3 + aX + b [mod p]
// form. The exact format is not part of the package's contract.
func (c *Curve) String() string {
	return fmt.Sprintf("Y^2 = X^3 + %sX + %s [mod %s]", c.a, c.b, c.p)
}
