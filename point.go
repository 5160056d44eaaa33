// Copyright (c) 2024 The goecdsa developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ecdsa

import (
	"fmt"
	"math/big"
)

// Point is a point on a Curve: either an affine coordinate pair (x, y) or
// the distinguished point at infinity. Points are value-like and
// immutable — every operation below returns a new Point rather than
// mutating its receiver.
type Point struct {
	curve    *Curve
	x, y     *big.Int
	infinity bool
}

// Curve returns the curve this point belongs to.
func (p *Point) Curve() *Curve {
	return p.curve
}

// IsInfinity reports whether p is the point at infinity.
func (p *Point) IsInfinity() bool {
	return p.infinity
}

// X returns the affine x-coordinate. It panics if p is the point at
// infinity; callers should check IsInfinity first.
func (p *Point) X() *big.Int {
	if p.infinity {
		panic("ecdsa: X of the point at infinity")
	}
	return new(big.Int).Set(p.x)
}

// Y returns the affine y-coordinate. It panics if p is the point at
// infinity; callers should check IsInfinity first.
func (p *Point) Y() *big.Int {
	if p.infinity {
		panic("ecdsa: Y of the point at infinity")
	}
	return new(big.Int).Set(p.y)
}

// IsOnCurve reports whether p satisfies its curve's equation. The point at
// infinity is always considered on-curve.
func (p *Point) IsOnCurve() bool {
	if p.infinity {
		return true
	}
	c := p.curve
	lhs := new(big.Int).Mul(p.y, p.y)
	lhs.Mod(lhs, c.p)

	rhs := new(big.Int).Exp(p.x, big.NewInt(3), c.p)
	ax := new(big.Int).Mul(c.a, p.x)
	rhs.Add(rhs, ax)
	rhs.Add(rhs, c.b)
	rhs.Mod(rhs, c.p)

	return lhs.Cmp(rhs) == 0
}

// Equal reports whether p and other are the same point on the same curve.
func (p *Point) Equal(other *Point) bool {
	if !p.curve.Equal(other.curve) {
		return false
	}
	if p.infinity || other.infinity {
		return p.infinity == other.infinity
	}
	return p.x.Cmp(other.x) == 0 && p.y.Cmp(other.y) == 0
}

// Neg returns -p. The negation of infinity is infinity; the negation of
// (x, y) is (x, -y mod p).
func (p *Point) Neg() *Point {
	if p.infinity {
		return p.curve.Infinity()
	}
	negY := new(big.Int).Neg(p.y)
	negY.Mod(negY, p.curve.p)
	return &Point{curve: p.curve, x: new(big.Int).Set(p.x), y: negY}
}

// Add returns p + other. It fails with CurveMismatch if the two points do
// not share a curve.
func (p *Point) Add(other *Point) (*Point, error) {
	if !p.curve.Equal(other.curve) {
		return nil, makeError(CurveMismatch, "cannot add points from different curves")
	}
	if p.infinity {
		return other.copy(), nil
	}
	if other.infinity {
		return p.copy(), nil
	}
	if p.Equal(other.Neg()) {
		return p.curve.Infinity(), nil
	}

	c := p.curve
	var lambda *big.Int
	if p.Equal(other) {
		// Doubling: lambda = (3x1^2 + a) * (2y1)^-1 mod p.
		num := new(big.Int).Mul(p.x, p.x)
		num.Mul(num, big.NewInt(3))
		num.Add(num, c.a)
		num.Mod(num, c.p)

		denom := new(big.Int).Mul(p.y, bigTwo)
		denom.Mod(denom, c.p)

		inv, err := invMod(denom, c.p)
		if err != nil {
			// Unreachable: p is not on the curve's y=0 locus because
			// p != p.Neg() was already ruled out above.
			return nil, err
		}
		lambda = num.Mul(num, inv)
		lambda.Mod(lambda, c.p)
	} else {
		// Distinct x: lambda = (y2 - y1) * (x2 - x1)^-1 mod p.
		num := new(big.Int).Sub(other.y, p.y)
		num.Mod(num, c.p)

		denom := new(big.Int).Sub(other.x, p.x)
		denom.Mod(denom, c.p)

		inv, err := invMod(denom, c.p)
		if err != nil {
			// Unreachable: distinct points with equal x were already
			// handled by the P == -other check above.
			return nil, err
		}
		lambda = num.Mul(num, inv)
		lambda.Mod(lambda, c.p)
	}

	x3 := new(big.Int).Mul(lambda, lambda)
	x3.Sub(x3, p.x)
	x3.Sub(x3, other.x)
	x3.Mod(x3, c.p)

	y3 := new(big.Int).Sub(p.x, x3)
	y3.Mul(y3, lambda)
	y3.Sub(y3, p.y)
	y3.Mod(y3, c.p)

	return &Point{curve: c, x: x3, y: y3}, nil
}

// Mul returns [k]p using a Montgomery ladder that performs one addition
// and one doubling per bit of the curve's field modulus, regardless of
// the value of that bit. This makes the ladder's control flow independent
// of k, at the cost of one extra, harmless iteration over the leading
// zero bit of p relative to a ladder sized to the group order.
func (p *Point) Mul(k *big.Int) *Point {
	r0 := p.curve.Infinity()
	r1 := p.copy()

	for i := p.curve.p.BitLen(); i >= 0; i-- {
		if k.Bit(i) == 0 {
			r1 = mustAdd(r1, r0)
			r0 = mustAdd(r0, r0)
		} else {
			r0 = mustAdd(r0, r1)
			r1 = mustAdd(r1, r1)
		}
	}
	return r0
}

// mustAdd adds two points known to share a curve by construction (both
// descend from the same receiver point through Mul's ladder state). A
// CurveMismatch here would indicate a bug in Mul itself, not bad input.
func mustAdd(a, b *Point) *Point {
	r, err := a.Add(b)
	if err != nil {
		panic(fmt.Sprintf("ecdsa: internal ladder invariant violated: %v", err))
	}
	return r
}

// ScalarMul returns [k]p. It is provided alongside Point.Mul so that
// scalar multiplication reads naturally from either operand position, the
// way the underlying group law treats kP and Pk interchangeably.
func ScalarMul(k *big.Int, p *Point) *Point {
	return p.Mul(k)
}

func (p *Point) copy() *Point {
	if p.infinity {
		return p.curve.Infinity()
	}
	return &Point{curve: p.curve, x: new(big.Int).Set(p.x), y: new(big.Int).Set(p.y)}
}

// String renders the point as "(x,y) on <curve>" or "Infinity on <curve>".
// The exact format is not part of the package's contract.
func (p *Point) String() string {
	if p.infinity {
		return fmt.Sprintf("Infinity on %s", p.curve)
	}
	return fmt.Sprintf("(%s,%s) on %s", p.x, p.y, p.curve)
}
