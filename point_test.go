// Copyright (c) 2024 The goecdsa developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ecdsa

import (
	"math/big"
	"testing"
)

// toyCurve is the textbook curve y^2 = x^3 + 2x + 2 (mod 17), which has a
// group of prime order 19 generated by (5, 1). Its small size makes it
// cheap to exhaustively exercise the group law.
func toyCurve(t *testing.T) (*Curve, *Point) {
	t.Helper()
	c, err := NewCurve(big.NewInt(2), big.NewInt(2), big.NewInt(17))
	if err != nil {
		t.Fatalf("NewCurve: %v", err)
	}
	g, err := c.Point(big.NewInt(5), big.NewInt(1))
	if err != nil {
		t.Fatalf("curve.Point: %v", err)
	}
	return c, g
}

func TestCurveSingularRejected(t *testing.T) {
	// a=0, b=0 over any prime makes the discriminant zero.
	_, err := NewCurve(big.NewInt(0), big.NewInt(0), big.NewInt(17))
	if err == nil {
		t.Fatal("expected CurveSingular error, got nil")
	}
}

func TestPointNotOnCurveRejected(t *testing.T) {
	c, _ := toyCurve(t)
	_, err := c.Point(big.NewInt(5), big.NewInt(2))
	if err == nil {
		t.Fatal("expected PointNotOnCurve error, got nil")
	}
}

func TestNewPointIsOnCurve(t *testing.T) {
	_, g := toyCurve(t)
	if !g.IsOnCurve() {
		t.Fatal("freshly constructed generator reports IsOnCurve() == false")
	}
}

func TestAddIdentity(t *testing.T) {
	c, g := toyCurve(t)
	inf := c.Infinity()

	sum, err := g.Add(inf)
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if !sum.Equal(g) {
		t.Fatalf("P + Infinity = %s, want %s", sum, g)
	}
}

func TestAddNegation(t *testing.T) {
	c, g := toyCurve(t)
	sum, err := g.Add(g.Neg())
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if !sum.Equal(c.Infinity()) {
		t.Fatalf("P + (-P) = %s, want Infinity", sum)
	}
}

func TestAddAssociative(t *testing.T) {
	_, g := toyCurve(t)
	p := g.Mul(big.NewInt(3))
	q := g.Mul(big.NewInt(7))
	r := g.Mul(big.NewInt(11))

	pq, err := p.Add(q)
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	pqR, err := pq.Add(r)
	if err != nil {
		t.Fatalf("Add: %v", err)
	}

	qr, err := q.Add(r)
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	pQr, err := p.Add(qr)
	if err != nil {
		t.Fatalf("Add: %v", err)
	}

	if !pqR.Equal(pQr) {
		t.Fatalf("(P+Q)+R = %s, P+(Q+R) = %s, want equal", pqR, pQr)
	}
}

func TestMulIdentityAndZero(t *testing.T) {
	c, g := toyCurve(t)

	if z := g.Mul(big.NewInt(0)); !z.Equal(c.Infinity()) {
		t.Fatalf("[0]P = %s, want Infinity", z)
	}
	if one := g.Mul(big.NewInt(1)); !one.Equal(g) {
		t.Fatalf("[1]P = %s, want %s", one, g)
	}
}

func TestMulDistributesOverAddition(t *testing.T) {
	_, g := toyCurve(t)

	k, j := big.NewInt(5), big.NewInt(8)
	kj := new(big.Int).Add(k, j)

	lhs := g.Mul(kj)

	kg := g.Mul(k)
	jg := g.Mul(j)
	rhs, err := kg.Add(jg)
	if err != nil {
		t.Fatalf("Add: %v", err)
	}

	if !lhs.Equal(rhs) {
		t.Fatalf("[k+j]P = %s, [k]P+[j]P = %s, want equal", lhs, rhs)
	}
}

func TestMulByOrderIsInfinity(t *testing.T) {
	c, g := toyCurve(t)
	order := big.NewInt(19)

	if z := g.Mul(order); !z.Equal(c.Infinity()) {
		t.Fatalf("[n]G = %s, want Infinity", z)
	}
}

func TestMulCommutesWithOperandOrder(t *testing.T) {
	_, g := toyCurve(t)
	k := big.NewInt(9)

	if !g.Mul(k).Equal(ScalarMul(k, g)) {
		t.Fatal("g.Mul(k) and ScalarMul(k, g) disagree")
	}
}

func TestAddCurveMismatch(t *testing.T) {
	_, g := toyCurve(t)
	other, err := NewCurve(big.NewInt(1), big.NewInt(1), big.NewInt(23))
	if err != nil {
		t.Fatalf("NewCurve: %v", err)
	}

	if _, err := g.Add(other.Infinity()); err == nil {
		t.Fatal("expected CurveMismatch error, got nil")
	}
}

func TestEqualAcrossCurvesIsFalse(t *testing.T) {
	_, g := toyCurve(t)
	other, err := NewCurve(big.NewInt(2), big.NewInt(4), big.NewInt(23))
	if err != nil {
		t.Fatalf("NewCurve: %v", err)
	}
	p, err := other.Point(big.NewInt(5), big.NewInt(1))
	if err != nil {
		t.Skip("(5,1) happens not to lie on the comparison curve")
	}
	if g.Equal(p) {
		t.Fatal("points on different curves compared equal")
	}
}
