// Copyright (c) 2024 The goecdsa developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ecdsa

import "math/big"

// Verify reports whether sig is a valid ECDSA signature over m under pub.
// It never returns an error: malformed or tampered signatures simply fail
// to verify. Verify is a pure function of its inputs and does not mutate
// any of them.
func (pub *PublicKey) Verify(sig *Signature, m []byte) bool {
	params := pub.params
	order := params.order

	r, s := sig.r, sig.s
	if r.Sign() <= 0 || r.Cmp(order) >= 0 {
		return false
	}
	if s.Sign() <= 0 || s.Cmp(order) >= 0 {
		return false
	}

	w, err := invMod(s, order)
	if err != nil {
		return false
	}

	e := params.digest(m)

	u1 := new(big.Int).Mul(e, w)
	u1.Mod(u1, order)

	u2 := new(big.Int).Mul(r, w)
	u2.Mod(u2, order)

	p, err := params.generator.Mul(u1).Add(pub.q.Mul(u2))
	if err != nil {
		// Unreachable in normal use: both terms are multiples of points
		// on params.curve, so they always share a curve.
		return false
	}
	if p.IsInfinity() {
		return false
	}

	return new(big.Int).Mod(p.X(), order).Cmp(new(big.Int).Mod(r, order)) == 0
}
