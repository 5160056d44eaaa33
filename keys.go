// Copyright (c) 2024 The goecdsa developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ecdsa

import "math/big"

// PrivateKey is an ECDSA private scalar bound to a set of parameters.
type PrivateKey struct {
	params *ECDSAParams
	d      *big.Int
}

// NewPrivateKey wraps d as a private key under params, failing with
// InvalidPrivateKey if d is not in the open interval (0, n).
func NewPrivateKey(params *ECDSAParams, d *big.Int) (*PrivateKey, error) {
	if d.Sign() <= 0 || d.Cmp(params.order) >= 0 {
		return nil, makeError(InvalidPrivateKey, "private scalar must satisfy 0 < d < n")
	}
	return &PrivateKey{params: params, d: new(big.Int).Set(d)}, nil
}

// Params returns the parameters this key is bound to.
func (priv *PrivateKey) Params() *ECDSAParams { return priv.params }

// D returns the private scalar.
func (priv *PrivateKey) D() *big.Int { return new(big.Int).Set(priv.d) }

// PublicKey is an ECDSA public point bound to a set of parameters.
type PublicKey struct {
	params *ECDSAParams
	q      *Point
}

// NewPublicKey wraps q as a public key under params, failing with
// InvalidPublicKey if q is the point at infinity or lives on a different
// curve than params.
func NewPublicKey(params *ECDSAParams, q *Point) (*PublicKey, error) {
	if q.IsInfinity() {
		return nil, makeError(InvalidPublicKey, "public point cannot be the point at infinity")
	}
	if !q.Curve().Equal(params.curve) {
		return nil, makeError(InvalidPublicKey, "public point does not belong to the params curve")
	}
	return &PublicKey{params: params, q: q.copy()}, nil
}

// Params returns the parameters this key is bound to.
func (pub *PublicKey) Params() *ECDSAParams { return pub.params }

// Q returns the public point.
func (pub *PublicKey) Q() *Point { return pub.q.copy() }
