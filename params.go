// Copyright (c) 2024 The goecdsa developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ecdsa

import (
	"fmt"
	"hash"
	"io"
	"math/big"

	"go.uber.org/zap"
)

// ECDSAParams bundles the curve, generator, generator order, and hash
// function that together define an ECDSA instance. It is validated at
// construction and immutable thereafter.
type ECDSAParams struct {
	curve     *Curve
	generator *Point
	order     *big.Int
	hash      func() hash.Hash
	rand      io.Reader
	log       *zap.Logger
}

// NewECDSAParams validates and constructs an ECDSAParams from a curve, a
// generator point G on that curve, and the prime order n of G. Validation
// proceeds in order: G is not infinity, G lies on curve, n is prime
// (Miller-Rabin, k=64), and [n]G = infinity. Each failure raises a
// distinct ErrorKind.
func NewECDSAParams(curve *Curve, g *Point, n *big.Int, opts ...Option) (*ECDSAParams, error) {
	cfg := defaultParamsConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	if g.IsInfinity() {
		return nil, makeError(GeneratorInfinite, "generator cannot be the point at infinity")
	}
	if !g.curve.Equal(curve) {
		return nil, makeError(GeneratorOffCurve, "generator does not belong to the given curve")
	}
	if !g.IsOnCurve() {
		return nil, makeError(GeneratorOffCurve, "generator is not on the curve")
	}
	if !isPrime(n, 64) {
		return nil, makeError(OrderNotPrime, "generator order must be prime")
	}
	if !g.Mul(n).IsInfinity() {
		return nil, makeError(BadGeneratorOrder, "[n]G is not the point at infinity")
	}

	cfg.logger.Debug("ecdsa params validated",
		zap.String("curve", curve.String()),
		zap.String("order_bits", fmt.Sprintf("%d", n.BitLen())),
	)

	return &ECDSAParams{
		curve:     curve,
		generator: g,
		order:     new(big.Int).Set(n),
		hash:      cfg.hash,
		rand:      cfg.rand,
		log:       cfg.logger,
	}, nil
}

// Curve returns the underlying curve.
func (params *ECDSAParams) Curve() *Curve { return params.curve }

// Generator returns the base point G.
func (params *ECDSAParams) Generator() *Point { return params.generator }

// Order returns the prime order n of the generator.
func (params *ECDSAParams) Order() *big.Int { return new(big.Int).Set(params.order) }

// digest hashes m and interprets the resulting bytes as a big-endian
// unsigned integer, with no truncation to the bit length of the order —
// reduction mod n happens implicitly wherever the integer is subsequently
// used in modular arithmetic.
func (params *ECDSAParams) digest(m []byte) *big.Int {
	h := params.hash()
	h.Write(m)
	return new(big.Int).SetBytes(h.Sum(nil))
}

// GenKeys samples a private scalar uniformly in [1, n-1] and returns the
// corresponding (PublicKey, PrivateKey) pair.
func (params *ECDSAParams) GenKeys() (*PublicKey, *PrivateKey, error) {
	k, err := randomIntegerUnbias(params.rand, params.order)
	if err != nil {
		return nil, nil, err
	}

	priv, err := NewPrivateKey(params, k)
	if err != nil {
		return nil, nil, err
	}

	pub, err := NewPublicKey(params, params.generator.Mul(k))
	if err != nil {
		return nil, nil, err
	}

	return pub, priv, nil
}
