// Copyright (c) 2024 The goecdsa developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package ecdsa implements the Elliptic Curve Digital Signature Algorithm over
short-Weierstrass curves in prime fields, as specified by FIPS 186-4.

The package is split into two halves. The first is a small, generic group
arithmetic engine: a Curve is an immutable (a, b, p) triple, and a Point is
either an affine coordinate pair on that curve or the distinguished point at
infinity. Addition, negation, equality, and scalar multiplication are defined
on Point following the usual elliptic curve group law, with scalar
multiplication implemented as a Montgomery ladder that performs one addition
and one doubling per scalar bit regardless of its value.

The second half is the ECDSA protocol itself: ECDSAParams bundles a curve, a
generator point, the generator's order, and a hash constructor; PrivateKey
and PublicKey are thin wrappers around a scalar and a point, respectively,
bound to a set of params; Sign and Verify implement the signing and
verification equations.

Named curve constructors for the five FIPS 186-4 curves — P192, P224, P256,
P384, and P521 — are provided as a convenience over constructing Curve and
ECDSAParams by hand.

This package does not implement point compression, key serialization
(DER/PEM), certificate handling, ECDH key agreement, Schnorr signatures, or
RFC 6979 deterministic nonce generation. It also does not attempt
constant-time field arithmetic; the scalar ladder is regular by
construction, but the underlying math/big operations it calls are not
asserted to run in constant time. Callers with a high-assurance threat model
should audit the big.Int operations used here against their own side-channel
requirements.
*/
package ecdsa
