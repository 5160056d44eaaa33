// Copyright (c) 2024 The goecdsa developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ecdsa

import (
	"fmt"
	"math/big"
)

// Signature is an ECDSA (r, s) pair bound to the parameters it was
// produced under. No invariants are enforced at construction; all
// validation of r and s happens during verification.
type Signature struct {
	params *ECDSAParams
	r, s   *big.Int
}

// NewSignature wraps r and s as a signature under params.
func NewSignature(params *ECDSAParams, r, s *big.Int) *Signature {
	return &Signature{params: params, r: new(big.Int).Set(r), s: new(big.Int).Set(s)}
}

// R returns the r component of the signature.
func (sig *Signature) R() *big.Int { return new(big.Int).Set(sig.r) }

// S returns the s component of the signature.
func (sig *Signature) S() *big.Int { return new(big.Int).Set(sig.s) }

// String renders the signature as "(r, s)".
func (sig *Signature) String() string {
	return fmt.Sprintf("(%s, %s)", sig.r, sig.s)
}
