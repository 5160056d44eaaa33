// Copyright (c) 2024 The goecdsa developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ecdsa

import "math/big"

// Sign produces an ECDSA signature over m. If nonce is non-nil it is used
// as a single-shot ephemeral scalar k: if it happens to produce a
// degenerate signature (r = 0 or s = 0) the call fails with
// DegenerateSignature rather than silently resampling, since resampling a
// caller-fixed value would either loop forever or quietly ignore the
// caller's choice. If nonce is nil, k is drawn from the params' RNG and
// redrawn automatically on a degenerate result.
func (priv *PrivateKey) Sign(m []byte, nonce *big.Int) (*Signature, error) {
	params := priv.params
	order := params.order

	for {
		var k *big.Int
		if nonce != nil {
			k = new(big.Int).Set(nonce)
		} else {
			var err error
			k, err = randomIntegerUnbias(params.rand, order)
			if err != nil {
				return nil, err
			}
		}

		kInv, err := invMod(k, order)
		if err != nil {
			return nil, err
		}

		// k is invertible mod order, so [k]G cannot be the point at
		// infinity: order is the generator's prime order, and the only
		// multiples of G equal to infinity are multiples of order, which
		// invMod above already ruled out.
		r := new(big.Int).Mod(params.generator.Mul(k).X(), order)

		e := params.digest(m)
		s := new(big.Int).Mul(priv.d, r)
		s.Add(s, e)
		s.Mul(s, kInv)
		s.Mod(s, order)

		if r.Sign() == 0 || s.Sign() == 0 {
			if nonce != nil {
				return nil, makeError(DegenerateSignature,
					"caller-supplied nonce produced a degenerate signature")
			}
			params.log.Debug("degenerate signature, resampling nonce")
			continue
		}

		return NewSignature(params, r, s), nil
	}
}
