// Copyright (c) 2024 The goecdsa developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ecdsa

import (
	"crypto/rand"
	"io"
	"math/big"
)

var (
	bigZero = big.NewInt(0)
	bigOne  = big.NewInt(1)
	bigTwo  = big.NewInt(2)
)

// smallPrimes are the first handful of primes, used by isPrime as a cheap
// trial-division pre-filter before falling back to Miller-Rabin.
var smallPrimes = []int64{2, 3, 5, 7, 11, 13, 17, 19, 23, 29}

// xgcd runs the extended Euclidean algorithm and returns (g, u, v) such
// that g = gcd(a, b) and u*a + v*b = g.
func xgcd(a, b *big.Int) (g, u, v *big.Int) {
	x0, x1 := big.NewInt(1), big.NewInt(0)
	y0, y1 := big.NewInt(0), big.NewInt(1)
	a, b = new(big.Int).Set(a), new(big.Int).Set(b)

	for a.Sign() != 0 {
		q, r := new(big.Int), new(big.Int)
		q.DivMod(b, a, r) // floored division/modulo, matching Python's // and %

		b, a = a, r

		newX1 := new(big.Int).Mul(q, x1)
		newX1.Sub(x0, newX1)
		x0, x1 = x1, newX1

		newY1 := new(big.Int).Mul(q, y1)
		newY1.Sub(y0, newY1)
		y0, y1 = y1, newY1
	}
	return b, y0, x0
}

// invMod returns the modular inverse of a modulo n, failing with
// NotInvertible when gcd(a, n) != 1.
func invMod(a, n *big.Int) (*big.Int, error) {
	aModN := new(big.Int).Mod(a, n)
	g, u, _ := xgcd(aModN, n)
	if g.Cmp(bigOne) != 0 {
		return nil, makeError(NotInvertible, "no modular inverse: gcd is not 1")
	}
	return u.Mod(u, n), nil
}

// isPrime runs the Miller-Rabin primality test with k rounds. It returns
// false for n < 2, handles the first ten primes by trial division, and
// otherwise performs k random-base rounds. The false-positive probability
// is at most 4^-k.
func isPrime(n *big.Int, k int) bool {
	if n.Cmp(bigTwo) < 0 {
		return false
	}

	for _, p := range smallPrimes {
		bp := big.NewInt(p)
		if new(big.Int).Mod(n, bp).Sign() == 0 {
			return n.Cmp(bp) == 0
		}
	}

	// Factor n-1 = 2^s * d with d odd.
	nMinus1 := new(big.Int).Sub(n, bigOne)
	d := new(big.Int).Set(nMinus1)
	s := 0
	for new(big.Int).Mod(d, bigTwo).Sign() == 0 {
		d.Div(d, bigTwo)
		s++
	}

	nMinus2 := new(big.Int).Sub(n, bigTwo)
roundLoop:
	for i := 0; i < k; i++ {
		a, err := rand.Int(rand.Reader, nMinus2)
		if err != nil {
			// Entropy failure during a probabilistic primality check is
			// treated as a failed round rather than propagated; isPrime
			// has no error return.
			return false
		}
		a.Add(a, bigTwo) // uniform in [2, n-1]

		x := new(big.Int).Exp(a, d, n)
		if x.Cmp(bigOne) == 0 || x.Cmp(nMinus1) == 0 {
			continue
		}

		for r := 1; r < s; r++ {
			x.Mul(x, x)
			x.Mod(x, n)
			if x.Cmp(bigOne) == 0 {
				return false
			}
			if x.Cmp(nMinus1) == 0 {
				continue roundLoop
			}
		}
		return false
	}
	return true
}

// randomInteger reads numBytes cryptographically strong random bytes from
// rnd and interprets them as a big-endian non-negative integer.
func randomInteger(rnd io.Reader, numBytes int) (*big.Int, error) {
	buf := make([]byte, numBytes)
	if _, err := io.ReadFull(rnd, buf); err != nil {
		return nil, err
	}
	return new(big.Int).SetBytes(buf), nil
}

// randomIntegerUnbias returns an integer uniformly distributed in
// [1, n-1], sampling bitlen(n)/8 + 1 bytes and rejecting values greater
// than n-2 to avoid modulo bias. The loop terminates with probability 1;
// because the sample is up to eight bits wider than n, the expected number
// of iterations is 2^(8*numBytes)/(n-1), about 256 for the P-256 order.
func randomIntegerUnbias(rnd io.Reader, n *big.Int) (*big.Int, error) {
	numBytes := n.BitLen()/8 + 1
	nMinus2 := new(big.Int).Sub(n, bigTwo)

	for {
		r, err := randomInteger(rnd, numBytes)
		if err != nil {
			return nil, err
		}
		if r.Cmp(nMinus2) > 0 {
			continue
		}
		return r.Add(r, bigOne), nil
	}
}
