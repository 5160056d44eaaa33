// Copyright (c) 2024 The goecdsa developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ecdsa

import (
	cryptorand "crypto/rand"
	"errors"
	"math/big"
	"testing"

	"github.com/davecgh/go-spew/spew"
)

func TestInvModIsInverse(t *testing.T) {
	tests := []struct {
		name string
		a, n int64
	}{
		{"small coprime", 7, 11},
		{"a larger than n", 23, 11},
		{"a one", 1, 13},
		{"a n-1", 12, 13},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := big.NewInt(tt.a)
			n := big.NewInt(tt.n)

			inv, err := invMod(a, n)
			if err != nil {
				t.Fatalf("invMod(%d, %d) returned error: %v", tt.a, tt.n, err)
			}

			got := new(big.Int).Mul(a, inv)
			got.Mod(got, n)
			if got.Cmp(bigOne) != 0 {
				t.Fatalf("invMod(%d, %d) = %s, a*inv mod n = %s, want 1\n%s",
					tt.a, tt.n, inv, got, spew.Sdump(tt))
			}
		})
	}
}

func TestInvModNotCoprime(t *testing.T) {
	// gcd(4, 8) = 4, no inverse exists.
	_, err := invMod(big.NewInt(4), big.NewInt(8))
	if err == nil {
		t.Fatal("expected NotInvertible error, got nil")
	}
	var ecdsaErr Error
	if !errors.As(err, &ecdsaErr) || ecdsaErr.Err != NotInvertible {
		t.Fatalf("expected NotInvertible, got %v", err)
	}
}

func TestIsPrimeKnownPrimes(t *testing.T) {
	// 2^61 - 1 is the Mersenne prime M61.
	m61 := new(big.Int).Lsh(bigOne, 61)
	m61.Sub(m61, bigOne)

	// 2^256 - 189 is a prime adjacent to the P-256 field prime.
	p256adj := new(big.Int).Lsh(bigOne, 256)
	p256adj.Sub(p256adj, big.NewInt(189))

	primes := []*big.Int{big.NewInt(2), big.NewInt(3), m61, p256adj}
	for _, p := range primes {
		if !isPrime(p, 64) {
			t.Errorf("isPrime(%s) = false, want true", p)
		}
	}
}

func TestIsPrimeComposites(t *testing.T) {
	// Products of two distinct primes, and even numbers > 2, must all be
	// rejected.
	composites := []*big.Int{
		new(big.Int).Mul(big.NewInt(101), big.NewInt(103)),
		new(big.Int).Mul(big.NewInt(65537), big.NewInt(1000003)),
		big.NewInt(4),
		big.NewInt(100),
		big.NewInt(1),
		big.NewInt(0),
	}
	for _, n := range composites {
		if isPrime(n, 64) {
			t.Errorf("isPrime(%s) = true, want false", n)
		}
	}
}

func TestRandomIntegerUnbiasRange(t *testing.T) {
	n := big.NewInt(997)

	for i := 0; i < 2000; i++ {
		v, err := randomIntegerUnbias(cryptorand.Reader, n)
		if err != nil {
			t.Fatalf("randomIntegerUnbias returned error: %v", err)
		}
		if v.Sign() < 1 || v.Cmp(new(big.Int).Sub(n, bigOne)) > 0 {
			t.Fatalf("randomIntegerUnbias(%s) = %s, out of range [1, n-1]", n, v)
		}
	}
}

func TestXgcdBezout(t *testing.T) {
	tests := []struct{ a, b int64 }{
		{240, 46}, {17, 13}, {1, 1}, {100, 0},
	}
	for _, tt := range tests {
		a, b := big.NewInt(tt.a), big.NewInt(tt.b)
		g, u, v := xgcd(a, b)

		check := new(big.Int).Mul(u, a)
		vb := new(big.Int).Mul(v, b)
		check.Add(check, vb)
		if check.Cmp(g) != 0 {
			t.Errorf("xgcd(%d,%d): u*a+v*b = %s, want g = %s", tt.a, tt.b, check, g)
		}
	}
}
