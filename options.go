// Copyright (c) 2024 The goecdsa developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ecdsa

import (
	"crypto/sha256"
	"hash"
	"io"

	cryptorand "crypto/rand"

	"go.uber.org/zap"
)

// Option configures an ECDSAParams at construction time. The RNG, hash,
// and logger a caller wants are threaded explicitly rather than reached
// for out of a package-level default.
type Option func(*paramsConfig)

type paramsConfig struct {
	hash   func() hash.Hash
	rand   io.Reader
	logger *zap.Logger
}

func defaultParamsConfig() *paramsConfig {
	return &paramsConfig{
		hash:   sha256.New,
		rand:   cryptorand.Reader,
		logger: zap.NewNop(),
	}
}

// WithHash selects the hash constructor ECDSAParams uses to digest
// messages before signing or verifying. The default is SHA-256.
func WithHash(h func() hash.Hash) Option {
	return func(c *paramsConfig) {
		c.hash = h
	}
}

// WithRand selects the source of cryptographically strong randomness used
// for nonce and key generation. The default is crypto/rand.Reader. It
// must not be seedable from user input.
func WithRand(r io.Reader) Option {
	return func(c *paramsConfig) {
		c.rand = r
	}
}

// WithLogger attaches a structured logger to ECDSAParams. Successful
// parameter validation and signing retries are logged at debug level;
// construction failures are returned, not logged. The default is
// a no-op logger so the library stays silent unless a caller opts in.
func WithLogger(l *zap.Logger) Option {
	return func(c *paramsConfig) {
		c.logger = l
	}
}
