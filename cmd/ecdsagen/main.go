// Copyright (c) 2024 The goecdsa developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Command ecdsagen is a thin command-line wrapper around the ecdsa
// package: generate a keypair, sign a message read from stdin, or verify
// a signature against a message read from stdin. It is an external
// collaborator in the sense of the core library's design — it imports
// ecdsa, but ecdsa has no knowledge of it.
package main

import (
	"fmt"
	"io"
	"math/big"
	"os"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/modchain-labs/goecdsa"
)

var curveFlag = &cli.StringFlag{
	Name:  "curve",
	Usage: "named curve: p192, p224, p256, p384, or p521",
	Value: "p256",
}

func main() {
	app := &cli.App{
		Name:  "ecdsagen",
		Usage: "generate, sign, and verify with FIPS 186-4 ECDSA curves",
		Commands: []*cli.Command{
			genKeyCommand,
			signCommand,
			verifyCommand,
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "ecdsagen:", err)
		os.Exit(1)
	}
}

func newLogger(ctx *cli.Context) *zap.Logger {
	if !ctx.Bool("debug") {
		return zap.NewNop()
	}
	l, err := zap.NewDevelopment()
	if err != nil {
		return zap.NewNop()
	}
	return l
}

func paramsForName(name string, opts ...ecdsa.Option) (*ecdsa.ECDSAParams, error) {
	switch name {
	case "p192":
		return ecdsa.P192(opts...)
	case "p224":
		return ecdsa.P224(opts...)
	case "p256":
		return ecdsa.P256(opts...)
	case "p384":
		return ecdsa.P384(opts...)
	case "p521":
		return ecdsa.P521(opts...)
	default:
		return nil, fmt.Errorf("unknown curve %q", name)
	}
}

var genKeyCommand = &cli.Command{
	Name:  "genkey",
	Usage: "generate an ECDSA keypair on the given curve",
	Flags: []cli.Flag{curveFlag, &cli.BoolFlag{Name: "debug"}},
	Action: func(ctx *cli.Context) error {
		params, err := paramsForName(ctx.String("curve"), ecdsa.WithLogger(newLogger(ctx)))
		if err != nil {
			return cli.Exit(err, 1)
		}

		pub, priv, err := params.GenKeys()
		if err != nil {
			return cli.Exit(fmt.Errorf("generate keys: %w", err), 1)
		}

		fmt.Printf("d  = %x\n", priv.D())
		fmt.Printf("Qx = %x\n", pub.Q().X())
		fmt.Printf("Qy = %x\n", pub.Q().Y())
		return nil
	},
}

var signCommand = &cli.Command{
	Name:      "sign",
	Usage:     "sign a message read from stdin with the given private key",
	UsageText: "ecdsagen sign -curve p256 -key <hex d>",
	Flags: []cli.Flag{
		curveFlag,
		&cli.StringFlag{Name: "key", Required: true, Usage: "hex-encoded private scalar d"},
		&cli.BoolFlag{Name: "debug"},
	},
	Action: func(ctx *cli.Context) error {
		params, err := paramsForName(ctx.String("curve"), ecdsa.WithLogger(newLogger(ctx)))
		if err != nil {
			return cli.Exit(err, 1)
		}

		d, ok := new(big.Int).SetString(ctx.String("key"), 16)
		if !ok {
			return cli.Exit("key must be a hex-encoded integer", 1)
		}
		priv, err := ecdsa.NewPrivateKey(params, d)
		if err != nil {
			return cli.Exit(fmt.Errorf("load private key: %w", err), 1)
		}

		msg, err := io.ReadAll(os.Stdin)
		if err != nil {
			return cli.Exit(fmt.Errorf("read message: %w", err), 1)
		}

		sig, err := priv.Sign(msg, nil)
		if err != nil {
			return cli.Exit(fmt.Errorf("sign: %w", err), 1)
		}

		fmt.Printf("r = %x\n", sig.R())
		fmt.Printf("s = %x\n", sig.S())
		return nil
	},
}

var verifyCommand = &cli.Command{
	Name:      "verify",
	Usage:     "verify a signature against a message read from stdin",
	UsageText: "ecdsagen verify -curve p256 -qx <hex> -qy <hex> -r <hex> -s <hex>",
	Flags: []cli.Flag{
		curveFlag,
		&cli.StringFlag{Name: "qx", Required: true},
		&cli.StringFlag{Name: "qy", Required: true},
		&cli.StringFlag{Name: "r", Required: true},
		&cli.StringFlag{Name: "s", Required: true},
		&cli.BoolFlag{Name: "debug"},
	},
	Action: func(ctx *cli.Context) error {
		params, err := paramsForName(ctx.String("curve"), ecdsa.WithLogger(newLogger(ctx)))
		if err != nil {
			return cli.Exit(err, 1)
		}

		qx, ok1 := new(big.Int).SetString(ctx.String("qx"), 16)
		qy, ok2 := new(big.Int).SetString(ctx.String("qy"), 16)
		if !ok1 || !ok2 {
			return cli.Exit("qx and qy must be hex-encoded integers", 1)
		}
		q, err := params.Curve().Point(qx, qy)
		if err != nil {
			return cli.Exit(fmt.Errorf("load public point: %w", err), 1)
		}
		pub, err := ecdsa.NewPublicKey(params, q)
		if err != nil {
			return cli.Exit(fmt.Errorf("load public key: %w", err), 1)
		}

		r, ok3 := new(big.Int).SetString(ctx.String("r"), 16)
		s, ok4 := new(big.Int).SetString(ctx.String("s"), 16)
		if !ok3 || !ok4 {
			return cli.Exit("r and s must be hex-encoded integers", 1)
		}
		sig := ecdsa.NewSignature(params, r, s)

		msg, err := io.ReadAll(os.Stdin)
		if err != nil {
			return cli.Exit(fmt.Errorf("read message: %w", err), 1)
		}

		ok := pub.Verify(sig, msg)
		fmt.Println(ok)
		if !ok {
			os.Exit(1)
		}
		return nil
	},
}
