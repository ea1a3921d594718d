// Copyright (c) 2025 Jeremy Hahn
// Copyright (c) 2025 Automate The Things, LLC
//
// This file is part of go-sshfixture.
//
// go-sshfixture is dual-licensed:
//
// 1. GNU Affero General Public License v3.0 (AGPL-3.0)
//    See LICENSE file or visit https://www.gnu.org/licenses/agpl-3.0.html
//
// 2. Commercial License
//    Contact licensing@automatethethings.com for commercial licensing options.

// Package render translates parsed key pairs into Go source statements that
// rebuild the same key values, and escapes encoded key text for embedding as
// string literals.
package render

import (
	"crypto/ed25519"
	"encoding/hex"
	"fmt"
	"math/big"

	"github.com/jeremyhahn/go-sshfixture/pkg/keys"
)

const (
	// Integers shorter than inlineHexLimit bytes render as one inline hex
	// literal.
	inlineHexLimit = 40

	// Longer integers split into hexChunkSize-byte chunks, one quoted chunk
	// per line. Chunk boundaries never change the reconstructed value.
	hexChunkSize = 32
)

// Renderer accumulates the generated statements for one key pair. Statements
// are indented one tab for inclusion in a function body.
type Renderer struct {
	lines []string
}

// New creates an empty Renderer.
func New() *Renderer {
	return &Renderer{}
}

// Lines returns the accumulated output lines in emission order.
func (r *Renderer) Lines() []string {
	return r.lines
}

func (r *Renderer) appendf(format string, args ...any) {
	r.lines = append(r.lines, fmt.Sprintf(format, args...))
}

// KeyPair emits the statements that rebuild pair's private key. Dispatch is
// exhaustive over the supported families; anything else is an error rather
// than a guess.
func (r *Renderer) KeyPair(pair *keys.KeyPair) error {
	switch pair.Family {
	case keys.Ed25519:
		return r.renderEd25519(pair.Ed25519)
	case keys.RSA:
		return r.renderRSA(pair.RSA)
	case keys.ECDSA:
		return r.renderECDSA(pair.ECDSA)
	default:
		return fmt.Errorf("%w: %s", keys.ErrUnsupportedAlgorithm, pair.Family)
	}
}

func (r *Renderer) renderEd25519(key *keys.Ed25519Key) error {
	if len(key.Seed) != ed25519.SeedSize {
		return fmt.Errorf("%w: ed25519 seed is %d bytes, want %d",
			keys.ErrMalformedKey, len(key.Seed), ed25519.SeedSize)
	}
	if len(key.Public) != ed25519.PublicKeySize {
		return fmt.Errorf("%w: ed25519 public key is %d bytes, want %d",
			keys.ErrMalformedKey, len(key.Public), ed25519.PublicKeySize)
	}

	r.appendf("\tprivateBytes := mustHex(%q)", hex.EncodeToString(key.Seed))
	r.appendf("\tpublicBytes := mustHex(%q)", hex.EncodeToString(key.Public))
	r.appendf("\treturn ed25519.PrivateKey(append(privateBytes, publicBytes...))")
	return nil
}

func (r *Renderer) renderRSA(key *keys.RSAKey) error {
	r.renderBigInt("n", key.N)
	r.renderBigInt("e", key.E)
	r.renderBigInt("d", key.D)
	r.renderBigInt("p", key.P)
	r.renderBigInt("q", key.Q)
	r.appendf("\tkey := &rsa.PrivateKey{")
	r.appendf("\t\tPublicKey: rsa.PublicKey{N: n, E: int(e.Int64())},")
	r.appendf("\t\tD:         d,")
	r.appendf("\t\tPrimes:    []*big.Int{p, q},")
	r.appendf("\t}")
	r.appendf("\tkey.Precompute()")
	r.appendf("\treturn key")
	return nil
}

func (r *Renderer) renderECDSA(key *keys.ECDSAKey) error {
	var curveExpr string
	switch key.Curve {
	case keys.P256:
		curveExpr = "elliptic.P256()"
	case keys.P384:
		curveExpr = "elliptic.P384()"
	default:
		return fmt.Errorf("%w: %s", keys.ErrUnsupportedCurve, key.Curve)
	}

	// Scalars are bounded by the curve order and never need chunking.
	r.appendf("\td := new(big.Int).SetBytes(mustHex(")
	r.appendf("\t\t%q,", hex.EncodeToString(BigIntBytes(key.D)))
	r.appendf("\t))")
	r.appendf("\tkey := &ecdsa.PrivateKey{")
	r.appendf("\t\tPublicKey: ecdsa.PublicKey{Curve: %s},", curveExpr)
	r.appendf("\t\tD:         d,")
	r.appendf("\t}")
	r.appendf("\tkey.X, key.Y = key.Curve.ScalarBaseMult(d.Bytes())")
	r.appendf("\treturn key")
	return nil
}

// renderBigInt emits one named integer. Short values render inline; long
// values split into fixed-size chunks for readability only.
func (r *Renderer) renderBigInt(name string, x *big.Int) {
	raw := BigIntBytes(x)
	if len(raw) < inlineHexLimit {
		r.appendf("\t%s := new(big.Int).SetBytes(mustHex(%q))", name, hex.EncodeToString(raw))
		return
	}
	r.appendf("\t%s := new(big.Int).SetBytes(mustHex(", name)
	for len(raw) > 0 {
		n := hexChunkSize
		if len(raw) < n {
			n = len(raw)
		}
		r.appendf("\t\t%q,", hex.EncodeToString(raw[:n]))
		raw = raw[n:]
	}
	r.appendf("\t))")
}
