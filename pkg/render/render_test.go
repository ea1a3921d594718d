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

package render

import (
	"bytes"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"math/big"
	"strings"
	"testing"

	"github.com/jeremyhahn/go-sshfixture/pkg/keys"
)

func TestRenderEd25519(t *testing.T) {
	seed := make([]byte, 32)
	public := bytes.Repeat([]byte{0x01}, 32)

	r := New()
	err := r.KeyPair(&keys.KeyPair{
		Family:  keys.Ed25519,
		Ed25519: &keys.Ed25519Key{Seed: seed, Public: public},
	})
	if err != nil {
		t.Fatalf("KeyPair failed: %v", err)
	}

	lines := r.Lines()
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d: %v", len(lines), lines)
	}
	if want := "\tprivateBytes := mustHex(\"" + strings.Repeat("00", 32) + "\")"; lines[0] != want {
		t.Fatalf("seed line:\ngot  %s\nwant %s", lines[0], want)
	}
	if want := "\tpublicBytes := mustHex(\"" + strings.Repeat("01", 32) + "\")"; lines[1] != want {
		t.Fatalf("public line:\ngot  %s\nwant %s", lines[1], want)
	}
	if want := "\treturn ed25519.PrivateKey(append(privateBytes, publicBytes...))"; lines[2] != want {
		t.Fatalf("return line:\ngot  %s\nwant %s", lines[2], want)
	}
}

func TestRenderEd25519_WrongLength(t *testing.T) {
	tests := []struct {
		name   string
		seed   []byte
		public []byte
	}{
		{"short seed", make([]byte, 31), make([]byte, 32)},
		{"long seed", make([]byte, 33), make([]byte, 32)},
		{"short public", make([]byte, 32), make([]byte, 31)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := New()
			err := r.KeyPair(&keys.KeyPair{
				Family:  keys.Ed25519,
				Ed25519: &keys.Ed25519Key{Seed: tt.seed, Public: tt.public},
			})
			if !errors.Is(err, keys.ErrMalformedKey) {
				t.Fatalf("expected ErrMalformedKey, got %v", err)
			}
		})
	}
}

func TestRenderBigInt_Inline(t *testing.T) {
	raw := make([]byte, 39)
	raw[0] = 0x01
	x := new(big.Int).SetBytes(raw)

	r := New()
	r.renderBigInt("e", x)

	lines := r.Lines()
	if len(lines) != 1 {
		t.Fatalf("expected a single inline literal, got %d lines: %v", len(lines), lines)
	}
	if want := "\te := new(big.Int).SetBytes(mustHex(\"" + hex.EncodeToString(raw) + "\"))"; lines[0] != want {
		t.Fatalf("inline line:\ngot  %s\nwant %s", lines[0], want)
	}
}

func TestRenderBigInt_Chunked(t *testing.T) {
	// 45 bytes must split into a 32-byte chunk and a 13-byte chunk.
	raw := make([]byte, 45)
	if _, err := rand.Read(raw); err != nil {
		t.Fatalf("rand.Read failed: %v", err)
	}
	raw[0] |= 0x80 // no leading zero
	x := new(big.Int).SetBytes(raw)

	r := New()
	r.renderBigInt("n", x)

	lines := r.Lines()
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines (open, two chunks, close), got %d: %v", len(lines), lines)
	}
	if lines[0] != "\tn := new(big.Int).SetBytes(mustHex(" {
		t.Fatalf("unexpected opening line: %s", lines[0])
	}
	if want := "\t\t\"" + hex.EncodeToString(raw[:32]) + "\","; lines[1] != want {
		t.Fatalf("first chunk:\ngot  %s\nwant %s", lines[1], want)
	}
	if want := "\t\t\"" + hex.EncodeToString(raw[32:]) + "\","; lines[2] != want {
		t.Fatalf("second chunk:\ngot  %s\nwant %s", lines[2], want)
	}
	if lines[3] != "\t))" {
		t.Fatalf("unexpected closing line: %s", lines[3])
	}
}

func TestRenderBigInt_ChunkingPreservesValue(t *testing.T) {
	raw := make([]byte, 256)
	if _, err := rand.Read(raw); err != nil {
		t.Fatalf("rand.Read failed: %v", err)
	}
	raw[0] |= 0x80
	x := new(big.Int).SetBytes(raw)

	r := New()
	r.renderBigInt("d", x)

	// Concatenate the emitted chunk hex and compare against the unchunked
	// encoding.
	var concat []byte
	for _, line := range r.Lines() {
		trimmed := strings.TrimSpace(line)
		if !strings.HasPrefix(trimmed, `"`) {
			continue
		}
		chunk, err := hex.DecodeString(strings.Trim(trimmed, `",`))
		if err != nil {
			t.Fatalf("chunk line %q is not hex: %v", line, err)
		}
		concat = append(concat, chunk...)
	}
	if !bytes.Equal(concat, BigIntBytes(x)) {
		t.Fatalf("chunk concatenation differs from unchunked encoding")
	}
}

func TestRenderRSA(t *testing.T) {
	r := New()
	err := r.KeyPair(&keys.KeyPair{
		Family: keys.RSA,
		RSA: &keys.RSAKey{
			N: big.NewInt(3233),
			E: big.NewInt(17),
			D: big.NewInt(413),
			P: big.NewInt(61),
			Q: big.NewInt(53),
		},
	})
	if err != nil {
		t.Fatalf("KeyPair failed: %v", err)
	}

	output := strings.Join(r.Lines(), "\n")
	for _, want := range []string{
		"\tn := new(big.Int).SetBytes(mustHex(\"0ca1\"))",
		"\te := new(big.Int).SetBytes(mustHex(\"11\"))",
		"\tkey := &rsa.PrivateKey{",
		"\t\tPublicKey: rsa.PublicKey{N: n, E: int(e.Int64())},",
		"\t\tPrimes:    []*big.Int{p, q},",
		"\tkey.Precompute()",
		"\treturn key",
	} {
		if !strings.Contains(output, want) {
			t.Fatalf("output missing %q:\n%s", want, output)
		}
	}
}

func TestRenderECDSA(t *testing.T) {
	scalar := new(big.Int).SetBytes(bytes.Repeat([]byte{0xab}, 48))

	tests := []struct {
		name      string
		curve     keys.Curve
		curveExpr string
	}{
		{"P-256", keys.P256, "elliptic.P256()"},
		{"P-384", keys.P384, "elliptic.P384()"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := New()
			err := r.KeyPair(&keys.KeyPair{
				Family: keys.ECDSA,
				ECDSA:  &keys.ECDSAKey{Curve: tt.curve, D: scalar},
			})
			if err != nil {
				t.Fatalf("KeyPair failed: %v", err)
			}

			output := strings.Join(r.Lines(), "\n")
			if !strings.Contains(output, tt.curveExpr) {
				t.Fatalf("output missing %s:\n%s", tt.curveExpr, output)
			}
			if !strings.Contains(output, "\t\t\""+strings.Repeat("ab", 48)+"\",") {
				t.Fatalf("output missing scalar literal:\n%s", output)
			}
			if !strings.Contains(output, "key.X, key.Y = key.Curve.ScalarBaseMult(d.Bytes())") {
				t.Fatalf("output missing public point derivation:\n%s", output)
			}
		})
	}
}

func TestRenderECDSA_UnsupportedCurve(t *testing.T) {
	r := New()
	err := r.KeyPair(&keys.KeyPair{
		Family: keys.ECDSA,
		ECDSA:  &keys.ECDSAKey{Curve: keys.Curve(99), D: big.NewInt(7)},
	})
	if !errors.Is(err, keys.ErrUnsupportedCurve) {
		t.Fatalf("expected ErrUnsupportedCurve, got %v", err)
	}
}

func TestRenderUnsupportedFamily(t *testing.T) {
	r := New()
	err := r.KeyPair(&keys.KeyPair{Family: keys.Family(42)})
	if !errors.Is(err, keys.ErrUnsupportedAlgorithm) {
		t.Fatalf("expected ErrUnsupportedAlgorithm, got %v", err)
	}
}
