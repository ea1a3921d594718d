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
	"math/big"
	"testing"
)

func TestBigIntBytes(t *testing.T) {
	tests := []struct {
		name  string
		value *big.Int
		want  []byte
	}{
		{"zero", big.NewInt(0), []byte{0x00}},
		{"one", big.NewInt(1), []byte{0x01}},
		{"byte boundary", big.NewInt(255), []byte{0xff}},
		{"two bytes", big.NewInt(256), []byte{0x01, 0x00}},
		{"rsa exponent", big.NewInt(65537), []byte{0x01, 0x00, 0x01}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BigIntBytes(tt.value)
			if !bytes.Equal(got, tt.want) {
				t.Fatalf("BigIntBytes(%v) = %x, want %x", tt.value, got, tt.want)
			}
		})
	}
}

func TestBigIntBytes_RoundTrip(t *testing.T) {
	values := []*big.Int{
		big.NewInt(0),
		big.NewInt(1),
		big.NewInt(0x7fffffff),
		new(big.Int).Lsh(big.NewInt(1), 1023),
		new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 2048), big.NewInt(1)),
	}

	for _, value := range values {
		raw := BigIntBytes(value)
		if got := new(big.Int).SetBytes(raw); got.Cmp(value) != 0 {
			t.Fatalf("round trip of %v yielded %v", value, got)
		}
		if value.Sign() != 0 && raw[0] == 0 {
			t.Fatalf("BigIntBytes(%v) has a leading zero byte", value)
		}
	}
}

func TestBigIntBytes_MinimalLength(t *testing.T) {
	value := new(big.Int).Lsh(big.NewInt(1), 1024) // 1025 bits
	raw := BigIntBytes(value)
	if len(raw) != 129 {
		t.Fatalf("expected 129 bytes for a 1025-bit value, got %d", len(raw))
	}
}
