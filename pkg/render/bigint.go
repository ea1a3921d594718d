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

import "math/big"

// BigIntBytes returns the minimal big-endian byte encoding of a non-negative
// integer: ceil(bitlen/8) bytes with no leading zero byte. Zero encodes as a
// single zero byte rather than the empty slice big.Int.Bytes returns.
func BigIntBytes(x *big.Int) []byte {
	if x.Sign() == 0 {
		return []byte{0}
	}
	return x.Bytes()
}
