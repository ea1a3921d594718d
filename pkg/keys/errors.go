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

package keys

import "errors"

var (
	// ErrUnsupportedAlgorithm is returned when a key's algorithm family is
	// outside the supported set.
	ErrUnsupportedAlgorithm = errors.New("unsupported key algorithm")

	// ErrUnsupportedCurve is returned when an ECDSA key uses a curve other
	// than P-256 or P-384.
	ErrUnsupportedCurve = errors.New("unsupported elliptic curve")

	// ErrMalformedKey is returned when key material violates an expected
	// shape invariant.
	ErrMalformedKey = errors.New("malformed key material")

	// ErrKeyMismatch is returned when a public key file does not match its
	// private key.
	ErrKeyMismatch = errors.New("public key does not match private key")

	// ErrInvalidEncodingPEM is returned when PEM decoding fails.
	ErrInvalidEncodingPEM = errors.New("invalid PEM encoding")
)
