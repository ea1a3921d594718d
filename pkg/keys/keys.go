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

// Package keys models parsed SSH fixture key pairs as a closed set of
// algorithm families and loads them from disk.
//
// The package supports Ed25519, RSA and ECDSA (P-256, P-384) keys in the
// OpenSSH private key container, with a PKCS#8 fallback for PEM blocks the
// SSH parser does not understand. Anything outside that set is rejected
// rather than guessed at.
package keys

import (
	"fmt"
	"math/big"
	"strings"
)

// Family identifies a supported key algorithm family.
type Family int

const (
	// Ed25519 represents the Ed25519 signature algorithm.
	Ed25519 Family = iota
	// RSA represents the RSA algorithm.
	RSA
	// ECDSA represents ECDSA over a NIST curve.
	ECDSA
)

// String returns the string representation of the key family.
func (f Family) String() string {
	switch f {
	case Ed25519:
		return "Ed25519"
	case RSA:
		return "RSA"
	case ECDSA:
		return "ECDSA"
	default:
		return "Unknown"
	}
}

// ParseFamily converts a family name into a Family value.
func ParseFamily(name string) (Family, error) {
	switch strings.ToLower(name) {
	case "ed25519":
		return Ed25519, nil
	case "rsa":
		return RSA, nil
	case "ecdsa":
		return ECDSA, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, name)
	}
}

// Curve identifies a supported ECDSA curve.
type Curve int

const (
	// P256 is the NIST P-256 curve.
	P256 Curve = iota
	// P384 is the NIST P-384 curve.
	P384
)

// String returns the standard name of the curve.
func (c Curve) String() string {
	switch c {
	case P256:
		return "P-256"
	case P384:
		return "P-384"
	default:
		return "Unknown"
	}
}

// ParseCurve converts a curve name into a Curve value. Both "p256" and
// "p-256" spellings are accepted.
func ParseCurve(name string) (Curve, error) {
	switch strings.ToLower(name) {
	case "p256", "p-256":
		return P256, nil
	case "p384", "p-384":
		return P384, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedCurve, name)
	}
}

// Ed25519Key holds the raw components of an Ed25519 key pair.
type Ed25519Key struct {
	// Seed is the 32-byte private seed.
	Seed []byte
	// Public is the 32-byte public point.
	Public []byte
}

// RSAKey holds the five integers that define an RSA private key.
type RSAKey struct {
	N *big.Int // modulus
	E *big.Int // public exponent
	D *big.Int // private exponent
	P *big.Int // first prime factor
	Q *big.Int // second prime factor
}

// ECDSAKey holds an ECDSA private scalar and its curve.
type ECDSAKey struct {
	Curve Curve
	D     *big.Int
}

// KeyPair is a parsed private/public key pair tagged with its algorithm
// family. Exactly one of the family-specific fields is non-nil, selected
// by Family.
type KeyPair struct {
	Family  Family
	Ed25519 *Ed25519Key
	RSA     *RSAKey
	ECDSA   *ECDSAKey
}
