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

import (
	"crypto"
	"crypto/ecdsa"
	"crypto/ed25519"
	"crypto/rsa"
	"encoding/pem"
	"errors"
	"fmt"
	"math/big"
	"os"
	"path/filepath"

	"github.com/youmark/pkcs8"
	"golang.org/x/crypto/ssh"
)

// PublicSuffix is appended to a private key file name to locate the
// corresponding public key file.
const PublicSuffix = ".pub"

// PEM block types handled by the PKCS#8 fallback parser.
const (
	pemTypePKCS8          = "PRIVATE KEY"
	pemTypeEncryptedPKCS8 = "ENCRYPTED PRIVATE KEY"
)

// Pair couples a parsed KeyPair with the raw private key file bytes, so the
// original encoded text can be embedded alongside the reconstructed key.
type Pair struct {
	KeyPair

	// Encoded holds the private key file contents exactly as read.
	Encoded []byte
}

// Load reads and parses the fixture key pair named name from dir. The
// private key lives at dir/name and the public key at dir/name.pub. The
// passphrase is used for encrypted private keys and ignored otherwise.
func Load(dir, name string, passphrase []byte) (*Pair, error) {
	privPath := filepath.Join(dir, name)
	pubPath := privPath + PublicSuffix

	privBytes, err := os.ReadFile(privPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read private key %s: %w", privPath, err)
	}
	pubBytes, err := os.ReadFile(pubPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read public key %s: %w", pubPath, err)
	}

	priv, err := ParsePrivateKey(privBytes, passphrase)
	if err != nil {
		return nil, fmt.Errorf("failed to parse private key %s: %w", privPath, err)
	}
	pub, err := ParsePublicKey(pubBytes)
	if err != nil {
		return nil, fmt.Errorf("failed to parse public key %s: %w", pubPath, err)
	}

	pair, err := newKeyPair(priv, pub)
	if err != nil {
		return nil, fmt.Errorf("fixture %s: %w", name, err)
	}
	return &Pair{KeyPair: *pair, Encoded: privBytes}, nil
}

// ParsePrivateKey decodes an SSH private key, retrying with the passphrase
// when the key is encrypted. PEM blocks that the SSH parser rejects are
// retried as PKCS#8 containers.
func ParsePrivateKey(data, passphrase []byte) (crypto.PrivateKey, error) {
	key, err := ssh.ParseRawPrivateKey(data)
	if err == nil {
		return key, nil
	}

	var missing *ssh.PassphraseMissingError
	if errors.As(err, &missing) {
		return ssh.ParseRawPrivateKeyWithPassphrase(data, passphrase)
	}

	if key, pkcs8Err := parsePKCS8(data, passphrase); pkcs8Err == nil {
		return key, nil
	}
	return nil, err
}

// parsePKCS8 handles PEM-wrapped PKCS#8 keys, which the OpenSSH parser does
// not accept once encrypted.
func parsePKCS8(data, passphrase []byte) (crypto.PrivateKey, error) {
	block, _ := pem.Decode(data)
	if block == nil {
		return nil, ErrInvalidEncodingPEM
	}
	switch block.Type {
	case pemTypePKCS8:
		return pkcs8.ParsePKCS8PrivateKey(block.Bytes)
	case pemTypeEncryptedPKCS8:
		return pkcs8.ParsePKCS8PrivateKey(block.Bytes, passphrase)
	default:
		return nil, fmt.Errorf("%w: unexpected PEM block type %q", ErrInvalidEncodingPEM, block.Type)
	}
}

// ParsePublicKey decodes an SSH public key in authorized_keys format and
// returns the underlying crypto public key.
func ParsePublicKey(data []byte) (crypto.PublicKey, error) {
	pub, _, _, _, err := ssh.ParseAuthorizedKey(data)
	if err != nil {
		return nil, err
	}
	cryptoPub, ok := pub.(ssh.CryptoPublicKey)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedAlgorithm, pub.Type())
	}
	return cryptoPub.CryptoPublicKey(), nil
}

// newKeyPair tags the parsed keys with their family and verifies that the
// public key file belongs to the private key.
func newKeyPair(priv crypto.PrivateKey, pub crypto.PublicKey) (*KeyPair, error) {
	switch key := priv.(type) {
	case *ed25519.PrivateKey:
		return newEd25519Pair(*key, pub)
	case ed25519.PrivateKey:
		return newEd25519Pair(key, pub)
	case *rsa.PrivateKey:
		return newRSAPair(key, pub)
	case *ecdsa.PrivateKey:
		return newECDSAPair(key, pub)
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedAlgorithm, priv)
	}
}

func newEd25519Pair(key ed25519.PrivateKey, pub crypto.PublicKey) (*KeyPair, error) {
	if len(key) != ed25519.PrivateKeySize {
		return nil, fmt.Errorf("%w: ed25519 private key is %d bytes, want %d",
			ErrMalformedKey, len(key), ed25519.PrivateKeySize)
	}
	edPub, ok := pub.(ed25519.PublicKey)
	if !ok {
		return nil, fmt.Errorf("%w: private key is Ed25519, public key is %T", ErrKeyMismatch, pub)
	}
	if !edPub.Equal(key.Public()) {
		return nil, ErrKeyMismatch
	}
	return &KeyPair{
		Family: Ed25519,
		Ed25519: &Ed25519Key{
			Seed:   key.Seed(),
			Public: edPub,
		},
	}, nil
}

func newRSAPair(key *rsa.PrivateKey, pub crypto.PublicKey) (*KeyPair, error) {
	rsaPub, ok := pub.(*rsa.PublicKey)
	if !ok {
		return nil, fmt.Errorf("%w: private key is RSA, public key is %T", ErrKeyMismatch, pub)
	}
	if rsaPub.N.Cmp(key.N) != 0 || rsaPub.E != key.E {
		return nil, ErrKeyMismatch
	}
	if len(key.Primes) != 2 {
		return nil, fmt.Errorf("%w: RSA key has %d prime factors, want 2", ErrMalformedKey, len(key.Primes))
	}
	return &KeyPair{
		Family: RSA,
		RSA: &RSAKey{
			N: key.N,
			E: big.NewInt(int64(key.E)),
			D: key.D,
			P: key.Primes[0],
			Q: key.Primes[1],
		},
	}, nil
}

func newECDSAPair(key *ecdsa.PrivateKey, pub crypto.PublicKey) (*KeyPair, error) {
	var curve Curve
	switch key.Curve.Params().Name {
	case "P-256":
		curve = P256
	case "P-384":
		curve = P384
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedCurve, key.Curve.Params().Name)
	}
	ecPub, ok := pub.(*ecdsa.PublicKey)
	if !ok {
		return nil, fmt.Errorf("%w: private key is ECDSA, public key is %T", ErrKeyMismatch, pub)
	}
	if !ecPub.Equal(key.Public()) {
		return nil, ErrKeyMismatch
	}
	return &KeyPair{
		Family: ECDSA,
		ECDSA: &ECDSAKey{
			Curve: curve,
			D:     key.D,
		},
	}, nil
}
