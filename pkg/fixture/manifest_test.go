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

package fixture

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/jeremyhahn/go-sshfixture/pkg/keys"
)

func writeManifest(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fixtures.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write manifest: %v", err)
	}
	return path
}

func TestLoadManifest(t *testing.T) {
	path := writeManifest(t, `fixtures:
  - name: alice_ed25519
    family: ed25519
  - name: ruth_rsa_2048
    family: rsa
  - name: eda_ecdsa_p384
    family: ecdsa
    curve: p384
    encrypted: true
  - name: old_fixture
    family: rsa
    disabled: true
`)

	descriptors, err := LoadManifest(path)
	if err != nil {
		t.Fatalf("LoadManifest failed: %v", err)
	}
	if len(descriptors) != 4 {
		t.Fatalf("expected 4 descriptors, got %d", len(descriptors))
	}
	if descriptors[0].Family != keys.Ed25519 {
		t.Fatalf("descriptor 0: expected Ed25519, got %s", descriptors[0].Family)
	}
	if descriptors[2].Curve != keys.P384 || !descriptors[2].Encrypted {
		t.Fatalf("descriptor 2 parsed incorrectly: %+v", descriptors[2])
	}
	if !descriptors[3].Disabled {
		t.Fatal("descriptor 3 should be disabled")
	}
}

func TestLoadManifest_UnsupportedFamily(t *testing.T) {
	path := writeManifest(t, `fixtures:
  - name: legacy_dsa
    family: dsa
`)
	if _, err := LoadManifest(path); !errors.Is(err, keys.ErrUnsupportedAlgorithm) {
		t.Fatalf("expected ErrUnsupportedAlgorithm, got %v", err)
	}
}

func TestLoadManifest_MissingCurve(t *testing.T) {
	path := writeManifest(t, `fixtures:
  - name: eda_ecdsa
    family: ecdsa
`)
	if _, err := LoadManifest(path); !errors.Is(err, keys.ErrUnsupportedCurve) {
		t.Fatalf("expected ErrUnsupportedCurve, got %v", err)
	}
}

func TestLoadManifest_CurveOnNonECDSA(t *testing.T) {
	path := writeManifest(t, `fixtures:
  - name: ruth_rsa_2048
    family: rsa
    curve: p256
`)
	if _, err := LoadManifest(path); err == nil {
		t.Fatal("expected error for curve on RSA fixture")
	}
}

func TestLoadManifest_MissingName(t *testing.T) {
	path := writeManifest(t, `fixtures:
  - family: rsa
`)
	if _, err := LoadManifest(path); err == nil {
		t.Fatal("expected error for missing name")
	}
}

func TestLoadManifest_Empty(t *testing.T) {
	path := writeManifest(t, "fixtures: []\n")
	if _, err := LoadManifest(path); err == nil {
		t.Fatal("expected error for empty fixture list")
	}
}

func TestLoadManifest_MissingFile(t *testing.T) {
	if _, err := LoadManifest(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected error for missing manifest")
	}
}
