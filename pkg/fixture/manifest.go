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
	"fmt"
	"os"

	"github.com/jeremyhahn/go-sshfixture/pkg/keys"
	"gopkg.in/yaml.v3"
)

// Manifest is an on-disk fixture list that overrides the built-in default.
//
// Example:
//
//	fixtures:
//	  - name: alice_ed25519
//	    family: ed25519
//	  - name: eda_ecdsa_p384
//	    family: ecdsa
//	    curve: p384
type Manifest struct {
	Fixtures []Descriptor `yaml:"fixtures"`
}

// descriptorYAML is the wire form of a Descriptor; family and curve arrive
// as names and are validated against the closed enumerations.
type descriptorYAML struct {
	Name      string `yaml:"name"`
	Family    string `yaml:"family"`
	Curve     string `yaml:"curve"`
	Encrypted bool   `yaml:"encrypted"`
	Disabled  bool   `yaml:"disabled"`
}

// UnmarshalYAML implements yaml.Unmarshaler for Descriptor.
func (d *Descriptor) UnmarshalYAML(value *yaml.Node) error {
	var raw descriptorYAML
	if err := value.Decode(&raw); err != nil {
		return err
	}
	if raw.Name == "" {
		return errors.New("fixture entry missing name")
	}
	family, err := keys.ParseFamily(raw.Family)
	if err != nil {
		return fmt.Errorf("fixture %s: %w", raw.Name, err)
	}
	d.Name = raw.Name
	d.Family = family
	d.Encrypted = raw.Encrypted
	d.Disabled = raw.Disabled
	if family == keys.ECDSA {
		curve, err := keys.ParseCurve(raw.Curve)
		if err != nil {
			return fmt.Errorf("fixture %s: %w", raw.Name, err)
		}
		d.Curve = curve
	} else if raw.Curve != "" {
		return fmt.Errorf("fixture %s: curve declared for %s key", raw.Name, family)
	}
	return nil
}

// LoadManifest reads a fixture manifest from path.
func LoadManifest(path string) ([]Descriptor, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest %s: %w", path, err)
	}
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse manifest %s: %w", path, err)
	}
	if len(m.Fixtures) == 0 {
		return nil, fmt.Errorf("manifest %s lists no fixtures", path)
	}
	return m.Fixtures, nil
}
