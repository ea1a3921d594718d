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
	"bytes"
	"fmt"
	"io"

	"github.com/jeremyhahn/go-sshfixture/pkg/keys"
	"github.com/jeremyhahn/go-sshfixture/pkg/logging"
	"github.com/jeremyhahn/go-sshfixture/pkg/render"
)

// Generator loads each fixture key pair, renders its reconstruction
// statements and escaped key text, and assembles the generated source file.
// Output is fully buffered: the first error aborts the run and nothing is
// written.
type Generator struct {
	// KeyDir is the directory containing the fixture key files.
	KeyDir string

	// Passphrase decrypts encrypted private keys.
	Passphrase []byte

	// Package is the package name of the generated file.
	Package string

	// Fixtures is the ordered fixture list to generate.
	Fixtures []Descriptor

	// Logger reports progress. Must not be nil.
	Logger *logging.Logger
}

// prelude is emitted once after the imports. The generated constructors
// decode their key material through mustHex.
const prelude = `// mustHex decodes and concatenates hex-encoded chunks.
func mustHex(chunks ...string) []byte {
	var raw []byte
	for _, chunk := range chunks {
		decoded, err := hex.DecodeString(chunk)
		if err != nil {
			panic(err)
		}
		raw = append(raw, decoded...)
	}
	return raw
}
`

// Run generates the fixture source file and writes it to w.
func (g *Generator) Run(w io.Writer) error {
	var buf bytes.Buffer
	g.writeHeader(&buf)

	for _, desc := range g.Fixtures {
		if desc.Disabled {
			g.Logger.Infof("skipping disabled fixture %s", desc.Name)
			continue
		}
		if err := g.writeFixture(&buf, desc); err != nil {
			return err
		}
	}

	if _, err := w.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("failed to write generated output: %w", err)
	}
	return nil
}

// writeHeader emits the header comment, package clause, the fixed import set
// and the mustHex prelude.
func (g *Generator) writeHeader(buf *bytes.Buffer) {
	buf.WriteString("// Code generated by sshfixture. DO NOT EDIT.\n\n")
	fmt.Fprintf(buf, "package %s\n\n", g.Package)
	buf.WriteString(`import (
	"crypto"
	"crypto/ecdsa"
	"crypto/ed25519"
	"crypto/elliptic"
	"crypto/rsa"
	"encoding/hex"
	"math/big"
)

`)
	buf.WriteString(prelude)
}

// writeFixture emits the constructor function and the embedded key text for
// one fixture.
func (g *Generator) writeFixture(buf *bytes.Buffer, desc Descriptor) error {
	g.Logger.Debugf("loading fixture %s from %s", desc.Name, g.KeyDir)

	pair, err := keys.Load(g.KeyDir, desc.Name, g.Passphrase)
	if err != nil {
		return err
	}
	if err := desc.check(&pair.KeyPair); err != nil {
		return err
	}

	r := render.New()
	if err := r.KeyPair(&pair.KeyPair); err != nil {
		return fmt.Errorf("fixture %s: %w", desc.Name, err)
	}

	name := desc.GoName()
	fmt.Fprintf(buf, "\n// %s rebuilds the %s fixture key pair.\n", name, desc.Name)
	fmt.Fprintf(buf, "func %s() crypto.Signer {\n", name)
	for _, line := range r.Lines() {
		buf.WriteString(line)
		buf.WriteByte('\n')
	}
	buf.WriteString("}\n")

	fmt.Fprintf(buf, "\n// %sKeypairPEM holds the original encoded private key for %s.\n", name, desc.Name)
	fmt.Fprintf(buf, "var %sKeypairPEM = \"\" +\n", name)
	segments := render.EscapeLines(string(pair.Encoded))
	for i, segment := range segments {
		if i < len(segments)-1 {
			fmt.Fprintf(buf, "\t%s +\n", segment)
		} else {
			fmt.Fprintf(buf, "\t%s\n", segment)
		}
	}
	return nil
}
