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

package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/jeremyhahn/go-sshfixture/pkg/fixture"
	"github.com/jeremyhahn/go-sshfixture/pkg/keys"
)

// OutputFormat defines the output format type
type OutputFormat string

const (
	OutputFormatText OutputFormat = "text"
	OutputFormatJSON OutputFormat = "json"
)

// Printer handles formatted command output
type Printer struct {
	format OutputFormat
	writer io.Writer
}

// NewPrinter creates a new Printer
func NewPrinter(format string, writer io.Writer) *Printer {
	return &Printer{
		format: OutputFormat(format),
		writer: writer,
	}
}

// PrintFixtureList prints the fixture descriptor table
func (p *Printer) PrintFixtureList(descriptors []fixture.Descriptor) error {
	switch p.format {
	case OutputFormatJSON:
		entries := make([]map[string]interface{}, 0, len(descriptors))
		for _, d := range descriptors {
			entry := map[string]interface{}{
				"name":      d.Name,
				"family":    d.Family.String(),
				"encrypted": d.Encrypted,
				"disabled":  d.Disabled,
			}
			if d.Family == keys.ECDSA {
				entry["curve"] = d.Curve.String()
			}
			entries = append(entries, entry)
		}
		return p.printJSON(map[string]interface{}{"fixtures": entries})
	case OutputFormatText:
		fmt.Fprintln(p.writer, "Fixtures:")
		for _, d := range descriptors {
			family := d.Family.String()
			if d.Family == keys.ECDSA {
				family += " " + d.Curve.String()
			}
			suffix := ""
			if d.Encrypted {
				suffix += " (encrypted)"
			}
			if d.Disabled {
				suffix += " [disabled]"
			}
			fmt.Fprintf(p.writer, "  %-28s %s%s\n", d.Name, family, suffix)
		}
		return nil
	default:
		return fmt.Errorf("unknown output format: %s", p.format)
	}
}

// PrintError prints an error message
func (p *Printer) PrintError(err error) error {
	switch p.format {
	case OutputFormatJSON:
		return p.printJSON(map[string]interface{}{
			"error": err.Error(),
		})
	default:
		_, werr := fmt.Fprintf(p.writer, "Error: %v\n", err)
		return werr
	}
}

// printJSON marshals v with indentation and writes it
func (p *Printer) printJSON(v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(p.writer, string(data))
	return err
}
