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
	"os"

	"github.com/jeremyhahn/go-sshfixture/pkg/fixture"
	"github.com/spf13/cobra"
)

// fixturesCmd lists the fixture descriptors
var fixturesCmd = &cobra.Command{
	Use:   "fixtures",
	Short: "List the fixture descriptors",
	Long:  `List the built-in fixture descriptors, or those from a manifest file`,
	Run: func(cmd *cobra.Command, args []string) {
		printer := NewPrinter(outputFormat, os.Stdout)

		descriptors := fixture.Fixtures()
		if manifest, _ := cmd.Flags().GetString("manifest"); manifest != "" {
			var err error
			descriptors, err = fixture.LoadManifest(manifest)
			if err != nil {
				handleError(err)
				return
			}
		}

		if err := printer.PrintFixtureList(descriptors); err != nil {
			handleError(err)
		}
	},
}

func init() {
	fixturesCmd.Flags().String("manifest", "", "YAML manifest overriding the built-in fixture list")
}
