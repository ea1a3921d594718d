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
	"fmt"
	"io"
	"os"

	"github.com/jeremyhahn/go-sshfixture/internal/config"
	"github.com/jeremyhahn/go-sshfixture/pkg/fixture"
	"github.com/jeremyhahn/go-sshfixture/pkg/logging"
	"github.com/spf13/cobra"
)

// generateCmd generates the fixture source file
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate Go source from SSH fixture keys",
	Long: `Generate a Go source file reconstructing each fixture key pair and
embedding the original encoded private key text. Any missing,
unparsable or unsupported key aborts the run and nothing is written.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(cmd)
		if err != nil {
			handleError(err)
			return
		}
		logger := logging.NewLogger(cfg.Logging.Debug || verbose)

		descriptors := fixture.Fixtures()
		if cfg.Manifest != "" {
			descriptors, err = fixture.LoadManifest(cfg.Manifest)
			if err != nil {
				handleError(err)
				return
			}
		}

		generator := &fixture.Generator{
			KeyDir:     cfg.KeyDir,
			Passphrase: []byte(cfg.Passphrase),
			Package:    cfg.Package,
			Fixtures:   descriptors,
			Logger:     logger,
		}

		var out io.Writer = os.Stdout
		if cfg.Output != "" {
			f, err := os.Create(cfg.Output)
			if err != nil {
				handleError(fmt.Errorf("failed to create output file: %w", err))
				return
			}
			defer func() { _ = f.Close() }()
			out = f
		}

		if err := generator.Run(out); err != nil {
			handleError(err)
			return
		}
		if cfg.Output != "" {
			logger.Infof("generated %s", cfg.Output)
		}
	},
}

// loadConfig loads the configuration file and applies flag overrides.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, err
	}
	if cmd.Flags().Changed("key-dir") {
		cfg.KeyDir, _ = cmd.Flags().GetString("key-dir")
	}
	if cmd.Flags().Changed("out") {
		cfg.Output, _ = cmd.Flags().GetString("out")
	}
	if cmd.Flags().Changed("package") {
		cfg.Package, _ = cmd.Flags().GetString("package")
	}
	if cmd.Flags().Changed("passphrase") {
		cfg.Passphrase, _ = cmd.Flags().GetString("passphrase")
	}
	if cmd.Flags().Changed("manifest") {
		cfg.Manifest, _ = cmd.Flags().GetString("manifest")
	}
	return cfg, cfg.Validate()
}

func init() {
	generateCmd.Flags().String("key-dir", "", "directory containing fixture key files")
	generateCmd.Flags().String("out", "", "output file (default is stdout)")
	generateCmd.Flags().String("package", "", "package name for the generated file")
	generateCmd.Flags().String("passphrase", "", "passphrase for encrypted private keys")
	generateCmd.Flags().String("manifest", "", "YAML manifest overriding the built-in fixture list")
}
