/*
 *     Copyright 2024 The Dragonfly Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *      http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"d7y.io/preheat/cmd/dependency"
	logger "d7y.io/preheat/internal/dflog"
	"d7y.io/preheat/manager"
	"d7y.io/preheat/manager/config"
	"d7y.io/preheat/version"
)

var (
	cfg *config.Config
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "preheat",
	Short: "the preheat manager of dragonfly",
	Long: `Preheat is a long-running process and is mainly responsible for validating and canonicalizing
preheat requests, and dispatching the canonical requests as preheat jobs to the schedulers.`,
	Args:              cobra.NoArgs,
	DisableAutoGenTag: true,
	SilenceUsage:      true,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Validate config.
		if err := cfg.Validate(); err != nil {
			return err
		}

		rotateConfig := logger.LogRotateConfig{
			MaxSize:    cfg.Server.LogMaxSize,
			MaxAge:     cfg.Server.LogMaxAge,
			MaxBackups: cfg.Server.LogMaxBackups,
		}

		// Initialize logger.
		if err := logger.InitManager(cfg.Verbose, cfg.Console, cfg.Server.LogDir, rotateConfig); err != nil {
			return fmt.Errorf("init preheat logger: %w", err)
		}

		return runPreheat()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}

func init() {
	// Initialize default preheat config.
	cfg = config.New()
	// Initialize command and config.
	dependency.InitCommandAndConfig(rootCmd, true, cfg)
}

func runPreheat() error {
	logger.Infof("version:\n%s", version.Version())

	ff := dependency.InitMonitor(cfg.Telemetry)
	defer ff()

	svr, err := manager.New(cfg)
	if err != nil {
		return err
	}

	dependency.SetupQuitSignalHandler(func() { svr.Stop() })
	return svr.Serve()
}
