// Package cli implements the toolbox command line using cobra.
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/toolbox/internal/adapters/driven/config/file"
	"github.com/custodia-labs/toolbox/internal/core/domain"
	"github.com/custodia-labs/toolbox/internal/core/ports/driving"
	"github.com/custodia-labs/toolbox/internal/core/services"
	"github.com/custodia-labs/toolbox/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

var (
	verbose   bool
	configDir string
)

// Services used by commands. settingsService is created on first use;
// hanoiService and matrixService, when set, replace the ones commands build
// from settings.
var (
	settingsService driving.SettingsService
	hanoiService    driving.HanoiService
	matrixService   driving.MatrixService
)

var rootCmd = &cobra.Command{
	Use:   "toolbox",
	Short: "Tower of Hanoi and matrix inversion tool services",
	Long: `toolbox runs two small computational tools for tool-calling assistants:

  hanoi   solves the Tower of Hanoi puzzle       (POST /tool/hanoi, port 6102)
  matrix  inverts a square matrix                (POST /tool/matrix, port 6101)

The tools can be served over HTTP, exposed over MCP, run locally or called
on a running service.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "configuration directory (default ~/.toolbox)")
}

// Execute runs the root command with ctx.
func Execute(ctx context.Context) error {
	rootCmd.SetOut(os.Stdout)
	return rootCmd.ExecuteContext(ctx)
}

func setup(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		store, err := file.NewConfigStore(configDir)
		if err != nil {
			return fmt.Errorf("opening config: %w", err)
		}
		settingsService = services.NewSettingsService(store)
	}

	settings, err := loadSettings()
	if err != nil {
		return err
	}

	logger.SetVerbose(verbose || settings.Verbose)
	logger.Section(cmd.CommandPath())
	logger.Debug("config file: %s", settingsService.ConfigPath())
	logger.Debug("hanoi: %s (max disks %d), matrix: %s",
		settings.Hanoi.Listen.Addr(), settings.Hanoi.MaxDisks, settings.Matrix.Listen.Addr())
	return nil
}

func loadSettings() (*domain.AppSettings, error) {
	if settingsService == nil {
		return nil, errors.New("settings service not configured")
	}
	settings, err := settingsService.Get()
	if err != nil {
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}
	return settings, nil
}
