package cli

import (
	"strconv"

	"github.com/spf13/cobra"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and initialise toolbox settings.

Settings live in config.toml inside the config directory:

  [hanoi]
  host = "0.0.0.0"
  port = 6102
  max_disks = 24

  [matrix]
  host = "0.0.0.0"
  port = 6101

  [log]
  verbose = false`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write current settings to the config file",
	RunE:  runSettingsInit,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsInitCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[Hanoi]")
	cmd.Printf("  Listen: %s\n", settings.Hanoi.Listen.Addr())
	cmd.Printf("  Max disks: %s\n", maxDisksLabel(settings.Hanoi.MaxDisks))
	cmd.Println()

	cmd.Println("[Matrix]")
	cmd.Printf("  Listen: %s\n", settings.Matrix.Listen.Addr())
	cmd.Println()

	cmd.Println("[Log]")
	cmd.Printf("  Verbose: %t\n", settings.Verbose)
	cmd.Println()

	cmd.Printf("Config file: %s\n", settingsService.ConfigPath())
	return nil
}

func runSettingsInit(cmd *cobra.Command, _ []string) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}
	if err := settingsService.Save(settings); err != nil {
		return err
	}
	cmd.Printf("Settings written to %s\n", settingsService.ConfigPath())
	return nil
}

func maxDisksLabel(n int) string {
	if n == 0 {
		return "unbounded"
	}
	return strconv.Itoa(n)
}
