package cmd

import (
	"fmt"

	"tally/internal/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fmt.Printf("  Config file: %s\n", config.Path())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [General]")
	dbPath := cfg.General.DBPath
	if dbPath == "" {
		dbPath = config.DefaultDBPath()
	}
	fmt.Printf("    Ledger database: %s\n", dbPath)
	fmt.Printf("    Seed currency:   %s\n", cfg.General.Currency)

	return nil
}
