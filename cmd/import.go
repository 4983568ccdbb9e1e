package cmd

import (
	"fmt"
	"os"

	"tally/internal/config"
	"tally/internal/csvio"
	"tally/internal/storage"

	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Replace the ledger with a CSV export",
	Long:  "Replace the ledger contents with a previously exported CSV file. The default currency setting is kept.",
	Args:  cobra.ExactArgs(1),
	RunE:  runImport,
}

func init() {
	rootCmd.AddCommand(importCmd)
}

func runImport(_ *cobra.Command, args []string) error {
	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("opening import file: %w", err)
	}
	defer f.Close()

	snap, err := csvio.Read(f)
	if err != nil {
		return fmt.Errorf("reading import file: %w", err)
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	db, err := storage.Open(resolveDBPath(cfg))
	if err != nil {
		return err
	}
	defer db.Close()

	// Keep the existing default currency across the restore.
	current, err := db.Load()
	if err != nil {
		return err
	}
	snap.DefaultCurrency = current.DefaultCurrency

	if err := db.Save(snap); err != nil {
		return fmt.Errorf("writing ledger: %w", err)
	}

	fmt.Printf("  Imported %d expenses and %d tags\n", len(snap.Expenses), len(snap.Tags))
	return nil
}
