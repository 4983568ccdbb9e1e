package cmd

import (
	"fmt"
	"os"

	"tally/internal/csvio"

	"github.com/spf13/cobra"
)

var flagExportOut string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the full ledger as CSV",
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&flagExportOut, "out", "o", "", "Output file (default: stdout)")
	rootCmd.AddCommand(exportCmd)
}

func runExport(_ *cobra.Command, _ []string) error {
	st, cleanup, err := openStore()
	if err != nil {
		return err
	}
	defer cleanup()

	snap := st.Snapshot()

	out := os.Stdout
	if flagExportOut != "" {
		f, err := os.Create(flagExportOut)
		if err != nil {
			return fmt.Errorf("creating export file: %w", err)
		}
		defer f.Close()
		out = f
	}

	if err := csvio.Write(out, snap); err != nil {
		return fmt.Errorf("writing export: %w", err)
	}

	if flagExportOut != "" {
		fmt.Fprintf(os.Stderr, "  Exported %d expenses to %s\n", len(snap.Expenses), flagExportOut)
	}
	return nil
}
