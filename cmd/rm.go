package cmd

import (
	"fmt"

	"tally/internal/cli"

	"github.com/spf13/cobra"
)

var rmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Delete an expense",
	Args:  cobra.ExactArgs(1),
	RunE:  runRm,
}

func init() {
	rootCmd.AddCommand(rmCmd)
}

func runRm(_ *cobra.Command, args []string) error {
	st, cleanup, err := openStore()
	if err != nil {
		return err
	}
	defer cleanup()

	e, err := findExpense(st, args[0])
	if err != nil {
		return err
	}

	st.DeleteExpense(e.ID)
	fmt.Printf("\n  Deleted %s  %s\n", e.Name, cli.FormatAmount(e.Amount, e.Currency))
	return nil
}
