package cmd

import (
	"fmt"

	"tally/internal/cli"
	"tally/internal/model"

	"github.com/spf13/cobra"
)

var editCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit an expense",
	Args:  cobra.ExactArgs(1),
	RunE:  runEdit,
}

func init() {
	rootCmd.AddCommand(editCmd)
}

func runEdit(_ *cobra.Command, args []string) error {
	st, cleanup, err := openStore()
	if err != nil {
		return err
	}
	defer cleanup()

	e, err := findExpense(st, args[0])
	if err != nil {
		return err
	}

	form := model.ExpenseFormValues{
		Name:     e.Name,
		Amount:   e.Amount,
		Currency: e.Currency,
		Date:     e.Date,
		TagID:    e.TagID,
	}
	if err := promptExpenseForm(st, &form); err != nil {
		return err
	}

	if err := st.UpdateExpense(e.ID, form); err != nil {
		return err
	}

	fmt.Printf("\n  Updated %s  %s  [%s]\n", form.Name,
		cli.FormatAmount(form.Amount, form.Currency), cli.ShortID(e.ID))
	return nil
}
