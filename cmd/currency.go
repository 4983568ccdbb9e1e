package cmd

import (
	"fmt"

	"tally/internal/model"

	"github.com/spf13/cobra"
)

var currencyCmd = &cobra.Command{
	Use:   "currency [CODE]",
	Short: "Show or set the default currency",
	Long:  "Show the default currency, or set it. Only future expenses are affected.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runCurrency,
}

func init() {
	rootCmd.AddCommand(currencyCmd)
}

func runCurrency(_ *cobra.Command, args []string) error {
	st, cleanup, err := openStore()
	if err != nil {
		return err
	}
	defer cleanup()

	if len(args) == 0 {
		current := st.DefaultCurrency()
		fmt.Printf("\n  Default currency: %s (%s)\n\n", current, current.Symbol())
		fmt.Println("  Available:")
		for _, c := range model.Currencies {
			fmt.Printf("    %s  %s\n", c.Symbol(), c)
		}
		return nil
	}

	c := model.Currency(args[0])
	if err := st.SetDefaultCurrency(c); err != nil {
		return err
	}

	fmt.Printf("\n  Default currency set to %s (%s)\n", c, c.Symbol())
	return nil
}
