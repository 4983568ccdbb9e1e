package cmd

import (
	"fmt"

	"tally/internal/aggregate"
	"tally/internal/cli"

	"github.com/spf13/cobra"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Monthly total with per-tag shares",
	RunE:  runSummary,
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(_ *cobra.Command, _ []string) error {
	st, cleanup, err := openStore()
	if err != nil {
		return err
	}
	defer cleanup()

	cursor := st.CurrentDate()
	monthLabel := cli.FormatMonth(cursor.Year(), int(cursor.Month()))

	expenses := st.CurrentMonthExpenses()
	grand, totals := aggregate.Summarize(expenses, st.Tags())

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("%s  %s", monthLabel, cli.FormatAmount(grand, st.DefaultCurrency()))))
	fmt.Println()

	if len(expenses) == 0 {
		fmt.Printf("  No expenses for %s.\n", monthLabel)
		return nil
	}

	rows := make([][]string, 0, len(totals))
	for _, tt := range totals {
		rows = append(rows, []string{
			cli.TagDot(tt.Color),
			tt.Name,
			cli.Bar(tt.Percentage, 16),
			cli.FormatPercent(tt.Percentage),
			cli.FormatAmount(tt.Total, st.DefaultCurrency()),
		})
	}
	fmt.Print(cli.Columns(rows))

	return nil
}
