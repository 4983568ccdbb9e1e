package cmd

import (
	"fmt"

	"tally/internal/aggregate"
	"tally/internal/cli"
	"tally/internal/model"

	"github.com/spf13/cobra"
)

var flagGroupBy string

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the month's expenses grouped by date or tag",
	RunE:  runList,
}

func init() {
	listCmd.Flags().StringVar(&flagGroupBy, "by", "date", "Grouping: date or tag")
	rootCmd.AddCommand(listCmd)
}

func runList(_ *cobra.Command, _ []string) error {
	st, cleanup, err := openStore()
	if err != nil {
		return err
	}
	defer cleanup()

	cursor := st.CurrentDate()
	monthLabel := cli.FormatMonth(cursor.Year(), int(cursor.Month()))

	expenses := st.CurrentMonthExpenses()
	if len(expenses) == 0 {
		fmt.Printf("\n  No expenses for %s.\n", monthLabel)
		fmt.Println(cli.Muted("  Run `tally add` to record one."))
		return nil
	}

	var groups []model.ExpenseGroup
	switch flagGroupBy {
	case "date":
		groups = aggregate.GroupByDate(expenses)
	case "tag":
		groups = aggregate.GroupByTag(expenses, st.Tags())
	default:
		return fmt.Errorf("bad --by %q, want date or tag", flagGroupBy)
	}

	grand, _ := aggregate.Summarize(expenses, st.Tags())

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("%s  %s", monthLabel, cli.FormatAmount(grand, st.DefaultCurrency()))))
	fmt.Println()

	const width = 48
	for _, g := range groups {
		label := g.Label
		if g.Color != nil {
			label = cli.TagDot(*g.Color) + " " + g.Label
		}
		fmt.Println("  " + cli.GroupHeader(label, cli.FormatAmount(g.Total, g.Currency), width))
		for _, e := range g.Expenses {
			left := cli.Muted(cli.ShortID(e.ID)) + "  " + e.Name
			fmt.Println("  " + cli.Row(left, cli.FormatAmount(e.Amount, e.Currency), width))
		}
		fmt.Println()
	}

	return nil
}
