package cmd

import (
	"fmt"
	"strconv"
	"time"

	"tally/internal/cli"
	"tally/internal/model"
	"tally/internal/store"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var (
	flagAddName   string
	flagAddAmount float64
	flagAddTag    string
	flagAddDate   string
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Record an expense",
	Long:  "Record an expense. With no flags, an interactive form is shown.",
	RunE:  runAdd,
}

func init() {
	addCmd.Flags().StringVar(&flagAddName, "name", "", "Expense name")
	addCmd.Flags().Float64Var(&flagAddAmount, "amount", 0, "Amount (must be > 0)")
	addCmd.Flags().StringVar(&flagAddTag, "tag", "", "Tag name or id")
	addCmd.Flags().StringVar(&flagAddDate, "date", "", "Date, YYYY-MM-DD (default: today)")
	rootCmd.AddCommand(addCmd)
}

func runAdd(_ *cobra.Command, _ []string) error {
	st, cleanup, err := openStore()
	if err != nil {
		return err
	}
	defer cleanup()

	form := model.ExpenseFormValues{
		Name:   flagAddName,
		Amount: flagAddAmount,
		Date:   time.Now(),
	}
	if flagAddDate != "" {
		d, err := time.ParseInLocation("2006-01-02", flagAddDate, time.Local)
		if err != nil {
			return fmt.Errorf("bad --date %q, want YYYY-MM-DD", flagAddDate)
		}
		form.Date = d
	}
	if flagAddTag != "" {
		tag, err := findTag(st, flagAddTag)
		if err != nil {
			return err
		}
		form.TagID = tag.ID
	}

	if form.Name == "" || form.Amount == 0 || form.TagID == "" {
		if err := promptExpenseForm(st, &form); err != nil {
			return err
		}
	}

	e, err := st.AddExpense(form)
	if err != nil {
		return err
	}

	fmt.Printf("\n  Recorded %s  %s  [%s]\n", e.Name,
		cli.FormatAmount(e.Amount, e.Currency), cli.ShortID(e.ID))
	return nil
}

const newTagChoice = "__new__"

// promptExpenseForm fills the missing form fields interactively. Choosing
// "create a new tag" opens the tag form and assigns the freshly created
// tag's id to the expense.
func promptExpenseForm(st *store.Store, form *model.ExpenseFormValues) error {
	amountStr := ""
	if form.Amount > 0 {
		amountStr = strconv.FormatFloat(form.Amount, 'f', -1, 64)
	}
	dateStr := form.Date.Format("2006-01-02")

	tagOptions := make([]huh.Option[string], 0, len(st.Tags())+1)
	for _, t := range st.Tags() {
		tagOptions = append(tagOptions, huh.NewOption(t.Name, t.ID))
	}
	tagOptions = append(tagOptions, huh.NewOption("+ new tag", newTagChoice))

	fields := []huh.Field{
		huh.NewInput().
			Title("Name").
			Value(&form.Name).
			Validate(func(s string) error {
				if s == "" {
					return fmt.Errorf("name is required")
				}
				return nil
			}),
		huh.NewInput().
			Title("Amount").
			Value(&amountStr).
			Validate(func(s string) error {
				n, err := strconv.ParseFloat(s, 64)
				if err != nil || n <= 0 {
					return fmt.Errorf("amount must be a number greater than 0")
				}
				return nil
			}),
		huh.NewSelect[string]().
			Title("Tag").
			Options(tagOptions...).
			Value(&form.TagID),
		huh.NewInput().
			Title("Date").
			Value(&dateStr).
			Validate(func(s string) error {
				_, err := time.ParseInLocation("2006-01-02", s, time.Local)
				return err
			}),
	}

	// Edits expose the currency; new expenses are stamped with the store's
	// default regardless of input.
	currencyStr := string(form.Currency)
	if form.Currency != "" {
		opts := make([]huh.Option[string], 0, len(model.Currencies))
		for _, c := range model.Currencies {
			opts = append(opts, huh.NewOption(fmt.Sprintf("%s (%s)", c, c.Symbol()), string(c)))
		}
		fields = append(fields, huh.NewSelect[string]().
			Title("Currency").
			Options(opts...).
			Value(&currencyStr))
	}

	if err := huh.NewForm(huh.NewGroup(fields...)).Run(); err != nil {
		return err
	}
	form.Currency = model.Currency(currencyStr)

	form.Amount, _ = strconv.ParseFloat(amountStr, 64)
	form.Date, _ = time.ParseInLocation("2006-01-02", dateStr, time.Local)

	if form.TagID == newTagChoice {
		tag, err := promptNewTag(st)
		if err != nil {
			return err
		}
		form.TagID = tag.ID
	}
	return nil
}
