package cmd

import (
	"errors"
	"fmt"

	"tally/internal/aggregate"
	"tally/internal/apperrors"
	"tally/internal/cli"
	"tally/internal/model"
	"tally/internal/store"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var (
	flagTagName  string
	flagTagColor string
)

var tagCmd = &cobra.Command{
	Use:   "tag",
	Short: "Manage tags",
	RunE:  runTagList,
}

var tagListCmd = &cobra.Command{
	Use:   "list",
	Short: "List tags with their totals",
	RunE:  runTagList,
}

var tagAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a tag",
	RunE:  runTagAdd,
}

var tagEditCmd = &cobra.Command{
	Use:   "edit <id|name>",
	Short: "Rename or recolor a tag",
	Args:  cobra.ExactArgs(1),
	RunE:  runTagEdit,
}

var tagRmCmd = &cobra.Command{
	Use:   "rm <id|name>",
	Short: "Delete a tag (refused while expenses use it)",
	Args:  cobra.ExactArgs(1),
	RunE:  runTagRm,
}

func init() {
	tagAddCmd.Flags().StringVar(&flagTagName, "name", "", "Tag name")
	tagAddCmd.Flags().StringVar(&flagTagColor, "color", "", "Palette color (default: DEFAULT)")
	tagCmd.AddCommand(tagListCmd, tagAddCmd, tagEditCmd, tagRmCmd)
	rootCmd.AddCommand(tagCmd)
}

func runTagList(_ *cobra.Command, _ []string) error {
	st, cleanup, err := openStore()
	if err != nil {
		return err
	}
	defer cleanup()

	tags := st.Tags()
	if len(tags) == 0 {
		fmt.Println("\n  No tags yet.")
		fmt.Println(cli.Muted("  Run `tally tag add` to create one."))
		return nil
	}

	// Totals over the full history, not just the current month.
	_, totals := aggregate.Summarize(st.Expenses(), tags)
	totalByID := make(map[string]model.TagWithTotal, len(totals))
	for _, tt := range totals {
		totalByID[tt.ID] = tt
	}

	rows := make([][]string, 0, len(tags))
	for _, t := range tags {
		row := []string{
			cli.TagDot(t.Color),
			cli.TagName(t.Name, t.Color),
			cli.Muted(cli.ShortID(t.ID)),
			"",
		}
		if tt, ok := totalByID[t.ID]; ok {
			row[3] = cli.FormatAmount(tt.Total, st.DefaultCurrency())
		}
		rows = append(rows, row)
	}

	fmt.Println()
	fmt.Print(cli.Columns(rows))
	return nil
}

func runTagAdd(_ *cobra.Command, _ []string) error {
	st, cleanup, err := openStore()
	if err != nil {
		return err
	}
	defer cleanup()

	var t model.Tag
	if flagTagName != "" {
		t, err = st.AddTag(model.TagFormValues{
			Name:  flagTagName,
			Color: model.Color(flagTagColor),
		})
	} else {
		t, err = promptNewTag(st)
	}
	if err != nil {
		return err
	}

	fmt.Printf("\n  Created tag %s %s  [%s]\n", cli.TagDot(t.Color), t.Name, cli.ShortID(t.ID))
	return nil
}

func runTagEdit(_ *cobra.Command, args []string) error {
	st, cleanup, err := openStore()
	if err != nil {
		return err
	}
	defer cleanup()

	t, err := findTag(st, args[0])
	if err != nil {
		return err
	}

	colorStr := string(t.Color)
	if err := huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title("Name").
			Value(&t.Name).
			Validate(func(s string) error {
				if s == "" {
					return fmt.Errorf("name is required")
				}
				return nil
			}),
		colorSelect(&colorStr),
	)).Run(); err != nil {
		return err
	}
	t.Color = model.Color(colorStr)

	if err := st.UpdateTag(t); err != nil {
		return err
	}

	fmt.Printf("\n  Updated tag %s %s\n", cli.TagDot(t.Color), t.Name)
	return nil
}

func runTagRm(_ *cobra.Command, args []string) error {
	st, cleanup, err := openStore()
	if err != nil {
		return err
	}
	defer cleanup()

	t, err := findTag(st, args[0])
	if err != nil {
		return err
	}

	if err := st.DeleteTag(t.ID); err != nil {
		if errors.Is(err, apperrors.ErrTagInUse) {
			fmt.Printf("\n  Cannot delete %q: expenses still use it.\n", t.Name)
			fmt.Println(cli.Muted("  Reassign or delete those expenses first."))
			return nil
		}
		return err
	}

	fmt.Printf("\n  Deleted tag %s\n", t.Name)
	return nil
}

// promptNewTag runs the interactive tag form and creates the tag. The
// created tag is returned so callers can use its id right away.
func promptNewTag(st *store.Store) (model.Tag, error) {
	var name string
	colorStr := string(model.DefaultColor)

	err := huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title("Tag name").
			Value(&name).
			Validate(func(s string) error {
				if s == "" {
					return fmt.Errorf("name is required")
				}
				return nil
			}),
		colorSelect(&colorStr),
	)).Run()
	if err != nil {
		return model.Tag{}, err
	}

	return st.AddTag(model.TagFormValues{Name: name, Color: model.Color(colorStr)})
}

func colorSelect(value *string) *huh.Select[string] {
	opts := make([]huh.Option[string], 0, len(model.Colors))
	for _, c := range model.Colors {
		opts = append(opts, huh.NewOption(cli.TagDot(c)+" "+string(c), string(c)))
	}
	return huh.NewSelect[string]().
		Title("Color").
		Options(opts...).
		Value(value)
}
