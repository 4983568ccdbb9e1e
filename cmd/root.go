// Package cmd implements the tally CLI commands.
package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"tally/internal/config"
	"tally/internal/model"
	"tally/internal/storage"
	"tally/internal/store"

	"github.com/spf13/cobra"
)

var (
	flagDBPath string
	flagMonth  string
)

var rootCmd = &cobra.Command{
	Use:   "tally",
	Short: "Personal expense tracker",
	Long:  "Record expenses by category and browse monthly totals.",
	RunE:  runList,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Ledger database path (overrides config)")
	rootCmd.PersistentFlags().StringVarP(&flagMonth, "month", "m", "", "Month to view, YYYY-MM (default: current)")
}

// openStore opens the ledger database and builds the store. The returned
// cleanup closes the database and must be deferred by every command.
func openStore() (*store.Store, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}

	db, err := storage.Open(resolveDBPath(cfg))
	if err != nil {
		return nil, nil, err
	}

	st, err := store.New(db, store.WithDefaultCurrency(model.Currency(cfg.General.Currency)))
	if err != nil {
		_ = db.Close()
		return nil, nil, err
	}

	if flagMonth != "" {
		cursor, err := time.ParseInLocation("2006-01", flagMonth, time.Local)
		if err != nil {
			_ = db.Close()
			return nil, nil, fmt.Errorf("bad --month %q, want YYYY-MM", flagMonth)
		}
		st.SetCurrentDate(cursor)
	}

	return st, func() { _ = db.Close() }, nil
}

// resolveDBPath picks the ledger location: --db flag, then config, then the
// XDG default.
func resolveDBPath(cfg config.Config) string {
	if flagDBPath != "" {
		return flagDBPath
	}
	if cfg.General.DBPath != "" {
		return cfg.General.DBPath
	}
	return config.DefaultDBPath()
}

// findExpense resolves an expense by full id or unique prefix.
func findExpense(st *store.Store, id string) (model.Expense, error) {
	var matches []model.Expense
	for _, e := range st.Expenses() {
		if e.ID == id {
			return e, nil
		}
		if strings.HasPrefix(e.ID, id) {
			matches = append(matches, e)
		}
	}
	switch len(matches) {
	case 0:
		return model.Expense{}, fmt.Errorf("no expense matches %q", id)
	case 1:
		return matches[0], nil
	default:
		return model.Expense{}, fmt.Errorf("%q matches %d expenses, use a longer prefix", id, len(matches))
	}
}

// findTag resolves a tag by id, unique id prefix, or exact name
// (case-insensitive).
func findTag(st *store.Store, key string) (model.Tag, error) {
	var matches []model.Tag
	for _, t := range st.Tags() {
		if t.ID == key || strings.EqualFold(t.Name, key) {
			return t, nil
		}
		if strings.HasPrefix(t.ID, key) {
			matches = append(matches, t)
		}
	}
	switch len(matches) {
	case 0:
		return model.Tag{}, fmt.Errorf("no tag matches %q", key)
	case 1:
		return matches[0], nil
	default:
		return model.Tag{}, fmt.Errorf("%q matches %d tags, use a longer prefix", key, len(matches))
	}
}
