// Package aggregate computes month filters, groupings, and spend summaries
// over expense slices. All functions are pure and never mutate their input.
package aggregate

import (
	"sort"
	"time"

	"tally/internal/model"
)

// Uncategorized labels tag groups whose tag id no longer resolves.
const Uncategorized = "Uncategorized"

// FilterByMonth returns the expenses whose date falls in the same local
// calendar year and month as ref. Input order is preserved.
func FilterByMonth(expenses []model.Expense, ref time.Time) []model.Expense {
	refYear, refMonth, _ := ref.Local().Date()

	var result []model.Expense
	for _, e := range expenses {
		y, m, _ := e.Date.Local().Date()
		if y == refYear && m == refMonth {
			result = append(result, e)
		}
	}
	return result
}

// GroupByDate partitions expenses into per-day groups. Groups appear in
// first-seen order of each calendar day in the input, not chronologically,
// and expenses keep their relative order within a group.
func GroupByDate(expenses []model.Expense) []model.ExpenseGroup {
	idx := make(map[string]int)
	var groups []model.ExpenseGroup

	for _, e := range expenses {
		local := e.Date.Local()
		key := local.Format("2006-01-02")
		i, ok := idx[key]
		if !ok {
			i = len(groups)
			idx[key] = i
			groups = append(groups, model.ExpenseGroup{
				Key:      key,
				Label:    local.Format("January 2, 2006"),
				Currency: currencyOrDefault(e.Currency),
			})
		}
		groups[i].Expenses = append(groups[i].Expenses, e)
		groups[i].Total += e.Amount
	}
	return groups
}

// GroupByTag partitions expenses by raw tag id, in first-seen order of each
// distinct id. Groups whose id matches no tag are labeled Uncategorized and
// carry no color.
func GroupByTag(expenses []model.Expense, tags []model.Tag) []model.ExpenseGroup {
	byID := make(map[string]model.Tag, len(tags))
	for _, t := range tags {
		byID[t.ID] = t
	}

	idx := make(map[string]int)
	var groups []model.ExpenseGroup

	for _, e := range expenses {
		i, ok := idx[e.TagID]
		if !ok {
			g := model.ExpenseGroup{
				Key:      e.TagID,
				Label:    Uncategorized,
				Currency: currencyOrDefault(e.Currency),
			}
			if t, found := byID[e.TagID]; found {
				g.Label = t.Name
				color := t.Color
				g.Color = &color
			}
			i = len(groups)
			idx[e.TagID] = i
			groups = append(groups, g)
		}
		groups[i].Expenses = append(groups[i].Expenses, e)
		groups[i].Total += e.Amount
	}
	return groups
}

// Summarize computes the grand total across all expenses plus per-tag totals
// and percentage shares. Only tags with a non-zero total are returned, sorted
// by total descending; ties keep the input order of tags.
func Summarize(expenses []model.Expense, tags []model.Tag) (float64, []model.TagWithTotal) {
	var grand float64
	totalByTag := make(map[string]float64)
	for _, e := range expenses {
		grand += e.Amount
		totalByTag[e.TagID] += e.Amount
	}

	var totals []model.TagWithTotal
	for _, t := range tags {
		total := totalByTag[t.ID]
		if total <= 0 {
			continue
		}
		tt := model.TagWithTotal{Tag: t, Total: total}
		if grand > 0 {
			tt.Percentage = total / grand * 100
		}
		totals = append(totals, tt)
	}
	sort.SliceStable(totals, func(i, j int) bool {
		return totals[i].Total > totals[j].Total
	})

	return grand, totals
}

func currencyOrDefault(c model.Currency) model.Currency {
	if c == "" {
		return model.DefaultCurrency
	}
	return c
}
