// Package model defines the domain types for tally: expenses, tags, and the
// derived view models produced by the aggregation engine.
package model

import "time"

// Expense is a single dated monetary entry assigned to exactly one tag.
type Expense struct {
	ID       string
	Name     string
	Amount   float64
	Currency Currency
	Date     time.Time
	TagID    string
}

// Tag is a user-defined expense category with a name and a display color.
type Tag struct {
	ID    string
	Name  string
	Color Color
}

// ExpenseFormValues carries user input for creating or updating an expense.
type ExpenseFormValues struct {
	Name     string
	Amount   float64
	Currency Currency
	Date     time.Time
	TagID    string
}

// TagFormValues carries user input for creating or updating a tag.
type TagFormValues struct {
	Name  string
	Color Color
}

// Snapshot is the unit of state the persistence collaborator loads at
// startup and saves after each mutation.
type Snapshot struct {
	Expenses        []Expense
	Tags            []Tag
	DefaultCurrency Currency
}

// ExpenseGroup is a bucket of expenses sharing a date or a tag, with an
// aggregate total. Recomputed on demand, never persisted.
type ExpenseGroup struct {
	Key      string
	Label    string
	Color    *Color // set for tag groups whose tag still exists
	Expenses []Expense
	Total    float64
	Currency Currency
}

// TagWithTotal pairs a tag with its spend total and its share of the grand
// total, expressed as a 0-100 percentage.
type TagWithTotal struct {
	Tag
	Total      float64
	Percentage float64
}
