package aggregate

import (
	"testing"
	"time"

	"tally/internal/model"
)

func expense(id string, amount float64, day time.Time, tagID string) model.Expense {
	return model.Expense{
		ID:       id,
		Name:     "expense " + id,
		Amount:   amount,
		Currency: model.Dollar,
		Date:     day,
		TagID:    tagID,
	}
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 10, 30, 0, 0, time.Local)
}

func sumAmounts(expenses []model.Expense) float64 {
	var total float64
	for _, e := range expenses {
		total += e.Amount
	}
	return total
}

func TestFilterByMonth(t *testing.T) {
	expenses := []model.Expense{
		expense("a", 10, day(2024, time.March, 5), "t1"),
		expense("b", 5, day(2024, time.April, 1), "t1"),
		expense("c", 7, day(2024, time.March, 31), "t2"),
		expense("d", 2, day(2023, time.March, 5), "t1"), // same month, wrong year
	}

	got := FilterByMonth(expenses, day(2024, time.March, 15))
	if len(got) != 2 {
		t.Fatalf("got %d expenses, want 2", len(got))
	}
	if got[0].ID != "a" || got[1].ID != "c" {
		t.Fatalf("got order [%s %s], want [a c]", got[0].ID, got[1].ID)
	}
}

func TestFilterByMonth_Empty(t *testing.T) {
	if got := FilterByMonth(nil, day(2024, time.March, 1)); len(got) != 0 {
		t.Fatalf("got %d expenses from nil input, want 0", len(got))
	}
}

func TestGroupByDate_SingleDay(t *testing.T) {
	d := day(2024, time.March, 5)
	groups := GroupByDate([]model.Expense{
		expense("a", 10, d, "t1"),
		expense("b", 5, d, "t2"),
	})

	if len(groups) != 1 {
		t.Fatalf("got %d groups, want 1", len(groups))
	}
	g := groups[0]
	if g.Key != "2024-03-05" {
		t.Errorf("key = %q, want 2024-03-05", g.Key)
	}
	if g.Label != "March 5, 2024" {
		t.Errorf("label = %q, want March 5, 2024", g.Label)
	}
	if g.Total != 15 {
		t.Errorf("total = %v, want 15", g.Total)
	}
	if g.Currency != model.Dollar {
		t.Errorf("currency = %s, want DOLLAR", g.Currency)
	}
	if len(g.Expenses) != 2 || g.Expenses[0].ID != "a" {
		t.Errorf("expenses lost their input order: %+v", g.Expenses)
	}
}

func TestGroupByDate_FirstSeenOrder(t *testing.T) {
	groups := GroupByDate([]model.Expense{
		expense("a", 1, day(2024, time.March, 5), "t1"),
		expense("b", 2, day(2024, time.March, 3), "t1"),
		expense("c", 3, day(2024, time.March, 5), "t1"),
	})

	if len(groups) != 2 {
		t.Fatalf("got %d groups, want 2", len(groups))
	}
	// Groups follow first occurrence in the input, not chronology.
	if groups[0].Key != "2024-03-05" || groups[1].Key != "2024-03-03" {
		t.Fatalf("group order = [%s %s], want [2024-03-05 2024-03-03]", groups[0].Key, groups[1].Key)
	}
	if groups[0].Expenses[0].ID != "a" || groups[0].Expenses[1].ID != "c" {
		t.Fatalf("within-group order broken: %+v", groups[0].Expenses)
	}
}

func TestGroupByDate_TotalsConserved(t *testing.T) {
	expenses := []model.Expense{
		expense("a", 10.25, day(2024, time.March, 5), "t1"),
		expense("b", 4.75, day(2024, time.March, 8), "t2"),
		expense("c", 3, day(2024, time.March, 5), "t1"),
		expense("d", 0.5, day(2024, time.April, 1), "t3"),
	}

	var groupSum float64
	for _, g := range GroupByDate(expenses) {
		groupSum += g.Total
	}
	if want := sumAmounts(expenses); groupSum != want {
		t.Fatalf("group totals sum to %v, want %v", groupSum, want)
	}
}

func TestGroupByDate_Empty(t *testing.T) {
	if groups := GroupByDate(nil); len(groups) != 0 {
		t.Fatalf("got %d groups from nil input, want 0", len(groups))
	}
}

func TestGroupByTag(t *testing.T) {
	tags := []model.Tag{
		{ID: "t1", Name: "Food", Color: model.ColorGreen},
		{ID: "t2", Name: "Transport", Color: model.ColorBlue},
	}
	expenses := []model.Expense{
		expense("a", 10, day(2024, time.March, 5), "t2"),
		expense("b", 5, day(2024, time.March, 6), "t1"),
		expense("c", 3, day(2024, time.March, 7), "t2"),
	}

	groups := GroupByTag(expenses, tags)
	if len(groups) != 2 {
		t.Fatalf("got %d groups, want 2", len(groups))
	}

	// First-seen order of tag ids: t2 then t1.
	if groups[0].Key != "t2" || groups[1].Key != "t1" {
		t.Fatalf("group order = [%s %s], want [t2 t1]", groups[0].Key, groups[1].Key)
	}
	if groups[0].Label != "Transport" {
		t.Errorf("label = %q, want Transport", groups[0].Label)
	}
	if groups[0].Color == nil || *groups[0].Color != model.ColorBlue {
		t.Errorf("color = %v, want BLUE", groups[0].Color)
	}
	if groups[0].Total != 13 {
		t.Errorf("t2 total = %v, want 13", groups[0].Total)
	}

	var groupSum float64
	for _, g := range groups {
		groupSum += g.Total
	}
	if want := sumAmounts(expenses); groupSum != want {
		t.Fatalf("group totals sum to %v, want %v", groupSum, want)
	}
}

func TestGroupByTag_Uncategorized(t *testing.T) {
	groups := GroupByTag([]model.Expense{
		expense("a", 10, day(2024, time.March, 5), "gone"),
	}, nil)

	if len(groups) != 1 {
		t.Fatalf("got %d groups, want 1", len(groups))
	}
	if groups[0].Label != Uncategorized {
		t.Errorf("label = %q, want %q", groups[0].Label, Uncategorized)
	}
	if groups[0].Color != nil {
		t.Errorf("color = %v, want nil", groups[0].Color)
	}
}

func TestSummarize(t *testing.T) {
	tags := []model.Tag{
		{ID: "t1", Name: "Food", Color: model.ColorGreen},
		{ID: "t2", Name: "Transport", Color: model.ColorBlue},
		{ID: "t3", Name: "Unused", Color: model.ColorGray},
	}
	expenses := []model.Expense{
		expense("a", 25, day(2024, time.March, 5), "t1"),
		expense("b", 75, day(2024, time.March, 6), "t2"),
	}

	grand, totals := Summarize(expenses, tags)
	if grand != 100 {
		t.Fatalf("grand total = %v, want 100", grand)
	}
	if len(totals) != 2 {
		t.Fatalf("got %d tag totals, want 2 (zero-total tags excluded)", len(totals))
	}

	// Descending by total.
	if totals[0].ID != "t2" || totals[1].ID != "t1" {
		t.Fatalf("order = [%s %s], want [t2 t1]", totals[0].ID, totals[1].ID)
	}
	if totals[0].Percentage != 75 || totals[1].Percentage != 25 {
		t.Fatalf("percentages = [%v %v], want [75 25]", totals[0].Percentage, totals[1].Percentage)
	}

	var pctSum float64
	for _, tt := range totals {
		if tt.Percentage < 0 || tt.Percentage > 100 {
			t.Errorf("%s percentage %v out of bounds", tt.Name, tt.Percentage)
		}
		pctSum += tt.Percentage
	}
	if pctSum > 100.0001 {
		t.Fatalf("percentages sum to %v, want <= 100", pctSum)
	}
}

func TestSummarize_TiesKeepTagOrder(t *testing.T) {
	tags := []model.Tag{
		{ID: "t1", Name: "First", Color: model.ColorGreen},
		{ID: "t2", Name: "Second", Color: model.ColorBlue},
	}
	expenses := []model.Expense{
		expense("a", 50, day(2024, time.March, 5), "t2"),
		expense("b", 50, day(2024, time.March, 6), "t1"),
	}

	_, totals := Summarize(expenses, tags)
	if totals[0].ID != "t1" || totals[1].ID != "t2" {
		t.Fatalf("tie order = [%s %s], want input tag order [t1 t2]", totals[0].ID, totals[1].ID)
	}
}

func TestSummarize_Empty(t *testing.T) {
	grand, totals := Summarize(nil, []model.Tag{{ID: "t1", Name: "Food", Color: model.ColorGreen}})
	if grand != 0 {
		t.Fatalf("grand total = %v, want 0", grand)
	}
	if len(totals) != 0 {
		t.Fatalf("got %d tag totals, want 0", len(totals))
	}
}
