package cli

import (
	"strings"
	"testing"

	"tally/internal/model"
)

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		amount   float64
		currency model.Currency
		want     string
	}{
		{12.5, model.Dollar, "$12.50"},
		{0.05, model.Euro, "€0.05"},
		{1000, model.Yen, "¥1000.00"},
	}
	for _, tt := range tests {
		if got := FormatAmount(tt.amount, tt.currency); got != tt.want {
			t.Errorf("FormatAmount(%v, %s) = %q, want %q", tt.amount, tt.currency, got, tt.want)
		}
	}
}

func TestBar(t *testing.T) {
	if got := Bar(0, 10); strings.Contains(got, "█") {
		t.Errorf("Bar(0) = %q, want no filled cells", got)
	}
	if got := Bar(100, 10); strings.Contains(got, "░") {
		t.Errorf("Bar(100) = %q, want all filled", got)
	}
	if got := Bar(50, 10); strings.Count(got, "█") != 5 {
		t.Errorf("Bar(50) = %q, want 5 filled cells", got)
	}
	if got := Bar(150, 10); strings.Count(got, "█") != 10 {
		t.Errorf("Bar(150) = %q, want clamped to width", got)
	}
}

func TestShortID(t *testing.T) {
	if got := ShortID("0123456789abcdef"); got != "01234567" {
		t.Errorf("ShortID = %q, want 01234567", got)
	}
	if got := ShortID("abc"); got != "abc" {
		t.Errorf("ShortID = %q, want abc", got)
	}
}
