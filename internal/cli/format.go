// Package cli provides formatting and rendering helpers for terminal output.
package cli

import (
	"fmt"
	"strings"

	"tally/internal/model"
)

// FormatAmount renders an amount with its currency symbol, e.g. "$12.50".
func FormatAmount(amount float64, c model.Currency) string {
	return fmt.Sprintf("%s%.2f", c.Symbol(), amount)
}

// FormatPercent renders a 0-100 percentage with one decimal, e.g. "42.3%".
func FormatPercent(p float64) string {
	return fmt.Sprintf("%.1f%%", p)
}

// FormatMonth renders a month cursor, e.g. "March 2024".
func FormatMonth(year int, month int) string {
	return fmt.Sprintf("%s %d", monthNames[month-1], year)
}

var monthNames = []string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// Bar renders a fixed-width percentage bar, e.g. "███░░░░░░░" for 30%.
func Bar(percent float64, width int) string {
	if width <= 0 {
		return ""
	}
	filled := int(percent/100*float64(width) + 0.5)
	if filled < 0 {
		filled = 0
	}
	if filled > width {
		filled = width
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

// ShortID returns a display-friendly id prefix.
func ShortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
