package model

import (
	"errors"
	"testing"
	"time"

	"tally/internal/apperrors"
)

func validExpenseForm() ExpenseFormValues {
	return ExpenseFormValues{
		Name:   "Lunch",
		Amount: 12.50,
		Date:   time.Date(2024, 3, 5, 12, 0, 0, 0, time.Local),
		TagID:  "t1",
	}
}

func TestValidateExpenseForm(t *testing.T) {
	if err := ValidateExpenseForm(validExpenseForm()); err != nil {
		t.Fatalf("valid form rejected: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*ExpenseFormValues)
	}{
		{"empty name", func(v *ExpenseFormValues) { v.Name = "" }},
		{"zero amount", func(v *ExpenseFormValues) { v.Amount = 0 }},
		{"negative amount", func(v *ExpenseFormValues) { v.Amount = -3 }},
		{"empty tag id", func(v *ExpenseFormValues) { v.TagID = "" }},
		{"zero date", func(v *ExpenseFormValues) { v.Date = time.Time{} }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := validExpenseForm()
			tt.mutate(&v)
			err := ValidateExpenseForm(v)
			if !errors.Is(err, apperrors.ErrValidation) {
				t.Fatalf("got %v, want ErrValidation", err)
			}
		})
	}
}

func TestValidateTagForm(t *testing.T) {
	if err := ValidateTagForm(TagFormValues{Name: "Food", Color: ColorGreen}); err != nil {
		t.Fatalf("valid form rejected: %v", err)
	}

	for _, bad := range []TagFormValues{
		{Name: "", Color: ColorGreen},
		{Name: "Food", Color: "CHARTREUSE"},
		{Name: "Food", Color: ""},
	} {
		if err := ValidateTagForm(bad); !errors.Is(err, apperrors.ErrValidation) {
			t.Fatalf("ValidateTagForm(%+v) = %v, want ErrValidation", bad, err)
		}
	}
}

func TestCurrencyEnum(t *testing.T) {
	if len(Currencies) != 6 {
		t.Fatalf("len(Currencies) = %d, want 6", len(Currencies))
	}
	if DefaultCurrency != Currencies[0] {
		t.Fatalf("DefaultCurrency = %s, want first entry %s", DefaultCurrency, Currencies[0])
	}

	wantSymbols := map[Currency]string{
		Dollar: "$", Euro: "€", Pound: "£", Yen: "¥", Rupee: "₹", Won: "₩",
	}
	for c, sym := range wantSymbols {
		if !c.Valid() {
			t.Errorf("%s.Valid() = false", c)
		}
		if got := c.Symbol(); got != sym {
			t.Errorf("%s.Symbol() = %q, want %q", c, got, sym)
		}
	}

	if Currency("DOUBLOON").Valid() {
		t.Error("DOUBLOON reported valid")
	}
}

func TestColorEnum(t *testing.T) {
	if len(Colors) != 10 {
		t.Fatalf("len(Colors) = %d, want 10", len(Colors))
	}
	if DefaultColor != Colors[0] {
		t.Fatalf("DefaultColor = %s, want first entry %s", DefaultColor, Colors[0])
	}

	for _, c := range Colors {
		if !c.Valid() {
			t.Errorf("%s.Valid() = false", c)
		}
		v := c.Variants()
		if v.Base == "" || v.Border == "" || v.Accent == "" {
			t.Errorf("%s has incomplete variants: %+v", c, v)
		}
	}

	if Color("MAUVE").Valid() {
		t.Error("MAUVE reported valid")
	}
}
