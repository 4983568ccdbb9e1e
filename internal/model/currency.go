package model

// Currency identifies one of the supported display currencies.
type Currency string

const (
	Dollar Currency = "DOLLAR"
	Euro   Currency = "EURO"
	Pound  Currency = "POUND"
	Yen    Currency = "YEN"
	Rupee  Currency = "RUPEE"
	Won    Currency = "WON"
)

// DefaultCurrency is the currency a fresh store starts with.
const DefaultCurrency = Dollar

// Currencies lists all supported currencies in display order.
var Currencies = []Currency{Dollar, Euro, Pound, Yen, Rupee, Won}

var currencySymbols = map[Currency]string{
	Dollar: "$",
	Euro:   "€",
	Pound:  "£",
	Yen:    "¥",
	Rupee:  "₹",
	Won:    "₩",
}

// Valid reports whether c is one of the supported currencies.
func (c Currency) Valid() bool {
	_, ok := currencySymbols[c]
	return ok
}

// Symbol returns the display symbol for the currency, e.g. "$" for DOLLAR.
func (c Currency) Symbol() string {
	return currencySymbols[c]
}
