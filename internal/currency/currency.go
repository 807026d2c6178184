// Package currency maps currency codes to display symbols. Purely
// presentational; no exchange-rate conversion exists anywhere.
package currency

// symbols is the fixed code-to-symbol table.
var symbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"INR": "₹",
	"JPY": "¥",
	"AUD": "A$",
	"CAD": "C$",
}

// Symbol returns the display symbol for a currency code, falling back to the
// code itself for unknown currencies.
func Symbol(code string) string {
	if symbol, ok := symbols[code]; ok {
		return symbol
	}
	return code
}

// Codes returns the supported currency codes in a stable order.
func Codes() []string {
	return []string{"USD", "EUR", "GBP", "INR", "JPY", "AUD", "CAD"}
}
