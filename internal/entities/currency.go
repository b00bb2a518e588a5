package entities

import "strings"

// Currency is a validated, uppercased currency code.
type Currency string

// DefaultBase is the base currency used whenever the caller supplies none,
// or supplies one outside the known catalog.
const DefaultBase Currency = "EUR"

// currencies is the ECB currency catalog. Fixed at process start, membership
// test only.
var currencies = map[Currency]struct{}{
	"EUR": {},
	"USD": {},
	"JPY": {},
	"BGN": {},
	"CYP": {},
	"CZK": {},
	"DKK": {},
	"EEK": {},
	"GBP": {},
	"HUF": {},
	"LTL": {},
	"LVL": {},
	"MTL": {},
	"PLN": {},
	"ROL": {},
	"RON": {},
	"SEK": {},
	"SIT": {},
	"SKK": {},
	"CHF": {},
	"ISK": {},
	"ILS": {},
	"NOK": {},
	"HRK": {},
	"RUB": {},
	"TRL": {},
	"TRY": {},
	"AUD": {},
	"BRL": {},
	"CAD": {},
	"CNY": {},
	"HKD": {},
	"IDR": {},
	"INR": {},
	"KRW": {},
	"MXN": {},
	"MYR": {},
	"NZD": {},
	"PHP": {},
	"SGD": {},
	"THB": {},
	"ZAR": {},
}

func (c Currency) String() string {
	return string(c)
}

// Valid reports whether the code is part of the catalog.
func (c Currency) Valid() bool {
	_, ok := currencies[c]
	return ok
}

// NormalizeBase uppercases the caller-supplied base and falls back to
// DefaultBase when the result is empty or unknown.
func NormalizeBase(raw string) Currency {
	base := Currency(strings.ToUpper(strings.TrimSpace(raw)))
	if !base.Valid() {
		return DefaultBase
	}

	return base
}

// ParseSymbols turns a comma-separated symbols string into catalog-valid
// currencies. Tokens equal to base are dropped (a currency is never quoted
// against itself), unknown tokens are dropped silently, duplicates are kept.
// An empty input yields nil.
func ParseSymbols(raw string, base Currency) []Currency {
	normalized := strings.ToUpper(strings.TrimSpace(raw))
	if normalized == "" {
		return nil
	}

	var symbols []Currency
	for _, token := range strings.Split(normalized, ",") {
		symbol := Currency(strings.TrimSpace(token))
		if symbol != base && symbol.Valid() {
			symbols = append(symbols, symbol)
		}
	}

	return symbols
}
