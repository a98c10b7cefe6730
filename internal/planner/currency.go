// Package planner holds the pure plan-generation heuristics: the currency
// table, regional budget allocations, the checklist template and the budget
// breakdown. Everything here is deterministic and side-effect free; the
// constant tables are injected rather than referenced as globals so they
// stay read-only across concurrent requests.
package planner

import "github.com/shopspring/decimal"

// Supported currency codes. USD is the fixed base.
const (
	CurrencyUSD = "USD"
	CurrencyLBP = "LBP"
	CurrencyAED = "AED"
	CurrencySAR = "SAR"
	CurrencyEGP = "EGP"
)

// Currencies lists the supported codes in display order.
var Currencies = []string{CurrencyUSD, CurrencyLBP, CurrencyAED, CurrencySAR, CurrencyEGP}

// RateTable maps a currency code to its exchange rate in units per USD.
type RateTable map[string]float64

// DefaultRates returns the static rate table. Rates are fixed planning
// heuristics, not live FX quotes.
func DefaultRates() RateTable {
	return RateTable{
		CurrencyUSD: 1.0,
		CurrencyLBP: 89500.0,
		CurrencyAED: 3.67,
		CurrencySAR: 3.75,
		CurrencyEGP: 50.0,
	}
}

// Converter converts amounts between USD and the supported currencies using
// a fixed rate table.
type Converter struct {
	rates RateTable
}

// NewConverter creates a converter over the given rate table.
func NewConverter(rates RateTable) *Converter {
	return &Converter{rates: rates}
}

// Rate returns the units-per-USD rate for the given code. Unknown codes
// resolve to 1.0: the amount is treated as USD instead of failing. This is
// a deliberate lenient policy for data that slipped past validation.
func (c *Converter) Rate(code string) float64 {
	if rate, ok := c.rates[code]; ok {
		return rate
	}
	return 1.0
}

// FromUSD converts a USD amount into the given currency, rounded to two
// decimal places.
func (c *Converter) FromUSD(amountUSD float64, code string) float64 {
	d := decimal.NewFromFloat(amountUSD).Mul(decimal.NewFromFloat(c.Rate(code)))
	f, _ := d.Round(2).Float64()
	return f
}

// ToUSD converts an amount in the given currency into USD, rounded to two
// decimal places.
func (c *Converter) ToUSD(amount float64, code string) float64 {
	d := decimal.NewFromFloat(amount).Div(decimal.NewFromFloat(c.Rate(code)))
	f, _ := d.Round(2).Float64()
	return f
}

// Rates returns a copy of the rate table for client-side display.
func (c *Converter) Rates() map[string]float64 {
	out := make(map[string]float64, len(c.rates))
	for code, rate := range c.rates {
		out[code] = rate
	}
	return out
}
