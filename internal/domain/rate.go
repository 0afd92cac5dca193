package domain

// HomeCurrency is the currency every rate in a RateTable is quoted against.
// The Bank of Taiwan sheet quotes foreign currencies in TWD, so the home
// entry is 1 by definition.
const HomeCurrency = "TWD"

// RateTable maps a 3-letter currency code to units of home currency per one
// unit of that currency. A valid table always contains HomeCurrency with
// rate exactly 1.
type RateTable map[string]float64

func (t RateTable) Has(code string) bool {
	_, ok := t[code]
	return ok
}

// Clone returns an independent copy so callers cannot mutate shared state.
func (t RateTable) Clone() RateTable {
	out := make(RateTable, len(t))
	for code, rate := range t {
		out[code] = rate
	}
	return out
}

// Currencies conventionally quoted without minor units.
var zeroDecimalCurrencies = map[string]struct{}{
	"JPY": {},
	"KRW": {},
	"VND": {},
}

func IsZeroDecimal(code string) bool {
	_, ok := zeroDecimalCurrencies[code]
	return ok
}
