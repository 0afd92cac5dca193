package client

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/api-sage/currency-converter/internal/domain"
)

const (
	zeroDisplay        = "0.00"
	unavailableDisplay = "---"
	unavailableRate    = "Rate unavailable"
)

// Conversion is the displayable outcome of one conversion request.
// Unavailable marks a missing currency pair; it is reported, never raised.
type Conversion struct {
	Result      string
	Rate        string
	Unavailable bool
}

// Convert maps (amount, from, to, table) to display strings. Rates are
// quoted against the home currency, so from→to is table[from]/table[to].
// The function is pure; identical inputs always yield identical outputs.
func Convert(amount string, from string, to string, table domain.RateTable) Conversion {
	qty, err := decimal.NewFromString(strings.TrimSpace(amount))
	if err != nil {
		return Conversion{Result: zeroDisplay}
	}

	fromRate := table[from]
	toRate := table[to]
	if fromRate == 0 || toRate == 0 {
		return Conversion{
			Result:      unavailableDisplay,
			Rate:        unavailableRate,
			Unavailable: true,
		}
	}

	rate := fromRate / toRate
	result := qty.Mul(decimal.NewFromFloat(rate))

	digits := int32(2)
	if domain.IsZeroDecimal(to) {
		digits = 0
	}

	return Conversion{
		Result: fmt.Sprintf("%s %s", result.StringFixed(digits), to),
		Rate:   fmt.Sprintf("1 %s = %s %s", from, decimal.NewFromFloat(rate).StringFixed(4), to),
	}
}
