package domain

import (
	"strconv"
	"strings"
)

// Field offsets fixed by the Bank of Taiwan daily CSV sheet.
const (
	currencyField = 0
	cashBuyField  = 2
	spotBuyField  = 3
	cashSellField = 12
	spotSellField = 13

	minRowFields = 14
)

// NormalizeRateSheet turns the raw CSV sheet into a RateTable of mid-market
// rates. Spot quotes are preferred; a row whose spot buy or sell is absent,
// non-numeric or exactly zero falls back to the cash pair. A row is omitted
// unless the chosen pair is fully numeric and strictly positive. Duplicate
// currency rows overwrite earlier ones. The home currency entry is seeded
// unconditionally, so an empty sheet still yields a valid table.
func NormalizeRateSheet(sheet string) RateTable {
	table := RateTable{HomeCurrency: 1}

	lines := strings.Split(sheet, "\n")
	for i, line := range lines {
		if i == 0 {
			// header line
			continue
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		fields := strings.Split(line, ",")
		if len(fields) < minRowFields {
			continue
		}

		code := strings.TrimSpace(fields[currencyField])
		if code == "" {
			continue
		}
		if code == HomeCurrency {
			// keep the seeded identity entry
			continue
		}

		buy, buyOK := parseQuote(fields[spotBuyField])
		sell, sellOK := parseQuote(fields[spotSellField])
		if !buyOK || buy == 0 || !sellOK || sell == 0 {
			buy, buyOK = parseQuote(fields[cashBuyField])
			sell, sellOK = parseQuote(fields[cashSellField])
		}

		if buyOK && buy > 0 && sellOK && sell > 0 {
			table[code] = (buy + sell) / 2
		}
	}

	return table
}

func parseQuote(field string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
