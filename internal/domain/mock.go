package domain

// MockRates returns the fixed offline-fallback table used when live data is
// unavailable. Values are plausible static TWD quotes, one per supported
// currency.
func MockRates() RateTable {
	return RateTable{
		"USD": 32.5,
		"EUR": 35.2,
		"GBP": 41.8,
		"JPY": 0.21,
		"TWD": 1,
		"CNY": 4.5,
		"KRW": 0.024,
		"AUD": 21.5,
		"CAD": 23.8,
		"CHF": 36.5,
		"HKD": 4.15,
		"SGD": 24.2,
	}
}
