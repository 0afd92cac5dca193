package models

import "github.com/api-sage/currency-converter/internal/domain"

// RateSnapshot is the wire contract of GET /api/rates. A successful snapshot
// carries base, date and rates; a failed one carries only a message.
type RateSnapshot struct {
	Success bool             `json:"success"`
	Base    string           `json:"base,omitempty"`
	Date    string           `json:"date,omitempty"`
	Rates   domain.RateTable `json:"rates,omitempty"`
	Message string           `json:"message,omitempty"`
}

func SuccessSnapshot(base string, date string, rates domain.RateTable) RateSnapshot {
	return RateSnapshot{
		Success: true,
		Base:    base,
		Date:    date,
		Rates:   rates,
	}
}

func FailureSnapshot(message string) RateSnapshot {
	return RateSnapshot{
		Success: false,
		Message: message,
	}
}
