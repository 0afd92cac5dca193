// Package cache holds the normalized rate table between upstream scrapes,
// so the daily feed is not re-fetched on every request.
package cache

import (
	"context"
	"time"

	"github.com/api-sage/currency-converter/internal/domain"
)

type RateCache interface {
	// Get returns the cached table and whether a live entry was found.
	Get(ctx context.Context) (domain.RateTable, bool, error)
	Set(ctx context.Context, table domain.RateTable, ttl time.Duration) error
}
