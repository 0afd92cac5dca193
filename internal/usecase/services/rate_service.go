package services

import (
	"context"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/api-sage/currency-converter/internal/adapter/cache"
	"github.com/api-sage/currency-converter/internal/adapter/http/models"
	"github.com/api-sage/currency-converter/internal/domain"
	"github.com/api-sage/currency-converter/internal/logger"
	"github.com/api-sage/currency-converter/internal/usecase/service_interfaces"
)

// Verify that RateService implements the service_interfaces.RateService interface
var _ service_interfaces.RateService = (*RateService)(nil)

type SheetFetcher interface {
	FetchSheet(ctx context.Context) (string, error)
}

// RateService normalizes the upstream CSV sheet into a mid-market rate
// table. It holds no state of its own beyond the cache; every miss rebuilds
// the table from scratch.
type RateService struct {
	feed     SheetFetcher
	cache    cache.RateCache
	cacheTTL time.Duration
	group    singleflight.Group
}

func NewRateService(feed SheetFetcher, rateCache cache.RateCache, cacheTTL time.Duration) *RateService {
	return &RateService{feed: feed, cache: rateCache, cacheTTL: cacheTTL}
}

func (s *RateService) GetRates(ctx context.Context) (models.RateSnapshot, error) {
	if s.cacheEnabled() {
		table, found, err := s.cache.Get(ctx)
		if err != nil {
			logger.Error("rate service cache lookup failed", err, nil)
		} else if found {
			return models.SuccessSnapshot(domain.HomeCurrency, snapshotDate(), table), nil
		}
	}

	// Concurrent requests share one upstream fetch.
	v, err, _ := s.group.Do("rates", func() (any, error) {
		sheet, err := s.feed.FetchSheet(ctx)
		if err != nil {
			return nil, err
		}
		return domain.NormalizeRateSheet(sheet), nil
	})
	if err != nil {
		logger.Error("rate service upstream fetch failed", err, nil)
		return models.FailureSnapshot("Failed to fetch rates"), err
	}

	table := v.(domain.RateTable)

	if s.cacheEnabled() {
		if err := s.cache.Set(ctx, table, s.cacheTTL); err != nil {
			logger.Error("rate service cache store failed", err, nil)
		}
	}

	logger.Info("rate service normalized sheet", logger.Fields{
		"currencies": len(table),
	})

	return models.SuccessSnapshot(domain.HomeCurrency, snapshotDate(), table), nil
}

func (s *RateService) cacheEnabled() bool {
	return s.cache != nil && s.cacheTTL > 0
}

func snapshotDate() string {
	return time.Now().UTC().Format(time.RFC3339)
}
