package services

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/api-sage/currency-converter/internal/logger"
	"github.com/api-sage/currency-converter/internal/usecase/service_interfaces"
)

const refreshTimeout = 30 * time.Second

// Refresher re-runs the rate service on a cron schedule so the cached table
// stays warm between user requests. Errors are logged and retried on the
// next tick, never fatal.
type Refresher struct {
	cron *cron.Cron
}

func NewRefresher(service service_interfaces.RateService, schedule string) (*Refresher, error) {
	c := cron.New()

	_, err := c.AddFunc(schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), refreshTimeout)
		defer cancel()

		if _, err := service.GetRates(ctx); err != nil {
			logger.Error("background rate refresh failed", err, nil)
			return
		}

		logger.Info("background rate refresh completed", nil)
	})
	if err != nil {
		return nil, err
	}

	return &Refresher{cron: c}, nil
}

func (r *Refresher) Start() {
	r.cron.Start()
}

func (r *Refresher) Stop() {
	r.cron.Stop()
}
