package service_interfaces

import (
	"context"

	"github.com/api-sage/currency-converter/internal/adapter/http/models"
)

type RateService interface {
	GetRates(ctx context.Context) (models.RateSnapshot, error)
}
