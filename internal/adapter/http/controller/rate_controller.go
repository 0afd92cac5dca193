package controller

import (
	"context"
	"net/http"
	"time"

	"github.com/api-sage/currency-converter/internal/adapter/http/models"
)

type RateService interface {
	GetRates(ctx context.Context) (models.RateSnapshot, error)
}

type RateController struct {
	service RateService
}

func NewRateController(service RateService) *RateController {
	return &RateController{service: service}
}

func (c *RateController) RegisterRoutes(mux *http.ServeMux) {
	mux.Handle("/api/rates", http.HandlerFunc(c.getRates))
}

// getRates is a pure adapter: normalizer success maps to 200, any normalizer
// error maps to a 500 failure snapshot. Nothing propagates past this point.
func (c *RateController) getRates(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	if r.Method != http.MethodGet {
		writeJSON(w, http.StatusMethodNotAllowed, models.FailureSnapshot("method not allowed"))
		return
	}

	snapshot, err := c.service.GetRates(r.Context())
	if err != nil {
		logError(r, err, nil)
		writeJSON(w, http.StatusInternalServerError, snapshot)
		logResponse(r, http.StatusInternalServerError, start)
		return
	}

	writeJSON(w, http.StatusOK, snapshot)
	logResponse(r, http.StatusOK, start)
}
