// Package client owns the consumer side of the rate endpoint: the
// live/offline rate state, the periodic refresh scheduler and the pure
// conversion arithmetic that the UI layer renders.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/api-sage/currency-converter/internal/adapter/http/models"
	"github.com/api-sage/currency-converter/internal/domain"
	"github.com/api-sage/currency-converter/internal/logger"
)

// Mode tracks which rate table and status text are shown.
type Mode int

const (
	ModeConnecting Mode = iota
	ModeLive
	ModeOffline
)

func (m Mode) String() string {
	switch m {
	case ModeLive:
		return "live"
	case ModeOffline:
		return "offline"
	default:
		return "connecting"
	}
}

const (
	SourceLive = "Bank of Taiwan (Mid-Market Rate)"
	SourceMock = "Mock Data"
)

type Config struct {
	BaseURL string
	Timeout time.Duration
}

// Controller is the single owner of the client-side rate table and mode for
// its lifetime. Refresh may be invoked concurrently with itself; overlapping
// calls race and the last response to resolve wins. The mutex guards map
// access only, it does not sequence responses.
type Controller struct {
	endpoint   string
	httpClient *http.Client

	// OnUpdate, when set before the first Refresh, fires after every state
	// change so the display layer can recompute.
	OnUpdate func()

	mu          sync.Mutex
	table       domain.RateTable
	mode        Mode
	source      string
	lastUpdated time.Time
}

func NewController(cfg Config) *Controller {
	return &Controller{
		endpoint:   cfg.BaseURL + "/api/rates",
		httpClient: &http.Client{Timeout: cfg.Timeout},
		table:      domain.RateTable{},
		mode:       ModeConnecting,
	}
}

// Refresh fetches the endpoint once and transitions state: Live on a
// successful snapshot, Offline (with the mock table) on any failure. It
// never returns an error; every failure path ends in the offline fallback,
// which itself cannot fail.
func (c *Controller) Refresh(ctx context.Context) {
	snapshot, err := c.fetchSnapshot(ctx)
	if err != nil {
		logger.Error("rate refresh failed, switching to mock rates", err, nil)
		c.applyMock()
		return
	}

	if !snapshot.Success {
		logger.Error("rate endpoint reported failure, switching to mock rates", nil, logger.Fields{
			"message": snapshot.Message,
		})
		c.applyMock()
		return
	}

	table := snapshot.Rates
	if table == nil {
		table = domain.RateTable{}
	}
	if !table.Has(domain.HomeCurrency) {
		table[domain.HomeCurrency] = 1
	}

	c.mu.Lock()
	c.table = table
	c.mode = ModeLive
	c.source = SourceLive
	c.lastUpdated = time.Now()
	c.mu.Unlock()

	c.notify()
}

func (c *Controller) fetchSnapshot(ctx context.Context) (models.RateSnapshot, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint, nil)
	if err != nil {
		return models.RateSnapshot{}, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return models.RateSnapshot{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return models.RateSnapshot{}, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	var snapshot models.RateSnapshot
	if err := json.NewDecoder(resp.Body).Decode(&snapshot); err != nil {
		return models.RateSnapshot{}, fmt.Errorf("malformed snapshot: %w", err)
	}

	return snapshot, nil
}

// applyMock replaces the table wholesale with the fixed fallback values.
// This path has no network dependency.
func (c *Controller) applyMock() {
	c.mu.Lock()
	c.table = domain.MockRates()
	c.mode = ModeOffline
	c.source = SourceMock
	c.mu.Unlock()

	c.notify()
}

func (c *Controller) notify() {
	if c.OnUpdate != nil {
		c.OnUpdate()
	}
}

// Convert runs the conversion engine over the current table.
func (c *Controller) Convert(amount string, from string, to string) Conversion {
	c.mu.Lock()
	table := c.table
	c.mu.Unlock()

	return Convert(amount, from, to, table)
}

func (c *Controller) Mode() Mode {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.mode
}

func (c *Controller) Source() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.source
}

func (c *Controller) LastUpdated() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastUpdated
}

func (c *Controller) Rates() domain.RateTable {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.table.Clone()
}

// Close releases idle connections; the controller runs no goroutines of its
// own.
func (c *Controller) Close() {
	c.httpClient.CloseIdleConnections()
}
