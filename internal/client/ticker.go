package client

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tidwall/gjson"
)

const defaultTickerURL = "https://min-api.cryptocompare.com/data/price?fsym=BTC&tsyms=USD"

// TickerClient fetches the decorative BTC/USD quote shown alongside the
// converter. It is independent of the rate pipeline; failures only surface
// as an "Unavailable" display.
type TickerClient struct {
	url        string
	httpClient *http.Client
}

func NewTickerClient(timeout time.Duration) *TickerClient {
	return &TickerClient{
		url:        defaultTickerURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (t *TickerClient) BTCPrice(ctx context.Context) (decimal.Decimal, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, t.url, nil)
	if err != nil {
		return decimal.Decimal{}, err
	}

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return decimal.Decimal{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return decimal.Decimal{}, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return decimal.Decimal{}, err
	}

	price := gjson.GetBytes(body, "USD")
	if !price.Exists() {
		return decimal.Decimal{}, fmt.Errorf("no USD price in response")
	}

	return decimal.NewFromFloat(price.Float()), nil
}
