// Package feed retrieves the Bank of Taiwan daily exchange-rate CSV sheet.
package feed

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/api-sage/currency-converter/internal/domain"
)

type Client struct {
	feedURL    string
	httpClient *http.Client
}

func NewClient(feedURL string, timeout time.Duration) *Client {
	return &Client{
		feedURL:    feedURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// FetchSheet performs a single GET against the upstream feed. There is no
// retry here; a failed attempt surfaces to the caller as ErrFeedUnavailable.
func (c *Client) FetchSheet(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.feedURL, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrFeedUnavailable, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrFeedUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: unexpected status %d", domain.ErrFeedUnavailable, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrFeedUnavailable, err)
	}

	sheet := string(body)
	if strings.TrimSpace(sheet) == "" {
		return "", fmt.Errorf("%w: empty sheet", domain.ErrFeedUnavailable)
	}

	return sheet, nil
}
