// Package nbp fetches the PLN-per-USD mid rate from the NBP exchange-rate API.
package nbp

import (
	"context"
	"currency-exchange-api/config"
	"currency-exchange-api/logger"
	"currency-exchange-api/model"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

var (
	// ErrRateUnavailable marks transient failures: network errors, timeouts
	// and upstream 5xx responses. Callers may retry the whole operation.
	ErrRateUnavailable = errors.New("currency rate service unavailable")
	// ErrBadRateResponse marks permanent failures: a payload that does not
	// match the published response shape. Retrying will not help.
	ErrBadRateResponse = errors.New("malformed currency rate response")
)

const usdRatePath = "/rates/A/USD?format=json"

// Client calls the NBP API with a bounded fixed-backoff retry policy.
// The exchange logic never retries on its own; classification and retries
// live here.
type Client struct {
	httpClient    *http.Client
	baseURL       string
	retryAttempts int
	retryBackoff  time.Duration
}

func NewClient(cfg config.NBPConfig) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second,
		},
		baseURL:       cfg.BaseURL,
		retryAttempts: cfg.RetryAttempts,
		retryBackoff:  time.Duration(cfg.RetryBackoffMS) * time.Millisecond,
	}
}

// GetUSDMidRate returns the latest published PLN-per-USD mid rate.
func (c *Client) GetUSDMidRate(ctx context.Context) (decimal.Decimal, error) {
	url := c.baseURL + usdRatePath
	log := logger.Log.WithField("url", url)

	var lastErr error
	for attempt := 1; attempt <= c.retryAttempts; attempt++ {
		rate, retryable, err := c.fetchRate(ctx, url)
		if err == nil {
			return rate, nil
		}
		if !retryable {
			log.WithError(err).Error("NBP returned an unusable response")
			return decimal.Decimal{}, err
		}

		lastErr = err
		log.WithFields(logrus.Fields{
			"attempt": attempt,
			"error":   err.Error(),
		}).Warn("NBP rate fetch failed, will retry")

		if attempt < c.retryAttempts {
			select {
			case <-time.After(c.retryBackoff):
			case <-ctx.Done():
				return decimal.Decimal{}, fmt.Errorf("%w: %v", ErrRateUnavailable, ctx.Err())
			}
		}
	}

	return decimal.Decimal{}, fmt.Errorf("%w: %v", ErrRateUnavailable, lastErr)
}

func (c *Client) fetchRate(ctx context.Context, url string) (decimal.Decimal, bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return decimal.Decimal{}, false, fmt.Errorf("%w: %v", ErrBadRateResponse, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return decimal.Decimal{}, true, err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
	case resp.StatusCode >= http.StatusInternalServerError:
		return decimal.Decimal{}, true, fmt.Errorf("NBP responded with status %d", resp.StatusCode)
	default:
		return decimal.Decimal{}, false, fmt.Errorf("%w: unexpected status %d", ErrBadRateResponse, resp.StatusCode)
	}

	var payload model.CurrencyRateResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return decimal.Decimal{}, false, fmt.Errorf("%w: %v", ErrBadRateResponse, err)
	}
	if len(payload.Rates) == 0 {
		return decimal.Decimal{}, false, fmt.Errorf("%w: no rates in payload", ErrBadRateResponse)
	}

	mid := payload.Rates[0].Mid
	if !mid.IsPositive() {
		return decimal.Decimal{}, false, fmt.Errorf("%w: non-positive mid rate '%s'", ErrBadRateResponse, mid)
	}
	return mid, false, nil
}
