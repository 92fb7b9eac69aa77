// Package pricefeed fetches the latest quote for a symbol from the quote API.
package pricefeed

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	neturl "net/url"
	"strings"
	"time"

	"github.com/spf13/cast"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"liyu1981.xyz/trade-alerts/pkg/common"
	"liyu1981.xyz/trade-alerts/pkg/models"
)

const (
	maxResponseBytes  = 1 << 20 // 1 MiB
	maxErrorBodyBytes = 4 << 10
	defaultTimeout    = 10 * time.Second
	apiKeyHeader      = "x-api-key"
)

type Config struct {
	Endpoint string
	APIKey   string
	Timeout  time.Duration
	// Limiter paces outbound calls. Nil means unpaced.
	Limiter *rate.Limiter
}

type Client struct {
	endpoint   string
	apiKey     string
	limiter    *rate.Limiter
	httpClient *http.Client
}

func NewClient(cfg Config) (*Client, error) {
	if cfg.Endpoint == "" {
		return nil, fmt.Errorf("%s is required", common.EnvKeyXylexAPIEndpoint)
	}
	parsed, err := neturl.Parse(cfg.Endpoint)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return nil, fmt.Errorf("%s must be an absolute URL", common.EnvKeyXylexAPIEndpoint)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &Client{
		endpoint:   cfg.Endpoint,
		apiKey:     cfg.APIKey,
		limiter:    cfg.Limiter,
		httpClient: &http.Client{Timeout: timeout},
	}, nil
}

func fetchError(symbol string, kind models.FetchErrorKind, err error) *models.FetchError {
	return &models.FetchError{Symbol: symbol, Kind: kind, Err: err}
}

func (c *Client) requestURL(symbol string) string {
	sep := "?"
	if strings.Contains(c.endpoint, "?") {
		sep = "&"
	}
	return c.endpoint + sep + "symbol=" + neturl.QueryEscape(symbol)
}

// FetchPrice performs exactly one GET for symbol. It never retries.
func (c *Client) FetchPrice(ctx context.Context, symbol string) (float64, error) {
	logger := common.GetCategoryLogger(common.LoggerNamePriceFeed, common.LoggerCategoryQuote)

	if symbol == "" {
		return 0, fetchError(symbol, models.FetchErrorMalformed, errors.New("empty symbol"))
	}

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return 0, fetchError(symbol, models.FetchErrorTransport, err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.requestURL(symbol), nil)
	if err != nil {
		return 0, fetchError(symbol, models.FetchErrorTransport, fmt.Errorf("create request: %w", err))
	}
	req.Header.Set(apiKeyHeader, c.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fetchError(symbol, models.FetchErrorTransport, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		return 0, fetchError(symbol, models.FetchErrorStatus,
			fmt.Errorf("quote API error %d: %s", resp.StatusCode, strings.TrimSpace(string(body))))
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return 0, fetchError(symbol, models.FetchErrorTransport, fmt.Errorf("read response: %w", err))
	}

	price, err := parsePrice(body)
	if err != nil {
		return 0, fetchError(symbol, models.FetchErrorMalformed, err)
	}

	logger.Debug("Fetched price", zap.String("symbol", symbol), zap.Float64("price", price))
	return price, nil
}

// parsePrice reads the price field, which the API sends either as a JSON
// number or as a numeric string.
func parsePrice(body []byte) (float64, error) {
	if !gjson.ValidBytes(body) {
		return 0, errors.New("response is not valid JSON")
	}

	field := gjson.GetBytes(body, "price")
	switch field.Type {
	case gjson.Number:
		return field.Float(), nil
	case gjson.String:
		price, err := cast.ToFloat64E(strings.TrimSpace(field.Str))
		if err != nil {
			return 0, fmt.Errorf("price %q is not numeric", field.Str)
		}
		if math.IsNaN(price) || math.IsInf(price, 0) {
			return 0, fmt.Errorf("price %q is not finite", field.Str)
		}
		return price, nil
	case gjson.Null:
		if !field.Exists() {
			return 0, errors.New("response has no price field")
		}
		return 0, errors.New("price is null")
	default:
		return 0, fmt.Errorf("price has unexpected type %s", field.Type)
	}
}

// FetchPrices quotes symbols one by one and stops at the first failure.
func (c *Client) FetchPrices(ctx context.Context, symbols []string) ([]models.PriceQuote, error) {
	quotes := make([]models.PriceQuote, 0, len(symbols))
	for _, symbol := range symbols {
		price, err := c.FetchPrice(ctx, symbol)
		if err != nil {
			return nil, err
		}
		quotes = append(quotes, models.PriceQuote{Symbol: symbol, Price: price})
	}
	return quotes, nil
}
