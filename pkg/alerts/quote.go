package alerts

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"liyu1981.xyz/trade-alerts/pkg/common"
	"liyu1981.xyz/trade-alerts/pkg/models"
)

// fetchQuotes quotes every symbol with at most concurrency requests in flight.
// The first failure cancels the rest and is the only error returned; no partial
// quote set is ever handed back.
func (a *Alerts) fetchQuotes(ctx context.Context, symbols []string, concurrency int) ([]models.PriceQuote, error) {
	logger := common.GetCategoryLogger(common.LoggerNameAlertsCore, common.LoggerCategoryQuote)

	quotes := make([]models.PriceQuote, len(symbols))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i, symbol := range symbols {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			price, err := a.Feed.FetchPrice(gctx, symbol)
			if err != nil {
				fetchErr := asFetchError(symbol, err)
				if gctx.Err() != nil {
					// cancelled, not a failure of this symbol
					return fetchErr
				}
				quoteFailuresTotal.WithLabelValues(string(fetchErr.Kind)).Inc()
				logger.Warn("Failed to fetch price", zap.String("symbol", symbol), zap.Error(err))
				return fetchErr
			}

			logger.Debug("Fetched price", zap.String("symbol", symbol), zap.Float64("price", price))
			quotes[i] = models.PriceQuote{Symbol: symbol, Price: price}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return quotes, nil
}

func asFetchError(symbol string, err error) *models.FetchError {
	var fetchErr *models.FetchError
	if errors.As(err, &fetchErr) {
		return fetchErr
	}
	return &models.FetchError{Symbol: symbol, Kind: models.FetchErrorTransport, Err: err}
}

func (a *Alerts) FetchQuotes(ctx context.Context, symbols []string) ([]models.PriceQuote, error) {
	return a.fetchQuotes(ctx, symbols, a.Options.withDefaults().QuoteConcurrency)
}
