package alerts

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"liyu1981.xyz/trade-alerts/pkg/common"
	"liyu1981.xyz/trade-alerts/pkg/models"
)

var tracer = otel.Tracer("liyu1981.xyz/trade-alerts/pkg/alerts")

func failSpan(span trace.Span, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	return err
}

func asStoreError(op string, err error) error {
	var storeErr *models.StoreError
	if errors.As(err, &storeErr) || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return &models.StoreError{Op: op, Err: err}
}

func (a *Alerts) checkTriggered(ctx context.Context) (*models.PassResult, error) {
	opts := a.Options.withDefaults()
	result := &models.PassResult{PassID: uuid.NewString()}

	logger := common.GetCategoryLogger(common.LoggerNameAlertsCore, common.LoggerCategoryPass).
		With(zap.String("pass_id", result.PassID))

	ctx, span := tracer.Start(ctx, "alerts.CheckTriggered")
	defer span.End()

	// gather
	symbols, err := a.Store.DistinctSymbols(ctx, a.Table)
	if err != nil {
		logger.Error("Failed to gather symbols", zap.Error(err))
		return nil, failSpan(span, asStoreError("distinct symbols", err))
	}
	symbols = common.Unique(symbols)
	result.Symbols = len(symbols)
	logger.Info("Gathered symbols", zap.Strings("symbols", symbols))

	if err := ctx.Err(); err != nil {
		return nil, failSpan(span, err)
	}

	// quote
	quotes, err := a.fetchQuotes(ctx, symbols, opts.QuoteConcurrency)
	if err != nil {
		logger.Error("Aborting pass, quote failed", zap.Error(err))
		return nil, failSpan(span, err)
	}
	prices := make(map[string]float64, len(quotes))
	for _, quote := range quotes {
		prices[quote.Symbol] = quote.Price
	}
	logger.Info("Fetched prices", zap.Any("prices", prices))

	if err := ctx.Err(); err != nil {
		return nil, failSpan(span, err)
	}

	// evaluate
	rows, err := a.Store.AllAlerts(ctx, a.Table)
	if err != nil {
		logger.Error("Failed to fetch alert rows", zap.Error(err))
		return nil, failSpan(span, asStoreError("all alerts", err))
	}
	result.Rows = len(rows)

	now := opts.Now()
	for _, row := range rows {
		alert, ok := models.AlertFromRow(row, a.Table)
		if !ok {
			result.Skipped++
			logger.Debug("Skipping incomplete alert row", zap.Any("row", row))
			continue
		}

		price, ok := prices[alert.Symbol]
		if !ok {
			logger.Debug("No quote for alert symbol", zap.String("symbol", alert.Symbol), zap.String("hash", alert.Hash))
			continue
		}

		if !Triggered(alert, price, opts.Tolerance) {
			continue
		}

		logger.Info("Alert triggered",
			zap.String("hash", alert.Hash),
			zap.String("symbol", alert.Symbol),
			zap.Float64("price_level", alert.PriceLevel),
			zap.String("direction", string(alert.Direction)),
			zap.Float64("price", price),
		)
		result.Triggered = append(result.Triggered, models.TriggeredAlert{
			Alert:       alert,
			Price:       price,
			TriggeredAt: now,
		})
	}

	alertRowsSkippedTotal.Add(float64(result.Skipped))
	alertsTriggeredTotal.Add(float64(len(result.Triggered)))

	span.SetAttributes(
		attribute.Int("alerts.symbols", result.Symbols),
		attribute.Int("alerts.rows", result.Rows),
		attribute.Int("alerts.triggered", len(result.Triggered)),
	)

	return result, nil
}

func (a *Alerts) runPass(ctx context.Context) (*models.PassResult, error) {
	ctx, span := tracer.Start(ctx, "alerts.RunPass")
	defer span.End()

	if err := a.acquirePass(ctx); err != nil {
		passesTotal.WithLabelValues(passResultCheckError).Inc()
		return nil, failSpan(span, err)
	}
	defer a.releasePass()

	result, err := a.checkTriggered(ctx)
	if err != nil {
		passesTotal.WithLabelValues(passResultCheckError).Inc()
		return nil, failSpan(span, err)
	}

	logger := common.GetCategoryLogger(common.LoggerNameAlertsCore, common.LoggerCategoryPass).
		With(zap.String("pass_id", result.PassID))

	if err := ctx.Err(); err != nil {
		passesTotal.WithLabelValues(passResultCheckError).Inc()
		return result, failSpan(span, err)
	}

	result.Reaped, err = a.reapTriggered(ctx, result.Triggered)
	if err != nil {
		passesTotal.WithLabelValues(passResultReapError).Inc()
		logger.Error("Pass finished with reap failure",
			zap.Int("triggered", len(result.Triggered)),
			zap.Int("reaped", result.Reaped),
			zap.Error(err),
		)
		return result, failSpan(span, err)
	}

	passesTotal.WithLabelValues(passResultOK).Inc()
	logger.Info("Pass finished",
		zap.Int("symbols", result.Symbols),
		zap.Int("rows", result.Rows),
		zap.Int("skipped", result.Skipped),
		zap.Int("triggered", len(result.Triggered)),
		zap.Int("reaped", result.Reaped),
	)
	return result, nil
}

type IEvaluatorImpl struct {
	alerts *Alerts
}

func (ie *IEvaluatorImpl) RunPass(ctx context.Context) (*models.PassResult, error) {
	return ie.alerts.runPass(ctx)
}

func (ie *IEvaluatorImpl) CheckTriggered(ctx context.Context) (*models.PassResult, error) {
	return ie.alerts.checkTriggered(ctx)
}

func (ie *IEvaluatorImpl) ReapTriggered(ctx context.Context, triggered []models.TriggeredAlert) (int, error) {
	return ie.alerts.reapTriggered(ctx, triggered)
}

func (a *Alerts) GetIEvaluator() IEvaluator {
	return &IEvaluatorImpl{alerts: a}
}
