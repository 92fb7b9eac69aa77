package alerts

import (
	"context"
	"fmt"

	"go.uber.org/multierr"
	"go.uber.org/zap"
	"liyu1981.xyz/trade-alerts/pkg/common"
	"liyu1981.xyz/trade-alerts/pkg/models"
)

// reapTriggered notifies and deletes triggered alerts in order. It returns how
// many were deleted; deletions already done are never rolled back.
func (a *Alerts) reapTriggered(ctx context.Context, triggered []models.TriggeredAlert) (int, error) {
	opts := a.Options.withDefaults()
	logger := common.GetCategoryLogger(common.LoggerNameAlertsCore, common.LoggerCategoryReap)

	ctx, span := tracer.Start(ctx, "alerts.ReapTriggered")
	defer span.End()

	var errs error
	reaped := 0
	for _, t := range triggered {
		if err := ctx.Err(); err != nil {
			return reaped, failSpan(span, multierr.Append(errs, err))
		}

		if err := a.reapOne(ctx, t); err != nil {
			logger.Error("Failed to reap alert", zap.String("hash", t.Alert.Hash), zap.Error(err))
			if opts.ReapPolicy == ReapFailFast {
				return reaped, failSpan(span, err)
			}
			errs = multierr.Append(errs, err)
			continue
		}

		reaped++
		alertsReapedTotal.Inc()
		logger.Info("Alert reaped", zap.String("hash", t.Alert.Hash), zap.String("symbol", t.Alert.Symbol))
	}

	if errs != nil {
		return reaped, failSpan(span, errs)
	}
	return reaped, nil
}

func (a *Alerts) reapOne(ctx context.Context, t models.TriggeredAlert) error {
	if a.Notifier != nil {
		if err := a.Notifier.Notify(ctx, t); err != nil {
			return fmt.Errorf("notify %s: %w", t.Alert.Hash, err)
		}
	}

	id, err := a.Store.ResolveIDByHash(ctx, t.Alert.Hash, a.Table)
	if err != nil {
		return asStoreError("resolve id", err)
	}

	if err := a.Store.DeleteRow(ctx, a.Table.Tablename, id); err != nil {
		return asStoreError("delete row", err)
	}
	return nil
}
