package alerts

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"liyu1981.xyz/trade-alerts/pkg/common"
	"liyu1981.xyz/trade-alerts/pkg/models"
)

func (a *Alerts) addAlert(ctx context.Context, input *models.NewAlert) (string, error) {
	logger := common.GetCategoryLogger(common.LoggerNameAlertsCore, common.LoggerCategoryManage)

	if input.UserID == "" || input.Symbol == "" {
		return "", fmt.Errorf("%w: user id and symbol are required", models.ErrInvalidAlert)
	}
	if !input.Direction.IsValid() {
		return "", fmt.Errorf("%w: unknown direction %q", models.ErrInvalidAlert, input.Direction)
	}

	opts := a.Options.withDefaults()
	alert := models.Alert{
		Hash:       GenerateHash(opts.HashPrefix, input.UserID, input.Symbol, input.PriceLevel, opts.Now()),
		Symbol:     input.Symbol,
		PriceLevel: input.PriceLevel,
		UserID:     input.UserID,
		Direction:  input.Direction,
	}

	logger.Info("Received alert for user", zap.Reflect("alert", alert))

	if err := a.Store.InsertIfUnique(ctx, a.Table, alert.ToRow(a.Table)); err != nil {
		return "", err
	}

	logger.Info("Stored alert for user", zap.Reflect("alert", alert))
	return alert.Hash, nil
}

func (a *Alerts) hashesByUser(ctx context.Context, userID string) ([]string, error) {
	rows, err := a.Store.SelectWhere(ctx, a.Table, a.Table.UserIDColumnName, userID)
	if err != nil {
		return nil, err
	}

	hashes := make([]string, 0, len(rows))
	for _, row := range rows {
		if hash, ok := row[a.Table.HashColumnName].(string); ok && hash != "" {
			hashes = append(hashes, hash)
		}
	}
	return hashes, nil
}

func (a *Alerts) detailsByHash(ctx context.Context, hash string) (*models.Alert, error) {
	rows, err := a.Store.SelectWhere(ctx, a.Table, a.Table.HashColumnName, hash)
	if err != nil {
		return nil, err
	}

	switch len(rows) {
	case 0:
		return nil, fmt.Errorf("alert %s: %w", hash, models.ErrNotFound)
	case 1:
	default:
		ids := make([]models.RowID, 0, len(rows))
		for _, row := range rows {
			if alert, ok := models.AlertFromRow(row, a.Table); ok {
				ids = append(ids, alert.ID)
			}
		}
		return nil, &models.AmbiguousHashError{Hash: hash, IDs: ids}
	}

	alert, ok := models.AlertFromRow(rows[0], a.Table)
	if !ok {
		return nil, fmt.Errorf("alert %s: incomplete row", hash)
	}
	return &alert, nil
}

func (a *Alerts) verifyHash(ctx context.Context, hash string) (bool, error) {
	rows, err := a.Store.SelectWhere(ctx, a.Table, a.Table.HashColumnName, hash)
	if err != nil {
		return false, err
	}
	return len(rows) > 0, nil
}

type IManagerImpl struct {
	alerts *Alerts
}

func (im *IManagerImpl) AddAlert(ctx context.Context, input *models.NewAlert) (string, error) {
	return im.alerts.addAlert(ctx, input)
}

func (im *IManagerImpl) HashesByUser(ctx context.Context, userID string) ([]string, error) {
	return im.alerts.hashesByUser(ctx, userID)
}

func (im *IManagerImpl) DetailsByHash(ctx context.Context, hash string) (*models.Alert, error) {
	return im.alerts.detailsByHash(ctx, hash)
}

func (im *IManagerImpl) VerifyHash(ctx context.Context, hash string) (bool, error) {
	return im.alerts.verifyHash(ctx, hash)
}

func (a *Alerts) GetIManager() IManager {
	return &IManagerImpl{alerts: a}
}
