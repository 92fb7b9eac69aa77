package postgrest

import (
	"context"
	"fmt"
	"net/http"
	neturl "net/url"
	"strconv"

	"github.com/spf13/cast"
	"go.uber.org/zap"
	"liyu1981.xyz/trade-alerts/pkg/common"
	"liyu1981.xyz/trade-alerts/pkg/models"
)

// AlertStore implements the alert store contract on top of a Client.
type AlertStore struct {
	client *Client
}

func NewAlertStore(client *Client) *AlertStore {
	return &AlertStore{client: client}
}

func storeError(op string, err error) error {
	if err == nil {
		return nil
	}
	return &models.StoreError{Op: op, Err: err}
}

func eq(column, value string) neturl.Values {
	return neturl.Values{column: []string{"eq." + value}}
}

func toRows(found []map[string]interface{}) []models.Row {
	rows := make([]models.Row, len(found))
	for i, row := range found {
		rows[i] = models.Row(row)
	}
	return rows
}

func (s *AlertStore) DistinctSymbols(ctx context.Context, cfg models.TableConfig) ([]string, error) {
	query := neturl.Values{"select": []string{cfg.SymbolColumnName}}
	found, err := s.client.requestRows(ctx, http.MethodGet, cfg.Tablename, query, nil)
	if err != nil {
		return nil, storeError("distinct symbols", err)
	}

	symbols := make([]string, 0, len(found))
	for _, row := range found {
		if symbol, ok := row[cfg.SymbolColumnName].(string); ok && symbol != "" {
			symbols = append(symbols, symbol)
		}
	}
	return common.Unique(symbols), nil
}

func (s *AlertStore) AllAlerts(ctx context.Context, cfg models.TableConfig) ([]models.Row, error) {
	query := neturl.Values{"select": []string{"*"}, "order": []string{"id.asc"}}
	found, err := s.client.requestRows(ctx, http.MethodGet, cfg.Tablename, query, nil)
	if err != nil {
		return nil, storeError("all alerts", err)
	}
	return toRows(found), nil
}

func (s *AlertStore) SelectWhere(ctx context.Context, cfg models.TableConfig, column string, value string) ([]models.Row, error) {
	query := eq(column, value)
	query.Set("select", "*")
	query.Set("order", "id.asc")

	found, err := s.client.requestRows(ctx, http.MethodGet, cfg.Tablename, query, nil)
	if err != nil {
		return nil, storeError("select", err)
	}
	return toRows(found), nil
}

func (s *AlertStore) ResolveIDByHash(ctx context.Context, hash string, cfg models.TableConfig) (models.RowID, error) {
	query := eq(cfg.HashColumnName, hash)
	query.Set("select", "id")
	query.Set("order", "id.asc")

	found, err := s.client.requestRows(ctx, http.MethodGet, cfg.Tablename, query, nil)
	if err != nil {
		return 0, storeError("resolve id", err)
	}

	ids := make([]models.RowID, 0, len(found))
	for _, row := range found {
		id, err := cast.ToInt64E(row["id"])
		if err != nil {
			return 0, storeError("resolve id", fmt.Errorf("hash %s: bad id %v: %w", hash, row["id"], err))
		}
		ids = append(ids, models.RowID(id))
	}

	switch len(ids) {
	case 0:
		return 0, storeError("resolve id", fmt.Errorf("hash %s: %w", hash, models.ErrNotFound))
	case 1:
		return ids[0], nil
	default:
		return 0, storeError("resolve id", &models.AmbiguousHashError{Hash: hash, IDs: ids})
	}
}

func (s *AlertStore) DeleteRow(ctx context.Context, table string, id models.RowID) error {
	query := eq("id", strconv.FormatInt(int64(id), 10))
	deleted, err := s.client.requestRows(ctx, http.MethodDelete, table, query, nil)
	if err != nil {
		return storeError("delete row", err)
	}
	if len(deleted) == 0 {
		return storeError("delete row", fmt.Errorf("id %d: %w", id, models.ErrNotFound))
	}

	common.GetCategoryLogger(common.LoggerNameStore, common.LoggerCategoryStore).
		Debug("Deleted row", zap.String("table", table), zap.Int64("id", int64(id)))
	return nil
}

// InsertIfUnique checks for the hash and then inserts. The two requests are not
// atomic; a unique constraint on the hash column closes the gap if required.
func (s *AlertStore) InsertIfUnique(ctx context.Context, cfg models.TableConfig, row models.Row) error {
	hash, ok := row[cfg.HashColumnName].(string)
	if !ok || hash == "" {
		return storeError("insert", fmt.Errorf("%w: row has no %s", models.ErrInvalidAlert, cfg.HashColumnName))
	}

	query := eq(cfg.HashColumnName, hash)
	query.Set("select", cfg.HashColumnName)
	existing, err := s.client.requestRows(ctx, http.MethodGet, cfg.Tablename, query, nil)
	if err != nil {
		return storeError("insert", err)
	}
	if len(existing) > 0 {
		return storeError("insert", fmt.Errorf("hash %s: %w", hash, models.ErrDuplicateHash))
	}

	if _, err := s.client.request(ctx, http.MethodPost, cfg.Tablename, nil, []models.Row{row}); err != nil {
		return storeError("insert", err)
	}
	return nil
}
