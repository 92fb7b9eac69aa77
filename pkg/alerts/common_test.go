package alerts

import (
	"bufio"
	"context"
	"encoding/json"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"liyu1981.xyz/trade-alerts/pkg/alerts/mocks"
	"liyu1981.xyz/trade-alerts/pkg/db"
	"liyu1981.xyz/trade-alerts/pkg/models"
)

var fixedNow = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

// uniqueTable returns a table config with a fresh table name so tests sharing
// the in-memory database never see each other's rows.
func uniqueTable() models.TableConfig {
	cfg := models.DefaultTableConfig()
	cfg.Tablename = "alerts_" + strings.ReplaceAll(uuid.NewString(), "-", "")
	return cfg
}

// GetMockAlerts wires mocks for every collaborator.
func GetMockAlerts(t *testing.T) (
	*gomock.Controller,
	*Alerts,
	*mocks.MockIPriceFeed,
	*mocks.MockIAlertStore,
	*mocks.MockINotifier,
) {
	ctrl := gomock.NewController(t)

	feed := mocks.NewMockIPriceFeed(ctrl)
	store := mocks.NewMockIAlertStore(ctrl)
	notifier := mocks.NewMockINotifier(ctrl)

	a := &Alerts{
		Feed:     feed,
		Store:    store,
		Notifier: notifier,
		Table:    models.DefaultTableConfig(),
		Options:  Options{Now: func() time.Time { return fixedNow }},
	}
	a.WithServices(ServiceOpts{
		Evaluator: a.GetIEvaluator(),
		Manager:   a.GetIManager(),
	})

	return ctrl, a, feed, store, notifier
}

// GetMockAlertsWithMemorySqlite uses a real sqlite store and a mocked feed.
func GetMockAlertsWithMemorySqlite(t *testing.T) (
	*gomock.Controller,
	*Alerts,
	*db.AlertStore,
	*mocks.MockIPriceFeed,
) {
	ctrl := gomock.NewController(t)

	feed := mocks.NewMockIPriceFeed(ctrl)
	store := db.NewAlertStore(db.GetInstance(db.UseMemorySqliteDialector()))
	cfg := uniqueTable()
	require.NoError(t, store.EnsureTable(context.Background(), cfg))

	a := &Alerts{
		Feed:    feed,
		Store:   store,
		Table:   cfg,
		Options: Options{Now: func() time.Time { return fixedNow }},
	}
	a.WithServices(ServiceOpts{
		Evaluator: a.GetIEvaluator(),
		Manager:   a.GetIManager(),
	})

	return ctrl, a, store, feed
}

func seedAlert(t *testing.T, a *Alerts, alert models.Alert) {
	t.Helper()
	require.NoError(t, a.Store.InsertIfUnique(context.Background(), a.Table, alert.ToRow(a.Table)))
}

func ParseLogs(r io.Reader) []any {
	scanner := bufio.NewScanner(r)
	var logs []any

	for scanner.Scan() {
		line := scanner.Text()
		var j any
		if err := json.Unmarshal([]byte(line), &j); err == nil {
			logs = append(logs, j)
		}
	}
	return logs
}

func findLog(logs []any, msg string) map[string]any {
	for _, l := range logs {
		entry, ok := l.(map[string]any)
		if ok && entry["msg"] == msg {
			return entry
		}
	}
	return nil
}
