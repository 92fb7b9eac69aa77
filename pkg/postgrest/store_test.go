package postgrest

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"liyu1981.xyz/trade-alerts/pkg/common"
	"liyu1981.xyz/trade-alerts/pkg/models"
	_ "liyu1981.xyz/trade-alerts/pkg/testing"
)

const testKey = "service-key"

// fakeTable is a tiny in-memory PostgREST table supporting eq filters,
// column selection, insert and delete.
type fakeTable struct {
	mu     sync.Mutex
	name   string
	nextID int64
	rows   []map[string]interface{}
	calls  []string
}

func (f *fakeTable) matches(row map[string]interface{}, r *http.Request) bool {
	for col, values := range r.URL.Query() {
		if col == "select" || col == "order" {
			continue
		}
		want := strings.TrimPrefix(values[0], "eq.")
		if fmt.Sprint(row[col]) != want {
			return false
		}
	}
	return true
}

func (f *fakeTable) snapshot() ([]string, int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...), len(f.rows)
}

func project(row map[string]interface{}, sel string) map[string]interface{} {
	if sel == "" || sel == "*" {
		return row
	}
	out := map[string]interface{}{}
	for _, col := range strings.Split(sel, ",") {
		out[col] = row[col]
	}
	return out
}

func (f *fakeTable) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.calls = append(f.calls, r.Method)

	if r.Header.Get("apikey") != testKey || r.Header.Get("Authorization") != "Bearer "+testKey {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"invalid key"}`))
		return
	}
	if r.URL.Path != "/rest/v1/"+f.name {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message":"relation does not exist"}`))
		return
	}

	var out []map[string]interface{}
	switch r.Method {
	case http.MethodGet:
		for _, row := range f.rows {
			if f.matches(row, r) {
				out = append(out, project(row, r.URL.Query().Get("select")))
			}
		}
	case http.MethodDelete:
		kept := f.rows[:0]
		for _, row := range f.rows {
			if f.matches(row, r) {
				out = append(out, row)
				continue
			}
			kept = append(kept, row)
		}
		f.rows = kept
	case http.MethodPost:
		var inserted []map[string]interface{}
		if err := json.NewDecoder(r.Body).Decode(&inserted); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		for _, row := range inserted {
			f.nextID++
			row["id"] = f.nextID
			f.rows = append(f.rows, row)
			out = append(out, row)
		}
		w.WriteHeader(http.StatusCreated)
	}

	if out == nil {
		out = []map[string]interface{}{}
	}
	_ = json.NewEncoder(w).Encode(out)
}

func newTestStore(t *testing.T) (*AlertStore, *fakeTable, models.TableConfig) {
	t.Helper()
	common.SetTestLoggerNop()

	cfg := models.DefaultTableConfig()
	table := &fakeTable{name: cfg.Tablename}
	server := httptest.NewServer(table)
	t.Cleanup(server.Close)

	client, err := NewClient(Config{URL: server.URL + "/", Key: testKey})
	require.NoError(t, err)
	return NewAlertStore(client), table, cfg
}

func seed(t *testing.T, s *AlertStore, cfg models.TableConfig, alerts ...models.Alert) {
	t.Helper()
	for _, a := range alerts {
		require.NoError(t, s.InsertIfUnique(context.Background(), cfg, a.ToRow(cfg)))
	}
}

func TestInsertIfUnique(t *testing.T) {
	store, table, cfg := newTestStore(t)
	ctx := context.Background()

	alert := models.Alert{Hash: "xlx-a-1", Symbol: "EURUSD", PriceLevel: 1.1, UserID: "u1", Direction: models.DirectionSell}
	require.NoError(t, store.InsertIfUnique(ctx, cfg, alert.ToRow(cfg)))
	calls, _ := table.snapshot()
	assert.Equal(t, []string{http.MethodGet, http.MethodPost}, calls)

	err := store.InsertIfUnique(ctx, cfg, alert.ToRow(cfg))
	assert.ErrorIs(t, err, models.ErrDuplicateHash)
	_, count := table.snapshot()
	assert.Equal(t, 1, count)

	err = store.InsertIfUnique(ctx, cfg, models.Row{cfg.SymbolColumnName: "EURUSD"})
	assert.ErrorIs(t, err, models.ErrInvalidAlert)
}

func TestDistinctSymbols(t *testing.T) {
	store, _, cfg := newTestStore(t)
	seed(t, store, cfg,
		models.Alert{Hash: "h1", Symbol: "AAPL", PriceLevel: 1},
		models.Alert{Hash: "h2", Symbol: "MSFT", PriceLevel: 2},
		models.Alert{Hash: "h3", Symbol: "AAPL", PriceLevel: 3},
	)

	symbols, err := store.DistinctSymbols(context.Background(), cfg)
	require.NoError(t, err)
	assert.Equal(t, []string{"AAPL", "MSFT"}, symbols)
}

func TestAllAlertsAndSelectWhere(t *testing.T) {
	store, _, cfg := newTestStore(t)
	seed(t, store, cfg,
		models.Alert{Hash: "h1", Symbol: "AAPL", PriceLevel: 150.5, UserID: "alice", Direction: models.DirectionBuy},
		models.Alert{Hash: "h2", Symbol: "MSFT", PriceLevel: 300, UserID: "bob"},
	)

	rows, err := store.AllAlerts(context.Background(), cfg)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	alert, ok := models.AlertFromRow(rows[0], cfg)
	require.True(t, ok)
	assert.Equal(t, models.RowID(1), alert.ID)
	assert.Equal(t, 150.5, alert.PriceLevel)
	assert.Equal(t, models.DirectionBuy, alert.Direction)

	rows, err = store.SelectWhere(context.Background(), cfg, cfg.UserIDColumnName, "bob")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "h2", rows[0][cfg.HashColumnName])
}

func TestResolveAndDelete(t *testing.T) {
	store, table, cfg := newTestStore(t)
	ctx := context.Background()
	seed(t, store, cfg, models.Alert{Hash: "h1", Symbol: "AAPL", PriceLevel: 1})

	id, err := store.ResolveIDByHash(ctx, "h1", cfg)
	require.NoError(t, err)
	assert.Equal(t, models.RowID(1), id)

	require.NoError(t, store.DeleteRow(ctx, cfg.Tablename, id))
	_, count := table.snapshot()
	assert.Equal(t, 0, count)

	_, err = store.ResolveIDByHash(ctx, "h1", cfg)
	assert.ErrorIs(t, err, models.ErrNotFound)

	err = store.DeleteRow(ctx, cfg.Tablename, id)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestResolveIDByHash_Ambiguous(t *testing.T) {
	store, table, cfg := newTestStore(t)
	table.rows = []map[string]interface{}{
		{"id": 4, "hash": "dup", "symbol": "AAPL"},
		{"id": 7, "hash": "dup", "symbol": "AAPL"},
	}

	_, err := store.ResolveIDByHash(context.Background(), "dup", cfg)
	var ambiguous *models.AmbiguousHashError
	require.True(t, errors.As(err, &ambiguous))
	assert.Equal(t, []models.RowID{4, 7}, ambiguous.IDs)
}

func TestAPIErrorsAreStoreErrors(t *testing.T) {
	store, _, cfg := newTestStore(t)
	cfg.Tablename = "nope"

	_, err := store.AllAlerts(context.Background(), cfg)

	var storeErr *models.StoreError
	require.True(t, errors.As(err, &storeErr))
	assert.Equal(t, "all alerts", storeErr.Op)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Contains(t, apiErr.Body, "relation does not exist")
}

func TestNewClient_Validation(t *testing.T) {
	_, err := NewClient(Config{Key: "k"})
	assert.Error(t, err)

	_, err = NewClient(Config{URL: "https://x.supabase.co"})
	assert.Error(t, err)

	_, err = NewClient(Config{URL: "x.supabase.co", Key: "k"})
	assert.Error(t, err)
}
