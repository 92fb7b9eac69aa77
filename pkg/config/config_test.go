package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"liyu1981.xyz/trade-alerts/pkg/alerts"
	"liyu1981.xyz/trade-alerts/pkg/common"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv(common.EnvKeyXylexAPIEndpoint, "https://quotes.example.com/price")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, StoreTypeFile, cfg.StoreType)
	assert.Equal(t, "alerts.db", cfg.DbPath)
	assert.Equal(t, "@every 30s", cfg.Evaluator.Schedule)
	assert.Equal(t, 25*time.Second, cfg.Evaluator.PassTimeout)
	assert.Equal(t, alerts.DefaultTolerance, cfg.Evaluator.Tolerance)
	assert.Equal(t, 1, cfg.Evaluator.QuoteConcurrency)
	assert.Equal(t, ":1080", cfg.Server.HttpHostPort)
	assert.Equal(t, "alerts", cfg.Table.Tablename)

	opts := cfg.AlertsOptions()
	assert.Equal(t, alerts.ReapFailFast, opts.ReapPolicy)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv(common.EnvKeyXylexAPIEndpoint, "https://quotes.example.com/price")
	t.Setenv(common.EnvKeyStoreType, StoreTypePostgrest)
	t.Setenv(common.EnvKeySupabaseURL, "https://project.supabase.co")
	t.Setenv(common.EnvKeySupabaseKey, "service-key")
	t.Setenv(common.EnvKeyReapPolicy, "continue")
	t.Setenv(common.EnvKeyQuoteConcurrency, "4")
	t.Setenv(common.EnvKeyTolerance, "0.001")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "https://project.supabase.co", cfg.Supabase.URL)
	opts := cfg.AlertsOptions()
	assert.Equal(t, alerts.ReapContinue, opts.ReapPolicy)
	assert.Equal(t, 4, opts.QuoteConcurrency)
	assert.Equal(t, 0.001, opts.Tolerance)
}

func TestLoad_TableConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "table.yaml")
	require.NoError(t, os.WriteFile(path, []byte("tablename: price_alerts\nsymbol_column_name: ticker\n"), 0o600))

	t.Setenv(common.EnvKeyXylexAPIEndpoint, "https://quotes.example.com/price")
	t.Setenv(common.EnvKeyTableConfig, path)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "price_alerts", cfg.Table.Tablename)
	assert.Equal(t, "ticker", cfg.Table.SymbolColumnName)
	assert.Equal(t, "hash", cfg.Table.HashColumnName)
}

func TestLoad_Invalid(t *testing.T) {
	cases := map[string]map[string]string{
		"missing endpoint": {},
		"unknown store": {
			common.EnvKeyXylexAPIEndpoint: "https://q",
			common.EnvKeyStoreType:        "mongo",
		},
		"postgrest without key": {
			common.EnvKeyXylexAPIEndpoint: "https://q",
			common.EnvKeyStoreType:        StoreTypePostgrest,
			common.EnvKeySupabaseURL:      "https://project.supabase.co",
		},
		"bad reap policy": {
			common.EnvKeyXylexAPIEndpoint: "https://q",
			common.EnvKeyReapPolicy:       "sometimes",
		},
		"zero concurrency": {
			common.EnvKeyXylexAPIEndpoint: "https://q",
			common.EnvKeyQuoteConcurrency: "0",
		},
	}

	for name, env := range cases {
		t.Run(name, func(t *testing.T) {
			t.Setenv(common.EnvKeyXylexAPIEndpoint, "")
			os.Unsetenv(common.EnvKeyXylexAPIEndpoint)
			for k, v := range env {
				t.Setenv(k, v)
			}

			_, err := Load()
			assert.Error(t, err)
		})
	}
}
