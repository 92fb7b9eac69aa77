package models

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableConfigValidate(t *testing.T) {
	assert.NoError(t, DefaultTableConfig().Validate())

	cfg := DefaultTableConfig()
	cfg.HashColumnName = ""
	assert.ErrorContains(t, cfg.Validate(), "hash_column_name")
}

func TestLoadTableConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "table.yaml")
	require.NoError(t, os.WriteFile(path, []byte("tablename: fx_alerts\nsymbol_column_name: pair\n"), 0o600))

	cfg, err := LoadTableConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "fx_alerts", cfg.Tablename)
	assert.Equal(t, "pair", cfg.SymbolColumnName)
	assert.Equal(t, "hash", cfg.HashColumnName)
}

func TestLoadTableConfig_Invalid(t *testing.T) {
	_, err := LoadTableConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "table.yaml")
	require.NoError(t, os.WriteFile(path, []byte("tablename: \"\"\n"), 0o600))
	_, err = LoadTableConfig(path)
	assert.ErrorContains(t, err, "tablename")
}

func TestErrorsUnwrap(t *testing.T) {
	var err error = &StoreError{Op: "resolve", Err: &AmbiguousHashError{Hash: "h", IDs: []RowID{1, 2}}}
	assert.True(t, errors.Is(err, ErrAmbiguousHash))

	var ambiguous *AmbiguousHashError
	require.True(t, errors.As(err, &ambiguous))
	assert.Equal(t, []RowID{1, 2}, ambiguous.IDs)

	err = &FetchError{Symbol: "EURUSD", Kind: FetchErrorStatus, Err: errors.New("503")}
	var fetchErr *FetchError
	require.True(t, errors.As(err, &fetchErr))
	assert.Equal(t, "EURUSD", fetchErr.Symbol)
	assert.Contains(t, err.Error(), "EURUSD")
}
