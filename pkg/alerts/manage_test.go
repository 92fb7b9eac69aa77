package alerts

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"liyu1981.xyz/trade-alerts/pkg/common"
	"liyu1981.xyz/trade-alerts/pkg/models"
	_ "liyu1981.xyz/trade-alerts/pkg/testing"
)

func TestAddAlert(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, a, _, _ := GetMockAlertsWithMemorySqlite(t)
	defer ctrl.Finish()

	hash, err := a.Manager.AddAlert(context.Background(), &models.NewAlert{
		UserID:     "u1",
		Symbol:     "EURUSD",
		PriceLevel: 1.1,
		Direction:  models.DirectionSell,
	})
	require.NoError(t, err)
	assert.Equal(t, GenerateHash(DefaultHashPrefix, "u1", "EURUSD", 1.1, fixedNow), hash)

	alert, err := a.Manager.DetailsByHash(context.Background(), hash)
	require.NoError(t, err)
	assert.Equal(t, "EURUSD", alert.Symbol)
	assert.Equal(t, 1.1, alert.PriceLevel)
	assert.Equal(t, "u1", alert.UserID)
	assert.Equal(t, models.DirectionSell, alert.Direction)
	assert.NotZero(t, alert.ID)

	ok, err := a.Manager.VerifyHash(context.Background(), hash)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestAddAlert_DuplicateHash(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, a, _, _ := GetMockAlertsWithMemorySqlite(t)
	defer ctrl.Finish()

	input := &models.NewAlert{UserID: "u1", Symbol: "GBPUSD", PriceLevel: 1.25}
	_, err := a.Manager.AddAlert(context.Background(), input)
	require.NoError(t, err)

	// same second, same attributes
	_, err = a.Manager.AddAlert(context.Background(), input)
	assert.ErrorIs(t, err, models.ErrDuplicateHash)
}

func TestAddAlert_Invalid(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, a, _, _, _ := GetMockAlerts(t)
	defer ctrl.Finish()

	inputs := []*models.NewAlert{
		{Symbol: "EURUSD", PriceLevel: 1},
		{UserID: "u1", PriceLevel: 1},
		{UserID: "u1", Symbol: "EURUSD", PriceLevel: 1, Direction: "hold"},
	}
	for _, input := range inputs {
		_, err := a.Manager.AddAlert(context.Background(), input)
		assert.ErrorIs(t, err, models.ErrInvalidAlert)
	}
}

func TestHashesByUser(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, a, _, _ := GetMockAlertsWithMemorySqlite(t)
	defer ctrl.Finish()

	seedAlert(t, a, models.Alert{Hash: "a1", Symbol: "EURUSD", PriceLevel: 1.1, UserID: "alice"})
	seedAlert(t, a, models.Alert{Hash: "a2", Symbol: "AAPL", PriceLevel: 180, UserID: "alice"})
	seedAlert(t, a, models.Alert{Hash: "b1", Symbol: "AAPL", PriceLevel: 190, UserID: "bob"})

	hashes, err := a.Manager.HashesByUser(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, []string{"a1", "a2"}, hashes)

	hashes, err = a.Manager.HashesByUser(context.Background(), "carol")
	require.NoError(t, err)
	assert.Empty(t, hashes)
}

func TestDetailsByHash_NotFound(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, a, _, _ := GetMockAlertsWithMemorySqlite(t)
	defer ctrl.Finish()

	_, err := a.Manager.DetailsByHash(context.Background(), "missing")
	assert.ErrorIs(t, err, models.ErrNotFound)

	ok, err := a.Manager.VerifyHash(context.Background(), "missing")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestDetailsByHash_Ambiguous(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, a, _, store, _ := GetMockAlerts(t)
	defer ctrl.Finish()

	store.EXPECT().SelectWhere(gomock.Any(), a.Table, a.Table.HashColumnName, "dup").Return([]models.Row{
		{"id": int64(3), "hash": "dup", "symbol": "AAPL", "price_level": 1.0},
		{"id": int64(9), "hash": "dup", "symbol": "AAPL", "price_level": 2.0},
	}, nil)

	_, err := a.Manager.DetailsByHash(context.Background(), "dup")
	var ambiguous *models.AmbiguousHashError
	require.True(t, errors.As(err, &ambiguous))
	assert.Equal(t, []models.RowID{3, 9}, ambiguous.IDs)
}
