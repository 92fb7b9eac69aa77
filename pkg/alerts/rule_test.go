package alerts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"liyu1981.xyz/trade-alerts/pkg/models"
)

func TestTriggered(t *testing.T) {
	cases := []struct {
		name      string
		direction models.Direction
		level     float64
		price     float64
		want      bool
	}{
		{"sell at level", models.DirectionSell, 1.1, 1.1, true},
		{"sell above level", models.DirectionSell, 1.1, 1.2, true},
		{"sell below level", models.DirectionSell, 1.1, 1.0999, false},
		{"buy at level", models.DirectionBuy, 1.1, 1.1, true},
		{"buy below level", models.DirectionBuy, 1.1, 1.0, true},
		{"buy above level", models.DirectionBuy, 1.1, 1.1001, false},
		{"legacy exact", models.DirectionNone, 100, 100, true},
		{"legacy inside band", models.DirectionNone, 100, 100.0009, true},
		{"legacy inside band below", models.DirectionNone, 100, 99.9991, true},
		{"legacy outside band", models.DirectionNone, 100, 100.002, false},
		{"legacy outside band below", models.DirectionNone, 100, 99.998, false},
		{"unknown direction", models.Direction("hold"), 100, 100, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			alert := models.Alert{Symbol: "EURUSD", Hash: "h", PriceLevel: tc.level, Direction: tc.direction}
			assert.Equal(t, tc.want, Triggered(alert, tc.price, DefaultTolerance))
		})
	}
}

func TestTriggeredDirectionsAreComplementary(t *testing.T) {
	levels := []float64{0.5, 1.1, 100, 25000}
	offsets := []float64{-1, -0.01, 0, 0.01, 1}

	for _, level := range levels {
		for _, offset := range offsets {
			price := level + offset
			sell := Triggered(models.Alert{PriceLevel: level, Direction: models.DirectionSell}, price, DefaultTolerance)
			buy := Triggered(models.Alert{PriceLevel: level, Direction: models.DirectionBuy}, price, DefaultTolerance)

			// one side always fires, both only exactly at the level
			assert.True(t, sell || buy, "level %v price %v", level, price)
			assert.Equal(t, price == level, sell && buy, "level %v price %v", level, price)
		}
	}
}

func TestTriggeredCustomTolerance(t *testing.T) {
	alert := models.Alert{PriceLevel: 100}

	assert.False(t, Triggered(alert, 100.5, DefaultTolerance))
	assert.True(t, Triggered(alert, 100.5, 0.01))
	assert.False(t, Triggered(alert, 101.5, 0.01))
}
