package alerts

import "liyu1981.xyz/trade-alerts/pkg/models"

// Triggered applies the trigger rule of one alert to a quote.
//
// Directional alerts are one sided: a sell alert fires once the quote reaches the
// level from below, a buy alert once it reaches it from above. Legacy alerts
// without a direction fire while the quote sits inside the relative band
// [level*(1-tolerance), level*(1+tolerance)]. Unknown directions never fire.
func Triggered(alert models.Alert, price float64, tolerance float64) bool {
	switch alert.Direction {
	case models.DirectionSell:
		return price >= alert.PriceLevel
	case models.DirectionBuy:
		return price <= alert.PriceLevel
	case models.DirectionNone:
		return price >= alert.PriceLevel*(1-tolerance) && price <= alert.PriceLevel*(1+tolerance)
	default:
		return false
	}
}
