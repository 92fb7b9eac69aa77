package grpc

import (
	"golang.org/x/time/rate"
	"liyu1981.xyz/trade-alerts/pkg/alerts"
)

type AlertServer struct {
	Alerts           *alerts.Alerts
	RateLimiterStore *alerts.RateLimiterStore
}

func (s *AlertServer) GetLimiter(userID string) *rate.Limiter {
	if s.RateLimiterStore == nil {
		return nil
	}
	return s.RateLimiterStore.GetLimiter(userID)
}

func (s *AlertServer) CheckUserLimiter(userID string) bool {
	return s.RateLimiterStore.Allow(userID)
}
