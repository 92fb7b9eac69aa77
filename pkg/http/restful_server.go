package http

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"
	"liyu1981.xyz/trade-alerts/pkg/alerts"
)

type RestfulServer struct {
	Server           *gin.Engine
	Alerts           *alerts.Alerts
	RateLimiterStore *alerts.RateLimiterStore
}

func (rs *RestfulServer) GetLimiter(userID string) *rate.Limiter {
	if rs.RateLimiterStore == nil {
		return nil
	}
	return rs.RateLimiterStore.GetLimiter(userID)
}

func (rs *RestfulServer) CheckUserLimiter(userID string) bool {
	return rs.RateLimiterStore.Allow(userID)
}

func (rs *RestfulServer) SetLimiter(userID string, userRate float64, userBurst int) {
	if rs.RateLimiterStore == nil {
		return
	}
	rs.RateLimiterStore.SetLimiter(userID, rate.Limit(userRate), userBurst)
}

func (rs *RestfulServer) Setup() {
	rs.Server.GET("/healthz", rs.HealthCheck)
	rs.Server.GET("/metrics", gin.WrapH(promhttp.Handler()))

	rs.Server.GET("/alerts/:hash", rs.GetAlert)
	rs.Server.POST("/passes", rs.PostPass)

	users := rs.Server.Group("/users/:user_id")
	{
		users.POST("/alerts", rs.PostAlert)
		users.GET("/alerts", rs.GetUserAlerts)
		users.POST("/limiter", rs.PostLimiter)
	}
}
