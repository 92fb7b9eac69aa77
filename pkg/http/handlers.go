package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"liyu1981.xyz/trade-alerts/pkg/common"
	"liyu1981.xyz/trade-alerts/pkg/models"

	z "github.com/Oudwins/zog"
	"github.com/Oudwins/zog/zhttp"
)

type AlertRequest struct {
	Symbol    string  `json:"symbol"`
	Level     float64 `json:"level"`
	Direction string  `json:"direction"`
}

var alertRequestSchema = z.Struct(z.Shape{
	"symbol":    z.String().Required(),
	"level":     z.Float64().Required(),
	"direction": z.String(),
})

func (rs *RestfulServer) PostAlert(c *gin.Context) {
	userID := c.Param("user_id")

	if !rs.CheckUserLimiter(userID) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	var req AlertRequest
	if err := alertRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}
	if req.Level <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "level must be positive"})
		return
	}

	hash, err := rs.Alerts.Manager.AddAlert(c.Request.Context(), &models.NewAlert{
		UserID:     userID,
		Symbol:     req.Symbol,
		PriceLevel: req.Level,
		Direction:  models.Direction(req.Direction),
	})
	switch {
	case err == nil:
		c.JSON(http.StatusCreated, gin.H{"hash": hash})
	case errors.Is(err, models.ErrInvalidAlert):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, models.ErrDuplicateHash):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

func (rs *RestfulServer) GetUserAlerts(c *gin.Context) {
	userID := c.Param("user_id")

	if !rs.CheckUserLimiter(userID) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	hashes, err := rs.Alerts.Manager.HashesByUser(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if hashes == nil {
		hashes = []string{}
	}

	c.JSON(http.StatusOK, gin.H{"hashes": hashes})
}

func (rs *RestfulServer) GetAlert(c *gin.Context) {
	hash := c.Param("hash")

	alert, err := rs.Alerts.Manager.DetailsByHash(c.Request.Context(), hash)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, alert)
	case errors.Is(err, models.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, models.ErrAmbiguousHash):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

// PostPass runs one evaluation pass on demand. A failed pass is the upstream
// quote API or store failing, hence 502.
func (rs *RestfulServer) PostPass(c *gin.Context) {
	result, err := rs.Alerts.Evaluator.RunPass(c.Request.Context())
	if err != nil {
		common.GetLogger().Named(common.LoggerNameRestfulServer).Warn("On demand pass failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error(), "result": result})
		return
	}

	c.JSON(http.StatusOK, result)
}

type LimiterRequest struct {
	Rate  float64 `json:"rate"`
	Burst int     `json:"burst"`
}

var limiterRequestSchema = z.Struct(z.Shape{
	"rate":  z.Float64().Required(),
	"burst": z.Int().Required(),
})

func (rs *RestfulServer) PostLimiter(c *gin.Context) {
	userID := c.Param("user_id")

	var req LimiterRequest
	if err := limiterRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	rs.SetLimiter(userID, req.Rate, req.Burst)

	c.Status(http.StatusOK)
}

func (rs *RestfulServer) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
