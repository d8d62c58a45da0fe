package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"
)

// PoolStats is the database pool snapshot reported by /health.
type PoolStats struct {
	OpenConnections int    `json:"open_connections"`
	InUse           int    `json:"in_use"`
	Idle            int    `json:"idle"`
	MaxOpen         int    `json:"max_open"`
	WaitCount       int64  `json:"wait_count"`
	WaitDuration    string `json:"wait_duration"`
}

// rootHandler handles requests to the root path
func rootHandler(c *gin.Context) {
	c.String(http.StatusOK, "Welcome to the MedClinic API!")
}

// healthHandler pings the database and reports pool statistics.
func healthHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		sqlDB, err := db.DB()
		if err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy", "error": err.Error()})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		stat := sqlDB.Stats()
		stats := PoolStats{
			OpenConnections: stat.OpenConnections,
			InUse:           stat.InUse,
			Idle:            stat.Idle,
			MaxOpen:         stat.MaxOpenConnections,
			WaitCount:       stat.WaitCount,
			WaitDuration:    stat.WaitDuration.String(),
		}

		if err := sqlDB.PingContext(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status": "unhealthy",
				"error":  err.Error(),
				"pool":   stats,
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status": "healthy",
			"pool":   stats,
		})
	}
}

// SetupRootRoute registers the welcome, health and metrics endpoints.
func SetupRootRoute(router gin.IRouter, db *gorm.DB, gatherer prometheus.Gatherer) {
	router.GET("/", rootHandler)
	router.GET("/health", healthHandler(db))
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
}
