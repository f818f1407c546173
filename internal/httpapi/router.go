package httpapi

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/oggyb/muzz-smartmatch/internal/metrics"
)

type RouterConfig struct {
	Handler *Handler
	Logger  *slog.Logger
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	log := cfg.Logger
	if log == nil {
		log = slog.Default()
	}

	router := gin.New()
	router.Use(gin.Recovery(), requestLogger(log.With("component", "http")))

	// ===============
	// || Ops       ||
	// ===============
	router.GET("/healthz", HealthCheck)
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	// ===============
	// || API       ||
	// ===============
	v1 := router.Group("/v1/users/:id")
	{
		v1.GET("/smart-matches", cfg.Handler.GetSmartMatches)
		v1.POST("/scores/refresh", cfg.Handler.RefreshScores)
		v1.GET("/scores", cfg.Handler.ListStoredScores)
		v1.POST("/activity", cfg.Handler.RecordActivity)
	}

	return router
}

func requestLogger(log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		attrs := []any{
			"method", c.Request.Method,
			"route", c.FullPath(),
			"status", c.Writer.Status(),
			"took", time.Since(start),
		}
		if c.Writer.Status() >= 500 {
			log.Warn("request failed", attrs...)
			return
		}
		log.Debug("request", attrs...)
	}
}
