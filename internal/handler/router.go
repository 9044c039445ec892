package handler

import (
	"duckgate/backend/internal/config"
	"duckgate/backend/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func NewRouter(h *Handler, cfg *config.Config, log logrus.FieldLogger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.AccessLog(log))
	r.Use(middleware.CORSMiddleware(cfg.CORSOrigin))

	r.GET("/", h.Root)
	r.GET("/ping", h.Ping)
	r.GET("/docs", h.DocsHandler)
	r.GET("/openapi.json", h.OpenAPIHandler)
	r.GET("/source", h.SourceHandler)

	query := r.Group("/query")
	if cfg.RateLimit > 0 {
		query.Use(middleware.RateLimitMiddleware(cfg.RateLimit, cfg.RateBurst))
	}
	query.POST("", h.QueryHandler)

	return r
}
