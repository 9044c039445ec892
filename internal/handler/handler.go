package handler

import (
	"errors"
	"net/http"

	"duckgate/backend/internal/middleware"
	"duckgate/backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const rootMessage = "API DuckDB Online. Use /docs para testar."

type Handler struct {
	engine service.QueryEngine
	log    logrus.FieldLogger
}

func New(engine service.QueryEngine, log logrus.FieldLogger) *Handler {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Handler{engine: engine, log: log}
}

func (h *Handler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": rootMessage})
}

func (h *Handler) Ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "pong",
	})
}

func (h *Handler) requestLog(c *gin.Context) *logrus.Entry {
	return h.log.WithField("request_id", middleware.GetRequestID(c))
}

// errorStatus maps engine errors to HTTP statuses. The body is always
// {"error": <message>}.
func errorStatus(err error) int {
	switch {
	case errors.Is(err, service.ErrSourceNotFound):
		return http.StatusServiceUnavailable
	case service.IsParseError(err):
		return http.StatusBadRequest
	default:
		return http.StatusUnprocessableEntity
	}
}

func respondError(c *gin.Context, err error) {
	c.JSON(errorStatus(err), gin.H{"error": err.Error()})
}
