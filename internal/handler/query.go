package handler

import (
	"net/http"
	"time"

	"duckgate/backend/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// SourceHandler reports which data file queries would currently run against.
func (h *Handler) SourceHandler(c *gin.Context) {
	src, err := h.engine.Resolve()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, src)
}

// QueryHandler runs the caller's SQL verbatim against the active source.
// The source is resolved before the body is read, so a missing data file
// is reported whatever the request contains.
func (h *Handler) QueryHandler(c *gin.Context) {
	log := h.requestLog(c)

	src, err := h.engine.Resolve()
	if err != nil {
		log.WithError(err).Warn("No data source available")
		respondError(c, err)
		return
	}

	var req model.QueryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	log = log.WithFields(logrus.Fields{"source": src.Kind, "path": src.Path})
	log.WithField("sql", req.SQLQuery).Debug("Executing query")

	start := time.Now()
	results, err := h.engine.Execute(c.Request.Context(), src, req.SQLQuery)
	if err != nil {
		log.WithError(err).Info("Query failed")
		respondError(c, err)
		return
	}

	log.WithFields(logrus.Fields{
		"rows":     len(results),
		"duration": time.Since(start).String(),
	}).Info("Query executed")

	if results == nil {
		results = model.ResultSet{}
	}
	c.JSON(http.StatusOK, results)
}
