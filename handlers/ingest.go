package handlers

import (
	"context"
	"net/http"
	"strconv"

	"meal-planner-api/ingest"
	"meal-planner-api/models"

	"github.com/gin-gonic/gin"
)

type IngestRequest struct {
	Date string `json:"date"`
}

// IngestLogReader lists recent ingestion status entries.
type IngestLogReader interface {
	Recent(ctx context.Context, limit int) ([]models.IngestLog, error)
}

type IngestHandler struct {
	runner ingest.Runner
	logs   IngestLogReader
}

func NewIngestHandler(runner ingest.Runner, logs IngestLogReader) *IngestHandler {
	return &IngestHandler{runner: runner, logs: logs}
}

// Run ingests the menu for a date (today in UTC by default)
func (h *IngestHandler) Run(c *gin.Context) {
	var req IngestRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}
	res, err := h.runner.Run(c.Request.Context(), req.Date)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "result": res})
}

func (h *IngestHandler) Logs(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if err != nil || limit < 1 || limit > 200 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be between 1 and 200"})
		return
	}
	logs, err := h.logs.Recent(c.Request.Context(), limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"logs": logs, "count": len(logs)})
}
