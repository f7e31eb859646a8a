package handlers

import (
	"context"
	"net/http"
	"strconv"

	"CommentCase/global"
	"CommentCase/utils/redislog"

	"github.com/gin-gonic/gin"
)

// LogReader is the read side of the Redis log list.
type LogReader interface {
	Recent(ctx context.Context, n int64) ([]redislog.Entry, error)
}

// DiagnosticsHandler serves health and recent log entries.
type DiagnosticsHandler struct {
	logs LogReader
}

func NewDiagnosticsHandler(logs LogReader) *DiagnosticsHandler {
	return &DiagnosticsHandler{logs: logs}
}

// Health handles GET /healthz.
func (h *DiagnosticsHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "version": global.AppVersion})
}

// RecentLogs handles GET /api/logs?limit=50 (limit clamped to 1..500).
func (h *DiagnosticsHandler) RecentLogs(c *gin.Context) {
	limit, _ := strconv.ParseInt(c.DefaultQuery("limit", "50"), 10, 64)
	if limit <= 0 || limit > 500 {
		limit = 50
	}
	entries, err := h.logs.Recent(c.Request.Context(), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read logs"})
		return
	}
	if entries == nil {
		entries = []redislog.Entry{}
	}
	c.JSON(http.StatusOK, gin.H{"items": entries})
}
