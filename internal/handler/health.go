package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Diego-EC/questioner-backend/internal/database"
)

type HealthHandler struct {
	db database.Service
}

func NewHealthHandler(db database.Service) *HealthHandler {
	return &HealthHandler{db: db}
}

// Health reports database reachability; a down database answers 503.
func (h *HealthHandler) Health(c *gin.Context) {
	stats := h.db.Health()
	status := http.StatusOK
	if stats["status"] != "up" {
		status = http.StatusServiceUnavailable
	}
	c.JSON(status, stats)
}
