package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/launchhub/launchhub-backend/internal/services"
)

// StatsHandler serves the admin dashboard aggregates.
type StatsHandler struct {
	stats *services.StatsService
}

func NewStatsHandler(stats *services.StatsService) *StatsHandler {
	return &StatsHandler{stats: stats}
}

func (h *StatsHandler) Dashboard(c *gin.Context) {
	stats, err := h.stats.Dashboard(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
