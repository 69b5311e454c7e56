package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/srgjo27/hotel_pms/internal/core/services"
)

type TimelineHandler struct {
	svc    *services.TimelineService
	logger *slog.Logger
}

func NewTimelineHandler(svc *services.TimelineService, logger *slog.Logger) *TimelineHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &TimelineHandler{svc: svc, logger: logger}
}

func (h *TimelineHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/timeline", h.GetTimeline)
}

// GetTimeline serves the room-by-date grid. Query: start=YYYY-MM-DD, days=N.
func (h *TimelineHandler) GetTimeline(c *gin.Context) {
	var q services.TimelineQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		failure(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid timeline query")
		return
	}

	grid, err := h.svc.Timeline(c.Request.Context(), q)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	success(c, http.StatusOK, newTimelineResponse(grid))
}
