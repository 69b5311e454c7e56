package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/srgjo27/hotel_pms/internal/core/services"
)

type RoomHandler struct {
	svc    *services.RoomService
	logger *slog.Logger
}

func NewRoomHandler(svc *services.RoomService, logger *slog.Logger) *RoomHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &RoomHandler{svc: svc, logger: logger}
}

func (h *RoomHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/categories", h.ListCategories)
	rg.PUT("/categories/:id/rates", h.UpdateRates)
	rg.PATCH("/rooms/:id/active", h.SetActive)
}

func (h *RoomHandler) ListCategories(c *gin.Context) {
	categories, err := h.svc.ListCategories(c.Request.Context())
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	out := make([]categoryResponse, 0, len(categories))
	for i := range categories {
		out = append(out, newCategoryResponse(&categories[i]))
	}
	success(c, http.StatusOK, out)
}

func (h *RoomHandler) UpdateRates(c *gin.Context) {
	var req services.UpdateRatesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidBody(c)
		return
	}

	category, err := h.svc.UpdateCategoryRates(c.Request.Context(), actorOf(c), c.Param("id"), req)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	success(c, http.StatusOK, newCategoryResponse(category))
}

func (h *RoomHandler) SetActive(c *gin.Context) {
	var req setActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Active == nil {
		invalidBody(c)
		return
	}

	room, err := h.svc.SetRoomActive(c.Request.Context(), actorOf(c), c.Param("id"), *req.Active)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	success(c, http.StatusOK, newRoomResponse(room))
}
