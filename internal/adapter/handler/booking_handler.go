package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/srgjo27/hotel_pms/internal/core/services"
)

type BookingHandler struct {
	svc    *services.BookingService
	logger *slog.Logger
}

func NewBookingHandler(svc *services.BookingService, logger *slog.Logger) *BookingHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &BookingHandler{svc: svc, logger: logger}
}

func (h *BookingHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/bookings", h.CreateBooking)
	rg.GET("/bookings/:id", h.GetBooking)

	edit := rg.Group("/bookings/:id", RequireBookingEditor())
	edit.PATCH("/payment", h.UpdatePayment)
	edit.PATCH("/status", h.UpdateStatus)
	edit.PUT("/schedule", h.Reschedule)
	edit.DELETE("", h.DeleteBooking)

	rg.GET("/rooms/:id/conflicts", h.FindConflicts)
	rg.GET("/rooms/:id/quote", h.QuoteStay)
}

func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var req services.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidBody(c)
		return
	}

	booking, err := h.svc.CreateBooking(c.Request.Context(), req)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	success(c, http.StatusCreated, newBookingResponse(booking))
}

func (h *BookingHandler) GetBooking(c *gin.Context) {
	booking, err := h.svc.GetBooking(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	success(c, http.StatusOK, newBookingResponse(booking))
}

func (h *BookingHandler) UpdatePayment(c *gin.Context) {
	var req updatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.PaidAmount == nil {
		invalidBody(c)
		return
	}

	booking, err := h.svc.UpdatePayment(c.Request.Context(), c.Param("id"), *req.PaidAmount)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	success(c, http.StatusOK, newBookingResponse(booking))
}

func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidBody(c)
		return
	}

	booking, err := h.svc.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	success(c, http.StatusOK, newBookingResponse(booking))
}

func (h *BookingHandler) Reschedule(c *gin.Context) {
	var req services.RescheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidBody(c)
		return
	}

	booking, err := h.svc.RescheduleBooking(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	success(c, http.StatusOK, newBookingResponse(booking))
}

func (h *BookingHandler) DeleteBooking(c *gin.Context) {
	if err := h.svc.DeleteBooking(c.Request.Context(), actorOf(c), c.Param("id")); err != nil {
		writeError(c, h.logger, err)
		return
	}

	success(c, http.StatusOK, gin.H{"id": c.Param("id"), "deleted": true})
}

func (h *BookingHandler) FindConflicts(c *gin.Context) {
	var q services.StayQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		invalidBody(c)
		return
	}

	conflicts, err := h.svc.FindConflicts(c.Request.Context(), c.Param("id"), q)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	success(c, http.StatusOK, gin.H{
		"available": len(conflicts) == 0,
		"conflicts": newBookingResponses(conflicts),
	})
}

func (h *BookingHandler) QuoteStay(c *gin.Context) {
	var q services.StayQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		invalidBody(c)
		return
	}

	quote, err := h.svc.QuoteStay(c.Request.Context(), c.Param("id"), q)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	success(c, http.StatusOK, newQuoteResponse(c.Param("id"), quote))
}
