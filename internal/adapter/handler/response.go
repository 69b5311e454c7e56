package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/srgjo27/hotel_pms/internal/adapter/lock"
	"github.com/srgjo27/hotel_pms/internal/core/domain"
)

func success(c *gin.Context, status int, data any) {
	c.JSON(status, gin.H{
		"success": true,
		"data":    data,
	})
}

func failure(c *gin.Context, status int, code, message string) {
	c.JSON(status, gin.H{
		"success": false,
		"error": gin.H{
			"code":    code,
			"message": message,
		},
	})
}

func failureWithDetails(c *gin.Context, status int, code, message string, details any) {
	c.JSON(status, gin.H{
		"success": false,
		"error": gin.H{
			"code":    code,
			"message": message,
			"details": details,
		},
	})
}

// writeError maps service errors onto the response envelope. Unexpected errors
// are logged and reported with a generic message.
func writeError(c *gin.Context, logger *slog.Logger, err error) {
	var conflict *domain.ConflictError
	switch {
	case errors.As(err, &conflict):
		failureWithDetails(c, http.StatusConflict, "BOOKING_CONFLICT", err.Error(), newBookingResponses(conflict.Conflicts))
	case errors.Is(err, domain.ErrConflict):
		failure(c, http.StatusConflict, "BOOKING_CONFLICT", err.Error())
	case errors.Is(err, domain.ErrValidation):
		failure(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
	case errors.Is(err, domain.ErrForbidden):
		failure(c, http.StatusForbidden, "FORBIDDEN", err.Error())
	case errors.Is(err, domain.ErrNotFound):
		failure(c, http.StatusNotFound, "NOT_FOUND", err.Error())
	case errors.Is(err, lock.ErrLockTimeout), errors.Is(err, context.DeadlineExceeded):
		failure(c, http.StatusServiceUnavailable, "ROOM_BUSY", "The room is being updated by another request, try again")
	default:
		logger.ErrorContext(c.Request.Context(), "request failed",
			slog.String("method", c.Request.Method),
			slog.String("path", c.FullPath()),
			slog.Any("err", err),
		)
		failure(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error")
	}
}

func invalidBody(c *gin.Context) {
	failure(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
}
