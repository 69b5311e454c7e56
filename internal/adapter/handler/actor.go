package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/srgjo27/hotel_pms/internal/core/domain"
)

const (
	HeaderUserID   = "X-User-ID"
	HeaderUserRole = "X-User-Role"
)

// Identify reads the caller set by the auth gateway and stores it on the request context.
func Identify() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.GetHeader(HeaderUserID))
		if err != nil {
			failure(c, http.StatusUnauthorized, "UNAUTHENTICATED", "Missing or invalid "+HeaderUserID+" header")
			c.Abort()
			return
		}

		role, err := domain.ParseRole(c.GetHeader(HeaderUserRole))
		if err != nil {
			failure(c, http.StatusUnauthorized, "UNAUTHENTICATED", "Missing or invalid "+HeaderUserRole+" header")
			c.Abort()
			return
		}

		actor := domain.Actor{ID: id, Role: role}
		c.Request = c.Request.WithContext(domain.ContextWithActor(c.Request.Context(), actor))
		c.Next()
	}
}

// RequireBookingEditor limits booking detail changes to operators allowed to edit bookings.
func RequireBookingEditor() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !actorOf(c).CanEditBookings() {
			failure(c, http.StatusForbidden, "FORBIDDEN", "Your role cannot modify bookings")
			c.Abort()
			return
		}
		c.Next()
	}
}

func actorOf(c *gin.Context) domain.Actor {
	actor, _ := domain.ActorFromContext(c.Request.Context())
	return actor
}
