package handler

import (
	"log/slog"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/srgjo27/hotel_pms/internal/platform/obs"
)

type Handlers struct {
	Bookings *BookingHandler
	Rooms    *RoomHandler
	Timeline *TimelineHandler
	Health   obs.HealthHandlers
}

type RouterConfig struct {
	Env         string
	Logger      *slog.Logger
	CORSOrigins []string
}

func configureGinMode(env string) string {
	switch env {
	case "dev", "local":
		gin.SetMode(gin.DebugMode)
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.ReleaseMode)
	}
	return gin.Mode()
}

func NewRouter(cfg RouterConfig, h Handlers) *gin.Engine {
	mode := configureGinMode(cfg.Env)
	if cfg.Logger != nil {
		cfg.Logger.Info("gin initialized", slog.String("mode", mode))
	}

	origins := cfg.CORSOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	mw := obs.Middleware{Logger: cfg.Logger}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(mw.RequestID())
	router.Use(mw.RequestLogger())
	router.Use(cors.New(cors.Config{
		AllowOrigins:  origins,
		AllowMethods:  []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", HeaderUserID, HeaderUserRole, obs.RequestIDHeader},
		ExposeHeaders: []string{"Content-Length", "Content-Type", obs.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}))

	h.Health.Register(router)

	api := router.Group("/api/v1", Identify())
	if h.Bookings != nil {
		h.Bookings.RegisterRoutes(api)
	}
	if h.Rooms != nil {
		h.Rooms.RegisterRoutes(api)
	}
	if h.Timeline != nil {
		h.Timeline.RegisterRoutes(api)
	}

	return router
}
