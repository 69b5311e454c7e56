package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/srgjo27/hotel_pms/internal/adapter/cache"
	"github.com/srgjo27/hotel_pms/internal/adapter/calendar"
	"github.com/srgjo27/hotel_pms/internal/adapter/events"
	"github.com/srgjo27/hotel_pms/internal/adapter/handler"
	"github.com/srgjo27/hotel_pms/internal/adapter/lock"
	"github.com/srgjo27/hotel_pms/internal/adapter/repository/memory"
	"github.com/srgjo27/hotel_pms/internal/adapter/repository/postgres"
	"github.com/srgjo27/hotel_pms/internal/core/ports"
	"github.com/srgjo27/hotel_pms/internal/core/services"
	"github.com/srgjo27/hotel_pms/internal/platform/config"
	"github.com/srgjo27/hotel_pms/internal/platform/database"
	"github.com/srgjo27/hotel_pms/internal/platform/obs"
	"github.com/srgjo27/hotel_pms/internal/platform/seed"
)

type storage struct {
	rooms     ports.RoomRepository
	bookings  ports.BookingRepository
	snapshots ports.SnapshotReader
	ping      func(ctx context.Context) error
	close     func()
}

func openStorage(ctx context.Context, cfg config.Config, logger *slog.Logger) (*storage, error) {
	if cfg.UseMemoryStorage() {
		logger.Warn("using in-memory storage, bookings are lost on restart")
		store := memory.NewStore()
		return &storage{
			rooms:     store.Rooms(),
			bookings:  store.Bookings(),
			snapshots: store,
			ping:      func(context.Context) error { return nil },
			close:     func() {},
		}, nil
	}

	db, err := database.NewPostgresDB(ctx, cfg.Database, logger)
	if err != nil {
		return nil, err
	}
	if err := database.Migrate(ctx, db, logger); err != nil {
		db.Close()
		return nil, err
	}

	return &storage{
		rooms:     postgres.NewRoomRepository(db),
		bookings:  postgres.NewBookingRepository(db),
		snapshots: postgres.NewSnapshotReader(db),
		ping:      db.PingContext,
		close:     func() { db.Close() },
	}, nil
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", slog.Any("err", err))
		os.Exit(1)
	}

	logger := obs.NewLogger(cfg.Env)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, err := openStorage(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to open storage", slog.Any("err", err))
		os.Exit(1)
	}
	defer store.close()

	if cfg.SeedOnStart {
		res, err := seed.Apply(ctx, store.rooms, seed.DefaultInventory(), logger)
		if err != nil {
			logger.Error("failed to seed rooms", slog.Any("err", err))
			os.Exit(1)
		}
		logger.Info("room inventory seeded", slog.Int("categories", res.Categories), slog.Int("rooms", res.Rooms))
	}

	opts := []services.Option{
		services.WithLogger(logger),
		services.WithTransitionMode(cfg.StatusTransitions),
		services.WithLocation(cfg.Location),
	}

	var locker ports.RoomLocker = lock.NewMemoryLocker()
	ready := []func(context.Context) error{store.ping}

	if cfg.RedisAddr != "" {
		logger.Info("connecting to redis", slog.String("addr", cfg.RedisAddr))

		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		defer redisClient.Close()

		if err := redisClient.Ping(ctx).Err(); err != nil {
			logger.Error("failed to connect to redis", slog.Any("err", err))
			os.Exit(1)
		}
		logger.Info("redis connected")

		locker = lock.NewRedisLocker(redisClient, lock.RedisConfig{
			TTL:     cfg.RoomLockTTL,
			MaxWait: cfg.RoomLockWait,
		}, logger)
		opts = append(opts, services.WithTimelineCache(cache.NewRedisTimelineCache(redisClient, cfg.TimelineCacheTTL)))
		ready = append(ready, func(ctx context.Context) error { return redisClient.Ping(ctx).Err() })
	} else {
		logger.Warn("REDIS_ADDR not set, room locks and the timeline cache are local to this process")
		opts = append(opts, services.WithTimelineCache(cache.NewMemoryTimelineCache(cfg.TimelineCacheTTL)))
	}

	if len(cfg.KafkaBrokers) > 0 {
		publisher, err := events.NewKafkaPublisher(cfg.KafkaBrokers, cfg.KafkaTopic, nil)
		if err != nil {
			logger.Error("failed to connect to kafka", slog.Any("err", err))
			os.Exit(1)
		}
		defer publisher.Close()
		opts = append(opts, services.WithEventPublisher(publisher))
		logger.Info("publishing booking events", slog.String("topic", cfg.KafkaTopic))
	}

	oracle := calendar.NewPhilippines(cfg.WeekendDays, cfg.ExtraHolidays)
	tariff := services.NewTariffCalculator(oracle)

	bookingService := services.NewBookingService(store.rooms, store.bookings, locker, tariff, opts...)
	roomService := services.NewRoomService(store.rooms, opts...)
	timelineService := services.NewTimelineService(store.snapshots, opts...)

	go timelineService.RunCacheWarmer(ctx, cfg.TimelineWarmInterval)

	router := handler.NewRouter(handler.RouterConfig{
		Env:         cfg.Env,
		Logger:      logger,
		CORSOrigins: cfg.CORSOrigins,
	}, handler.Handlers{
		Bookings: handler.NewBookingHandler(bookingService, logger),
		Rooms:    handler.NewRoomHandler(roomService, logger),
		Timeline: handler.NewTimelineHandler(timelineService, logger),
		Health: obs.HealthHandlers{Ready: func(ctx context.Context) error {
			for _, check := range ready {
				if err := check(ctx); err != nil {
					return err
				}
			}
			return nil
		}},
	})

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		logger.Info("server starting", slog.String("addr", cfg.HTTPAddr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server startup failed", slog.Any("err", err))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", slog.Any("err", err))
	}

	logger.Info("server exiting")
}
