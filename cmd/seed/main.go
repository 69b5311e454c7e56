package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/srgjo27/hotel_pms/internal/adapter/repository/postgres"
	"github.com/srgjo27/hotel_pms/internal/platform/config"
	"github.com/srgjo27/hotel_pms/internal/platform/database"
	"github.com/srgjo27/hotel_pms/internal/platform/obs"
	"github.com/srgjo27/hotel_pms/internal/platform/seed"
)

// Seeds the Postgres database with the default room categories and rooms.
// Rates of existing categories are reset to the defaults; rooms are only added.
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", slog.Any("err", err))
		os.Exit(1)
	}

	logger := obs.NewLogger(cfg.Env)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	db, err := database.NewPostgresDB(ctx, cfg.Database, logger)
	if err != nil {
		logger.Error("failed to connect to db", slog.Any("err", err))
		os.Exit(1)
	}
	defer db.Close()

	if err := database.Migrate(ctx, db, logger); err != nil {
		logger.Error("migration failed", slog.Any("err", err))
		os.Exit(1)
	}

	res, err := seed.Apply(ctx, postgres.NewRoomRepository(db), seed.DefaultInventory(), logger)
	if err != nil {
		logger.Error("seed failed", slog.Any("err", err))
		os.Exit(1)
	}

	logger.Info("successfully updated all rooms and room types", slog.Int("categories", res.Categories), slog.Int("rooms", res.Rooms))
}
