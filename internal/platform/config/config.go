package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/joho/godotenv"
	"github.com/srgjo27/hotel_pms/internal/adapter/calendar"
	"github.com/srgjo27/hotel_pms/internal/core/domain"
	"github.com/srgjo27/hotel_pms/internal/platform/database"
)

// Config aggregates application configuration values loaded from environment variables.
type Config struct {
	Env      string
	HTTPAddr string
	Storage  string
	Database database.Config
	// SeedOnStart loads the default room inventory at boot.
	SeedOnStart bool

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	KafkaBrokers []string
	KafkaTopic   string

	TimelineCacheTTL     time.Duration
	TimelineWarmInterval time.Duration
	RoomLockTTL          time.Duration
	RoomLockWait         time.Duration

	WeekendDays       []time.Weekday
	ExtraHolidays     []time.Time
	StatusTransitions domain.TransitionMode
	Location          *time.Location
	CORSOrigins       []string
}

const (
	StoragePostgres = "postgres"
	StorageMemory   = "memory"
)

// Load reads .env when present and then parses the current environment.
func Load() (Config, error) {
	_ = godotenv.Load()
	return FromEnv()
}

// FromEnv parses configuration from the current environment only.
func FromEnv() (Config, error) {
	cfg := Config{
		Env:      getEnv("APP_ENV", "dev"),
		HTTPAddr: getEnv("HTTP_ADDR", ":8080"),
		Storage:  strings.ToLower(getEnv("STORAGE", StoragePostgres)),
		Database: database.Config{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: os.Getenv("DB_PASSWORD"),
			DBName:   getEnv("DB_NAME", "hotel_pms"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
			URL:      os.Getenv("DATABASE_URL"),
		},
		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		KafkaTopic:    getEnv("KAFKA_TOPIC", "hotel.bookings"),
		CORSOrigins:   splitList(getEnv("CORS_ORIGINS", "*")),
	}

	if cfg.Storage != StoragePostgres && cfg.Storage != StorageMemory {
		return Config{}, fmt.Errorf("invalid STORAGE %q: want postgres or memory", cfg.Storage)
	}

	cfg.KafkaBrokers = splitList(os.Getenv("KAFKA_BROKERS"))

	seed, err := parseBoolEnv("SEED_ON_START", cfg.UseMemoryStorage())
	if err != nil {
		return Config{}, err
	}
	cfg.SeedOnStart = seed

	redisDB, err := parseIntEnv("REDIS_DB", 0)
	if err != nil {
		return Config{}, err
	}
	cfg.RedisDB = redisDB

	if cfg.TimelineCacheTTL, err = parseDurationEnv("TIMELINE_CACHE_TTL", 5*time.Minute); err != nil {
		return Config{}, err
	}
	if cfg.TimelineWarmInterval, err = parseDurationEnv("TIMELINE_WARM_INTERVAL", time.Minute); err != nil {
		return Config{}, err
	}
	if cfg.RoomLockTTL, err = parseDurationEnv("ROOM_LOCK_TTL", 10*time.Second); err != nil {
		return Config{}, err
	}
	if cfg.RoomLockWait, err = parseDurationEnv("ROOM_LOCK_WAIT", 3*time.Second); err != nil {
		return Config{}, err
	}

	weekend, err := calendar.ParseWeekdays(getEnv("WEEKEND_DAYS", "fri,sat"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid WEEKEND_DAYS: %w", err)
	}
	cfg.WeekendDays = weekend

	for _, raw := range splitList(os.Getenv("HOLIDAYS_EXTRA")) {
		d, err := time.Parse(domain.DateLayout, raw)
		if err != nil {
			return Config{}, fmt.Errorf("invalid HOLIDAYS_EXTRA component %q: %w", raw, err)
		}
		cfg.ExtraHolidays = append(cfg.ExtraHolidays, d)
	}

	mode, err := domain.ParseTransitionMode(os.Getenv("STATUS_TRANSITIONS"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid STATUS_TRANSITIONS: %w", err)
	}
	cfg.StatusTransitions = mode

	loc, err := time.LoadLocation(getEnv("TIMEZONE", "Asia/Manila"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid TIMEZONE: %w", err)
	}
	cfg.Location = loc

	return cfg, nil
}

func (c Config) UseMemoryStorage() bool {
	return c.Storage == StorageMemory
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func parseDurationEnv(key string, def time.Duration) (time.Duration, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return def, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s duration: %w", key, err)
	}
	return d, nil
}

func parseIntEnv(key string, def int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("invalid %s integer: %q", key, raw)
	}
	return n, nil
}

func parseBoolEnv(key string, def bool) (bool, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return def, nil
	}
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "1", "t", "true", "yes", "y", "on":
		return true, nil
	case "0", "f", "false", "no", "n", "off":
		return false, nil
	default:
		return false, fmt.Errorf("invalid %s boolean: %q", key, raw)
	}
}
