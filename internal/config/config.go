package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	App struct {
		ENV string
	}

	Log struct {
		Level     string
		Format    string
		Component string
		Source    bool
	}

	DB struct {
		Driver   string
		DSN      string
		Host     string
		Port     string
		User     string
		Password string
		Name     string
	}

	Redis struct {
		Addr     string
		Password string
		DB       int
	}

	GRPC struct {
		Host string
		Port string
	}

	HTTP struct {
		Addr string
	}

	NATS struct {
		URL  string
		Name string
	}

	Matching MatchingConfig
}

// MatchingConfig carries the raw tuning knobs of the scorer and ranker.
// MaxDistanceKm is kept as text ("none" or a number) and parsed by the
// matching package into a tagged distance cap.
type MatchingConfig struct {
	WeightInterest float64
	WeightBio      float64
	WeightLocation float64
	WeightActivity float64

	MaxDistanceKm   string
	DistanceDecayKm float64
	RecentWindow    time.Duration
	InactiveCutoff  time.Duration

	ScoreTTL           time.Duration
	PoolSize           int
	RefreshConcurrency int
	RefreshCooldown    time.Duration
}

func New() *Config {
	cfg := &Config{}

	cfg.App.ENV = getEnvDefault("APP_ENV", "production")

	// Logger
	cfg.Log.Level = getEnvDefault("LOG_LEVEL", "info")
	cfg.Log.Format = getEnvDefault("LOG_FORMAT", "text")
	cfg.Log.Component = getEnvDefault("LOG_COMPONENT", "smartmatch")
	cfg.Log.Source = isTruthy(os.Getenv("LOG_SOURCE"))

	// Database
	cfg.DB.Driver = strings.ToLower(getEnvDefault("DB_DRIVER", "mysql"))
	cfg.DB.DSN = os.Getenv("DATABASE_DSN")
	if cfg.DB.DSN == "" && cfg.DB.Driver == "mysql" {
		cfg.DB.DSN = os.Getenv("MYSQL_DSN")
	}
	if cfg.DB.DSN == "" {
		cfg.DB.Host = getEnvDefault("DB_HOST", "localhost")
		cfg.DB.User = getEnvDefault("DB_USER", "root")
		cfg.DB.Password = getEnvDefault("DB_PASSWORD", "root")
		cfg.DB.Name = getEnvDefault("DB_NAME", "muzz")

		switch cfg.DB.Driver {
		case "postgres":
			cfg.DB.Port = getEnvDefault("DB_PORT", "5432")
			cfg.DB.DSN = fmt.Sprintf(
				"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable TimeZone=UTC",
				cfg.DB.Host, cfg.DB.Port, cfg.DB.User, cfg.DB.Password, cfg.DB.Name,
			)
		case "sqlite":
			cfg.DB.DSN = getEnvDefault("SQLITE_PATH", "smartmatch.db")
		default:
			cfg.DB.Port = getEnvDefault("DB_PORT", "3306")
			cfg.DB.DSN = fmt.Sprintf(
				"%s:%s@tcp(%s:%s)/%s?parseTime=true&charset=utf8mb4&loc=UTC",
				cfg.DB.User, cfg.DB.Password, cfg.DB.Host, cfg.DB.Port, cfg.DB.Name,
			)
		}
	}

	// Redis
	cfg.Redis.Addr = getEnvDefault("REDIS_ADDR", "localhost:6379")
	cfg.Redis.Password = getEnvDefault("REDIS_PASSWORD", "")
	cfg.Redis.DB = getEnvInt("REDIS_DB", 0)

	// gRPC
	cfg.GRPC.Host = getEnvDefault("GRPC_HOST", "127.0.0.1")
	cfg.GRPC.Port = getEnvDefault("GRPC_PORT", "50051")

	// HTTP (JSON API + /metrics)
	cfg.HTTP.Addr = getEnvDefault("HTTP_ADDR", ":8080")

	// NATS; empty URL means refreshes run in-process
	cfg.NATS.URL = getEnvDefault("NATS_URL", "")
	cfg.NATS.Name = getEnvDefault("NATS_NAME", "smartmatch")

	// Matching
	m := &cfg.Matching
	m.WeightInterest = getEnvFloat("MATCH_WEIGHT_INTEREST", 0.3)
	m.WeightBio = getEnvFloat("MATCH_WEIGHT_BIO", 0.2)
	m.WeightLocation = getEnvFloat("MATCH_WEIGHT_LOCATION", 0.2)
	m.WeightActivity = getEnvFloat("MATCH_WEIGHT_ACTIVITY", 0.3)
	m.MaxDistanceKm = getEnvDefault("MATCH_MAX_DISTANCE_KM", "100")
	m.DistanceDecayKm = getEnvFloat("MATCH_DISTANCE_DECAY_KM", 50)
	m.RecentWindow = getEnvDuration("MATCH_RECENT_WINDOW", time.Hour)
	m.InactiveCutoff = getEnvDuration("MATCH_INACTIVE_CUTOFF", 30*24*time.Hour)
	m.ScoreTTL = getEnvDuration("MATCH_SCORE_TTL", 24*time.Hour)
	m.PoolSize = getEnvInt("MATCH_POOL_SIZE", 500)
	m.RefreshConcurrency = getEnvInt("MATCH_REFRESH_CONCURRENCY", 8)
	m.RefreshCooldown = getEnvDuration("MATCH_REFRESH_COOLDOWN", 5*time.Minute)

	return cfg
}

func getEnvDefault(k, def string) string {
	if v := strings.TrimSpace(os.Getenv(k)); v != "" {
		return v
	}
	return def
}

func getEnvInt(k string, def int) int {
	if n, err := strconv.Atoi(getEnvDefault(k, "")); err == nil {
		return n
	}
	return def
}

func getEnvFloat(k string, def float64) float64 {
	if f, err := strconv.ParseFloat(getEnvDefault(k, ""), 64); err == nil {
		return f
	}
	return def
}

func getEnvDuration(k string, def time.Duration) time.Duration {
	if d, err := time.ParseDuration(getEnvDefault(k, "")); err == nil && d > 0 {
		return d
	}
	return def
}

func isTruthy(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "y", "on":
		return true
	}
	return false
}
