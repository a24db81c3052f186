package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config is centralized process configuration.
// Keep infra values here and pass typed config into builders.
type Config struct {
	ServiceName string
	HTTPPort    string
	PostgresDSN string

	// SecretKey signs access tokens. Required outside local dev.
	SecretKey string

	// Seed admin bootstrap credentials for the seed-admin endpoint.
	SeedAdminName     string
	SeedAdminEmail    string
	SeedAdminPassword string

	AccessTokenTTL time.Duration
	TokenValidity  time.Duration

	WorkerPollInterval time.Duration
	OutboxBatchSize    int
}

func Load() (Config, error) {
	// Local dev reads .env; missing file is not an error.
	_ = godotenv.Load()

	service := os.Getenv("SERVICE_NAME")
	if service == "" {
		service = "ignite"
	}

	port := os.Getenv("HTTP_PORT")
	if port == "" {
		port = "8080"
	}

	secret := os.Getenv("SECRET_KEY")
	if secret == "" {
		secret = "dev-secret-change-me"
	}

	return Config{
		ServiceName: service,
		HTTPPort:    port,
		PostgresDSN: os.Getenv("POSTGRES_DSN"),
		SecretKey:   secret,

		SeedAdminName:     envDefault("SEED_ADMIN_NAME", "Competition Admin"),
		SeedAdminEmail:    envDefault("SEED_ADMIN_EMAIL", "admin@ignite.local"),
		SeedAdminPassword: envDefault("SEED_ADMIN_PASSWORD", "admin123"),

		AccessTokenTTL: time.Duration(envInt("ACCESS_TOKEN_TTL_HOURS", 24)) * time.Hour,
		TokenValidity:  time.Duration(envInt("VOTING_TOKEN_VALIDITY_DAYS", 90)) * 24 * time.Hour,

		WorkerPollInterval: time.Duration(envInt("WORKER_POLL_SECONDS", 2)) * time.Second,
		OutboxBatchSize:    envInt("OUTBOX_BATCH_SIZE", 100),
	}, nil
}

func envDefault(name string, fallback string) string {
	value := strings.TrimSpace(os.Getenv(name))
	if value == "" {
		return fallback
	}
	return value
}

func envInt(name string, fallback int) int {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value <= 0 {
		return fallback
	}
	return value
}
