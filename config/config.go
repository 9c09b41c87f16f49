package config

import (
	"log"
	"os"
	"strconv"
	"time"
)

// Config collects every environment-driven setting of the console gateway.
type Config struct {
	Port string

	// Base URLs of the two upstream platforms the console administers.
	ContentAPIBaseURL  string
	CommerceAPIBaseURL string

	JWTSecret            string
	SessionEncryptionKey string
	SessionTTL           time.Duration

	UpstreamTimeout time.Duration
	UpstreamDebug   bool
}

// Load reads the configuration from environment variables. Base URLs and the
// JWT secret are required; everything else has a default.
func Load() *Config {
	cfg := &Config{
		Port:                 getEnv("PORT", "8080"),
		ContentAPIBaseURL:    os.Getenv("CONTENT_API_BASE_URL"),
		CommerceAPIBaseURL:   os.Getenv("COMMERCE_API_BASE_URL"),
		JWTSecret:            os.Getenv("JWT_SECRET"),
		SessionEncryptionKey: os.Getenv("SESSION_ENCRYPTION_KEY"),
		SessionTTL:           time.Duration(getEnvInt("SESSION_TTL_HOURS", 12)) * time.Hour,
		UpstreamTimeout:      time.Duration(getEnvInt("UPSTREAM_TIMEOUT_SECONDS", 30)) * time.Second,
		UpstreamDebug:        os.Getenv("UPSTREAM_DEBUG") == "true",
	}

	if cfg.ContentAPIBaseURL == "" {
		log.Println("Warning: CONTENT_API_BASE_URL is not set; content screens will fail")
	}
	if cfg.CommerceAPIBaseURL == "" {
		log.Println("Warning: COMMERCE_API_BASE_URL is not set; commerce screens will fail")
	}
	if cfg.JWTSecret == "" {
		panic("JWT_SECRET environment variable is required")
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
