package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// MinSecretLength is the minimum signing-secret size accepted for HS256.
const MinSecretLength = 32

const defaultTokenTTLMillis = 86_400_000 // 24h

// Config holds runtime configuration sourced from env vars.
// It is immutable after Load and shared by reference across the process.
type Config struct {
	Port        string
	DatabaseURL string
	JWTSecret   string
	JWTTTL      time.Duration
	CORSOrigins []string
	LogLevel    string
}

// Load reads configuration from the environment and fails fast on anything
// the process cannot safely start without.
func Load() (Config, error) {
	cfg := Config{
		Port:        fallback(os.Getenv("PORT"), "8080"),
		DatabaseURL: strings.TrimSpace(os.Getenv("DATABASE_URL")),
		JWTSecret:   strings.TrimSpace(os.Getenv("JWT_SECRET")),
		CORSOrigins: parseCSV(fallback(os.Getenv("CORS_ALLOWED_ORIGINS"), "*")),
		LogLevel:    fallback(os.Getenv("LOG_LEVEL"), "info"),
	}

	millis := fallback(os.Getenv("JWT_EXPIRATION_MS"), strconv.Itoa(defaultTokenTTLMillis))
	if ttl, err := strconv.ParseInt(millis, 10, 64); err == nil && ttl > 0 {
		cfg.JWTTTL = time.Duration(ttl) * time.Millisecond
	} else {
		cfg.JWTTTL = defaultTokenTTLMillis * time.Millisecond
	}

	if cfg.DatabaseURL == "" {
		return Config{}, errors.New("DATABASE_URL is required")
	}
	if cfg.JWTSecret == "" {
		return Config{}, errors.New("JWT_SECRET is required")
	}
	if len(cfg.JWTSecret) < MinSecretLength {
		return Config{}, fmt.Errorf("JWT_SECRET must be at least %d characters for HS256", MinSecretLength)
	}

	return cfg, nil
}

// HTTPAddress returns the host:port pair for the HTTP server to bind to.
func (c Config) HTTPAddress() string {
	return fmt.Sprintf(":%s", c.Port)
}

func fallback(value, def string) string {
	if strings.TrimSpace(value) == "" {
		return def
	}
	return strings.TrimSpace(value)
}

func parseCSV(input string) []string {
	parts := strings.Split(input, ",")
	var out []string
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			out = append(out, trimmed)
		}
	}
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}
