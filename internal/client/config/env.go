package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config with values from environment variables.
// A .env file in the working directory is loaded first, without
// overriding variables already set in the process environment.
//
// Recognized variables:
//
//	AGORA_BACKEND_URL           base URL of the backend
//	AGORA_REFRESH_INTERVAL      subscription refresh interval, e.g. "90s"
//	AGORA_DATA_DIR              local data directory
//	AGORA_LANGUAGE              default language (es, en)
//	AGORA_LATITUDE              latitude for weather lookups
//	AGORA_LONGITUDE             longitude for weather lookups
//	AGORA_DEBUG                 "true" enables verbose logging
func parseEnv(cfg *Config) {
	// Missing .env is the normal case, not an error.
	_ = godotenv.Load()

	if v := os.Getenv("AGORA_BACKEND_URL"); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv("AGORA_REFRESH_INTERVAL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.EntitlementRefreshInterval = d
		}
	}
	if v := os.Getenv("AGORA_DATA_DIR"); v != "" {
		cfg.DataDir = v
	}
	if v := os.Getenv("AGORA_LANGUAGE"); v != "" {
		cfg.DefaultLanguage = v
	}
	if v := os.Getenv("AGORA_LATITUDE"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Latitude = f
		}
	}
	if v := os.Getenv("AGORA_LONGITUDE"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Longitude = f
		}
	}
	if v := os.Getenv("AGORA_DEBUG"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Debug = b
		}
	}
}
