package config

import (
	"os"
	"strconv"
)

// Environment keys recognized at startup. A .env file loaded via
// godotenv can provide any of them.
const (
	EnvHeadless   = "FORM_HEADLESS"
	EnvNavTimeout = "FORM_NAV_TIMEOUT_MS"
	EnvMaxWorkers = "FORM_MAX_WORKERS"
	EnvRateLimit  = "FORM_RATE_LIMIT"
	EnvProfile    = "FORM_PROFILE"
	EnvLogLevel   = "LOG_LEVEL"
)

func String(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func Bool(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return parsed
}

func Int(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return parsed
}

func Float(key string, def float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	parsed, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return def
	}
	return parsed
}
