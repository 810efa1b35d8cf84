package config

import (
	"os"
	"strconv"
)

type AppConfig struct {
	// LogErrors enables the diagnostics side channel reporting dropped
	// input rows on stderr. The snapshot on stdout is never affected.
	LogErrors bool
}

func Load() AppConfig {
	return AppConfig{
		LogErrors: getEnvBool("LEDGER_LOG_ERRORS", false),
	}
}

func getEnvBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}
