package config

import (
	"os"
	"time"
)

// Service constants with env var override support.
var (
	RefreshTimeout  = durationEnv("REFRESH_TIMEOUT", 60*time.Second)
	ShutdownTimeout = durationEnv("SHUTDOWN_TIMEOUT", 10*time.Second)
)

func durationEnv(key string, defaultVal time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultVal
}
