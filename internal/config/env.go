package config

import (
	"os"
	"strconv"
)

// FromEnv overlays APEXLOG_* environment variables onto cfg.
func FromEnv(cfg *Config) {
	if v := os.Getenv("APEXLOG_NAMESPACE"); v != "" {
		cfg.Namespace = v
	}
	if v := os.Getenv("APEXLOG_BASE_NAME"); v != "" {
		cfg.BaseName = v
	}
	if v := os.Getenv("APEXLOG_MAX_LOG_LENGTH"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.MaxLogLength = n
		}
	}
	if v := os.Getenv("APEXLOG_ENABLED"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Enabled = b
		}
	}
	if v := os.Getenv("APEXLOG_RECENT_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.RecentLimit = n
		}
	}
	if v := os.Getenv("APEXLOG_COMPRESSION"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Compression = b
		}
	}
}
