// Package config provides loading and environment overlay for the logger
// service configuration. It exposes a Default() baseline, file loading for
// JSON and YAML, and an APEXLOG_* environment overlay.
//
// Example:
//
//	cfg := config.Default()
//	if fileCfg, err := config.Load("/etc/apexlog.yaml"); err == nil {
//	    cfg = fileCfg
//	}
//	config.FromEnv(&cfg)
package config
