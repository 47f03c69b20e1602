package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.BaseName != "log" {
		t.Fatalf("default base name")
	}
	if cfg.MaxLogLength != 1_000_000 {
		t.Fatalf("default max log length")
	}
	if !cfg.Enabled {
		t.Fatalf("default enabled should be true")
	}
	if cfg.RecentLimit != 10 {
		t.Fatalf("default recent limit")
	}
}

func TestLoadJSON(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "apexlog.json")
	data := []byte(`{"namespace":"prod-logs","baseName":"Error_Log","maxLogLength":2048,"enabled":false}`)
	if err := os.WriteFile(file, data, 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg, err := Load(file)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Namespace != "prod-logs" || cfg.BaseName != "Error_Log" {
		t.Fatalf("names not loaded: %+v", cfg)
	}
	if cfg.MaxLogLength != 2048 {
		t.Fatalf("expected 2048")
	}
	if cfg.Enabled {
		t.Fatalf("expected disabled")
	}
	// untouched fields keep defaults
	if cfg.RecentLimit != 10 {
		t.Fatalf("recent limit default lost")
	}
}

func TestLoadYAML(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "apexlog.yaml")
	data := []byte("namespace: staging-logs\nbaseName: audit\nmaxLogLength: 4096\n")
	if err := os.WriteFile(file, data, 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg, err := Load(file)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Namespace != "staging-logs" || cfg.BaseName != "audit" || cfg.MaxLogLength != 4096 {
		t.Fatalf("yaml not loaded: %+v", cfg)
	}
}

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg != Default() {
		t.Fatalf("expected defaults, got %+v", cfg)
	}
}

func TestFromEnv(t *testing.T) {
	cfg := Default()
	t.Setenv("APEXLOG_NAMESPACE", "env-logs")
	t.Setenv("APEXLOG_BASE_NAME", "env_log")
	t.Setenv("APEXLOG_MAX_LOG_LENGTH", "512")
	t.Setenv("APEXLOG_ENABLED", "false")
	FromEnv(&cfg)
	if cfg.Namespace != "env-logs" || cfg.BaseName != "env_log" {
		t.Fatalf("env names: %+v", cfg)
	}
	if cfg.MaxLogLength != 512 {
		t.Fatalf("env max length")
	}
	if cfg.Enabled {
		t.Fatalf("env enabled override")
	}
}

func TestDefaultDataDirNotEmpty(t *testing.T) {
	if DefaultDataDir() == "" {
		t.Fatalf("data dir must not be empty")
	}
}
