package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Colors.White != "#ffffff" || cfg.Colors.Grey != "#808080" || cfg.Colors.Black != "#000000" {
		t.Errorf("color defaults: got %+v", cfg.Colors)
	}
	if cfg.Output.Format != "webp" {
		t.Errorf("expected webp default format, got %q", cfg.Output.Format)
	}
	if cfg.Output.PreviewSize != 200 {
		t.Errorf("expected preview size 200, got %d", cfg.Output.PreviewSize)
	}
	if cfg.Workers < 1 {
		t.Errorf("expected at least one worker, got %d", cfg.Workers)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected info level, got %q", cfg.Logging.Level)
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	src := `colors:
  white: "#e8e0d0"
  grey: "#6b705c"
output:
  format: png
workers: 3
logging:
  level: debug
  file: tools.log
`
	if err := os.WriteFile(path, []byte(src), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.Colors.White != "#e8e0d0" || cfg.Colors.Grey != "#6b705c" {
		t.Errorf("file colors not applied: %+v", cfg.Colors)
	}
	if cfg.Colors.Black != "#000000" {
		t.Errorf("unset field should keep default, got %q", cfg.Colors.Black)
	}
	if cfg.Output.Format != "png" || cfg.Workers != 3 {
		t.Errorf("file settings not applied: %+v", cfg)
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.File != "tools.log" {
		t.Errorf("logging settings not applied: %+v", cfg.Logging)
	}
}

func TestLoadEmptyPath(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg != Default() {
		t.Error("empty path should return defaults")
	}
}

func TestLoadBadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(path, []byte("colors: [not, a, map]"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected parse error")
	}
	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected read error")
	}
}

func TestResolvePrecedence(t *testing.T) {
	cfg := Default()
	cfg.Colors.White = "#111111"
	cfg.Workers = 2

	cfg.Resolve(Flags{White: "#222222", Format: "png", LogLevel: "warn"})

	if cfg.Colors.White != "#222222" {
		t.Errorf("flag should beat file value, got %q", cfg.Colors.White)
	}
	if cfg.Workers != 2 {
		t.Errorf("unset flag should keep file value, got %d", cfg.Workers)
	}
	if cfg.Output.Format != "png" || cfg.Logging.Level != "warn" {
		t.Errorf("flags not applied: %+v", cfg)
	}
}

func TestResolveRefillsZeroValues(t *testing.T) {
	var cfg Config
	cfg.Resolve(Flags{})

	if cfg.Output.Dir == "" || cfg.Output.Format == "" || cfg.Output.PreviewSize <= 0 {
		t.Errorf("zero output settings not refilled: %+v", cfg.Output)
	}
	if cfg.Workers <= 0 || cfg.Logging.Level == "" {
		t.Errorf("zero settings not refilled: %+v", cfg)
	}
}

func TestValidate(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
	cfg.Output.Format = "gif"
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for unknown format")
	}
}
