package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFromPath_ValidConfig_ReturnsTypedConfig(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, `log_level: warn
log_file: /tmp/cidemo-test.log
log_rotation:
  max_size_mb: 50
  max_backups: 0
  compress: true
output:
  color: false
`)

	cfg, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("LoadFromPath() error = %v", err)
	}

	if cfg.LogLevel != "warn" {
		t.Errorf("LogLevel = %q, want warn", cfg.LogLevel)
	}
	if cfg.LogFile != "/tmp/cidemo-test.log" {
		t.Errorf("LogFile = %q, want /tmp/cidemo-test.log", cfg.LogFile)
	}
	if cfg.LogRotation.MaxSizeMB != 50 {
		t.Errorf("LogRotation.MaxSizeMB = %d, want 50", cfg.LogRotation.MaxSizeMB)
	}
	if cfg.LogRotation.MaxBackups != 0 {
		t.Errorf("LogRotation.MaxBackups = %d, want 0", cfg.LogRotation.MaxBackups)
	}
	if !cfg.LogRotation.Compress {
		t.Error("LogRotation.Compress = false, want true")
	}
	if cfg.Output.Color {
		t.Error("Output.Color = true, want false")
	}
}

func TestLoad_UsesViperDefaults_WhenKeysNotInFile(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "log_level: debug\n")

	cfg, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("LoadFromPath() error = %v", err)
	}

	if cfg.LogRotation.MaxAgeDays != DefaultLogMaxAgeDays {
		t.Errorf("LogRotation.MaxAgeDays = %d, want default %d", cfg.LogRotation.MaxAgeDays, DefaultLogMaxAgeDays)
	}
	if cfg.Output.Color != DefaultOutputColor {
		t.Errorf("Output.Color = %v, want default %v", cfg.Output.Color, DefaultOutputColor)
	}
}

func TestLoad_InvalidConfig_ReturnsValidationError(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "log_level: verbose\n")

	_, err := LoadFromPath(path)
	if err == nil {
		t.Fatal("LoadFromPath() expected validation error, got nil")
	}
	if !IsValidationError(err) {
		t.Errorf("expected validation error, got %T: %v", err, err)
	}
}

func TestLoadFromPath_MissingFile_ReturnsError(t *testing.T) {
	_, err := LoadFromPath(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("LoadFromPath() expected error for missing file, got nil")
	}
}

func TestLoad_InvalidYAML_ReturnsError(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("log_level: [unclosed"), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	if _, err := LoadFromPath(path); err == nil {
		t.Fatal("LoadFromPath() expected error for invalid YAML, got nil")
	}
}

func TestLoad_NoConfigFile_ReturnsDefaults(t *testing.T) {
	isolate(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.LogLevel != DefaultLogLevel {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, DefaultLogLevel)
	}
}

func TestLoad_FindsConfigInEnvDir(t *testing.T) {
	isolate(t)
	envDir := t.TempDir()
	writeConfig(t, envDir, "log_level: error\n")
	t.Setenv("CIDEMO_CONFIG_DIR", envDir)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.LogLevel != "error" {
		t.Errorf("LogLevel = %q, want error", cfg.LogLevel)
	}
}

func TestLoadWithDefaults_ReturnsDefaultConfig(t *testing.T) {
	cfg := LoadWithDefaults()
	if cfg == nil {
		t.Fatal("LoadWithDefaults() returned nil")
	}
	if *cfg != NewDefaultConfig() {
		t.Errorf("LoadWithDefaults() = %+v, want %+v", *cfg, NewDefaultConfig())
	}
}
