package config

import (
	"os"
	"path/filepath"
	"testing"
)

// isolate points HOME and the env config dir at empty temp directories and
// moves into a third so no real config file can be found.
func isolate(t *testing.T) string {
	t.Helper()

	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("CIDEMO_CONFIG_DIR", "")

	origDir, err := os.Getwd()
	if err != nil {
		t.Fatalf("failed to get working dir: %v", err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatalf("failed to change to temp dir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(origDir) })

	Reset()
	t.Cleanup(Reset)
	return home
}

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()

	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("failed to create config dir: %v", err)
	}
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
	return path
}

func TestInit_NoConfigFile_UsesDefaults(t *testing.T) {
	isolate(t)

	if err := Init(); err != nil {
		t.Fatalf("Init() returned error when no config file exists: %v", err)
	}

	if path := ConfigFilePath(); path != "" {
		t.Errorf("ConfigFilePath() = %q, want empty string when no config file", path)
	}
	if got := GetString("log_level"); got != DefaultLogLevel {
		t.Errorf("GetString(log_level) = %q, want %q", got, DefaultLogLevel)
	}
	if got := GetInt("log_rotation.max_size_mb"); got != DefaultLogMaxSizeMB {
		t.Errorf("GetInt(log_rotation.max_size_mb) = %d, want %d", got, DefaultLogMaxSizeMB)
	}
	if !GetBool("output.color") {
		t.Error("GetBool(output.color) = false, want true by default")
	}
}

func TestInit_ConfigInEnvDir_LoadsFromEnvDir(t *testing.T) {
	isolate(t)
	envDir := t.TempDir()
	configPath := writeConfig(t, envDir, "log_level: debug\n")
	t.Setenv("CIDEMO_CONFIG_DIR", envDir)

	if err := Init(); err != nil {
		t.Fatalf("Init() returned error: %v", err)
	}

	if got := ConfigFilePath(); got != configPath {
		t.Errorf("ConfigFilePath() = %q, want %q", got, configPath)
	}
	if got := GetString("log_level"); got != "debug" {
		t.Errorf("GetString(log_level) = %q, want debug", got)
	}
}

func TestInit_ConfigInDefaultDir_LoadsFromDefaultDir(t *testing.T) {
	home := isolate(t)
	configPath := writeConfig(t, filepath.Join(home, ".config", "cidemo"), "log_level: warn\n")

	if err := Init(); err != nil {
		t.Fatalf("Init() returned error: %v", err)
	}

	if got := ConfigFilePath(); got != configPath {
		t.Errorf("ConfigFilePath() = %q, want %q", got, configPath)
	}
}

func TestInit_MultipleLocations_UsesFirstMatch(t *testing.T) {
	home := isolate(t)
	envDir := t.TempDir()
	envConfigPath := writeConfig(t, envDir, "log_level: error\n")
	writeConfig(t, filepath.Join(home, ".config", "cidemo"), "log_level: warn\n")
	t.Setenv("CIDEMO_CONFIG_DIR", envDir)

	if err := Init(); err != nil {
		t.Fatalf("Init() returned error: %v", err)
	}

	if got := ConfigFilePath(); got != envConfigPath {
		t.Errorf("ConfigFilePath() = %q, want %q (env dir should take priority)", got, envConfigPath)
	}
	if got := GetString("log_level"); got != "error" {
		t.Errorf("GetString(log_level) = %q, want error", got)
	}
}

func TestInit_InvalidYAML_ReturnsFatalError(t *testing.T) {
	isolate(t)
	envDir := t.TempDir()
	writeConfig(t, envDir, "log_rotation:\n  max_size_mb: [invalid yaml")
	t.Setenv("CIDEMO_CONFIG_DIR", envDir)

	if err := Init(); err == nil {
		t.Fatal("Init() should return error for invalid YAML, got nil")
	}
}

func TestEnvOverride_NestedKey_OverridesFileValue(t *testing.T) {
	isolate(t)
	envDir := t.TempDir()
	writeConfig(t, envDir, "log_rotation:\n  max_backups: 5\n")
	t.Setenv("CIDEMO_CONFIG_DIR", envDir)
	t.Setenv("CIDEMO_LOG_ROTATION_MAX_BACKUPS", "9")

	if err := Init(); err != nil {
		t.Fatalf("Init() returned error: %v", err)
	}

	cfg := Get()
	if cfg.LogRotation.MaxBackups != 9 {
		t.Errorf("Get().LogRotation.MaxBackups = %d, want 9 (env override)", cfg.LogRotation.MaxBackups)
	}
}

func TestGet_ReturnsTypedConfig(t *testing.T) {
	isolate(t)
	envDir := t.TempDir()
	writeConfig(t, envDir, "log_level: debug\noutput:\n  color: false\n")
	t.Setenv("CIDEMO_CONFIG_DIR", envDir)

	if err := Init(); err != nil {
		t.Fatalf("Init() returned error: %v", err)
	}

	cfg := Get()
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", cfg.LogLevel)
	}
	if cfg.Output.Color {
		t.Error("Output.Color = true, want false from config file")
	}
	if cfg.LogFile != DefaultLogFile {
		t.Errorf("LogFile = %q, want default %q", cfg.LogFile, DefaultLogFile)
	}
}

func TestSet_OverridesValue(t *testing.T) {
	isolate(t)
	if err := Init(); err != nil {
		t.Fatalf("Init() returned error: %v", err)
	}

	Set("log_level", "error")
	if got := GetString("log_level"); got != "error" {
		t.Errorf("GetString(log_level) = %q, want error after Set", got)
	}
}

func TestExpandPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"tilde alone", "~", home},
		{"tilde slash", "~/logs/app.log", filepath.Join(home, "logs", "app.log")},
		{"other user untouched", "~bob/file", "~bob/file"},
		{"absolute untouched", "/var/log/app.log", "/var/log/app.log"},
		{"relative untouched", "logs/app.log", "logs/app.log"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExpandPath(tt.input); got != tt.want {
				t.Errorf("ExpandPath(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestGetPath_ExpandsTilde(t *testing.T) {
	home := isolate(t)
	if err := Init(); err != nil {
		t.Fatalf("Init() returned error: %v", err)
	}

	want := filepath.Join(home, ".config", "cidemo", "cidemo.log")
	if got := GetPath("log_file"); got != want {
		t.Errorf("GetPath(log_file) = %q, want %q", got, want)
	}
}

func TestGetConfigPath_DefaultsWhenNoFileLoaded(t *testing.T) {
	home := isolate(t)

	want := filepath.Join(home, ".config", "cidemo", "config.yaml")
	if got := GetConfigPath(); got != want {
		t.Errorf("GetConfigPath() = %q, want %q", got, want)
	}
}

func TestGetAllSettings_IncludesDefaults(t *testing.T) {
	isolate(t)
	if err := Init(); err != nil {
		t.Fatalf("Init() returned error: %v", err)
	}

	settings := GetAllSettings()
	if _, ok := settings["log_level"]; !ok {
		t.Error("GetAllSettings() missing log_level")
	}
	if _, ok := settings["log_rotation"]; !ok {
		t.Error("GetAllSettings() missing log_rotation")
	}
}
