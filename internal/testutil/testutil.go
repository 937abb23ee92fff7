// Package testutil provides isolated config environments for command tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/leefowlercu/ci-demo/internal/config"
)

// TestEnv is a throwaway HOME with config discovery pointed at it.
type TestEnv struct {
	t         *testing.T
	Home      string
	ConfigDir string
}

// NewTestEnv redirects HOME to a temp directory, clears CIDEMO_CONFIG_DIR,
// and moves the working directory so no real config file can be found.
// Global config state is reset now and again at cleanup.
func NewTestEnv(t *testing.T) *TestEnv {
	t.Helper()

	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv(config.EnvPrefix+"_CONFIG_DIR", "")

	origDir, err := os.Getwd()
	if err != nil {
		t.Fatalf("failed to get working dir: %v", err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatalf("failed to change to temp dir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(origDir) })

	config.Reset()
	t.Cleanup(config.Reset)

	return &TestEnv{
		t:         t,
		Home:      home,
		ConfigDir: filepath.Join(home, ".config", "cidemo"),
	}
}

// ConfigPath returns the default config file path inside the environment.
func (e *TestEnv) ConfigPath() string {
	return filepath.Join(e.ConfigDir, "config.yaml")
}

// LogPath returns the default log file path inside the environment.
func (e *TestEnv) LogPath() string {
	return filepath.Join(e.ConfigDir, "cidemo.log")
}

// WriteConfig writes content to the default config path.
func (e *TestEnv) WriteConfig(content string) string {
	e.t.Helper()

	if err := os.MkdirAll(e.ConfigDir, 0700); err != nil {
		e.t.Fatalf("failed to create config dir: %v", err)
	}
	path := e.ConfigPath()
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		e.t.Fatalf("failed to write config file %s: %v", path, err)
	}
	return path
}

// Init loads the global configuration, failing the test on error.
func (e *TestEnv) Init() {
	e.t.Helper()

	if err := config.Init(); err != nil {
		e.t.Fatalf("failed to initialize test config: %v", err)
	}
}
