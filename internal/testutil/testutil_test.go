package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/leefowlercu/ci-demo/internal/config"
)

func TestNewTestEnv_IsolatesConfig(t *testing.T) {
	env := NewTestEnv(t)

	if got := os.Getenv("HOME"); got != env.Home {
		t.Errorf("HOME = %q, want %q", got, env.Home)
	}
	if got := config.DefaultConfigPath(); got != env.ConfigPath() {
		t.Errorf("DefaultConfigPath() = %q, want %q", got, env.ConfigPath())
	}

	env.Init()
	if path := config.ConfigFilePath(); path != "" {
		t.Errorf("ConfigFilePath() = %q, want empty in a fresh environment", path)
	}
	if got := config.GetPath("log_file"); got != env.LogPath() {
		t.Errorf("GetPath(log_file) = %q, want %q", got, env.LogPath())
	}
}

func TestTestEnv_WriteConfig(t *testing.T) {
	env := NewTestEnv(t)

	path := env.WriteConfig("log_level: debug\n")
	if path != filepath.Join(env.Home, ".config", "cidemo", "config.yaml") {
		t.Errorf("WriteConfig() path = %q", path)
	}

	env.Init()
	if got := config.ConfigFilePath(); got != path {
		t.Errorf("ConfigFilePath() = %q, want %q", got, path)
	}
	if got := config.GetString("log_level"); got != "debug" {
		t.Errorf("GetString(log_level) = %q, want debug", got)
	}
}
