package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// keyDocs describes each setting in the header of a generated config file.
var keyDocs = []struct {
	key string
	doc string
}{
	{"log_level", "debug, info, warn or error"},
	{"log_file", "JSON log file; ~ expands to the home directory"},
	{"log_rotation.max_size_mb", "rotate after this many megabytes (0 = 100)"},
	{"log_rotation.max_backups", "rotated files to keep (0 = all)"},
	{"log_rotation.max_age_days", "days to keep rotated files (0 = forever)"},
	{"log_rotation.compress", "gzip rotated files"},
	{"output.color", "style results when stdout is a terminal"},
	{"metrics_file", "Prometheus textfile written after each command; empty disables"},
}

// header returns the comment block written above the YAML body.
func header(now time.Time) string {
	var b strings.Builder
	b.WriteString("# cidemo configuration\n")
	fmt.Fprintf(&b, "# Generated: %s\n#\n", now.Format(time.RFC3339))
	fmt.Fprintf(&b, "# Every key can be overridden with %s_<KEY>, dots replaced by underscores.\n#\n", EnvPrefix)
	for _, k := range keyDocs {
		fmt.Fprintf(&b, "#   %-26s %s\n", k.key, k.doc)
	}
	b.WriteString("\n")
	return b.String()
}

// Write stores cfg as YAML at path, replacing any existing file atomically.
// The directory is created 0700 and the file is 0600.
func Write(cfg *Config, path string) error {
	path = ExpandPath(path)

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory %s; %w", dir, err)
	}

	body, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config; %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".config-*.yaml")
	if err != nil {
		return fmt.Errorf("failed to create temporary config file; %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.WriteString(header(time.Now()) + string(body)); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to write config file %s; %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write config file %s; %w", path, err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to replace config file %s; %w", path, err)
	}

	return nil
}

// WriteDefault writes cfg to DefaultConfigPath.
func WriteDefault(cfg *Config) error {
	return Write(cfg, DefaultConfigPath())
}
