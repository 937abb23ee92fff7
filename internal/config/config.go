package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable override.
const EnvPrefix = "CIDEMO"

// configFilePath stores the path to the loaded config file
var configFilePath string

// Init initializes the configuration subsystem.
// It searches for configuration files in priority order:
//  1. Directory specified by CIDEMO_CONFIG_DIR environment variable
//  2. ~/.config/cidemo/
//  3. Current working directory (.)
//
// If no config file is found, defaults are used.
// If a config file exists but is invalid or unreadable, Init returns an error.
func Init() error {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	setViperDefaults(viper.GetViper())
	addConfigPaths(viper.GetViper())

	err := viper.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			configFilePath = ""
			return nil
		}

		return fmt.Errorf("failed to read config; %w", err)
	}

	configFilePath = viper.ConfigFileUsed()
	slog.Debug("config initialized", "file", configFilePath)

	return nil
}

// addConfigPaths registers the search directories in priority order.
func addConfigPaths(v *viper.Viper) {
	if envPath := os.Getenv(EnvPrefix + "_CONFIG_DIR"); envPath != "" {
		v.AddConfigPath(envPath)
	}

	if dir := ConfigDir(); dir != "" {
		v.AddConfigPath(dir)
	}

	v.AddConfigPath(".")
}

// ConfigFilePath returns the path to the loaded config file,
// or empty string if using defaults only.
func ConfigFilePath() string {
	return configFilePath
}

// Reset clears the configuration state for testing purposes.
func Reset() {
	viper.Reset()
	configFilePath = ""
}

// GetString returns the string value for the given key.
func GetString(key string) string {
	return viper.GetString(key)
}

// GetInt returns the integer value for the given key.
func GetInt(key string) int {
	return viper.GetInt(key)
}

// GetBool returns the boolean value for the given key.
func GetBool(key string) bool {
	return viper.GetBool(key)
}

// Set sets a value for the given key, overriding defaults and config file values.
// Primarily used for testing.
func Set(key string, value any) {
	viper.Set(key, value)
}

// GetPath returns the string value for the given key with ~ expanded to $HOME.
func GetPath(key string) string {
	return ExpandPath(viper.GetString(key))
}

// Get returns the typed view of the global configuration.
// Values that fail to decode fall back to defaults.
func Get() *Config {
	cfg := NewDefaultConfig()
	if err := viper.Unmarshal(&cfg); err != nil {
		slog.Warn("failed to decode config; using defaults", "error", err)
		cfg = NewDefaultConfig()
	}
	return &cfg
}

// ExpandPath expands a leading ~ in path to the user's home directory.
// Only "~" alone or "~/..." is expanded; "~user" is returned unchanged.
func ExpandPath(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}

	if len(path) > 1 && path[1] != '/' {
		return path
	}

	home := resolveHomeDir()
	if home == "" {
		return path
	}

	if len(path) == 1 {
		return home
	}

	return filepath.Join(home, path[2:])
}

// GetConfigPath returns the path where the config file should be located.
// If a config file is loaded, returns its path. Otherwise returns the default path.
func GetConfigPath() string {
	if configFilePath != "" {
		return configFilePath
	}
	return DefaultConfigPath()
}

// GetAllSettings returns all configuration settings as a map.
func GetAllSettings() map[string]any {
	return viper.AllSettings()
}
