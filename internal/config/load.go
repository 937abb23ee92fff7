package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Load reads and returns the typed configuration from the standard search
// paths. A missing config file yields the defaults; an invalid one is an error.
func Load() (*Config, error) {
	v := newViper()
	addConfigPaths(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return unmarshalConfig(v)
		}
		return nil, fmt.Errorf("failed to read config; %w", err)
	}

	return unmarshalConfig(v)
}

// LoadFromPath reads configuration from a specific file path.
func LoadFromPath(path string) (*Config, error) {
	v := newViper()
	v.SetConfigFile(ExpandPath(path))

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config from %s; %w", path, err)
	}

	return unmarshalConfig(v)
}

// LoadWithDefaults returns configuration using defaults only.
func LoadWithDefaults() *Config {
	cfg := NewDefaultConfig()
	return &cfg
}

func newViper() *viper.Viper {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setViperDefaults(v)
	return v
}

// unmarshalConfig converts viper config to typed Config struct.
func unmarshalConfig(v *viper.Viper) (*Config, error) {
	cfg := &Config{}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config; %w", err)
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// setViperDefaults registers all default configuration values with a viper instance.
func setViperDefaults(v *viper.Viper) {
	v.SetDefault("log_level", DefaultLogLevel)
	v.SetDefault("log_file", DefaultLogFile)

	v.SetDefault("log_rotation.max_size_mb", DefaultLogMaxSizeMB)
	v.SetDefault("log_rotation.max_backups", DefaultLogMaxBackups)
	v.SetDefault("log_rotation.max_age_days", DefaultLogMaxAgeDays)
	v.SetDefault("log_rotation.compress", DefaultLogCompress)

	v.SetDefault("output.color", DefaultOutputColor)

	v.SetDefault("metrics_file", DefaultMetricsFile)
}
