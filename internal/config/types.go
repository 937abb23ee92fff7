package config

// Config is the root configuration structure for the application.
type Config struct {
	LogLevel    string            `yaml:"log_level" toml:"log_level" mapstructure:"log_level"`
	LogFile     string            `yaml:"log_file" toml:"log_file" mapstructure:"log_file"`
	LogRotation LogRotationConfig `yaml:"log_rotation" toml:"log_rotation" mapstructure:"log_rotation"`
	Output      OutputConfig      `yaml:"output" toml:"output" mapstructure:"output"`
	MetricsFile string            `yaml:"metrics_file" toml:"metrics_file" mapstructure:"metrics_file"`
}

// LogRotationConfig controls rotation of the JSON log file.
// Zero MaxSizeMB uses the 100 MB rotation default; zero MaxBackups keeps every
// backup; zero MaxAgeDays disables age-based cleanup.
type LogRotationConfig struct {
	MaxSizeMB  int  `yaml:"max_size_mb" toml:"max_size_mb" mapstructure:"max_size_mb"`
	MaxBackups int  `yaml:"max_backups" toml:"max_backups" mapstructure:"max_backups"`
	MaxAgeDays int  `yaml:"max_age_days" toml:"max_age_days" mapstructure:"max_age_days"`
	Compress   bool `yaml:"compress" toml:"compress" mapstructure:"compress"`
}

// OutputConfig holds terminal output settings.
type OutputConfig struct {
	Color bool `yaml:"color" toml:"color" mapstructure:"color"`
}
