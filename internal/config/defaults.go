package config

// Default configuration values.
const (
	DefaultLogLevel = "info"
	DefaultLogFile  = "~/.config/cidemo/cidemo.log"

	// Log rotation defaults.
	DefaultLogMaxSizeMB  = 10
	DefaultLogMaxBackups = 3
	DefaultLogMaxAgeDays = 28
	DefaultLogCompress   = false

	DefaultOutputColor = true

	// Metrics are written only when a file is configured.
	DefaultMetricsFile = ""
)

// NewDefaultConfig returns a Config populated with default values.
func NewDefaultConfig() Config {
	return Config{
		LogLevel: DefaultLogLevel,
		LogFile:  DefaultLogFile,
		LogRotation: LogRotationConfig{
			MaxSizeMB:  DefaultLogMaxSizeMB,
			MaxBackups: DefaultLogMaxBackups,
			MaxAgeDays: DefaultLogMaxAgeDays,
			Compress:   DefaultLogCompress,
		},
		Output: OutputConfig{
			Color: DefaultOutputColor,
		},
		MetricsFile: DefaultMetricsFile,
	}
}
