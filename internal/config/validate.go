package config

import (
	"errors"
	"fmt"
	"strings"
)

// ValidationError represents a config validation failure.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors represents multiple validation failures.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	if len(e) == 1 {
		return e[0].Error()
	}

	var b strings.Builder
	b.WriteString("config validation failed:\n")
	for _, err := range e {
		b.WriteString("  - ")
		b.WriteString(err.Error())
		b.WriteString("\n")
	}
	return b.String()
}

// validLogLevels lists recognized log levels.
var validLogLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// Validate checks the configuration for errors.
// Returns ValidationErrors if validation fails.
func Validate(cfg *Config) error {
	var errs ValidationErrors

	if !validLogLevels[strings.ToLower(cfg.LogLevel)] {
		errs = append(errs, ValidationError{
			Field:   "log_level",
			Message: fmt.Sprintf("must be one of: debug, info, warn, error; got %q", cfg.LogLevel),
		})
	}

	if cfg.LogFile == "" {
		errs = append(errs, ValidationError{
			Field:   "log_file",
			Message: "must not be empty",
		})
	}

	if cfg.LogRotation.MaxSizeMB < 0 {
		errs = append(errs, ValidationError{
			Field:   "log_rotation.max_size_mb",
			Message: fmt.Sprintf("must be non-negative, got %d", cfg.LogRotation.MaxSizeMB),
		})
	}

	if cfg.LogRotation.MaxBackups < 0 {
		errs = append(errs, ValidationError{
			Field:   "log_rotation.max_backups",
			Message: fmt.Sprintf("must be non-negative, got %d", cfg.LogRotation.MaxBackups),
		})
	}

	if cfg.LogRotation.MaxAgeDays < 0 {
		errs = append(errs, ValidationError{
			Field:   "log_rotation.max_age_days",
			Message: fmt.Sprintf("must be non-negative, got %d", cfg.LogRotation.MaxAgeDays),
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// IsValidationError reports whether err is (or wraps) a config validation failure.
func IsValidationError(err error) bool {
	var single ValidationError
	var multi ValidationErrors
	return errors.As(err, &single) || errors.As(err, &multi)
}
