package logging

import (
	"log/slog"
	"strings"
)

// DefaultLevel is the log level used when not configured.
const DefaultLevel = slog.LevelInfo

var levels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

// ParseLevel converts a case-insensitive level name (debug, info, warn, error)
// to a slog.Level. Unknown names return (DefaultLevel, false).
func ParseLevel(s string) (level slog.Level, ok bool) {
	level, ok = levels[strings.ToLower(s)]
	if !ok {
		return DefaultLevel, false
	}
	return level, true
}

// ParseLevelOrDefault is ParseLevel without the ok result.
func ParseLevelOrDefault(s string) slog.Level {
	level, _ := ParseLevel(s)
	return level
}
