// Package logger provides configurable logging capabilities
package logger

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
)

// debugFilter traces every filtering decision to stderr. Set with SetFilterDebug.
var debugFilter bool

// SetFilterDebug toggles tracing of the filtering handler.
func SetFilterDebug(enabled bool) {
	debugFilter = enabled
}

// Config holds all settings for the logger.
type Config struct {
	// LogLevel specifies the minimum level to log (e.g., "debug", "info", "warn", "error").
	LogLevel string `toml:"log_level"`

	// LogFilePath is the path to the output log file. Empty discards output, "-" is stderr.
	LogFilePath string `toml:"log_file"`

	// --- Filtering Options ---

	// EnabledTags only logs messages with these tags (if non-empty).
	EnabledTags []string `toml:"enabled_tags"`
	// DisabledTags prevents logging messages with these tags. Overrides EnabledTags.
	DisabledTags []string `toml:"disabled_tags"`

	// EnabledPackages only logs messages originating from these packages (if non-empty).
	// Package name is the immediate directory name (e.g., "highlight", "pattern", "app").
	EnabledPackages []string `toml:"enabled_packages"`
	// DisabledPackages prevents logging from these packages. Overrides EnabledPackages.
	DisabledPackages []string `toml:"disabled_packages"`

	// EnabledFiles only logs messages originating from these filenames (if non-empty).
	// Filename is the base name (e.g., "compile.go", "segmenter.go").
	EnabledFiles []string `toml:"enabled_files"`
	// DisabledFiles prevents logging from these filenames. Overrides EnabledFiles.
	DisabledFiles []string `toml:"disabled_files"`

	// --- Internal processed fields ---
	level               slog.Level
	enabledTagsSet      map[string]struct{}
	disabledTagsSet     map[string]struct{}
	enabledPackagesSet  map[string]struct{}
	disabledPackagesSet map[string]struct{}
	enabledFilesSet     map[string]struct{}
	disabledFilesSet    map[string]struct{}
}

// NewConfig creates a new Config with default values
func NewConfig() Config {
	return Config{
		LogLevel:    "info",
		LogFilePath: "",
	}
}

// ParseLevel maps a level name to a slog.Level. Unknown names map to info.
func ParseLevel(name string) (slog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug, true
	case "info", "":
		return slog.LevelInfo, true
	case "warn", "warning":
		return slog.LevelWarn, true
	case "error", "err":
		return slog.LevelError, true
	}
	return slog.LevelInfo, false
}

// process resolves the level and turns the filter lists into sets.
func (c *Config) process() {
	c.level, _ = ParseLevel(c.LogLevel)

	c.enabledTagsSet, c.disabledTagsSet = sliceToSet(c.EnabledTags), sliceToSet(c.DisabledTags)
	c.enabledPackagesSet, c.disabledPackagesSet = sliceToSet(c.EnabledPackages), sliceToSet(c.DisabledPackages)
	c.enabledFilesSet, c.disabledFilesSet = sliceToSet(c.EnabledFiles), sliceToSet(c.DisabledFiles)

	if debugFilter {
		fmt.Fprintf(os.Stderr, "[logger] level=%s tags=+%v/-%v packages=+%v/-%v files=+%v/-%v\n",
			c.level, c.EnabledTags, c.DisabledTags, c.EnabledPackages, c.DisabledPackages, c.EnabledFiles, c.DisabledFiles)
	}
}

// sliceToSet lowercases items into a set. Empty input gives a nil set.
func sliceToSet(items []string) map[string]struct{} {
	var set map[string]struct{}
	for _, item := range items {
		if item == "" {
			continue
		}
		if set == nil {
			set = make(map[string]struct{}, len(items))
		}
		set[strings.ToLower(item)] = struct{}{}
	}
	return set
}
