// internal/config/flags.go
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"

	"github.com/bethropolis/rematch/internal/logger"
	"github.com/bethropolis/rematch/internal/pattern"
	"github.com/bethropolis/rematch/internal/render"
)

// Flags holds values parsed from command-line flags. Only flags the user
// actually set override the configuration.
type Flags struct {
	ConfigFilePath string
	LogLevel       string
	LogFilePath    string
	EnableTags     string
	DisableTags    string
	EnablePkgs     string
	DisablePkgs    string
	EnableFiles    string
	DisableFiles   string
	DebugLog       bool

	IgnoreCase bool
	Multiline  bool
	DotAll     bool
	Engine     string
	MaxMatches int
	Format     string
	Theme      string

	fs *pflag.FlagSet
}

// DefineFlags registers the flags on fs.
func (f *Flags) DefineFlags(fs *pflag.FlagSet) {
	f.fs = fs
	fs.StringVar(&f.ConfigFilePath, "config", "", fmt.Sprintf("Path to TOML configuration file (default ~/.config/%s/%s)", AppName, DefaultConfigFileName))
	fs.StringVar(&f.LogLevel, "loglevel", "", "Log level (debug, info, warn, error) - Overrides config file")
	fs.StringVar(&f.LogFilePath, "logfile", "", "Path to write log file (use '-' for stderr) - Overrides config file")
	fs.StringVar(&f.EnableTags, "log-tags", "", "Comma-separated list of tags to enable - Overrides config file")
	fs.StringVar(&f.DisableTags, "log-disable-tags", "", "Comma-separated list of tags to disable - Overrides config file")
	fs.StringVar(&f.EnablePkgs, "log-packages", "", "Comma-separated list of packages to enable - Overrides config file")
	fs.StringVar(&f.DisablePkgs, "log-disable-packages", "", "Comma-separated list of packages to disable - Overrides config file")
	fs.StringVar(&f.EnableFiles, "log-files", "", "Comma-separated list of files to enable - Overrides config file")
	fs.StringVar(&f.DisableFiles, "log-disable-files", "", "Comma-separated list of files to disable - Overrides config file")
	fs.BoolVar(&f.DebugLog, "debug-log", false, "Trace the logger's filtering decisions on stderr")

	fs.BoolVarP(&f.IgnoreCase, "ignore-case", "i", false, "Case-insensitive matching")
	fs.BoolVarP(&f.Multiline, "multiline", "m", false, "^ and $ match at line boundaries")
	fs.BoolVarP(&f.DotAll, "dot-all", "s", false, ". matches newlines")
	fs.StringVar(&f.Engine, "engine", "", "Regex engine (re2, coregex, backtrack)")
	fs.IntVar(&f.MaxMatches, "max-matches", 0, "Maximum number of matches highlighted")
	fs.StringVar(&f.Format, "format", "", fmt.Sprintf("Output format (%s)", strings.Join(render.Formats(), ", ")))
	fs.StringVar(&f.Theme, "theme", "", "Theme name for terminal output")
}

// changed reports whether the named flag was set on the command line.
func (f *Flags) changed(name string) bool {
	if f.fs == nil {
		return false
	}
	fl := f.fs.Lookup(name)
	return fl != nil && fl.Changed
}

// Check rejects values of set flags that the configuration cannot use.
func (f *Flags) Check() error {
	var errs []error
	if f.changed("engine") {
		if _, err := pattern.ParseEngine(f.Engine); err != nil {
			errs = append(errs, fmt.Errorf("--engine: %w", err))
		}
	}
	if f.changed("format") {
		if _, err := render.ForFormat(f.Format, nil, render.DefaultPalette); err != nil {
			errs = append(errs, fmt.Errorf("--format: %w", err))
		}
	}
	if f.changed("loglevel") {
		if _, ok := logger.ParseLevel(f.LogLevel); !ok {
			errs = append(errs, fmt.Errorf("--loglevel: unknown log level %q", f.LogLevel))
		}
	}
	if f.changed("max-matches") && f.MaxMatches <= 0 {
		errs = append(errs, fmt.Errorf("--max-matches: must be positive, got %d", f.MaxMatches))
	}
	return errors.Join(errs...)
}

// ApplyOverrides updates cfg with the values of flags that were set.
func (f *Flags) ApplyOverrides(cfg *Config) {
	if f.fs == nil {
		return
	}
	// Changed lives on the flag itself, so this also sees flags parsed
	// through a command's merged flag set.
	f.fs.VisitAll(func(fl *pflag.Flag) {
		if !fl.Changed {
			return
		}
		switch fl.Name {
		case "loglevel":
			cfg.Logger.LogLevel = f.LogLevel
		case "logfile":
			cfg.Logger.LogFilePath = f.LogFilePath
		case "log-tags":
			cfg.Logger.EnabledTags = splitCommaList(f.EnableTags)
		case "log-disable-tags":
			cfg.Logger.DisabledTags = splitCommaList(f.DisableTags)
		case "log-packages":
			cfg.Logger.EnabledPackages = splitCommaList(f.EnablePkgs)
		case "log-disable-packages":
			cfg.Logger.DisabledPackages = splitCommaList(f.DisablePkgs)
		case "log-files":
			cfg.Logger.EnabledFiles = splitCommaList(f.EnableFiles)
		case "log-disable-files":
			cfg.Logger.DisabledFiles = splitCommaList(f.DisableFiles)
		case "ignore-case":
			cfg.Match.IgnoreCase = f.IgnoreCase
		case "multiline":
			cfg.Match.Multiline = f.Multiline
		case "dot-all":
			cfg.Match.DotAll = f.DotAll
		case "engine":
			cfg.Match.Engine = f.Engine
		case "max-matches":
			cfg.Match.MaxMatches = f.MaxMatches
		case "format":
			cfg.Render.Format = f.Format
		case "theme":
			cfg.Render.Theme = f.Theme
		}
	})
}

func splitCommaList(list string) []string {
	if list == "" {
		return nil
	}
	items := strings.Split(list, ",")
	result := make([]string, 0, len(items))
	for _, item := range items {
		trimmed := strings.TrimSpace(item)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
