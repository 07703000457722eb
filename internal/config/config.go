// internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/bethropolis/rematch/internal/logger"
	"github.com/bethropolis/rematch/internal/pattern"
	"github.com/bethropolis/rematch/internal/render"
	"github.com/bethropolis/rematch/internal/theme"
)

// Config holds the application's combined configuration.
type Config struct {
	Logger logger.Config `toml:"logger"`
	Match  MatchConfig   `toml:"match"`
	Render RenderConfig  `toml:"render"`
	UI     UIConfig      `toml:"ui"`

	// Warnings collects problems found while loading, for logging once the
	// logger is up.
	Warnings []string `toml:"-"`
}

// MatchConfig holds the default matching behavior.
type MatchConfig struct {
	IgnoreCase         bool   `toml:"ignore_case"`
	Multiline          bool   `toml:"multiline"`
	DotAll             bool   `toml:"dot_all"`
	Engine             string `toml:"engine"`
	MaxMatches         int    `toml:"max_matches"`
	BacktrackTimeoutMS int    `toml:"backtrack_timeout_ms"`
}

// RenderConfig holds output settings.
type RenderConfig struct {
	Format      string   `toml:"format"`
	MatchColors []string `toml:"match_colors"` // HTML background colors for alternating matches
	Theme       string   `toml:"theme"`
	ThemesDir   string   `toml:"themes_dir"` // Empty means <config dir>/rematch/themes
}

// UIConfig holds interactive mode settings.
type UIConfig struct {
	MessageTimeoutMS int `toml:"message_timeout_ms"`
	DebounceMS       int `toml:"debounce_ms"`
}

// NewDefaultConfig creates a Config struct with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Logger: logger.NewConfig(),
		Match: MatchConfig{
			Engine:             string(pattern.DefaultEngine),
			MaxMatches:         DefaultMaxMatches,
			BacktrackTimeoutMS: int(pattern.DefaultBacktrackTimeout / time.Millisecond),
		},
		Render: RenderConfig{
			Format:      DefaultFormat,
			MatchColors: []string{render.DefaultPalette[0], render.DefaultPalette[1]},
			Theme:       theme.DefaultThemeName,
		},
		UI: UIConfig{
			MessageTimeoutMS: int(MessageTimeout / time.Millisecond),
			DebounceMS:       int(HighlightDebounce / time.Millisecond),
		},
	}
}

// DefaultConfigPath returns <user config dir>/rematch/config.toml, or "" when
// the config dir is unknown.
func DefaultConfigPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(configDir, ConfigDirName, DefaultConfigFileName)
}

// loadFromFile decodes filePath on top of cfg. A missing file is not an error.
func loadFromFile(cfg *Config, filePath string) error {
	_, err := os.Stat(filePath)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("error checking config file '%s': %w", filePath, err)
	}

	metadata, err := toml.DecodeFile(filePath, cfg)
	if err != nil {
		return fmt.Errorf("failed to parse config file '%s': %w", filePath, err)
	}
	if undecoded := metadata.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		cfg.Warnings = append(cfg.Warnings, fmt.Sprintf("config file '%s': unrecognized keys: %s", filePath, strings.Join(keys, ", ")))
	}
	return nil
}

// validate checks config values and resets invalid ones to defaults.
func (c *Config) validate() {
	defaults := NewDefaultConfig()
	warn := func(format string, args ...interface{}) {
		c.Warnings = append(c.Warnings, fmt.Sprintf(format, args...))
	}

	if _, ok := logger.ParseLevel(c.Logger.LogLevel); !ok {
		warn("unknown log level %q, using %q", c.Logger.LogLevel, defaults.Logger.LogLevel)
		c.Logger.LogLevel = defaults.Logger.LogLevel
	}

	if engine, err := pattern.ParseEngine(c.Match.Engine); err != nil {
		warn("%v, using %q", err, defaults.Match.Engine)
		c.Match.Engine = defaults.Match.Engine
	} else {
		c.Match.Engine = string(engine)
	}
	if c.Match.MaxMatches <= 0 {
		c.Match.MaxMatches = defaults.Match.MaxMatches
	}
	if c.Match.BacktrackTimeoutMS <= 0 {
		c.Match.BacktrackTimeoutMS = defaults.Match.BacktrackTimeoutMS
	}

	if _, err := render.ForFormat(c.Render.Format, nil, render.DefaultPalette); err != nil {
		warn("%v, using %q", err, defaults.Render.Format)
		c.Render.Format = defaults.Render.Format
	}
	c.Render.Format = strings.ToLower(strings.TrimSpace(c.Render.Format))
	if c.Render.Format == "" {
		c.Render.Format = defaults.Render.Format
	}
	if len(c.Render.MatchColors) != 2 || strings.TrimSpace(c.Render.MatchColors[0]) == "" || strings.TrimSpace(c.Render.MatchColors[1]) == "" {
		if len(c.Render.MatchColors) != 0 {
			warn("match_colors needs exactly two colors, using %v", defaults.Render.MatchColors)
		}
		c.Render.MatchColors = defaults.Render.MatchColors
	}
	if c.Render.Theme == "" {
		c.Render.Theme = defaults.Render.Theme
	}

	if c.UI.MessageTimeoutMS <= 0 {
		c.UI.MessageTimeoutMS = defaults.UI.MessageTimeoutMS
	}
	if c.UI.DebounceMS <= 0 {
		c.UI.DebounceMS = defaults.UI.DebounceMS
	}
}

// LoadConfig loads defaults, then the TOML file, then flag overrides, and
// validates the result. An empty configFilePath uses DefaultConfigPath.
// Invalid values from the file are reset with a warning; invalid values given
// as flags are an error. On error a usable default-based config is returned.
func LoadConfig(configFilePath string, flags *Flags) (*Config, error) {
	cfg := NewDefaultConfig()

	effectivePath := configFilePath
	if effectivePath == "" {
		effectivePath = DefaultConfigPath()
	}

	var loadErr error
	if effectivePath != "" {
		if err := loadFromFile(cfg, effectivePath); err != nil {
			loadErr = err
			cfg = NewDefaultConfig()
		}
	}

	if flags != nil {
		if err := flags.Check(); err != nil {
			cfg = NewDefaultConfig()
			cfg.validate()
			return cfg, err
		}
		flags.ApplyOverrides(cfg)
	}

	cfg.validate()
	return cfg, loadErr
}

// Options returns the match options.
func (m MatchConfig) Options() pattern.MatchOptions {
	return pattern.MatchOptions{IgnoreCase: m.IgnoreCase, Multiline: m.Multiline, DotAll: m.DotAll}
}

// EngineValue returns the configured engine, falling back to the default.
func (m MatchConfig) EngineValue() pattern.Engine {
	engine, err := pattern.ParseEngine(m.Engine)
	if err != nil {
		return pattern.DefaultEngine
	}
	return engine
}

// BacktrackTimeout returns the per-search limit of the backtracking engine.
func (m MatchConfig) BacktrackTimeout() time.Duration {
	return time.Duration(m.BacktrackTimeoutMS) * time.Millisecond
}

// Palette returns the HTML match colors.
func (r RenderConfig) Palette() render.Palette {
	if len(r.MatchColors) != 2 {
		return render.DefaultPalette
	}
	return render.Palette{r.MatchColors[0], r.MatchColors[1]}
}

// ThemesDirectory returns the themes directory to load from.
func (r RenderConfig) ThemesDirectory() string {
	if r.ThemesDir != "" {
		return r.ThemesDir
	}
	configDir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(configDir, ConfigDirName, ThemesDirName)
}

// MessageTimeout returns how long status messages stay visible.
func (u UIConfig) MessageTimeout() time.Duration {
	return time.Duration(u.MessageTimeoutMS) * time.Millisecond
}

// Debounce returns the delay between an edit and re-highlighting.
func (u UIConfig) Debounce() time.Duration {
	return time.Duration(u.DebounceMS) * time.Millisecond
}
