package config

import "time"

// Base application details
const AppName = "rematch"
const ConfigDirName = "rematch"
const ThemesDirName = "themes"
const DefaultConfigFileName = "config.toml"

// Matching
const DefaultMaxMatches = 100

// Output
const DefaultFormat = "ansi"

// Interactive mode
const MessageTimeout = 4 * time.Second
const HighlightDebounce = 65 * time.Millisecond
