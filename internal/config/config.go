package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config is the user configuration for joblog, stored in
// ~/.config/joblog/config.toml.
type Config struct {
	// Dir is the name of the storage folder searched for upwards from the
	// working directory.
	Dir string `toml:"dir"`
	// SearchDepth is how many directories the search visits.
	SearchDepth int `toml:"search-depth"`
	// Color is one of "auto", "always" or "never".
	Color string `toml:"color"`
	// Wrap is the width notes are wrapped at in list output. 0 disables wrapping.
	Wrap int `toml:"wrap"`
}

const (
	DefaultDir         = ".joblog"
	DefaultSearchDepth = 10
	DefaultColor       = "auto"
	DefaultWrap        = 80

	// EnvPath overrides the location of the config file.
	EnvPath = "JOBLOG_CONFIG"
)

// defaultConfig returns a Config pre-filled with sensible defaults.
func defaultConfig() Config {
	return Config{
		Dir:         DefaultDir,
		SearchDepth: DefaultSearchDepth,
		Color:       DefaultColor,
		Wrap:        DefaultWrap,
	}
}

// configTemplate is the annotated config written on first run.
const configTemplate = `# joblog configuration
#
# All settings are optional; the values below are the built-in defaults.

# Name of the storage folder created by 'joblog init' and searched for in the
# working directory and its parents.
dir = ".joblog"

# Number of directories searched, the working directory included.
search-depth = 10

# Colored output: "auto" (only on a terminal), "always" or "never".
color = "auto"

# Width at which notes are wrapped in 'joblog list'. 0 disables wrapping.
wrap = 80
`

// FilePath returns the path of the config file.
func FilePath() (string, error) {
	if p := os.Getenv(EnvPath); p != "" {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".config", "joblog", "config.toml"), nil
}

// Load reads the config file, creating it with annotated defaults on first run.
func Load() (Config, error) {
	path, err := FilePath()
	if err != nil {
		return defaultConfig(), err
	}
	return LoadFile(path)
}

// LoadFile reads the config at path, creating it with annotated defaults if it
// does not exist.
func LoadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		// First run: write the annotated template so users can discover options.
		if writeErr := writeDefault(path); writeErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not create config file %s: %v\n", path, writeErr)
		}
		return defaultConfig(), nil
	}
	if err != nil {
		return defaultConfig(), fmt.Errorf("reading config file %s: %w", path, err)
	}

	var cfg Config
	meta, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return defaultConfig(), fmt.Errorf("parsing config file %s: %w\nTip: delete the file to regenerate defaults", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return defaultConfig(), fmt.Errorf("parsing config file %s: unknown key %q", path, undecoded[0].String())
	}

	// Fill zero-value fields with built-in defaults so callers always get
	// a usable Config even if the user only partially fills in the file.
	if cfg.Dir == "" {
		cfg.Dir = DefaultDir
	}
	if !meta.IsDefined("search-depth") || cfg.SearchDepth <= 0 {
		cfg.SearchDepth = DefaultSearchDepth
	}
	switch cfg.Color {
	case "":
		cfg.Color = DefaultColor
	case "auto", "always", "never":
	default:
		return defaultConfig(), fmt.Errorf("parsing config file %s: color must be auto, always or never, got %q", path, cfg.Color)
	}
	if !meta.IsDefined("wrap") {
		cfg.Wrap = DefaultWrap
	}
	if cfg.Wrap < 0 {
		cfg.Wrap = 0
	}

	return cfg, nil
}

// writeDefault creates the config directory and writes the annotated default
// config template.
func writeDefault(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(configTemplate), 0o600); err != nil {
		return fmt.Errorf("writing default config: %w", err)
	}
	return nil
}
