package cliconfig

import (
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

// FileConfig mirrors Config but uses strings for durations to make TOML friendly.
type FileConfig struct {
	Document      string   `toml:"doc"`
	Output        string   `toml:"out"`
	Format        string   `toml:"format"`
	Selection     []string `toml:"select"`
	FontDirs      []string `toml:"font_dirs"`
	Fonts         []string `toml:"fonts"`
	NoSystemFonts *bool    `toml:"no_system_fonts"`
	Concurrency   int      `toml:"concurrency"`
	DryRun        *bool    `toml:"dry_run"`
	LogLevel      string   `toml:"log_level"`
	Debounce      string   `toml:"debounce"`
}

// LoadFileConfig reads and parses a TOML config file from the given path.
func LoadFileConfig(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	if err := toml.Unmarshal(b, &fc); err != nil {
		return fc, err
	}
	return fc, nil
}

// DefaultConfigPath returns the default configuration file path.
// Returns ~/.sftype/config.toml if user home directory is accessible.
func DefaultConfigPath() string {
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, ".sftype", "config.toml")
	}
	return ""
}

// ApplyFileConfig applies configuration from a file to the Config struct.
// It respects flags that have been explicitly set (changed map).
func ApplyFileConfig(cfg *Config, fc FileConfig, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("doc", fc.Document, &cfg.Document)
	s.setString("out", fc.Output, &cfg.Output)
	s.setString("format", fc.Format, &cfg.Format)
	s.setString("log-level", fc.LogLevel, &cfg.LogLevel)

	s.setStrings("select", fc.Selection, &cfg.Selection)
	s.setStrings("font-dir", fc.FontDirs, &cfg.FontDirs)
	s.setStrings("font", fc.Fonts, &cfg.Fonts)

	s.setInt("concurrency", fc.Concurrency, &cfg.Concurrency)
	if err := s.setDuration("debounce", fc.Debounce, &cfg.Debounce); err != nil {
		return err
	}

	s.setBool("no-system-fonts", fc.NoSystemFonts, &cfg.NoSystemFonts)
	s.setBool("dry-run", fc.DryRun, &cfg.DryRun)

	return nil
}

// FileExists checks if a file exists at the given path.
func FileExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}
