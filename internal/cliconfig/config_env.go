package cliconfig

import "os"

// ApplyEnvConfig applies configuration from environment variables (SFTYPE_*).
// It respects flags that have been explicitly set (changed map).
// List values are comma separated.
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("doc", os.Getenv("SFTYPE_DOC"), &cfg.Document)
	s.setString("out", os.Getenv("SFTYPE_OUT"), &cfg.Output)
	s.setString("format", os.Getenv("SFTYPE_FORMAT"), &cfg.Format)
	s.setString("log-level", os.Getenv("SFTYPE_LOG_LEVEL"), &cfg.LogLevel)

	s.setListFromString("select", os.Getenv("SFTYPE_SELECT"), &cfg.Selection)
	s.setListFromString("font-dir", os.Getenv("SFTYPE_FONT_DIRS"), &cfg.FontDirs)
	s.setListFromString("font", os.Getenv("SFTYPE_FONTS"), &cfg.Fonts)

	if err := s.setIntFromString("concurrency", os.Getenv("SFTYPE_CONCURRENCY"), &cfg.Concurrency); err != nil {
		return err
	}
	if err := s.setDuration("debounce", os.Getenv("SFTYPE_DEBOUNCE"), &cfg.Debounce); err != nil {
		return err
	}

	s.setBoolFromString("no-system-fonts", os.Getenv("SFTYPE_NO_SYSTEM_FONTS"), &cfg.NoSystemFonts)
	s.setBoolFromString("dry-run", os.Getenv("SFTYPE_DRY_RUN"), &cfg.DryRun)

	return nil
}
