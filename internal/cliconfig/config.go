package cliconfig

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/bft-labs/sftype/internal/adapters/docfile"
	"github.com/bft-labs/sftype/internal/domain"
)

// DefaultDebounce is the quiet period watch mode waits for after a change.
const DefaultDebounce = 500 * time.Millisecond

// Config holds CLI configuration for sftype.
type Config struct {
	Document string
	Output   string
	Format   string

	// Selection overrides the selection stored in the document when set.
	Selection []string

	FontDirs      []string
	Fonts         []string // "Family:Style"
	NoSystemFonts bool

	Concurrency int
	DryRun      bool
	LogLevel    string

	Debounce time.Duration
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		LogLevel: zerolog.InfoLevel.String(),
		Debounce: DefaultDebounce,
	}
}

// Validate checks the configuration for a single run.
func (c *Config) Validate() error {
	if c.Document == "" {
		return fmt.Errorf("%w: doc is required", domain.ErrInvalidConfig)
	}
	if _, err := docfile.FormatFromPath(c.Document); err != nil {
		return fmt.Errorf("%w: doc: %w", domain.ErrInvalidConfig, err)
	}

	if c.Format != "" {
		if _, err := docfile.ParseFormat(c.Format); err != nil {
			return fmt.Errorf("%w: format: %w", domain.ErrInvalidConfig, err)
		}
	} else if c.Output != "" {
		if _, err := docfile.FormatFromPath(c.Output); err != nil {
			return fmt.Errorf("%w: out: %w (set --format)", domain.ErrInvalidConfig, err)
		}
	}

	if c.Concurrency < 0 {
		return fmt.Errorf("%w: concurrency must not be negative", domain.ErrInvalidConfig)
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: log-level: %w", domain.ErrInvalidConfig, err)
	}
	if _, err := ParseFontSpecs(c.Fonts); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrInvalidConfig, err)
	}
	return nil
}

// ValidateWatch checks the configuration for watch mode, which must not write
// to the document it watches.
func (c *Config) ValidateWatch() error {
	if err := c.Validate(); err != nil {
		return err
	}
	if c.Debounce <= 0 {
		return fmt.Errorf("%w: debounce must be positive", domain.ErrInvalidConfig)
	}
	if c.DryRun {
		return nil
	}
	if c.Output == "" {
		return fmt.Errorf("%w: watch requires --out", domain.ErrInvalidConfig)
	}
	if samePath(c.Output, c.Document) {
		return fmt.Errorf("%w: --out must differ from --doc in watch mode", domain.ErrInvalidConfig)
	}
	return nil
}

// OutputPath returns where the result is written.
func (c *Config) OutputPath() string {
	if c.Output != "" {
		return c.Output
	}
	return c.Document
}

// OutputFormat returns the format of the output document.
func (c *Config) OutputFormat() (docfile.Format, error) {
	if c.Format != "" {
		return docfile.ParseFormat(c.Format)
	}
	return docfile.FormatFromPath(c.OutputPath())
}

func samePath(a, b string) bool {
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	if errA != nil || errB != nil {
		return filepath.Clean(a) == filepath.Clean(b)
	}
	return absA == absB
}

// ParseFontSpecs parses "Family:Style" entries. The style may be omitted and
// defaults to Regular; the last colon separates family and style.
func ParseFontSpecs(entries []string) ([]domain.FontSpec, error) {
	specs := make([]domain.FontSpec, 0, len(entries))
	for _, e := range entries {
		family, style := strings.TrimSpace(e), domain.DefaultStyle
		if i := strings.LastIndex(family, ":"); i >= 0 {
			family, style = strings.TrimSpace(family[:i]), strings.TrimSpace(family[i+1:])
		}
		if family == "" || style == "" {
			return nil, fmt.Errorf("font %q: want Family:Style", e)
		}
		specs = append(specs, domain.FontSpec{Family: family, Style: style})
	}
	return specs, nil
}

// configSetter helps apply configuration values while respecting flag precedence.
// It only applies values if the corresponding flag hasn't been explicitly set.
type configSetter struct {
	changed map[string]bool
}

func newConfigSetter(changed map[string]bool) *configSetter {
	return &configSetter{changed: changed}
}

// setString sets a string value if not empty and flag not changed.
func (s *configSetter) setString(flag, value string, dst *string) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value
}

// setStrings sets a list if not empty and flag not changed.
func (s *configSetter) setStrings(flag string, value []string, dst *[]string) {
	if len(value) == 0 || s.changed[flag] {
		return
	}
	*dst = append([]string(nil), value...)
}

// setInt sets an int value if positive and flag not changed.
func (s *configSetter) setInt(flag string, value int, dst *int) {
	if value <= 0 || s.changed[flag] {
		return
	}
	*dst = value
}

// setDuration parses and sets a duration from string if valid and flag not changed.
func (s *configSetter) setDuration(flag, value string, dst *time.Duration) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	*dst = d
	return nil
}

// setBool sets a bool value from a pointer if not nil and flag not changed.
func (s *configSetter) setBool(flag string, value *bool, dst *bool) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

// setIntFromString parses a string to int and sets the destination if valid.
func (s *configSetter) setIntFromString(flag, value string, dst *int) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	i, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	if i <= 0 {
		return nil
	}
	*dst = i
	return nil
}

// setListFromString splits a comma separated value.
func (s *configSetter) setListFromString(flag, value string, dst *[]string) {
	if value == "" || s.changed[flag] {
		return
	}
	var out []string
	for _, v := range strings.Split(value, ",") {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	*dst = out
}

// setBoolFromString parses a string to bool and sets the destination.
// Accepts "true", "1" as true, anything else as false.
func (s *configSetter) setBoolFromString(flag, value string, dst *bool) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value == "true" || value == "1"
}
