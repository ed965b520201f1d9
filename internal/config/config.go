package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk editor configuration.
type Config struct {
	// Theme is a chroma style name used to colour tokens.
	Theme string `yaml:"theme" json:"theme,omitempty" jsonschema:"description=chroma style name for token colours,default=monokai"`
	// TabWidth is the number of spaces inserted for Tab.
	TabWidth int `yaml:"tab_width" json:"tab_width,omitempty" jsonschema:"minimum=1,maximum=16,default=4"`
	// LogFile receives debug logs; empty disables logging.
	LogFile string `yaml:"log_file,omitempty" json:"log_file,omitempty"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level,omitempty" json:"log_level,omitempty" jsonschema:"enum=debug,enum=info,enum=warn,enum=error"`
	// CreateMissing opens nonexistent paths as new files instead of failing.
	CreateMissing bool `yaml:"create_missing,omitempty" json:"create_missing,omitempty"`
	// Bindings overrides keys per command, e.g. save: [ctrl+s].
	Bindings map[string][]string `yaml:"bindings,omitempty" json:"bindings,omitempty"`
}

// LogLevels lists the accepted log_level values.
var LogLevels = []string{"debug", "info", "warn", "error"}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Theme:    "monokai",
		TabWidth: 4,
		LogLevel: "info",
	}
}

// Load reads the config at path. A missing file yields Default and no
// error. Zero fields in the file fall back to their defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return Default(), fmt.Errorf("parse %s: %w", path, err)
	}
	def := Default()
	if strings.TrimSpace(cfg.Theme) == "" {
		cfg.Theme = def.Theme
	}
	if cfg.TabWidth == 0 {
		cfg.TabWidth = def.TabWidth
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = def.LogLevel
	}
	if err := cfg.Validate(); err != nil {
		return Default(), fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks value ranges. Binding command names are checked by the
// keymap package when the bindings are applied.
func (c Config) Validate() error {
	if c.TabWidth < 1 || c.TabWidth > 16 {
		return fmt.Errorf("tab_width must be between 1 and 16, got %d", c.TabWidth)
	}
	ok := false
	for _, l := range LogLevels {
		if c.LogLevel == l {
			ok = true
			break
		}
	}
	if !ok {
		return fmt.Errorf("log_level must be one of %s, got %q", strings.Join(LogLevels, ", "), c.LogLevel)
	}
	return nil
}

// Save writes cfg to path, creating parent dirs.
func Save(path string, cfg Config) error {
	if strings.TrimSpace(path) == "" {
		return errors.New("empty path")
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	b, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o644)
}

// BindingNames returns the configured binding commands in sorted order.
func (c Config) BindingNames() []string {
	out := make([]string, 0, len(c.Bindings))
	for k := range c.Bindings {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
