package config

import (
	"fmt"
	"path/filepath"
	"sort"
	"unicode/utf8"

	tioconfig "github.com/JoyPoint/textio/foundation/core/config"
	tioerror "github.com/JoyPoint/textio/foundation/core/error"
	tioerrors "github.com/JoyPoint/textio/foundation/core/errors"
	tiolog "github.com/JoyPoint/textio/foundation/core/log"
	"github.com/JoyPoint/textio/foundation/utils/stringx"
)

// AppName is used for the config file name, the TEXTIO_ env prefix and
// the TEXTIO_CONFIG variable.
const AppName = "textio"

// Config holds the complete application configuration
type Config struct {
	General GeneralConfig           `toml:"general" yaml:"general"`
	Read    ReadConfig              `toml:"read" yaml:"read"`
	Split   SplitConfig             `toml:"split" yaml:"split"`
	Layouts map[string]LayoutConfig `toml:"layouts" yaml:"layouts"`

	path string
}

// GeneralConfig holds general application settings
type GeneralConfig struct {
	LogLevel  string `toml:"log_level" yaml:"log_level" env:"LOG_LEVEL"`
	LogFormat string `toml:"log_format" yaml:"log_format" env:"LOG_FORMAT"`
}

// ReadConfig holds defaults for reading data files
type ReadConfig struct {
	CommentChars string `toml:"comment_chars" yaml:"comment_chars" env:"COMMENT_CHARS"`
	ErrorMessage string `toml:"error_message" yaml:"error_message" env:"ERROR_MESSAGE"`
}

// SplitConfig holds defaults for delimiter splitting
type SplitConfig struct {
	Delimiter string `toml:"delimiter" yaml:"delimiter" env:"DELIMITER"`
}

// LayoutConfig is a named fixed-width column layout. Each entry of Columns
// is a [start, length] pair.
type LayoutConfig struct {
	Description string  `toml:"description" yaml:"description"`
	Columns     [][]int `toml:"columns" yaml:"columns"`
}

// DefaultConfig returns the configuration used when no file is found
func DefaultConfig() *Config {
	return &Config{
		General: GeneralConfig{
			LogLevel:  "info",
			LogFormat: "console",
		},
		Read: ReadConfig{
			CommentChars: "#",
			ErrorMessage: "cannot open file",
		},
		Split: SplitConfig{
			Delimiter: ",",
		},
		Layouts: make(map[string]LayoutConfig),
	}
}

// Load loads configuration from a TOML or YAML file on top of the defaults
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if err := tioconfig.DecodeFile(path, cfg); err != nil {
		return nil, err
	}
	cfg.path = path
	cfg.applyDefaults()
	return cfg, nil
}

// Discover resolves the configuration for one run of the tool.
//
// The .env file in the working directory is loaded first, then the config
// file from explicit, $TEXTIO_CONFIG or ./textio.{toml,yaml,yml}, then a
// .env next to that file, then TEXTIO_* overrides. The result is validated.
func Discover(explicit string) (*Config, error) {
	if _, err := tioconfig.LoadEnvFile("."); err != nil {
		return nil, err
	}

	opts := tioconfig.DefaultDiscoveryOptions(AppName)
	opts.Explicit = explicit
	path, err := tioconfig.FindConfigFile(opts)
	if err != nil {
		return nil, err
	}

	cfg := DefaultConfig()
	if path != "" {
		if dir := filepath.Dir(path); dir != "." {
			if _, err := tioconfig.LoadEnvFile(dir); err != nil {
				return nil, err
			}
		}
		if cfg, err = Load(path); err != nil {
			return nil, err
		}
	}

	if err := cfg.ApplyEnv(nil); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyEnv applies TEXTIO_* overrides. A nil environ reads the process
// environment.
func (c *Config) ApplyEnv(environ map[string]string) error {
	if err := tioconfig.ApplyEnv(c, AppName, environ); err != nil {
		return err
	}
	c.applyDefaults()
	return nil
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.General.LogLevel == "" {
		c.General.LogLevel = defaults.General.LogLevel
	}
	if c.General.LogFormat == "" {
		c.General.LogFormat = defaults.General.LogFormat
	}
	if c.Read.ErrorMessage == "" {
		c.Read.ErrorMessage = defaults.Read.ErrorMessage
	}
	if c.Split.Delimiter == "" {
		c.Split.Delimiter = defaults.Split.Delimiter
	}
	if c.Layouts == nil {
		c.Layouts = make(map[string]LayoutConfig)
	}
}

// Validate checks values that decoding alone cannot catch
func (c *Config) Validate() error {
	if _, err := tiolog.ParseLevel(c.General.LogLevel); err != nil {
		return tioerrors.InvalidConfig("general.log_level", c.General.LogLevel, "unknown log level")
	}
	if _, err := tiolog.ParseFormat(c.General.LogFormat); err != nil {
		return tioerrors.InvalidConfig("general.log_format", c.General.LogFormat, "expected json, text, console or logfmt")
	}
	if utf8.RuneCountInString(c.Split.Delimiter) != 1 {
		return tioerrors.InvalidConfig("split.delimiter", c.Split.Delimiter, "delimiter must be exactly one character")
	}

	for _, name := range c.LayoutNames() {
		if _, err := c.Layout(name); err != nil {
			return err
		}
	}
	return nil
}

// Delimiter returns the configured split delimiter
func (c *Config) Delimiter() rune {
	r, _ := utf8.DecodeRuneInString(c.Split.Delimiter)
	return r
}

// Path returns the file the configuration was loaded from, or "" for defaults
func (c *Config) Path() string {
	return c.path
}

// LayoutNames returns the names of all configured layouts, sorted
func (c *Config) LayoutNames() []string {
	names := make([]string, 0, len(c.Layouts))
	for name := range c.Layouts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Layout returns the named layout as column specs
func (c *Config) Layout(name string) ([]stringx.ColumnSpec, error) {
	layout, ok := c.Layouts[name]
	if !ok {
		return nil, tioerrors.NewErrorBuilder(tioerrors.ModuleConfig).
			Operation("Layout").
			Messagef("unknown layout %q", name).
			Code(tioerror.CodeNotFound).
			Detail("layout", name).
			Build()
	}

	field := fmt.Sprintf("layouts.%s.columns", name)
	if len(layout.Columns) == 0 {
		return nil, tioerrors.InvalidConfig(field, layout.Columns, "layout has no columns")
	}

	specs := make([]stringx.ColumnSpec, 0, len(layout.Columns))
	for i, col := range layout.Columns {
		if len(col) != 2 {
			return nil, tioerrors.InvalidConfig(field, col, fmt.Sprintf("column %d must be a [start, length] pair", i))
		}
		if col[0] < 0 || col[1] <= 0 {
			return nil, tioerrors.InvalidConfig(field, col, fmt.Sprintf("column %d needs start >= 0 and length > 0", i))
		}
		specs = append(specs, stringx.ColumnSpec{Start: col[0], Length: col[1]})
	}
	return specs, nil
}
