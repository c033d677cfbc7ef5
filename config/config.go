package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/deevus/texttable/table"
)

// Number formats applied to numeric cells loaded from files.
const (
	NumbersPlain = "plain"
	NumbersComma = "comma"
	NumbersBytes = "bytes"
)

// DefaultStyle is used when the config names no default_style.
const DefaultStyle = "grid"

// Config is the top-level configuration.
type Config struct {
	DefaultStyle string           `toml:"default_style"`
	Styles       map[string]Style `toml:"styles"`
}

// Style is one named rendering profile. Unset separators take the engine
// defaults; an empty string disables a line separator.
type Style struct {
	Fill            string  `toml:"fill"`
	HeadSeparator   *string `toml:"head_separator"`
	RowSeparator    *string `toml:"row_separator"`
	ColumnSeparator string  `toml:"column_separator"`
	MaxWidth        int     `toml:"max_width"`
	Numbers         string  `toml:"numbers"`
}

// DefaultPath returns the default config file path using XDG conventions.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = filepath.Join(os.Getenv("HOME"), ".config")
	}
	return filepath.Join(dir, "texttable", "config.toml")
}

// Default returns the built-in styles.
func Default() *Config {
	return &Config{
		DefaultStyle: DefaultStyle,
		Styles: map[string]Style{
			"grid":    withDefaults(Style{}),
			"compact": withDefaults(Style{RowSeparator: ptr("")}),
			"plain":   withDefaults(Style{HeadSeparator: ptr(""), RowSeparator: ptr("")}),
		},
	}
}

// Load reads the config at path, or at DefaultPath when path is empty. A
// missing file at the default location yields the built-in styles.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}
	cfg, err := LoadFrom(path)
	if err != nil && !explicit && errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// LoadFrom reads and parses the config file at the given path.
// Built-in styles are added under the user's styles, and unset fields get
// their defaults.
func LoadFrom(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(expandPath(path), &cfg); err != nil {
		return nil, fmt.Errorf("loading config from %s: %w", path, err)
	}
	if cfg.Styles == nil {
		cfg.Styles = make(map[string]Style)
	}
	for name, style := range Default().Styles {
		if _, ok := cfg.Styles[name]; !ok {
			cfg.Styles[name] = style
		}
	}
	for name, style := range cfg.Styles {
		style = withDefaults(style)
		if err := style.Validate(); err != nil {
			return nil, fmt.Errorf("style %q: %w", name, err)
		}
		cfg.Styles[name] = style
	}
	if cfg.DefaultStyle == "" {
		cfg.DefaultStyle = DefaultStyle
	}
	if _, ok := cfg.Styles[cfg.DefaultStyle]; !ok {
		return nil, fmt.Errorf("default_style %q is not defined", cfg.DefaultStyle)
	}
	return &cfg, nil
}

// expandPath expands ~ to $HOME and then expands all environment variables.
func expandPath(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		path = "$HOME" + path[1:]
	}
	return os.ExpandEnv(path)
}

// StyleNames returns the sorted list of style names.
func (c *Config) StyleNames() []string {
	names := make([]string, 0, len(c.Styles))
	for name := range c.Styles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Style looks up a style by name. An empty name selects the default style.
func (c *Config) Style(name string) (Style, error) {
	if name == "" {
		name = c.DefaultStyle
	}
	style, ok := c.Styles[name]
	if !ok {
		return Style{}, fmt.Errorf("unknown style %q (have %s)", name, strings.Join(c.StyleNames(), ", "))
	}
	return style, nil
}

// Options returns the table options for the style.
func (s Style) Options() []table.Option {
	s = withDefaults(s)
	return []table.Option{
		table.WithFill(s.Fill),
		table.WithHeadSeparator(*s.HeadSeparator),
		table.WithRowSeparator(*s.RowSeparator),
		table.WithColumnSeparator(s.ColumnSeparator),
		table.WithMaxWidth(s.MaxWidth),
	}
}

// Validate checks the number format and builds an empty table with the
// style so bad separators are reported.
func (s Style) Validate() error {
	switch s.Numbers {
	case "", NumbersPlain, NumbersComma, NumbersBytes:
	default:
		return fmt.Errorf("numbers must be %s, %s or %s, got %q", NumbersPlain, NumbersComma, NumbersBytes, s.Numbers)
	}
	if _, err := table.New(s.Options()...); err != nil {
		return fmt.Errorf("invalid style: %w", err)
	}
	return nil
}

func withDefaults(s Style) Style {
	if s.HeadSeparator == nil {
		s.HeadSeparator = ptr(table.DefaultHeadSeparator)
	}
	if s.RowSeparator == nil {
		s.RowSeparator = ptr(table.DefaultRowSeparator)
	}
	if s.ColumnSeparator == "" {
		s.ColumnSeparator = table.DefaultColumnSeparator
	}
	if s.Numbers == "" {
		s.Numbers = NumbersPlain
	}
	return s
}

func ptr(s string) *string {
	return &s
}
