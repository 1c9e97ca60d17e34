// ============================================================================
// gregor - Gregorian calendar values
// ============================================================================
//
// Package:     config
// Description: CLI configuration loaded from TOML or YAML
// Author:      Mike Stoffels
// Created:     2025-08-12
// License:     MIT
// ============================================================================

package config

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	mdwerror "github.com/msto63/gregor/foundation/core/error"
	mdwlog "github.com/msto63/gregor/foundation/core/log"
	"github.com/msto63/gregor/foundation/utils/filex"
	"github.com/msto63/gregor/pkg/datetime"
)

// Config holds the complete CLI configuration
type Config struct {
	General  GeneralConfig  `toml:"general" yaml:"general"`
	Calendar CalendarConfig `toml:"calendar" yaml:"calendar"`
	Timeline TimelineConfig `toml:"timeline" yaml:"timeline"`
}

// GeneralConfig holds logging settings
type GeneralConfig struct {
	LogLevel  string `toml:"log_level" yaml:"log_level"`
	LogFormat string `toml:"log_format" yaml:"log_format"`
}

// CalendarConfig holds the defaults applied to datetime values.
// Separators are single characters; an empty string keeps the built-in one.
type CalendarConfig struct {
	DefaultTimezone    string `toml:"default_timezone" yaml:"default_timezone"`
	DateSeparator      string `toml:"date_separator" yaml:"date_separator"`
	BetweenSeparator   string `toml:"between_separator" yaml:"between_separator"`
	TimeSeparator      string `toml:"time_separator" yaml:"time_separator"`
	SubsecondSeparator string `toml:"subsecond_separator" yaml:"subsecond_separator"`
	MockDate           string `toml:"mock_date" yaml:"mock_date"`
	MockTime           string `toml:"mock_time" yaml:"mock_time"`
}

// TimelineConfig holds the marks database settings
type TimelineConfig struct {
	Path string `toml:"path" yaml:"path"`
}

// Default returns the configuration used when no file is given
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads a configuration file. Files ending in .yaml or .yml are decoded
// as YAML, everything else as TOML. Missing values get defaults and the
// result is validated.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, mdwerror.Wrap(err, "config file not found").
				WithCode(mdwerror.CodeMissingConfig).
				WithOperation("config.Load").
				WithDetail("path", path)
		}
		return nil, mdwerror.Wrap(err, "failed to read config").
			WithCode(mdwerror.CodeConfigError).
			WithOperation("config.Load").
			WithDetail("path", path)
	}

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err = dec.Decode(&cfg); errors.Is(err, io.EOF) {
			err = nil
		}
	default:
		var md toml.MetaData
		md, err = toml.Decode(string(data), &cfg)
		if err == nil {
			if undecoded := md.Undecoded(); len(undecoded) > 0 {
				return nil, mdwerror.Newf("unknown config key %q", undecoded[0].String()).
					WithCode(mdwerror.CodeInvalidConfig).
					WithOperation("config.Load").
					WithDetail("path", path)
			}
		}
	}
	if err != nil {
		return nil, mdwerror.Wrap(err, "failed to parse config").
			WithCode(mdwerror.CodeConfigError).
			WithOperation("config.Load").
			WithDetail("path", path)
	}

	cfg.applyDefaults()
	if cfg.Timeline.Path, err = filex.ExpandHome(cfg.Timeline.Path); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	if c.General.LogLevel == "" {
		c.General.LogLevel = "warn"
	}
	if c.General.LogFormat == "" {
		c.General.LogFormat = "text"
	}
	if c.Calendar.DefaultTimezone == "" {
		c.Calendar.DefaultTimezone = "UTC"
	}
	if c.Timeline.Path == "" {
		c.Timeline.Path = filex.UserDataPath("gregor", "timeline.db")
	}
}

// Validate checks every calendar value by parsing it
func (c *Config) Validate() error {
	invalid := func(key string, cause error) error {
		var e *mdwerror.Error
		if cause != nil {
			e = mdwerror.Wrap(cause, "invalid value for "+key)
		} else {
			e = mdwerror.New("invalid value for " + key)
		}
		return e.WithCode(mdwerror.CodeInvalidConfig).
			WithOperation("config.Validate").
			WithDetail("key", key)
	}

	if _, err := mdwlog.ParseLevel(c.General.LogLevel); err != nil {
		return invalid("general.log_level", err)
	}
	if _, err := mdwlog.ParseFormat(c.General.LogFormat); err != nil {
		return invalid("general.log_format", err)
	}
	if _, err := c.Timezone(); err != nil {
		return invalid("calendar.default_timezone", err)
	}
	seps := map[string]string{
		"calendar.date_separator":      c.Calendar.DateSeparator,
		"calendar.between_separator":   c.Calendar.BetweenSeparator,
		"calendar.time_separator":      c.Calendar.TimeSeparator,
		"calendar.subsecond_separator": c.Calendar.SubsecondSeparator,
	}
	for key, s := range seps {
		if _, ok := separator(s); !ok {
			return invalid(key, nil)
		}
	}
	if _, err := c.MockDate(); err != nil {
		return invalid("calendar.mock_date", err)
	}
	if _, err := c.MockTime(); err != nil {
		return invalid("calendar.mock_time", err)
	}
	if strings.TrimSpace(c.Timeline.Path) == "" {
		return invalid("timeline.path", nil)
	}
	return nil
}

// Timezone resolves calendar.default_timezone
func (c *Config) Timezone() (datetime.Timezone, error) {
	return datetime.ParseTimezone(c.Calendar.DefaultTimezone)
}

// Separators returns the configured separators; unset entries stay zero so
// the datetime package falls back to its defaults.
func (c *Config) Separators() datetime.Separators {
	date, _ := separator(c.Calendar.DateSeparator)
	between, _ := separator(c.Calendar.BetweenSeparator)
	tm, _ := separator(c.Calendar.TimeSeparator)
	sub, _ := separator(c.Calendar.SubsecondSeparator)
	return datetime.Separators{Date: date, Between: between, Time: tm, Subsecond: sub}
}

// MockDate parses calendar.mock_date; unset yields the zero Date
func (c *Config) MockDate() (datetime.Date, error) {
	if c.Calendar.MockDate == "" {
		return datetime.Date{}, nil
	}
	return datetime.ParseDate(c.Calendar.MockDate)
}

// HasMockDate reports whether calendar.mock_date is set
func (c *Config) HasMockDate() bool { return c.Calendar.MockDate != "" }

// MockTime parses calendar.mock_time in the default timezone
func (c *Config) MockTime() (datetime.Time, error) {
	if c.Calendar.MockTime == "" {
		return datetime.Time{}, nil
	}
	tz, err := c.Timezone()
	if err != nil {
		return datetime.Time{}, err
	}
	return datetime.ParseTime(c.Calendar.MockTime, tz)
}

// HasMockTime reports whether calendar.mock_time is set
func (c *Config) HasMockTime() bool { return c.Calendar.MockTime != "" }

// Apply installs the default timezone and any mock date or time into the
// datetime package.
func (c *Config) Apply() error {
	tz, err := c.Timezone()
	if err != nil {
		return err
	}
	datetime.SetDefaultTimezone(tz)
	if c.HasMockDate() {
		d, err := c.MockDate()
		if err != nil {
			return err
		}
		datetime.SetMockDate(d)
	}
	if c.HasMockTime() {
		t, err := c.MockTime()
		if err != nil {
			return err
		}
		datetime.SetMockTime(t)
	}
	return nil
}

// separator accepts "" or exactly one character
func separator(s string) (rune, bool) {
	r := []rune(s)
	switch len(r) {
	case 0:
		return 0, true
	case 1:
		return r[0], true
	default:
		return 0, false
	}
}
