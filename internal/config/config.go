// Package config loads runtime settings from viper.
package config

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/litescript/ls-horoscope/internal/ephem"
	"github.com/litescript/ls-horoscope/internal/logging"
)

// EnvPrefix is the prefix for environment overrides, e.g.
// LS_HOROSCOPE_HORIZONS_TIMEOUT=10s.
const EnvPrefix = "LS_HOROSCOPE"

// ConfigName is the config file name searched for in the working and home
// directories, without extension.
const ConfigName = ".ls-horoscope"

// Color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// EphemerisConfig selects the position source.
type EphemerisConfig struct {
	Mode string `mapstructure:"mode"`
	File string `mapstructure:"file"`
}

// HorizonsConfig configures the JPL Horizons client.
type HorizonsConfig struct {
	URL         string        `mapstructure:"url"`
	Timeout     time.Duration `mapstructure:"timeout"`
	Concurrency int           `mapstructure:"concurrency"`
	CacheTTL    time.Duration `mapstructure:"cache_ttl"`
}

// LogConfig configures diagnostics on stderr.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Config holds all runtime configuration.
// Values are populated from .ls-horoscope.yaml, LS_HOROSCOPE_* env vars, and CLI flags.
type Config struct {
	Ephemeris EphemerisConfig `mapstructure:"ephemeris"`
	Horizons  HorizonsConfig  `mapstructure:"horizons"`
	Log       LogConfig       `mapstructure:"log"`
	Timezone  string          `mapstructure:"timezone"`
	Color     string          `mapstructure:"color"`
}

// SetDefaults registers built-in defaults on the global viper instance.
func SetDefaults() {
	viper.SetDefault("ephemeris.mode", ephem.ModeAuto.String())
	viper.SetDefault("ephemeris.file", "")
	viper.SetDefault("horizons.url", ephem.HorizonsAPIURL)
	viper.SetDefault("horizons.timeout", ephem.RequestTimeout)
	viper.SetDefault("horizons.concurrency", 2)
	viper.SetDefault("horizons.cache_ttl", ephem.VectorCacheTTL)
	viper.SetDefault("log.level", "warn")
	viper.SetDefault("log.format", string(logging.FormatText))
	viper.SetDefault("timezone", "Local")
	viper.SetDefault("color", ColorAuto)
}

// InitEnv wires LS_HOROSCOPE_* environment variables. Nested keys use
// underscores: horizons.cache_ttl reads LS_HOROSCOPE_HORIZONS_CACHE_TTL.
func InitEnv() {
	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
}

// Load reads configuration from viper, applying built-in defaults for any
// values not set by config file, environment, or flags.
func Load() (Config, error) {
	SetDefaults()

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that every enumerated setting parses.
func (c Config) Validate() error {
	if _, err := c.Mode(); err != nil {
		return err
	}
	if m, _ := c.Mode(); m == ephem.ModeFile && c.Ephemeris.File == "" {
		return fmt.Errorf("ephemeris.mode is file but ephemeris.file is empty")
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return err
	}
	if _, err := logging.ParseFormat(c.Log.Format); err != nil {
		return err
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("unknown color mode %q (want auto, always or never)", c.Color)
	}
	if c.Horizons.Concurrency < 1 {
		return fmt.Errorf("horizons.concurrency must be at least 1, got %d", c.Horizons.Concurrency)
	}
	if c.Horizons.Timeout <= 0 {
		return fmt.Errorf("horizons.timeout must be positive, got %s", c.Horizons.Timeout)
	}
	if c.Horizons.CacheTTL < 0 {
		return fmt.Errorf("horizons.cache_ttl must not be negative, got %s", c.Horizons.CacheTTL)
	}
	return nil
}

// Mode returns the parsed ephemeris mode.
func (c Config) Mode() (ephem.Mode, error) {
	return ephem.ParseMode(c.Ephemeris.Mode)
}

// Location returns the zone birth dates and "today" are read in.
func (c Config) Location() (*time.Location, error) {
	if c.Timezone == "" || c.Timezone == "Local" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// Logger builds the configured logger writing to w. Call after Validate.
func (c Config) Logger(w io.Writer) *logging.Logger {
	level, _ := logging.ParseLevel(c.Log.Level)
	format, _ := logging.ParseFormat(c.Log.Format)
	return logging.NewWithOptions(w, level, format)
}

// Provider builds the configured ephemeris provider.
func (c Config) Provider(log *logging.Logger) (ephem.Provider, error) {
	mode, err := c.Mode()
	if err != nil {
		return nil, err
	}
	return ephem.NewProvider(mode, ephem.Options{
		File: c.Ephemeris.File,
		Log:  log,
		Horizons: []ephem.HorizonsOption{
			ephem.WithURL(c.Horizons.URL),
			ephem.WithTimeout(c.Horizons.Timeout),
			ephem.WithCacheTTL(c.Horizons.CacheTTL),
		},
	})
}
