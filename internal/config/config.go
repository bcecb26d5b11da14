// Package config loads settings for the bigcalc tool: defaults, then an
// optional YAML file, then BIGCALC_* environment overrides.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/comalice/stlx/bigint"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "BIGCALC_"

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid value")

// Config holds the bigcalc settings.
type Config struct {
	MaxDigits     int    `yaml:"max_digits"`
	StackCapacity int    `yaml:"stack_capacity"`
	LogLevel      string `yaml:"log_level"`
	Prompt        string `yaml:"prompt"`
	Echo          bool   `yaml:"echo"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		MaxDigits:     bigint.DefaultMaxDigits,
		StackCapacity: 16,
		LogLevel:      "info",
	}
}

// Load returns Default overlaid with the YAML file at path (skipped when path
// is empty) and then with the environment.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("yaml unmarshal %s: %w", path, err)
		}
	}
	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	var err error
	if c.MaxDigits, err = getEnvAsInt("MAX_DIGITS", c.MaxDigits); err != nil {
		return err
	}
	if c.StackCapacity, err = getEnvAsInt("STACK_CAPACITY", c.StackCapacity); err != nil {
		return err
	}
	if c.Echo, err = getEnvAsBool("ECHO", c.Echo); err != nil {
		return err
	}
	c.LogLevel = getEnv("LOG_LEVEL", c.LogLevel)
	c.Prompt = getEnv("PROMPT", c.Prompt)
	return nil
}

// Validate checks ranges and the log level.
func (c Config) Validate() error {
	if c.MaxDigits < bigint.DigitWidth {
		return fmt.Errorf("%w: max_digits %d below %d", ErrInvalid, c.MaxDigits, bigint.DigitWidth)
	}
	if c.StackCapacity < 0 {
		return fmt.Errorf("%w: stack_capacity %d", ErrInvalid, c.StackCapacity)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level parses LogLevel.
func (c Config) Level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.ToUpper(c.LogLevel))); err != nil {
		return 0, fmt.Errorf("%w: log_level %q", ErrInvalid, c.LogLevel)
	}
	return l, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(EnvPrefix + key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) (int, error) {
	s, exists := os.LookupEnv(EnvPrefix + key)
	if !exists {
		return fallback, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %s%s=%q", ErrInvalid, EnvPrefix, key, s)
	}
	return v, nil
}

func getEnvAsBool(key string, fallback bool) (bool, error) {
	s, exists := os.LookupEnv(EnvPrefix + key)
	if !exists {
		return fallback, nil
	}
	v, err := strconv.ParseBool(s)
	if err != nil {
		return false, fmt.Errorf("%w: %s%s=%q", ErrInvalid, EnvPrefix, key, s)
	}
	return v, nil
}
