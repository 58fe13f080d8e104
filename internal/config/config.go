// Package config handles loading and saving user configuration for WordAhead.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// FileName is the name of the config file inside the config directory.
const FileName = "config.yaml"

const (
	DefaultAPIURL     = "http://localhost:5000"
	DefaultCloseDelay = 300 * time.Millisecond
	DefaultLogLevel   = "info"
	DefaultMockPort   = 5000
	DefaultMockOrigin = "http://localhost:5173"
)

// Config holds all user configuration.
type Config struct {
	APIURL         string        `yaml:"api_url"`
	CloseDelay     time.Duration `yaml:"close_delay"`
	RequestTimeout time.Duration `yaml:"request_timeout"` // zero means no timeout
	Log            LogConfig     `yaml:"log"`
	Mock           MockConfig    `yaml:"mock"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	File  string `yaml:"file"`
	Level string `yaml:"level"`
}

// MockConfig holds settings for the local mock service.
type MockConfig struct {
	Port           int    `yaml:"port"`
	AllowedOrigins string `yaml:"allowed_origins"`
}

// Default returns the configuration used when nothing is configured.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.APIURL == "" {
		c.APIURL = DefaultAPIURL
	}
	if c.CloseDelay == 0 {
		c.CloseDelay = DefaultCloseDelay
	}
	if c.Log.Level == "" {
		c.Log.Level = DefaultLogLevel
	}
	if c.Mock.Port == 0 {
		c.Mock.Port = DefaultMockPort
	}
	if c.Mock.AllowedOrigins == "" {
		c.Mock.AllowedOrigins = DefaultMockOrigin
	}
}

// Validate checks the configuration for values the app cannot work with.
func (c *Config) Validate() error {
	var errs []error

	u, err := url.Parse(c.APIURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		errs = append(errs, fmt.Errorf("api_url %q is not an absolute URL", c.APIURL))
	} else if u.Scheme != "http" && u.Scheme != "https" {
		errs = append(errs, fmt.Errorf("api_url scheme must be http or https, got %q", u.Scheme))
	}
	if c.CloseDelay < 0 {
		errs = append(errs, fmt.Errorf("close_delay must not be negative"))
	}
	if c.RequestTimeout < 0 {
		errs = append(errs, fmt.Errorf("request_timeout must not be negative"))
	}
	if c.Mock.Port < 1 || c.Mock.Port > 65535 {
		errs = append(errs, fmt.Errorf("mock.port %d out of range", c.Mock.Port))
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("log.level %q is not one of debug, info, warn, error", c.Log.Level))
	}

	return errors.Join(errs...)
}

// Load reads the config file at path and applies defaults for missing values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}
	cfg.applyDefaults()

	return &cfg, nil
}

// LoadDir loads FileName from dir. A missing file yields the defaults.
func LoadDir(dir string) (*Config, error) {
	cfg, err := Load(filepath.Join(dir, FileName))
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// Save writes the configuration as YAML.
func Save(path string, cfg *Config) error {
	out, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, out, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// GetConfigDir returns the default configuration directory.
func GetConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "wordahead"), nil
}

// DefaultLogFile returns the log file path inside dir.
func DefaultLogFile(dir string) string {
	return filepath.Join(dir, "wordahead.log")
}
