// Package config loads finder settings from a YAML file.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/swlab-dev/swfinder/pkg/driver/webdriver"
)

// Config holds the settings for a finder session.
type Config struct {
	// Server is the WebDriver remote end URL.
	Server string `yaml:"server"`
	// TimeoutMs bounds how long a lookup keeps retrying.
	TimeoutMs int `yaml:"timeoutMs"`
	// IntervalMs is the pause between retry attempts.
	IntervalMs int `yaml:"intervalMs"`
	// Interactive enables the context search prompt on failed lookups.
	Interactive bool `yaml:"interactive"`

	Browser webdriver.Options `yaml:"browser"`
}

// Default returns the built-in settings, aimed at a local chromedriver.
func Default() Config {
	return Config{
		Server:     "http://127.0.0.1:9515",
		TimeoutMs:  5000,
		IntervalMs: 500,
	}
}

// Load reads a YAML config file on top of the defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// Timeout returns the retry deadline as a duration.
func (c Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutMs) * time.Millisecond
}

// Interval returns the retry pause as a duration.
func (c Config) Interval() time.Duration {
	return time.Duration(c.IntervalMs) * time.Millisecond
}
