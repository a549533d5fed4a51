package main

import (
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/zoobzio/vista"
	"gopkg.in/yaml.v3"
)

// Config tunes the watch command. Every field has a flag of the same name
// that takes precedence when set.
//
//	debounce: 250ms
//	timeout: 30s
//	notify_timeout: 1s
//	notify_retries: 2
type Config struct {
	// Debounce is the scroll quiescence period. Defaults to 250ms.
	Debounce Duration `yaml:"debounce" validate:"gte=0"`

	// Timeout bounds how long to wait for visibility. Zero waits forever.
	Timeout Duration `yaml:"timeout" validate:"gte=0"`

	// NotifyTimeout bounds the visibility report. Zero means no bound.
	NotifyTimeout Duration `yaml:"notify_timeout" validate:"gte=0"`

	// NotifyRetries is how many times a failed report is retried.
	NotifyRetries int `yaml:"notify_retries" validate:"gte=0,lte=10"`

	// Verbose prints every detection attempt.
	Verbose bool `yaml:"verbose"`
}

// Duration wraps time.Duration for YAML unmarshalling.
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler for Duration.
func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}

	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}

	*d = Duration(parsed)
	return nil
}

// Duration returns the underlying time.Duration value.
func (d Duration) Duration() time.Duration {
	return time.Duration(d)
}

var validate = validator.New()

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	return Config{Debounce: Duration(vista.DefaultDebounce)}
}

// LoadConfig reads a config file over the defaults and validates it.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := validate.Struct(cfg); err != nil {
		return cfg, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Options converts the notification settings into latch options.
func (c Config) Options() []vista.Option {
	var opts []vista.Option
	if c.NotifyTimeout > 0 {
		opts = append(opts, vista.WithTimeout(c.NotifyTimeout.Duration()))
	}
	if c.NotifyRetries > 0 {
		opts = append(opts, vista.WithRetry(c.NotifyRetries+1))
	}
	return opts
}
