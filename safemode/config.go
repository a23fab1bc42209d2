package safemode

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

// EnvVar is the environment variable FromEnv reads.
const EnvVar = "SPATIAL_SAFE_MODE"

// Status strings.
const (
	StatusEnabled  = "ENABLED"
	StatusDisabled = "DISABLED"
)

// Config is a concurrency-safe validation switch.
type Config struct {
	mu      sync.RWMutex
	enabled bool
}

// fileConfig is the YAML layout read by LoadFile.
type fileConfig struct {
	SafeMode bool `yaml:"safe_mode"`
}

// NewConfig returns a Config in the given state.
func NewConfig(enabled bool) *Config {
	return &Config{enabled: enabled}
}

// FromEnv returns a Config enabled when EnvVar is one of true, 1, yes or on.
// Any other value, or no value, leaves it disabled.
func FromEnv() *Config {
	return NewConfig(parseFlag(os.Getenv(EnvVar)))
}

// LoadFile reads a YAML file of the form `safe_mode: true`.
func LoadFile(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var fc fileConfig
	if err := yaml.Unmarshal(raw, &fc); err != nil {
		return nil, fmt.Errorf("safemode: %s: %w", path, err)
	}

	return NewConfig(fc.SafeMode), nil
}

func parseFlag(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "true", "1", "yes", "on":
		return true
	default:
		return false
	}
}

// Enabled reports whether validation is on.
func (c *Config) Enabled() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.enabled
}

// Enable sets the switch.
func (c *Config) Enable(enabled bool) {
	c.mu.Lock()
	c.enabled = enabled
	c.mu.Unlock()
}

// Disable turns validation off.
func (c *Config) Disable() { c.Enable(false) }

// Status returns StatusEnabled or StatusDisabled.
func (c *Config) Status() string {
	if c.Enabled() {
		return StatusEnabled
	}

	return StatusDisabled
}

// Scoped sets the switch and returns a func restoring the previous state.
//
//	defer cfg.Scoped(true)()
func (c *Config) Scoped(enabled bool) (restore func()) {
	c.mu.Lock()
	prev := c.enabled
	c.enabled = enabled
	c.mu.Unlock()

	return func() { c.Enable(prev) }
}
