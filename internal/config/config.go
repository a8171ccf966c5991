package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

const (
	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "demo.toml"

	// DefaultAddr is the default listen address.
	DefaultAddr = "localhost:8000"

	// DefaultFeedInterval is the default delay between feed events.
	DefaultFeedInterval = time.Second
)

// Config holds the demo server configuration.
type Config struct {
	// Addr is the host:port the server listens on.
	Addr string `toml:"addr"`

	// Dev enables development mode (verbose logging).
	Dev bool `toml:"dev"`

	// Feed contains feed stream settings.
	Feed FeedConfig `toml:"feed"`

	// Metrics contains Prometheus exposition settings.
	Metrics MetricsConfig `toml:"metrics"`

	// configPath stores the path the config was loaded from.
	configPath string
}

// FeedConfig contains feed stream settings.
type FeedConfig struct {
	// Interval is the delay between feed events, e.g. "500ms".
	Interval Duration `toml:"interval"`
}

// MetricsConfig contains Prometheus exposition settings.
type MetricsConfig struct {
	// Enabled controls whether /metrics is served.
	Enabled bool `toml:"enabled"`
}

// Duration wraps time.Duration so TOML values can be written as "1s".
type Duration time.Duration

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}

// New creates a new Config with default values.
func New() *Config {
	return &Config{
		Addr: DefaultAddr,
		Feed: FeedConfig{
			Interval: Duration(DefaultFeedInterval),
		},
		Metrics: MetricsConfig{
			Enabled: true,
		},
	}
}

// Load reads configuration from the specified directory.
// It looks for demo.toml in the directory; if the file does not exist
// the defaults are returned.
func Load(dir string) (*Config, error) {
	return LoadFile(filepath.Join(dir, ConfigFileName))
}

// LoadFile reads configuration from the specified file path.
// A missing file is not an error.
func LoadFile(path string) (*Config, error) {
	cfg := New()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	cfg.configPath = path
	cfg.applyDefaults()

	return cfg, nil
}

// Path returns the path where the config was loaded from, or "" when the
// defaults are in effect.
func (c *Config) Path() string {
	return c.configPath
}

// FeedInterval returns the configured feed interval.
func (c *Config) FeedInterval() time.Duration {
	return time.Duration(c.Feed.Interval)
}

// applyDefaults fills in default values for empty fields.
func (c *Config) applyDefaults() {
	if c.Addr == "" {
		c.Addr = DefaultAddr
	}
	if c.Feed.Interval <= 0 {
		c.Feed.Interval = Duration(DefaultFeedInterval)
	}
}
