package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/getmockd/fakeapi/pkg/auth"
	"github.com/getmockd/fakeapi/pkg/logging"
	"github.com/getmockd/fakeapi/pkg/store"
)

// Defaults.
const (
	DefaultAPIURL  = "http://localhost:4000"
	DefaultLatency = 500 * time.Millisecond
)

// Config is the complete fakeapi configuration.
type Config struct {
	// APIURL is the base URL requests are addressed to. The bearer token is
	// only sent to URLs under it.
	APIURL  string        `yaml:"api_url"`
	Latency time.Duration `yaml:"latency"`
	Token   string        `yaml:"token"`
	Storage StorageConfig `yaml:"storage"`
	Log     LogConfig     `yaml:"log"`
}

// StorageConfig selects and configures the key-value backend.
type StorageConfig struct {
	Backend store.Backend `yaml:"backend"`
	// Dir is the data directory for the file and sqlite backends.
	Dir string `yaml:"dir"`
	// DSN is the connection URL for the redis and postgres backends.
	DSN string `yaml:"dsn"`
	// KeyPrefix namespaces keys in redis.
	KeyPrefix string `yaml:"key_prefix"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	return &Config{
		APIURL:  DefaultAPIURL,
		Latency: DefaultLatency,
		Token:   auth.DefaultToken,
		Storage: StorageConfig{
			Backend: store.BackendFile,
			Dir:     store.DefaultDataDir(),
		},
		Log: LogConfig{
			Level:  "info",
			Format: string(logging.FormatText),
		},
	}
}

// applyDefaults fills every zero field from Default.
func (c *Config) applyDefaults() {
	d := Default()
	if c.APIURL == "" {
		c.APIURL = d.APIURL
	}
	if c.Latency <= 0 {
		c.Latency = d.Latency
	}
	if c.Token == "" {
		c.Token = d.Token
	}
	if c.Storage.Backend == "" {
		c.Storage.Backend = d.Storage.Backend
	}
	if c.Storage.Dir == "" {
		c.Storage.Dir = d.Storage.Dir
	}
	if c.Log.Level == "" {
		c.Log.Level = d.Log.Level
	}
	if c.Log.Format == "" {
		c.Log.Format = d.Log.Format
	}
}

// Validate reports every invalid field at once.
func (c *Config) Validate() error {
	var errs []error

	if u, err := url.Parse(c.APIURL); err != nil || u.Scheme == "" || u.Host == "" {
		errs = append(errs, fmt.Errorf("api_url %q must be an absolute URL", c.APIURL))
	}
	if c.Latency <= 0 {
		errs = append(errs, fmt.Errorf("latency must be positive, got %s", c.Latency))
	}
	if !c.Storage.Backend.Valid() {
		errs = append(errs, fmt.Errorf("storage.backend %q is not one of %v", c.Storage.Backend, store.Backends))
	}
	switch c.Storage.Backend {
	case store.BackendFile, store.BackendSQLite:
		if c.Storage.Dir == "" {
			errs = append(errs, fmt.Errorf("storage.dir is required for the %s backend", c.Storage.Backend))
		}
	case store.BackendRedis, store.BackendPostgres:
		if c.Storage.DSN == "" {
			errs = append(errs, fmt.Errorf("storage.dsn is required for the %s backend", c.Storage.Backend))
		}
	}
	switch logging.Format(strings.ToLower(c.Log.Format)) {
	case logging.FormatText, logging.FormatJSON, logging.FormatPretty:
	default:
		errs = append(errs, fmt.Errorf("log.format %q is not one of text, json, pretty", c.Log.Format))
	}

	return errors.Join(errs...)
}

// Logging returns the logging configuration.
func (c *Config) Logging() logging.Config {
	cfg := logging.DefaultConfig()
	cfg.Level = logging.ParseLevel(c.Log.Level)
	cfg.Format = logging.ParseFormat(c.Log.Format)
	return cfg
}
