package config

import (
	"fmt"
	"os"
	"regexp"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/getmockd/fakeapi/pkg/store"
)

// EnvConfig names the variable that points at a config file.
const EnvConfig = "FAKEAPI_CONFIG"

// DiscoveryOrder lists the file names looked up in the working directory
// when no path is given.
var DiscoveryOrder = []string{
	"fakeapi.yaml",
	"fakeapi.yml",
}

// envVarPattern matches ${VAR_NAME} or ${VAR_NAME:-default}
var envVarPattern = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)(?::-([^}]*))?\}`)

// LookupFunc looks up an environment variable.
type LookupFunc func(key string) (string, bool)

// Load reads the config at path, or the discovered file when path is
// empty, then applies defaults, the process environment and validation.
// A missing discovered file is not an error.
func Load(path string) (*Config, error) {
	return LoadWithEnv(path, os.LookupEnv)
}

// LoadWithEnv is Load with a custom environment.
func LoadWithEnv(path string, lookup LookupFunc) (*Config, error) {
	if path == "" {
		path = Discover(lookup)
	}

	cfg := &Config{}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		if cfg, err = parse(data, lookup); err != nil {
			return nil, err
		}
	}

	return finish(cfg, lookup)
}

// LoadFromBytes parses YAML data and applies defaults, the process
// environment and validation.
func LoadFromBytes(data []byte) (*Config, error) {
	cfg, err := parse(data, os.LookupEnv)
	if err != nil {
		return nil, err
	}
	return finish(cfg, os.LookupEnv)
}

func parse(data []byte, lookup LookupFunc) (*Config, error) {
	expanded := ExpandEnvVars(string(data), lookup)

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}
	return &cfg, nil
}

// finish applies the environment, then defaults, so a zero latency from
// either source falls back to the default.
func finish(cfg *Config, lookup LookupFunc) (*Config, error) {
	if err := applyEnv(cfg, lookup); err != nil {
		return nil, err
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Discover returns the config file named by FAKEAPI_CONFIG, or the first
// DiscoveryOrder file in the working directory, or "".
func Discover(lookup LookupFunc) string {
	if p, ok := lookup(EnvConfig); ok && p != "" {
		return p
	}
	for _, name := range DiscoveryOrder {
		if _, err := os.Stat(name); err == nil {
			return name
		}
	}
	return ""
}

// applyEnv overrides cfg with FAKEAPI_* variables.
func applyEnv(cfg *Config, lookup LookupFunc) error {
	str := func(key string, dst *string) {
		if v, ok := lookup(key); ok && v != "" {
			*dst = v
		}
	}

	str("FAKEAPI_API_URL", &cfg.APIURL)
	str("FAKEAPI_TOKEN", &cfg.Token)
	str("FAKEAPI_DATA_DIR", &cfg.Storage.Dir)
	str("FAKEAPI_DSN", &cfg.Storage.DSN)
	str("FAKEAPI_KEY_PREFIX", &cfg.Storage.KeyPrefix)
	str("FAKEAPI_LOG_LEVEL", &cfg.Log.Level)
	str("FAKEAPI_LOG_FORMAT", &cfg.Log.Format)

	if v, ok := lookup("FAKEAPI_STORAGE"); ok && v != "" {
		cfg.Storage.Backend = store.Backend(v)
	}
	if v, ok := lookup("FAKEAPI_LATENCY"); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("FAKEAPI_LATENCY: %w", err)
		}
		cfg.Latency = d
	}
	return nil
}

// ExpandEnvVars expands ${VAR_NAME} and ${VAR_NAME:-default} references.
func ExpandEnvVars(input string, lookup LookupFunc) string {
	return envVarPattern.ReplaceAllStringFunc(input, func(match string) string {
		submatch := envVarPattern.FindStringSubmatch(match)
		if len(submatch) < 2 {
			return match
		}

		if val, ok := lookup(submatch[1]); ok && val != "" {
			return val
		}
		if len(submatch) >= 3 {
			return submatch[2]
		}
		return ""
	})
}
