package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment override
const EnvPrefix = "INTEREST_"

const (
	BackendNone   = "none"
	BackendMemory = "memory"
	BackendRedis  = "redis"
)

// Config the daemon configuration
type Config struct {
	HTTP  HTTPConfig  `toml:"http" yaml:"http"`
	Log   LogConfig   `toml:"log" yaml:"log"`
	Cache CacheConfig `toml:"cache" yaml:"cache"`
}

type HTTPConfig struct {
	Addr            string   `toml:"addr" yaml:"addr"`
	ReadTimeout     Duration `toml:"read_timeout" yaml:"read_timeout"`
	WriteTimeout    Duration `toml:"write_timeout" yaml:"write_timeout"`
	ShutdownTimeout Duration `toml:"shutdown_timeout" yaml:"shutdown_timeout"`
}

type LogConfig struct {
	// Level one of debug, info, warn, error
	Level string `toml:"level" yaml:"level"`

	// Format one of logfmt, json
	Format string `toml:"format" yaml:"format"`
}

type CacheConfig struct {
	// Backend one of none, memory, redis
	Backend   string   `toml:"backend" yaml:"backend"`
	TTL       Duration `toml:"ttl" yaml:"ttl"`
	RedisAddr string   `toml:"redis_addr" yaml:"redis_addr"`
	RedisDB   int      `toml:"redis_db" yaml:"redis_db"`
}

// Duration a time.Duration read from strings such as "90s"
type Duration struct {
	time.Duration
}

// UnmarshalText parses a duration string
func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

// MarshalText formats the duration as a string
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Default the configuration used when no file is given
func Default() *Config {
	return &Config{
		HTTP: HTTPConfig{
			Addr:            ":8080",
			ReadTimeout:     Duration{15 * time.Second},
			WriteTimeout:    Duration{15 * time.Second},
			ShutdownTimeout: Duration{10 * time.Second},
		},
		Log: LogConfig{
			Level:  "info",
			Format: "logfmt",
		},
		Cache: CacheConfig{
			Backend: BackendMemory,
			TTL:     Duration{10 * time.Minute},
		},
	}
}

// Load reads the file at path over the defaults, TOML or YAML depending on its extension,
// then applies environment overrides and validates the result. An empty path skips the file.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		content, err := os.ReadFile(os.ExpandEnv(path))
		if err != nil {
			return nil, fmt.Errorf("reading config: %w", err)
		}

		switch ext := strings.ToLower(filepath.Ext(path)); ext {
		case ".toml":
			err = toml.Unmarshal(content, cfg)
		case ".yaml", ".yml":
			err = yaml.Unmarshal(content, cfg)
		default:
			return nil, fmt.Errorf("unsupported config format [%v]", ext)
		}
		if err != nil {
			return nil, fmt.Errorf("decoding config [%v]: %w", path, err)
		}
	}

	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnv overrides fields from INTEREST_* variables
func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	strs := map[string]*string{
		"HTTP_ADDR":     &c.HTTP.Addr,
		"LOG_LEVEL":     &c.Log.Level,
		"LOG_FORMAT":    &c.Log.Format,
		"CACHE_BACKEND": &c.Cache.Backend,
		"REDIS_ADDR":    &c.Cache.RedisAddr,
	}
	for name, field := range strs {
		if v, ok := lookup(EnvPrefix + name); ok {
			*field = v
		}
	}

	if v, ok := lookup(EnvPrefix + "CACHE_TTL"); ok {
		if err := c.Cache.TTL.UnmarshalText([]byte(v)); err != nil {
			return fmt.Errorf("%vCACHE_TTL [%v]: %w", EnvPrefix, v, err)
		}
	}
	if v, ok := lookup(EnvPrefix + "REDIS_DB"); ok {
		db, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%vREDIS_DB [%v]: %w", EnvPrefix, v, err)
		}
		c.Cache.RedisDB = db
	}
	return nil
}

// Validate reports the first invalid setting
func (c *Config) Validate() error {
	if c.HTTP.Addr == "" {
		return fmt.Errorf("http.addr must be set")
	}

	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log.level [%v]", c.Log.Level)
	}

	switch c.Log.Format {
	case "logfmt", "json":
	default:
		return fmt.Errorf("unknown log.format [%v]", c.Log.Format)
	}

	switch c.Cache.Backend {
	case BackendNone:
		return nil
	case BackendMemory:
	case BackendRedis:
		if c.Cache.RedisAddr == "" {
			return fmt.Errorf("cache.redis_addr must be set for the redis backend")
		}
	default:
		return fmt.Errorf("unknown cache.backend [%v]", c.Cache.Backend)
	}

	if c.Cache.TTL.Duration <= 0 {
		return fmt.Errorf("cache.ttl must be positive, got %v", c.Cache.TTL)
	}
	return nil
}
