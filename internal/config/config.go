// Package config loads server configuration from an optional TOML file
// with environment variable overrides on top.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
)

// Cache backend selectors.
const (
	BackendMemory = "memory"
	BackendRedis  = "redis"
	BackendMongo  = "mongo"
	BackendNone   = "none"
)

// Config is the full server configuration tree.
type Config struct {
	Server    Server    `toml:"server"`
	Twitter   Twitter   `toml:"twitter"`
	Cache     Cache     `toml:"cache"`
	RateLimit RateLimit `toml:"rate_limit"`
	LogLevel  string    `toml:"log_level"`
}

type Server struct {
	Port int `toml:"port"`
	// ResponseMaxAge is the Cache-Control max-age for render routes,
	// in seconds.
	ResponseMaxAge int `toml:"response_max_age"`
}

type Twitter struct {
	BaseURL   string `toml:"base_url"`
	Language  string `toml:"language"`
	TimeoutMS int    `toml:"timeout_ms"`
}

type Cache struct {
	Backend     string `toml:"backend"`
	TTLSeconds  int    `toml:"ttl_seconds"`
	OpTimeoutMS int    `toml:"op_timeout_ms"`
	Redis       Redis  `toml:"redis"`
	Mongo       Mongo  `toml:"mongo"`
}

type Redis struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

type Mongo struct {
	URI        string `toml:"uri"`
	Database   string `toml:"database"`
	Collection string `toml:"collection"`
}

type RateLimit struct {
	MaxRequests   int `toml:"max_requests"`
	WindowSeconds int `toml:"window_seconds"`
}

// Default returns the configuration used when no file and no environment
// overrides are present.
func Default() Config {
	return Config{
		Server: Server{
			Port:           7000,
			ResponseMaxAge: 3600,
		},
		Twitter: Twitter{
			BaseURL:   "https://cdn.syndication.twimg.com",
			Language:  "en",
			TimeoutMS: 10000,
		},
		Cache: Cache{
			Backend:     BackendMemory,
			TTLSeconds:  21600,
			OpTimeoutMS: 3000,
			Mongo: Mongo{
				Database:   "tweetcard",
				Collection: "tweets",
			},
		},
		RateLimit: RateLimit{
			MaxRequests:   100,
			WindowSeconds: 60,
		},
		LogLevel: "info",
	}
}

// Load builds the configuration: defaults, then the TOML file at path if
// it exists, then environment overrides. An empty path skips the file
// step entirely; a missing file at an explicit path is an error.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return Config{}, fmt.Errorf("load config %s: %w", path, err)
		}
	}

	applyEnv(&cfg)

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	envInt("PORT", &cfg.Server.Port)
	envInt("CACHE_MAX_AGE", &cfg.Server.ResponseMaxAge)
	envString("SYNDICATION_BASE_URL", &cfg.Twitter.BaseURL)
	envString("TWEET_LANG", &cfg.Twitter.Language)
	envInt("API_TIMEOUT", &cfg.Twitter.TimeoutMS)
	envString("CACHE_BACKEND", &cfg.Cache.Backend)
	envInt("CACHE_TTL", &cfg.Cache.TTLSeconds)
	envInt("CACHE_TIMEOUT_MS", &cfg.Cache.OpTimeoutMS)
	envString("REDIS_ADDR", &cfg.Cache.Redis.Addr)
	envString("REDIS_PASSWORD", &cfg.Cache.Redis.Password)
	envInt("REDIS_DB", &cfg.Cache.Redis.DB)
	envString("MONGO_URI", &cfg.Cache.Mongo.URI)
	envString("MONGO_DATABASE", &cfg.Cache.Mongo.Database)
	envInt("RATE_LIMIT_MAX_REQUESTS", &cfg.RateLimit.MaxRequests)
	envIntMSFromWindow("RATE_LIMIT_WINDOW_MS", &cfg.RateLimit.WindowSeconds)
	envString("LOG_LEVEL", &cfg.LogLevel)
}

func envString(key string, dst *string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func envInt(key string, dst *int) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}

// envIntMSFromWindow keeps compatibility with the millisecond-valued
// rate-limit window variable while the config stores seconds.
func envIntMSFromWindow(key string, dstSeconds *int) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			*dstSeconds = n / 1000
			if *dstSeconds == 0 {
				*dstSeconds = 1
			}
		}
	}
}

func (c Config) validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Server.Port)
	}
	switch c.Cache.Backend {
	case BackendMemory, BackendRedis, BackendMongo, BackendNone:
	default:
		return fmt.Errorf("unknown cache backend %q", c.Cache.Backend)
	}
	if c.Cache.Backend == BackendRedis && c.Cache.Redis.Addr == "" {
		return fmt.Errorf("cache backend %q requires redis.addr", c.Cache.Backend)
	}
	if c.Cache.Backend == BackendMongo && c.Cache.Mongo.URI == "" {
		return fmt.Errorf("cache backend %q requires mongo.uri", c.Cache.Backend)
	}
	return nil
}

// Convenience duration accessors.

func (c Config) APITimeout() time.Duration {
	return time.Duration(c.Twitter.TimeoutMS) * time.Millisecond
}

func (c Config) CacheTTL() time.Duration {
	return time.Duration(c.Cache.TTLSeconds) * time.Second
}

func (c Config) CacheOpTimeout() time.Duration {
	return time.Duration(c.Cache.OpTimeoutMS) * time.Millisecond
}

func (c Config) RateLimitWindow() time.Duration {
	return time.Duration(c.RateLimit.WindowSeconds) * time.Second
}
