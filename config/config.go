package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
	"github.com/subosito/gotenv"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Catalog   CatalogConfig   `mapstructure:"catalog"`
	Search    SearchConfig    `mapstructure:"search"`
	Cache     CacheConfig     `mapstructure:"cache"`
	RateLimit RateLimitConfig `mapstructure:"ratelimit"`
	Message   MessageConfig   `mapstructure:"message"`
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	Environment    string   `mapstructure:"environment"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// CatalogConfig holds product catalog storage configuration
type CatalogConfig struct {
	DBPath      string `mapstructure:"db_path"`
	SeedIfEmpty bool   `mapstructure:"seed_if_empty"`
}

// SearchConfig holds product search configuration
type SearchConfig struct {
	DefaultLimit   int    `mapstructure:"default_limit"`
	MaxLimit       int    `mapstructure:"max_limit"`
	VocabularyFile string `mapstructure:"vocabulary_file"` // optional YAML override of the built-in tables
	DebugLogging   bool   `mapstructure:"debug_logging"`
}

// CacheConfig holds cache-related configuration
type CacheConfig struct {
	Type     string        `mapstructure:"type"` // "memory" or "redis"
	RedisURL string        `mapstructure:"redis_url"`
	TTL      time.Duration `mapstructure:"ttl"`
}

// RateLimitConfig holds rate limiting configuration
type RateLimitConfig struct {
	PerIP int `mapstructure:"per_ip"` // requests per minute per client IP
	Burst int `mapstructure:"burst"`
}

// MessageConfig holds direct message validation limits
type MessageConfig struct {
	MaxLength int `mapstructure:"max_length"` // in characters
}

// Load loads configuration from a .env file, environment variables and config files
func Load() (*Config, error) {
	if err := loadEnvFile(); err != nil {
		return nil, fmt.Errorf("error reading .env file: %w", err)
	}

	v := viper.New()

	// Set config name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/shopbot/")

	// Environment variable settings: SHOPBOT_SERVER_PORT -> server.port
	v.SetEnvPrefix("SHOPBOT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	// Config file is optional
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if config.RateLimit.Burst <= 0 {
		config.RateLimit.Burst = config.RateLimit.PerIP
	}

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// loadEnvFile loads ./.env if present. Variables already set in the environment win.
func loadEnvFile() error {
	if _, err := os.Stat(".env"); errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return gotenv.Load(".env")
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.allowed_origins", []string{"http://localhost:3000"})

	// Catalog defaults
	v.SetDefault("catalog.db_path", "./db/app_data.sqlite")
	v.SetDefault("catalog.seed_if_empty", true)

	// Search defaults
	v.SetDefault("search.default_limit", 5)
	v.SetDefault("search.max_limit", 20)
	v.SetDefault("search.vocabulary_file", "")
	v.SetDefault("search.debug_logging", false)

	// Cache defaults
	v.SetDefault("cache.type", "memory")
	v.SetDefault("cache.redis_url", "")
	v.SetDefault("cache.ttl", "10m")

	// Rate limit defaults
	v.SetDefault("ratelimit.per_ip", 10)
	v.SetDefault("ratelimit.burst", 0)

	// Message defaults
	v.SetDefault("message.max_length", 1000)
}

// validate validates the configuration
func validate(config *Config) error {
	if config.Server.Port == "" {
		return fmt.Errorf("server port is required (set SHOPBOT_SERVER_PORT)")
	}

	for _, origin := range config.Server.AllowedOrigins {
		if err := validateOrigin(origin); err != nil {
			return err
		}
	}

	if config.Catalog.DBPath == "" {
		return fmt.Errorf("catalog database path is required (set SHOPBOT_CATALOG_DB_PATH)")
	}

	if config.Search.DefaultLimit <= 0 {
		return fmt.Errorf("search default limit must be positive, got: %d", config.Search.DefaultLimit)
	}

	if config.Search.MaxLimit < config.Search.DefaultLimit {
		return fmt.Errorf("search max limit (%d) must not be below default limit (%d)",
			config.Search.MaxLimit, config.Search.DefaultLimit)
	}

	if config.Cache.Type != "memory" && config.Cache.Type != "redis" {
		return fmt.Errorf("cache type must be 'memory' or 'redis', got: %s", config.Cache.Type)
	}

	if config.Cache.Type == "redis" && config.Cache.RedisURL == "" {
		return fmt.Errorf("Redis URL is required when cache type is 'redis'")
	}

	if config.RateLimit.PerIP <= 0 {
		return fmt.Errorf("rate limit per IP must be positive, got: %d", config.RateLimit.PerIP)
	}

	if config.Message.MaxLength <= 0 {
		return fmt.Errorf("message max length must be positive, got: %d", config.Message.MaxLength)
	}

	return nil
}

// validateOrigin checks an allowed CORS origin: an http(s) origin, optionally
// with a single "*" wildcard
func validateOrigin(origin string) error {
	switch strings.Count(origin, "*") {
	case 0:
		if !strings.HasPrefix(origin, "http://") && !strings.HasPrefix(origin, "https://") {
			return fmt.Errorf("allowed origin %q must start with http:// or https://", origin)
		}
	case 1:
	default:
		return fmt.Errorf("allowed origin %q may contain at most one '*'", origin)
	}
	return nil
}
