package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server  ServerConfig
	Feed    FeedConfig
	Cache   CacheConfig
	Clicks  ClicksConfig
	Query   QueryConfig
	Contact ContactConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	Environment    string   `mapstructure:"environment"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// FeedConfig holds product feed source configuration. All sources are
// optional; the loader falls back to the builtin sample catalog when none is
// configured or reachable.
type FeedConfig struct {
	// CSVURL is a published CSV export fetched without authentication.
	CSVURL string `mapstructure:"csv_url"`

	// Service-account spreadsheet access.
	SpreadsheetID       string `mapstructure:"spreadsheet_id"`
	ServiceAccountEmail string `mapstructure:"service_account_email"`
	PrivateKey          string `mapstructure:"private_key"`
	PrivateKeyBase64    string `mapstructure:"private_key_base64"`

	// Tab selection. Tabs wins over Tab; with neither set and AutoTabs on,
	// the conventional category tab names are probed.
	Range      string   `mapstructure:"range"`
	Tab        string   `mapstructure:"tab"`
	Tabs       []string `mapstructure:"tabs"`
	IgnoreTabs []string `mapstructure:"ignore_tabs"`
	AutoTabs   bool     `mapstructure:"auto_tabs"`

	// LocalPath is the generated JSON fallback file.
	LocalPath string `mapstructure:"local_path"`

	// RequireAffiliate drops wide-schema agent variants without an affiliate URL.
	RequireAffiliate bool `mapstructure:"require_affiliate"`
}

// CacheConfig holds catalog snapshot cache configuration
type CacheConfig struct {
	TTL time.Duration `mapstructure:"ttl"`
}

// ClicksConfig holds click counter persistence configuration
type ClicksConfig struct {
	Path string `mapstructure:"path"`
}

// QueryConfig holds query engine limits
type QueryConfig struct {
	MaxPageSize     int `mapstructure:"max_page_size"`
	DefaultPageSize int `mapstructure:"default_page_size"`
}

// ContactConfig holds the contact form sheet target
type ContactConfig struct {
	SpreadsheetID string `mapstructure:"spreadsheet_id"`
	Tab           string `mapstructure:"tab"`
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()

	// Set config name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/repfinder/")

	// Environment variable settings
	v.SetEnvPrefix("REPFINDER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Set default values
	setDefaults(v)

	// Read config file (optional - will use env vars if file doesn't exist)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found; using environment variables and defaults
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	// Validate configuration
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.allowed_origins", []string{"*"})

	// Feed defaults
	v.SetDefault("feed.range", "A1:ZZ100000")
	v.SetDefault("feed.auto_tabs", true)
	v.SetDefault("feed.local_path", "data/products.json")
	v.SetDefault("feed.require_affiliate", false)

	// Cache defaults
	v.SetDefault("cache.ttl", "2m")

	// Clicks defaults
	v.SetDefault("clicks.path", ".data-clicks.json")

	// Query defaults
	v.SetDefault("query.max_page_size", 60)
	v.SetDefault("query.default_page_size", 24)

	// Contact defaults
	v.SetDefault("contact.tab", "Contact")
}

// validate validates the configuration. A completely unconfigured feed is
// valid: the loader serves the builtin sample catalog.
func validate(config *Config) error {
	if config.Server.Environment != "development" && config.Server.Environment != "production" {
		return fmt.Errorf("environment must be 'development' or 'production', got: %s", config.Server.Environment)
	}

	if config.Cache.TTL <= 0 {
		return fmt.Errorf("cache TTL must be positive, got: %s", config.Cache.TTL)
	}

	if config.Query.MaxPageSize < 1 {
		return fmt.Errorf("max page size must be at least 1, got: %d", config.Query.MaxPageSize)
	}

	if config.Query.DefaultPageSize < 1 || config.Query.DefaultPageSize > config.Query.MaxPageSize {
		return fmt.Errorf("default page size must be between 1 and %d, got: %d",
			config.Query.MaxPageSize, config.Query.DefaultPageSize)
	}

	return nil
}
