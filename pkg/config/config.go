package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// APIServerConfig represents the helisync API server configuration
type APIServerConfig struct {
	Server     ServerConfig     `mapstructure:"server"`
	Database   DatabaseConfig   `mapstructure:"database"`
	Auth       AuthConfig       `mapstructure:"auth"`
	Provider   ProviderConfig   `mapstructure:"provider"`
	Cache      CacheConfig      `mapstructure:"cache"`
	RateLimit  RateLimitConfig  `mapstructure:"rate_limit"`
	Monitoring MonitoringConfig `mapstructure:"monitoring"`
	Logging    LoggingConfig    `mapstructure:"logging"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port" validate:"gt=0,lte=65535"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	IdleTimeout     time.Duration `mapstructure:"idle_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// DatabaseConfig contains database connection and pool settings
type DatabaseConfig struct {
	Host     string `mapstructure:"host" validate:"required"`
	Port     int    `mapstructure:"port" validate:"gt=0,lte=65535"`
	User     string `mapstructure:"user" validate:"required"`
	Password string `mapstructure:"password"`
	Database string `mapstructure:"database" validate:"required"`
	SSLMode  string `mapstructure:"ssl_mode" validate:"oneof=disable require verify-ca verify-full"`

	// Pool settings. Requests wait for a free connection once MaxOpenConns is reached.
	MaxOpenConns int           `mapstructure:"max_open_conns" validate:"gt=0"`
	MaxIdleTime  time.Duration `mapstructure:"max_idle_time"`
	DialTimeout  time.Duration `mapstructure:"dial_timeout"`
}

// AuthConfig contains bearer token settings
type AuthConfig struct {
	// JWTSecretEnv names the environment variable that holds the HMAC secret.
	JWTSecretEnv  string        `mapstructure:"jwt_secret_env" validate:"required"`
	Issuer        string        `mapstructure:"issuer"`
	TokenTTL      time.Duration `mapstructure:"token_ttl"`
	SeedDemoUsers bool          `mapstructure:"seed_demo_users"`
}

// ProviderConfig contains the webhook provider (Helius) settings
type ProviderConfig struct {
	BaseURL          string        `mapstructure:"base_url" validate:"required,url"`
	APIKeyEnv        string        `mapstructure:"api_key_env" validate:"required"`
	TransactionTypes []string      `mapstructure:"transaction_types"`
	Timeout          time.Duration `mapstructure:"timeout"`
}

// CacheConfig contains in-memory cache settings
type CacheConfig struct {
	UserSize int           `mapstructure:"user_size" validate:"gt=0"`
	UserTTL  time.Duration `mapstructure:"user_ttl"`
}

// RateLimitConfig limits the unauthenticated auth endpoints per client IP
type RateLimitConfig struct {
	Requests int           `mapstructure:"requests" validate:"gt=0"`
	Window   time.Duration `mapstructure:"window"`
	Burst    int           `mapstructure:"burst" validate:"gt=0"`
}

// MonitoringConfig contains monitoring and metrics settings
type MonitoringConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level      string `mapstructure:"level" validate:"oneof=debug info warn error"`
	Format     string `mapstructure:"format" validate:"oneof=json console"`
	OutputPath string `mapstructure:"output_path"`
}

// DefaultTransactionTypes are subscribed to when the config does not list any.
var DefaultTransactionTypes = []string{"NFT_SALE", "NFT_BID", "TOKEN_TRANSFER"}

// EnvPrefix prefixes environment overrides, e.g. HELISYNC_SERVER_PORT.
const EnvPrefix = "HELISYNC"

// LoadAPIServer loads API server configuration from file.
// A .env file in the working directory is loaded first (if present) and
// ${VAR} references in the YAML are expanded from the environment.
func LoadAPIServer(configPath string) (*APIServerConfig, error) {
	_ = godotenv.Load()

	raw, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	return ParseAPIServer(raw)
}

// ParseAPIServer parses a YAML document on top of the defaults, applies
// HELISYNC_* environment overrides and validates the result.
func ParseAPIServer(raw []byte) (*APIServerConfig, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Set API server defaults
	setAPIServerDefaults(v)

	if err := v.ReadConfig(strings.NewReader(os.ExpandEnv(string(raw)))); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	var config APIServerConfig
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateAPIServer(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func setAPIServerDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", "30s")
	v.SetDefault("server.write_timeout", "30s")
	v.SetDefault("server.idle_timeout", "60s")
	v.SetDefault("server.shutdown_timeout", "30s")

	// Database defaults
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "")
	v.SetDefault("database.password", "")
	v.SetDefault("database.database", "helisync")
	v.SetDefault("database.ssl_mode", "disable")
	v.SetDefault("database.max_open_conns", 10)
	v.SetDefault("database.max_idle_time", "20s")
	v.SetDefault("database.dial_timeout", "10s")

	// Auth defaults
	v.SetDefault("auth.jwt_secret_env", "JWT_SECRET")
	v.SetDefault("auth.issuer", "helisync")
	v.SetDefault("auth.token_ttl", "168h")
	v.SetDefault("auth.seed_demo_users", false)

	// Provider defaults
	v.SetDefault("provider.base_url", "https://api.helius.xyz")
	v.SetDefault("provider.api_key_env", "HELIUS_API_KEY")
	v.SetDefault("provider.transaction_types", DefaultTransactionTypes)
	v.SetDefault("provider.timeout", "30s")

	// Cache defaults
	v.SetDefault("cache.user_size", 1024)
	v.SetDefault("cache.user_ttl", "1m")

	// Rate limit defaults
	v.SetDefault("rate_limit.requests", 5)
	v.SetDefault("rate_limit.window", "1m")
	v.SetDefault("rate_limit.burst", 5)

	// Monitoring defaults
	v.SetDefault("monitoring.enabled", true)

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
	v.SetDefault("logging.output_path", "stdout")
}

func validateAPIServer(config *APIServerConfig) error {
	if config.Database.User == "" {
		return fmt.Errorf("database.user is required")
	}
	if len(config.Provider.TransactionTypes) == 0 {
		return fmt.Errorf("provider.transaction_types must not be empty")
	}
	return validator.New().Struct(config)
}
