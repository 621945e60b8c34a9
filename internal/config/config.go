// Package config loads and validates the application configuration.
//
// Configuration comes from environment variables with the STOREFRONT_
// prefix (a local .env file is loaded automatically when present). Koanf
// maps the variables onto nested structs using "." as the key delimiter,
// e.g. STOREFRONT_SERVER.PORT -> Config.Server.Port, and validator tags
// enforce that required values are present so the process fails fast on a
// broken environment.
package config

import (
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	// Side-effect import: loads a .env file into the process environment
	// before any variable is read.
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
	"github.com/rs/zerolog"
)

// envPrefix is stripped from environment variable names before mapping
// them onto the config structs.
const envPrefix = "STOREFRONT_"

// Config is the root configuration object.
//
// Observability and RateLimit are pointers because they are optional;
// defaults are injected when they are absent.
type Config struct {
	Primary       Primary              `koanf:"primary" validate:"required"`
	Server        ServerConfig         `koanf:"server" validate:"required"`
	Database      DatabaseConfig       `koanf:"database" validate:"required"`
	Redis         RedisConfig          `koanf:"redis" validate:"required"`
	Email         EmailConfig          `koanf:"email"`
	RateLimit     *RateLimitConfig     `koanf:"rate_limit"`
	Observability *ObservabilityConfig `koanf:"observability"`
}

// Primary identifies the runtime environment ("local", "development",
// "production"). Used to tag logs and to switch dev-only behavior such as
// SQL query logging.
type Primary struct {
	Env string `koanf:"env" validate:"required"`
}

// ServerConfig groups HTTP server settings. Timeouts are in seconds.
type ServerConfig struct {
	Port               string   `koanf:"port" validate:"required"`
	ReadTimeout        int      `koanf:"read_timeout" validate:"required"`
	WriteTimeout       int      `koanf:"write_timeout" validate:"required"`
	IdleTimeout        int      `koanf:"idle_timeout" validate:"required"`
	CORSAllowedOrigins []string `koanf:"cors_allowed_origins" validate:"required"`
}

// DatabaseConfig contains PostgreSQL connection parameters and pool tuning.
type DatabaseConfig struct {
	Host            string `koanf:"host" validate:"required"`
	Port            int    `koanf:"port" validate:"required"`
	User            string `koanf:"user" validate:"required"`
	Password        string `koanf:"password" validate:"required"`
	Name            string `koanf:"name" validate:"required"`
	SSLMode         string `koanf:"ssl_mode" validate:"required"`
	MaxOpenConns    int    `koanf:"max_open_conns" validate:"required"`
	MaxIdleConns    int    `koanf:"max_idle_conns" validate:"required"`
	ConnMaxLifetime int    `koanf:"conn_max_lifetime" validate:"required"`
	ConnMaxIdleTime int    `koanf:"conn_max_idle_time" validate:"required"`
}

// RedisConfig contains Redis connection details ("host:port"). Redis backs
// the job queue and the rate limiter.
type RedisConfig struct {
	Address string `koanf:"address" validate:"required"`
}

// EmailConfig configures outbound email. An empty ResendAPIKey disables
// sending (order confirmations are then skipped with a log line).
type EmailConfig struct {
	FromAddress  string `koanf:"from_address"`
	ResendAPIKey string `koanf:"resend_api_key"`
}

// RateLimitConfig configures the per-client request limiter.
// WindowSeconds is the fixed window length.
type RateLimitConfig struct {
	Enabled       bool `koanf:"enabled"`
	Requests      int  `koanf:"requests" validate:"omitempty,min=1"`
	WindowSeconds int  `koanf:"window_seconds" validate:"omitempty,min=1"`
}

// DefaultRateLimitConfig is used when no rate_limit block is configured.
func DefaultRateLimitConfig() *RateLimitConfig {
	return &RateLimitConfig{
		Enabled:       true,
		Requests:      120,
		WindowSeconds: 60,
	}
}

// Load reads, validates and defaults the configuration.
//
// Any failure here is fatal: a service with broken config should not come
// up half-working, so errors are logged and the process exits.
func Load() (*Config, error) {
	// Config loading runs before the main logger exists, so use a minimal
	// console logger for startup errors.
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	k := koanf.New(".")

	err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil)
	if err != nil {
		logger.Fatal().Err(err).Msg("could not load environment variables")
	}

	mainConfig := &Config{}
	if err := k.Unmarshal("", mainConfig); err != nil {
		logger.Fatal().Err(err).Msg("could not unmarshal config")
	}

	validate := validator.New()
	if err := validate.Struct(mainConfig); err != nil {
		logger.Fatal().Err(err).Msg("config validation failed")
	}

	if mainConfig.RateLimit == nil {
		mainConfig.RateLimit = DefaultRateLimitConfig()
	}

	if mainConfig.Observability == nil {
		mainConfig.Observability = DefaultObservabilityConfig()
	}

	// The service name is fixed; the environment label always follows
	// primary.env so telemetry cannot disagree with the runtime.
	mainConfig.Observability.ServiceName = "storefront"
	mainConfig.Observability.Environment = mainConfig.Primary.Env

	if err := mainConfig.Observability.Validate(); err != nil {
		logger.Fatal().Err(err).Msg("invalid observability config")
	}

	return mainConfig, nil
}
