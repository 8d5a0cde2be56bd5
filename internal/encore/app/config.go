package app

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/aussiebroadwan/encore/pkg/httpx"
)

// Config holds every runtime setting. Values come from the defaults, then the
// optional TOML file named by ENCORE_CONFIG_FILE, then the environment.
type Config struct {
	Issuer              string        `toml:"issuer"`                // issuer claim for tokens (default: encore)
	Algorithm           string        `toml:"algorithm"`             // HS256 or EdDSA (default: HS256)
	JWTSecret           string        `toml:"jwt_secret"`            // HS256 secret; wins over JWTSecretFile
	JWTSecretFile       string        `toml:"jwt_secret_file"`       // HS256 secret file, created on first start (default: ./jwt_secret)
	SigningKeyFile      string        `toml:"signing_key_file"`      // EdDSA key file; empty keeps the key in memory only
	TokenTTL            time.Duration `toml:"token_ttl"`             // full tokens (default: 15m)
	PartialTokenTTL     time.Duration `toml:"partial_token_ttl"`     // partial tokens between login steps (default: 2m)
	RequirePartialToken bool          `toml:"require_partial_token"` // second login step demands the partial token (default: true)
	TOTPIssuer          string        `toml:"totp_issuer"`           // label in authenticator apps (default: Encore)
	PendingSetupTTL     time.Duration `toml:"pending_setup_ttl"`     // unconfirmed 2FA setups expire after this (default: 10m)

	DatabaseFile string `toml:"database_file"` // SQLite database file (default: ./encore.db)
	PepperFile   string `toml:"pepper_file"`   // password pepper file (default: ./pepper)

	Env                  string        `toml:"env"`                   // dev, staging, prod (default: dev)
	LogLevel             string        `toml:"log_level"`             // debug, info, warn, error (default: info)
	LogFormat            string        `toml:"log_format"`            // json, text (default: json)
	Port                 int           `toml:"port"`                  // HTTP port (default: 8080)
	ShutdownGracePeriod  time.Duration `toml:"shutdown_grace_period"` // (default: 10s)
	HousekeepingInterval time.Duration `toml:"housekeeping_interval"` // (default: 1h)
	MetricsEnabled       bool          `toml:"metrics_enabled"`       // serve /metrics (default: true)

	// RateLimits per endpoint class, overridable with RATELIMIT_* env vars.
	RateLimits httpx.Limits `toml:"rate_limits"`
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() Config {
	return Config{
		Issuer:               "encore",
		Algorithm:            "HS256",
		JWTSecretFile:        "jwt_secret",
		TokenTTL:             15 * time.Minute,
		PartialTokenTTL:      2 * time.Minute,
		RequirePartialToken:  true,
		TOTPIssuer:           "Encore",
		PendingSetupTTL:      10 * time.Minute,
		DatabaseFile:         "encore.db",
		PepperFile:           "pepper",
		Env:                  "dev",
		LogLevel:             "info",
		LogFormat:            "json",
		Port:                 8080,
		ShutdownGracePeriod:  10 * time.Second,
		HousekeepingInterval: 1 * time.Hour,
		MetricsEnabled:       true,
		RateLimits:           httpx.DefaultLimits(),
	}
}

// LoadConfig builds the configuration. Only a broken config file or an
// unsupported algorithm is an error; malformed env values keep the previous
// value.
func LoadConfig() (Config, error) {
	cfg := DefaultConfig()

	if path := os.Getenv("ENCORE_CONFIG_FILE"); path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	cfg.Issuer = getEnvOrDefault("AUTH_ISSUER", cfg.Issuer)
	cfg.Algorithm = getEnvOrDefault("AUTH_ALGORITHM", cfg.Algorithm)
	cfg.JWTSecret = getEnvOrDefault("AUTH_JWT_SECRET", cfg.JWTSecret)
	cfg.JWTSecretFile = getEnvOrDefault("AUTH_JWT_SECRET_FILE", cfg.JWTSecretFile)
	cfg.SigningKeyFile = getEnvOrDefault("AUTH_SIGNING_KEY_FILE", cfg.SigningKeyFile)
	cfg.TokenTTL = getEnvDurationOrDefault("AUTH_TOKEN_TTL", cfg.TokenTTL)
	cfg.PartialTokenTTL = getEnvDurationOrDefault("AUTH_PARTIAL_TOKEN_TTL", cfg.PartialTokenTTL)
	cfg.RequirePartialToken = getEnvBoolOrDefault("AUTH_REQUIRE_PARTIAL_TOKEN", cfg.RequirePartialToken)
	cfg.TOTPIssuer = getEnvOrDefault("AUTH_TOTP_ISSUER", cfg.TOTPIssuer)
	cfg.PendingSetupTTL = getEnvDurationOrDefault("AUTH_PENDING_SETUP_TTL", cfg.PendingSetupTTL)
	cfg.DatabaseFile = getEnvOrDefault("AUTH_DATABASE_FILE", cfg.DatabaseFile)
	cfg.PepperFile = getEnvOrDefault("AUTH_PEPPER_FILE", cfg.PepperFile)
	cfg.Env = getEnvOrDefault("ENV", cfg.Env)
	cfg.LogLevel = getEnvOrDefault("LOG_LEVEL", cfg.LogLevel)
	cfg.LogFormat = getEnvOrDefault("LOG_FORMAT", cfg.LogFormat)
	cfg.Port = getEnvIntOrDefault("PORT", cfg.Port)
	cfg.ShutdownGracePeriod = getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", cfg.ShutdownGracePeriod)
	cfg.HousekeepingInterval = getEnvDurationOrDefault("HOUSEKEEPING_INTERVAL", cfg.HousekeepingInterval)
	cfg.MetricsEnabled = getEnvBoolOrDefault("METRICS_ENABLED", cfg.MetricsEnabled)
	cfg.RateLimits = cfg.RateLimits.FromEnv()

	switch strings.ToUpper(cfg.Algorithm) {
	case "HS256":
		cfg.Algorithm = "HS256"
	case "EDDSA":
		cfg.Algorithm = "EdDSA"
	default:
		return Config{}, fmt.Errorf("unsupported signing algorithm %q", cfg.Algorithm)
	}

	return cfg, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if b, err := strconv.ParseBool(value); err == nil {
		return b
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	// Try parsing as duration (e.g., "1h", "30m", "90s")
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Try parsing as integer minutes (for backwards compatibility)
	if minutes, err := strconv.Atoi(value); err == nil {
		return time.Duration(minutes) * time.Minute
	}

	return defaultValue
}
