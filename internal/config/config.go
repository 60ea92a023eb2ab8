// Package config loads and validates process configuration from the
// environment (plus an optional .env file for local development).
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

// Config holds every environment-provided setting. The token signing secret
// is required: the process refuses to start without it rather than signing
// tokens with an empty key.
type Config struct {
	AppEnv string `mapstructure:"APP_ENV" validate:"required,oneof=development staging production test"`
	Port   string `mapstructure:"PORT" validate:"required"`

	MongoURI string `mapstructure:"MONGO_URI" validate:"required"`
	MongoDB  string `mapstructure:"MONGO_DB" validate:"required"`

	JWTSecret    string        `mapstructure:"JWT_SECRET" validate:"required,min=16"`
	JWTExpiresIn time.Duration `mapstructure:"JWT_EXPIRES_IN" validate:"required"`

	AllowRegister bool   `mapstructure:"ALLOW_REGISTER"`
	ClientOrigins string `mapstructure:"CLIENT_ORIGINS" validate:"required"`

	BodyLimitMB  int `mapstructure:"BODY_LIMIT_MB" validate:"gte=1,lte=100"`
	MaxUploadMB  int `mapstructure:"MAX_UPLOAD_MB" validate:"gte=1,lte=50"`
	MaxBatchSize int `mapstructure:"MAX_BATCH_SIZE" validate:"gte=1,lte=20"`

	MinioEndpoint  string `mapstructure:"MINIO_ENDPOINT"`
	MinioAccessKey string `mapstructure:"MINIO_ACCESS_KEY"`
	MinioSecretKey string `mapstructure:"MINIO_SECRET_KEY"`
	MinioBucket    string `mapstructure:"MINIO_BUCKET" validate:"required"`
	MinioUseSSL    bool   `mapstructure:"MINIO_USE_SSL"`
	MinioPublicURL string `mapstructure:"MINIO_PUBLIC_URL"`

	LogLevel  string `mapstructure:"LOG_LEVEL" validate:"required,oneof=debug info warn error"`
	LogFormat string `mapstructure:"LOG_FORMAT" validate:"required,oneof=json console"`

	ShutdownTimeout time.Duration `mapstructure:"SHUTDOWN_TIMEOUT" validate:"required"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// MediaConfigured reports whether all three media host credentials are set.
// The upload relay falls back to inline data URLs when they are not.
func (c *Config) MediaConfigured() bool {
	return c.MinioEndpoint != "" && c.MinioAccessKey != "" && c.MinioSecretKey != ""
}

// Origins returns the CORS allowlist as a slice.
func (c *Config) Origins() []string {
	parts := strings.Split(c.ClientOrigins, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// IsProduction reports whether the process runs with production hardening
// (no stack traces in error responses).
func (c *Config) IsProduction() bool { return c.AppEnv == "production" }

// Load reads configuration from the environment, applies defaults, and
// validates the result.
func Load() (*Config, error) {
	// .env is optional; real deployments set env vars directly.
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("APP_ENV", "development")
	v.SetDefault("PORT", "5000")
	v.SetDefault("MONGO_DB", "portfolio")
	v.SetDefault("JWT_EXPIRES_IN", "168h")
	v.SetDefault("ALLOW_REGISTER", false)
	v.SetDefault("CLIENT_ORIGINS", "http://localhost:3000,http://localhost:5173")
	v.SetDefault("BODY_LIMIT_MB", 50)
	v.SetDefault("MAX_UPLOAD_MB", 5)
	v.SetDefault("MAX_BATCH_SIZE", 10)
	v.SetDefault("MINIO_BUCKET", "portfolio")
	v.SetDefault("MINIO_USE_SSL", false)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
	v.SetDefault("SHUTDOWN_TIMEOUT", "15s")

	keys := []string{
		"APP_ENV", "PORT", "MONGO_URI", "MONGO_DB",
		"JWT_SECRET", "JWT_EXPIRES_IN", "ALLOW_REGISTER", "CLIENT_ORIGINS",
		"BODY_LIMIT_MB", "MAX_UPLOAD_MB", "MAX_BATCH_SIZE",
		"MINIO_ENDPOINT", "MINIO_ACCESS_KEY", "MINIO_SECRET_KEY",
		"MINIO_BUCKET", "MINIO_USE_SSL", "MINIO_PUBLIC_URL",
		"LOG_LEVEL", "LOG_FORMAT", "SHUTDOWN_TIMEOUT",
	}
	for _, key := range keys {
		_ = v.BindEnv(key)
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("config unmarshal error: %w", err)
	}

	// Durations may arrive as strings from the environment.
	for _, d := range []struct {
		key  string
		dest *time.Duration
	}{
		{"JWT_EXPIRES_IN", &c.JWTExpiresIn},
		{"SHUTDOWN_TIMEOUT", &c.ShutdownTimeout},
	} {
		if s := v.GetString(d.key); s != "" {
			parsed, err := time.ParseDuration(s)
			if err != nil {
				return nil, fmt.Errorf("invalid %s: %w", d.key, err)
			}
			*d.dest = parsed
		}
	}

	if err := validate.Struct(&c); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &c, nil
}

// MustLoad loads configuration or exits the process.
func MustLoad() *Config {
	c, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	return c
}
