package config

import (
	"context"
	"errors"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port        string `env:"PORT,        default=8080"`
	Env         string `env:"ENV,         default=development"`
	JWTSecret   string `env:"SECRET_KEY"`
	TokenTTLMin int    `env:"TOKEN_TTL_MINUTES, default=20"`
	LogLevel    string `env:"LOG_LEVEL,   default=info"`
	FrontendURL string `env:"FRONTEND_URL, default=http://localhost:5173"`

	Mongo MongoConfig
	Redis RedisConfig
	Media MediaConfig
	SMTP  SMTPConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=portfolio_cms"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

type MediaConfig struct {
	Endpoint  string `env:"MEDIA_ENDPOINT,   default=localhost:9000"`
	AccessKey string `env:"MEDIA_ACCESS_KEY"`
	SecretKey string `env:"MEDIA_SECRET_KEY"`
	Bucket    string `env:"MEDIA_BUCKET,     default=portfolio-assets"`
	UseSSL    bool   `env:"MEDIA_USE_SSL,    default=false"`
	// PublicBaseURL overrides the URL prefix for stored objects (e.g. a CDN
	// in front of the bucket). Empty means endpoint/bucket.
	PublicBaseURL string `env:"MEDIA_PUBLIC_BASE_URL"`
}

type SMTPConfig struct {
	Host string `env:"SMTP_HOST, default=localhost"`
	Port string `env:"SMTP_PORT, default=1025"`
	From string `env:"SMTP_FROM, default=noreply@litoportfolio.space"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}

// Validate enforces startup-time requirements. A missing signing secret is a
// boot failure, never a per-request one.
func (c *Config) Validate() error {
	if c.JWTSecret == "" {
		return errors.New("config: SECRET_KEY is required")
	}
	return nil
}
