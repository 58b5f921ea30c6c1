package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Cache backend identifiers.
const (
	CacheBackendMemory = "memory"
	CacheBackendRedis  = "redis"
)

type Config struct {
	Server    ServerConfig
	YouTube   YouTubeConfig
	Cache     CacheConfig
	Redis     RedisConfig
	Auth      AuthConfig
	Telemetry TelemetryConfig
	RabbitMQ  RabbitMQConfig
	Log       LogConfig
}

type ServerConfig struct {
	Port            int           `envconfig:"API_PORT" default:"8080"`
	ReadTimeout     time.Duration `envconfig:"API_READ_TIMEOUT" default:"10s"`
	WriteTimeout    time.Duration `envconfig:"API_WRITE_TIMEOUT" default:"30s"`
	ShutdownTimeout time.Duration `envconfig:"API_SHUTDOWN_TIMEOUT" default:"10s"`
}

// YouTubeConfig configures the upstream playlist. An empty APIKey selects fallback data.
type YouTubeConfig struct {
	ApplicationName    string        `envconfig:"YOUTUBE_APPLICATION_NAME" default:"liveshows"`
	APIKey             string        `envconfig:"YOUTUBE_API_KEY"`
	PlaylistID         string        `envconfig:"YOUTUBE_PLAYLIST_ID" default:"PL0M0zPgJ3HSftTAAHttA3JQU4vOjXFquF"`
	BaseURL            string        `envconfig:"YOUTUBE_BASE_URL" default:"https://www.googleapis.com/youtube/v3"`
	Timeout            time.Duration `envconfig:"YOUTUBE_TIMEOUT" default:"10s"`
	SkipMalformedItems bool          `envconfig:"YOUTUBE_SKIP_MALFORMED_ITEMS" default:"false"`
}

// Configured reports whether an upstream credential is present.
func (c YouTubeConfig) Configured() bool {
	return c.APIKey != ""
}

type CacheConfig struct {
	Backend         string        `envconfig:"CACHE_BACKEND" default:"memory"`
	TTL             time.Duration `envconfig:"CACHE_TTL" default:"24h"`
	BypassRefreshes bool          `envconfig:"CACHE_BYPASS_REFRESHES" default:"false"`
	CoalesceRefresh bool          `envconfig:"CACHE_COALESCE_REFRESH" default:"false"`
}

type RedisConfig struct {
	Host     string `envconfig:"REDIS_HOST" default:"localhost"`
	Port     int    `envconfig:"REDIS_PORT" default:"6379"`
	Password string `envconfig:"REDIS_PASSWORD"`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

func (c RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// AuthConfig lists the bearer tokens that identify authenticated admins.
type AuthConfig struct {
	AdminTokens []string `envconfig:"ADMIN_TOKENS"`
}

type TelemetryConfig struct {
	AMQPEnabled bool `envconfig:"TELEMETRY_AMQP_ENABLED" default:"false"`
}

type RabbitMQConfig struct {
	Host     string `envconfig:"RABBITMQ_HOST" default:"localhost"`
	Port     int    `envconfig:"RABBITMQ_PORT" default:"5672"`
	User     string `envconfig:"RABBITMQ_USER" default:"liveshows"`
	Password string `envconfig:"RABBITMQ_PASSWORD" default:"liveshows"`
	VHost    string `envconfig:"RABBITMQ_VHOST" default:"/"`
}

func (c RabbitMQConfig) URL() string {
	return fmt.Sprintf(
		"amqp://%s:%s@%s:%d%s",
		c.User, c.Password, c.Host, c.Port, c.VHost,
	)
}

type LogConfig struct {
	Level string `envconfig:"LOG_LEVEL" default:"info"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.Cache.Backend {
	case CacheBackendMemory, CacheBackendRedis:
	default:
		return fmt.Errorf("invalid CACHE_BACKEND %q: must be %q or %q", c.Cache.Backend, CacheBackendMemory, CacheBackendRedis)
	}
	if c.Cache.TTL <= 0 {
		return fmt.Errorf("invalid CACHE_TTL %v: must be positive", c.Cache.TTL)
	}
	if c.YouTube.Configured() && c.YouTube.PlaylistID == "" {
		return fmt.Errorf("YOUTUBE_PLAYLIST_ID is required when YOUTUBE_API_KEY is set")
	}
	return nil
}
