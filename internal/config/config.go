// Package config defines the server's environment configuration.
package config

import (
	"time"

	"github.com/miguelangelabou/globosanabell/pkg/database"
)

// Config is the full server configuration, loaded from the environment.
type Config struct {
	ServiceName     string        `env:"SERVICE_NAME" envDefault:"globosanabell"`
	Environment     string        `env:"ENVIRONMENT" envDefault:"development"`
	LogLevel        string        `env:"LOG_LEVEL" envDefault:"info"`
	HTTPPort        int           `env:"HTTP_PORT" envDefault:"8080"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"15s"`
	AllowedOrigins  []string      `env:"ALLOWED_ORIGINS" envSeparator:","`
	RateLimitRPS    int           `env:"RATE_LIMIT_RPS" envDefault:"50"`
	RateLimitBurst  int           `env:"RATE_LIMIT_BURST" envDefault:"100"`

	Postgres database.PostgresConfig
	Redis    database.RedisConfig

	Kafka KafkaConfig
	Auth  AuthConfig
	Media MediaConfig
	GeoIP GeoIPConfig
}

// KafkaConfig controls event publishing. When disabled, events are
// dropped instead of published.
type KafkaConfig struct {
	Enabled bool     `env:"KAFKA_ENABLED" envDefault:"false"`
	Brokers []string `env:"KAFKA_BROKERS" envSeparator:"," envDefault:"localhost:9092"`
	Topic   string   `env:"KAFKA_TOPIC" envDefault:"globosanabell.events"`
}

// AuthConfig controls admin JWT issuing.
type AuthConfig struct {
	JWTSecret  string        `env:"JWT_SECRET,required"`
	Issuer     string        `env:"JWT_ISSUER" envDefault:"globosanabell"`
	AccessTTL  time.Duration `env:"JWT_ACCESS_TTL" envDefault:"15m"`
	RefreshTTL time.Duration `env:"JWT_REFRESH_TTL" envDefault:"720h"`
}

// MediaConfig holds Cloudinary credentials. Uploads are disabled when
// the cloud name is empty.
type MediaConfig struct {
	CloudName string `env:"CLOUDINARY_CLOUD_NAME"`
	APIKey    string `env:"CLOUDINARY_API_KEY"`
	APISecret string `env:"CLOUDINARY_API_SECRET"`
}

// GeoIPConfig holds the ipinfo.io token (optional).
type GeoIPConfig struct {
	Token string `env:"IPINFO_TOKEN"`
}
