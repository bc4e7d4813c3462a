package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config is the API server configuration.
type Config struct {
	ServiceName    string        `mapstructure:"SERVICE_NAME"`
	HTTPPort       string        `mapstructure:"HTTP_PORT"`
	MongoURI       string        `mapstructure:"MONGO_URI"`
	MongoDatabase  string        `mapstructure:"MONGO_DATABASE"`
	MongoTimeout   time.Duration `mapstructure:"MONGO_CONNECT_TIMEOUT"`
	RedisAddress   string        `mapstructure:"REDIS_ADDRESS"`
	RedisPassword  string        `mapstructure:"REDIS_PASSWORD"`
	RedisDB        int           `mapstructure:"REDIS_DB"`
	CacheTTL       time.Duration `mapstructure:"CACHE_TTL"`
	NATSURL        string        `mapstructure:"NATS_URL"`
	NATSTimeout    time.Duration `mapstructure:"NATS_CONNECT_TIMEOUT"`
	CategoriesFile string        `mapstructure:"CATEGORIES_FILE"`
	CORSOrigins    string        `mapstructure:"CORS_ORIGINS"`
	MaxBodyBytes   int64         `mapstructure:"MAX_BODY_BYTES"`
	SubmitRate     float64       `mapstructure:"SUBMIT_RATE_LIMIT"`
	SubmitBurst    int           `mapstructure:"SUBMIT_RATE_BURST"`
	OTLPEndpoint   string        `mapstructure:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	ShutdownGrace  time.Duration `mapstructure:"SHUTDOWN_GRACE"`
}

// AllowedOrigins splits CORS_ORIGINS on commas.
func (c *Config) AllowedOrigins() []string {
	var out []string
	for _, o := range strings.Split(c.CORSOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}

// LoadConfig reads .env (if present), then the environment, over defaults.
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	v := viper.New()
	v.SetDefault("SERVICE_NAME", "property-service")
	v.SetDefault("HTTP_PORT", "5000")
	v.SetDefault("MONGO_URI", "mongodb://localhost:27017")
	v.SetDefault("MONGO_DATABASE", "property-listing")
	v.SetDefault("MONGO_CONNECT_TIMEOUT", "10s")
	v.SetDefault("REDIS_ADDRESS", "")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("CACHE_TTL", "5m")
	v.SetDefault("NATS_URL", "")
	v.SetDefault("NATS_CONNECT_TIMEOUT", "5s")
	v.SetDefault("CATEGORIES_FILE", "")
	v.SetDefault("CORS_ORIGINS", "http://localhost:3000,http://localhost:5173")
	v.SetDefault("MAX_BODY_BYTES", 50<<20)
	v.SetDefault("SUBMIT_RATE_LIMIT", 5.0)
	v.SetDefault("SUBMIT_RATE_BURST", 10)
	v.SetDefault("OTEL_EXPORTER_OTLP_ENDPOINT", "")
	v.SetDefault("SHUTDOWN_GRACE", "15s")
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
