package config

import (
	"fmt"
	"time"

	"github.com/Abdurahmanit/GroupProject/property-service/internal/platform/logger"
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// ClientConfig configures the postad CLI and the engine it drives.
type ClientConfig struct {
	APIBaseURL         string        `yaml:"api_base_url" env:"API_BASE_URL" env-default:"http://localhost:5000"`
	HTTPTimeout        time.Duration `yaml:"http_timeout" env:"HTTP_TIMEOUT" env-default:"30s"`
	PhotoSlots         int           `yaml:"photo_slots" env:"PHOTO_SLOTS" env-default:"12"`
	NavCompactSize     int           `yaml:"nav_compact_size" env:"NAV_COMPACT_SIZE" env-default:"7"`
	GeolocationTimeout time.Duration `yaml:"geolocation_timeout" env:"GEOLOCATION_TIMEOUT" env-default:"10s"`
	AutoCloseDelay     time.Duration `yaml:"auto_close_delay" env:"AUTO_CLOSE_DELAY" env-default:"3s"`
	Log                logger.Config `yaml:",inline"`
}

// LoadClientConfig reads path when given, otherwise the environment only.
func LoadClientConfig(path string) (*ClientConfig, error) {
	_ = godotenv.Load()

	var cfg ClientConfig
	var err error
	if path == "" {
		err = cleanenv.ReadEnv(&cfg)
	} else {
		err = cleanenv.ReadConfig(path, &cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("cannot load client config: %w", err)
	}
	if cfg.PhotoSlots < 1 || cfg.PhotoSlots > 20 {
		return nil, fmt.Errorf("PHOTO_SLOTS must be between 1 and 20, got %d", cfg.PhotoSlots)
	}
	cfg.Log = cfg.Log.WithDefaults(logger.CLIDefaults)
	return &cfg, nil
}
