package bridge

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"vizcast/internal/smartcast"
)

// Config holds the bridge daemon settings, loaded from the environment
// (with .env support) so the bridge can run as a container sidecar.
type Config struct {
	BindAddr    string        `envconfig:"BIND_ADDR" default:":8200"`
	DeviceClass string        `envconfig:"DEVICE_CLASS" default:"tv"`
	AuthToken   string        `envconfig:"AUTH_TOKEN"`
	Timeout     time.Duration `envconfig:"TIMEOUT" default:"5s"`
	CacheSize   int           `envconfig:"DEVICE_CACHE_SIZE" default:"32"`
}

// LoadConfig reads the bridge configuration from the environment,
// loading a .env file first when one is present.
func LoadConfig() (Config, error) {
	// Missing .env is fine; real environments set variables directly.
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("vizcast", &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse environment config: %w", err)
	}

	if _, err := smartcast.ParseDeviceClass(cfg.DeviceClass); err != nil {
		return Config{}, err
	}
	if cfg.CacheSize < 1 {
		cfg.CacheSize = 1
	}
	return cfg, nil
}
