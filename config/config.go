package config

import (
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds runtime settings loaded from the environment.
type Config struct {
	HTTPAddr      string `envconfig:"HTTP_ADDR" default:":8080"`
	StorageDriver string `envconfig:"STORAGE_DRIVER" default:"sqlite"` // sqlite|postgres|file|memory
	DatabaseURL   string `envconfig:"DATABASE_URL" default:"caretrack.db"`
	DataDir       string `envconfig:"DATA_DIR" default:"./data"`
	StorePrefix   string `envconfig:"STORE_PREFIX" default:"caretrack"`
	JWTSecret     string `envconfig:"JWT_SECRET" required:"true"`
	LogLevel      string `envconfig:"LOG_LEVEL" default:"info"`
}

// Load reads .env when present, then processes environment variables.
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
