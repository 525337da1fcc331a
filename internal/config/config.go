package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App struct {
		Name string `envconfig:"APP_NAME" default:"RentCredit"`
		Port int    `envconfig:"PORT" default:"8080"`
	}

	Server struct {
		Timeout    time.Duration `envconfig:"SERVER_TIMEOUT" default:"30s"`
		CORSOrigin string        `envconfig:"CORS_ORIGIN" default:"http://localhost:5173"`
	}

	Session struct {
		DBPath string `envconfig:"SESSION_DB_PATH" default:"data/session.db"`
		Secret string `envconfig:"SESSION_SECRET" default:"rentcredit-demo-secret"`
	}

	Export struct {
		Dir string `envconfig:"EXPORT_DIR" default:"exports"`
	}
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	return &cfg, nil
}
