package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config is loaded from the environment (after godotenv in main).
// CatalogDB wins over CatalogURL when both are set; with neither, the
// embedded snapshot keeps the server bootable.
type Config struct {
	Port         string `env:"PORT" envDefault:"5175"`
	LogLevel     string `env:"LOG_LEVEL" envDefault:"info"`
	ClientOrigin string `env:"CLIENT_ORIGIN" envDefault:"http://localhost:5173"`
	CatalogURL   string `env:"CATALOG_URL"`
	CatalogDB    string `env:"CATALOG_DB"`
	KVPath       string `env:"KV_PATH" envDefault:"./data/coastle.db"`
	GameVariant  string `env:"GAME_VARIANT" envDefault:"coasters"`
}

func Load() (*Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}
	return &cfg, nil
}
