package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	Addr     string `env:"ADDR" envDefault:":8080"`
	TickRate int    `env:"TICK_RATE" envDefault:"60"`
	LogDev   bool   `env:"LOG_DEV" envDefault:"false"`
}

// Load reads an optional .env file, then parses the environment. Missing
// variables fall back to defaults; a malformed value is an error.
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}
	if cfg.TickRate <= 0 {
		return Config{}, fmt.Errorf("TICK_RATE must be positive, got %d", cfg.TickRate)
	}
	return cfg, nil
}
