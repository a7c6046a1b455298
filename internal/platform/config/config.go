// Package config loads server settings from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	DBDSN         string        `env:"DELTALAND_DB_DSN,required"`
	ListenAddr    string        `env:"DELTALAND_LISTEN_ADDR" envDefault:":8080"`
	MigrationsDir string        `env:"DELTALAND_MIGRATIONS_DIR" envDefault:"./migrations"`
	TickInterval  time.Duration `env:"DELTALAND_TICK_INTERVAL" envDefault:"1s"`
}

func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
