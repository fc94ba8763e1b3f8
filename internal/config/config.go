package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"crowdfund/internal/config/configs"
)

// Config aggregates all configuration sections for the application. Fields
// are populated from environment variables using the caarlos0/env library.
// The nested structs are tagged with envPrefix so their fields are parsed
// with the given prefix. See the individual types in the configs package
// for default values and options. Use Load to construct a Config.
type Config struct {
	// Env specifies the deployment environment (e.g. prod, dev). It is
	// attached to every log line.
	Env string `env:"ENV" envDefault:"prod"`

	HTTP     configs.HTTP     `envPrefix:"HTTP_"`
	Log      configs.Logger   `envPrefix:"LOG_"`
	Psql     configs.Postgres `envPrefix:"PSQL_"`
	Store    configs.Store    `envPrefix:"STORE_"`
	Campaign configs.Campaign `envPrefix:"CAMPAIGN_"`
	Auth     configs.Auth     `envPrefix:"AUTH_"`
}

// Load reads configuration from environment variables into a Config. The
// given .env files (or ./.env when none are given) are loaded first if
// they exist; variables already set in the environment take precedence.
func Load(files ...string) (Config, error) {
	var cfg Config
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return cfg, fmt.Errorf("load env file: %w", err)
	}
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	switch cfg.Store.Driver {
	case configs.StoreDriverPostgres, configs.StoreDriverMemory:
	default:
		return cfg, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
	}
	return cfg, nil
}
