package configs

import "time"

// Auth configures the HS256 bearer tokens that identify callers.
type Auth struct {
	Secret   string        `env:"SECRET,required,unset"`
	Issuer   string        `env:"ISSUER" envDefault:"crowdfund"`
	TokenTTL time.Duration `env:"TOKEN_TTL" envDefault:"24h"`
}
