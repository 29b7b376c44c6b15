package main

import (
	"flag"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds the demo server configuration.
type Config struct {
	Addr               string        `env:"SIGNIN_ADDR"                 envDefault:"localhost:8085"`
	DB                 string        `env:"SIGNIN_DB"                   envDefault:"file:signin.db"`
	GoogleClientID     string        `env:"SIGNIN_GOOGLE_CLIENT_ID"`
	GoogleClientSecret string        `env:"SIGNIN_GOOGLE_CLIENT_SECRET"`
	StateTTL           time.Duration `env:"SIGNIN_STATE_TTL"            envDefault:"10m"`
	Timeout            time.Duration `env:"SIGNIN_TIMEOUT"              envDefault:"2m"`
}

// ParseConfig reads the environment, then lets flags override it.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	fs.StringVar(&cfg.Addr, "addr", cfg.Addr, "HTTP listen address, also used for the OAuth redirect")
	fs.StringVar(&cfg.DB, "db", cfg.DB, "sqlite database holding pending OAuth states")
	fs.DurationVar(&cfg.Timeout, "timeout", cfg.Timeout, "how long to wait for the provider consent")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) RedirectURL() string {
	return "http://" + c.Addr + "/oauth/callback"
}
