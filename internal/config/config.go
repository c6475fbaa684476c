package config

import (
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/fumr/tidalgo/session"
	"github.com/fumr/tidalgo/tidal"
)

// Config holds the settings the command-line tools need to build a
// session. Values come from the environment, optionally seeded from a
// .env-style file.
type Config struct {
	Token            string `env:"TIDAL_TOKEN"`
	CountryCode      string `env:"TIDAL_COUNTRY" env-default:"US"`
	PreferredQuality string `env:"TIDAL_PREFERRED_QUALITY" env-default:"LOSSLESS"`
	RequiredQuality  string `env:"TIDAL_REQUIRED_QUALITY" env-default:"LOW"`
	TimeoutSeconds   int    `env:"TIDAL_TIMEOUT" env-default:"60"`
}

// Load reads configuration from the environment. When path is non-empty
// the file is read first and the environment overrides it; a missing
// default file is not an error.
func Load(path string) (*Config, error) {
	var cfg Config
	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := cleanenv.ReadConfig(path, &cfg); err != nil {
				return nil, fmt.Errorf("config: read %s: %w", path, err)
			}
			return &cfg, nil
		}
	}
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config: read environment: %w", err)
	}
	return &cfg, nil
}

// SessionConfig converts the raw settings into a session.Config,
// validating the quality tiers.
func (c *Config) SessionConfig() (session.Config, error) {
	if c.Token == "" {
		return session.Config{}, fmt.Errorf("config: TIDAL_TOKEN is not set")
	}
	preferred, err := tidal.ParseQuality(c.PreferredQuality)
	if err != nil {
		return session.Config{}, fmt.Errorf("config: TIDAL_PREFERRED_QUALITY: %w", err)
	}
	required, err := tidal.ParseQuality(c.RequiredQuality)
	if err != nil {
		return session.Config{}, fmt.Errorf("config: TIDAL_REQUIRED_QUALITY: %w", err)
	}
	return session.Config{
		Token:            c.Token,
		CountryCode:      c.CountryCode,
		PreferredQuality: preferred,
		RequiredQuality:  required,
		Timeout:          time.Duration(c.TimeoutSeconds) * time.Second,
	}, nil
}
