package infra

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds everything read from the environment at startup. It is
// constructed once in main and passed by pointer into the services that
// need it; nothing mutates it afterwards.
type Config struct {
	DatabaseURL  string `env:"DATABASE_URL"`
	SecretKey    string `env:"SECRET_KEY,required"`
	Algorithm    string `env:"ALGORITHM" envDefault:"HS256"`
	MailServer   string `env:"MAIL_SERVER"`
	MailPort     int    `env:"MAIL_PORT" envDefault:"587"`
	MailUsername string `env:"MAIL_USERNAME"`
	MailPassword string `env:"MAIL_PASSWORD"`
	ServerURI    string `env:"SERVER_URI" envDefault:"http://localhost:8080"`
	Port         string `env:"PORT" envDefault:"8080"`
}

func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
