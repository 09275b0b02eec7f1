// Package config loads server configuration from the environment.
package config

import (
	"log/slog"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/KirkDiggler/special-api/internal/errors"
)

// Config is the server configuration
type Config struct {
	GRPCPort      int        `env:"SPECIAL_GRPC_PORT" envDefault:"50051"`
	RedisAddr     string     `env:"SPECIAL_REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string     `env:"SPECIAL_REDIS_PASSWORD"`
	RedisDB       int        `env:"SPECIAL_REDIS_DB" envDefault:"0"`
	Locale        string     `env:"SPECIAL_LOCALE" envDefault:"en-US"`
	LogLevel      slog.Level `env:"SPECIAL_LOG_LEVEL" envDefault:"info"`
}

// Validate checks the loaded values
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateRange("SPECIAL_GRPC_PORT", c.GRPCPort, 1, 65535, vb)
	errors.ValidateRequired("SPECIAL_REDIS_ADDR", c.RedisAddr, vb)
	errors.ValidateNonNegative("SPECIAL_REDIS_DB", float64(c.RedisDB), vb)
	errors.ValidateRequired("SPECIAL_LOCALE", c.Locale, vb)

	return vb.Build()
}

// Load reads an optional dotenv file, then parses the environment. Variables
// already set in the environment win over the file.
func Load(dotenvPath string) (*Config, error) {
	if dotenvPath != "" {
		if err := godotenv.Load(dotenvPath); err != nil && !os.IsNotExist(err) {
			return nil, errors.Wrapf(err, "failed to load %s", dotenvPath)
		}
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse environment")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}
