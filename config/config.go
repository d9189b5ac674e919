package config

import (
	"fmt"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

type Config struct {
	Port        string `env:"PORT" envDefault:"3000"`
	Env         string `env:"ENV" envDefault:"development"`
	MongoURI    string `env:"MONGO_URI,required"`
	MongoDB     string `env:"MONGO_DB" envDefault:"exercise_tracker"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	CORSOrigins string `env:"CORS_ORIGINS" envDefault:"*"`
}

var AppConfig *Config

// Load reads configuration from the environment, with a .env file as an
// optional local override.
func Load() error {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("failed to parse configuration: %w", err)
	}

	AppConfig = cfg
	return nil
}
