package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Port     string `default:"8080"`
	LogLevel string `split_words:"true" default:"info"`

	DatabaseURL  string        `split_words:"true"`
	QueryTimeout time.Duration `split_words:"true" default:"5s"`

	RedisAddr  string        `split_words:"true"`
	RankingTTL time.Duration `split_words:"true" default:"24h"`

	FirestoreProject string `split_words:"true"`

	// DefaultAlpha is the rotation bias used when a caller does not pick one.
	DefaultAlpha float64 `split_words:"true" default:"0.1"`
}

// Load reads an optional .env file and then WOODSHED_* environment variables.
func Load(files ...string) (Config, error) {
	var cfg Config
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return cfg, fmt.Errorf("loading env file: %w", err)
	}
	if err := envconfig.Process("woodshed", &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func ProvideConfig() Config {
	cfg, err := Load()
	if err != nil {
		log.Fatal(err.Error())
	}
	return cfg
}

var Options = ProvideConfig
