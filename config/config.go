package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// DefaultTickInterval is how long the storefront waits between applying pending cart units to stock.
const DefaultTickInterval = 1200 * time.Millisecond

var ErrInvalidTickInterval = errors.New("TICK_INTERVAL must be a positive duration")

// Config struct holds application configuration
type Config struct {
	Addr         string
	DatabaseURL  string
	CatalogURL   string
	TickInterval time.Duration
	LogLevel     string
	SeedDatabase bool
	// EnvFile reports whether a .env file was found and loaded.
	EnvFile bool
}

// AppConfig holds the application-wide configuration
var AppConfig Config

// Load reads an optional .env file and then the process environment into AppConfig.
func Load() error {
	envErr := godotenv.Load()

	cfg, err := FromEnv(os.Getenv)
	if err != nil {
		return err
	}
	cfg.EnvFile = envErr == nil
	AppConfig = cfg
	return nil
}

// FromEnv builds a Config from a lookup function, applying defaults for unset values.
func FromEnv(getenv func(string) string) (Config, error) {
	cfg := Config{
		Addr:         getenv("ADDR"),
		DatabaseURL:  getenv("DATABASE_URL"),
		CatalogURL:   getenv("CATALOG_URL"),
		LogLevel:     getenv("LOG_LEVEL"),
		TickInterval: DefaultTickInterval,
	}
	if cfg.Addr == "" {
		cfg.Addr = ":3000"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}

	if raw := getenv("TICK_INTERVAL"); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil || d <= 0 {
			return Config{}, fmt.Errorf("%w: %q", ErrInvalidTickInterval, raw)
		}
		cfg.TickInterval = d
	}

	if raw := getenv("SEED_DATABASE"); raw != "" {
		seed, err := strconv.ParseBool(raw)
		if err != nil {
			return Config{}, fmt.Errorf("SEED_DATABASE: %w", err)
		}
		cfg.SeedDatabase = seed
	}

	return cfg, nil
}
