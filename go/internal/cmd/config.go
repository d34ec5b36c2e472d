package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/mcdev12/pelada/go/internal/clock"
	"github.com/mcdev12/pelada/go/internal/rankings"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Server struct {
		Port           int      `yaml:"port"`
		AllowedOrigins []string `yaml:"allowed_origins"`
	} `yaml:"server"`
	Log struct {
		Level string `yaml:"level"`
	} `yaml:"log"`
	// Timezone is the IANA zone used to interpret round and season dates
	Timezone string          `yaml:"timezone"`
	Rankings rankings.Limits `yaml:"rankings"`
}

func defaultConfig() *Config {
	cfg := &Config{
		Timezone: clock.DefaultZone,
		Rankings: rankings.DefaultLimits,
	}
	cfg.Server.Port = 8080
	cfg.Server.AllowedOrigins = []string{"*"}
	cfg.Log.Level = "info"
	return cfg
}

// loadConfig reads the YAML file at path over the defaults, then applies
// environment overrides. A missing file is not an error.
func loadConfig(path string) (*Config, error) {
	cfg := defaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("failed to read config file: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	cfg.Server.Port = getEnvAsInt("PORT", cfg.Server.Port)
	cfg.Timezone = getEnv("PELADA_TIMEZONE", cfg.Timezone)
	cfg.Log.Level = getEnv("LOG_LEVEL", cfg.Log.Level)
	if origins := os.Getenv("ALLOWED_ORIGINS"); origins != "" {
		cfg.Server.AllowedOrigins = strings.Split(origins, ",")
	}

	if _, err := clock.LoadLocation(cfg.Timezone); err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", cfg.Timezone, err)
	}
	if _, err := zerolog.ParseLevel(cfg.Log.Level); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.Log.Level, err)
	}
	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
