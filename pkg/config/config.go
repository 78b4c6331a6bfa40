package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Port        string        `yaml:"port"`
	Env         string        `yaml:"env"`
	MetricsPort string        `yaml:"metrics_port"`
	LogLevel    string        `yaml:"log_level"`
	Explore     ExploreConfig `yaml:"explore"`
}

type ExploreConfig struct {
	DefaultLimit int `yaml:"default_limit"`
	MaxLimit     int `yaml:"max_limit"`
	TrendingSize int `yaml:"trending_size"`
}

func defaults() *Config {
	return &Config{
		Port:        "8080",
		Env:         "development",
		MetricsPort: "9090",
		LogLevel:    "info",
		Explore: ExploreConfig{
			DefaultLimit: 20,
			MaxLimit:     100,
			TrendingSize: 10,
		},
	}
}

// Load builds the configuration in layers: defaults, then the YAML file at path (if
// path is non-empty), then a .env file in the working directory, then the process
// environment.
func Load(path string) (*Config, error) {
	cfg := defaults()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	// Values already set in the environment win over .env.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	cfg.Port = getEnv("PORT", cfg.Port)
	cfg.Env = getEnv("ENV", cfg.Env)
	cfg.MetricsPort = getEnv("METRICS_PORT", cfg.MetricsPort)
	cfg.LogLevel = getEnv("LOG_LEVEL", cfg.LogLevel)

	var err error
	if cfg.Explore.DefaultLimit, err = getEnvInt("EXPLORE_DEFAULT_LIMIT", cfg.Explore.DefaultLimit); err != nil {
		return nil, err
	}
	if cfg.Explore.MaxLimit, err = getEnvInt("EXPLORE_MAX_LIMIT", cfg.Explore.MaxLimit); err != nil {
		return nil, err
	}
	if cfg.Explore.TrendingSize, err = getEnvInt("TRENDING_SIZE", cfg.Explore.TrendingSize); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Env, "production")
}

// SlogLevel maps LogLevel onto slog; unknown values mean info.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	return n, nil
}
