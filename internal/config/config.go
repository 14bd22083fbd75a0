package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"mytodos/internal/store"
)

// Config holds the runtime settings of the server and CLI.
type Config struct {
	Port                   string `yaml:"port"`
	Title                  string `yaml:"title"`
	StoreDriver            string `yaml:"store_driver"`
	DBPath                 string `yaml:"db_path"`
	RedisAddr              string `yaml:"redis_addr"`
	RedisPrefix            string `yaml:"redis_prefix"`
	StorageKey             string `yaml:"storage_key"`
	LogLevel               string `yaml:"log_level"`
	LogFormat              string `yaml:"log_format"`
	ShutdownTimeoutSeconds int    `yaml:"shutdown_timeout_seconds"`
	SessionTTLMinutes      int    `yaml:"session_ttl_minutes"`
	MaxSessions            int    `yaml:"max_sessions"`
}

// Default returns the settings used when nothing overrides them.
func Default() Config {
	return Config{
		Port:                   "8080",
		Title:                  "My Todos",
		StoreDriver:            store.DriverSQLite,
		DBPath:                 "./data/mytodos.db",
		RedisAddr:              "127.0.0.1:6379",
		RedisPrefix:            "mytodos:",
		StorageKey:             store.DefaultTasksKey,
		LogLevel:               "info",
		LogFormat:              "console",
		ShutdownTimeoutSeconds: 10,
		SessionTTLMinutes:      24 * 60,
		MaxSessions:            10000,
	}
}

// Load builds the configuration from defaults, then the YAML file at path
// (if path is not empty), then a .env file, then the environment.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	if err := godotenv.Load(); err != nil {
		log.Debug().Str("mod", "config").Msg(".env file not found, using environment variables")
	}

	cfg.Port = getEnv("PORT", cfg.Port)
	cfg.Title = getEnv("APP_TITLE", cfg.Title)
	cfg.StoreDriver = getEnv("STORE_DRIVER", cfg.StoreDriver)
	cfg.DBPath = getEnv("DB_PATH", cfg.DBPath)
	cfg.RedisAddr = getEnv("REDIS_ADDR", cfg.RedisAddr)
	cfg.RedisPrefix = getEnv("REDIS_PREFIX", cfg.RedisPrefix)
	cfg.StorageKey = getEnv("STORAGE_KEY", cfg.StorageKey)
	cfg.LogLevel = getEnv("LOG_LEVEL", cfg.LogLevel)
	cfg.LogFormat = getEnv("LOG_FORMAT", cfg.LogFormat)

	timeout, err := getEnvAsInt("SHUTDOWN_TIMEOUT_SECONDS", cfg.ShutdownTimeoutSeconds)
	if err != nil {
		return cfg, err
	}
	cfg.ShutdownTimeoutSeconds = timeout

	ttl, err := getEnvAsInt("SESSION_TTL_MINUTES", cfg.SessionTTLMinutes)
	if err != nil {
		return cfg, err
	}
	cfg.SessionTTLMinutes = ttl

	maxSessions, err := getEnvAsInt("MAX_SESSIONS", cfg.MaxSessions)
	if err != nil {
		return cfg, err
	}
	cfg.MaxSessions = maxSessions

	return cfg, cfg.Validate()
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	port, err := strconv.Atoi(c.Port)
	if err != nil || port <= 0 || port > 65535 {
		return fmt.Errorf("PORT must be a number between 1 and 65535, got %q", c.Port)
	}

	switch c.StoreDriver {
	case store.DriverSQLite:
		if c.DBPath == "" {
			return errors.New("DB_PATH must not be empty")
		}
	case store.DriverRedis:
		if c.RedisAddr == "" {
			return errors.New("REDIS_ADDR must not be empty")
		}
	case store.DriverMemory:
	default:
		return fmt.Errorf("STORE_DRIVER must be 'sqlite', 'redis', or 'memory', got %q", c.StoreDriver)
	}

	if c.StorageKey == "" {
		return errors.New("STORAGE_KEY must not be empty")
	}
	if c.ShutdownTimeoutSeconds <= 0 {
		return errors.New("SHUTDOWN_TIMEOUT_SECONDS must be greater than 0")
	}
	if c.SessionTTLMinutes <= 0 {
		return errors.New("SESSION_TTL_MINUTES must be greater than 0")
	}
	if c.MaxSessions <= 0 {
		return errors.New("MAX_SESSIONS must be greater than 0")
	}

	return nil
}

// SessionTTL returns how long an idle browser session is kept.
func (c Config) SessionTTL() time.Duration {
	return time.Duration(c.SessionTTLMinutes) * time.Minute
}

// StoreOptions returns the KV backend settings.
func (c Config) StoreOptions() store.Options {
	return store.Options{
		Driver:      c.StoreDriver,
		DBPath:      c.DBPath,
		RedisAddr:   c.RedisAddr,
		RedisPrefix: c.RedisPrefix,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return defaultValue, nil
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid integer value for %s: %q", key, v)
	}
	return i, nil
}
