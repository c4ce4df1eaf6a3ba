package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/mcoot/connectfour-go/internal/api"
	"github.com/mcoot/connectfour-go/internal/factory"
	redisstorage "github.com/mcoot/connectfour-go/internal/storage/redis"
)

// config is the server configuration read from the environment
type config struct {
	Server   api.ServerConfig
	Factory  factory.Config
	LogLevel slog.Level
}

// loadConfig reads the environment, after merging in a .env file if one is
// present in the working directory
func loadConfig() (config, error) {
	// A missing .env is normal outside development
	_ = godotenv.Load()

	cfg := config{
		Server: api.DefaultServerConfig(),
		Factory: factory.Config{
			StorageType: getEnv("STORAGE_TYPE", factory.StorageTypeMemory),
		},
	}

	port, err := getEnvAsInt("PORT", cfg.Server.Port)
	if err != nil {
		return config{}, err
	}
	cfg.Server.Port = port
	cfg.Server.Host = getEnv("HOST", cfg.Server.Host)

	seed, err := getEnvAsInt("SEED", 0)
	if err != nil {
		return config{}, err
	}
	if seed < 0 {
		return config{}, fmt.Errorf("SEED must not be negative: %d", seed)
	}
	cfg.Factory.Seed = uint64(seed)

	if cfg.Factory.StorageType == factory.StorageTypeRedis {
		redisURL := getEnv("REDIS_URL", "")
		if redisURL == "" {
			return config{}, fmt.Errorf("REDIS_URL required when STORAGE_TYPE=redis")
		}
		redisCfg := redisstorage.DefaultConfig()
		redisCfg.URL = redisURL
		cfg.Factory.RedisConfig = &redisCfg
	}

	level, err := parseLogLevel(getEnv("LOG_LEVEL", "info"))
	if err != nil {
		return config{}, err
	}
	cfg.LogLevel = level

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) (int, error) {
	raw := getEnv(key, "")
	if raw == "" {
		return fallback, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	return value, nil
}

func parseLogLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(s))); err != nil {
		return 0, fmt.Errorf("invalid LOG_LEVEL %q", s)
	}
	return level, nil
}
