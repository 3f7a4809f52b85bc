package config

import (
	"log"
	"os"
	"strconv"
	"sync"

	"github.com/joho/godotenv"
)

// Config holds the engine defaults that can be tuned from the environment.
// Explicit options on the public API always win over these.
type Config struct {
	TableSize int
	Workers   int
	LogLevel  string
}

var (
	loadOnce sync.Once
	loaded   *Config
)

// Load reads the engine configuration once per process. A .env file is
// picked up when present; missing keys fall back to defaults.
func Load() *Config {
	loadOnce.Do(func() {
		// No .env file is the normal case for library use.
		_ = godotenv.Load()
		loaded = &Config{
			TableSize: GetEnvAsInt("SOLVER_TABLE_SIZE", 1<<20),
			Workers:   GetEnvAsInt("SOLVER_WORKERS", 1),
			// Empty disables solver logging; library users opt in.
			LogLevel: GetEnv("LOG_LEVEL", ""),
		}
	})
	return loaded
}

func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Invalid integer value for %s: %s, using default: %d", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}
