package server

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds HTTP server configuration
type Config struct {
	Port      string
	LogLevel  string
	RedisAddr string
}

// NewConfig loads configuration from environment variables, reading an
// optional .env file first. RedisAddr is empty when no Redis is configured;
// the server then falls back to its in-memory cache.
func NewConfig() *Config {
	// Missing .env is fine; env vars still apply.
	_ = godotenv.Load()

	return &Config{
		Port:      getEnv("PORT", "8080"),
		LogLevel:  getEnv("LOG_LEVEL", "info"),
		RedisAddr: getEnv("REDIS_ADDR", ""),
	}
}

func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}
