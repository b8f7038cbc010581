package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort  string
	Environment string
	// Back-office API the admin UI talks to
	APIBaseURL     string
	RequestTimeout time.Duration
	// Session / login
	SessionTTL        time.Duration
	AdminEmail        string
	AdminPasswordHash string // bcrypt hash; empty disables the login wall
	// Stub backend (cmd/backend only)
	BackendPort string
	DBPath      string
}

func Load() *Config {
	// Load .env file (ignore error if not present - use system env vars)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	return &Config{
		ServerPort:        getEnv("SERVER_PORT", "8080"),
		Environment:       getEnv("ENVIRONMENT", "development"),
		APIBaseURL:        getEnv("API_BASE_URL", "http://localhost:8081"),
		RequestTimeout:    getEnvDuration("REQUEST_TIMEOUT", 15*time.Second),
		SessionTTL:        getEnvDuration("SESSION_TTL", 12*time.Hour),
		AdminEmail:        getEnv("ADMIN_EMAIL", "admin@pizzeria.local"),
		AdminPasswordHash: getEnv("ADMIN_PASSWORD_HASH", ""),
		BackendPort:       getEnv("BACKEND_PORT", "8081"),
		DBPath:            getEnv("DB_PATH", "db/backoffice.db"),
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	if d, err := time.ParseDuration(value); err == nil {
		return d
	}
	// Accept bare seconds too (REQUEST_TIMEOUT=30)
	if secs, err := strconv.Atoi(strings.TrimSpace(value)); err == nil {
		return time.Duration(secs) * time.Second
	}
	log.Printf("Invalid duration for %s, using default %s", key, defaultValue)
	return defaultValue
}
