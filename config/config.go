package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// DefaultAPIURL is used when API_URL is unset. It can still be overridden
// per action from the dashboard's URL field.
const DefaultAPIURL = "http://localhost:8000"

// Config holds the dashboard process configuration. The API URL here is only
// the default seeded into the page; every request carries its own.
type Config struct {
	Port        string
	APIURL      string
	HTTPTimeout time.Duration
}

// Load reads configuration from the environment, with a .env file applied
// first if one exists.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Port:        getEnv("PORT", "8501"),
		APIURL:      getEnv("API_URL", DefaultAPIURL),
		HTTPTimeout: time.Duration(getEnvInt("HTTP_TIMEOUT_SECONDS", 30)) * time.Second,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
