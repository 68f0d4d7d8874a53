package config

import (
	"os"
)

// DefaultAPIBaseURL is the backend base used by the client when no
// override is configured. The resolved base is fixed for the process
// lifetime; every remote call uses it unchanged.
const DefaultAPIBaseURL = "http://localhost:8080/api"

type Config struct {
	Port        string
	Environment string
	DatabaseURL string // empty selects the in-memory repository
	CORSOrigins string
	APIBaseURL  string // backend base URL used by the client and seed tool
}

func Load() *Config {
	return &Config{
		Port:        getEnv("PORT", "8080"),
		Environment: getEnv("ENVIRONMENT", "dev"),
		DatabaseURL: getEnv("DATABASE_URL", ""),
		CORSOrigins: getEnv("CORS_ORIGINS", "http://localhost:3000"),
		APIBaseURL:  getEnv("PORTFOLIO_API_URL", DefaultAPIBaseURL),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
