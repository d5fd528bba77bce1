package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

func init() {
	// Load .env file if it exists (ignores error if not found)
	godotenv.Load()
}

type Config struct {
	Port           string
	DatabasePath   string
	BaseURL        string
	TokenExpiry    int // hours
	FrontendURL    string
	AllowedOrigins []string

	// Google OAuth (sign-in)
	GoogleClientID     string
	GoogleClientSecret string
}

func Load() *Config {
	return &Config{
		Port:               getEnv("PORT", "8005"),
		DatabasePath:       getEnv("DATABASE_PATH", "./data/adforge.db"),
		BaseURL:            getEnv("BASE_URL", "http://localhost:8005"),
		TokenExpiry:        int(getEnvAsInt64("TOKEN_EXPIRY_HOURS", 24)),
		FrontendURL:        getEnv("FRONTEND_URL", "http://localhost:5173"),
		AllowedOrigins:     getEnvAsList("ALLOWED_ORIGINS", "*"),
		GoogleClientID:     getEnv("GOOGLE_CLIENT_ID", ""),
		GoogleClientSecret: getEnv("GOOGLE_CLIENT_SECRET", ""),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsList(key, defaultValue string) []string {
	value := getEnv(key, defaultValue)
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
