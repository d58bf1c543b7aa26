package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port           string
	DatabaseURL    string
	SQLitePath     string
	JWTSecret      string
	UploadDir      string
	LogDir         string
	ReminderWindow time.Duration
}

func Load() *Config {
	// Missing .env is fine, plain environment variables still apply.
	_ = godotenv.Load()

	return &Config{
		Port:           GetEnvAsString("PORT", "8080"),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		SQLitePath:     GetEnvAsString("SQLITE_PATH", "todo.db"),
		JWTSecret:      GetEnvAsString("JWT_SECRET", "dev-secret"),
		UploadDir:      GetEnvAsString("UPLOAD_DIR", "uploads"),
		LogDir:         GetEnvAsString("LOG_DIR", "logs"),
		ReminderWindow: GetEnvAsDuration("REMINDER_WINDOW", 24*time.Hour),
	}
}

// GetEnvAsInt gets environment variable as int with default value
func GetEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// GetEnvAsDuration gets environment variable as duration with default value
func GetEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// GetEnvAsString gets environment variable as string with default value
func GetEnvAsString(key string, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
