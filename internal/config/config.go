package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	DBDriver    string
	DBPath      string
	DBHost      string
	DBPort      string
	DBUser      string
	DBPassword  string
	DBName      string
	GinMode     string
	StrictEmail bool
}

func Load() *Config {
	// Optional .env for local development; a missing file is not an error.
	_ = godotenv.Load()

	return &Config{
		Port:        getEnv("PORT", "8080"),
		DBDriver:    getEnv("DB_DRIVER", "sqlite"),
		DBPath:      getEnv("DB_PATH", "disaster_reports.db"),
		DBHost:      getEnv("DB_HOST", "localhost"),
		DBPort:      getEnv("DB_PORT", "3306"),
		DBUser:      getEnv("DB_USER", "reportuser"),
		DBPassword:  getEnv("DB_PASSWORD", "reportpassword"),
		DBName:      getEnv("DB_NAME", "disaster_reports"),
		GinMode:     getEnv("GIN_MODE", "debug"),
		StrictEmail: getEnv("STRICT_EMAIL", "true") != "false",
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
