package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Database DatabaseConfig
	HTTPAddr string
	Roster   RosterConfig
	Seed     int64
	Migrate  bool
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type RosterConfig struct {
	InternCSV   string
	TechLeadCSV string
	ExportDir   string
}

func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "grouping"),
			Password: getEnv("DB_PASSWORD", "grouping"),
			DBName:   getEnv("DB_NAME", "grouping"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		HTTPAddr: getEnv("HTTP_ADDR", ":8080"),
		Roster: RosterConfig{
			InternCSV:   getEnv("DEV_CSV", "dev_y.csv"),
			TechLeadCSV: getEnv("TECH_CSV", "tech_y.csv"),
			ExportDir:   getEnv("EXPORT_DIR", "."),
		},
		Seed:    getEnvInt64("RANDOM_SEED", 42),
		Migrate: getEnv("RUN_MIGRATIONS", "true") == "true",
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt64(key string, defaultValue int64) int64 {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return defaultValue
	}
	return parsed
}
