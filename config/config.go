package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds all configuration for the application.
type Config struct {
	// Server configuration
	Port string

	// Database configuration
	DBHost     string
	DBPort     int
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// Object storage configuration
	S3Region    string
	S3Bucket    string
	S3KeyPrefix string
	PublicURL   string // base URL proyek, dipakai membentuk URL media publik

	// Service-role key untuk endpoint privilege (tidak pernah dikirim ke klien)
	ServiceRoleKey string
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		Port:           getEnv("PORT", "8080"),
		DBHost:         getEnv("DB_HOST", "localhost"),
		DBPort:         getEnvInt("DB_PORT", 5432),
		DBUser:         getEnv("DB_USER", "postgres"),
		DBPassword:     getEnv("DB_PASSWORD", "postgres"),
		DBName:         getEnv("DB_NAME", "bahasa_indah_nusantara"),
		DBSSLMode:      getEnv("DB_SSL_MODE", "disable"),
		S3Region:       getEnv("S3_REGION", "ap-southeast-1"),
		S3Bucket:       getEnv("S3_BUCKET", ""),
		S3KeyPrefix:    getEnv("S3_KEY_PREFIX", "media"),
		PublicURL:      getEnv("PUBLIC_URL", ""),
		ServiceRoleKey: os.Getenv("SERVICE_ROLE_KEY"),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.DBHost == "" {
		return fmt.Errorf("DB_HOST is required")
	}
	if c.DBUser == "" {
		return fmt.Errorf("DB_USER is required")
	}
	if c.DBName == "" {
		return fmt.Errorf("DB_NAME is required")
	}
	if c.ServiceRoleKey == "" {
		return fmt.Errorf("SERVICE_ROLE_KEY is required")
	}
	return nil
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
