package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Config holds all configuration for the application.
type Config struct {
	// Server configuration
	ServerPort string
	ServerHost string

	// Database configuration
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// Redis configuration. RedisURL wins over host/port when set.
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisURL      string

	// JWT configuration
	JWTSecret string

	// Photo storage configuration
	S3Bucket  string
	AWSRegion string

	// Comma-separated list of allowed CORS origins.
	CORSOrigins []string
}

// LoadConfig builds a Config from environment variables, falling back
// to Docker secrets for sensitive values outside CI.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		ServerPort:    getValue("SERVER_PORT", "server_port", "8080"),
		ServerHost:    getValue("SERVER_HOST", "server_host", "0.0.0.0"),
		DBHost:        getValue("DB_HOST", "db_host", "localhost"),
		DBPort:        getValue("DB_PORT", "db_port", "5432"),
		DBUser:        getValue("DB_USER", "db_user", ""),
		DBPassword:    getValue("DB_PASSWORD", "db_password", ""),
		DBName:        getValue("DB_NAME", "db_name", ""),
		DBSSLMode:     getValue("DB_SSL_MODE", "db_ssl_mode", "disable"),
		RedisHost:     getValue("REDIS_HOST", "redis_host", ""),
		RedisPort:     getValue("REDIS_PORT", "redis_port", "6379"),
		RedisPassword: getValue("REDIS_PASSWORD", "redis_password", ""),
		RedisURL:      getValue("REDIS_URL", "redis_url", ""),
		JWTSecret:     getValue("JWT_SECRET", "jwt_secret", ""),
		S3Bucket:      getValue("S3_BUCKET_NAME", "s3_bucket_name", ""),
		AWSRegion:     getValue("AWS_REGION", "aws_region", "us-east-1"),
	}

	if origins := os.Getenv("CORS_ORIGINS"); origins != "" {
		for _, origin := range strings.Split(origins, ",") {
			if trimmed := strings.TrimSpace(origin); trimmed != "" {
				cfg.CORSOrigins = append(cfg.CORSOrigins, trimmed)
			}
		}
	}

	if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// getValue resolves one setting: environment variable first, then the
// matching Docker secret, then the default.
func getValue(envName, secretName, fallback string) string {
	if value := os.Getenv(envName); value != "" {
		return value
	}
	if value := readSecret(secretName); value != "" {
		return value
	}
	return fallback
}

// readSecret reads a Docker secret from the secrets directory.
func readSecret(name string) string {
	secretsDir := os.Getenv("SECRETS_DIR")
	if secretsDir == "" {
		secretsDir = "/run/secrets"
	}
	if data, err := os.ReadFile(filepath.Join(secretsDir, name)); err == nil {
		return strings.TrimSpace(string(data))
	}
	return ""
}
