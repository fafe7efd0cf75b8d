package config

import (
	"fmt"
	"strings"
)

// ValidateConfig checks that every setting the server cannot run
// without is present. Redis and S3 are optional; the features they
// back are disabled when unconfigured.
func ValidateConfig(cfg *Config) error {
	var errors []string

	required := map[string]string{
		"DB_USER":     cfg.DBUser,
		"DB_PASSWORD": cfg.DBPassword,
		"DB_NAME":     cfg.DBName,
		"JWT_SECRET":  cfg.JWTSecret,
	}
	for name, value := range required {
		if value == "" {
			errors = append(errors, fmt.Sprintf("required setting %s is not set", name))
		}
	}

	if cfg.JWTSecret != "" && len(cfg.JWTSecret) < 32 && IsProduction() {
		errors = append(errors, "JWT_SECRET must be at least 32 characters in production")
	}

	if len(errors) > 0 {
		return fmt.Errorf("%s", strings.Join(errors, "; "))
	}
	return nil
}
