package main

import (
	"log"

	"golang.org/x/crypto/bcrypt"

	"github.com/culinarybook/backend/config"
	"github.com/culinarybook/backend/internal/database"
	"github.com/culinarybook/backend/internal/models"
)

// Seeds one account per role for local development. Existing accounts
// are left untouched.
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	db, err := database.New(cfg)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}

	seeds := []struct {
		username string
		email    string
		role     models.Role
	}{
		{"admin", "admin@culinarybook.local", models.RoleAdmin},
		{"moderator", "moderator@culinarybook.local", models.RoleModerator},
		{"author", "author@culinarybook.local", models.RoleAuthor},
		{"reader", "reader@culinarybook.local", models.RoleUser},
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("changeme123"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("failed to hash seed password: %v", err)
	}

	for _, seed := range seeds {
		var count int64
		if err := db.Model(&models.User{}).Where("email = ?", seed.email).Count(&count).Error; err != nil {
			log.Fatalf("failed to check for user %s: %v", seed.email, err)
		}
		if count > 0 {
			log.Printf("skipping %s (already exists)", seed.username)
			continue
		}

		user := models.User{
			Username:     seed.username,
			Email:        seed.email,
			PasswordHash: string(hash),
			Role:         seed.role,
		}
		if err := db.Create(&user).Error; err != nil {
			log.Fatalf("failed to create user %s: %v", seed.username, err)
		}
		log.Printf("created %s (%s)", seed.username, seed.role)
	}
}
