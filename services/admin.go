package services

import (
	"errors"
	"log"
	"os"
	"strings"

	"coinadmin/database"
	"coinadmin/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// EnsureAdminUser makes sure the admin account exists with the configured
// credentials. It runs once at process start, before the server listens,
// and is safe to run again on every boot.
func EnsureAdminUser() error {
	email := strings.ToLower(strings.TrimSpace(envOr("ADMIN_EMAIL", "admin@example.com")))
	password := envOr("ADMIN_PASSWORD", "change-me-now")
	username := envOr("ADMIN_USERNAME", "admin")

	var user models.User
	err := database.DB.Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		user = models.User{
			Username:     username,
			Email:        email,
			PasswordHash: string(hash),
			Role:         models.RoleAdmin,
		}
		if err := database.DB.Create(&user).Error; err != nil {
			return err
		}
		log.Println("✅ Admin user created:", email)
		return nil
	}
	if err != nil {
		return err
	}

	updated := false
	if user.Username == "" {
		user.Username = username
		updated = true
	}
	if user.Role != models.RoleAdmin {
		user.Role = models.RoleAdmin
		updated = true
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		user.PasswordHash = string(hash)
		updated = true
		log.Println("🔑 Admin password updated from env for:", email)
	}

	if updated {
		if err := database.DB.Save(&user).Error; err != nil {
			return err
		}
		log.Println("✅ Admin user updated:", email)
	}
	return nil
}
