package database

import (
	"errors"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/example/lookbook/internal/models"
	"github.com/example/lookbook/internal/utils"
)

// SeedAdmin creates the bootstrap panel account when no admin exists yet.
// Does nothing when credentials are not configured or an admin is present.
func SeedAdmin(conn *gorm.DB, email, password string) error {
	if email == "" || password == "" {
		return nil
	}

	var existing models.AdminUser
	err := conn.First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return err
	}

	admin := models.AdminUser{Email: email, PasswordHash: hash}
	if err := conn.Create(&admin).Error; err != nil {
		return err
	}

	log.Info().Str("email", email).Msg("seeded bootstrap admin account")
	return nil
}
