package database

import (
	"errors"

	"github.com/yNatanzinn/SalesTrackPro/config"
	"github.com/yNatanzinn/SalesTrackPro/internal/models"
	"github.com/yNatanzinn/SalesTrackPro/internal/utils"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// SeedAdminUser creates the configured admin vendor on first boot.
// No-op when seed credentials are not set or the vendor already exists.
func SeedAdminUser() {
	seed := config.AppConfig.Seed
	if seed.AdminUsername == "" || seed.AdminPassword == "" {
		return
	}

	var existing models.User
	err := DB.Where("username = ?", seed.AdminUsername).First(&existing).Error
	if err == nil {
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Error().Err(err).Msg("Failed to check for seeded admin user")
		return
	}

	hash, err := utils.HashPassword(seed.AdminPassword)
	if err != nil {
		log.Error().Err(err).Msg("Failed to hash seed admin password")
		return
	}

	displayName := seed.AdminDisplayName
	if displayName == "" {
		displayName = seed.AdminUsername
	}

	admin := models.User{
		Username:    seed.AdminUsername,
		Password:    hash,
		DisplayName: displayName,
		IsAdmin:     true,
	}
	if err := DB.Create(&admin).Error; err != nil {
		log.Error().Err(err).Msg("Failed to seed admin user")
		return
	}
	log.Info().Str("username", admin.Username).Msg("Admin user seeded")
}
