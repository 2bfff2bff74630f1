package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/Ramos-bot/GestOnGo-App/internal/config"
	"github.com/Ramos-bot/GestOnGo-App/internal/models"
	"github.com/Ramos-bot/GestOnGo-App/internal/security"
)

// SeedAdmin creates the configured administrator unless a user with that
// email already exists.
func SeedAdmin(ctx context.Context, db *gorm.DB, admin config.AdminConfig, hasher *security.Hasher) error {
	if !admin.Enabled() {
		return nil
	}

	var existing models.User
	err := db.WithContext(ctx).Where("email = ?", admin.Email).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to look up admin: %w", err)
	}

	hash, err := hasher.Hash(admin.Password)
	if err != nil {
		return err
	}

	name := admin.Name
	if name == "" {
		name = "Administrador"
	}

	user := models.User{
		Nome:      name,
		Email:     admin.Email,
		HashSenha: hash,
		IsActive:  true,
	}
	if err := db.WithContext(ctx).Create(&user).Error; err != nil {
		return fmt.Errorf("failed to create admin: %w", err)
	}

	zerolog.Ctx(ctx).Info().Str("email", admin.Email).Msg("admin user created")
	return nil
}
