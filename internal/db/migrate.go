package db

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/Ramos-bot/GestOnGo-App/internal/models"
	"github.com/Ramos-bot/GestOnGo-App/internal/modules"
)

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.User{},
		&models.Client{},
		&models.Service{},
		&models.AuditLog{},
	); err != nil {
		return fmt.Errorf("failed to migrate: %w", err)
	}

	// Module tables exist even while their module is switched off.
	for _, m := range modules.All() {
		table := m.Variant.Table
		if err := db.Table(table).AutoMigrate(&models.ModuleService{}); err != nil {
			return fmt.Errorf("failed to migrate %s: %w", table, err)
		}
	}

	return backfillClientSearch(db)
}

// backfillClientSearch fills nome_busca for rows written before the column
// existed.
func backfillClientSearch(db *gorm.DB) error {
	var clients []models.Client
	if err := db.Where("nome_busca = ''").Find(&clients).Error; err != nil {
		return fmt.Errorf("failed to backfill clientes: %w", err)
	}
	for i := range clients {
		c := &clients[i]
		if err := db.Model(c).UpdateColumn("nome_busca", models.FoldName(c.Nome)).Error; err != nil {
			return fmt.Errorf("failed to backfill cliente %d: %w", c.ID, err)
		}
	}
	return nil
}
