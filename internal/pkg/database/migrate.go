package database

import (
	"Board/internal/model"
	"fmt"
	log "log/slog"

	"gorm.io/gorm"
)

// Migrate 建表并创建唯一索引
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(model.AllModels()...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	log.Info("Database schema migrated.")
	return nil
}
