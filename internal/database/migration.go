package database

import (
	"fmt"

	"daily-app/internal/models"

	"gorm.io/gorm"
)

// AutoMigrate runs database schema migrations for all models.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.User{},
		&models.UserProfile{},
		&models.Session{},
		&models.BillCategory{},
		&models.Bill{},
		&models.Food{},
		&models.Friend{},
		&models.FriendPhone{},
		&models.FriendQQ{},
		&models.FriendWechat{},
		&models.FriendEmail{},
		&models.NoteType{},
		&models.Note{},
		&models.NoteAttr{},
		&models.Todo{},
		&models.TodoDetail{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}
