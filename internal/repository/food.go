package repository

import (
	"daily-app/internal/models"

	"gorm.io/gorm"
)

// FoodRepository hard-deletes: food has no soft-delete flag.
type FoodRepository struct {
	store[models.Food]
}

func NewFoodRepository(db *gorm.DB) *FoodRepository {
	return &FoodRepository{store: store[models.Food]{
		db:    db,
		order: "created_at DESC, id DESC",
	}}
}
