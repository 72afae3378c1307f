package service

import (
	"time"

	"daily-app/internal/config"
	"daily-app/internal/repository"

	"gorm.io/gorm"
)

// Services bundles every service the HTTP layer needs.
type Services struct {
	Auth       *AuthService
	Bills      *BillService
	Categories *CategoryService
	Statistics *StatisticsService
	Foods      *FoodService
	Friends    *FriendService
	Notes      *NoteService
	Todos      *TodoService
}

func New(db *gorm.DB, cfg *config.Config) *Services {
	loc := cfg.Location()
	pageSize := cfg.App.PageSize

	billRepo := repository.NewBillRepository(db)
	catRepo := repository.NewCategoryRepository(db)

	return &Services{
		Auth: NewAuthService(repository.NewUserRepository(db), repository.NewSessionRepository(db), AuthConfig{
			Secret:       cfg.JWT.Secret,
			Issuer:       cfg.JWT.Issuer,
			TokenTTL:     time.Duration(cfg.JWT.ExpireHours) * time.Hour,
			RememberTTL:  time.Duration(cfg.JWT.RememberDays) * 24 * time.Hour,
			BcryptCost:   cfg.Security.BcryptCost,
			MaxAttempts:  cfg.Security.MaxLoginAttempts,
			LockDuration: time.Duration(cfg.Security.LockMinutes) * time.Minute,
		}),
		Bills:      NewBillService(billRepo, catRepo, pageSize, loc),
		Categories: NewCategoryService(catRepo),
		Statistics: NewStatisticsService(billRepo, loc),
		Foods:      NewFoodService(repository.NewFoodRepository(db), pageSize, loc),
		Friends:    NewFriendService(repository.NewFriendRepository(db), pageSize, loc),
		Notes:      NewNoteService(repository.NewNoteRepository(db), pageSize),
		Todos:      NewTodoService(repository.NewTodoRepository(db), pageSize, loc),
	}
}
