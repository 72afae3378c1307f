package repository

import (
	"context"

	"daily-app/internal/models"

	"gorm.io/gorm"
)

type TodoRepository struct {
	store[models.Todo]
}

func NewTodoRepository(db *gorm.DB) *TodoRepository {
	return &TodoRepository{store: store[models.Todo]{
		db:         db,
		softDelete: true,
		order:      "created_at DESC, id DESC",
	}}
}

// FindWithDetails loads a live todo with its details, oldest first.
func (r *TodoRepository) FindWithDetails(ctx context.Context, id uint) (*models.Todo, error) {
	var t models.Todo
	err := r.db.WithContext(ctx).Preload("Details", orderByID).
		Where("is_deleted = ?", false).First(&t, id).Error
	if err != nil {
		return nil, wrap("find todo", err)
	}
	return &t, nil
}

func (r *TodoRepository) AddDetail(ctx context.Context, d *models.TodoDetail) error {
	return wrap("add detail", r.db.WithContext(ctx).Create(d).Error)
}

func (r *TodoRepository) FindDetail(ctx context.Context, todoID, id uint) (*models.TodoDetail, error) {
	return findChild[models.TodoDetail](ctx, r.db, "todo_id", todoID, id)
}

func (r *TodoRepository) SaveDetail(ctx context.Context, d *models.TodoDetail) error {
	return wrap("save detail", r.db.WithContext(ctx).Save(d).Error)
}

func (r *TodoRepository) DeleteDetail(ctx context.Context, todoID, id uint) error {
	return deleteChild[models.TodoDetail](ctx, r.db, "todo_id", todoID, id)
}
