package repository

import (
	"context"

	"daily-app/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CategoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) List(ctx context.Context) ([]models.BillCategory, error) {
	var cats []models.BillCategory
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&cats).Error; err != nil {
		return nil, wrap("list categories", err)
	}
	return cats, nil
}

func (r *CategoryRepository) Find(ctx context.Context, id uint) (*models.BillCategory, error) {
	var cat models.BillCategory
	if err := r.db.WithContext(ctx).First(&cat, id).Error; err != nil {
		return nil, wrap("find category", err)
	}
	return &cat, nil
}

func (r *CategoryRepository) Create(ctx context.Context, cat *models.BillCategory) error {
	return wrap("create category", r.db.WithContext(ctx).Create(cat).Error)
}

func (r *CategoryRepository) Save(ctx context.Context, cat *models.BillCategory) error {
	return wrap("save category", r.db.WithContext(ctx).Omit(clause.Associations).Save(cat).Error)
}

// Delete removes a category no bill references, soft-deleted bills included.
// Direct children become roots in the same transaction.
func (r *CategoryRepository) Delete(ctx context.Context, id uint) error {
	return wrap("delete category", r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var cat models.BillCategory
		if err := tx.First(&cat, id).Error; err != nil {
			return err
		}

		var refs int64
		if err := tx.Model(&models.Bill{}).Where("category_id = ?", id).Count(&refs).Error; err != nil {
			return err
		}
		if refs > 0 {
			return ErrInUse
		}

		if err := tx.Model(&models.BillCategory{}).Where("parent_id = ?", id).
			Update("parent_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&cat).Error
	}))
}
