package repository

import (
	"context"
	"time"

	"daily-app/internal/models"

	"gorm.io/gorm"
)

type BillRepository struct {
	store[models.Bill]
}

func NewBillRepository(db *gorm.DB) *BillRepository {
	return &BillRepository{store: store[models.Bill]{
		db:         db,
		softDelete: true,
		order:      "spending_time DESC, id DESC",
		preloads:   []string{"Category"},
	}}
}

// CategoryTotal is one row of the per-category aggregation.
type CategoryTotal struct {
	CategoryID uint
	Name       string
	TotalCent  int64
	Count      int64
}

// CategoryTotals sums the user's live bills per category. Categories without bills are absent.
func (r *BillRepository) CategoryTotals(ctx context.Context, userID uint) ([]CategoryTotal, error) {
	var rows []CategoryTotal
	err := r.db.WithContext(ctx).
		Table("app_bill AS b").
		Select("c.id AS category_id, c.name AS name, SUM(b.amount_cent) AS total_cent, COUNT(b.id) AS count").
		Joins("JOIN app_bill_category AS c ON c.id = b.category_id").
		Where("b.user_id = ? AND b.is_deleted = ?", userID, false).
		Group("c.id, c.name").
		Scan(&rows).Error
	if err != nil {
		return nil, wrap("category totals", err)
	}
	return rows, nil
}

// SpendingBetween returns spending_time and amount of the user's live bills in [from, to].
func (r *BillRepository) SpendingBetween(ctx context.Context, userID uint, from, to time.Time) ([]models.Bill, error) {
	var bills []models.Bill
	err := r.db.WithContext(ctx).
		Select("id", "spending_time", "amount_cent").
		Where("user_id = ? AND is_deleted = ? AND spending_time >= ? AND spending_time <= ?",
			userID, false, from.UTC(), to.UTC()).
		Order("spending_time ASC").
		Find(&bills).Error
	if err != nil {
		return nil, wrap("spending between", err)
	}
	return bills, nil
}

// Recent returns the user's latest n live bills.
func (r *BillRepository) Recent(ctx context.Context, userID uint, n int) ([]models.Bill, error) {
	var bills []models.Bill
	err := r.db.WithContext(ctx).Preload("Category").
		Where("user_id = ? AND is_deleted = ?", userID, false).
		Order(r.order).Limit(n).Find(&bills).Error
	if err != nil {
		return nil, wrap("recent bills", err)
	}
	return bills, nil
}

// AllByUser returns every live bill of the user, newest first.
func (r *BillRepository) AllByUser(ctx context.Context, userID uint) ([]models.Bill, error) {
	var bills []models.Bill
	err := r.db.WithContext(ctx).Preload("Category").
		Where("user_id = ? AND is_deleted = ?", userID, false).
		Order(r.order).Find(&bills).Error
	if err != nil {
		return nil, wrap("all bills", err)
	}
	return bills, nil
}
