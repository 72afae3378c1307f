package repository

import (
	"context"
	"math"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Page selects one page of a list query. Number starts at 1.
type Page struct {
	Number int
	Size   int
}

// NewPage normalizes user input: invalid numbers become page 1, invalid sizes become def.
func NewPage(number, size, def int) Page {
	if number <= 0 {
		number = 1
	}
	if size <= 0 {
		size = def
	}
	return Page{Number: number, Size: size}
}

func (p Page) Offset() int { return (p.Number - 1) * p.Size }

// Pages returns the page count for total rows.
func (p Page) Pages(total int64) int {
	if p.Size <= 0 || total == 0 {
		return 0
	}
	return int(math.Ceil(float64(total) / float64(p.Size)))
}

// store is the owner-scoped persistence shared by the personal-record repositories.
type store[T any] struct {
	db         *gorm.DB
	softDelete bool
	order      string
	preloads   []string
}

func (s store[T]) live(db *gorm.DB) *gorm.DB {
	if s.softDelete {
		return db.Where("is_deleted = ?", false)
	}
	return db
}

func (s store[T]) withPreloads(db *gorm.DB) *gorm.DB {
	for _, p := range s.preloads {
		db = db.Preload(p)
	}
	return db
}

func (s store[T]) Create(ctx context.Context, rec *T) error {
	return wrap("create", s.db.WithContext(ctx).Omit(clause.Associations).Create(rec).Error)
}

// Find returns a live record by id regardless of its owner.
func (s store[T]) Find(ctx context.Context, id uint) (*T, error) {
	var rec T
	q := s.withPreloads(s.live(s.db.WithContext(ctx)))
	if err := q.First(&rec, id).Error; err != nil {
		return nil, wrap("find", err)
	}
	return &rec, nil
}

// ListByUser returns one page of the user's live records plus the total count.
func (s store[T]) ListByUser(ctx context.Context, userID uint, page Page) ([]T, int64, error) {
	base := s.live(s.db.WithContext(ctx).Model(new(T)).Where("user_id = ?", userID))

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, wrap("count", err)
	}

	items := make([]T, 0, page.Size)
	q := s.withPreloads(base.Session(&gorm.Session{}))
	if err := q.Order(s.order).Limit(page.Size).Offset(page.Offset()).Find(&items).Error; err != nil {
		return nil, 0, wrap("list", err)
	}
	return items, total, nil
}

// Save writes every column of rec; associations are left alone.
func (s store[T]) Save(ctx context.Context, rec *T) error {
	return wrap("save", s.db.WithContext(ctx).Omit(clause.Associations).Save(rec).Error)
}

// Delete flags the row as deleted for soft-delete entities and removes it otherwise.
func (s store[T]) Delete(ctx context.Context, id uint) error {
	db := s.db.WithContext(ctx)
	var res *gorm.DB
	if s.softDelete {
		res = db.Model(new(T)).Where("id = ? AND is_deleted = ?", id, false).
			Updates(map[string]interface{}{"is_deleted": true, "updated_at": db.NowFunc()})
	} else {
		res = db.Delete(new(T), id)
	}
	if res.Error != nil {
		return wrap("delete", res.Error)
	}
	if res.RowsAffected == 0 {
		return wrap("delete", ErrNotFound)
	}
	return nil
}

// deleteChild removes one owned sub-record of parentID.
func deleteChild[C any](ctx context.Context, db *gorm.DB, parentColumn string, parentID, id uint) error {
	res := db.WithContext(ctx).Where(parentColumn+" = ?", parentID).Delete(new(C), id)
	if res.Error != nil {
		return wrap("delete child", res.Error)
	}
	if res.RowsAffected == 0 {
		return wrap("delete child", ErrNotFound)
	}
	return nil
}

// findChild loads one owned sub-record of parentID.
func findChild[C any](ctx context.Context, db *gorm.DB, parentColumn string, parentID, id uint) (*C, error) {
	var rec C
	if err := db.WithContext(ctx).Where(parentColumn+" = ?", parentID).First(&rec, id).Error; err != nil {
		return nil, wrap("find child", err)
	}
	return &rec, nil
}
