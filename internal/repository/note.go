package repository

import (
	"context"

	"daily-app/internal/models"

	"gorm.io/gorm"
)

type NoteRepository struct {
	store[models.Note]
}

func NewNoteRepository(db *gorm.DB) *NoteRepository {
	return &NoteRepository{store: store[models.Note]{
		db:         db,
		softDelete: true,
		order:      "created_at DESC, id DESC",
		preloads:   []string{"Type"},
	}}
}

// FindWithAttrs loads a live note with its type and attributes.
func (r *NoteRepository) FindWithAttrs(ctx context.Context, id uint) (*models.Note, error) {
	var n models.Note
	err := r.db.WithContext(ctx).Preload("Type").Preload("Attrs", orderByID).
		Where("is_deleted = ?", false).First(&n, id).Error
	if err != nil {
		return nil, wrap("find note", err)
	}
	return &n, nil
}

func (r *NoteRepository) AddAttr(ctx context.Context, a *models.NoteAttr) error {
	return wrap("add attr", r.db.WithContext(ctx).Create(a).Error)
}

func (r *NoteRepository) FindAttr(ctx context.Context, noteID, id uint) (*models.NoteAttr, error) {
	return findChild[models.NoteAttr](ctx, r.db, "note_id", noteID, id)
}

func (r *NoteRepository) SaveAttr(ctx context.Context, a *models.NoteAttr) error {
	return wrap("save attr", r.db.WithContext(ctx).Save(a).Error)
}

func (r *NoteRepository) DeleteAttr(ctx context.Context, noteID, id uint) error {
	return deleteChild[models.NoteAttr](ctx, r.db, "note_id", noteID, id)
}

func (r *NoteRepository) ListTypes(ctx context.Context) ([]models.NoteType, error) {
	var types []models.NoteType
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&types).Error; err != nil {
		return nil, wrap("list note types", err)
	}
	return types, nil
}

func (r *NoteRepository) FindType(ctx context.Context, id uint) (*models.NoteType, error) {
	var t models.NoteType
	if err := r.db.WithContext(ctx).First(&t, id).Error; err != nil {
		return nil, wrap("find note type", err)
	}
	return &t, nil
}

func (r *NoteRepository) CreateType(ctx context.Context, t *models.NoteType) error {
	return wrap("create note type", r.db.WithContext(ctx).Create(t).Error)
}
