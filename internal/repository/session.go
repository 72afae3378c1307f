package repository

import (
	"context"

	"daily-app/internal/models"

	"gorm.io/gorm"
)

type SessionRepository struct {
	db *gorm.DB
}

func NewSessionRepository(db *gorm.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

func (r *SessionRepository) Create(ctx context.Context, s *models.Session) error {
	return wrap("create session", r.db.WithContext(ctx).Create(s).Error)
}

func (r *SessionRepository) Find(ctx context.Context, id string) (*models.Session, error) {
	var s models.Session
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&s).Error; err != nil {
		return nil, wrap("find session", err)
	}
	return &s, nil
}

func (r *SessionRepository) Revoke(ctx context.Context, id string) error {
	err := r.db.WithContext(ctx).Model(&models.Session{}).Where("id = ?", id).Update("revoked", true).Error
	return wrap("revoke session", err)
}

// RevokeOthers revokes every session of the user except keepID.
func (r *SessionRepository) RevokeOthers(ctx context.Context, userID uint, keepID string) error {
	err := r.db.WithContext(ctx).Model(&models.Session{}).
		Where("user_id = ? AND id <> ? AND revoked = ?", userID, keepID, false).
		Update("revoked", true).Error
	return wrap("revoke sessions", err)
}
