package repository

import (
	"context"

	"daily-app/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) FindByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, wrap("find user", err)
	}
	return &user, nil
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		return nil, wrap("find user by username", err)
	}
	return &user, nil
}

func (r *UserRepository) UsernameTaken(ctx context.Context, username string) (bool, error) {
	return r.exists(ctx, "username = ?", username)
}

func (r *UserRepository) EmailTaken(ctx context.Context, email string) (bool, error) {
	return r.exists(ctx, "LOWER(email) = LOWER(?)", email)
}

func (r *UserRepository) exists(ctx context.Context, cond string, arg interface{}) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.User{}).Where(cond, arg).Count(&count).Error; err != nil {
		return false, wrap("count users", err)
	}
	return count > 0, nil
}

// CreateWithProfile inserts the user and its profile atomically.
func (r *UserRepository) CreateWithProfile(ctx context.Context, user *models.User, profile *models.UserProfile) error {
	return wrap("create user", r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(user).Error; err != nil {
			return err
		}
		profile.UserID = user.ID
		return tx.Create(profile).Error
	}))
}

// UpdatePassword replaces the password hash only.
func (r *UserRepository) UpdatePassword(ctx context.Context, userID uint, hash string) error {
	return wrap("update password", r.db.WithContext(ctx).Model(&models.User{}).
		Where("id = ?", userID).Update("password_hash", hash).Error)
}

// SaveLoginState writes only the lockout and last-login columns, leaving password_hash alone.
func (r *UserRepository) SaveLoginState(ctx context.Context, user *models.User) error {
	return wrap("save login state", r.db.WithContext(ctx).Model(user).
		Select("failed_login_attempts", "locked_until", "last_login_at", "last_login_ip").
		Updates(user).Error)
}

func (r *UserRepository) FindProfile(ctx context.Context, userID uint) (*models.UserProfile, error) {
	var p models.UserProfile
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&p).Error; err != nil {
		return nil, wrap("find profile", err)
	}
	return &p, nil
}

func (r *UserRepository) SaveProfile(ctx context.Context, p *models.UserProfile) error {
	return wrap("save profile", r.db.WithContext(ctx).Save(p).Error)
}
