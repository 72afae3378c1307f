package repository

import (
	"context"

	"daily-app/internal/models"

	"gorm.io/gorm"
)

type FriendRepository struct {
	store[models.Friend]
}

func NewFriendRepository(db *gorm.DB) *FriendRepository {
	return &FriendRepository{store: store[models.Friend]{
		db:         db,
		softDelete: true,
		order:      "created_at DESC, id DESC",
	}}
}

// FindWithIdentities loads a live friend together with the phone/QQ/WeChat/email lists.
func (r *FriendRepository) FindWithIdentities(ctx context.Context, id uint) (*models.Friend, error) {
	var f models.Friend
	err := r.db.WithContext(ctx).
		Preload("Phones", orderByID).
		Preload("QQs", orderByID).
		Preload("Wechats", orderByID).
		Preload("Emails", orderByID).
		Where("is_deleted = ?", false).
		First(&f, id).Error
	if err != nil {
		return nil, wrap("find friend", err)
	}
	return &f, nil
}

func orderByID(db *gorm.DB) *gorm.DB { return db.Order("id ASC") }

func (r *FriendRepository) AddPhone(ctx context.Context, p *models.FriendPhone) error {
	return wrap("add phone", r.db.WithContext(ctx).Create(p).Error)
}

func (r *FriendRepository) AddQQ(ctx context.Context, q *models.FriendQQ) error {
	return wrap("add qq", r.db.WithContext(ctx).Create(q).Error)
}

func (r *FriendRepository) AddWechat(ctx context.Context, w *models.FriendWechat) error {
	return wrap("add wechat", r.db.WithContext(ctx).Create(w).Error)
}

func (r *FriendRepository) AddEmail(ctx context.Context, e *models.FriendEmail) error {
	return wrap("add email", r.db.WithContext(ctx).Create(e).Error)
}

// Identity kinds accepted by DeleteIdentity.
const (
	IdentityPhone  = "phones"
	IdentityQQ     = "qqs"
	IdentityWechat = "wechats"
	IdentityEmail  = "emails"
)

// DeleteIdentity removes one identity of the given kind belonging to friendID.
func (r *FriendRepository) DeleteIdentity(ctx context.Context, kind string, friendID, id uint) error {
	switch kind {
	case IdentityPhone:
		return deleteChild[models.FriendPhone](ctx, r.db, "friend_id", friendID, id)
	case IdentityQQ:
		return deleteChild[models.FriendQQ](ctx, r.db, "friend_id", friendID, id)
	case IdentityWechat:
		return deleteChild[models.FriendWechat](ctx, r.db, "friend_id", friendID, id)
	case IdentityEmail:
		return deleteChild[models.FriendEmail](ctx, r.db, "friend_id", friendID, id)
	}
	return wrap("delete identity", ErrNotFound)
}
