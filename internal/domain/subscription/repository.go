package subscription

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"foodgram/internal/database"
	"foodgram/internal/domain/auth"
)

type Repository interface {
	Create(ctx context.Context, userID, authorID int64) error
	Delete(ctx context.Context, userID, authorID int64) error
	IsSubscribed(ctx context.Context, userID, authorID int64) (bool, error)
	// ListAuthors returns the users userID follows, ordered by username.
	ListAuthors(ctx context.Context, userID int64, offset, limit int) ([]auth.User, int64, error)
	PurgeUser(tx *gorm.DB, userID int64) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, userID, authorID int64) error {
	err := r.db.WithContext(ctx).Create(&Subscription{UserID: userID, AuthorID: authorID}).Error
	if database.IsUniqueViolation(err) {
		return ErrAlreadyFollowing
	}
	if err != nil {
		return fmt.Errorf("create subscription: %w", err)
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, userID, authorID int64) error {
	res := r.db.WithContext(ctx).
		Where("user_id = ? AND author_id = ?", userID, authorID).
		Delete(&Subscription{})
	if res.Error != nil {
		return fmt.Errorf("delete subscription: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFollowing
	}
	return nil
}

func (r *repository) IsSubscribed(ctx context.Context, userID, authorID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Subscription{}).
		Where("user_id = ? AND author_id = ?", userID, authorID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("check subscription: %w", err)
	}
	return count > 0, nil
}

func (r *repository) ListAuthors(ctx context.Context, userID int64, offset, limit int) ([]auth.User, int64, error) {
	q := r.db.WithContext(ctx).
		Model(&auth.User{}).
		Joins("JOIN subscriptions ON subscriptions.author_id = users.id").
		Where("subscriptions.user_id = ?", userID)

	var total int64
	if err := q.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count subscriptions: %w", err)
	}

	var users []auth.User
	err := q.Select("users.*").
		Order("users.username ASC").
		Offset(offset).
		Limit(limit).
		Find(&users).Error
	if err != nil {
		return nil, 0, fmt.Errorf("list subscriptions: %w", err)
	}
	return users, total, nil
}

// PurgeUser drops subscriptions on both sides of the user.
func (r *repository) PurgeUser(tx *gorm.DB, userID int64) error {
	err := tx.Where("user_id = ? OR author_id = ?", userID, userID).Delete(&Subscription{}).Error
	if err != nil {
		return fmt.Errorf("purge subscriptions: %w", err)
	}
	return nil
}
