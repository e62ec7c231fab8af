package repository

import (
	"context"

	"foodgram/internal/domain"

	"gorm.io/gorm"
)

type SubscriptionRepository struct {
	db *gorm.DB
}

func NewSubscriptionRepository(db *gorm.DB) *SubscriptionRepository {
	return &SubscriptionRepository{db: db}
}

func (r *SubscriptionRepository) Exists(ctx context.Context, subscriberID, authorID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Subscription{}).
		Where("subscriber_id = ? AND author_id = ?", subscriberID, authorID).
		Count(&count).Error
	return count > 0, err
}

func (r *SubscriptionRepository) Add(ctx context.Context, subscriberID, authorID int64) error {
	return r.db.WithContext(ctx).Create(&domain.Subscription{
		SubscriberID: subscriberID,
		AuthorID:     authorID,
	}).Error
}

func (r *SubscriptionRepository) Remove(ctx context.Context, subscriberID, authorID int64) error {
	return r.db.WithContext(ctx).
		Where("subscriber_id = ? AND author_id = ?", subscriberID, authorID).
		Delete(&domain.Subscription{}).Error
}

// ListAuthors returns the users the subscriber follows, username-ordered.
func (r *SubscriptionRepository) ListAuthors(ctx context.Context, subscriberID int64, limit, offset int) ([]domain.User, int64, error) {
	base := r.db.WithContext(ctx).Model(&domain.User{}).
		Joins("JOIN subscriptions ON subscriptions.author_id = users.id").
		Where("subscriptions.subscriber_id = ?", subscriberID)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var authors []domain.User
	err := base.
		Order("users.username ASC").
		Limit(limit).
		Offset(offset).
		Find(&authors).Error
	return authors, total, err
}
