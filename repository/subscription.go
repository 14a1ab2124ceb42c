package repository

import (
	"context"

	"recipehub/model"

	"gorm.io/gorm"
)

// SubscriptionRepository holds the database connection for directed follow
// edges.
type SubscriptionRepository struct {
	DB *gorm.DB
}

// NewSubscriptionRepository creates and returns a new SubscriptionRepository.
func NewSubscriptionRepository(db *gorm.DB) *SubscriptionRepository {
	return &SubscriptionRepository{DB: db}
}

// CreateSubscription inserts the directed (subscriber, target) edge. A
// duplicate ordered pair surfaces as gorm.ErrDuplicatedKey. The reverse edge
// is a different pair and is unaffected.
func (r *SubscriptionRepository) CreateSubscription(ctx context.Context, subscriberID, targetID uint) error {
	return r.DB.WithContext(ctx).Create(&model.Subscription{
		SubscriberID:   subscriberID,
		SubscribedToID: targetID,
	}).Error
}

// DeleteSubscription removes the directed edge and reports how many rows
// were deleted.
func (r *SubscriptionRepository) DeleteSubscription(ctx context.Context, subscriberID, targetID uint) (int64, error) {
	res := r.DB.WithContext(ctx).
		Where("subscriber_id = ? AND subscribed_to_id = ?", subscriberID, targetID).
		Delete(&model.Subscription{})
	return res.RowsAffected, res.Error
}

// IsSubscribed is a pure existence check on the directed edge; it is not
// symmetric.
func (r *SubscriptionRepository) IsSubscribed(ctx context.Context, subscriberID, targetID uint) (bool, error) {
	var count int64
	err := r.DB.WithContext(ctx).Model(&model.Subscription{}).
		Where("subscriber_id = ? AND subscribed_to_id = ?", subscriberID, targetID).
		Count(&count).Error
	return count > 0, err
}

// ListSubscriptions returns the users the subscriber follows, newest edge
// first.
func (r *SubscriptionRepository) ListSubscriptions(ctx context.Context, subscriberID uint, limit, offset int) ([]model.User, error) {
	var users []model.User
	err := r.DB.WithContext(ctx).Model(&model.User{}).
		Joins("JOIN subscriptions ON subscriptions.subscribed_to_id = users.id").
		Where("subscriptions.subscriber_id = ?", subscriberID).
		Order("subscriptions.id DESC").
		Limit(limit).Offset(offset).
		Find(&users).Error
	return users, err
}
