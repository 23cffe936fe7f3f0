package subscription

import "time"

// Subscription means UserID follows AuthorID.
type Subscription struct {
	ID        int64 `gorm:"primaryKey"`
	UserID    int64 `gorm:"not null;uniqueIndex:idx_subscription_pair"`
	AuthorID  int64 `gorm:"not null;uniqueIndex:idx_subscription_pair;index"`
	CreatedAt time.Time
}

func (Subscription) TableName() string { return "subscriptions" }
