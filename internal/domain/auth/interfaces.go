package auth

import (
	"context"

	"gorm.io/gorm"
)

// SubscriptionChecker answers whether userID follows authorID.
type SubscriptionChecker interface {
	IsSubscribed(ctx context.Context, userID, authorID int64) (bool, error)
}

// UserPurger removes rows owned by a user. It runs inside the account
// deletion transaction and must only use tx.
type UserPurger interface {
	PurgeUser(tx *gorm.DB, userID int64) error
}

type TokenIssuer interface {
	GenerateToken(userID int64, role string) (string, error)
}
