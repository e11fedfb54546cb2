package domain

import (
	"errors"
	"time"
)

// Tier is the subscription plan a user has selected.
type Tier string

const (
	TierBaseline  Tier = "BASELINE"
	TierPromotion Tier = "PROMOTION"
)

var (
	ErrEmailTaken         = errors.New("email address is already in use")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidTier        = errors.New("invalid subscription tier")
)

type User struct {
	ID               string    `json:"id" gorm:"primaryKey"`
	Email            string    `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash     string    `json:"-" gorm:"not null"` // Never return password hash in JSON
	SubscriptionTier *Tier     `json:"subscription_tier"` // nil until the user picks a plan
	ReviewMode       bool      `json:"review_mode" gorm:"default:false"`
	InstagramUserID  string    `json:"instagram_user_id,omitempty"`
	InstagramToken   string    `json:"-"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// ValidTier reports whether t is one of the selectable plans.
func ValidTier(t Tier) bool {
	return t == TierBaseline || t == TierPromotion
}
