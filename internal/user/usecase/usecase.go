package usecase

import (
	authdomain "postpilot-backend/internal/auth/domain"
	userdto "postpilot-backend/internal/user/dto"
)

// UserUsecase defines the interface for account management business logic
type UserUsecase interface {
	// GetProfile returns the account for the given user id
	GetProfile(userID string) (*authdomain.User, error)

	// UpdateSubscription sets the user's subscription tier
	UpdateSubscription(userID string, tier authdomain.Tier) (*authdomain.User, error)

	// UpdateSettings applies a partial settings update
	UpdateSettings(userID string, req *userdto.UpdateSettingsRequest) (*authdomain.User, error)
}
