package usecase

import (
	authdomain "postpilot-backend/internal/auth/domain"
	authdto "postpilot-backend/internal/auth/dto"
)

// AuthUsecase defines the interface for authentication business logic
type AuthUsecase interface {
	// Signup registers a new account and returns a token for it
	Signup(req *authdto.SignupRequest) (*authdto.TokenResponse, error)

	// Login verifies credentials and returns a fresh token
	Login(req *authdto.LoginRequest) (*authdto.TokenResponse, error)

	// Profile returns the account for an authenticated subject
	Profile(userID string) (*authdomain.User, error)
}
