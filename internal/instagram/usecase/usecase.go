package usecase

import "context"

// ConnectionStatus describes whether a user has linked an Instagram account
type ConnectionStatus struct {
	Connected       bool   `json:"connected"`
	InstagramUserID string `json:"instagram_user_id,omitempty"`
}

// InstagramUsecase defines the interface for Instagram account linking
type InstagramUsecase interface {
	// AuthURL returns the OAuth authorization URL for the client to open
	AuthURL(state string) string

	// Connect exchanges an authorization code and links the resulting
	// Instagram account to the user
	Connect(ctx context.Context, userID, code string) (*ConnectionStatus, error)

	// Disconnect unlinks the user's Instagram account
	Disconnect(userID string) error

	// Status reports whether the user has a linked Instagram account
	Status(userID string) (*ConnectionStatus, error)
}
