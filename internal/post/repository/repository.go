package repository

import (
	"time"

	"postpilot-backend/internal/post/domain"
)

// PostRepository defines the interface for post data access
type PostRepository interface {
	// Create creates a new post
	Create(post *domain.Post) error

	// FindByID finds a post by its ID, or nil if absent
	FindByID(id string) (*domain.Post, error)

	// FindByUserID finds all posts for a user, upcoming first
	FindByUserID(userID string) ([]*domain.Post, error)

	// FindUpcoming finds posts for a user scheduled at or after now
	FindUpcoming(userID string, now time.Time) ([]*domain.Post, error)

	// Update updates an existing post
	Update(post *domain.Post) error

	// Delete deletes a post by ID
	Delete(id string) error
}
