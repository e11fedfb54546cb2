package repository

import authdomain "postpilot-backend/internal/auth/domain"

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create inserts a new user and assigns its ID. A unique-constraint
	// violation on email is returned as domain.ErrEmailTaken.
	Create(user *authdomain.User) error

	// FindByEmail returns the user with the given email, or nil if absent
	FindByEmail(email string) (*authdomain.User, error)

	// FindByID returns the user with the given id, or nil if absent
	FindByID(id string) (*authdomain.User, error)

	// Update persists changes to an existing user
	Update(user *authdomain.User) error
}
