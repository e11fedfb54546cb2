package usecase

import (
	"postpilot-backend/internal/post/domain"
	postdto "postpilot-backend/internal/post/dto"
)

// PostUsecase defines the interface for post business logic. Every
// operation on an existing post checks ownership against the
// authenticated user id.
type PostUsecase interface {
	// CreatePost creates a new post for the user
	CreatePost(userID string, req *postdto.CreatePostRequest) (*domain.Post, error)

	// GetPost retrieves a single post (with ownership check)
	GetPost(userID, postID string) (*domain.Post, error)

	// GetUserPosts retrieves all posts for a user, upcoming first
	GetUserPosts(userID string) ([]*domain.Post, error)

	// GetUpcomingPosts retrieves posts scheduled from now onward
	GetUpcomingPosts(userID string) ([]*domain.Post, error)

	// SearchPosts retrieves the user's posts fuzzy-matching a query
	SearchPosts(userID, query string) ([]*domain.Post, error)

	// UpdatePost applies a partial update to an owned post
	UpdatePost(userID, postID string, req *postdto.UpdatePostRequest) (*domain.Post, error)

	// ApprovePost marks an owned post as approved for publishing
	ApprovePost(userID, postID string) (*domain.Post, error)

	// DeletePost deletes an owned post
	DeletePost(userID, postID string) error
}
