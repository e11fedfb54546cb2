package usecase

import (
	"fmt"
	"time"

	"postpilot-backend/internal/post/domain"
	postdto "postpilot-backend/internal/post/dto"
	"postpilot-backend/internal/post/repository"
	"postpilot-backend/pkg/fuzzy"
)

// postUsecase implements PostUsecase interface
type postUsecase struct {
	postRepo repository.PostRepository
}

// NewPostUsecase creates a new instance of postUsecase
func NewPostUsecase(postRepo repository.PostRepository) PostUsecase {
	return &postUsecase{
		postRepo: postRepo,
	}
}

func (u *postUsecase) CreatePost(userID string, req *postdto.CreatePostRequest) (*domain.Post, error) {
	scheduledFor, err := parseTime(req.ScheduledFor)
	if err != nil {
		return nil, err
	}

	post := &domain.Post{
		UserID:       userID,
		Title:        req.Title,
		Description:  req.Description,
		Hashtags:     req.Hashtags,
		ImageURLs:    req.ImageURLs,
		ScheduledFor: scheduledFor,
		Status:       domain.StatusPendingReview,
	}
	if err := u.postRepo.Create(post); err != nil {
		return nil, err
	}
	return post, nil
}

func (u *postUsecase) GetPost(userID, postID string) (*domain.Post, error) {
	return u.findOwned(userID, postID)
}

func (u *postUsecase) GetUserPosts(userID string) ([]*domain.Post, error) {
	return u.postRepo.FindByUserID(userID)
}

func (u *postUsecase) GetUpcomingPosts(userID string) ([]*domain.Post, error) {
	return u.postRepo.FindUpcoming(userID, time.Now())
}

func (u *postUsecase) SearchPosts(userID, query string) ([]*domain.Post, error) {
	posts, err := u.postRepo.FindByUserID(userID)
	if err != nil {
		return nil, err
	}

	matched := make([]*domain.Post, 0, len(posts))
	for _, post := range posts {
		if fuzzy.MatchPost(query, post.Title, post.Description, post.Hashtags) {
			matched = append(matched, post)
		}
	}
	return matched, nil
}

func (u *postUsecase) UpdatePost(userID, postID string, req *postdto.UpdatePostRequest) (*domain.Post, error) {
	post, err := u.findOwned(userID, postID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		post.Title = *req.Title
	}
	if req.Description != nil {
		post.Description = *req.Description
	}
	if req.Hashtags != nil {
		post.Hashtags = *req.Hashtags
	}
	if req.ImageURLs != nil {
		post.ImageURLs = *req.ImageURLs
	}
	if req.ScheduledFor != nil {
		scheduledFor, err := parseTime(req.ScheduledFor)
		if err != nil {
			return nil, err
		}
		post.ScheduledFor = scheduledFor
	}

	if err := u.postRepo.Update(post); err != nil {
		return nil, err
	}
	return post, nil
}

func (u *postUsecase) ApprovePost(userID, postID string) (*domain.Post, error) {
	post, err := u.findOwned(userID, postID)
	if err != nil {
		return nil, err
	}

	post.Status = domain.StatusApproved
	if err := u.postRepo.Update(post); err != nil {
		return nil, err
	}
	return post, nil
}

func (u *postUsecase) DeletePost(userID, postID string) error {
	post, err := u.findOwned(userID, postID)
	if err != nil {
		return err
	}
	return u.postRepo.Delete(post.ID)
}

// findOwned loads a post and enforces the ownership check. A missing post
// and a post owned by another user both come back as ErrPostNotFound.
func (u *postUsecase) findOwned(userID, postID string) (*domain.Post, error) {
	post, err := u.postRepo.FindByID(postID)
	if err != nil {
		return nil, err
	}
	if post == nil || post.UserID != userID {
		return nil, domain.ErrPostNotFound
	}
	return post, nil
}

func parseTime(value *string) (*time.Time, error) {
	if value == nil || *value == "" {
		return nil, nil
	}
	parsed, err := time.Parse(time.RFC3339, *value)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidSchedule, *value)
	}
	return &parsed, nil
}
