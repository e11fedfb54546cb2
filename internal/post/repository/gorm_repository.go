package repository

import (
	"errors"
	"time"

	"postpilot-backend/internal/post/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// gormPostRepository implements PostRepository using GORM
type gormPostRepository struct {
	db *gorm.DB
}

// NewGormPostRepository creates a new GORM-based PostRepository
func NewGormPostRepository(db *gorm.DB) PostRepository {
	return &gormPostRepository{db: db}
}

func (r *gormPostRepository) Create(post *domain.Post) error {
	if post.ID == "" {
		post.ID = uuid.New().String()
	}
	if post.Status == "" {
		post.Status = domain.StatusDraft
	}
	post.CreatedAt = time.Now()
	post.UpdatedAt = time.Now()
	return r.db.Create(post).Error
}

func (r *gormPostRepository) FindByID(id string) (*domain.Post, error) {
	var post domain.Post
	err := r.db.Where("id = ?", id).First(&post).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &post, nil
}

func (r *gormPostRepository) FindByUserID(userID string) ([]*domain.Post, error) {
	posts := make([]*domain.Post, 0)
	// Scheduled posts first in chronological order, unscheduled drafts last
	err := r.db.Where("user_id = ?", userID).
		Order("CASE WHEN scheduled_for IS NULL THEN 1 ELSE 0 END, scheduled_for ASC, created_at DESC").
		Find(&posts).Error
	return posts, err
}

func (r *gormPostRepository) FindUpcoming(userID string, now time.Time) ([]*domain.Post, error) {
	posts := make([]*domain.Post, 0)
	err := r.db.Where("user_id = ? AND scheduled_for >= ?", userID, now).
		Order("scheduled_for ASC").
		Find(&posts).Error
	return posts, err
}

func (r *gormPostRepository) Update(post *domain.Post) error {
	post.UpdatedAt = time.Now()
	return r.db.Save(post).Error
}

func (r *gormPostRepository) Delete(id string) error {
	return r.db.Delete(&domain.Post{}, "id = ?", id).Error
}
