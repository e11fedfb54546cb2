package domain

import (
	"errors"
	"time"
)

// Status represents where a post is in the review workflow
type Status string

const (
	StatusDraft         Status = "DRAFT"
	StatusPendingReview Status = "PENDING_REVIEW"
	StatusApproved      Status = "APPROVED"
)

// ErrPostNotFound covers both a missing post and a post owned by someone
// else. The two are deliberately collapsed so non-owners cannot probe for
// resource existence.
var ErrPostNotFound = errors.New("post not found")

// ErrInvalidSchedule reports an unparseable scheduled_for timestamp.
var ErrInvalidSchedule = errors.New("invalid scheduled_for timestamp, expected RFC3339")

// Post represents a scheduled social-media post
type Post struct {
	ID           string     `json:"id" gorm:"primaryKey"`
	UserID       string     `json:"user_id" gorm:"index;not null"`
	Title        string     `json:"title" gorm:"not null"`
	Description  string     `json:"description,omitempty"`
	Hashtags     []string   `json:"hashtags" gorm:"serializer:json"`
	ImageURLs    []string   `json:"image_urls" gorm:"serializer:json"`
	ScheduledFor *time.Time `json:"scheduled_for,omitempty"`
	Status       Status     `json:"status" gorm:"default:DRAFT"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}
