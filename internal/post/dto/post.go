package dto

// CreatePostRequest represents the request body for creating a post
type CreatePostRequest struct {
	Title        string   `json:"title" binding:"required"`
	Description  string   `json:"description"`
	Hashtags     []string `json:"hashtags"`
	ImageURLs    []string `json:"image_urls"`
	ScheduledFor *string  `json:"scheduled_for"` // RFC3339
}

// UpdatePostRequest represents the fields that can be updated
type UpdatePostRequest struct {
	Title        *string   `json:"title,omitempty"`
	Description  *string   `json:"description,omitempty"`
	Hashtags     *[]string `json:"hashtags,omitempty"`
	ImageURLs    *[]string `json:"image_urls,omitempty"`
	ScheduledFor *string   `json:"scheduled_for,omitempty"` // RFC3339
}
