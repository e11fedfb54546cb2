package delivery

import (
	"errors"
	"log"
	"net/http"

	"postpilot-backend/internal/post/domain"
	postdto "postpilot-backend/internal/post/dto"
	"postpilot-backend/internal/post/usecase"

	"github.com/gin-gonic/gin"
)

// PostHandler handles post-related HTTP requests
type PostHandler struct {
	postUsecase usecase.PostUsecase
}

// NewPostHandler creates a new PostHandler
func NewPostHandler(postUsecase usecase.PostUsecase) *PostHandler {
	return &PostHandler{
		postUsecase: postUsecase,
	}
}

// GetPosts returns all posts for the authenticated user
// GET /api/posts
func (h *PostHandler) GetPosts(c *gin.Context) {
	userID := c.GetString("userID")

	posts, err := h.postUsecase.GetUserPosts(userID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, posts)
}

// GetUpcomingPosts returns posts scheduled from now onward
// GET /api/posts/upcoming
func (h *PostHandler) GetUpcomingPosts(c *gin.Context) {
	userID := c.GetString("userID")

	posts, err := h.postUsecase.GetUpcomingPosts(userID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, posts)
}

// SearchPosts returns the user's posts fuzzy-matching a query
// GET /api/posts/search?q=offer
func (h *PostHandler) SearchPosts(c *gin.Context) {
	userID := c.GetString("userID")

	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query parameter q is required"})
		return
	}

	posts, err := h.postUsecase.SearchPosts(userID, query)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, posts)
}

// GetPostByID returns a specific post
// GET /api/posts/:postId
func (h *PostHandler) GetPostByID(c *gin.Context) {
	userID := c.GetString("userID")
	postID := c.Param("postId")

	post, err := h.postUsecase.GetPost(userID, postID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, post)
}

// CreatePost creates a new post
// POST /api/posts
func (h *PostHandler) CreatePost(c *gin.Context) {
	userID := c.GetString("userID")

	var req postdto.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	post, err := h.postUsecase.CreatePost(userID, &req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, post)
}

// UpdatePost applies a partial update to a post
// PATCH /api/posts/:postId
func (h *PostHandler) UpdatePost(c *gin.Context) {
	userID := c.GetString("userID")
	postID := c.Param("postId")

	var req postdto.UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	post, err := h.postUsecase.UpdatePost(userID, postID, &req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, post)
}

// ApprovePost marks a post as approved for publishing
// POST /api/posts/:postId/approve
func (h *PostHandler) ApprovePost(c *gin.Context) {
	userID := c.GetString("userID")
	postID := c.Param("postId")

	post, err := h.postUsecase.ApprovePost(userID, postID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, post)
}

// DeletePost deletes a post
// DELETE /api/posts/:postId
func (h *PostHandler) DeletePost(c *gin.Context) {
	userID := c.GetString("userID")
	postID := c.Param("postId")

	if err := h.postUsecase.DeletePost(userID, postID); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "post deleted"})
}

func (h *PostHandler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrPostNotFound):
		// Foreign and missing posts get the same response on purpose.
		c.JSON(http.StatusNotFound, gin.H{"error": domain.ErrPostNotFound.Error()})
	case errors.Is(err, domain.ErrInvalidSchedule):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		log.Printf("[ERROR] post request failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
