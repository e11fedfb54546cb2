package delivery

import (
	"errors"
	"log"
	"net/http"

	authdomain "postpilot-backend/internal/auth/domain"
	userdto "postpilot-backend/internal/user/dto"
	"postpilot-backend/internal/user/usecase"

	"github.com/gin-gonic/gin"
)

// UserHandler handles profile, settings and subscription requests
type UserHandler struct {
	userUsecase usecase.UserUsecase
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(userUsecase usecase.UserUsecase) *UserHandler {
	return &UserHandler{
		userUsecase: userUsecase,
	}
}

// GetProfile returns the authenticated user's account
// GET /api/users/me
func (h *UserHandler) GetProfile(c *gin.Context) {
	userID := c.GetString("userID")

	user, err := h.userUsecase.GetProfile(userID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// UpdateSettings applies a partial settings update
// PUT /api/users/me
func (h *UserHandler) UpdateSettings(c *gin.Context) {
	userID := c.GetString("userID")

	var req userdto.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.userUsecase.UpdateSettings(userID, &req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// UpdateSubscription sets the user's subscription tier
// PUT /api/users/me/subscribe
func (h *UserHandler) UpdateSubscription(c *gin.Context) {
	userID := c.GetString("userID")

	var req userdto.UpdateSubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.userUsecase.UpdateSubscription(userID, authdomain.Tier(req.Tier))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "subscription updated", "user": user})
}

func (h *UserHandler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, authdomain.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": authdomain.ErrUserNotFound.Error()})
	case errors.Is(err, authdomain.ErrInvalidTier):
		c.JSON(http.StatusBadRequest, gin.H{"error": authdomain.ErrInvalidTier.Error()})
	default:
		log.Printf("[ERROR] user request failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
