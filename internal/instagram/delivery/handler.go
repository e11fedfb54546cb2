package delivery

import (
	"errors"
	"log"
	"net/http"

	authdomain "postpilot-backend/internal/auth/domain"
	"postpilot-backend/internal/instagram/usecase"

	"github.com/gin-gonic/gin"
)

// InstagramHandler handles Instagram account linking requests
type InstagramHandler struct {
	instagramUsecase usecase.InstagramUsecase
}

// NewInstagramHandler creates a new InstagramHandler
func NewInstagramHandler(instagramUsecase usecase.InstagramUsecase) *InstagramHandler {
	return &InstagramHandler{
		instagramUsecase: instagramUsecase,
	}
}

// ConnectRequest represents the request body for linking an account
type ConnectRequest struct {
	Code string `json:"code" binding:"required"`
}

// GetAuthURL returns the OAuth authorization URL
// GET /api/instagram/auth-url
func (h *InstagramHandler) GetAuthURL(c *gin.Context) {
	userID := c.GetString("userID")

	// The user id doubles as the OAuth state; the callback belongs to the
	// session that started it.
	c.JSON(http.StatusOK, gin.H{"auth_url": h.instagramUsecase.AuthURL(userID)})
}

// Connect exchanges an authorization code and links the account
// POST /api/instagram/connect
func (h *InstagramHandler) Connect(c *gin.Context) {
	userID := c.GetString("userID")

	var req ConnectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	status, err := h.instagramUsecase.Connect(c.Request.Context(), userID, req.Code)
	if err != nil {
		if errors.Is(err, authdomain.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": authdomain.ErrUserNotFound.Error()})
			return
		}
		// Exchange failures get a generic message; the upstream detail is
		// only logged.
		log.Printf("[ERROR] instagram connect failed: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "could not connect Instagram account"})
		return
	}

	c.JSON(http.StatusOK, status)
}

// Disconnect unlinks the account
// DELETE /api/instagram/disconnect
func (h *InstagramHandler) Disconnect(c *gin.Context) {
	userID := c.GetString("userID")

	if err := h.instagramUsecase.Disconnect(userID); err != nil {
		if errors.Is(err, authdomain.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": authdomain.ErrUserNotFound.Error()})
			return
		}
		log.Printf("[ERROR] instagram disconnect failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "instagram account disconnected"})
}

// Status reports whether an account is linked
// GET /api/instagram/status
func (h *InstagramHandler) Status(c *gin.Context) {
	userID := c.GetString("userID")

	status, err := h.instagramUsecase.Status(userID)
	if err != nil {
		if errors.Is(err, authdomain.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": authdomain.ErrUserNotFound.Error()})
			return
		}
		log.Printf("[ERROR] instagram status failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, status)
}
