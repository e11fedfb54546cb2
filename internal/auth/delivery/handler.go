package delivery

import (
	"errors"
	"log"
	"net/http"

	authdomain "postpilot-backend/internal/auth/domain"
	authdto "postpilot-backend/internal/auth/dto"
	"postpilot-backend/internal/auth/usecase"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles signup, login and profile requests
type AuthHandler struct {
	authUsecase usecase.AuthUsecase
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authUsecase usecase.AuthUsecase) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
	}
}

// Signup registers a new account
// POST /api/auth/signup
func (h *AuthHandler) Signup(c *gin.Context) {
	var req authdto.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.authUsecase.Signup(&req)
	if err != nil {
		if errors.Is(err, authdomain.ErrEmailTaken) {
			c.JSON(http.StatusConflict, gin.H{"error": authdomain.ErrEmailTaken.Error()})
			return
		}
		log.Printf("[ERROR] signup failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// Login verifies credentials and returns a token
// POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req authdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.authUsecase.Login(&req)
	if err != nil {
		if errors.Is(err, authdomain.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": authdomain.ErrInvalidCredentials.Error()})
			return
		}
		log.Printf("[ERROR] login failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Me returns the authenticated user's account
// GET /api/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	userID := c.GetString("userID")

	user, err := h.authUsecase.Profile(userID)
	if err != nil {
		if errors.Is(err, authdomain.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": authdomain.ErrUserNotFound.Error()})
			return
		}
		log.Printf("[ERROR] profile lookup failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, user)
}
