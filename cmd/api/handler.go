package api

import (
	authUsecase "postpilot-backend/internal/auth/usecase"
	instagramUsecase "postpilot-backend/internal/instagram/usecase"
	postUsecase "postpilot-backend/internal/post/usecase"
	userUsecase "postpilot-backend/internal/user/usecase"

	"postpilot-backend/internal/auth/token"
	"postpilot-backend/pkg/config"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	authUsecase      authUsecase.AuthUsecase
	userUsecase      userUsecase.UserUsecase
	postUsecase      postUsecase.PostUsecase
	instagramUsecase instagramUsecase.InstagramUsecase
	tokens           *token.Manager
	config           *config.Config
}

// NewHandler wires the usecases into an HTTP handler
func NewHandler(authUc authUsecase.AuthUsecase, userUc userUsecase.UserUsecase, postUc postUsecase.PostUsecase, instagramUc instagramUsecase.InstagramUsecase, tokens *token.Manager, cfg *config.Config) *Handler {
	return &Handler{
		authUsecase:      authUc,
		userUsecase:      userUc,
		postUsecase:      postUc,
		instagramUsecase: instagramUc,
		tokens:           tokens,
		config:           cfg,
	}
}

// Engine builds the gin engine with middleware and routes. Split out from
// Start so tests can drive the engine without a listening socket.
func (h *Handler) Engine() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	// CORS middleware
	r.Use(func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if origin != "" {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		} else {
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	SetupRoutes(r, h.authUsecase, h.userUsecase, h.postUsecase, h.instagramUsecase, h.tokens)
	return r
}

func (h *Handler) Start(addr string) error {
	return h.Engine().Run(addr)
}
