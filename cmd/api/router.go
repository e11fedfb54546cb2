package api

import (
	"net/http"

	authDelivery "postpilot-backend/internal/auth/delivery"
	authUsecase "postpilot-backend/internal/auth/usecase"
	instagramDelivery "postpilot-backend/internal/instagram/delivery"
	instagramUsecase "postpilot-backend/internal/instagram/usecase"
	postDelivery "postpilot-backend/internal/post/delivery"
	postUsecase "postpilot-backend/internal/post/usecase"
	userDelivery "postpilot-backend/internal/user/delivery"
	userUsecase "postpilot-backend/internal/user/usecase"

	"postpilot-backend/internal/auth/token"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, authUc authUsecase.AuthUsecase, userUc userUsecase.UserUsecase, postUc postUsecase.PostUsecase, instagramUc instagramUsecase.InstagramUsecase, tokens *token.Manager) {
	authHandler := authDelivery.NewAuthHandler(authUc)
	userHandler := userDelivery.NewUserHandler(userUc)
	postHandler := postDelivery.NewPostHandler(postUc)
	instagramHandler := instagramDelivery.NewInstagramHandler(instagramUc)

	requireAuth := authDelivery.AuthMiddleware(tokens)

	api := r.Group("/api")
	{
		// Health check (no auth required)
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		// Auth routes
		auth := api.Group("/auth")
		{
			auth.POST("/signup", authHandler.Signup)
			auth.POST("/login", authHandler.Login)
			auth.GET("/me", requireAuth, authHandler.Me)
		}

		// User routes (protected)
		users := api.Group("/users")
		users.Use(requireAuth)
		{
			users.GET("/me", userHandler.GetProfile)
			users.PUT("/me", userHandler.UpdateSettings)
			users.PUT("/me/subscribe", userHandler.UpdateSubscription)
		}

		// Post routes (protected)
		posts := api.Group("/posts")
		posts.Use(requireAuth)
		{
			posts.GET("", postHandler.GetPosts)
			posts.GET("/upcoming", postHandler.GetUpcomingPosts)
			posts.GET("/search", postHandler.SearchPosts)
			posts.POST("", postHandler.CreatePost)
			posts.GET("/:postId", postHandler.GetPostByID)
			posts.PATCH("/:postId", postHandler.UpdatePost)
			posts.POST("/:postId/approve", postHandler.ApprovePost)
			posts.DELETE("/:postId", postHandler.DeletePost)
		}

		// Instagram routes (protected)
		ig := api.Group("/instagram")
		ig.Use(requireAuth)
		{
			ig.GET("/auth-url", instagramHandler.GetAuthURL)
			ig.POST("/connect", instagramHandler.Connect)
			ig.DELETE("/disconnect", instagramHandler.Disconnect)
			ig.GET("/status", instagramHandler.Status)
		}
	}
}
