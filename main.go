package main

import (
	"log"

	api "postpilot-backend/cmd/api"
	authdomain "postpilot-backend/internal/auth/domain"
	"postpilot-backend/internal/auth/password"
	authRepo "postpilot-backend/internal/auth/repository"
	"postpilot-backend/internal/auth/token"
	authUsecase "postpilot-backend/internal/auth/usecase"
	instagramUsecase "postpilot-backend/internal/instagram/usecase"
	postdomain "postpilot-backend/internal/post/domain"
	postRepo "postpilot-backend/internal/post/repository"
	postUsecase "postpilot-backend/internal/post/usecase"
	userUsecase "postpilot-backend/internal/user/usecase"
	"postpilot-backend/pkg/config"
	"postpilot-backend/pkg/database"
	"postpilot-backend/pkg/instagram"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.NewPostgresConnection(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Auto-migrate database schemas
	if err := db.AutoMigrate(&authdomain.User{}, &postdomain.Post{}); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Initialize repositories (dependency injection)
	userRepository := authRepo.NewUserRepository(db)
	postRepository := postRepo.NewGormPostRepository(db)

	// Auth building blocks: the hasher cost and signing secret are fixed
	// here and read-only for the rest of the process lifetime.
	hasher := password.NewHasher(cfg.BcryptCost)
	tokens := token.NewManager(cfg.JWTSecret, cfg.JWTExpiry)

	// External services
	instagramService := instagram.NewService(cfg.InstagramClientID, cfg.InstagramClientSecret, cfg.InstagramRedirectURI)

	// Initialize use cases (dependency injection)
	authUsecaseInstance := authUsecase.NewAuthUsecase(userRepository, hasher, tokens)
	userUsecaseInstance := userUsecase.NewUserUsecase(userRepository)
	postUsecaseInstance := postUsecase.NewPostUsecase(postRepository)
	instagramUsecaseInstance := instagramUsecase.NewInstagramUsecase(userRepository, instagramService)

	// Initialize HTTP handler
	handler := api.NewHandler(authUsecaseInstance, userUsecaseInstance, postUsecaseInstance, instagramUsecaseInstance, tokens, cfg)

	// Start server
	log.Printf("Server starting on port %s", cfg.Port)
	if err := handler.Start(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
