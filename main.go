package main

import (
	"log"

	"go.uber.org/zap"

	api "blog-backend/cmd/api"
	authdelivery "blog-backend/internal/auth/delivery"
	authdomain "blog-backend/internal/auth/domain"
	authrepo "blog-backend/internal/auth/repository"
	authusecase "blog-backend/internal/auth/usecase"
	postdelivery "blog-backend/internal/post/delivery"
	postdomain "blog-backend/internal/post/domain"
	postrepo "blog-backend/internal/post/repository"
	postusecase "blog-backend/internal/post/usecase"
	userdelivery "blog-backend/internal/user/delivery"
	userusecase "blog-backend/internal/user/usecase"
	"blog-backend/pkg/config"
	"blog-backend/pkg/database"
	"blog-backend/pkg/logger"
	"blog-backend/pkg/metrics"
)

func main() {
	// Load configuration
	cfg := config.Load()

	zapLogger, err := logger.New(cfg.LogLevel)
	if err != nil {
		log.Fatal("Failed to build logger:", err)
	}
	defer zapLogger.Sync()

	// Initialize database
	db, err := database.NewPostgresConnection(cfg)
	if err != nil {
		zapLogger.Fatal("Failed to connect to database", zap.Error(err))
	}

	// Auto-migrate database schemas
	if err := db.AutoMigrate(&authdomain.User{}, &postdomain.Post{}); err != nil {
		zapLogger.Fatal("Failed to migrate database", zap.Error(err))
	}

	// Initialize repositories (dependency injection)
	userRepo := authrepo.NewUserRepository(db)
	postRepo := postrepo.NewPostRepository(db)

	// Token service takes the user repository as its session store, so a
	// rotation can check the presented refresh token against the stored slot.
	tokenService := authusecase.NewTokenService(cfg.JWTSecret, cfg.JWTAccessExpiry, cfg.JWTRefreshExpiry, userRepo)

	// Initialize use cases
	authUsecaseInstance := authusecase.NewAuthUsecase(userRepo, tokenService)
	postUsecaseInstance := postusecase.NewPostUsecase(postRepo)
	userUsecaseInstance := userusecase.NewUserUsecase(userRepo, postRepo)

	// Initialize HTTP handlers
	handler := api.NewHandler(
		authdelivery.NewAuthHandler(authUsecaseInstance, zapLogger),
		userdelivery.NewUserHandler(userUsecaseInstance, zapLogger),
		postdelivery.NewPostHandler(postUsecaseInstance, zapLogger),
		tokenService,
		metrics.New(),
		zapLogger,
	)

	addr := cfg.ServerHost + ":" + cfg.ServerPort
	zapLogger.Info("Server starting", zap.String("addr", addr))
	if err := handler.Start(addr); err != nil {
		zapLogger.Fatal("Failed to start server", zap.Error(err))
	}
}
