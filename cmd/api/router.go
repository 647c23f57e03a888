package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	authdelivery "blog-backend/internal/auth/delivery"
)

func SetupRoutes(r *gin.Engine, h *Handler) {
	authRequired := authdelivery.AuthMiddleware(h.tokens)

	// Health check (no auth required)
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Prometheus scrape endpoint
	r.GET("/metrics", h.metrics.Handler())

	auth := r.Group("/auth")
	{
		auth.POST("/signup", h.authHandler.Signup)
		auth.POST("/signin", h.authHandler.Signin)
		auth.POST("/refresh-token", h.authHandler.RefreshToken)
	}

	users := r.Group("/users")
	{
		users.GET("/me", authRequired, h.userHandler.Me)
		users.DELETE("/me", authRequired, h.userHandler.DeleteMe)
		users.PUT("/me/profile", authRequired, h.userHandler.UpdateProfile)
		users.GET("/:id", h.userHandler.PublicProfile)
		users.GET("/:id/posts", h.userHandler.UserPosts)
	}

	posts := r.Group("/posts")
	{
		posts.GET("", h.postHandler.ListPosts)
		posts.POST("", authRequired, h.postHandler.CreatePost)
		posts.GET("/:id", authRequired, h.postHandler.GetPost)
		posts.PUT("/:id", authRequired, h.postHandler.UpdatePost)
		posts.DELETE("/:id", authRequired, h.postHandler.DeletePost)
	}
}
