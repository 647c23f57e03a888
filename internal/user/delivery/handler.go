package delivery

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	authdelivery "blog-backend/internal/auth/delivery"
	userdto "blog-backend/internal/user/dto"
	"blog-backend/internal/user/usecase"
)

// UserHandler handles account and profile requests.
type UserHandler struct {
	userUsecase usecase.UserUsecase
	logger      *zap.Logger
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userUsecase usecase.UserUsecase, logger *zap.Logger) *UserHandler {
	return &UserHandler{
		userUsecase: userUsecase,
		logger:      logger,
	}
}

// Me returns the authenticated user's full record.
// GET /users/me
func (h *UserHandler) Me(c *gin.Context) {
	userID := c.GetString(authdelivery.ContextUserID)

	user, err := h.userUsecase.Me(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		h.logger.Error("fetching current user failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, user)
}

// DeleteMe deletes the authenticated user's account.
// DELETE /users/me
func (h *UserHandler) DeleteMe(c *gin.Context) {
	userID := c.GetString(authdelivery.ContextUserID)

	if err := h.userUsecase.DeleteAccount(c.Request.Context(), userID); err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		h.logger.Error("deleting account failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.String(http.StatusOK, "User deleted successfully")
}

// UpdateProfile sets the authenticated user's bio.
// PUT /users/me/profile
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	userID := c.GetString(authdelivery.ContextUserID)

	var req userdto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if req.Bio == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing bio"})
		return
	}

	changed, err := h.userUsecase.UpdateBio(c.Request.Context(), userID, *req.Bio)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrBioTooLong):
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Bio must be %d characters or less", usecase.MaxBioLength)})
		case errors.Is(err, usecase.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		default:
			h.logger.Error("updating profile failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	message := "Profile updated successfully"
	if !changed {
		message = "No changes made"
	}
	c.JSON(http.StatusOK, gin.H{"message": message, "bio": *req.Bio})
}

// PublicProfile returns another user's public fields plus their post count.
// GET /users/:id
func (h *UserHandler) PublicProfile(c *gin.Context) {
	profile, err := h.userUsecase.PublicProfile(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidID):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID"})
		case errors.Is(err, usecase.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		default:
			h.logger.Error("fetching public profile failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, profile)
}

// UserPosts returns a paginated listing of one user's posts.
// GET /users/:id/posts
func (h *UserHandler) UserPosts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	result, err := h.userUsecase.PostsByUser(c.Request.Context(), c.Param("id"), page, limit)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidID):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID"})
		case errors.Is(err, usecase.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		default:
			h.logger.Error("fetching user posts failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, result)
}
