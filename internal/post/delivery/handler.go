package delivery

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	authdelivery "blog-backend/internal/auth/delivery"
	"blog-backend/internal/post/dto"
	"blog-backend/internal/post/repository"
	"blog-backend/internal/post/usecase"
)

// PostHandler handles post CRUD requests.
type PostHandler struct {
	postUsecase usecase.PostUsecase
	logger      *zap.Logger
}

// NewPostHandler creates a new PostHandler.
func NewPostHandler(postUsecase usecase.PostUsecase, logger *zap.Logger) *PostHandler {
	return &PostHandler{
		postUsecase: postUsecase,
		logger:      logger,
	}
}

// ListPosts returns a paginated page of all posts.
// GET /posts?page=1&limit=10&sort=createdAt&order=desc
func (h *PostHandler) ListPosts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	result, err := h.postUsecase.List(c.Request.Context(), repository.ListParams{
		Page:  page,
		Limit: limit,
		Sort:  c.DefaultQuery("sort", "createdAt"),
		Order: c.DefaultQuery("order", "desc"),
	})
	if err != nil {
		h.logger.Error("listing posts failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetPost returns a single post by id.
// GET /posts/:id
func (h *PostHandler) GetPost(c *gin.Context) {
	post, err := h.postUsecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidID):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID"})
		case errors.Is(err, usecase.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Post ID not found"})
		default:
			h.logger.Error("fetching post failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"post": post})
}

// CreatePost creates a post authored by the authenticated user.
// POST /posts
func (h *PostHandler) CreatePost(c *gin.Context) {
	authorID := c.GetString(authdelivery.ContextUserID)

	var req dto.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if req.Title == "" || req.Body == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "title and body needed"})
		return
	}

	post, err := h.postUsecase.Create(c.Request.Context(), authorID, &req)
	if err != nil {
		h.logger.Error("creating post failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Post created successfully",
		"postId":  post.ID,
	})
}

// UpdatePost mutates a post under the id+author ownership filter.
// PUT /posts/:id
func (h *PostHandler) UpdatePost(c *gin.Context) {
	authorID := c.GetString(authdelivery.ContextUserID)

	var req dto.UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	modified, err := h.postUsecase.Update(c.Request.Context(), c.Param("id"), authorID, &req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidID):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid Post ID"})
		case errors.Is(err, usecase.ErrNoFields):
			c.JSON(http.StatusBadRequest, gin.H{"error": "No fields to update"})
		case errors.Is(err, usecase.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Post not found or you are not the author"})
		default:
			h.logger.Error("updating post failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	if !modified {
		c.JSON(http.StatusOK, gin.H{"message": "No changes made to the post"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Post updated successfully"})
}

// DeletePost deletes a post under the id+author ownership filter.
// DELETE /posts/:id
func (h *PostHandler) DeletePost(c *gin.Context) {
	authorID := c.GetString(authdelivery.ContextUserID)

	err := h.postUsecase.Delete(c.Request.Context(), c.Param("id"), authorID)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidID):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid Post ID"})
		case errors.Is(err, usecase.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Post not found or you are not the author"})
		default:
			h.logger.Error("deleting post failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.String(http.StatusOK, "Post deleted successfully")
}
