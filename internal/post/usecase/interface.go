package usecase

import (
	"context"

	"blog-backend/internal/post/domain"
	"blog-backend/internal/post/dto"
	"blog-backend/internal/post/repository"
)

// PostUsecase drives post listing, lookup, and the ownership-guarded
// mutations.
type PostUsecase interface {
	List(ctx context.Context, params repository.ListParams) (*dto.PaginatedPosts, error)
	GetByID(ctx context.Context, id string) (*domain.Post, error)
	Create(ctx context.Context, authorID string, req *dto.CreatePostRequest) (*domain.Post, error)

	// Update returns modified=false (with a nil error) when the post matched
	// but every requested field already held the requested value.
	Update(ctx context.Context, id, authorID string, req *dto.UpdatePostRequest) (bool, error)
	Delete(ctx context.Context, id, authorID string) error
}
