package usecase

import (
	"context"

	authdomain "blog-backend/internal/auth/domain"
	postdto "blog-backend/internal/post/dto"
	userdto "blog-backend/internal/user/dto"
)

// UserUsecase drives account and profile operations.
type UserUsecase interface {
	Me(ctx context.Context, userID string) (*authdomain.User, error)
	DeleteAccount(ctx context.Context, userID string) error

	// UpdateBio returns changed=false (with a nil error) when the stored bio
	// already equals the new value.
	UpdateBio(ctx context.Context, userID, bio string) (bool, error)

	PublicProfile(ctx context.Context, id string) (*userdto.PublicProfile, error)
	PostsByUser(ctx context.Context, id string, page, limit int) (*postdto.PaginatedPosts, error)
}
