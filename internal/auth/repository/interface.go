package repository

import (
	"context"

	authdomain "blog-backend/internal/auth/domain"
)

// UserRepository provides access to persisted user records. Lookups return
// (nil, nil) when no record matches.
type UserRepository interface {
	Create(ctx context.Context, user *authdomain.User) error
	FindByEmail(ctx context.Context, email string) (*authdomain.User, error)
	FindByID(ctx context.Context, id string) (*authdomain.User, error)

	// UpdateRefreshToken overwrites the user's refresh-token slot. Passing
	// nil clears it.
	UpdateRefreshToken(ctx context.Context, userID string, token *string) error

	// UpdateBio sets the user's bio. Returns (matched, changed): matched is
	// false when no such user exists, changed is false when the stored bio
	// already equals the new value.
	UpdateBio(ctx context.Context, userID, bio string) (bool, bool, error)

	// Delete removes the user record. Returns false when no record matched.
	Delete(ctx context.Context, userID string) (bool, error)
}
