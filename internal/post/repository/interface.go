package repository

import (
	"context"

	"blog-backend/internal/post/domain"
)

// ListParams describe a paginated listing. AuthorID, when set, restricts
// the listing to one author's posts.
type ListParams struct {
	Page     int
	Limit    int
	Sort     string
	Order    string
	AuthorID string
}

// PostRepository provides access to persisted posts. Lookups return
// (nil, nil) when no record matches.
type PostRepository interface {
	Create(ctx context.Context, post *domain.Post) error
	FindByID(ctx context.Context, id string) (*domain.Post, error)
	List(ctx context.Context, params ListParams) ([]*domain.Post, int64, error)
	CountByAuthor(ctx context.Context, authorID string) (int64, error)

	// UpdateOwned applies the update under a filter requiring both the post
	// id and the author id to match. Returns (matched, modified): matched is
	// false when the filter hit nothing (absent or not owned — the two are
	// indistinguishable on purpose), modified is false when every requested
	// field already held the requested value.
	UpdateOwned(ctx context.Context, id, authorID string, upd *domain.PostUpdate) (bool, bool, error)

	// DeleteOwned deletes under the same id+author filter. Returns false
	// when nothing matched.
	DeleteOwned(ctx context.Context, id, authorID string) (bool, error)
}
