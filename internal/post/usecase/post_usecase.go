package usecase

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"blog-backend/internal/post/domain"
	"blog-backend/internal/post/dto"
	"blog-backend/internal/post/repository"
)

var (
	// ErrInvalidID flags a malformed post id, rejected before any database
	// round trip.
	ErrInvalidID = errors.New("invalid post id")

	// ErrNotFound covers both "no such post" and "post owned by someone
	// else"; the two are deliberately indistinguishable so mutation attempts
	// cannot probe for other users' resources.
	ErrNotFound = errors.New("post not found")

	// ErrNoFields flags an update request carrying nothing to change.
	ErrNoFields = errors.New("no fields to update")
)

// postUsecase implements PostUsecase.
type postUsecase struct {
	postRepo repository.PostRepository
}

// NewPostUsecase creates a new instance of postUsecase.
func NewPostUsecase(postRepo repository.PostRepository) PostUsecase {
	return &postUsecase{postRepo: postRepo}
}

func (u *postUsecase) List(ctx context.Context, params repository.ListParams) (*dto.PaginatedPosts, error) {
	if params.Page < 1 {
		params.Page = 1
	}
	if params.Limit < 1 {
		params.Limit = 10
	}

	posts, total, err := u.postRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	return dto.NewPaginatedPosts(posts, params.Page, params.Limit, total), nil
}

func (u *postUsecase) GetByID(ctx context.Context, id string) (*domain.Post, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrInvalidID
	}

	post, err := u.postRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrNotFound
	}
	return post, nil
}

func (u *postUsecase) Create(ctx context.Context, authorID string, req *dto.CreatePostRequest) (*domain.Post, error) {
	post := &domain.Post{
		Title:         req.Title,
		Body:          req.Body,
		AuthorID:      authorID,
		Tags:          req.Tags,
		CoverImageURL: req.CoverImageURL,
	}
	if err := u.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

func (u *postUsecase) Update(ctx context.Context, id, authorID string, req *dto.UpdatePostRequest) (bool, error) {
	if _, err := uuid.Parse(id); err != nil {
		return false, ErrInvalidID
	}

	// Empty strings count as absent, so a client echoing back blank fields
	// does not blank out the post.
	upd := &domain.PostUpdate{
		Title:         nonEmpty(req.Title),
		Body:          nonEmpty(req.Body),
		Tags:          req.Tags,
		CoverImageURL: nonEmpty(req.CoverImageURL),
	}
	if upd.Empty() {
		return false, ErrNoFields
	}

	matched, modified, err := u.postRepo.UpdateOwned(ctx, id, authorID, upd)
	if err != nil {
		return false, err
	}
	if !matched {
		return false, ErrNotFound
	}
	return modified, nil
}

func nonEmpty(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}

func (u *postUsecase) Delete(ctx context.Context, id, authorID string) error {
	if _, err := uuid.Parse(id); err != nil {
		return ErrInvalidID
	}

	deleted, err := u.postRepo.DeleteOwned(ctx, id, authorID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}
