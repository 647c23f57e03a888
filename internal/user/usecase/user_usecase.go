package usecase

import (
	"context"
	"errors"
	"unicode/utf8"

	"github.com/google/uuid"

	authdomain "blog-backend/internal/auth/domain"
	authrepo "blog-backend/internal/auth/repository"
	postdto "blog-backend/internal/post/dto"
	postrepo "blog-backend/internal/post/repository"
	userdto "blog-backend/internal/user/dto"
)

// MaxBioLength bounds the profile bio.
const MaxBioLength = 500

var (
	// ErrInvalidID flags a malformed user id.
	ErrInvalidID = errors.New("invalid user id")

	// ErrUserNotFound is returned when the record no longer exists. A still
	// valid access token for a deleted account lands here: the auth gate is
	// stateless, so the miss surfaces at the lookup.
	ErrUserNotFound = errors.New("user not found")

	// ErrBioTooLong flags a bio over MaxBioLength characters.
	ErrBioTooLong = errors.New("bio too long")
)

// userUsecase implements UserUsecase.
type userUsecase struct {
	userRepo authrepo.UserRepository
	postRepo postrepo.PostRepository
}

// NewUserUsecase creates a new instance of userUsecase.
func NewUserUsecase(userRepo authrepo.UserRepository, postRepo postrepo.PostRepository) UserUsecase {
	return &userUsecase{
		userRepo: userRepo,
		postRepo: postRepo,
	}
}

func (u *userUsecase) Me(ctx context.Context, userID string) (*authdomain.User, error) {
	user, err := u.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func (u *userUsecase) DeleteAccount(ctx context.Context, userID string) error {
	deleted, err := u.userRepo.Delete(ctx, userID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrUserNotFound
	}
	return nil
}

func (u *userUsecase) UpdateBio(ctx context.Context, userID, bio string) (bool, error) {
	// Characters, not bytes: a multi-byte bio under the limit is valid.
	if utf8.RuneCountInString(bio) > MaxBioLength {
		return false, ErrBioTooLong
	}

	matched, changed, err := u.userRepo.UpdateBio(ctx, userID, bio)
	if err != nil {
		return false, err
	}
	if !matched {
		return false, ErrUserNotFound
	}
	return changed, nil
}

func (u *userUsecase) PublicProfile(ctx context.Context, id string) (*userdto.PublicProfile, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrInvalidID
	}

	user, err := u.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	count, err := u.postRepo.CountByAuthor(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	return &userdto.PublicProfile{
		ID:        user.ID,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Bio:       user.Bio,
		CreatedAt: user.CreatedAt,
		PostCount: count,
	}, nil
}

func (u *userUsecase) PostsByUser(ctx context.Context, id string, page, limit int) (*postdto.PaginatedPosts, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrInvalidID
	}

	user, err := u.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	posts, total, err := u.postRepo.List(ctx, postrepo.ListParams{
		Page:     page,
		Limit:    limit,
		Sort:     "createdAt",
		Order:    "desc",
		AuthorID: user.ID,
	})
	if err != nil {
		return nil, err
	}

	return postdto.NewPaginatedPosts(posts, page, limit, total), nil
}
