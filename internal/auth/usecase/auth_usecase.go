package usecase

import (
	"context"
	"errors"

	authdomain "blog-backend/internal/auth/domain"
	authdto "blog-backend/internal/auth/dto"
	"blog-backend/internal/auth/repository"
	"blog-backend/pkg/hash"
)

var (
	// ErrEmailTaken is returned on sign-up when the email is already registered.
	ErrEmailTaken = errors.New("email already registered")

	// ErrNoSuchUser is returned on sign-in for an unknown email.
	ErrNoSuchUser = errors.New("user doesn't exist")

	// ErrWrongPassword is returned on sign-in when verification fails.
	ErrWrongPassword = errors.New("wrong password")
)

// authUsecase implements AuthUsecase.
type authUsecase struct {
	userRepo repository.UserRepository
	tokens   *TokenService
}

// NewAuthUsecase creates a new instance of authUsecase.
func NewAuthUsecase(userRepo repository.UserRepository, tokens *TokenService) AuthUsecase {
	return &authUsecase{
		userRepo: userRepo,
		tokens:   tokens,
	}
}

// Signup registers a new account. The duplicate-email check is a lookup
// rather than a constraint catch; the unique index on email is only the
// storage-layer backstop for the narrow concurrent-signup window.
func (u *authUsecase) Signup(ctx context.Context, req *authdto.SignupRequest) (*authdto.SignupResponse, error) {
	existing, err := u.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hashedPassword, err := hash.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &authdomain.User{
		Email:       req.Email,
		Password:    hashedPassword,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		PhoneNumber: req.PhoneNumber,
	}
	if err := u.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return &authdto.SignupResponse{ID: user.ID, Email: user.Email}, nil
}

// Signin verifies credentials, issues a token pair, and overwrites the
// user's refresh-token slot with the new refresh token.
func (u *authUsecase) Signin(ctx context.Context, req *authdto.SigninRequest) (*authdto.TokenResponse, error) {
	user, err := u.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNoSuchUser
	}

	if !hash.CheckPasswordHash(req.Password, user.Password) {
		return nil, ErrWrongPassword
	}

	pair, err := u.tokens.IssuePair(user)
	if err != nil {
		return nil, err
	}

	if err := u.userRepo.UpdateRefreshToken(ctx, user.ID, &pair.RefreshToken); err != nil {
		return nil, err
	}

	return pair, nil
}

// Refresh rotates the presented refresh token for a new pair.
func (u *authUsecase) Refresh(ctx context.Context, refreshToken string) (*authdto.TokenResponse, error) {
	return u.tokens.Rotate(ctx, refreshToken)
}
