package usecase

import (
	"context"

	authdto "blog-backend/internal/auth/dto"
)

// TokenVerifier is the slice of TokenService the auth gate depends on.
type TokenVerifier interface {
	Verify(tokenString string) (*Claims, error)
}

// AuthUsecase drives the sign-up, sign-in, and token-refresh flows.
type AuthUsecase interface {
	Signup(ctx context.Context, req *authdto.SignupRequest) (*authdto.SignupResponse, error)
	Signin(ctx context.Context, req *authdto.SigninRequest) (*authdto.TokenResponse, error)
	Refresh(ctx context.Context, refreshToken string) (*authdto.TokenResponse, error)
}
