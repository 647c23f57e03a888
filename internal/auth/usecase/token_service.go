package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	authdomain "blog-backend/internal/auth/domain"
	authdto "blog-backend/internal/auth/dto"
)

var (
	// ErrInvalidToken covers every access-token failure: bad signature,
	// malformed token, expiry. Callers get one undifferentiated error.
	ErrInvalidToken = errors.New("invalid or expired token")

	// ErrExpiredRefreshToken is returned when the presented refresh token
	// fails signature or expiry checks.
	ErrExpiredRefreshToken = errors.New("invalid or expired refresh token")

	// ErrInvalidRefreshToken is returned when a well-signed refresh token no
	// longer matches the stored slot, i.e. it was superseded by a rotation.
	ErrInvalidRefreshToken = errors.New("invalid refresh token")
)

// Claims is the identity payload carried by both tokens.
type Claims struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// SessionStore is the persistence capability TokenService needs for refresh
// rotation: load the user and overwrite their refresh-token slot.
type SessionStore interface {
	FindByID(ctx context.Context, id string) (*authdomain.User, error)
	UpdateRefreshToken(ctx context.Context, userID string, token *string) error
}

// TokenService issues, verifies, and rotates HS256-signed token pairs.
type TokenService struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
	sessions   SessionStore
}

func NewTokenService(secret string, accessTTL, refreshTTL time.Duration, sessions SessionStore) *TokenService {
	return &TokenService{
		secret:     []byte(secret),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
		sessions:   sessions,
	}
}

// IssuePair signs a fresh access/refresh token pair for the user. It does
// not persist anything; callers decide when the refresh slot is overwritten.
func (s *TokenService) IssuePair(user *authdomain.User) (*authdto.TokenResponse, error) {
	accessToken, err := s.sign(user, s.accessTTL, "")
	if err != nil {
		return nil, err
	}

	// The jti makes back-to-back rotations yield distinct token strings
	// even within the same second.
	refreshToken, err := s.sign(user, s.refreshTTL, uuid.New().String())
	if err != nil {
		return nil, err
	}

	return &authdto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// Verify checks the token's signature and expiry and returns its claims.
func (s *TokenService) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// Rotate exchanges a refresh token for a brand-new pair. Beyond signature
// and expiry, the presented token must be the exact string currently stored
// on the user record; a token superseded by an earlier rotation fails here.
// On success the stored token is overwritten, so the old one is permanently
// unusable.
func (s *TokenService) Rotate(ctx context.Context, oldRefreshToken string) (*authdto.TokenResponse, error) {
	claims, err := s.Verify(oldRefreshToken)
	if err != nil {
		return nil, ErrExpiredRefreshToken
	}

	user, err := s.sessions.FindByID(ctx, claims.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil || user.RefreshToken == nil || *user.RefreshToken != oldRefreshToken {
		return nil, ErrInvalidRefreshToken
	}

	pair, err := s.IssuePair(user)
	if err != nil {
		return nil, err
	}

	if err := s.sessions.UpdateRefreshToken(ctx, user.ID, &pair.RefreshToken); err != nil {
		return nil, err
	}

	return pair, nil
}

func (s *TokenService) sign(user *authdomain.User, ttl time.Duration, jti string) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID: user.ID,
		Email:  user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        jti,
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}
