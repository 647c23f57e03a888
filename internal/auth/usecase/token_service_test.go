package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	authdomain "blog-backend/internal/auth/domain"
)

// fakeSessionStore keeps a single user in memory.
type fakeSessionStore struct {
	user *authdomain.User
}

func (f *fakeSessionStore) FindByID(_ context.Context, id string) (*authdomain.User, error) {
	if f.user != nil && f.user.ID == id {
		return f.user, nil
	}
	return nil, nil
}

func (f *fakeSessionStore) UpdateRefreshToken(_ context.Context, userID string, token *string) error {
	if f.user != nil && f.user.ID == userID {
		f.user.RefreshToken = token
	}
	return nil
}

func testUser() *authdomain.User {
	return &authdomain.User{ID: "5f3c1a9e-0000-4000-8000-000000000001", Email: "a@x.com"}
}

func TestTokenService_IssueAndVerify(t *testing.T) {
	svc := NewTokenService("test-secret", time.Hour, 168*time.Hour, &fakeSessionStore{})
	user := testUser()

	pair, err := svc.IssuePair(user)
	require.NoError(t, err)
	require.NotEmpty(t, pair.AccessToken)
	require.NotEmpty(t, pair.RefreshToken)

	claims, err := svc.Verify(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, user.Email, claims.Email)

	claims, err = svc.Verify(pair.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
}

func TestTokenService_VerifyRejectsExpired(t *testing.T) {
	svc := NewTokenService("test-secret", -time.Minute, -time.Minute, &fakeSessionStore{})

	pair, err := svc.IssuePair(testUser())
	require.NoError(t, err)

	_, err = svc.Verify(pair.AccessToken)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenService_VerifyRejectsWrongSecret(t *testing.T) {
	signer := NewTokenService("secret-a", time.Hour, time.Hour, &fakeSessionStore{})
	verifier := NewTokenService("secret-b", time.Hour, time.Hour, &fakeSessionStore{})

	pair, err := signer.IssuePair(testUser())
	require.NoError(t, err)

	_, err = verifier.Verify(pair.AccessToken)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenService_VerifyRejectsGarbage(t *testing.T) {
	svc := NewTokenService("test-secret", time.Hour, time.Hour, &fakeSessionStore{})

	_, err := svc.Verify("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenService_RotateInvalidatesPredecessor(t *testing.T) {
	user := testUser()
	store := &fakeSessionStore{user: user}
	svc := NewTokenService("test-secret", time.Hour, 168*time.Hour, store)

	original, err := svc.IssuePair(user)
	require.NoError(t, err)
	user.RefreshToken = &original.RefreshToken

	// First rotation succeeds and overwrites the stored slot.
	second, err := svc.Rotate(context.Background(), original.RefreshToken)
	require.NoError(t, err)
	require.NotEqual(t, original.RefreshToken, second.RefreshToken)
	require.Equal(t, second.RefreshToken, *user.RefreshToken)

	// The pre-rotation token is permanently unusable.
	_, err = svc.Rotate(context.Background(), original.RefreshToken)
	assert.ErrorIs(t, err, ErrInvalidRefreshToken)

	// The rotated token is accepted by a further rotation.
	third, err := svc.Rotate(context.Background(), second.RefreshToken)
	require.NoError(t, err)
	assert.NotEqual(t, second.RefreshToken, third.RefreshToken)
}

func TestTokenService_RotateRejectsExpiredToken(t *testing.T) {
	user := testUser()
	store := &fakeSessionStore{user: user}
	expired := NewTokenService("test-secret", time.Hour, -time.Minute, store)

	pair, err := expired.IssuePair(user)
	require.NoError(t, err)
	user.RefreshToken = &pair.RefreshToken

	_, err = expired.Rotate(context.Background(), pair.RefreshToken)
	assert.ErrorIs(t, err, ErrExpiredRefreshToken)
}

func TestTokenService_RotateRejectsUnknownUser(t *testing.T) {
	svc := NewTokenService("test-secret", time.Hour, 168*time.Hour, &fakeSessionStore{})

	pair, err := svc.IssuePair(testUser())
	require.NoError(t, err)

	_, err = svc.Rotate(context.Background(), pair.RefreshToken)
	assert.ErrorIs(t, err, ErrInvalidRefreshToken)
}
