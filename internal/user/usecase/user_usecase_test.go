package usecase

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	authdomain "blog-backend/internal/auth/domain"
	authrepo "blog-backend/internal/auth/repository"
	postdomain "blog-backend/internal/post/domain"
	postrepo "blog-backend/internal/post/repository"
)

func newTestUsecase(t *testing.T) (UserUsecase, authrepo.UserRepository, postrepo.PostRepository) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.New().String())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&authdomain.User{}, &postdomain.Post{}))

	userRepo := authrepo.NewUserRepository(db)
	postRepo := postrepo.NewPostRepository(db)
	return NewUserUsecase(userRepo, postRepo), userRepo, postRepo
}

func seedUser(t *testing.T, repo authrepo.UserRepository, email string) *authdomain.User {
	t.Helper()
	user := &authdomain.User{Email: email, Password: "hash", FirstName: "Ada"}
	require.NoError(t, repo.Create(context.Background(), user))
	return user
}

func TestUserUsecase_Me(t *testing.T) {
	uc, userRepo, _ := newTestUsecase(t)
	ctx := context.Background()
	user := seedUser(t, userRepo, "a@x.com")

	me, err := uc.Me(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", me.Email)

	_, err = uc.Me(ctx, uuid.New().String())
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUserUsecase_DeleteAccount(t *testing.T) {
	uc, userRepo, _ := newTestUsecase(t)
	ctx := context.Background()
	user := seedUser(t, userRepo, "a@x.com")

	require.NoError(t, uc.DeleteAccount(ctx, user.ID))
	assert.ErrorIs(t, uc.DeleteAccount(ctx, user.ID), ErrUserNotFound)
	_, err := uc.Me(ctx, user.ID)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUserUsecase_UpdateBio(t *testing.T) {
	uc, userRepo, _ := newTestUsecase(t)
	ctx := context.Background()
	user := seedUser(t, userRepo, "a@x.com")

	_, err := uc.UpdateBio(ctx, user.ID, strings.Repeat("x", MaxBioLength+1))
	assert.ErrorIs(t, err, ErrBioTooLong)

	// The limit counts characters, so a multi-byte bio at the boundary passes
	// even though it is over the limit in bytes.
	changed, err := uc.UpdateBio(ctx, user.ID, strings.Repeat("é", MaxBioLength))
	require.NoError(t, err)
	assert.True(t, changed)

	_, err = uc.UpdateBio(ctx, user.ID, strings.Repeat("é", MaxBioLength+1))
	assert.ErrorIs(t, err, ErrBioTooLong)

	changed, err = uc.UpdateBio(ctx, user.ID, "hello")
	require.NoError(t, err)
	assert.True(t, changed)

	changed, err = uc.UpdateBio(ctx, user.ID, "hello")
	require.NoError(t, err)
	assert.False(t, changed)

	_, err = uc.UpdateBio(ctx, uuid.New().String(), "hello")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUserUsecase_PublicProfile(t *testing.T) {
	uc, userRepo, postRepo := newTestUsecase(t)
	ctx := context.Background()
	user := seedUser(t, userRepo, "a@x.com")

	require.NoError(t, postRepo.Create(ctx, &postdomain.Post{Title: "t", Body: "b", AuthorID: user.ID}))

	_, err := uc.PublicProfile(ctx, "not-a-uuid")
	assert.ErrorIs(t, err, ErrInvalidID)

	_, err = uc.PublicProfile(ctx, uuid.New().String())
	assert.ErrorIs(t, err, ErrUserNotFound)

	profile, err := uc.PublicProfile(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ada", profile.FirstName)
	assert.EqualValues(t, 1, profile.PostCount)
}

func TestUserUsecase_PostsByUser(t *testing.T) {
	uc, userRepo, postRepo := newTestUsecase(t)
	ctx := context.Background()
	alice := seedUser(t, userRepo, "alice@x.com")
	bob := seedUser(t, userRepo, "bob@x.com")

	require.NoError(t, postRepo.Create(ctx, &postdomain.Post{Title: "alice-post", Body: "b", AuthorID: alice.ID}))
	require.NoError(t, postRepo.Create(ctx, &postdomain.Post{Title: "bob-post", Body: "b", AuthorID: bob.ID}))

	result, err := uc.PostsByUser(ctx, alice.ID, 1, 10)
	require.NoError(t, err)
	require.Len(t, result.Posts, 1)
	assert.Equal(t, "alice-post", result.Posts[0].Title)
	assert.Equal(t, 1, result.Pagination.Pages)

	_, err = uc.PostsByUser(ctx, "not-a-uuid", 1, 10)
	assert.ErrorIs(t, err, ErrInvalidID)
}
