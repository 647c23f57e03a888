package usecase

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"blog-backend/internal/post/domain"
	"blog-backend/internal/post/dto"
	"blog-backend/internal/post/repository"
)

func newTestUsecase(t *testing.T) PostUsecase {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.New().String())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.Post{}))
	return NewPostUsecase(repository.NewPostRepository(db))
}

func strPtr(s string) *string { return &s }

func TestPostUsecase_InvalidIDFailsFast(t *testing.T) {
	uc := newTestUsecase(t)
	ctx := context.Background()
	author := uuid.New().String()

	_, err := uc.GetByID(ctx, "not-a-uuid")
	assert.ErrorIs(t, err, ErrInvalidID)

	_, err = uc.Update(ctx, "not-a-uuid", author, &dto.UpdatePostRequest{Title: strPtr("x")})
	assert.ErrorIs(t, err, ErrInvalidID)

	err = uc.Delete(ctx, "not-a-uuid", author)
	assert.ErrorIs(t, err, ErrInvalidID)
}

func TestPostUsecase_UpdateTreatsEmptyStringsAsAbsent(t *testing.T) {
	uc := newTestUsecase(t)
	ctx := context.Background()
	author := uuid.New().String()

	post, err := uc.Create(ctx, author, &dto.CreatePostRequest{Title: "Hello", Body: "World"})
	require.NoError(t, err)

	// A payload of blank strings carries nothing to update.
	_, err = uc.Update(ctx, post.ID, author, &dto.UpdatePostRequest{Title: strPtr(""), Body: strPtr("")})
	assert.ErrorIs(t, err, ErrNoFields)

	// The stored post is untouched.
	stored, err := uc.GetByID(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, "Hello", stored.Title)
}

func TestPostUsecase_ListPagesMath(t *testing.T) {
	uc := newTestUsecase(t)
	ctx := context.Background()
	author := uuid.New().String()

	for i := 0; i < 3; i++ {
		_, err := uc.Create(ctx, author, &dto.CreatePostRequest{Title: fmt.Sprintf("p%d", i), Body: "b"})
		require.NoError(t, err)
	}

	result, err := uc.List(ctx, repository.ListParams{Page: 1, Limit: 2})
	require.NoError(t, err)
	assert.Len(t, result.Posts, 2)
	assert.EqualValues(t, 3, result.Pagination.Total)
	assert.Equal(t, 2, result.Pagination.Pages)

	// An empty collection paginates to zero pages, not a nil posts field.
	empty := newTestUsecase(t)
	result, err = empty.List(ctx, repository.ListParams{Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.NotNil(t, result.Posts)
	assert.Len(t, result.Posts, 0)
	assert.Equal(t, 0, result.Pagination.Pages)
}

func TestPostUsecase_UpdateNotOwned(t *testing.T) {
	uc := newTestUsecase(t)
	ctx := context.Background()
	owner := uuid.New().String()
	intruder := uuid.New().String()

	post, err := uc.Create(ctx, owner, &dto.CreatePostRequest{Title: "Hello", Body: "World"})
	require.NoError(t, err)

	_, err = uc.Update(ctx, post.ID, intruder, &dto.UpdatePostRequest{Title: strPtr("stolen")})
	assert.ErrorIs(t, err, ErrNotFound)

	err = uc.Delete(ctx, post.ID, intruder)
	assert.ErrorIs(t, err, ErrNotFound)
}
