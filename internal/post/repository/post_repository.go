package repository

import (
	"context"
	"errors"
	"slices"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"blog-backend/internal/post/domain"
)

// Whitelist of sortable columns; anything else falls back to created_at.
var sortColumns = map[string]string{
	"createdAt": "created_at",
	"updatedAt": "updated_at",
	"title":     "title",
}

// postRepository implements PostRepository on GORM.
type postRepository struct {
	db *gorm.DB
}

// NewPostRepository creates a new instance of postRepository.
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(ctx context.Context, post *domain.Post) error {
	if post.ID == "" {
		post.ID = uuid.New().String()
	}
	post.CreatedAt = time.Now()
	post.UpdatedAt = time.Now()
	return r.db.WithContext(ctx).Create(post).Error
}

func (r *postRepository) FindByID(ctx context.Context, id string) (*domain.Post, error) {
	var post domain.Post
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&post).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &post, nil
}

func (r *postRepository) List(ctx context.Context, params ListParams) ([]*domain.Post, int64, error) {
	var posts []*domain.Post
	var total int64

	query := r.db.WithContext(ctx).Model(&domain.Post{})
	if params.AuthorID != "" {
		query = query.Where("author_id = ?", params.AuthorID)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	column, ok := sortColumns[params.Sort]
	if !ok {
		column = "created_at"
	}
	direction := "DESC"
	if params.Order == "asc" {
		direction = "ASC"
	}

	offset := (params.Page - 1) * params.Limit
	err := query.Order(column + " " + direction).
		Limit(params.Limit).Offset(offset).Find(&posts).Error

	return posts, total, err
}

func (r *postRepository) CountByAuthor(ctx context.Context, authorID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Post{}).Where("author_id = ?", authorID).Count(&count).Error
	return count, err
}

func (r *postRepository) UpdateOwned(ctx context.Context, id, authorID string, upd *domain.PostUpdate) (matched bool, modified bool, err error) {
	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var post domain.Post
		if err := tx.Where("id = ? AND author_id = ?", id, authorID).First(&post).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return err
		}
		matched = true

		if !applyChanges(&post, upd) {
			return nil
		}
		modified = true

		post.UpdatedAt = time.Now()
		return tx.Save(&post).Error
	})
	return matched, modified, err
}

func (r *postRepository) DeleteOwned(ctx context.Context, id, authorID string) (bool, error) {
	res := r.db.WithContext(ctx).Where("id = ? AND author_id = ?", id, authorID).Delete(&domain.Post{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// applyChanges diffs the requested fields against the stored post and
// mutates it in place, so an update carrying only already-current values
// counts as "no changes".
func applyChanges(post *domain.Post, upd *domain.PostUpdate) bool {
	changed := false
	if upd.Title != nil && *upd.Title != post.Title {
		post.Title = *upd.Title
		changed = true
	}
	if upd.Body != nil && *upd.Body != post.Body {
		post.Body = *upd.Body
		changed = true
	}
	if upd.Tags != nil && !slices.Equal(upd.Tags, post.Tags) {
		post.Tags = upd.Tags
		changed = true
	}
	if upd.CoverImageURL != nil && *upd.CoverImageURL != post.CoverImageURL {
		post.CoverImageURL = *upd.CoverImageURL
		changed = true
	}
	return changed
}
