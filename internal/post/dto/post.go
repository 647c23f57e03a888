package dto

import (
	"bytes"
	"encoding/json"
	"math"

	"blog-backend/internal/post/domain"
)

// TagList accepts either a single string or a list of strings, normalizing
// both to a list. A JSON null leaves the list nil, same as an absent field.
type TagList []string

func (t *TagList) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*t = TagList{single}
		return nil
	}
	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return err
	}
	*t = TagList(many)
	return nil
}

type CreatePostRequest struct {
	Title         string  `json:"title"`
	Body          string  `json:"body"`
	Tags          TagList `json:"tags"`
	CoverImageURL string  `json:"coverImageUrl"`
}

type UpdatePostRequest struct {
	Title         *string `json:"title"`
	Body          *string `json:"body"`
	Tags          TagList `json:"tags"`
	CoverImageURL *string `json:"coverImageUrl"`
}

type Pagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int   `json:"pages"`
}

type PaginatedPosts struct {
	Posts      []*domain.Post `json:"posts"`
	Pagination Pagination     `json:"pagination"`
}

// NewPaginatedPosts assembles the listing envelope, deriving the page count
// from total and limit. A nil slice serializes as an empty list, not null.
func NewPaginatedPosts(posts []*domain.Post, page, limit int, total int64) *PaginatedPosts {
	if posts == nil {
		posts = []*domain.Post{}
	}
	pages := 0
	if limit > 0 {
		pages = int(math.Ceil(float64(total) / float64(limit)))
	}
	return &PaginatedPosts{
		Posts: posts,
		Pagination: Pagination{
			Page:  page,
			Limit: limit,
			Total: total,
			Pages: pages,
		},
	}
}
