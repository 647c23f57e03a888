package domain

import "time"

// Post is a blog entry. AuthorID is set at creation and never changes;
// every mutation is filtered on both the post id and the author id.
type Post struct {
	ID            string    `json:"id" gorm:"primaryKey"`
	Title         string    `json:"title" gorm:"not null"`
	Body          string    `json:"body" gorm:"not null"`
	AuthorID      string    `json:"author" gorm:"index;not null"`
	Tags          []string  `json:"tags,omitempty" gorm:"serializer:json"`
	CoverImageURL string    `json:"coverImageUrl,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// PostUpdate carries the mutable post fields. Nil pointers (and a nil tag
// slice) mean "leave the stored value alone".
type PostUpdate struct {
	Title         *string
	Body          *string
	Tags          []string
	CoverImageURL *string
}

// Empty reports whether the update carries no fields at all.
func (u *PostUpdate) Empty() bool {
	return u.Title == nil && u.Body == nil && u.Tags == nil && u.CoverImageURL == nil
}
