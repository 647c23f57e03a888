package dto

import "time"

type UpdateProfileRequest struct {
	Bio *string `json:"bio"`
}

// PublicProfile is the externally visible slice of a user record.
type PublicProfile struct {
	ID        string    `json:"id"`
	FirstName string    `json:"firstName,omitempty"`
	LastName  string    `json:"lastName,omitempty"`
	Bio       string    `json:"bio,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	PostCount int64     `json:"postCount"`
}
