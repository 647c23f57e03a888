package domain

import "time"

// User is the persisted account record. The password hash and the current
// refresh token never leave the server.
type User struct {
	ID          string  `json:"id" gorm:"primaryKey"`
	Email       string  `json:"email" gorm:"uniqueIndex;not null"`
	Password    string  `json:"-" gorm:"not null"`
	FirstName   string  `json:"firstName,omitempty"`
	LastName    string  `json:"lastName,omitempty"`
	PhoneNumber string  `json:"phoneNumber,omitempty"`
	Bio         string  `json:"bio,omitempty"`
	// Single slot: every sign-in and every rotation overwrites it, which
	// invalidates whatever refresh token was issued before.
	RefreshToken *string   `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
