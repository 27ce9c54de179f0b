package domain

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID         uuid.UUID `json:"id" db:"id"`
	Username   string    `json:"username" db:"username"`
	FullName   string    `json:"fullname" db:"full_name"`
	Email      string    `json:"-" db:"email"`
	ProfileImg string    `json:"profile_img" db:"profile_img"`
	IsAdmin    bool      `json:"isAdmin" db:"is_admin"`
	Locale     string    `json:"-" db:"locale"`
	CreatedAt  time.Time `json:"joinedAt" db:"created_at"`
}

// UserSummary is the display identity embedded in comment and notification responses.
type UserSummary struct {
	ID         uuid.UUID `json:"_id" db:"id"`
	Username   string    `json:"username" db:"username"`
	FullName   string    `json:"fullname" db:"full_name"`
	ProfileImg string    `json:"profile_img" db:"profile_img"`
}

func (u *User) Summary() *UserSummary {
	return &UserSummary{
		ID:         u.ID,
		Username:   u.Username,
		FullName:   u.FullName,
		ProfileImg: u.ProfileImg,
	}
}

// Actor is the authenticated caller of an operation.
type Actor struct {
	ID    uuid.UUID
	Admin bool
}
