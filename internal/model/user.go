package model

import (
	"time"

	"github.com/google/uuid"
)

type UserRole string

const (
	RoleUser  UserRole = "user"
	RoleAdmin UserRole = "admin"
)

type User struct {
	ID           uuid.UUID `json:"id" db:"id"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	Role         UserRole  `json:"role" db:"role"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// Profile holds the user-editable account data. Its id equals the auth
// user id, mirroring how the row is created at registration.
type Profile struct {
	ID         uuid.UUID `json:"id" db:"id"`
	FullName   string    `json:"full_name" db:"full_name"`
	Email      string    `json:"email" db:"email"`
	NIM        *string   `json:"nim,omitempty" db:"nim"`
	Department *string   `json:"department,omitempty" db:"department"`
	AvatarURL  *string   `json:"avatar_url,omitempty" db:"avatar_url"`
	UpdatedAt  time.Time `json:"updated_at" db:"updated_at"`
}
