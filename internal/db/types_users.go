package db

import (
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/axis-portal/internal/types"
)

// User is a users row joined with its profile name and primary role.
type User struct {
	ID           uuid.UUID     `json:"id"`
	Email        string        `json:"email"`
	FullName     string        `json:"full_name"`
	PasswordHash string        `json:"-" db:"password_hash"` // Never serialize to JSON
	Role         types.AppRole `json:"role"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}

// Identity strips the credentials.
func (u *User) Identity() *types.User {
	if u == nil {
		return nil
	}
	return &types.User{
		ID:        u.ID,
		Email:     u.Email,
		FullName:  u.FullName,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}

// NewUser is the input of CreateUser.
type NewUser struct {
	Email        string
	PasswordHash string
	FullName     string
	CompanyName  string
	Phone        string
	Role         types.AppRole
}
