package domain

import "time"

// Role is the coarse authorization tier attached to an account. It is a
// closed set: authorization checks match exhaustively so that an unknown
// role fails closed instead of silently passing.
type Role string

const (
	RoleSeller Role = "seller"
	RoleAdmin  Role = "admin"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleSeller, RoleAdmin:
		return true
	}
	return false
}

// Account models an authenticated actor in the system.
type Account struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email,omitempty"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	Active       bool      `json:"active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
