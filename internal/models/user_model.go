package models

import "time"

// Roles assigned to an authenticated identity.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User represents a registered customer account.
// The password is stored as a bcrypt hash and is never serialized into API responses.
type User struct {
	ID           int       `json:"id"`
	Name         string    `json:"name"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"password,omitempty"` // bcrypt hash; field name kept for store compatibility
	Phone        string    `json:"phone"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Identity is the resolved caller of an operation, produced by the auth
// middleware and consumed by the core services. A zero Identity is anonymous.
type Identity struct {
	UserID   int    `json:"userId"`
	Username string `json:"username"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Role     string `json:"role"`
}

// IsAnonymous reports whether no authenticated principal is attached.
func (i Identity) IsAnonymous() bool { return i.Role == "" }

// IsAdmin reports whether the identity carries the admin role.
func (i Identity) IsAdmin() bool { return i.Role == RoleAdmin }

// PublicUser is the API-safe projection of a User (no credential material).
type PublicUser struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"createdAt"`
}

// Public returns the API-safe projection of u.
func (u *User) Public() PublicUser {
	return PublicUser{
		ID:        u.ID,
		Name:      u.Name,
		Username:  u.Username,
		Email:     u.Email,
		Phone:     u.Phone,
		CreatedAt: u.CreatedAt,
	}
}
