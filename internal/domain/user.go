package domain

import "time"

// User is an account holder. Deleting a user only clears IsActive.
type User struct {
	ID           string     `json:"id"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"` // never serialized
	Username     string     `json:"username"`
	Role         UserRole   `json:"role"`
	IsActive     bool       `json:"isActive"`
	LastLoginAt  *time.Time `json:"lastLoginAt,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

// UserRole is the authorization role carried by a user and its tokens.
type UserRole string

const (
	RoleUser  UserRole = "USER"
	RoleAdmin UserRole = "ADMIN"
)

// Valid reports whether r is one of the known roles.
func (r UserRole) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

// UserRegistration is the payload of POST /api/auth/register.
type UserRegistration struct {
	Email    string `json:"email" example:"test@example.com"`
	Password string `json:"password" example:"password123"`
	Username string `json:"username" example:"Test User"`
}

// LoginRequest is the payload of POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email" example:"test@example.com"`
	Password string `json:"password" example:"password123"`
}

// PasswordResetRequest is the payload of POST /api/auth/reset-password.
type PasswordResetRequest struct {
	Email    string `json:"email" example:"test@example.com"`
	Password string `json:"password" example:"newpassword123"`
}

// AuthResponse is returned by register and login.
type AuthResponse struct {
	Token    string   `json:"token"`
	UserID   string   `json:"userId"`
	Email    string   `json:"email"`
	Username string   `json:"username"`
	Role     UserRole `json:"role"`
}

// EmailUpdate is the payload of PUT /api/users/me/email.
type EmailUpdate struct {
	Email string `json:"email"`
}

// PasswordUpdate is the payload of PUT /api/users/me/password.
type PasswordUpdate struct {
	OldPassword string `json:"oldPassword"`
	NewPassword string `json:"newPassword"`
}
