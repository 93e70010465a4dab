package domain

import "time"

// Role controls which parts of the service a user may reach.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleEmployee Role = "empleado"
)

func (r Role) IsValid() bool {
	return r == RoleAdmin || r == RoleEmployee
}

// User represents an operator account.
type User struct {
	UserID       string     `json:"userID"` // Primary Key (UUID)
	Name         string     `json:"name"`
	Email        string     `json:"email"` // Unique, used for login
	PasswordHash string     `json:"-"`
	Role         Role       `json:"role"`
	IsActive     bool       `json:"isActive"`
	LastLoginAt  *time.Time `json:"lastLoginAt,omitempty"`
	AuditFields
}

func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// GoogleUserInfo holds the profile fields returned by Google's userinfo endpoint.
type GoogleUserInfo struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	VerifiedEmail bool   `json:"verified_email"`
	Name          string `json:"name"`
}
