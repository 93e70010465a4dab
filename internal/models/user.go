package models

import "database/sql"

// User is a row of the users table.
type User struct {
	UserID       string       `db:"user_id"`
	Name         string       `db:"name"`
	Email        string       `db:"email"`
	PasswordHash string       `db:"password_hash"`
	Role         string       `db:"role"`
	IsActive     bool         `db:"is_active"`
	LastLoginAt  sql.NullTime `db:"last_login_at"`
	AuditFields
}
