package models

import (
	"database/sql"
	"time"
)

// AuditLog is a row of the audit_logs table.
type AuditLog struct {
	AuditLogID  string         `db:"audit_log_id"`
	UserID      sql.NullString `db:"user_id"` // Kept when the user is later deleted
	UserName    string         `db:"user_name"`
	Action      string         `db:"action"`
	Description string         `db:"description"`
	CreatedAt   time.Time      `db:"created_at"`
}
