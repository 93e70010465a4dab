package domain

import "time"

// AuditAction names an operator action recorded in the audit log.
type AuditAction string

const (
	ActionLogin          AuditAction = "login"
	ActionCreateSale     AuditAction = "create_sale"
	ActionBulkSales      AuditAction = "bulk_sales"
	ActionUpdateSale     AuditAction = "update_sale"
	ActionDeleteSale     AuditAction = "delete_sale"
	ActionCreateExpense  AuditAction = "create_expense"
	ActionUpdateExpense  AuditAction = "update_expense"
	ActionDeleteExpense  AuditAction = "delete_expense"
	ActionCreatePharmacy AuditAction = "create_pharmacy"
	ActionUpdatePharmacy AuditAction = "update_pharmacy"
	ActionDeletePharmacy AuditAction = "delete_pharmacy"
	ActionCreateUser     AuditAction = "create_user"
	ActionUpdateUser     AuditAction = "update_user"
	ActionDeleteUser     AuditAction = "delete_user"
	ActionExportReport   AuditAction = "export_report"
)

// AuditLog is an append-only record of who did what.
type AuditLog struct {
	AuditLogID  string      `json:"auditLogID"`
	UserID      string      `json:"userID"`
	UserName    string      `json:"userName"`
	Action      AuditAction `json:"action"`
	Description string      `json:"description"`
	CreatedAt   time.Time   `json:"createdAt"`
}

// AuditLogFilter narrows an audit log listing. Empty fields do not restrict.
type AuditLogFilter struct {
	UserName string
	Action   AuditAction
	Year     *int
	Month    *int
	Search   string
}

// AuditSummary counts the audit log entries matching a filter.
type AuditSummary struct {
	Total           int `json:"total"`
	UniqueUsers     int `json:"uniqueUsers"`
	DistinctActions int `json:"distinctActions"`
}
