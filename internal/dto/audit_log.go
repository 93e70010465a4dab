package dto

import (
	"strings"
	"time"

	"github.com/SscSPs/pharmacy_dashboard/internal/core/domain"
)

// ListAuditLogsParams defines query parameters for the audit log.
type ListAuditLogsParams struct {
	UserName  string  `form:"userName"`
	Action    string  `form:"action"`
	Year      *int    `form:"year" binding:"omitempty,min=1,max=9999"`
	Month     *int    `form:"month" binding:"omitempty,min=1,max=12"`
	Search    string  `form:"search"`
	Limit     int     `form:"limit,default=50" binding:"omitempty,min=1,max=500"`
	NextToken *string `form:"nextToken"`
}

func (p ListAuditLogsParams) ToFilter() domain.AuditLogFilter {
	return domain.AuditLogFilter{
		UserName: strings.TrimSpace(p.UserName),
		Action:   domain.AuditAction(strings.TrimSpace(p.Action)),
		Year:     p.Year,
		Month:    p.Month,
		Search:   strings.TrimSpace(p.Search),
	}
}

type AuditLogResponse struct {
	AuditLogID  string             `json:"auditLogID"`
	UserID      string             `json:"userID,omitempty"`
	UserName    string             `json:"userName"`
	Action      domain.AuditAction `json:"action"`
	Description string             `json:"description"`
	CreatedAt   time.Time          `json:"createdAt"`
}

type ListAuditLogsResponse struct {
	AuditLogs []AuditLogResponse `json:"auditLogs"`
	NextToken *string            `json:"nextToken,omitempty"`
}

func ToListAuditLogsResponse(entries []domain.AuditLog, nextToken *string) ListAuditLogsResponse {
	res := ListAuditLogsResponse{AuditLogs: make([]AuditLogResponse, len(entries)), NextToken: nextToken}
	for i, e := range entries {
		res.AuditLogs[i] = AuditLogResponse{
			AuditLogID:  e.AuditLogID,
			UserID:      e.UserID,
			UserName:    e.UserName,
			Action:      e.Action,
			Description: e.Description,
			CreatedAt:   e.CreatedAt,
		}
	}
	return res
}
