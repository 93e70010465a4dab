package services

import (
	"context"
	"io"

	"github.com/SscSPs/pharmacy_dashboard/internal/core/domain"
)

// DashboardSvc computes the dashboard for an operator selection.
type DashboardSvc interface {
	GetDashboard(ctx context.Context, query domain.DashboardQuery) (*domain.Dashboard, error)
}

// ReportSvc builds and renders the exported documents.
type ReportSvc interface {
	// BuildReportData snapshots the records matching filter. It returns
	// apperrors.ErrNoData when neither sales nor expenses match.
	BuildReportData(ctx context.Context, filter domain.RecordFilter) (*domain.ReportData, error)

	// RenderReport writes the document in format to w.
	RenderReport(ctx context.Context, format domain.ReportFormat, filter domain.RecordFilter, w io.Writer, userID string) error
}
