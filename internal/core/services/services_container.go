package services

import (
	portsrepo "github.com/SscSPs/pharmacy_dashboard/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/pharmacy_dashboard/internal/core/ports/services"
	"github.com/SscSPs/pharmacy_dashboard/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// The audit service is shared by every service that mutates data.
	container.Audit = NewAuditService(repos.AuditLogRepo, repos.UserRepo)
	withAudit := WithAuditRecorder(container.Audit)

	container.Pharmacy = NewPharmacyService(repos.PharmacyRepo, withAudit)
	container.Sale = NewSaleService(repos.SaleRepo, repos.PharmacyRepo, withAudit)
	container.Expense = NewExpenseService(repos.ExpenseRepo, repos.PharmacyRepo, withAudit)
	container.User = NewUserService(repos.UserRepo, withAudit)

	container.Dashboard = NewDashboardService(repos.SaleRepo, repos.ExpenseRepo, repos.PharmacyRepo)
	container.Report = NewReportService(repos.SaleRepo, repos.ExpenseRepo, repos.PharmacyRepo, cfg.ReportCompanyName, withAudit)

	container.TokenService = NewTokenService(cfg)
	container.GoogleOAuthHandler = NewGoogleOAuthHandlerService(cfg)

	return container
}
