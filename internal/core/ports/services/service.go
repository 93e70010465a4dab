package services

// ServiceContainer holds instances of all the application services.
// This is the main entry point for accessing service functionality and
// is used throughout the application, particularly in the handlers.
type ServiceContainer struct {
	Pharmacy           PharmacySvcFacade
	Sale               SaleSvcFacade
	Expense            ExpenseSvcFacade
	User               UserSvcFacade
	TokenService       TokenSvcFacade
	GoogleOAuthHandler GoogleOAuthHandlerSvcFacade
	Audit              AuditSvcFacade
	Dashboard          DashboardSvc
	Report             ReportSvc
}
