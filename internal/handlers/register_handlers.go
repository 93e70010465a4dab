package handlers

import (
	"fmt"

	"github.com/SscSPs/pharmacy_dashboard/cmd/docs"
	portssvc "github.com/SscSPs/pharmacy_dashboard/internal/core/ports/services"
	"github.com/SscSPs/pharmacy_dashboard/internal/middleware"
	"github.com/SscSPs/pharmacy_dashboard/internal/platform/config"
	"github.com/SscSPs/pharmacy_dashboard/internal/utils/locale"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) error {
	ensureValidators()
	registerHomeRoutes(r)

	loginLimiter, err := middleware.NewLimiter(cfg.LoginRateLimit, cfg.RedisURL, "login")
	if err != nil {
		return fmt.Errorf("failed to create login rate limiter: %w", err)
	}

	api := r.Group("/api/v1")

	// Public authentication routes
	RegisterAuthRoutes(api, services, middleware.RateLimit(loginLimiter))

	setupAPIV1Routes(api, cfg, services)

	setupSwaggerRoutes(r, cfg)
	return nil
}

// setupAPIV1Routes configures the authenticated routes. Sales, expenses and
// pharmacy reads are open to every role; the rest is admin only.
func setupAPIV1Routes(
	api *gin.RouterGroup,
	cfg *config.Config,
	service *portssvc.ServiceContainer,
) {
	v1 := api.Group("", middleware.AuthMiddleware(cfg.JWTSecret))

	registerMeRoute(v1, service.User)
	RegisterPharmacyRoutes(v1, service.Pharmacy)
	RegisterSaleRoutes(v1, service.Sale)
	RegisterExpenseRoutes(v1, service.Expense)

	admin := v1.Group("", middleware.RequireAdmin())
	RegisterUserRoutes(admin, service.User)
	RegisterDashboardRoutes(admin, service.Dashboard, locale.Labeler{CalendarYearWeeks: cfg.WeekLabelCalendarYear})
	RegisterReportRoutes(admin, service.Report)
	RegisterAuditLogRoutes(admin, service.Audit)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
