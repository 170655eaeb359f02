package handlers

import (
	"fmt"

	"github.com/SscSPs/backoffice_app/cmd/docs"
	portssvc "github.com/SscSPs/backoffice_app/internal/core/ports/services"
	coresvc "github.com/SscSPs/backoffice_app/internal/core/services"
	"github.com/SscSPs/backoffice_app/internal/middleware"
	"github.com/SscSPs/backoffice_app/internal/platform/config"
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
	registerValidators()

	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	loginLimit, err := middleware.NewMemoryRateLimit(cfg.LoginRateLimit)
	if err != nil {
		return fmt.Errorf("failed to build login rate limit: %w", err)
	}
	registerAuthRoutes(r, services.Auth, loginLimit)

	setupAPIV1Routes(r, cfg, services)

	setupSwaggerRoutes(r, cfg)
	return nil
}

// setupAPIV1Routes configures the authenticated /api/v1 group. Per-route
// access tiers are applied by each register function.
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(coresvc.TokenSettingsFromConfig(cfg)))

	registerMeRoutes(v1, services.Auth)
	registerClientRoutes(v1, services.Client)
	registerServiceRoutes(v1, services.Catalog)
	registerClientServiceRoutes(v1, services.Subscription, services.Billing)
	registerPaymentRoutes(v1, services.Payment)
	registerEmployeeRoutes(v1, services.Employee)
	registerProductRoutes(v1, services.Product)
	registerDashboardRoutes(v1, services.Dashboard)
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
