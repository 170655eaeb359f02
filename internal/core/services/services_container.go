package services

import (
	portsrepo "github.com/SscSPs/backoffice_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/backoffice_app/internal/core/ports/services"
	"github.com/SscSPs/backoffice_app/internal/platform/config"
	"github.com/SscSPs/backoffice_app/internal/utils"
)

// TokenSettingsFromConfig extracts the JWT settings from the application config.
func TokenSettingsFromConfig(cfg *config.Config) utils.TokenSettings {
	return utils.TokenSettings{
		Secret:   cfg.JWTSecret,
		Issuer:   cfg.JWTIssuer,
		Audience: cfg.JWTAudience,
		Expiry:   cfg.JWTExpiryDuration,
	}
}

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, mailer portssvc.Mailer) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Notification first since payments and products depend on it
	container.Notification = NewNotificationService(mailer)

	container.Auth = NewAuthService(repos.IdentityRepo, TokenSettingsFromConfig(cfg))
	container.Client = NewClientService(repos.ClientRepo)
	container.Catalog = NewCatalogService(repos.CatalogRepo)
	container.Subscription = NewSubscriptionService(repos.SubscriptionRepo, repos.ClientRepo, repos.CatalogRepo, repos.EmployeeRepo)
	container.Billing = NewBillingService(repos.ClientRepo, repos.SubscriptionRepo, repos.CatalogRepo)
	container.Payment = NewPaymentService(repos.PaymentRepo, repos.ClientRepo, container.Notification)
	container.Dashboard = NewDashboardService(repos.PaymentRepo)
	container.Employee = NewEmployeeService(repos.EmployeeRepo, repos.CatalogRepo, cfg.ProtectedEmployeeIDs)
	container.Product = NewProductService(repos.ProductRepo, repos.ClientRepo, container.Notification)

	return container
}
