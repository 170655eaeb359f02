package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	IdentityRepo     IdentityRepositoryFacade
	ClientRepo       ClientRepositoryFacade
	CatalogRepo      CatalogRepositoryFacade
	SubscriptionRepo SubscriptionRepositoryFacade
	PaymentRepo      PaymentRepositoryFacade
	EmployeeRepo     EmployeeRepositoryFacade
	ProductRepo      ProductRepositoryFacade
}
