package services

// ServiceContainer holds instances of all the application services.
// It is handed to the handlers when routes are registered.
type ServiceContainer struct {
	Auth         AuthSvcFacade
	Client       ClientSvcFacade
	Catalog      CatalogSvcFacade
	Subscription SubscriptionSvcFacade
	Billing      BillingSvc
	Payment      PaymentSvcFacade
	Dashboard    DashboardSvc
	Employee     EmployeeSvcFacade
	Product      ProductSvcFacade
	Notification NotificationSvc
}
