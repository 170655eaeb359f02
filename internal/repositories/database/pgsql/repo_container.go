package pgsql

import (
	portsrepo "github.com/SscSPs/backoffice_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		IdentityRepo:     newPgxIdentityRepository(dbPool),
		ClientRepo:       newPgxClientRepository(dbPool),
		CatalogRepo:      newPgxCatalogRepository(dbPool),
		SubscriptionRepo: newPgxSubscriptionRepository(dbPool),
		PaymentRepo:      newPgxPaymentRepository(dbPool),
		EmployeeRepo:     newPgxEmployeeRepository(dbPool),
		ProductRepo:      newPgxProductRepository(dbPool),
	}
}
