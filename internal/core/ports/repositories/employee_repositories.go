package repositories

import (
	"context"

	"github.com/SscSPs/backoffice_app/internal/core/domain"
)

// EmployeeReader defines read operations for employee data
type EmployeeReader interface {
	FindEmployeeByID(ctx context.Context, employeeID int64) (*domain.Employee, error)
	ListEmployees(ctx context.Context, limit, offset int) ([]domain.Employee, error)

	// ListEmployeesWithoutIdentity lists employees whose user_id is NULL.
	ListEmployeesWithoutIdentity(ctx context.Context) ([]domain.Employee, error)
}

// EmployeeWriter defines write operations for employee data
type EmployeeWriter interface {
	SaveEmployee(ctx context.Context, employee *domain.Employee) error
	UpdateEmployee(ctx context.Context, employee *domain.Employee) error
	DeleteEmployee(ctx context.Context, employeeID int64) error

	// LinkEmployeeIdentity sets user_id of an employee that has none yet.
	LinkEmployeeIdentity(ctx context.Context, employeeID, identityID int64) error
}

// EmployeeRepositoryFacade combines all employee-related repository interfaces
type EmployeeRepositoryFacade interface {
	EmployeeReader
	EmployeeWriter
}
