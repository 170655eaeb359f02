package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/backoffice_app/internal/apperrors"
	"github.com/SscSPs/backoffice_app/internal/core/domain"
	portsrepo "github.com/SscSPs/backoffice_app/internal/core/ports/repositories"
	"github.com/SscSPs/backoffice_app/internal/models"
	"github.com/SscSPs/backoffice_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const employeeColumns = `id, code, full_name, email, phone, position, service_id, department_id, hire_date,
	is_active, user_id, created_at, last_updated_at, version`

type PgxEmployeeRepository struct {
	BaseRepository
}

func newPgxEmployeeRepository(pool *pgxpool.Pool) portsrepo.EmployeeRepositoryFacade {
	return &PgxEmployeeRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.EmployeeRepositoryFacade = (*PgxEmployeeRepository)(nil)

func collectEmployees(rows pgx.Rows) ([]domain.Employee, error) {
	modelEmployees, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Employee])
	if err != nil {
		return nil, err
	}
	return mapping.ToDomainEmployeeSlice(modelEmployees), nil
}

func (r *PgxEmployeeRepository) FindEmployeeByID(ctx context.Context, employeeID int64) (*domain.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE id = $1;`
	rows, err := r.Pool.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to query employee by ID %d: %w", employeeID, err)
	}
	modelEmployee, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.Employee])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find employee by ID %d: %w", employeeID, err)
	}
	e := mapping.ToDomainEmployee(modelEmployee)
	return &e, nil
}

func (r *PgxEmployeeRepository) ListEmployees(ctx context.Context, limit, offset int) ([]domain.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees ORDER BY id ASC LIMIT $1 OFFSET $2;`
	rows, err := r.Pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query employees: %w", err)
	}
	emps, err := collectEmployees(rows)
	if err != nil {
		return nil, fmt.Errorf("failed to scan employees: %w", err)
	}
	return emps, nil
}

// ListEmployeesWithoutIdentity returns employees not yet linked to a login identity.
func (r *PgxEmployeeRepository) ListEmployeesWithoutIdentity(ctx context.Context) ([]domain.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE user_id IS NULL ORDER BY id ASC;`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query employees without identity: %w", err)
	}
	emps, err := collectEmployees(rows)
	if err != nil {
		return nil, fmt.Errorf("failed to scan employees: %w", err)
	}
	return emps, nil
}

func (r *PgxEmployeeRepository) SaveEmployee(ctx context.Context, employee *domain.Employee) error {
	query := `
		INSERT INTO employees (code, full_name, email, phone, position, service_id, department_id, hire_date,
			is_active, user_id, created_at, last_updated_at, version)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, 1)
		RETURNING id, version;
	`
	m := mapping.ToModelEmployee(*employee)
	err := r.Pool.QueryRow(ctx, query,
		m.Code, m.FullName, m.Email, m.Phone, m.Position,
		m.ServiceID, m.DepartmentID, m.HireDate, m.IsActive, m.UserID,
		m.CreatedAt, m.LastUpdatedAt,
	).Scan(&employee.EmployeeID, &employee.Version)
	if err != nil {
		return mapWriteError(err, "failed to save employee")
	}
	return nil
}

// UpdateEmployee leaves user_id untouched. Identity links are managed by
// LinkEmployeeIdentity only.
func (r *PgxEmployeeRepository) UpdateEmployee(ctx context.Context, employee *domain.Employee) error {
	query := `
		UPDATE employees
		SET code = $3, full_name = $4, email = $5, phone = $6, position = $7, service_id = $8,
		    department_id = $9, hire_date = $10, is_active = $11, last_updated_at = $12, version = version + 1
		WHERE id = $1 AND version = $2;
	`
	m := mapping.ToModelEmployee(*employee)
	tag, err := r.Pool.Exec(ctx, query,
		m.EmployeeID, m.Version,
		m.Code, m.FullName, m.Email, m.Phone, m.Position,
		m.ServiceID, m.DepartmentID, m.HireDate, m.IsActive, m.LastUpdatedAt,
	)
	if err != nil {
		return mapWriteError(err, "failed to update employee")
	}
	if err := r.checkVersionedUpdate(ctx, tag, "employees", employee.EmployeeID); err != nil {
		return err
	}
	employee.Version++
	return nil
}

func (r *PgxEmployeeRepository) DeleteEmployee(ctx context.Context, employeeID int64) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM employees WHERE id = $1;`, employeeID)
	if err != nil {
		return mapDeleteError(err, "failed to delete employee")
	}
	return checkDeleted(tag)
}

// LinkEmployeeIdentity sets user_id only while it is still empty, so a second
// provisioning run cannot relink an employee.
func (r *PgxEmployeeRepository) LinkEmployeeIdentity(ctx context.Context, employeeID, identityID int64) error {
	query := `
		UPDATE employees
		SET user_id = $2, version = version + 1
		WHERE id = $1 AND user_id IS NULL;
	`
	tag, err := r.Pool.Exec(ctx, query, employeeID, identityID)
	if err != nil {
		return mapWriteError(err, "failed to link employee identity")
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("employee %d already linked or missing: %w", employeeID, apperrors.ErrConflict)
	}
	return nil
}
