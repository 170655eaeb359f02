package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/backoffice_app/internal/apperrors"
	"github.com/SscSPs/backoffice_app/internal/core/domain"
	portsrepo "github.com/SscSPs/backoffice_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/backoffice_app/internal/core/ports/services"
	"github.com/SscSPs/backoffice_app/internal/dto"
)

type employeeService struct {
	BaseService
	employeeRepo portsrepo.EmployeeRepositoryFacade
	catalogRepo  portsrepo.ServiceReader
	protected    domain.ProtectedRange
}

// NewEmployeeService creates the employee service. Ids inside protected can be
// read but not updated or deleted.
func NewEmployeeService(
	employeeRepo portsrepo.EmployeeRepositoryFacade,
	catalogRepo portsrepo.ServiceReader,
	protected domain.ProtectedRange,
	options ...ServiceOption,
) portssvc.EmployeeSvcFacade {
	svc := &employeeService{
		employeeRepo: employeeRepo,
		catalogRepo:  catalogRepo,
		protected:    protected,
	}
	svc.apply(options)
	return svc
}

var _ portssvc.EmployeeSvcFacade = (*employeeService)(nil)

// guard runs before any lookup so the answer for a protected id does not
// depend on whether the record exists.
func (s *employeeService) guard(ctx context.Context, employeeID int64) error {
	if s.protected.Contains(employeeID) {
		s.LogInfo(ctx, "Rejected change to protected employee", slog.Int64("employee_id", employeeID))
		return fmt.Errorf("employee %d: %w", employeeID, apperrors.ErrProtectedResource)
	}
	return nil
}

func (s *employeeService) CreateEmployee(ctx context.Context, req dto.CreateEmployeeRequest) (*domain.Employee, error) {
	if err := s.checkService(ctx, req.ServiceID); err != nil {
		return nil, err
	}

	now := s.Now()
	emp := &domain.Employee{
		Code:         strings.TrimSpace(req.Code),
		FullName:     strings.TrimSpace(req.FullName),
		Email:        strings.TrimSpace(req.Email),
		Phone:        req.Phone,
		Position:     strings.TrimSpace(req.Position),
		ServiceID:    req.ServiceID,
		DepartmentID: req.DepartmentID,
		HireDate:     req.HireDate.UTC(),
		IsActive:     boolOrDefault(req.IsActive, true),
		AuditFields:  domain.AuditFields{CreatedAt: now, LastUpdatedAt: now, Version: 1},
	}
	if err := s.employeeRepo.SaveEmployee(ctx, emp); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, apperrors.NewDuplicateError("code", "Employee code already exists")
		}
		s.LogError(ctx, err, "Failed to save employee", slog.String("code", emp.Code))
		return nil, fmt.Errorf("failed to create employee: %w", err)
	}

	s.LogInfo(ctx, "Employee created", slog.Int64("employee_id", emp.EmployeeID))
	return emp, nil
}

func (s *employeeService) GetEmployeeByID(ctx context.Context, employeeID int64) (*domain.Employee, error) {
	emp, err := s.employeeRepo.FindEmployeeByID(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to get employee %d: %w", employeeID, err)
	}
	return emp, nil
}

func (s *employeeService) ListEmployees(ctx context.Context, limit, offset int) ([]domain.Employee, error) {
	emps, err := s.employeeRepo.ListEmployees(ctx, portsrepo.NormalizeLimit(limit), max(offset, 0))
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	return emps, nil
}

func (s *employeeService) UpdateEmployee(ctx context.Context, employeeID int64, req dto.UpdateEmployeeRequest) (*domain.Employee, error) {
	if err := s.guard(ctx, employeeID); err != nil {
		return nil, err
	}

	existing, err := s.employeeRepo.FindEmployeeByID(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to get employee %d: %w", employeeID, err)
	}
	if req.ServiceID != existing.ServiceID {
		if err := s.checkService(ctx, req.ServiceID); err != nil {
			return nil, err
		}
	}

	existing.Code = strings.TrimSpace(req.Code)
	existing.FullName = strings.TrimSpace(req.FullName)
	existing.Email = strings.TrimSpace(req.Email)
	existing.Phone = req.Phone
	existing.Position = strings.TrimSpace(req.Position)
	existing.ServiceID = req.ServiceID
	existing.DepartmentID = req.DepartmentID
	existing.HireDate = req.HireDate.UTC()
	existing.IsActive = boolOrDefault(req.IsActive, existing.IsActive)
	existing.LastUpdatedAt = s.Now()
	existing.Version = req.Version

	if err := s.employeeRepo.UpdateEmployee(ctx, existing); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, apperrors.NewDuplicateError("code", "Employee code already exists")
		}
		return nil, fmt.Errorf("failed to update employee %d: %w", employeeID, err)
	}
	return existing, nil
}

func (s *employeeService) DeleteEmployee(ctx context.Context, employeeID int64) error {
	if err := s.guard(ctx, employeeID); err != nil {
		return err
	}
	if err := s.employeeRepo.DeleteEmployee(ctx, employeeID); err != nil {
		return fmt.Errorf("failed to delete employee %d: %w", employeeID, err)
	}
	s.LogInfo(ctx, "Employee deleted", slog.Int64("employee_id", employeeID))
	return nil
}

func (s *employeeService) checkService(ctx context.Context, serviceID int64) error {
	return mustExist(ctx, func(ctx context.Context) error {
		_, err := s.catalogRepo.FindServiceByID(ctx, serviceID)
		return err
	}, "serviceId", "Service does not exist")
}
