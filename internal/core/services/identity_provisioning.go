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
	"github.com/SscSPs/backoffice_app/internal/utils"
)

type identityProvisioningService struct {
	BaseService
	employeeRepo    portsrepo.EmployeeRepositoryFacade
	identityRepo    portsrepo.IdentityRepositoryFacade
	defaultPassword string
}

// NewIdentityProvisioningService creates the service that gives every employee
// with an e-mail address a login identity.
func NewIdentityProvisioningService(
	employeeRepo portsrepo.EmployeeRepositoryFacade,
	identityRepo portsrepo.IdentityRepositoryFacade,
	defaultPassword string,
	options ...ServiceOption,
) portssvc.IdentityProvisioningSvc {
	svc := &identityProvisioningService{
		employeeRepo:    employeeRepo,
		identityRepo:    identityRepo,
		defaultPassword: defaultPassword,
	}
	svc.apply(options)
	return svc
}

var _ portssvc.IdentityProvisioningSvc = (*identityProvisioningService)(nil)

// ProvisionEmployeeIdentities links each unlinked employee to the identity
// whose username or e-mail equals the employee's e-mail, creating the identity
// when there is none. Running it twice changes nothing the second time.
func (s *identityProvisioningService) ProvisionEmployeeIdentities(ctx context.Context) (*dto.ProvisioningReport, error) {
	employees, err := s.employeeRepo.ListEmployeesWithoutIdentity(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees without identity: %w", err)
	}

	report := &dto.ProvisioningReport{}
	if len(employees) == 0 {
		return report, nil
	}

	hash, err := utils.HashPassword(s.defaultPassword)
	if err != nil {
		return nil, fmt.Errorf("failed to hash default password: %w", err)
	}

	for _, emp := range employees {
		report.Examined++
		email := strings.TrimSpace(emp.Email)
		if email == "" {
			report.Skipped++
			continue
		}

		identity, err := s.findExisting(ctx, email)
		created := false
		switch {
		case err == nil:
		case errors.Is(err, apperrors.ErrNotFound):
			identity = &domain.Identity{
				Username:     email,
				PasswordHash: hash,
				Email:        email,
				FullName:     emp.FullName,
				Role:         domain.RoleForPosition(emp.Position),
				CreatedAt:    s.Now(),
			}
			if err := s.identityRepo.SaveIdentity(ctx, identity); err != nil {
				if errors.Is(err, apperrors.ErrDuplicate) {
					s.LogInfo(ctx, "Identity created concurrently, skipping employee", slog.Int64("employee_id", emp.EmployeeID))
					report.Skipped++
					continue
				}
				return report, fmt.Errorf("failed to create identity for employee %d: %w", emp.EmployeeID, err)
			}
			created = true
		default:
			return report, fmt.Errorf("failed to look up identity for employee %d: %w", emp.EmployeeID, err)
		}

		if err := s.employeeRepo.LinkEmployeeIdentity(ctx, emp.EmployeeID, identity.IdentityID); err != nil {
			return report, fmt.Errorf("failed to link employee %d: %w", emp.EmployeeID, err)
		}
		if created {
			report.Created++
		} else {
			report.Linked++
		}
		s.LogInfo(ctx, "Employee identity provisioned",
			slog.Int64("employee_id", emp.EmployeeID),
			slog.Int64("identity_id", identity.IdentityID),
			slog.Bool("created", created))
	}

	return report, nil
}

func (s *identityProvisioningService) findExisting(ctx context.Context, email string) (*domain.Identity, error) {
	identity, err := s.identityRepo.FindIdentityByUsername(ctx, email)
	if err == nil || !errors.Is(err, apperrors.ErrNotFound) {
		return identity, err
	}
	return s.identityRepo.FindIdentityByEmail(ctx, email)
}
