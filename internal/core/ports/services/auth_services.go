package services

import (
	"context"

	"github.com/SscSPs/backoffice_app/internal/core/domain"
	"github.com/SscSPs/backoffice_app/internal/dto"
)

// AuthSvcFacade covers login and self-registration.
type AuthSvcFacade interface {
	// Login authenticates by username, falling back to email, and issues a token.
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)

	// Register creates an identity with the default role and issues a token.
	Register(ctx context.Context, req dto.RegisterRequest) (*dto.RegisterResponse, error)

	// GetIdentityByID retrieves an identity by its id.
	GetIdentityByID(ctx context.Context, identityID int64) (*domain.Identity, error)
}

// IdentityProvisioningSvc creates or links login identities for employees.
type IdentityProvisioningSvc interface {
	ProvisionEmployeeIdentities(ctx context.Context) (*dto.ProvisioningReport, error)
}
