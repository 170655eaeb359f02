package repositories

import (
	"context"

	"github.com/SscSPs/backoffice_app/internal/core/domain"
)

// IdentityReader defines read operations for login identities
type IdentityReader interface {
	// FindIdentityByID retrieves an identity by its id.
	FindIdentityByID(ctx context.Context, identityID int64) (*domain.Identity, error)

	// FindIdentityByUsername retrieves an identity by exact username.
	FindIdentityByUsername(ctx context.Context, username string) (*domain.Identity, error)

	// FindIdentityByEmail retrieves an identity by exact email.
	FindIdentityByEmail(ctx context.Context, email string) (*domain.Identity, error)
}

// IdentityWriter defines write operations for login identities
type IdentityWriter interface {
	// SaveIdentity inserts a new identity and sets its id and creation time.
	// A unique violation on username or email returns apperrors.ErrDuplicate.
	SaveIdentity(ctx context.Context, identity *domain.Identity) error
}

// IdentityRepositoryFacade combines all identity-related repository interfaces
type IdentityRepositoryFacade interface {
	IdentityReader
	IdentityWriter
}
