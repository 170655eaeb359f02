package mapping

import (
	"github.com/SscSPs/backoffice_app/internal/core/domain"
	"github.com/SscSPs/backoffice_app/internal/models"
)

// ToModelIdentity converts a domain Identity to a model Identity
func ToModelIdentity(d domain.Identity) models.Identity {
	return models.Identity{
		IdentityID:   d.IdentityID,
		Username:     d.Username,
		PasswordHash: d.PasswordHash,
		Email:        d.Email,
		FullName:     d.FullName,
		Role:         d.Role,
		CreatedAt:    d.CreatedAt,
	}
}

// ToDomainIdentity converts a model Identity to a domain Identity
func ToDomainIdentity(m models.Identity) domain.Identity {
	return domain.Identity{
		IdentityID:   m.IdentityID,
		Username:     m.Username,
		PasswordHash: m.PasswordHash,
		Email:        m.Email,
		FullName:     m.FullName,
		Role:         m.Role,
		CreatedAt:    m.CreatedAt.UTC(),
	}
}
