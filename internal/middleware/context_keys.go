package middleware

import (
	"context"

	"github.com/SscSPs/backoffice_app/internal/core/domain"
)

const principalKey = contextKey("principal")

// Principal is the authenticated caller as described by its access token.
type Principal struct {
	IdentityID int64
	Username   string
	Email      string
	Role       string
	FullName   string
}

// Tier returns the access tier of the principal's role.
func (p Principal) Tier() domain.AccessTier {
	return domain.AccessTierForRole(p.Role)
}

// WithPrincipal returns a copy of ctx carrying p.
func WithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, principalKey, p)
}

// GetPrincipalFromCtx retrieves the authenticated caller from the request context.
func GetPrincipalFromCtx(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(principalKey).(Principal)
	return p, ok
}
