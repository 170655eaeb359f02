package domain_test

import (
	"testing"

	"github.com/SscSPs/backoffice_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestRoleForPosition(t *testing.T) {
	tests := map[string]string{
		"Manager":    domain.RoleAdmin,
		"Supervisor": domain.RoleSupervisor,
		"Team Lead":  domain.RoleTeamLead,
		" Manager ":  domain.RoleAdmin,
		"Agent":      domain.RoleAgent,
		"Developer":  domain.RoleAgent,
		"":           domain.RoleAgent,
		"manager":    domain.RoleAgent,
	}
	for position, want := range tests {
		assert.Equal(t, want, domain.RoleForPosition(position), "position %q", position)
	}
}

func TestAccessTierForRole(t *testing.T) {
	assert.Equal(t, domain.TierAdmin, domain.AccessTierForRole(domain.RoleAdmin))
	assert.Equal(t, domain.TierManager, domain.AccessTierForRole(domain.RoleManager))
	assert.Equal(t, domain.TierManager, domain.AccessTierForRole(domain.RoleSupervisor))
	assert.Equal(t, domain.TierManager, domain.AccessTierForRole(domain.RoleTeamLead))
	assert.Equal(t, domain.TierUser, domain.AccessTierForRole(domain.RoleAgent))
	assert.Equal(t, domain.TierUser, domain.AccessTierForRole(domain.RoleUser))
	assert.Equal(t, domain.TierUser, domain.AccessTierForRole("Intern"))
	assert.Equal(t, "admin", domain.TierAdmin.String())
	assert.Equal(t, "manager", domain.TierManager.String())
	assert.Equal(t, "user", domain.TierUser.String())
}

func TestProtectedRange_Contains(t *testing.T) {
	r := domain.ProtectedRange{Min: 1, Max: 30}

	assert.True(t, r.Contains(1))
	assert.True(t, r.Contains(15))
	assert.True(t, r.Contains(30))
	assert.False(t, r.Contains(0))
	assert.False(t, r.Contains(31))
	assert.False(t, domain.ProtectedRange{Min: 5, Max: 0}.Contains(3))
}
