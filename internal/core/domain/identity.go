package domain

import (
	"strings"
	"time"
)

// Role names recognised by the access-tier mapping. The set is open: any other
// string is stored as-is and treated as the lowest tier.
const (
	RoleAdmin      = "Admin"
	RoleManager    = "Manager"
	RoleSupervisor = "Supervisor"
	RoleTeamLead   = "Team Lead"
	RoleAgent      = "Agent"
	RoleUser       = "User"
)

// DefaultRole is assigned to self-registered identities.
const DefaultRole = RoleUser

// Identity is a login principal.
type Identity struct {
	IdentityID   int64     `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Email        string    `json:"email"`
	FullName     string    `json:"fullName"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
}

// AccessTier is the coarse permission level derived from a role.
type AccessTier int

const (
	TierUser AccessTier = iota + 1
	TierManager
	TierAdmin
)

func (t AccessTier) String() string {
	switch t {
	case TierAdmin:
		return "admin"
	case TierManager:
		return "manager"
	default:
		return "user"
	}
}

// AccessTierForRole maps a role string to its access tier.
func AccessTierForRole(role string) AccessTier {
	switch role {
	case RoleAdmin:
		return TierAdmin
	case RoleManager, RoleSupervisor, RoleTeamLead:
		return TierManager
	default:
		return TierUser
	}
}

// RoleForPosition maps an employee's stated position to the role given to an
// auto-provisioned identity.
func RoleForPosition(position string) string {
	switch strings.TrimSpace(position) {
	case RoleManager:
		return RoleAdmin
	case RoleSupervisor:
		return RoleSupervisor
	case RoleTeamLead:
		return RoleTeamLead
	default:
		return RoleAgent
	}
}
