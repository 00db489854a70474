package authz

import (
	"fmt"
	"sort"
	"strings"

	apperrors "bizsuite/internal/errors"
)

// Role is a membership role inside one business.
type Role string

// Membership roles. RoleOwner is a membership value and is distinct from
// being the business's ownerUserId.
const (
	RoleOwner     Role = "owner"
	RoleAdmin     Role = "admin"
	RoleManager   Role = "manager"
	RoleSalesHead Role = "sales_head"
	RoleMarketer  Role = "marketer"
	RoleFinance   Role = "finance"
	RoleHRManager Role = "hr_manager"
)

// AllRoles lists every membership role.
var AllRoles = []Role{RoleOwner, RoleAdmin, RoleManager, RoleSalesHead, RoleMarketer, RoleFinance, RoleHRManager}

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	for _, role := range AllRoles {
		if r == role {
			return true
		}
	}
	return false
}

// ParseRole converts a stored or submitted role name into a Role.
func ParseRole(s string) (Role, error) {
	r := Role(strings.ToLower(strings.TrimSpace(s)))
	if !r.Valid() {
		return "", fmt.Errorf("%w: %q", apperrors.ErrInvalidRole, s)
	}
	return r, nil
}

// RoleSet is an immutable set of roles.
type RoleSet struct {
	roles map[Role]struct{}
}

// NewRoleSet builds a RoleSet from roles.
func NewRoleSet(roles ...Role) RoleSet {
	set := RoleSet{roles: make(map[Role]struct{}, len(roles))}
	for _, r := range roles {
		set.roles[r] = struct{}{}
	}
	return set
}

// Contains reports whether r is in the set.
func (s RoleSet) Contains(r Role) bool {
	_, ok := s.roles[r]
	return ok
}

// Len returns the number of roles in the set.
func (s RoleSet) Len() int {
	return len(s.roles)
}

// Roles returns the roles in the set in lexical order.
func (s RoleSet) Roles() []Role {
	out := make([]Role, 0, len(s.roles))
	for r := range s.roles {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func (s RoleSet) String() string {
	names := make([]string, 0, len(s.roles))
	for _, r := range s.Roles() {
		names = append(names, string(r))
	}
	return "{" + strings.Join(names, ", ") + "}"
}

// Shared role sets used by the policy tables.
var (
	ManagementRoles    = NewRoleSet(RoleAdmin, RoleSalesHead, RoleManager)
	OfferManagerRoles  = NewRoleSet(RoleAdmin, RoleSalesHead, RoleManager, RoleMarketer)
	AdminRoles         = NewRoleSet(RoleAdmin)
	CustomKPIRoles     = NewRoleSet(RoleAdmin, RoleSalesHead)
	FinanceViewerRoles = NewRoleSet(RoleAdmin, RoleSalesHead, RoleFinance)
	HRViewerRoles      = NewRoleSet(RoleAdmin, RoleHRManager)
	BusinessAdminRoles = NewRoleSet(RoleOwner, RoleAdmin)
)
