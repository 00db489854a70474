package authz

// Global role labels.
const (
	GlobalRoleAdmin      = "admin"
	GlobalRoleSuperAdmin = "super_admin"
)

// PlatformAllow decides platform-wide actions from global role labels.
// Global labels never grant anything inside a business.
func PlatformAllow(actor *Actor, action Action) (bool, error) {
	if err := actor.validate(); err != nil {
		return false, err
	}
	switch action {
	case ActionListAllBusinesses:
		return actor.HasGlobalRole(GlobalRoleAdmin, GlobalRoleSuperAdmin), nil
	}
	return false, nil
}
