package authz

import (
	"testing"

	apperrors "bizsuite/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRole(t *testing.T) {
	tests := []struct {
		input    string
		expected Role
		wantErr  bool
	}{
		{"owner", RoleOwner, false},
		{"admin", RoleAdmin, false},
		{"manager", RoleManager, false},
		{"sales_head", RoleSalesHead, false},
		{"marketer", RoleMarketer, false},
		{"finance", RoleFinance, false},
		{"hr_manager", RoleHRManager, false},
		{"  Admin ", RoleAdmin, false},
		{"member", "", true},
		{"super_admin", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			role, err := ParseRole(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, apperrors.ErrInvalidRole)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, role)
		})
	}
}

func TestRoleSet(t *testing.T) {
	set := NewRoleSet(RoleManager, RoleAdmin, RoleAdmin)

	assert.Equal(t, 2, set.Len())
	assert.True(t, set.Contains(RoleAdmin))
	assert.True(t, set.Contains(RoleManager))
	assert.False(t, set.Contains(RoleMarketer))
	assert.Equal(t, []Role{RoleAdmin, RoleManager}, set.Roles())
	assert.Equal(t, "{admin, manager}", set.String())

	var empty RoleSet
	assert.False(t, empty.Contains(RoleAdmin))
	assert.Equal(t, 0, empty.Len())
}

func TestSharedRoleSets(t *testing.T) {
	t.Run("custom KPI roles are a strict subset of management roles", func(t *testing.T) {
		for _, r := range CustomKPIRoles.Roles() {
			assert.True(t, ManagementRoles.Contains(r), "role %s", r)
		}
		assert.Less(t, CustomKPIRoles.Len(), ManagementRoles.Len())
		assert.False(t, CustomKPIRoles.Contains(RoleManager))
	})

	t.Run("offer managers extend management roles with marketer", func(t *testing.T) {
		for _, r := range ManagementRoles.Roles() {
			assert.True(t, OfferManagerRoles.Contains(r), "role %s", r)
		}
		assert.True(t, OfferManagerRoles.Contains(RoleMarketer))
	})

	t.Run("business admin roles include the owner role value", func(t *testing.T) {
		assert.Equal(t, []Role{RoleAdmin, RoleOwner}, BusinessAdminRoles.Roles())
	})
}
