package roles_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/caredirectory/go-admin-auth/roles"
)

func TestHasPermission(t *testing.T) {
	t.Run("super admin holds every permission including arbitrary strings", func(t *testing.T) {
		require.True(t, roles.HasPermission(roles.RoleSuperAdmin, roles.PermissionRead))
		require.True(t, roles.HasPermission(roles.RoleSuperAdmin, roles.PermissionWrite))
		require.True(t, roles.HasPermission(roles.RoleSuperAdmin, roles.Permission("manage-anything")))
		require.True(t, roles.HasPermission(roles.RoleSuperAdmin, roles.Permission("")))
	})

	t.Run("viewer reads but never writes", func(t *testing.T) {
		require.True(t, roles.HasPermission(roles.RoleViewer, roles.PermissionRead))
		require.False(t, roles.HasPermission(roles.RoleViewer, roles.PermissionWrite))
		require.False(t, roles.HasPermission(roles.RoleViewer, roles.PermissionApprove))
	})

	t.Run("editor set", func(t *testing.T) {
		for _, p := range []roles.Permission{roles.PermissionRead, roles.PermissionWrite, roles.PermissionApprove, roles.PermissionReject} {
			require.True(t, roles.HasPermission(roles.RoleEditor, p))
		}
		require.False(t, roles.HasPermission(roles.RoleEditor, roles.PermissionReview))
		require.False(t, roles.HasPermission(roles.RoleEditor, roles.PermissionSuggest))
	})

	t.Run("moderator set", func(t *testing.T) {
		for _, p := range []roles.Permission{roles.PermissionRead, roles.PermissionReview, roles.PermissionApprove, roles.PermissionReject} {
			require.True(t, roles.HasPermission(roles.RoleModerator, p))
		}
		require.False(t, roles.HasPermission(roles.RoleModerator, roles.PermissionWrite))
	})

	t.Run("contributor set", func(t *testing.T) {
		require.True(t, roles.HasPermission(roles.RoleContributor, roles.PermissionRead))
		require.True(t, roles.HasPermission(roles.RoleContributor, roles.PermissionSuggest))
		require.False(t, roles.HasPermission(roles.RoleContributor, roles.PermissionApprove))
	})

	t.Run("unknown roles fail closed", func(t *testing.T) {
		require.False(t, roles.HasPermission(roles.Role("intern"), roles.PermissionRead))
		require.False(t, roles.HasPermission(roles.Role(""), roles.PermissionRead))
	})

	t.Run("wildcard is not a grantable permission for other roles", func(t *testing.T) {
		require.False(t, roles.HasPermission(roles.RoleEditor, roles.PermissionAll))
		require.False(t, roles.HasPermission(roles.RoleViewer, roles.PermissionAll))
	})
}

func TestValid(t *testing.T) {
	for _, r := range []roles.Role{roles.RoleSuperAdmin, roles.RoleEditor, roles.RoleModerator, roles.RoleContributor, roles.RoleViewer} {
		require.True(t, roles.Valid(r))
	}
	require.False(t, roles.Valid(roles.Role("intern")))
}
