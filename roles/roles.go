// Package roles provides the static role-based access control table for the
// admin subsystem. Permissions are granted to roles, never directly to
// individual callers.
package roles

// Role identifies a privilege level carried by an authenticated session.
type Role string

const (
	RoleSuperAdmin  Role = "super_admin"
	RoleEditor      Role = "editor"
	RoleModerator   Role = "moderator"
	RoleContributor Role = "contributor"
	RoleViewer      Role = "viewer"
)

// Permission names a single operation a role may perform.
type Permission string

const (
	PermissionRead    Permission = "read"
	PermissionWrite   Permission = "write"
	PermissionApprove Permission = "approve"
	PermissionReject  Permission = "reject"
	PermissionReview  Permission = "review"
	PermissionSuggest Permission = "suggest"

	// PermissionAll is the wildcard sentinel granting every permission.
	PermissionAll Permission = "*"
)

// rolePermissions is built once at process start and never mutated.
var rolePermissions = map[Role]map[Permission]struct{}{
	RoleSuperAdmin:  permissionSet(PermissionAll),
	RoleEditor:      permissionSet(PermissionRead, PermissionWrite, PermissionApprove, PermissionReject),
	RoleModerator:   permissionSet(PermissionRead, PermissionReview, PermissionApprove, PermissionReject),
	RoleContributor: permissionSet(PermissionRead, PermissionSuggest),
	RoleViewer:      permissionSet(PermissionRead),
}

func permissionSet(permissions ...Permission) map[Permission]struct{} {
	set := make(map[Permission]struct{}, len(permissions))
	for _, p := range permissions {
		set[p] = struct{}{}
	}
	return set
}

// HasPermission reports whether role may perform permission. A role holding
// the wildcard is granted everything. Unknown roles have no table entry and
// fail closed.
func HasPermission(role Role, permission Permission) bool {
	set, ok := rolePermissions[role]
	if !ok {
		return false
	}
	if _, ok := set[PermissionAll]; ok {
		return true
	}
	_, ok = set[permission]
	return ok
}

// Valid reports whether role is one of the defined roles.
func Valid(role Role) bool {
	_, ok := rolePermissions[role]
	return ok
}
