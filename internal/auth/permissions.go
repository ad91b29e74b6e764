package auth

import "errors"

// Clinic roles
const (
	RoleAdmin     = "admin"
	RoleDentist   = "dentist"
	RoleAssistant = "assistant"
)

// Permissions by role
var Permissions = map[string][]string{
	RoleAdmin: {
		"users:read",
		"users:write",
		"users:delete",
		"patients:read",
		"patients:write",
		"patients:delete",
		"notes:read",
		"notes:write",
		"notes:sign",
		"appointments:read",
		"appointments:write",
		"system:admin",
	},
	RoleDentist: {
		"patients:read",
		"patients:write",
		"notes:read",
		"notes:write",
		"notes:sign",
		"appointments:read",
		"appointments:write",
		"recordings:write",
	},
	RoleAssistant: {
		"patients:read",
		"notes:read",
		"appointments:read",
		"appointments:write",
		"recordings:write",
	},
}

// HasPermission reports whether the role carries the permission.
func HasPermission(role, permission string) bool {
	permissions, exists := Permissions[role]
	if !exists {
		return false
	}

	for _, p := range permissions {
		if p == permission {
			return true
		}
	}
	return false
}

// CanPerformAction reports whether the token holder may perform the action.
func CanPerformAction(claims *Claims, permission string) bool {
	return HasPermission(claims.Role, permission)
}

// IsAdmin reports whether the token holder is an administrator.
func IsAdmin(claims *Claims) bool {
	return claims.Role == RoleAdmin
}

// CanSignNotes reports whether the token holder may sign clinical notes.
func CanSignNotes(claims *Claims) bool {
	return HasPermission(claims.Role, "notes:sign")
}

// ValidateRole checks that the role is one the clinic knows.
func ValidateRole(role string) error {
	switch role {
	case RoleAdmin, RoleDentist, RoleAssistant:
		return nil
	default:
		return errors.New("invalid role")
	}
}
