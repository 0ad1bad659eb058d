// FILE: internal/entity/role_entity.go
package entity

// UserRole is the closed role enumeration. Roles are labels, not a
// hierarchy: ROOT bypasses administrative gates only, never feature checks.
type UserRole string

const (
	UserRoleRoot  UserRole = "ROOT"
	UserRoleAdmin UserRole = "ADMIN"
	UserRoleUser  UserRole = "USER"
)

// AllRoles lists every valid role token.
var AllRoles = []UserRole{UserRoleRoot, UserRoleAdmin, UserRoleUser}

// IsValid reports whether r is a member of the closed enumeration.
func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleRoot, UserRoleAdmin, UserRoleUser:
		return true
	}
	return false
}

// ParseRole validates a raw string against the closed enumeration.
// Anything outside the enum maps to the zero value and false.
func ParseRole(raw string) (UserRole, bool) {
	role := UserRole(raw)
	if role.IsValid() {
		return role, true
	}
	return "", false
}

// ValidRoles reports whether every token in the slice is a valid role and
// the slice is non-empty. Used at storage write, API input and client
// deserialization boundaries.
func ValidRoles(raw []string) bool {
	if len(raw) == 0 {
		return false
	}
	for _, r := range raw {
		if !UserRole(r).IsValid() {
			return false
		}
	}
	return true
}
