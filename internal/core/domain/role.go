package domain

import "strings"

// Predefined role names created at startup. These roles can never be deleted.
const (
	RoleGeneralUser   = "General User"
	RoleProfessional  = "Professional"
	RoleBusinessOwner = "Business Owner"
	RoleAdmin         = "Admin"
)

// DefaultRoles maps each protected default role to its description.
var DefaultRoles = map[string]string{
	RoleGeneralUser:   "Standard user with basic access permissions",
	RoleProfessional:  "Professional user with advanced features access",
	RoleBusinessOwner: "Business owner with full business management capabilities",
	RoleAdmin:         "System administrator with full access",
}

// DefaultRoleNames lists the protected defaults in seeding order.
var DefaultRoleNames = []string{RoleGeneralUser, RoleProfessional, RoleBusinessOwner, RoleAdmin}

// Role is a named permission group assignable to users.
// Name keeps its original display casing; equality and lookups always go
// through the canonical key (see CanonicalRoleName).
type Role struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// CanonicalRoleName returns the single normalized form used for role lookup
// and comparison: trimmed and upper-cased. The display name is stored as-is.
func CanonicalRoleName(name string) string {
	return strings.ToUpper(strings.TrimSpace(name))
}

// IsProtectedRole reports whether name (in any casing) is one of the default
// roles that must never be deleted.
func IsProtectedRole(name string) bool {
	key := CanonicalRoleName(name)
	for _, d := range DefaultRoleNames {
		if CanonicalRoleName(d) == key {
			return true
		}
	}
	return false
}
