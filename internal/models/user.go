package models

// UserRole is one of the four static roles.
type UserRole string

// Roles. Values match persisted session records.
const (
	RoleAdmin   UserRole = "ADMIN"
	RoleEditor  UserRole = "EDITOR"
	RoleGuest   UserRole = "GUEST"
	RoleShowoff UserRole = "SHOWOFF"
)

// User is an authenticated session identity. It is not a stored content
// entity; it exists in memory plus one persisted copy for session restore.
type User struct {
	Username string   `json:"username"`
	Role     UserRole `json:"role"`
}

// HasPermission reports whether the user satisfies the required role.
// Admin passes everything, an editor passes everything below admin, and a
// guest only passes guest-level checks. A nil user never passes.
func (u *User) HasPermission(required UserRole) bool {
	if u == nil {
		return false
	}
	switch u.Role {
	case RoleAdmin:
		return true
	case RoleEditor:
		return required != RoleAdmin
	case RoleGuest:
		return required == RoleGuest
	default:
		return false
	}
}
