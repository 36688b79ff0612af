package identity

import "strings"

// Role is the closed set of caller roles known to the tracker.
type Role string

const (
	RoleEmployee Role = "employee"
	RoleManager  Role = "manager"
)

var roleSet = map[Role]struct{}{
	RoleEmployee: {},
	RoleManager:  {},
}

// ParseRole converts a string into a known Role.
func ParseRole(value string) (Role, bool) {
	normalized := Role(strings.ToLower(strings.TrimSpace(value)))
	if normalized == "" {
		return "", false
	}
	_, ok := roleSet[normalized]
	return normalized, ok
}

// Known reports whether the role is one of the recognized values. Scoping
// code treats unknown roles as seeing nothing.
func (r Role) Known() bool {
	_, ok := roleSet[r]
	return ok
}

// Principal identifies an authenticated caller. It is supplied by the auth
// layer per call and never read from request payloads.
type Principal struct {
	ID   string
	Role Role
}

// IsManager reports whether the principal may approve or reject tasks.
func (p Principal) IsManager() bool {
	return p.Role == RoleManager
}

// Owns reports whether the principal is the owning employee of the given record.
func (p Principal) Owns(employeeID string) bool {
	return p.ID != "" && p.ID == employeeID
}
