package model

import "strings"

// Role is the viewer's access role.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// ParseRole normalizes a role string. Unknown values are returned as-is
// (trimmed and lower-cased) so that callers can fail closed on them.
func ParseRole(s string) Role {
	return Role(strings.ToLower(strings.TrimSpace(s)))
}

// Viewer is the identity performing a query against the task collection.
type Viewer struct {
	UserID   string
	Role     Role
	IsActive bool
}

// IsAdmin reports whether the viewer is an active admin.
func (v Viewer) IsAdmin() bool {
	return v.IsActive && ParseRole(string(v.Role)) == RoleAdmin
}

// ScopeFilter narrows what a viewer sees. Empty fields are unset.
type ScopeFilter struct {
	SelectedUserID     string
	SelectedReporterID string
}
