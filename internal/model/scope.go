package model

// Role is the capability level of a caller.
type Role string

const (
	RoleViewer Role = "viewer"
	RoleEditor Role = "editor"
	RoleAdmin  Role = "admin"
)

// ValidRoles lists roles in ascending order of capability.
var ValidRoles = []Role{RoleViewer, RoleEditor, RoleAdmin}

// AnonymousUserID identifies callers when authentication is disabled.
const AnonymousUserID = "anonymous"

// Scope is the permission context of the caller making a request.
type Scope struct {
	UserID string
	Role   Role
}

func (r Role) rank() int {
	for i, v := range ValidRoles {
		if v == r {
			return i
		}
	}
	return -1
}

// IsValid reports whether r is a known role.
func (r Role) IsValid() bool {
	return r.rank() >= 0
}

// AtLeast reports whether the scope's role is r or higher.
func (s Scope) AtLeast(r Role) bool {
	return s.Role.rank() >= r.rank() && r.rank() >= 0
}

// CanWrite reports whether the scope may mutate records.
func (s Scope) CanWrite() bool {
	return s.AtLeast(RoleEditor)
}
