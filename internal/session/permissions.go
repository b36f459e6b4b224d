package session

import "sekolah-cli/internal/api"

// PermissionSet evaluates what the signed-in user may do, from the
// permissions attached to their role. Checks match on the permission
// name (e.g. "perumahans.read"); super admins pass every check. The set
// is advisory: the server enforces the real rules, this only lets the
// CLI fail fast and shape its output.
type PermissionSet struct {
	names      map[string]struct{}
	superAdmin bool
}

// NewPermissionSet builds a set from role permissions, keyed by name.
// A permission without a name falls back to "resource.action".
func NewPermissionSet(perms []api.Permission, superAdmin bool) *PermissionSet {
	names := make(map[string]struct{}, len(perms))
	for _, p := range perms {
		name := p.Name
		if name == "" {
			name = p.Resource + "." + p.Action
		}
		names[name] = struct{}{}
	}
	return &PermissionSet{names: names, superAdmin: superAdmin}
}

// Has reports whether the user holds the named permission.
func (s *PermissionSet) Has(name string) bool {
	if s.superAdmin {
		return true
	}
	_, ok := s.names[name]
	return ok
}

// HasAny reports whether the user holds at least one of the names.
func (s *PermissionSet) HasAny(names ...string) bool {
	if s.superAdmin {
		return true
	}
	for _, n := range names {
		if _, ok := s.names[n]; ok {
			return true
		}
	}
	return false
}

// HasAll reports whether the user holds every name.
func (s *PermissionSet) HasAll(names ...string) bool {
	if s.superAdmin {
		return true
	}
	for _, n := range names {
		if _, ok := s.names[n]; !ok {
			return false
		}
	}
	return true
}

// Len returns the number of distinct permissions, ignoring super admin.
func (s *PermissionSet) Len() int { return len(s.names) }

// Derived unit capabilities. Recomputed on every call so the answers
// track the current set. Viewing is granted by either the list or the
// read permission.

func (s *PermissionSet) CanViewPerumahans() bool {
	return s.HasAny("perumahans.list", "perumahans.read")
}

func (s *PermissionSet) CanCreatePerumahan() bool {
	return s.Has("perumahans.create")
}

func (s *PermissionSet) CanUpdatePerumahan() bool {
	return s.Has("perumahans.update")
}

func (s *PermissionSet) CanDeletePerumahan() bool {
	return s.Has("perumahans.delete")
}

func (s *PermissionSet) CanManageMembers() bool {
	return s.HasAny("members.create", "members.update", "members.delete")
}
