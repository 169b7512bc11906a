package users_enums

type ProjectRole string

const (
	ProjectRoleOwner   ProjectRole = "OWNER"
	ProjectRoleManager ProjectRole = "MANAGER"
	ProjectRoleMember  ProjectRole = "MEMBER"
	ProjectRoleViewer  ProjectRole = "VIEWER"
)

// IsValid validates the ProjectRole
func (r ProjectRole) IsValid() bool {
	switch r {
	case ProjectRoleOwner, ProjectRoleManager, ProjectRoleMember, ProjectRoleViewer:
		return true
	default:
		return false
	}
}

// CanManageTeam reports whether this project role may edit the project
// and add or re-role members. Only OWNER and MANAGER may.
func (r ProjectRole) CanManageTeam() bool {
	return r == ProjectRoleOwner || r == ProjectRoleManager
}
