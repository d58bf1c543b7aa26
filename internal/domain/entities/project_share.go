package entities

import "fmt"

type Role string

const (
	RoleOwner  Role = "owner"
	RoleEditor Role = "editor"
	RoleViewer Role = "viewer"
	RoleNone   Role = "none"
)

// ParseShareRole accepts only the roles that can be granted through a
// share. Owner is implicit and none means no share row at all.
func ParseShareRole(s string) (Role, error) {
	switch Role(s) {
	case RoleEditor:
		return RoleEditor, nil
	case RoleViewer:
		return RoleViewer, nil
	}
	return "", fmt.Errorf("unknown share role %q", s)
}

func (r Role) CanEdit() bool {
	return r == RoleOwner || r == RoleEditor
}

func (r Role) CanView() bool {
	return r != RoleNone
}

type ProjectShare struct {
	Id        uint
	ProjectId uint
	UserId    uint
	Role      Role
}

// ResolveRole decides what a user may do with a project. The share is the
// row for (project, user) if one exists, nil otherwise.
func ResolveRole(project *Project, userId uint, share *ProjectShare) Role {
	if project == nil {
		return RoleNone
	}
	if project.OwnerId == userId {
		return RoleOwner
	}
	if share != nil && share.ProjectId == project.Id && share.UserId == userId {
		return share.Role
	}
	return RoleNone
}
