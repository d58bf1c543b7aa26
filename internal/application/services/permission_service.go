package services

import (
	"context"

	"github.com/bearh141/todo-list/internal/application/common"
	"github.com/bearh141/todo-list/internal/domain/entities"
	"github.com/bearh141/todo-list/internal/domain/repositories"
)

// PermissionService decides what a user may do with a project: owner,
// the role granted through a share, or none.
type PermissionService struct {
	shareRepo repositories.ProjectShareRepository
}

func NewPermissionService(shareRepo repositories.ProjectShareRepository) *PermissionService {
	return &PermissionService{shareRepo: shareRepo}
}

func (s *PermissionService) ResolveRole(ctx context.Context, project *entities.Project, userId uint) (entities.Role, error) {
	if project == nil {
		return entities.RoleNone, nil
	}
	if project.OwnerId == userId {
		return entities.RoleOwner, nil
	}

	share, err := s.shareRepo.Find(ctx, project.Id, userId)
	if err != nil {
		return entities.RoleNone, common.Persistence("share lookup", err)
	}
	return entities.ResolveRole(project, userId, share), nil
}

// RequireView returns NotFound when the user has no role at all, so a
// hidden project is indistinguishable from a missing one.
func (s *PermissionService) RequireView(ctx context.Context, project *entities.Project, userId uint) (entities.Role, error) {
	role, err := s.ResolveRole(ctx, project, userId)
	if err != nil {
		return entities.RoleNone, err
	}
	if !role.CanView() {
		return entities.RoleNone, common.NotFoundf("project not found")
	}
	return role, nil
}

func (s *PermissionService) RequireEdit(ctx context.Context, project *entities.Project, userId uint) (entities.Role, error) {
	role, err := s.RequireView(ctx, project, userId)
	if err != nil {
		return entities.RoleNone, err
	}
	if !role.CanEdit() {
		return entities.RoleNone, common.PermissionDeniedf("role %s cannot modify this project", role)
	}
	return role, nil
}
