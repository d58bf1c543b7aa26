package services

import (
	"context"
	"strings"

	"github.com/bearh141/todo-list/internal/application/common"
	"github.com/bearh141/todo-list/internal/domain/entities"
	"github.com/bearh141/todo-list/internal/domain/repositories"
	"github.com/bearh141/todo-list/internal/logging"
)

type ProjectService struct {
	projectRepo repositories.ProjectRepository
	taskRepo    repositories.TaskRepository
	shareRepo   repositories.ProjectShareRepository
	userRepo    repositories.UserRepository
	permissions *PermissionService
}

func NewProjectService(
	projectRepo repositories.ProjectRepository,
	taskRepo repositories.TaskRepository,
	shareRepo repositories.ProjectShareRepository,
	userRepo repositories.UserRepository,
	permissions *PermissionService,
) *ProjectService {
	return &ProjectService{
		projectRepo: projectRepo,
		taskRepo:    taskRepo,
		shareRepo:   shareRepo,
		userRepo:    userRepo,
		permissions: permissions,
	}
}

// ProjectSummary is a dashboard row: the project, the caller's role and
// the flat completion percentage.
type ProjectSummary struct {
	Project  *entities.Project
	Role     entities.Role
	Progress int
}

// TaskFilter narrows the detail view. Filtered views may orphan
// subtasks whose parent was filtered out; those are dropped from the
// tree.
type TaskFilter struct {
	Status string // "", "completed" or "pending"
	Search string
}

type ShareInfo struct {
	Share    *entities.ProjectShare
	Username string
}

type ProjectDetail struct {
	Project  *entities.Project
	Role     entities.Role
	Progress int
	Tasks    []*entities.TaskNode
	Shares   []ShareInfo
}

func (s *ProjectService) CreateProject(ctx context.Context, ownerId uint, title, description string) (*entities.Project, error) {
	newProject := entities.NewProject(title, description, ownerId)

	existingProject, err := s.projectRepo.FindByOwnerAndTitle(ctx, ownerId, newProject.Title)
	if err != nil {
		return nil, common.Persistence("project lookup", err)
	}
	if existingProject != nil {
		return nil, common.Validationf("you already have a project titled %q", newProject.Title)
	}

	validatedProject, err := entities.NewValidatedProject(newProject)
	if err != nil {
		return nil, common.Validationf("%v", err)
	}

	createdProject, err := s.projectRepo.Create(ctx, validatedProject)
	if err != nil {
		return nil, common.Persistence("project create", err)
	}

	logging.Logger.Infof("Created project %q for user %d", createdProject.Title, ownerId)
	return createdProject, nil
}

// Dashboard lists the user's own projects followed by projects shared
// with them, each with its completion percentage.
func (s *ProjectService) Dashboard(ctx context.Context, userId uint) ([]ProjectSummary, error) {
	owned, err := s.projectRepo.FindByOwner(ctx, userId)
	if err != nil {
		return nil, common.Persistence("project list", err)
	}
	shared, err := s.projectRepo.FindSharedWith(ctx, userId)
	if err != nil {
		return nil, common.Persistence("project list", err)
	}

	summaries := make([]ProjectSummary, 0, len(owned)+len(shared))
	for _, project := range append(owned, shared...) {
		role, err := s.permissions.ResolveRole(ctx, project, userId)
		if err != nil {
			return nil, err
		}

		tasks, err := s.taskRepo.FindByProject(ctx, project.Id)
		if err != nil {
			return nil, common.Persistence("task list", err)
		}

		summaries = append(summaries, ProjectSummary{
			Project:  project,
			Role:     role,
			Progress: entities.Progress(tasks),
		})
	}
	return summaries, nil
}

func (s *ProjectService) GetProject(ctx context.Context, userId, projectId uint, filter TaskFilter) (*ProjectDetail, error) {
	project, err := s.findProject(ctx, projectId)
	if err != nil {
		return nil, err
	}

	role, err := s.permissions.RequireView(ctx, project, userId)
	if err != nil {
		return nil, err
	}

	tasks, err := s.taskRepo.FindByProject(ctx, projectId)
	if err != nil {
		return nil, common.Persistence("task list", err)
	}

	shares, err := s.shareRepo.FindByProject(ctx, projectId)
	if err != nil {
		return nil, common.Persistence("share list", err)
	}

	shareInfos := make([]ShareInfo, 0, len(shares))
	for _, share := range shares {
		username := ""
		if user, err := s.userRepo.FindById(ctx, share.UserId); err == nil && user != nil {
			username = user.Username
		}
		shareInfos = append(shareInfos, ShareInfo{Share: share, Username: username})
	}

	return &ProjectDetail{
		Project: project,
		Role:    role,
		// Progress counts every task regardless of filter.
		Progress: entities.Progress(tasks),
		Tasks:    entities.BuildTaskTree(filterTasks(tasks, filter)),
		Shares:   shareInfos,
	}, nil
}

func (s *ProjectService) UpdateProject(ctx context.Context, userId, projectId uint, title, description string) (*entities.Project, error) {
	project, err := s.findProject(ctx, projectId)
	if err != nil {
		return nil, err
	}

	if _, err := s.permissions.RequireEdit(ctx, project, userId); err != nil {
		return nil, err
	}

	trimmedTitle := strings.TrimSpace(title)
	if trimmedTitle != project.Title {
		existingProject, err := s.projectRepo.FindByOwnerAndTitle(ctx, project.OwnerId, trimmedTitle)
		if err != nil {
			return nil, common.Persistence("project lookup", err)
		}
		if existingProject != nil {
			return nil, common.Validationf("a project titled %q already exists", trimmedTitle)
		}
	}

	if err := project.Update(title, description); err != nil {
		return nil, common.Validationf("%v", err)
	}

	validatedProject, err := entities.NewValidatedProject(project)
	if err != nil {
		return nil, common.Validationf("%v", err)
	}

	updatedProject, err := s.projectRepo.Update(ctx, validatedProject)
	if err != nil {
		return nil, common.Persistence("project update", err)
	}
	return updatedProject, nil
}

// DeleteProject is owner-only. Tasks and shares are removed by the
// cascade constraints.
func (s *ProjectService) DeleteProject(ctx context.Context, userId, projectId uint) error {
	project, err := s.findProject(ctx, projectId)
	if err != nil {
		return err
	}

	role, err := s.permissions.RequireView(ctx, project, userId)
	if err != nil {
		return err
	}
	if role != entities.RoleOwner {
		return common.PermissionDeniedf("only the owner can delete a project")
	}

	if err := s.projectRepo.Delete(ctx, projectId); err != nil {
		return common.Persistence("project delete", err)
	}

	logging.Logger.Infof("Deleted project %q", project.Title)
	return nil
}

// Invite grants a non-owner user viewer or editor access. Re-inviting
// the same user updates the existing share's role.
func (s *ProjectService) Invite(ctx context.Context, actorId, projectId uint, username, roleStr string) (*entities.ProjectShare, error) {
	project, err := s.findProject(ctx, projectId)
	if err != nil {
		return nil, err
	}

	if _, err := s.permissions.RequireEdit(ctx, project, actorId); err != nil {
		return nil, err
	}

	role, err := entities.ParseShareRole(roleStr)
	if err != nil {
		return nil, common.Validationf("%v", err)
	}

	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		return nil, common.Persistence("user lookup", err)
	}
	if user == nil {
		return nil, common.NotFoundf("user %q not found", username)
	}
	if user.Id == project.OwnerId {
		return nil, common.Validationf("the owner already has full access")
	}

	share, err := s.shareRepo.Upsert(ctx, &entities.ProjectShare{
		ProjectId: projectId,
		UserId:    user.Id,
		Role:      role,
	})
	if err != nil {
		return nil, common.Persistence("share upsert", err)
	}

	logging.Logger.Infof("Shared project %d with %s as %s", projectId, username, role)
	return share, nil
}

func (s *ProjectService) RemoveShare(ctx context.Context, actorId, projectId, targetUserId uint) error {
	project, err := s.findProject(ctx, projectId)
	if err != nil {
		return err
	}

	if _, err := s.permissions.RequireEdit(ctx, project, actorId); err != nil {
		return err
	}

	share, err := s.shareRepo.Find(ctx, projectId, targetUserId)
	if err != nil {
		return common.Persistence("share lookup", err)
	}
	if share == nil {
		return common.NotFoundf("share not found")
	}

	if err := s.shareRepo.Delete(ctx, projectId, targetUserId); err != nil {
		return common.Persistence("share delete", err)
	}
	return nil
}

func (s *ProjectService) findProject(ctx context.Context, projectId uint) (*entities.Project, error) {
	project, err := s.projectRepo.FindById(ctx, projectId)
	if err != nil {
		return nil, common.Persistence("project lookup", err)
	}
	if project == nil {
		return nil, common.NotFoundf("project %d not found", projectId)
	}
	return project, nil
}

func filterTasks(tasks []*entities.Task, filter TaskFilter) []*entities.Task {
	if filter.Status == "" && filter.Search == "" {
		return tasks
	}

	search := strings.ToLower(filter.Search)
	filtered := make([]*entities.Task, 0, len(tasks))
	for _, task := range tasks {
		if filter.Status == "completed" && !task.Completed {
			continue
		}
		if filter.Status == "pending" && task.Completed {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(task.Title), search) {
			continue
		}
		filtered = append(filtered, task)
	}
	return filtered
}
