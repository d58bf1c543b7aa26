package services

import (
	"context"
	"strings"
	"time"

	"github.com/bearh141/todo-list/internal/application/common"
	"github.com/bearh141/todo-list/internal/domain/entities"
	"github.com/bearh141/todo-list/internal/domain/repositories"
)

type TaskService struct {
	taskRepo    repositories.TaskRepository
	tagRepo     repositories.TagRepository
	projectRepo repositories.ProjectRepository
	permissions *PermissionService
}

func NewTaskService(
	taskRepo repositories.TaskRepository,
	tagRepo repositories.TagRepository,
	projectRepo repositories.ProjectRepository,
	permissions *PermissionService,
) *TaskService {
	return &TaskService{
		taskRepo:    taskRepo,
		tagRepo:     tagRepo,
		projectRepo: projectRepo,
		permissions: permissions,
	}
}

type TaskInput struct {
	Title       string
	Description string
	DueDate     *time.Time
	Priority    string
	ParentId    *uint
	Tags        []string
}

func (s *TaskService) CreateTask(ctx context.Context, userId, projectId uint, input TaskInput) (*entities.Task, error) {
	project, err := s.findProject(ctx, projectId)
	if err != nil {
		return nil, err
	}

	if _, err := s.permissions.RequireEdit(ctx, project, userId); err != nil {
		return nil, err
	}

	newTask := entities.NewTask(input.Title, input.Description, projectId, userId)

	existingTask, err := s.taskRepo.FindByProjectAndTitle(ctx, projectId, newTask.Title)
	if err != nil {
		return nil, common.Persistence("task lookup", err)
	}
	if existingTask != nil {
		return nil, common.Validationf("a task titled %q already exists in this project", newTask.Title)
	}

	priority, err := entities.ParsePriority(input.Priority)
	if err != nil {
		return nil, common.Validationf("%v", err)
	}
	newTask.Priority = priority
	newTask.DueDate = input.DueDate

	if input.ParentId != nil {
		parentTask, err := s.findTask(ctx, *input.ParentId)
		if err != nil {
			return nil, err
		}
		if parentTask.ProjectId != projectId {
			return nil, common.Validationf("parent task belongs to a different project")
		}
		newTask.ParentId = input.ParentId
	}

	tags, err := s.tagRepo.ResolveTags(ctx, input.Tags)
	if err != nil {
		return nil, common.Persistence("tag resolve", err)
	}
	newTask.Tags = tags

	validatedTask, err := entities.NewValidatedTask(newTask)
	if err != nil {
		return nil, common.Validationf("%v", err)
	}

	createdTask, err := s.taskRepo.Create(ctx, validatedTask)
	if err != nil {
		return nil, common.Persistence("task create", err)
	}
	return createdTask, nil
}

func (s *TaskService) GetTask(ctx context.Context, userId, taskId uint) (*entities.Task, error) {
	task, err := s.findTask(ctx, taskId)
	if err != nil {
		return nil, err
	}

	project, err := s.findProject(ctx, task.ProjectId)
	if err != nil {
		return nil, err
	}
	if _, err := s.permissions.RequireView(ctx, project, userId); err != nil {
		return nil, err
	}
	return task, nil
}

func (s *TaskService) UpdateTask(ctx context.Context, userId, taskId uint, input TaskInput) (*entities.Task, error) {
	task, err := s.findTask(ctx, taskId)
	if err != nil {
		return nil, err
	}

	project, err := s.findProject(ctx, task.ProjectId)
	if err != nil {
		return nil, err
	}
	if _, err := s.permissions.RequireEdit(ctx, project, userId); err != nil {
		return nil, err
	}

	trimmedTitle := strings.TrimSpace(input.Title)
	if trimmedTitle != task.Title {
		existingTask, err := s.taskRepo.FindByProjectAndTitle(ctx, task.ProjectId, trimmedTitle)
		if err != nil {
			return nil, common.Persistence("task lookup", err)
		}
		if existingTask != nil {
			return nil, common.Validationf("a task titled %q already exists in this project", trimmedTitle)
		}
	}

	priority, err := entities.ParsePriority(input.Priority)
	if err != nil {
		return nil, common.Validationf("%v", err)
	}

	if err := s.reassignParent(ctx, task, input.ParentId); err != nil {
		return nil, err
	}

	if err := task.Update(input.Title, input.Description, input.DueDate, priority); err != nil {
		return nil, common.Validationf("%v", err)
	}

	tags, err := s.tagRepo.ResolveTags(ctx, input.Tags)
	if err != nil {
		return nil, common.Persistence("tag resolve", err)
	}
	task.Tags = tags

	validatedTask, err := entities.NewValidatedTask(task)
	if err != nil {
		return nil, common.Validationf("%v", err)
	}

	updatedTask, err := s.taskRepo.Update(ctx, validatedTask)
	if err != nil {
		return nil, common.Persistence("task update", err)
	}
	return updatedTask, nil
}

// reassignParent validates that the new parent keeps the task forest a
// forest: same project, and never the task itself or one of its own
// descendants.
func (s *TaskService) reassignParent(ctx context.Context, task *entities.Task, parentId *uint) error {
	if parentId == nil {
		task.ParentId = nil
		return nil
	}
	if *parentId == task.Id {
		return common.Validationf("task cannot be its own parent")
	}

	parentTask, err := s.findTask(ctx, *parentId)
	if err != nil {
		return err
	}
	if parentTask.ProjectId != task.ProjectId {
		return common.Validationf("parent task belongs to a different project")
	}

	tasks, err := s.taskRepo.FindByProject(ctx, task.ProjectId)
	if err != nil {
		return common.Persistence("task list", err)
	}

	forest := entities.BuildTaskTree(tasks)
	if node := entities.FindNode(forest, task.Id); node != nil {
		for _, descendant := range node.Flatten() {
			if descendant.Id == *parentId {
				return common.Validationf("cannot move a task under its own subtask")
			}
		}
	}

	task.ParentId = parentId
	return nil
}

// SetCompletion sets the task's completion state and propagates it to
// every descendant, overwriting whatever state the subtasks had.
func (s *TaskService) SetCompletion(ctx context.Context, userId, taskId uint, completed bool) (*entities.Task, error) {
	task, err := s.findTask(ctx, taskId)
	if err != nil {
		return nil, err
	}

	project, err := s.findProject(ctx, task.ProjectId)
	if err != nil {
		return nil, err
	}
	if _, err := s.permissions.RequireEdit(ctx, project, userId); err != nil {
		return nil, err
	}

	tasks, err := s.taskRepo.FindByProject(ctx, task.ProjectId)
	if err != nil {
		return nil, common.Persistence("task list", err)
	}

	forest := entities.BuildTaskTree(tasks)
	node := entities.FindNode(forest, taskId)
	if node == nil {
		return nil, common.NotFoundf("task %d not found", taskId)
	}

	node.SetCompletion(completed)
	taskIds := make([]uint, 0)
	for _, affected := range node.Flatten() {
		taskIds = append(taskIds, affected.Id)
	}

	if err := s.taskRepo.SetCompletion(ctx, taskIds, completed); err != nil {
		return nil, common.Persistence("task completion", err)
	}

	return s.findTask(ctx, taskId)
}

// ToggleCompletion flips the task's state and cascades the new state.
func (s *TaskService) ToggleCompletion(ctx context.Context, userId, taskId uint) (*entities.Task, error) {
	task, err := s.findTask(ctx, taskId)
	if err != nil {
		return nil, err
	}
	return s.SetCompletion(ctx, userId, taskId, !task.Completed)
}

// DeleteTask removes the task and, through the cascade constraint, its
// whole subtree.
func (s *TaskService) DeleteTask(ctx context.Context, userId, taskId uint) error {
	task, err := s.findTask(ctx, taskId)
	if err != nil {
		return err
	}

	project, err := s.findProject(ctx, task.ProjectId)
	if err != nil {
		return err
	}
	if _, err := s.permissions.RequireEdit(ctx, project, userId); err != nil {
		return err
	}

	if err := s.taskRepo.Delete(ctx, taskId); err != nil {
		return common.Persistence("task delete", err)
	}
	return nil
}

func (s *TaskService) findTask(ctx context.Context, taskId uint) (*entities.Task, error) {
	task, err := s.taskRepo.FindById(ctx, taskId)
	if err != nil {
		return nil, common.Persistence("task lookup", err)
	}
	if task == nil {
		return nil, common.NotFoundf("task %d not found", taskId)
	}
	return task, nil
}

func (s *TaskService) findProject(ctx context.Context, projectId uint) (*entities.Project, error) {
	project, err := s.projectRepo.FindById(ctx, projectId)
	if err != nil {
		return nil, common.Persistence("project lookup", err)
	}
	if project == nil {
		return nil, common.NotFoundf("project %d not found", projectId)
	}
	return project, nil
}
